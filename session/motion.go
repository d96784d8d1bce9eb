package session

import (
	"math"

	"github.com/lixenwraith/lane-runner/config"
	"github.com/lixenwraith/lane-runner/parameter"
)

// MotionState is the runner's vertical mode
type MotionState uint8

const (
	Running MotionState = iota
	Jumping
	Sliding
	Falling
)

var motionNames = [...]string{
	Running: "run",
	Jumping: "jump",
	Sliding: "slide",
	Falling: "fall",
}

func (m MotionState) String() string {
	if int(m) < len(motionNames) {
		return motionNames[m]
	}
	return "unknown"
}

// Motion tracks the runner's feet height: on the floor, along a jump or slide arc,
// or in free fall once the floor is gone
type Motion struct {
	cfg      config.RunnerConfig
	state    MotionState
	progress float64 // 0..1 through a jump or slide
	y        float64
	fallV    float64
}

func NewMotion(cfg config.RunnerConfig) *Motion {
	return &Motion{cfg: cfg}
}

// Reset stands the runner on the floor at ground
func (m *Motion) Reset(ground float64) {
	m.state = Running
	m.progress = 0
	m.y = ground
	m.fallV = 0
}

// Jump starts a jump; false unless running
func (m *Motion) Jump() bool { return m.start(Jumping) }

// Slide starts a slide; false unless running
func (m *Motion) Slide() bool { return m.start(Sliding) }

// Fall drops the runner through the floor; false unless running
func (m *Motion) Fall() bool {
	if m.state != Running {
		return false
	}
	m.state = Falling
	m.fallV = 0
	return true
}

func (m *Motion) start(s MotionState) bool {
	if m.state != Running {
		return false
	}
	m.state = s
	m.progress = 0
	return true
}

// Update advances the current move by dt
// ground is the floor height under the runner, ceiling the roof height or +Inf in the open
func (m *Motion) Update(dt, ground, ceiling float64) {
	switch m.state {
	case Falling:
		m.fallV += parameter.Gravity * dt
		m.y -= m.fallV * dt
		return
	case Jumping:
		m.advance(dt, m.cfg.JumpDuration)
	case Sliding:
		m.advance(dt, m.cfg.SlideDuration)
	}

	m.y = ground + m.lift()
	if m.y+parameter.RunnerHeight > ceiling {
		m.y = max(ground, ceiling-parameter.RunnerHeight)
	}
}

func (m *Motion) advance(dt, duration float64) {
	m.progress += dt / duration
	if m.progress >= 1 {
		m.state = Running
		m.progress = 0
	}
}

// arc rises from 0 to 1 at the middle of a move and back to 0
func (m *Motion) arc() float64 { return math.Sin(m.progress * math.Pi) }

func (m *Motion) lift() float64 {
	switch m.state {
	case Jumping:
		return m.arc() * m.cfg.JumpHeight
	case Sliding:
		return -m.arc() * m.cfg.SlideDrop
	}
	return 0
}

// Span is the vertical extent of the collision box
// A slide lowers the whole box and also shortens it from the top
func (m *Motion) Span() (bottom, top float64) {
	bottom = m.y + parameter.RunnerBoxBottom
	top = m.y + parameter.RunnerBoxTop
	if m.state == Sliding {
		top -= m.arc() * m.cfg.SlideDuck
	}
	return bottom, top
}

func (m *Motion) State() MotionState { return m.state }

// Y is the feet height in world Y
func (m *Motion) Y() float64 { return m.y }

// Progress is the fraction through the current jump or slide, 0 otherwise
func (m *Motion) Progress() float64 { return m.progress }

// Fallen reports a fall past the point of no return
func (m *Motion) Fallen() bool { return m.state == Falling && m.y < parameter.FallDeathY }
