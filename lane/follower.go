package lane

import "github.com/lixenwraith/lane-runner/vmath"

// Follower tracks a target lane across lane-count changes and eases X towards it
type Follower struct {
	switchSpeed float64
	start       int

	positions []float64
	target    int
	current   int
	x         float64
}

// NewFollower places a follower at lane start of the given layout
func NewFollower(positions []float64, start int, switchSpeed float64) *Follower {
	f := &Follower{switchSpeed: switchSpeed, start: start}
	f.Reset(positions)
	return f
}

// Reset snaps the follower to its start lane on positions
func (f *Follower) Reset(positions []float64) {
	f.positions = append(f.positions[:0], positions...)
	f.target = clampIndex(f.start, len(f.positions))
	f.current = f.target
	f.x = 0
	if f.target >= 0 {
		f.x = f.positions[f.target]
	}
}

// Shift moves the target by d lanes within the current layout
// Returns false when the target did not change
func (f *Follower) Shift(d int) bool {
	next := clampIndex(f.target+d, len(f.positions))
	if next == f.target {
		return false
	}
	f.target = next
	return true
}

// Update applies the lane layout in force at the follower and eases X over dt
// On a lane-count change the target is remapped to the lane closest to the current X
// Returns true when a remap happened
func (f *Follower) Update(dt float64, positions []float64) bool {
	remapped := false
	if len(positions) != len(f.positions) {
		closest := ClosestIndex(f.x, positions)
		f.target, f.current = closest, closest
		remapped = true
	}
	f.positions = append(f.positions[:0], positions...)
	f.target = clampIndex(f.target, len(f.positions))
	if f.target < 0 {
		return remapped
	}

	// Positions move with the layout even when the count is unchanged (width tapers)
	goal := f.positions[f.target]
	f.x = vmath.Lerp(f.x, goal, vmath.Clamp(f.switchSpeed*dt, 0, 1))
	f.current = ClosestIndex(f.x, f.positions)
	return remapped
}

func (f *Follower) X() float64 { return f.x }

func (f *Follower) Target() int { return f.target }

// Current is the lane nearest the follower's actual X
func (f *Follower) Current() int { return f.current }

func (f *Follower) LaneCount() int { return len(f.positions) }

// TargetX is the X the follower is easing towards
func (f *Follower) TargetX() float64 {
	if f.target < 0 {
		return 0
	}
	return f.positions[f.target]
}

func clampIndex(i, n int) int {
	if n == 0 {
		return -1
	}
	return max(0, min(n-1, i))
}
