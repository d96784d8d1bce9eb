package session

import (
	"math"

	"github.com/lixenwraith/lane-runner/parameter"
	"github.com/lixenwraith/lane-runner/spawn"
)

// Clearance is the free distance ahead of the runner in each lane of the current layout,
// capped at lookahead; out is reused when it has room
func (s *Session) Clearance(lookahead float64, out []float64) []float64 {
	positions := s.track.LaneInfoAt(parameter.RunnerZ).Positions
	out = out[:0]
	for range positions {
		out = append(out, lookahead)
	}

	z0 := parameter.RunnerZ - parameter.RunnerHalfDepth
	s.spawner.EachObstacle(func(_ int, o *spawn.Obstacle) {
		ahead := o.Z - o.Depth/2 - z0
		if o.Z+o.Depth/2 < z0 || ahead >= lookahead {
			return
		}
		for i, x := range positions {
			if math.Abs(o.X-x) < o.Width/2+parameter.RunnerHalfWidth {
				out[i] = min(out[i], max(0, ahead))
			}
		}
	})
	return out
}

// Autopilot steers the runner one lane at a time towards the lane with the most clearance,
// then jumps or slides whatever its lane still holds
type Autopilot struct {
	Lookahead float64
	clear     []float64
}

func NewAutopilot() *Autopilot {
	return &Autopilot{Lookahead: parameter.AutopilotLookahead}
}

// Steer shifts the runner at most one lane and starts at most one jump or slide; true when it acted
func (a *Autopilot) Steer(s *Session) bool {
	if s.over {
		return false
	}
	shifted := a.steerLane(s)
	return a.dodge(s) || shifted
}

// steerLane keeps the target lane while it is clear; ties go to the lane nearest the target
func (a *Autopilot) steerLane(s *Session) bool {
	a.clear = s.Clearance(a.Lookahead, a.clear)
	target := s.runner.Target()
	if target < 0 || target >= len(a.clear) || a.clear[target] >= a.Lookahead {
		return false
	}

	best := target
	for i, c := range a.clear {
		if c > a.clear[best] || (c == a.clear[best] && abs(i-target) < abs(best-target)) {
			best = i
		}
	}
	if best == target {
		return false
	}
	if best < target {
		return s.ShiftLane(-1)
	}
	return s.ShiftLane(1)
}

// dodge jumps a gap or an obstacle low enough to clear, or slides under a hanging one,
// once the runner is about to reach it
func (a *Autopilot) dodge(s *Session) bool {
	if s.motion.State() != Running || s.Active(PowerupGhost) {
		return false
	}
	speed := s.track.Speed()
	if s.track.IsOverGap(parameter.RunnerZ + speed*parameter.AutopilotGapLead) {
		return s.Jump()
	}
	if s.invincible > 0 {
		return false
	}

	x, front := s.runner.X(), parameter.RunnerZ+parameter.RunnerHalfDepth
	nearest := speed * parameter.AutopilotReaction
	var next *spawn.Obstacle
	s.spawner.EachObstacle(func(_ int, o *spawn.Obstacle) {
		ahead := o.Z - o.Depth/2 - front
		if ahead < 0 || ahead > nearest || math.Abs(o.X-x) >= o.Width/2+parameter.RunnerHalfWidth {
			return
		}
		next, nearest = o, ahead
	})

	switch {
	case next == nil || next.Tall:
		return false
	case next.Elevated:
		return s.Slide()
	default:
		return s.Jump()
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
