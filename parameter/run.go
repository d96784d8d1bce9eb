package parameter

import "time"

// Runner
const (
	// RunnerZ is the fixed track Z of the runner; the course scrolls past it
	RunnerZ = 0.0

	// RunnerHalfWidth is half the X extent of the runner's collision box
	RunnerHalfWidth = 0.4

	// RunnerHalfDepth is half the Z extent of the runner's collision box
	RunnerHalfDepth = 0.4

	// PickupHalfSize is half the X and Z extent of a collectible or powerup
	PickupHalfSize = 0.5

	// HitInvincibility is the grace period after an obstacle hit
	HitInvincibility = 1500 * time.Millisecond

	// ShieldInvincibility is the grace period after a shield absorbs a hit
	ShieldInvincibility = 500 * time.Millisecond

	// RunnerBoxBottom and RunnerBoxTop bound the collision box above the feet
	RunnerBoxBottom = 0.1
	RunnerBoxTop    = 1.4

	// RunnerHeight is the full body height kept under a tunnel roof
	RunnerHeight = 1.5
)

// Vertical moves
const (
	JumpHeight = 3.0

	// JumpDuration is the airtime of one jump in seconds
	JumpDuration = 0.6

	SlideDuration = 0.6

	// SlideDrop lowers the body at the peak of a slide
	SlideDrop = 0.5

	// SlideDuck shortens the collision box at the peak of a slide, on top of SlideDrop
	SlideDuck = 0.75

	// Gravity accelerates a fall through a gap (meters per second squared)
	Gravity = 30.0

	// FallDeathY ends the run once the feet drop below it
	FallDeathY = -10.0
)

// Meter
const (
	MeterMax   = 100.0
	MeterStart = 100.0

	// SpillPassive drains the meter continuously (per second)
	SpillPassive = 0.5

	SpillLaneSwitch = 2.0
	SpillJump       = 5.0
	SpillSlide      = 4.0
	SpillHit        = 25.0
)

// Scoring
const (
	// ScorePerMeter is the score for each unit of distance before multipliers
	ScorePerMeter = 1.0

	// ScorePerCollectible is the bonus for a collectible
	ScorePerCollectible = 5

	// ScorePerPowerup is the bonus for a powerup
	ScorePerPowerup = 10
)

// Autopilot
const (
	// AutopilotLookahead is how far ahead the autopilot scans lanes for obstacles (meters)
	AutopilotLookahead = 30.0

	// AutopilotReaction is how long before reaching an obstacle the autopilot jumps or slides (seconds)
	AutopilotReaction = 0.2

	// AutopilotGapLead is how long before reaching a gap the autopilot jumps (seconds)
	AutopilotGapLead = 0.05
)
