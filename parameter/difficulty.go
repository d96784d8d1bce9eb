package parameter

// Difficulty Budget
const (
	// BudgetInitial is the difficulty budget at the start of a run
	BudgetInitial = 5.0

	// BudgetMax caps the difficulty budget
	BudgetMax = 25.0

	// BudgetRegenRate is the budget regenerated per second of simulated time
	BudgetRegenRate = 0.5

	// BudgetDistanceScale is the per-second budget gain per meter travelled
	BudgetDistanceScale = 0.01
)

// Run Speed
const (
	// SpeedInitial is the scroll speed at run start (meters per second)
	SpeedInitial = 15.0

	// SpeedMax caps the scroll speed
	SpeedMax = 50.0

	// SpeedAcceleration is the speed gained per second
	SpeedAcceleration = 0.5

	// HitSpeedPenalty multiplies speed when the runner hits an obstacle
	HitSpeedPenalty = 0.6

	// HitSpeedFloorRatio is the minimum post-hit speed as a share of SpeedInitial
	HitSpeedFloorRatio = 0.5
)
