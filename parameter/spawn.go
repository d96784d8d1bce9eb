package parameter

// Obstacle Spawning
const (
	// ObstaclePoolSize is the number of pre-built obstacles shared by every segment
	ObstaclePoolSize = 30

	// ObstacleMinGap is the minimum authored Z distance between obstacle rows
	ObstacleMinGap = 8.0

	// ObstacleMaxGap is the maximum authored Z distance between obstacle rows
	ObstacleMaxGap = 20.0

	// SecondRowChance is the probability of a second row on a long enough segment
	SecondRowChance = 0.3

	// SecondRowLengthRatio is the segment length, in average gaps, required for a second row
	SecondRowLengthRatio = 1.5

	// RowJitter is the total Z jitter of a row as a share of segment length (centered)
	RowJitter = 0.3

	// SingleLaneObstacleChance is the probability a row on a single-lane segment gets an obstacle
	SingleLaneObstacleChance = 0.3

	// StandardSecondObstacleChance is the probability of blocking two lanes on a standard row
	StandardSecondObstacleChance = 0.3

	// WideThirdObstacleChance is the probability of blocking three lanes on a wide row
	WideThirdObstacleChance = 0.4

	// ItemRecycleZ is the Z behind the camera where obstacles and pickups return to their pools
	ItemRecycleZ = -10.0
)

// Pickups
const (
	// CollectiblePoolSize is the number of pre-built collectibles
	CollectiblePoolSize = 20

	// CollectibleChance is the probability of a pickup in a free lane per row
	CollectibleChance = 0.4

	// CollectibleLift is the Y of a collectible above the track surface
	CollectibleLift = 1.2

	// CollectibleRefill is the refill amount carried by a collectible
	CollectibleRefill = 15.0

	// PowerupPoolSize is the number of pre-built powerups
	PowerupPoolSize = 15

	// PowerupSpawnChance is the probability a pickup is a powerup instead of a collectible
	PowerupSpawnChance = 0.12

	// PowerupLift is the Y of a powerup above the track surface
	PowerupLift = 1.5
)

// Magnet
const (
	// MagnetAttractSpeed is the peak lateral pull on pickups inside the attract radius (units per second)
	MagnetAttractSpeed = 8.0

	// MagnetMinDistance stops the pull once a pickup is this close to the runner
	MagnetMinDistance = 0.5
)
