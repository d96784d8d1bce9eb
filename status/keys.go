package status

// Metric keys published by the simulation
const (
	// Track
	KeySegmentsPlaced   = "track.segments_placed"
	KeySegmentsRecycled = "track.segments_recycled"
	KeyProfileRevisions = "track.profile_revisions"
	KeyFallbacks        = "track.fallbacks"
	KeyPoolExhausted    = "track.pool_exhausted"
	KeyPoolInUse        = "track.pool_in_use"
	KeyBudget           = "track.budget"
	KeyDistance         = "track.distance"
	KeyLastType         = "track.last_type"

	// Spawner
	KeyObstaclesSpawned    = "spawn.obstacles"
	KeyCollectiblesSpawned = "spawn.collectibles"
	KeyPowerupsSpawned     = "spawn.powerups"
	KeySpawnStarved        = "spawn.pool_starved"

	// Session
	KeyRunID     = "run.id"
	KeySpeed     = "run.speed"
	KeyElapsed   = "run.elapsed"
	KeyHits      = "run.hits"
	KeyPickups   = "run.pickups"
	KeyLaneCount = "run.lane_count"
	KeyScore     = "run.score"
	KeyPowerups  = "run.powerups"
	KeyMeter     = "run.meter"
)
