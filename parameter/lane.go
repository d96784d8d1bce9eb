package parameter

// Lanes
const (
	// StandardLaneCount is the lane count of standard-width segments and of every taper zone
	StandardLaneCount = 3

	// LaneSpacing is the X distance between adjacent lane centers
	LaneSpacing = 3.0

	// LaneSwitchSpeed is the easing rate of a lane follower towards its target X (per second)
	LaneSwitchSpeed = 10.0

	// StartLane is the lane index a follower starts in (center of the standard layout)
	StartLane = 1
)
