package parameter

// Track Layout
const (
	// SegmentLength is the length of one track segment along Z (meters)
	SegmentLength = 20.0

	// SegmentWidth is the cross-section width of a standard 3-lane segment
	SegmentWidth = 12.0

	// SegmentPoolSize is the number of pre-built segments; must exceed VisibleSegments
	SegmentPoolSize = 12

	// VisibleSegments is the size of the active window ahead of the player
	VisibleSegments = 6

	// SafeStartSegments is how many leading segments of a fresh run get no hazards
	SafeStartSegments = 2

	// InitialStraightCount is the number of forced straight segments at run start
	InitialStraightCount = 3

	// RecycleEpsilon absorbs float drift when a segment sits exactly on the recycle threshold
	RecycleEpsilon = 1e-9
)

// Segment Geometry
const (
	// GeometrySlices is the subdivision count along a segment; more slices give smoother tapers
	GeometrySlices = 16

	// TaperFraction is the share of a segment's length spent interpolating width at a tapered edge
	TaperFraction = 0.2

	// WallHeight is the height of the side walls above the floor surface
	WallHeight = 1.5

	// WallThickness is the horizontal thickness of the side walls
	WallThickness = 0.5

	// FloorDepth is the thickness of the floor slab below the running surface
	FloorDepth = 0.5

	// DefaultNarrowFactor is the width factor of narrow segments when no narrow type is configured
	DefaultNarrowFactor = 0.33

	// DefaultWideFactor is the width factor of wide segments when no wide type is configured
	DefaultWideFactor = 1.67
)

// Segment Sub-parts
const (
	// WarningStripDepth is the Z depth of the hazard strip placed before a gap
	WarningStripDepth = 1.0

	// WarningStripHeight is the thickness of the hazard strip
	WarningStripHeight = 0.1

	// WarningStripLift is the Y offset of the hazard strip above the surface
	WarningStripLift = 0.05

	// MarkerInnerOffset is the X offset of the two inner lane dividers
	MarkerInnerOffset = 1.5

	// MarkerOuterOffset is the X offset of the two outer lane dividers on wide segments
	MarkerOuterOffset = 4.5

	// MarkerWidth is the X width of a lane divider strip
	MarkerWidth = 0.1

	// MarkerHeight is the thickness of a lane divider strip
	MarkerHeight = 0.05

	// MarkerLift is the Y offset of a lane divider above the surface
	MarkerLift = 0.03

	// CeilingThickness is the thickness of the tunnel roof slab
	CeilingThickness = 0.5

	// CeilingOverhang is how much wider than the track the tunnel roof is
	CeilingOverhang = 1.0

	// CeilingSideWidth is the thickness of the tunnel side panels
	CeilingSideWidth = 0.5

	// CeilingSideHeight is the height of the tunnel side panels
	CeilingSideHeight = 3.0

	// CeilingSideLift raises the side panel center above half the ceiling height
	CeilingSideLift = 1.0
)
