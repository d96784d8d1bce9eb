package parameter

// Top-down Viewer
const (
	// ViewBehind is how much track behind the runner is drawn (meters)
	ViewBehind = 6.0

	// ViewAhead is how much track ahead of the runner is drawn (meters)
	ViewAhead = 100.0

	// ViewMargin pads the widest floor on each side of the screen (meters)
	ViewMargin = 1.0

	// ViewMetricsWidth is the column width of the metrics overlay
	ViewMetricsWidth = 34

	// ViewMinWidth and ViewMinHeight are the smallest screen the viewer draws on
	ViewMinWidth  = 20
	ViewMinHeight = 8
)
