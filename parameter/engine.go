package parameter

import "time"

// Frame Loop
const (
	// FrameUpdateInterval is the simulation and render interval of the viewer (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single simulation step after a stall (window drag, debugger)
	MaxFrameDelta = 100 * time.Millisecond
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the track event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
