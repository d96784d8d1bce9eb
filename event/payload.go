package event

import "github.com/lixenwraith/lane-runner/geometry"

type SegmentPlacedPayload struct {
	Slot        int
	Type        string
	Profile     geometry.Profile
	Z           float64 // center
	StartHeight float64
	EndHeight   float64
	Cost        float64
	Forced      bool
}

type SegmentRecycledPayload struct {
	Slot     int
	Type     string
	Distance float64
}

type ProfileRevisedPayload struct {
	Slot int
	From geometry.Profile
	To   geometry.Profile
}

type FallbackPayload struct {
	Prev   string
	Budget float64
}

type LaneCountPayload struct {
	From, To int
}

type HitPayload struct {
	Kind     string
	Speed    float64 // after penalty
	Absorbed bool    // shield took the hit, speed unchanged
}

type PickupPayload struct {
	Kind    string
	Powerup bool
}

type RunEndedPayload struct {
	Reason   string
	Distance float64
	Score    float64
}

// SpawnKind classifies a spawned item
type SpawnKind uint8

const (
	SpawnObstacle SpawnKind = iota
	SpawnCollectible
	SpawnPowerup
)

// SpawnEntry is one placed item in an EventItemsSpawned batch
type SpawnEntry struct {
	Kind    SpawnKind
	Variant string // obstacle or powerup kind name
	Lane    int
	X, Y, Z float64
}
