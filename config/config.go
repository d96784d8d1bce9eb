// Package config holds the runtime configuration tree of a run
// Defaults come from the parameter package; an optional TOML file overrides them
package config

import (
	"github.com/lixenwraith/lane-runner/parameter"
)

// Segment type names referenced by code
// Every other type is data-driven through Segments.Types
const (
	TypeStraight = "straight"
	TypeRampUp   = "rampUp"
	TypeRampDown = "rampDown"
	TypeGap      = "gap"
	TypeTunnel   = "tunnel"
	TypeNarrow   = "narrow"
	TypeWide     = "wide"
)

// Config is the complete configuration of a run
type Config struct {
	Track        TrackConfig       `toml:"track"`
	Lanes        LaneConfig        `toml:"lanes"`
	Runner       RunnerConfig      `toml:"runner"`
	Meter        MeterConfig       `toml:"meter"`
	Segments     SegmentsConfig    `toml:"segments"`
	Speed        SpeedConfig       `toml:"speed"`
	Obstacles    ObstacleConfig    `toml:"obstacles"`
	Collectibles CollectibleConfig `toml:"collectibles"`
	Powerups     PowerupConfig     `toml:"powerups"`
}

// TrackConfig sizes the segment window and pool
type TrackConfig struct {
	SegmentLength     float64 `toml:"segment_length"`
	SegmentWidth      float64 `toml:"segment_width"`
	PoolSize          int     `toml:"pool_size"`
	VisibleSegments   int     `toml:"visible_segments"`
	SafeStartSegments int     `toml:"safe_start_segments"`
}

// LaneConfig describes lane spacing and follower easing
type LaneConfig struct {
	Count       int     `toml:"count"`
	Spacing     float64 `toml:"spacing"`
	SwitchSpeed float64 `toml:"switch_speed"`
	StartLane   int     `toml:"start_lane"`
}

// RunnerConfig shapes the runner's jump and slide arcs
type RunnerConfig struct {
	JumpHeight    float64 `toml:"jump_height"`
	JumpDuration  float64 `toml:"jump_duration"` // seconds
	SlideDuration float64 `toml:"slide_duration"`
	SlideDrop     float64 `toml:"slide_drop"`
	SlideDuck     float64 `toml:"slide_duck"`
}

// MeterConfig is the refillable meter; the run ends when it empties
// Spill amounts are per action, Passive is per second
type MeterConfig struct {
	Max        float64 `toml:"max"`
	Start      float64 `toml:"start"`
	Passive    float64 `toml:"passive"`
	LaneSwitch float64 `toml:"lane_switch"`
	Jump       float64 `toml:"jump"`
	Slide      float64 `toml:"slide"`
	Hit        float64 `toml:"hit"`
}

// SegmentType is the static description of one kind of segment
type SegmentType struct {
	Name          string   `toml:"name"`
	Difficulty    float64  `toml:"difficulty"`
	RampAngle     float64  `toml:"ramp_angle"` // degrees, positive climbs
	HasGap        bool     `toml:"has_gap"`
	GapStart      float64  `toml:"gap_start"`  // fraction of length
	GapLength     float64  `toml:"gap_length"` // fraction of length
	HasCeiling    bool     `toml:"has_ceiling"`
	CeilingHeight float64  `toml:"ceiling_height"`
	NarrowFactor  float64  `toml:"narrow_factor"` // 1 standard, <1 narrow, >1 wide
	LaneCount     int      `toml:"lane_count"`
	AllowedNext   []string `toml:"allowed_next"`
	Weight        float64  `toml:"weight"`
	SelfWeight    float64  `toml:"self_weight"` // replaces Weight on repeats when > 0
}

// IsNarrow reports whether the type is narrower than standard
func (t SegmentType) IsNarrow() bool { return t.NarrowFactor < 1 }

// IsWide reports whether the type is wider than standard
func (t SegmentType) IsWide() bool { return t.NarrowFactor > 1 }

// Allows reports whether next may follow this type
func (t SegmentType) Allows(next string) bool {
	for _, n := range t.AllowedNext {
		if n == next {
			return true
		}
	}
	return false
}

// BudgetConfig drives the difficulty budget
type BudgetConfig struct {
	Initial       float64 `toml:"initial"`
	Max           float64 `toml:"max"`
	RegenRate     float64 `toml:"regen_rate"`
	DistanceScale float64 `toml:"distance_scale"`
}

// SegmentsConfig is the procedural generation table
type SegmentsConfig struct {
	Types                map[string]SegmentType `toml:"types"`
	Budget               BudgetConfig           `toml:"budget"`
	InitialStraightCount int                    `toml:"initial_straight_count"`
}

// Type returns the named type; ok is false when unknown
func (s SegmentsConfig) Type(name string) (SegmentType, bool) {
	t, ok := s.Types[name]
	return t, ok
}

// NarrowFactor returns the width factor shared by all narrow types
func (s SegmentsConfig) NarrowFactor() float64 {
	for _, name := range sortedKeys(s.Types) {
		if t := s.Types[name]; t.IsNarrow() {
			return t.NarrowFactor
		}
	}
	return parameter.DefaultNarrowFactor
}

// WideFactor returns the width factor shared by all wide types
func (s SegmentsConfig) WideFactor() float64 {
	for _, name := range sortedKeys(s.Types) {
		if t := s.Types[name]; t.IsWide() {
			return t.NarrowFactor
		}
	}
	return parameter.DefaultWideFactor
}

// SpeedConfig is the run speed ramp
type SpeedConfig struct {
	Initial       float64 `toml:"initial"`
	Max           float64 `toml:"max"`
	Acceleration  float64 `toml:"acceleration"`
	HitPenalty    float64 `toml:"hit_penalty"`
	HitFloorRatio float64 `toml:"hit_floor_ratio"`
}

// ObstacleKind is the shape of one obstacle variant
type ObstacleKind struct {
	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`
	Depth    float64 `toml:"depth"`
	Elevated bool    `toml:"elevated"` // hangs from BottomY, must be slid under
	BottomY  float64 `toml:"bottom_y"`
	Tall     bool    `toml:"tall"` // cannot be jumped; never placed on single-lane segments
}

// ObstacleConfig sizes obstacle placement
type ObstacleConfig struct {
	PoolSize int                     `toml:"pool_size"`
	MinGap   float64                 `toml:"min_gap"`
	MaxGap   float64                 `toml:"max_gap"`
	Kinds    map[string]ObstacleKind `toml:"kinds"`
}

// CollectibleConfig sizes collectible placement
type CollectibleConfig struct {
	PoolSize     int     `toml:"pool_size"`
	Chance       float64 `toml:"chance"`
	RefillAmount float64 `toml:"refill_amount"`
}

// PowerupKind is one powerup variant
type PowerupKind struct {
	Name            string  `toml:"name"`
	Duration        float64 `toml:"duration"` // seconds
	SpawnWeight     float64 `toml:"spawn_weight"`
	SpeedMultiplier float64 `toml:"speed_multiplier"`
	ScoreMultiplier float64 `toml:"score_multiplier"`
	AttractRadius   float64 `toml:"attract_radius"`
	NoDrain         bool    `toml:"no_drain"` // meter only drains on hits while active
}

// PowerupConfig sizes powerup placement
type PowerupConfig struct {
	PoolSize    int                    `toml:"pool_size"`
	SpawnChance float64                `toml:"spawn_chance"`
	Kinds       map[string]PowerupKind `toml:"kinds"`
}
