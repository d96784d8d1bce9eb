package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is wrapped by every validation problem
var ErrInvalidConfig = errors.New("invalid config")

// Load decodes a TOML file over Default and validates the result
// Keys the file sets that no field consumes are rejected
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("load config %s: %w: unknown keys %s", path, ErrInvalidConfig, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every structural problem at once
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	// Track
	if c.Track.SegmentLength <= 0 {
		bad("track.segment_length must be positive, got %g", c.Track.SegmentLength)
	}
	if c.Track.SegmentWidth <= 0 {
		bad("track.segment_width must be positive, got %g", c.Track.SegmentWidth)
	}
	if c.Track.VisibleSegments <= 0 {
		bad("track.visible_segments must be positive, got %d", c.Track.VisibleSegments)
	}
	if c.Track.PoolSize <= c.Track.VisibleSegments {
		bad("track.pool_size %d must exceed visible_segments %d", c.Track.PoolSize, c.Track.VisibleSegments)
	}
	if c.Track.SafeStartSegments < 0 {
		bad("track.safe_start_segments must not be negative")
	}

	// Lanes
	if c.Lanes.Count <= 0 {
		bad("lanes.count must be positive, got %d", c.Lanes.Count)
	}
	if c.Lanes.Spacing <= 0 {
		bad("lanes.spacing must be positive, got %g", c.Lanes.Spacing)
	}
	if c.Lanes.SwitchSpeed <= 0 {
		bad("lanes.switch_speed must be positive, got %g", c.Lanes.SwitchSpeed)
	}
	if c.Lanes.StartLane < 0 || c.Lanes.StartLane >= c.Lanes.Count {
		bad("lanes.start_lane %d out of range [0,%d)", c.Lanes.StartLane, c.Lanes.Count)
	}

	// Runner
	r := c.Runner
	if r.JumpHeight <= 0 || r.JumpDuration <= 0 || r.SlideDuration <= 0 {
		bad("runner jump height and move durations must be positive")
	}
	if r.SlideDrop < 0 || r.SlideDuck < 0 {
		bad("runner slide_drop and slide_duck must not be negative")
	}

	// Meter
	m := c.Meter
	if m.Max <= 0 || m.Start <= 0 || m.Start > m.Max {
		bad("meter range invalid: start %g, max %g", m.Start, m.Max)
	}
	if m.Passive < 0 || m.LaneSwitch < 0 || m.Jump < 0 || m.Slide < 0 || m.Hit < 0 {
		bad("meter spill amounts must not be negative")
	}

	c.validateSegments(bad)

	// Speed
	if c.Speed.Initial <= 0 || c.Speed.Max < c.Speed.Initial {
		bad("speed range invalid: initial %g, max %g", c.Speed.Initial, c.Speed.Max)
	}
	if c.Speed.HitPenalty <= 0 || c.Speed.HitPenalty > 1 {
		bad("speed.hit_penalty must be in (0,1], got %g", c.Speed.HitPenalty)
	}

	// Spawner
	if c.Obstacles.PoolSize <= 0 || c.Collectibles.PoolSize <= 0 || c.Powerups.PoolSize <= 0 {
		bad("spawner pool sizes must be positive")
	}
	if c.Obstacles.MinGap <= 0 || c.Obstacles.MaxGap < c.Obstacles.MinGap {
		bad("obstacle gap range invalid: min %g, max %g", c.Obstacles.MinGap, c.Obstacles.MaxGap)
	}
	if len(c.Obstacles.Kinds) == 0 {
		bad("obstacles.kinds must not be empty")
	}
	if len(c.Powerups.Kinds) == 0 {
		bad("powerups.kinds must not be empty")
	}
	for _, name := range sortedKeys(c.Powerups.Kinds) {
		if c.Powerups.Kinds[name].SpawnWeight < 0 {
			bad("powerup %s has negative spawn_weight", name)
		}
	}

	return errors.Join(errs...)
}

func (c *Config) validateSegments(bad func(string, ...any)) {
	s := c.Segments
	straight, ok := s.Types[TypeStraight]
	if !ok {
		bad("segments.types must define %q", TypeStraight)
	} else if straight.Difficulty != 0 {
		bad("%s must cost 0, got %g", TypeStraight, straight.Difficulty)
	}

	if s.Budget.Initial < 0 || s.Budget.Max < s.Budget.Initial {
		bad("budget range invalid: initial %g, max %g", s.Budget.Initial, s.Budget.Max)
	}
	if s.InitialStraightCount < 0 {
		bad("segments.initial_straight_count must not be negative")
	}

	narrow, wide := 0.0, 0.0
	for _, name := range sortedKeys(s.Types) {
		t := s.Types[name]
		if t.Name != "" && t.Name != name {
			bad("segment type %s declares name %q", name, t.Name)
		}
		if t.Difficulty < 0 {
			bad("segment type %s has negative difficulty", name)
		}
		if t.Weight < 0 || t.SelfWeight < 0 {
			bad("segment type %s has negative weight", name)
		}
		if t.LaneCount <= 0 {
			bad("segment type %s lane_count must be positive", name)
		}
		if t.NarrowFactor <= 0 {
			bad("segment type %s narrow_factor must be positive", name)
		}
		if t.HasGap && (t.GapStart < 0 || t.GapLength <= 0 || t.GapStart+t.GapLength > 1) {
			bad("segment type %s gap %g+%g does not fit the segment", name, t.GapStart, t.GapLength)
		}
		if t.HasCeiling && t.CeilingHeight <= 0 {
			bad("segment type %s ceiling_height must be positive", name)
		}
		for _, next := range t.AllowedNext {
			if _, ok := s.Types[next]; !ok {
				bad("segment type %s allows unknown type %q", name, next)
			}
		}

		switch {
		case t.IsNarrow():
			if narrow != 0 && narrow != t.NarrowFactor {
				bad("narrow types disagree on narrow_factor: %g vs %g", narrow, t.NarrowFactor)
			}
			narrow = t.NarrowFactor
		case t.IsWide():
			if wide != 0 && wide != t.NarrowFactor {
				bad("wide types disagree on narrow_factor: %g vs %g", wide, t.NarrowFactor)
			}
			wide = t.NarrowFactor
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SortedTypeNames returns segment type names in stable order
func (s SegmentsConfig) SortedTypeNames() []string { return sortedKeys(s.Types) }

// SortedKinds returns obstacle kind names in stable order
func (o ObstacleConfig) SortedKinds() []string { return sortedKeys(o.Kinds) }

// SortedKinds returns powerup kind names in stable order
func (p PowerupConfig) SortedKinds() []string { return sortedKeys(p.Kinds) }
