package config

import "github.com/lixenwraith/lane-runner/parameter"

// Default returns a fresh configuration; callers may mutate it freely
func Default() *Config {
	return &Config{
		Track: TrackConfig{
			SegmentLength:     parameter.SegmentLength,
			SegmentWidth:      parameter.SegmentWidth,
			PoolSize:          parameter.SegmentPoolSize,
			VisibleSegments:   parameter.VisibleSegments,
			SafeStartSegments: parameter.SafeStartSegments,
		},
		Lanes: LaneConfig{
			Count:       parameter.StandardLaneCount,
			Spacing:     parameter.LaneSpacing,
			SwitchSpeed: parameter.LaneSwitchSpeed,
			StartLane:   parameter.StartLane,
		},
		Runner: RunnerConfig{
			JumpHeight:    parameter.JumpHeight,
			JumpDuration:  parameter.JumpDuration,
			SlideDuration: parameter.SlideDuration,
			SlideDrop:     parameter.SlideDrop,
			SlideDuck:     parameter.SlideDuck,
		},
		Meter: MeterConfig{
			Max:        parameter.MeterMax,
			Start:      parameter.MeterStart,
			Passive:    parameter.SpillPassive,
			LaneSwitch: parameter.SpillLaneSwitch,
			Jump:       parameter.SpillJump,
			Slide:      parameter.SpillSlide,
			Hit:        parameter.SpillHit,
		},
		Segments: SegmentsConfig{
			Types:                defaultSegmentTypes(),
			InitialStraightCount: parameter.InitialStraightCount,
			Budget: BudgetConfig{
				Initial:       parameter.BudgetInitial,
				Max:           parameter.BudgetMax,
				RegenRate:     parameter.BudgetRegenRate,
				DistanceScale: parameter.BudgetDistanceScale,
			},
		},
		Speed: SpeedConfig{
			Initial:       parameter.SpeedInitial,
			Max:           parameter.SpeedMax,
			Acceleration:  parameter.SpeedAcceleration,
			HitPenalty:    parameter.HitSpeedPenalty,
			HitFloorRatio: parameter.HitSpeedFloorRatio,
		},
		Obstacles: ObstacleConfig{
			PoolSize: parameter.ObstaclePoolSize,
			MinGap:   parameter.ObstacleMinGap,
			MaxGap:   parameter.ObstacleMaxGap,
			Kinds: map[string]ObstacleKind{
				"barrier":      {Width: 2.5, Height: 2, Depth: 0.5},
				"tallBarrier":  {Width: 2.5, Height: 4, Depth: 0.5, Tall: true},
				"lowBarrier":   {Width: 2.5, Height: 1, Depth: 1},
				"slideBarrier": {Width: 2.0, Height: 4, Depth: 0.3, Elevated: true, BottomY: 1.2},
			},
		},
		Collectibles: CollectibleConfig{
			PoolSize:     parameter.CollectiblePoolSize,
			Chance:       parameter.CollectibleChance,
			RefillAmount: parameter.CollectibleRefill,
		},
		Powerups: PowerupConfig{
			PoolSize:    parameter.PowerupPoolSize,
			SpawnChance: parameter.PowerupSpawnChance,
			Kinds: map[string]PowerupKind{
				"goldenBeer":  {Name: "Golden Beer", Duration: 5, SpawnWeight: 8, NoDrain: true},
				"magnet":      {Name: "Magnet", Duration: 8, SpawnWeight: 15, AttractRadius: 6},
				"shield":      {Name: "Shield", Duration: 10, SpawnWeight: 12},
				"speedSurge":  {Name: "Speed Surge", Duration: 5, SpawnWeight: 12, SpeedMultiplier: 1.5, ScoreMultiplier: 2},
				"slowMo":      {Name: "Slow-Mo Brew", Duration: 6, SpawnWeight: 10, SpeedMultiplier: 0.5},
				"ghost":       {Name: "Ghost Pint", Duration: 4, SpawnWeight: 8},
				"doubleScore": {Name: "Double Score", Duration: 10, SpawnWeight: 15, ScoreMultiplier: 2},
			},
		},
	}
}

func defaultSegmentTypes() map[string]SegmentType {
	return map[string]SegmentType{
		TypeStraight: {
			Name:         TypeStraight,
			NarrowFactor: 1,
			LaneCount:    3,
			AllowedNext:  []string{TypeStraight, TypeRampUp, TypeRampDown, TypeGap, TypeTunnel, TypeNarrow, TypeWide},
			Weight:       40,
		},
		TypeRampUp: {
			Name:         TypeRampUp,
			Difficulty:   2,
			RampAngle:    12,
			NarrowFactor: 1,
			LaneCount:    3,
			AllowedNext:  []string{TypeStraight, TypeRampDown, TypeTunnel},
			Weight:       15,
		},
		TypeRampDown: {
			Name:         TypeRampDown,
			Difficulty:   2,
			RampAngle:    -12,
			NarrowFactor: 1,
			LaneCount:    3,
			AllowedNext:  []string{TypeStraight, TypeRampUp, TypeGap},
			Weight:       15,
		},
		TypeGap: {
			Name:         TypeGap,
			Difficulty:   5,
			HasGap:       true,
			GapStart:     0.3,
			GapLength:    0.4,
			NarrowFactor: 1,
			LaneCount:    3,
			AllowedNext:  []string{TypeStraight, TypeRampUp}, // stable landing
			Weight:       10,
		},
		TypeTunnel: {
			Name:          TypeTunnel,
			Difficulty:    1,
			HasCeiling:    true,
			CeilingHeight: 4,
			NarrowFactor:  1,
			LaneCount:     3,
			AllowedNext:   []string{TypeStraight, TypeTunnel, TypeNarrow},
			Weight:        12,
		},
		TypeNarrow: {
			Name:         TypeNarrow,
			Difficulty:   3,
			NarrowFactor: parameter.DefaultNarrowFactor,
			LaneCount:    1,
			AllowedNext:  []string{TypeStraight, TypeNarrow, TypeTunnel},
			Weight:       8,
			SelfWeight:   150,
		},
		TypeWide: {
			Name:         TypeWide,
			Difficulty:   2,
			NarrowFactor: parameter.DefaultWideFactor,
			LaneCount:    5,
			AllowedNext:  []string{TypeStraight, TypeWide, TypeTunnel},
			Weight:       8,
			SelfWeight:   150,
		},
	}
}
