package track

import "math"

// LaneInfo is the lane layout in force at a Z position
type LaneInfo struct {
	LaneCount    int
	Positions    []float64 // shared, read-only
	NarrowFactor float64
}

// SegmentAt returns the active segment containing z, or nil
func (t *Track) SegmentAt(z float64) *Segment {
	for _, s := range t.active {
		if s.Contains(z) {
			return s
		}
	}
	return nil
}

// HeightAt is the floor height at z; 0 outside the window
func (t *Track) HeightAt(z float64) float64 {
	if s := t.SegmentAt(z); s != nil {
		return s.SurfaceHeight(z)
	}
	return 0
}

// CeilingHeightAt is the tunnel roof height above the floor at z, in world Y
// Returns +Inf where there is no roof
func (t *Track) CeilingHeightAt(z float64) float64 {
	s := t.SegmentAt(z)
	if s == nil || !s.HasCeiling {
		return math.Inf(1)
	}
	return s.SurfaceHeight(z) + s.CeilingHeight
}

// IsOverGap reports whether z lies over the hole of any gap segment, bounds inclusive
func (t *Track) IsOverGap(z float64) bool {
	for _, s := range t.active {
		if !s.HasGap {
			continue
		}
		if from, to := s.GapBounds(); z >= from && z <= to {
			return true
		}
	}
	return false
}

// SegmentTypeAt names the segment type at z; straight outside the window
func (t *Track) SegmentTypeAt(z float64) string {
	if s := t.SegmentAt(z); s != nil {
		return s.Type
	}
	return defaultType
}

// NarrowFactorAt is the width factor at z; 1 outside the window
func (t *Track) NarrowFactorAt(z float64) float64 {
	if s := t.SegmentAt(z); s != nil {
		return s.NarrowFactor
	}
	return 1
}

// LaneInfoAt resolves the lane layout at z
//
// Inside a segment its lane count applies, except on a taper stretch where the
// standard layout is used while the width changes. Past the far end of the window
// the last segment's count is assumed. Before the window, or with no segments,
// the standard layout applies
func (t *Track) LaneInfoAt(z float64) LaneInfo {
	std := t.cfg.Lanes.Count

	if s := t.SegmentAt(z); s != nil {
		count := s.LaneCount
		if s.InTaperZone(z) {
			count = std
		}
		return LaneInfo{LaneCount: count, Positions: t.positions(count), NarrowFactor: s.NarrowFactor}
	}

	if n := len(t.active); n > 0 && z >= t.active[n-1].End() {
		last := t.active[n-1]
		return LaneInfo{LaneCount: last.LaneCount, Positions: t.positions(last.LaneCount), NarrowFactor: last.NarrowFactor}
	}

	return LaneInfo{LaneCount: std, Positions: t.positions(std), NarrowFactor: 1}
}
