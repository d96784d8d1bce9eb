package track

import (
	"github.com/lixenwraith/lane-runner/geometry"
	"github.com/lixenwraith/lane-runner/vmath"
)

// Placement is the local transform and visibility of one optional sub-part
type Placement struct {
	Visible bool
	X, Y, Z float64 // relative to the segment center
	ScaleZ  float64 // 1 unless the part is stretched along the segment
}

// Lane divider slots, left to right
const (
	MarkerFarLeft = iota
	MarkerLeft
	MarkerRight
	MarkerFarRight
	markerCount
)

// Parts is the visibility and placement state of a segment's sub-meshes
type Parts struct {
	Floor     bool
	LeftWall  bool
	RightWall bool

	GapBefore    Placement
	GapAfter     Placement
	WarningStrip Placement

	Markers [markerCount]Placement

	Ceiling      Placement
	CeilingSides [2]Placement // left, right
}

// Segment is one pooled, reconfigurable stretch of track
// Segments returned by Track accessors are read-only to callers
type Segment struct {
	slot    int
	Visible bool

	Type   string
	Length float64
	Z      float64 // center along the track

	StartHeight float64
	EndHeight   float64
	MidHeight   float64
	RampAngle   float64 // degrees
	RotationX   float64 // radians, negated ramp angle

	HasGap    bool
	GapStart  float64 // fraction of length
	GapLength float64 // fraction of length

	HasCeiling    bool
	CeilingHeight float64

	NarrowFactor float64
	LaneCount    int

	Profile  geometry.Profile
	Geometry *geometry.ProfileSet // shared, never mutated
	Parts    Parts
}

// Slot is the pool index backing the segment
func (s *Segment) Slot() int { return s.slot }

// Start is the near edge Z
func (s *Segment) Start() float64 { return s.Z - s.Length/2 }

// End is the far edge Z
func (s *Segment) End() float64 { return s.Z + s.Length/2 }

// Contains reports whether z lies in [Start, End)
func (s *Segment) Contains(z float64) bool {
	return z >= s.Start() && z < s.End()
}

// Fraction maps z to the normalized position along the segment
func (s *Segment) Fraction(z float64) float64 {
	return (z - s.Start()) / s.Length
}

// SurfaceHeight interpolates the floor height at z
func (s *Segment) SurfaceHeight(z float64) float64 {
	return vmath.Lerp(s.StartHeight, s.EndHeight, s.Fraction(z))
}

// InTaperZone reports whether z lies on a tapering stretch of the segment's profile
func (s *Segment) InTaperZone(z float64) bool {
	return s.Profile.TaperZone(s.Fraction(z))
}

// GapBounds returns the Z range of the hole in a gap segment
func (s *Segment) GapBounds() (from, to float64) {
	from = s.Start() + s.Length*s.GapStart
	return from, from + s.Length*s.GapLength
}

// hideParts resets every optional part; floor and walls are shown
func (s *Segment) hideParts() {
	s.Parts = Parts{Floor: true, LeftWall: true, RightWall: true}
}

func (s *Segment) setProfile(p geometry.Profile, cache *geometry.Cache) {
	s.Profile = p
	s.Geometry = cache.MustLookup(p)
}
