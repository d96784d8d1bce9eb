package geometry

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/lane-runner/config"
	"github.com/lixenwraith/lane-runner/parameter"
)

// TaperFraction is the share of segment length over which a taper runs at each tapering end
const TaperFraction = parameter.TaperFraction

// ErrProfileNotFound is returned by Lookup for a profile absent from the cache
var ErrProfileNotFound = errors.New("geometry profile not found")

// Spec is the geometry input of a cache build
type Spec struct {
	Length        float64
	Width         float64 // standard (3-lane) width
	NarrowFactor  float64
	WideFactor    float64
	Slices        int
	WallHeight    float64
	WallThickness float64
	FloorDepth    float64
}

// DefaultSpec returns the spec built from parameter defaults
func DefaultSpec() Spec {
	return Spec{
		Length:        parameter.SegmentLength,
		Width:         parameter.SegmentWidth,
		NarrowFactor:  parameter.DefaultNarrowFactor,
		WideFactor:    parameter.DefaultWideFactor,
		Slices:        parameter.GeometrySlices,
		WallHeight:    parameter.WallHeight,
		WallThickness: parameter.WallThickness,
		FloorDepth:    parameter.FloorDepth,
	}
}

// SpecFor returns the defaults with the track dimensions and width factors of cfg
func SpecFor(cfg *config.Config) Spec {
	spec := DefaultSpec()
	spec.Length = cfg.Track.SegmentLength
	spec.Width = cfg.Track.SegmentWidth
	spec.NarrowFactor = cfg.Segments.NarrowFactor()
	spec.WideFactor = cfg.Segments.WideFactor()
	return spec
}

// WidthFunc returns the width function for p under this spec
func (s Spec) WidthFunc(p Profile) WidthFunc {
	return widthFunc(p, s.Width, s.Width*s.NarrowFactor, s.Width*s.WideFactor)
}

// ProfileSet is the floor and wall meshes of one profile
type ProfileSet struct {
	Profile   Profile
	Floor     *Mesh
	LeftWall  *Mesh
	RightWall *Mesh
}

// Parts are the fixed-shape sub-part meshes shared by every segment
// Gap pieces span the full segment length and are scaled along Z by the caller
type Parts struct {
	GapPiece     *Mesh
	WarningStrip *Mesh
	Marker       *Mesh
	Ceiling      *Mesh
	CeilingSide  *Mesh
}

// Cache holds every profile's meshes, built once
type Cache struct {
	spec  Spec
	sets  map[Profile]*ProfileSet
	parts Parts
}

// NewCache builds the meshes of all nine profiles and the sub-part boxes
func NewCache(spec Spec) *Cache {
	c := &Cache{
		spec: spec,
		sets: make(map[Profile]*ProfileSet, profileCount),
	}

	for _, p := range Profiles() {
		w := spec.WidthFunc(p)
		c.sets[p] = &ProfileSet{
			Profile:   p,
			Floor:     FloorMesh(spec.Length, w, spec.Slices, spec.FloorDepth),
			LeftWall:  WallMesh(spec.Length, w, spec.Slices, spec.WallHeight, spec.WallThickness, spec.FloorDepth, Left),
			RightWall: WallMesh(spec.Length, w, spec.Slices, spec.WallHeight, spec.WallThickness, spec.FloorDepth, Right),
		}
	}

	c.parts = Parts{
		GapPiece:     BoxMesh(spec.Width, spec.FloorDepth, spec.Length),
		WarningStrip: BoxMesh(spec.Width, parameter.WarningStripHeight, parameter.WarningStripDepth),
		Marker:       BoxMesh(parameter.MarkerWidth, parameter.MarkerHeight, spec.Length),
		Ceiling:      BoxMesh(spec.Width+parameter.CeilingOverhang, parameter.CeilingThickness, spec.Length),
		CeilingSide:  BoxMesh(parameter.CeilingSideWidth, parameter.CeilingSideHeight, spec.Length),
	}
	return c
}

func (c *Cache) Spec() Spec { return c.spec }

func (c *Cache) Parts() Parts { return c.parts }

// Lookup returns the cached set for p
func (c *Cache) Lookup(p Profile) (*ProfileSet, error) {
	set, ok := c.sets[p]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrProfileNotFound, p)
	}
	return set, nil
}

// MustLookup is Lookup for profiles known valid; a miss is a programming error
func (c *Cache) MustLookup(p Profile) *ProfileSet {
	set, err := c.Lookup(p)
	if err != nil {
		panic(err)
	}
	return set
}

// Len returns the number of cached profiles
func (c *Cache) Len() int { return len(c.sets) }
