package track

import (
	"errors"

	"github.com/lixenwraith/lane-runner/geometry"
	"github.com/lixenwraith/lane-runner/pool"
)

// ErrPoolExhausted is returned when every pooled segment is in the active window
var ErrPoolExhausted = errors.New("segment pool exhausted")

// SegmentPool is the fixed set of segments the assembler reconfigures
type SegmentPool struct {
	arena *pool.Arena[Segment]
}

// NewSegmentPool pre-builds size invisible full-width segments with optional parts hidden
func NewSegmentPool(size int, length float64, full *geometry.ProfileSet) *SegmentPool {
	return &SegmentPool{
		arena: pool.New(size, func(i int, s *Segment) {
			s.slot = i
			s.Length = length
			s.Type = defaultType
			s.NarrowFactor = 1
			s.Profile = geometry.Full
			s.Geometry = full
			s.hideParts()
		}),
	}
}

// Acquire takes a free segment and marks it visible
func (p *SegmentPool) Acquire() (*Segment, error) {
	_, s, ok := p.arena.Acquire()
	if !ok {
		return nil, ErrPoolExhausted
	}
	s.Visible = true
	return s, nil
}

// Release marks s invisible and frees its slot; false if it was not acquired
func (p *SegmentPool) Release(s *Segment) bool {
	if !p.arena.Release(s.slot) {
		return false
	}
	s.Visible = false
	return true
}

// ReleaseAll returns every segment to the pool
func (p *SegmentPool) ReleaseAll() {
	p.arena.Each(func(_ int, s *Segment) { s.Visible = false })
	p.arena.ReleaseAll()
}

// PoolStats is a point-in-time view of pool occupancy
type PoolStats struct {
	InUse, Free, Cap int
}

func (p *SegmentPool) Stats() PoolStats {
	return PoolStats{InUse: p.arena.InUse(), Free: p.arena.Free(), Cap: p.arena.Cap()}
}

// Visible counts segments flagged visible; equals InUse when the pool is consistent
func (p *SegmentPool) Visible() int {
	n := 0
	for i := 0; i < p.arena.Cap(); i++ {
		if p.arena.Get(i).Visible {
			n++
		}
	}
	return n
}
