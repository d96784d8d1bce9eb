// Package track assembles, recycles and queries the procedurally generated course
package track

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"sync/atomic"

	"github.com/lixenwraith/lane-runner/config"
	"github.com/lixenwraith/lane-runner/event"
	"github.com/lixenwraith/lane-runner/geometry"
	"github.com/lixenwraith/lane-runner/lane"
	"github.com/lixenwraith/lane-runner/parameter"
	"github.com/lixenwraith/lane-runner/status"
	"github.com/lixenwraith/lane-runner/vmath"
)

// SegmentInfo is what a spawner sees of a freshly placed segment
type SegmentInfo struct {
	Slot        int
	Sequence    int // placement count since reset, from 0
	Type        string
	Z           float64 // center
	Length      float64
	StartHeight float64
	EndHeight   float64
	HasGap      bool
	LaneCount   int
	Positions   []float64 // shared, read-only
}

// Start is the near edge Z
func (i SegmentInfo) Start() float64 { return i.Z - i.Length/2 }

// HeightAt interpolates the floor height at fraction f of the segment
func (i SegmentInfo) HeightAt(f float64) float64 {
	return vmath.Lerp(i.StartHeight, i.EndHeight, f)
}

// Spawner populates placed segments with items that scroll with the track
type Spawner interface {
	SpawnForSegment(info SegmentInfo)
	Update(move float64)
	Reset()
}

// Option configures a Track at construction
type Option func(*Track)

func WithSpawner(s Spawner) Option { return func(t *Track) { t.spawner = s } }

func WithEvents(q *event.Queue) Option { return func(t *Track) { t.events = q } }

func WithMetrics(r *status.Registry) Option { return func(t *Track) { t.metrics = r } }

// Track owns the segment pool, the active window and the generation state
// All methods run on the frame goroutine
type Track struct {
	cfg      *config.Config
	cache    *geometry.Cache
	pool     *SegmentPool
	selector *Selector
	spawner  Spawner
	events   *event.Queue
	metrics  *status.Registry

	length    float64
	lanes     map[int][]float64 // positions per lane count
	active    []*Segment        // near to far
	furthestZ float64
	height    float64
	lastType  string
	spawned   int
	budget    float64
	distance  float64
	elapsed   float64
	speed     float64
	tick      int64

	statPlaced    *atomic.Int64
	statRecycled  *atomic.Int64
	statRevised   *atomic.Int64
	statFallbacks *atomic.Int64
	statExhausted *atomic.Int64
	statInUse     *atomic.Int64
	statBudget    *status.AtomicFloat
	statDistance  *status.AtomicFloat
	statLastType  *status.AtomicString
}

// New builds the segment pool over cache and leaves the window empty until Reset
func New(cfg *config.Config, cache *geometry.Cache, rng *rand.Rand, opts ...Option) (*Track, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("track: %w", err)
	}
	full, err := cache.Lookup(geometry.Full)
	if err != nil {
		return nil, fmt.Errorf("track: %w", err)
	}
	if spec := cache.Spec(); spec.Length != cfg.Track.SegmentLength {
		return nil, fmt.Errorf("track: geometry length %g does not match segment length %g",
			spec.Length, cfg.Track.SegmentLength)
	} else if spec.Width != cfg.Track.SegmentWidth {
		return nil, fmt.Errorf("track: geometry width %g does not match segment width %g",
			spec.Width, cfg.Track.SegmentWidth)
	}

	t := &Track{
		cfg:      cfg,
		cache:    cache,
		length:   cfg.Track.SegmentLength,
		pool:     NewSegmentPool(cfg.Track.PoolSize, cfg.Track.SegmentLength, full),
		selector: NewSelector(cfg.Segments, rng),
		lanes:    make(map[int][]float64),
		active:   make([]*Segment, 0, cfg.Track.PoolSize),
		lastType: defaultType,
		budget:   cfg.Segments.Budget.Initial,
		speed:    cfg.Speed.Initial,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.metrics == nil {
		t.metrics = status.NewRegistry()
	}

	t.lanes[cfg.Lanes.Count] = lane.Positions(cfg.Lanes.Count, cfg.Lanes.Spacing)
	for _, st := range cfg.Segments.Types {
		if _, ok := t.lanes[st.LaneCount]; !ok {
			t.lanes[st.LaneCount] = lane.Positions(st.LaneCount, cfg.Lanes.Spacing)
		}
	}

	m := t.metrics
	t.statPlaced = m.Ints.Get(status.KeySegmentsPlaced)
	t.statRecycled = m.Ints.Get(status.KeySegmentsRecycled)
	t.statRevised = m.Ints.Get(status.KeyProfileRevisions)
	t.statFallbacks = m.Ints.Get(status.KeyFallbacks)
	t.statExhausted = m.Ints.Get(status.KeyPoolExhausted)
	t.statInUse = m.Ints.Get(status.KeyPoolInUse)
	t.statBudget = m.Floats.Get(status.KeyBudget)
	t.statDistance = m.Floats.Get(status.KeyDistance)
	t.statLastType = m.Strings.Get(status.KeyLastType)

	return t, nil
}

// Reset releases every segment, zeroes generation state and lays out the initial window
// Segments before SafeStartSegments are not offered to the spawner
func (t *Track) Reset() {
	t.pool.ReleaseAll()
	t.active = t.active[:0]
	if t.spawner != nil {
		t.spawner.Reset()
	}

	t.furthestZ = 0
	t.height = 0
	t.lastType = defaultType
	t.spawned = 0
	t.budget = t.cfg.Segments.Budget.Initial
	t.distance = 0
	t.elapsed = 0
	t.speed = t.cfg.Speed.Initial
	t.tick = 0

	t.emit(event.EventRunReset, nil)
	for i := 0; i < t.cfg.Track.VisibleSegments; i++ {
		t.spawnNext(i >= t.cfg.Track.SafeStartSegments)
	}
	t.publish()
	log.Printf("track reset: %d segments placed, furthest z %.1f", len(t.active), t.furthestZ)
}

// Update advances the course by speed*dt
// Order: translate, budget regen, recycle expired segments, configure and spawn replacements
func (t *Track) Update(dt float64) {
	if dt <= 0 {
		return
	}
	t.tick++
	move := t.speed * dt

	for _, s := range t.active {
		s.Z -= move
	}
	if t.spawner != nil {
		t.spawner.Update(move)
	}
	t.distance += move
	t.elapsed += dt
	t.furthestZ -= move

	b := t.cfg.Segments.Budget
	t.budget += b.RegenRate*dt + t.distance*b.DistanceScale*dt
	t.budget = min(t.budget, b.Max)

	// Active is ordered near to far, so expired segments form a prefix
	threshold := -t.length + parameter.RecycleEpsilon
	for len(t.active) > 0 && t.active[0].Start() <= threshold {
		s := t.active[0]
		copy(t.active, t.active[1:])
		t.active = t.active[:len(t.active)-1]

		t.pool.Release(s)
		t.statRecycled.Add(1)
		t.emit(event.EventSegmentRecycled, event.SegmentRecycledPayload{Slot: s.slot, Type: s.Type, Distance: t.distance})

		t.spawnNext(true)
	}

	t.publish()
}

// spawnNext selects, configures and places one segment at the far end of the window
func (t *Track) spawnNext(spawn bool) {
	s, err := t.pool.Acquire()
	if err != nil {
		t.statExhausted.Add(1)
		t.emit(event.EventPoolExhausted, nil)
		log.Printf("track: %v (active %d, furthest z %.1f)", err, len(t.active), t.furthestZ)
		return
	}

	sel := t.selector.Select(t.lastType, t.spawned, t.budget)
	t.budget = max(0, t.budget-sel.Cost)
	if sel.Fallback {
		t.statFallbacks.Add(1)
		t.emit(event.EventSelectionFallback, event.FallbackPayload{Prev: t.lastType, Budget: t.budget})
	}

	t.place(s, sel, spawn)
}

// place configures s as sel.Type at the far end of the window and hands it to the spawner
func (t *Track) place(s *Segment, sel Selection, spawn bool) {
	t.configure(s, sel.Type)
	s.Z = t.furthestZ + t.length/2
	t.furthestZ += t.length
	t.height = s.EndHeight
	t.lastType = sel.Type
	t.active = append(t.active, s)

	t.statPlaced.Add(1)
	t.emit(event.EventSegmentPlaced, event.SegmentPlacedPayload{
		Slot:        s.slot,
		Type:        s.Type,
		Profile:     s.Profile,
		Z:           s.Z,
		StartHeight: s.StartHeight,
		EndHeight:   s.EndHeight,
		Cost:        sel.Cost,
		Forced:      sel.Forced,
	})

	if spawn && t.spawner != nil {
		t.spawner.SpawnForSegment(t.info(s))
	}
	t.spawned++
}

// configure turns s into a segment of the named type continuing from the current height
// It may revise the previously placed segment's exit taper
func (t *Track) configure(s *Segment, name string) {
	st, _ := t.cfg.Segments.Type(name)
	prevType, _ := t.cfg.Segments.Type(t.lastType)

	var prev *Segment
	prevProfile := geometry.Full
	if n := len(t.active); n > 0 {
		prev = t.active[n-1]
		prevProfile = prev.Profile
	}

	plan := PlanProfiles(prevType, prevProfile, st)
	if plan.PrevChanged && prev != nil {
		prev.setProfile(plan.RevisedPrev, t.cache)
		t.statRevised.Add(1)
		t.emit(event.EventProfileRevised, event.ProfileRevisedPayload{Slot: prev.slot, From: prevProfile, To: plan.RevisedPrev})
	}

	s.hideParts()
	s.Type = name
	s.setProfile(plan.Next, t.cache)

	rad := vmath.DegToRad(st.RampAngle)
	rise := math.Tan(rad) * t.length
	s.RampAngle = st.RampAngle
	s.RotationX = -rad
	s.StartHeight = t.height
	s.EndHeight = t.height + rise
	s.MidHeight = t.height + rise/2

	s.HasGap = st.HasGap
	s.GapStart, s.GapLength = 0, 0
	s.HasCeiling = st.HasCeiling
	s.CeilingHeight = 0
	s.NarrowFactor = st.NarrowFactor
	s.LaneCount = st.LaneCount

	p := &s.Parts
	switch {
	case st.IsNarrow():
	case st.IsWide():
		for i := range p.Markers {
			p.Markers[i] = t.marker(i)
		}
	default:
		p.Markers[MarkerLeft] = t.marker(MarkerLeft)
		p.Markers[MarkerRight] = t.marker(MarkerRight)
	}

	if st.HasGap {
		s.GapStart, s.GapLength = st.GapStart, st.GapLength
		p.Floor, p.LeftWall, p.RightWall = false, false, false
		p.Markers = [markerCount]Placement{}

		l := t.length
		after := 1 - st.GapStart - st.GapLength
		pieceY := -parameter.FloorDepth / 2
		p.GapBefore = Placement{Visible: true, Y: pieceY, Z: -l/2 + l*st.GapStart/2, ScaleZ: st.GapStart}
		p.GapAfter = Placement{Visible: true, Y: pieceY, Z: l/2 - l*after/2, ScaleZ: after}
		p.WarningStrip = Placement{
			Visible: true,
			Y:       parameter.WarningStripLift,
			Z:       -l/2 + l*st.GapStart - parameter.WarningStripDepth/2,
			ScaleZ:  1,
		}
	}

	if st.HasCeiling {
		s.CeilingHeight = st.CeilingHeight
		p.Ceiling = Placement{Visible: true, Y: st.CeilingHeight, ScaleZ: 1}
		sideX := t.cfg.Track.SegmentWidth/2 + parameter.CeilingSideWidth/2
		sideY := st.CeilingHeight/2 + parameter.CeilingSideLift
		p.CeilingSides[0] = Placement{Visible: true, X: -sideX, Y: sideY, ScaleZ: 1}
		p.CeilingSides[1] = Placement{Visible: true, X: sideX, Y: sideY, ScaleZ: 1}
	}
}

var markerX = [markerCount]float64{
	MarkerFarLeft:  -parameter.MarkerOuterOffset,
	MarkerLeft:     -parameter.MarkerInnerOffset,
	MarkerRight:    parameter.MarkerInnerOffset,
	MarkerFarRight: parameter.MarkerOuterOffset,
}

func (t *Track) marker(i int) Placement {
	return Placement{Visible: true, X: markerX[i], Y: parameter.MarkerLift, ScaleZ: 1}
}

func (t *Track) info(s *Segment) SegmentInfo {
	return SegmentInfo{
		Slot:        s.slot,
		Sequence:    t.spawned,
		Type:        s.Type,
		Z:           s.Z,
		Length:      s.Length,
		StartHeight: s.StartHeight,
		EndHeight:   s.EndHeight,
		HasGap:      s.HasGap,
		LaneCount:   s.LaneCount,
		Positions:   t.positions(s.LaneCount),
	}
}

func (t *Track) positions(count int) []float64 {
	if p, ok := t.lanes[count]; ok {
		return p
	}
	return lane.Positions(count, t.cfg.Lanes.Spacing)
}

func (t *Track) emit(et event.EventType, payload any) {
	if t.events == nil {
		return
	}
	t.events.Push(event.Event{Type: et, Payload: payload, Tick: t.tick})
}

func (t *Track) publish() {
	t.statInUse.Store(int64(t.pool.Stats().InUse))
	t.statBudget.Set(t.budget)
	t.statDistance.Set(t.distance)
	t.statLastType.Store(t.lastType)
}

// SetSpeed sets the scroll speed in units per second; negative values clamp to 0
func (t *Track) SetSpeed(v float64) { t.speed = max(0, v) }

func (t *Track) Speed() float64 { return t.speed }

// Distance is the total scrolled distance since Reset
func (t *Track) Distance() float64 { return t.distance }

// Elapsed is the simulated time since Reset
func (t *Track) Elapsed() float64 { return t.elapsed }

func (t *Track) Budget() float64 { return t.budget }

// FurthestZ is the far edge of the last placed segment
func (t *Track) FurthestZ() float64 { return t.furthestZ }

// Spawned is the number of segments placed since Reset
func (t *Track) Spawned() int { return t.spawned }

func (t *Track) LastType() string { return t.lastType }

// Active returns the window near to far; the slice and segments must not be modified
func (t *Track) Active() []*Segment { return t.active }

func (t *Track) Pool() PoolStats { return t.pool.Stats() }

// Cache exposes the geometry cache the track draws profiles from
func (t *Track) Cache() *geometry.Cache { return t.cache }

func (t *Track) Config() *config.Config { return t.cfg }

func (t *Track) Metrics() *status.Registry { return t.metrics }
