// Package spawn populates placed track segments with obstacles and pickups drawn from fixed pools
package spawn

import (
	"log"
	"math"
	"math/rand"
	"slices"
	"sync/atomic"

	"github.com/lixenwraith/lane-runner/config"
	"github.com/lixenwraith/lane-runner/event"
	"github.com/lixenwraith/lane-runner/parameter"
	"github.com/lixenwraith/lane-runner/pool"
	"github.com/lixenwraith/lane-runner/status"
	"github.com/lixenwraith/lane-runner/track"
)

// Option configures a Spawner at construction
type Option func(*Spawner)

func WithEvents(q *event.Queue) Option { return func(s *Spawner) { s.events = q } }

func WithMetrics(r *status.Registry) Option { return func(s *Spawner) { s.metrics = r } }

// Spawner owns the item pools and implements track.Spawner
// All methods run on the frame goroutine
type Spawner struct {
	cfg     *config.Config
	rng     *rand.Rand
	events  *event.Queue
	metrics *status.Registry

	obstacles    *pool.Arena[Obstacle]
	collectibles *pool.Arena[Collectible]
	powerups     *pool.Arena[Powerup]

	powerupKinds []string // sorted, weighted pick order
	blocked      []int    // per-row scratch
	free         []int
	batch        []event.SpawnEntry
	tick         int64

	statObstacles    *atomic.Int64
	statCollectibles *atomic.Int64
	statPowerups     *atomic.Int64
	statStarved      *atomic.Int64
}

var _ track.Spawner = (*Spawner)(nil)

// New builds the three pools from cfg; kinds are assigned to slots round-robin in name order
// cfg is expected to have passed Validate
func New(cfg *config.Config, rng *rand.Rand, opts ...Option) *Spawner {
	obstacleKinds := cfg.Obstacles.SortedKinds()
	powerupKinds := cfg.Powerups.SortedKinds()

	s := &Spawner{
		cfg:          cfg,
		rng:          rng,
		powerupKinds: powerupKinds,
		obstacles: pool.New(cfg.Obstacles.PoolSize, func(i int, o *Obstacle) {
			name := obstacleKinds[i%len(obstacleKinds)]
			k := cfg.Obstacles.Kinds[name]
			*o = Obstacle{
				Kind:     name,
				Width:    k.Width,
				Height:   k.Height,
				Depth:    k.Depth,
				Elevated: k.Elevated,
				Tall:     k.Tall,
			}
		}),
		collectibles: pool.New(cfg.Collectibles.PoolSize, func(_ int, c *Collectible) {
			c.Refill = cfg.Collectibles.RefillAmount
		}),
		powerups: pool.New(cfg.Powerups.PoolSize, func(i int, p *Powerup) {
			p.Kind = powerupKinds[i%len(powerupKinds)]
		}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = status.NewRegistry()
	}

	s.statObstacles = s.metrics.Ints.Get(status.KeyObstaclesSpawned)
	s.statCollectibles = s.metrics.Ints.Get(status.KeyCollectiblesSpawned)
	s.statPowerups = s.metrics.Ints.Get(status.KeyPowerupsSpawned)
	s.statStarved = s.metrics.Ints.Get(status.KeySpawnStarved)
	return s
}

// SpawnForSegment places up to two rows of obstacles on a freshly placed segment,
// always leaving at least one lane open, and maybe a pickup in a free lane of each row
// Gap segments stay clear
func (s *Spawner) SpawnForSegment(info track.SegmentInfo) {
	if info.HasGap || info.LaneCount <= 0 {
		return
	}

	oc := s.cfg.Obstacles
	avgGap := (oc.MinGap + oc.MaxGap) / 2
	expectedRows := info.Length / avgGap

	rows := 0
	if s.rng.Float64() < expectedRows {
		rows = 1
		if info.Length >= avgGap*parameter.SecondRowLengthRatio && s.rng.Float64() < parameter.SecondRowChance {
			rows = 2
		}
	}

	s.batch = s.batch[:0]
	for row := 0; row < rows; row++ {
		rowT := 0.5
		if rows > 1 {
			rowT = (float64(row) + 0.5) / float64(rows)
		}
		offset := (rowT + (s.rng.Float64()-0.5)*parameter.RowJitter) * info.Length
		z := info.Start() + offset
		h := info.HeightAt(offset / info.Length)

		s.spawnRow(info, z, h)
	}

	event.EmitBatch(s.events, event.SpawnBatchPool, event.EventItemsSpawned, s.batch, s.tick)
}

func (s *Spawner) spawnRow(info track.SegmentInfo, z, h float64) {
	n := info.LaneCount

	maxBlocked := min(n-1, (n+1)/2)
	if n == 1 {
		maxBlocked = 0
		if s.rng.Float64() < parameter.SingleLaneObstacleChance {
			maxBlocked = 1
		}
	}

	count := 0
	if maxBlocked > 0 {
		if n >= 5 {
			count = 2
			if s.rng.Float64() < parameter.WideThirdObstacleChance {
				count = 3
			}
		} else {
			count = 1
			if s.rng.Float64() < parameter.StandardSecondObstacleChance {
				count = 2
			}
		}
		count = min(count, maxBlocked)
	}

	s.blocked = s.blocked[:0]
	for len(s.blocked) < count {
		l := s.rng.Intn(n)
		if !slices.Contains(s.blocked, l) {
			s.blocked = append(s.blocked, l)
		}
	}

	singleLane := n == 1
	for _, l := range s.blocked {
		_, o, ok := s.obstacles.AcquireFunc(func(_ int, o *Obstacle) bool {
			return !(singleLane && o.Tall)
		})
		if !ok {
			s.statStarved.Add(1)
			continue
		}
		s.setObstacle(o, l, info.Positions[l], z, h)
	}

	if s.rng.Float64() >= s.cfg.Collectibles.Chance {
		return
	}
	s.free = s.free[:0]
	for l := 0; l < n; l++ {
		if !slices.Contains(s.blocked, l) {
			s.free = append(s.free, l)
		}
	}
	if len(s.free) == 0 {
		return
	}
	l := s.free[s.rng.Intn(len(s.free))]
	x := info.Positions[l]

	if s.rng.Float64() < s.cfg.Powerups.SpawnChance {
		want := s.pickPowerup()
		_, p, ok := s.powerups.AcquireFunc(func(_ int, p *Powerup) bool { return p.Kind == want })
		if !ok {
			_, p, ok = s.powerups.Acquire()
		}
		if !ok {
			s.statStarved.Add(1)
			return
		}
		p.Lane, p.X, p.Y, p.Z = l, x, parameter.PowerupLift+h, z
		s.statPowerups.Add(1)
		s.batch = append(s.batch, event.SpawnEntry{Kind: event.SpawnPowerup, Variant: p.Kind, Lane: l, X: p.X, Y: p.Y, Z: p.Z})
		return
	}

	_, c, ok := s.collectibles.Acquire()
	if !ok {
		s.statStarved.Add(1)
		return
	}
	s.setCollectible(c, l, x, z, h)
}

// setObstacle stands o on the floor at height h, or hangs it BottomY above when elevated
func (s *Spawner) setObstacle(o *Obstacle, lane int, x, z, h float64) {
	o.Lane = lane
	o.X = x
	o.Z = z
	o.Y = o.Height/2 + h
	if o.Elevated {
		o.Y += s.cfg.Obstacles.Kinds[o.Kind].BottomY
	}
	s.statObstacles.Add(1)
	s.batch = append(s.batch, event.SpawnEntry{Kind: event.SpawnObstacle, Variant: o.Kind, Lane: lane, X: o.X, Y: o.Y, Z: o.Z})
}

func (s *Spawner) setCollectible(c *Collectible, lane int, x, z, h float64) {
	c.Lane, c.X, c.Y, c.Z = lane, x, parameter.CollectibleLift+h, z
	s.statCollectibles.Add(1)
	s.batch = append(s.batch, event.SpawnEntry{Kind: event.SpawnCollectible, Lane: lane, X: c.X, Y: c.Y, Z: c.Z})
}

// PlaceObstacle puts a pooled obstacle of the named kind at lane, x and z on a floor of height h
// False when no slot of that kind is free
func (s *Spawner) PlaceObstacle(kind string, lane int, x, z, h float64) bool {
	_, o, ok := s.obstacles.AcquireFunc(func(_ int, o *Obstacle) bool { return o.Kind == kind })
	if !ok {
		s.statStarved.Add(1)
		return false
	}
	s.batch = s.batch[:0]
	s.setObstacle(o, lane, x, z, h)
	event.EmitBatch(s.events, event.SpawnBatchPool, event.EventItemsSpawned, s.batch, s.tick)
	return true
}

// PlaceCollectible puts a pooled collectible at lane, x and z on a floor of height h
func (s *Spawner) PlaceCollectible(lane int, x, z, h float64) bool {
	_, c, ok := s.collectibles.Acquire()
	if !ok {
		s.statStarved.Add(1)
		return false
	}
	s.batch = s.batch[:0]
	s.setCollectible(c, lane, x, z, h)
	event.EmitBatch(s.events, event.SpawnBatchPool, event.EventItemsSpawned, s.batch, s.tick)
	return true
}

// pickPowerup draws a kind by spawn weight
func (s *Spawner) pickPowerup() string {
	kinds := s.cfg.Powerups.Kinds
	total := 0.0
	for _, name := range s.powerupKinds {
		total += max(0, kinds[name].SpawnWeight)
	}
	r := s.rng.Float64() * total
	for _, name := range s.powerupKinds {
		r -= max(0, kinds[name].SpawnWeight)
		if r < 0 {
			return name
		}
	}
	return s.powerupKinds[len(s.powerupKinds)-1]
}

// Update scrolls every live item by move and returns those behind the runner to their pools
func (s *Spawner) Update(move float64) {
	s.tick++
	s.obstacles.Each(func(i int, o *Obstacle) {
		o.Z -= move
		if o.Z < parameter.ItemRecycleZ {
			s.obstacles.Release(i)
		}
	})
	s.collectibles.Each(func(i int, c *Collectible) {
		c.Z -= move
		if c.Z < parameter.ItemRecycleZ {
			s.collectibles.Release(i)
		}
	})
	s.powerups.Each(func(i int, p *Powerup) {
		p.Z -= move
		if p.Z < parameter.ItemRecycleZ {
			s.powerups.Release(i)
		}
	})
}

// Reset returns every item to its pool
func (s *Spawner) Reset() {
	s.obstacles.ReleaseAll()
	s.collectibles.ReleaseAll()
	s.powerups.ReleaseAll()
	s.tick = 0
	log.Printf("spawner reset: pools %d/%d/%d", s.obstacles.Cap(), s.collectibles.Cap(), s.powerups.Cap())
}

// CollectCollectible releases collectible i and returns its refill amount
func (s *Spawner) CollectCollectible(i int) (float64, bool) {
	if !s.collectibles.Live(i) {
		return 0, false
	}
	refill := s.collectibles.Get(i).Refill
	s.collectibles.Release(i)
	return refill, true
}

// CollectPowerup releases powerup i and returns its kind and settings
func (s *Spawner) CollectPowerup(i int) (string, config.PowerupKind, bool) {
	if !s.powerups.Live(i) {
		return "", config.PowerupKind{}, false
	}
	kind := s.powerups.Get(i).Kind
	s.powerups.Release(i)
	return kind, s.cfg.Powerups.Kinds[kind], true
}

// Attract pulls pickups within radius of the runner sideways towards it
// The pull fades linearly to zero at the radius; Z is left to the scroll
func (s *Spawner) Attract(x, z, radius, dt float64) {
	if radius <= 0 || dt <= 0 {
		return
	}
	pull := func(px, pz float64) float64 {
		dx, dz := x-px, z-pz
		dist := math.Hypot(dx, dz)
		if dist >= radius || dist <= parameter.MagnetMinDistance {
			return px
		}
		force := (1 - dist/radius) * parameter.MagnetAttractSpeed * dt
		return px + dx/dist*force
	}
	s.collectibles.Each(func(_ int, c *Collectible) { c.X = pull(c.X, c.Z) })
	s.powerups.Each(func(_ int, p *Powerup) { p.X = pull(p.X, p.Z) })
}

// EachObstacle visits live obstacles in slot order
func (s *Spawner) EachObstacle(fn func(i int, o *Obstacle)) { s.obstacles.Each(fn) }

// EachCollectible visits live collectibles in slot order; fn may collect the one it is given
func (s *Spawner) EachCollectible(fn func(i int, c *Collectible)) { s.collectibles.Each(fn) }

// EachPowerup visits live powerups in slot order; fn may collect the one it is given
func (s *Spawner) EachPowerup(fn func(i int, p *Powerup)) { s.powerups.Each(fn) }

// Counts reports live items per pool
func (s *Spawner) Counts() (obstacles, collectibles, powerups int) {
	return s.obstacles.InUse(), s.collectibles.InUse(), s.powerups.InUse()
}
