// Package session runs one course end to end: the speed ramp, the track with its spawner,
// and a runner that follows the lane layout, jumps, slides and falls over the track surface,
// collides with what the spawner placed and keeps a meter that ends the run when empty
package session

import (
	"fmt"
	"log"
	"math/rand"
	"slices"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/lixenwraith/lane-runner/config"
	"github.com/lixenwraith/lane-runner/event"
	"github.com/lixenwraith/lane-runner/geometry"
	"github.com/lixenwraith/lane-runner/lane"
	"github.com/lixenwraith/lane-runner/parameter"
	"github.com/lixenwraith/lane-runner/spawn"
	"github.com/lixenwraith/lane-runner/status"
	"github.com/lixenwraith/lane-runner/track"
	"github.com/lixenwraith/lane-runner/vmath"
)

// Powerup kinds with behaviour beyond speed and score multipliers
const (
	PowerupMagnet = "magnet"
	PowerupShield = "shield"
	PowerupGhost  = "ghost"
)

// Reasons a run ends
const (
	EndSpilled = "spilled"
	EndFell    = "fell"
)

// Option configures a Session at construction
type Option func(*Session)

// WithEvents shares q with the track and spawner
func WithEvents(q *event.Queue) Option { return func(s *Session) { s.events = q } }

// WithMetrics shares r with the track and spawner
func WithMetrics(r *status.Registry) Option { return func(s *Session) { s.metrics = r } }

// Session owns a run; all methods run on the frame goroutine
type Session struct {
	cfg     *config.Config
	id      uuid.UUID
	track   *track.Track
	spawner *spawn.Spawner
	runner  *lane.Follower
	motion  *Motion
	events  *event.Queue
	metrics *status.Registry

	baseSpeed  float64
	elapsed    float64
	invincible float64            // seconds left
	active     map[string]float64 // powerup kind -> seconds left
	expired    []string           // per-update scratch
	laneCount  int
	hits       int
	pickups    int
	meter      float64
	score      float64
	tick       int64
	over       bool
	endReason  string

	statRunID    *status.AtomicString
	statSpeed    *status.AtomicFloat
	statElapsed  *status.AtomicFloat
	statScore    *status.AtomicFloat
	statHits     *atomic.Int64
	statPickups  *atomic.Int64
	statLanes    *atomic.Int64
	statPowerups *atomic.Int64
	statMeter    *status.AtomicFloat
}

// New wires a track, spawner and runner over cache and starts the first run
// The seed drives every random choice of the run
func New(cfg *config.Config, cache *geometry.Cache, seed int64, opts ...Option) (*Session, error) {
	s := &Session{
		cfg:    cfg,
		active: make(map[string]float64),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = status.NewRegistry()
	}

	src := vmath.NewSource(seed)
	trackRng, spawnRng := rand.New(src.Split()), rand.New(src.Split())

	s.spawner = spawn.New(cfg, spawnRng, spawn.WithEvents(s.events), spawn.WithMetrics(s.metrics))
	tr, err := track.New(cfg, cache, trackRng,
		track.WithSpawner(s.spawner),
		track.WithEvents(s.events),
		track.WithMetrics(s.metrics),
	)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s.track = tr
	s.runner = lane.NewFollower(lane.Positions(cfg.Lanes.Count, cfg.Lanes.Spacing), cfg.Lanes.StartLane, cfg.Lanes.SwitchSpeed)
	s.motion = NewMotion(cfg.Runner)

	m := s.metrics
	s.statRunID = m.Strings.Get(status.KeyRunID)
	s.statSpeed = m.Floats.Get(status.KeySpeed)
	s.statElapsed = m.Floats.Get(status.KeyElapsed)
	s.statScore = m.Floats.Get(status.KeyScore)
	s.statHits = m.Ints.Get(status.KeyHits)
	s.statPickups = m.Ints.Get(status.KeyPickups)
	s.statLanes = m.Ints.Get(status.KeyLaneCount)
	s.statPowerups = m.Ints.Get(status.KeyPowerups)
	s.statMeter = m.Floats.Get(status.KeyMeter)

	s.Reset()
	return s, nil
}

// Reset starts a new run with a fresh id; the random sequence continues from the previous run
func (s *Session) Reset() {
	s.id = uuid.New()
	s.track.Reset()
	s.runner.Reset(lane.Positions(s.cfg.Lanes.Count, s.cfg.Lanes.Spacing))
	s.motion.Reset(s.track.HeightAt(parameter.RunnerZ))

	s.baseSpeed = s.cfg.Speed.Initial
	s.elapsed = 0
	s.invincible = 0
	clear(s.active)
	s.laneCount = s.cfg.Lanes.Count
	s.hits, s.pickups = 0, 0
	s.meter, s.score = s.cfg.Meter.Start, 0
	s.tick = 0
	s.over, s.endReason = false, ""

	s.statRunID.Store(s.id.String())
	s.publish()
	log.Printf("run %s started", s.id)
}

// Update advances the run by dt seconds; an ended run stays frozen until Reset
// Order: timers, speed ramp, track (which scrolls the spawner), runner, passive spill,
// magnet, floor check, collisions, empty meter
func (s *Session) Update(dt float64) {
	if dt <= 0 || s.over {
		return
	}
	s.tick++
	s.elapsed += dt
	s.tickTimers(dt)

	sc := s.cfg.Speed
	s.baseSpeed = min(s.baseSpeed+sc.Acceleration*dt, sc.Max)
	s.track.SetSpeed(s.baseSpeed * s.speedMultiplier())

	before := s.track.Distance()
	s.track.Update(dt)
	s.score += (s.track.Distance() - before) * parameter.ScorePerMeter * s.scoreMultiplier()

	info := s.track.LaneInfoAt(parameter.RunnerZ)
	if info.LaneCount != s.laneCount {
		s.emit(event.EventLaneCountChanged, event.LaneCountPayload{From: s.laneCount, To: info.LaneCount})
		s.laneCount = info.LaneCount
	}
	s.runner.Update(dt, info.Positions)
	s.motion.Update(dt, s.track.HeightAt(parameter.RunnerZ), s.track.CeilingHeightAt(parameter.RunnerZ))
	s.spill(s.cfg.Meter.Passive*dt, false)

	if _, ok := s.active[PowerupMagnet]; ok {
		radius := s.cfg.Powerups.Kinds[PowerupMagnet].AttractRadius
		s.spawner.Attract(s.runner.X(), parameter.RunnerZ, radius, dt)
	}

	s.checkFloor()
	if !s.over && s.motion.State() != Falling {
		s.collide()
	}
	if !s.over && s.meter <= 0 {
		s.end(EndSpilled)
	}
	s.publish()
}

// checkFloor ends the run after a fall past the limit and starts a fall when the
// runner is on foot over a hole; ghosts float across
func (s *Session) checkFloor() {
	if s.motion.Fallen() {
		s.meter = 0
		s.end(EndFell)
		return
	}
	if s.motion.State() == Jumping || s.Active(PowerupGhost) || !s.track.IsOverGap(parameter.RunnerZ) {
		return
	}
	if s.motion.Fall() {
		s.emit(event.EventRunnerFell, nil)
	}
}

func (s *Session) end(reason string) {
	s.over, s.endReason = true, reason
	s.emit(event.EventRunEnded, event.RunEndedPayload{Reason: reason, Distance: s.track.Distance(), Score: s.score})
	log.Printf("run %s ended: %s at %.0f m, score %.0f", s.id, reason, s.track.Distance(), s.score)
}

// spill drains the meter; while a no-drain powerup runs only hits drain it
func (s *Session) spill(amount float64, hit bool) {
	if amount <= 0 || s.meter <= 0 {
		return
	}
	if !hit && s.noDrain() {
		return
	}
	s.meter = max(0, s.meter-amount)
}

func (s *Session) noDrain() bool {
	for kind := range s.active {
		if s.cfg.Powerups.Kinds[kind].NoDrain {
			return true
		}
	}
	return false
}

func (s *Session) tickTimers(dt float64) {
	s.invincible = max(0, s.invincible-dt)

	s.expired = s.expired[:0]
	for kind, left := range s.active {
		left -= dt
		if left <= 0 {
			s.expired = append(s.expired, kind)
			continue
		}
		s.active[kind] = left
	}
	slices.Sort(s.expired)
	for _, kind := range s.expired {
		delete(s.active, kind)
		s.emit(event.EventPowerupExpired, event.PickupPayload{Kind: kind, Powerup: true})
	}
}

// collide resolves at most one obstacle hit per update, then takes every overlapping pickup
func (s *Session) collide() {
	x, z := s.runner.X(), parameter.RunnerZ
	bottom, top := s.motion.Span()

	if s.invincible == 0 && !s.Active(PowerupGhost) {
		hit := ""
		s.spawner.EachObstacle(func(_ int, o *spawn.Obstacle) {
			if hit == "" && o.Blocks(x, z, parameter.RunnerHalfWidth, parameter.RunnerHalfDepth, bottom, top) {
				hit = o.Kind
			}
		})
		if hit != "" {
			s.ApplyHit(hit)
		}
	}

	reachX := parameter.RunnerHalfWidth + parameter.PickupHalfSize
	reachZ := parameter.RunnerHalfDepth + parameter.PickupHalfSize
	touching := func(px, pz float64) bool {
		return vmath.ApproxEqual(px, x, reachX) && vmath.ApproxEqual(pz, z, reachZ)
	}

	s.spawner.EachCollectible(func(i int, c *spawn.Collectible) {
		if !touching(c.X, c.Z) {
			return
		}
		if refill, ok := s.spawner.CollectCollectible(i); ok {
			s.pickups++
			s.meter = min(s.cfg.Meter.Max, s.meter+refill)
			s.score += parameter.ScorePerCollectible
			s.emit(event.EventPickupCollected, event.PickupPayload{Kind: "collectible"})
		}
	})
	s.spawner.EachPowerup(func(i int, p *spawn.Powerup) {
		if !touching(p.X, p.Z) {
			return
		}
		if kind, pk, ok := s.spawner.CollectPowerup(i); ok {
			s.pickups++
			s.score += parameter.ScorePerPowerup
			s.Activate(kind, pk.Duration)
		}
	})
}

// ApplyHit applies an obstacle strike: a shield absorbs it, otherwise the meter spills,
// speed drops by the hit penalty, never below the floor ratio of the initial speed,
// and a grace period starts
func (s *Session) ApplyHit(kind string) {
	if s.Active(PowerupShield) {
		delete(s.active, PowerupShield)
		s.invincible = parameter.ShieldInvincibility.Seconds()
		s.emit(event.EventObstacleHit, event.HitPayload{Kind: kind, Speed: s.baseSpeed, Absorbed: true})
		return
	}

	sc := s.cfg.Speed
	s.baseSpeed = max(s.baseSpeed*sc.HitPenalty, sc.Initial*sc.HitFloorRatio)
	s.invincible = parameter.HitInvincibility.Seconds()
	s.spill(s.cfg.Meter.Hit, true)
	s.hits++
	s.emit(event.EventObstacleHit, event.HitPayload{Kind: kind, Speed: s.baseSpeed})
}

// Activate starts or refreshes a powerup for duration seconds
func (s *Session) Activate(kind string, duration float64) {
	if duration <= 0 {
		return
	}
	s.active[kind] = duration
	s.emit(event.EventPickupCollected, event.PickupPayload{Kind: kind, Powerup: true})
}

// Active reports whether the powerup kind is running
func (s *Session) Active(kind string) bool {
	_, ok := s.active[kind]
	return ok
}

// Remaining is the time left on a powerup, 0 when inactive
func (s *Session) Remaining(kind string) float64 { return s.active[kind] }

// ActivePowerups lists running powerups in name order
func (s *Session) ActivePowerups() []string {
	out := make([]string, 0, len(s.active))
	for kind := range s.active {
		out = append(out, kind)
	}
	slices.Sort(out)
	return out
}

func (s *Session) speedMultiplier() float64 {
	m := 1.0
	for kind := range s.active {
		if v := s.cfg.Powerups.Kinds[kind].SpeedMultiplier; v > 0 {
			m *= v
		}
	}
	return m
}

func (s *Session) scoreMultiplier() float64 {
	m := 1.0
	for kind := range s.active {
		if v := s.cfg.Powerups.Kinds[kind].ScoreMultiplier; v > 0 {
			m *= v
		}
	}
	return m
}

// ShiftLane moves the runner's target lane by d and spills the meter; false at the edge
// or once the run is over
func (s *Session) ShiftLane(d int) bool {
	if s.over || !s.runner.Shift(d) {
		return false
	}
	s.spill(s.cfg.Meter.LaneSwitch, false)
	return true
}

// Jump starts a jump and spills the meter; false unless the runner is on the floor
func (s *Session) Jump() bool {
	if s.over || !s.motion.Jump() {
		return false
	}
	s.spill(s.cfg.Meter.Jump, false)
	s.emit(event.EventRunnerJumped, nil)
	return true
}

// Slide starts a slide and spills the meter; false unless the runner is on the floor
func (s *Session) Slide() bool {
	if s.over || !s.motion.Slide() {
		return false
	}
	s.spill(s.cfg.Meter.Slide, false)
	s.emit(event.EventRunnerSlid, nil)
	return true
}

func (s *Session) emit(et event.EventType, payload any) {
	if s.events == nil {
		return
	}
	s.events.Push(event.Event{Type: et, Payload: payload, Tick: s.tick})
}

func (s *Session) publish() {
	s.statSpeed.Set(s.track.Speed())
	s.statElapsed.Set(s.elapsed)
	s.statScore.Set(s.score)
	s.statHits.Store(int64(s.hits))
	s.statPickups.Store(int64(s.pickups))
	s.statLanes.Store(int64(s.laneCount))
	s.statPowerups.Store(int64(len(s.active)))
	s.statMeter.Set(s.meter)
}

func (s *Session) ID() uuid.UUID { return s.id }

func (s *Session) Track() *track.Track { return s.track }

func (s *Session) Spawner() *spawn.Spawner { return s.spawner }

// Runner is the lane follower standing at RunnerZ
func (s *Session) Runner() *lane.Follower { return s.runner }

func (s *Session) Metrics() *status.Registry { return s.metrics }

// BaseSpeed is the ramped speed before powerup multipliers
func (s *Session) BaseSpeed() float64 { return s.baseSpeed }

func (s *Session) Elapsed() float64 { return s.elapsed }

func (s *Session) Hits() int { return s.hits }

func (s *Session) Pickups() int { return s.pickups }

// Motion is the runner's vertical state
func (s *Session) Motion() *Motion { return s.motion }

// Meter is the current meter level, between 0 and the configured max
func (s *Session) Meter() float64 { return s.meter }

// Over reports whether the run has ended
func (s *Session) Over() bool { return s.over }

// EndReason is EndSpilled or EndFell once the run is over, empty before
func (s *Session) EndReason() string { return s.endReason }

func (s *Session) Score() float64 { return s.score }

func (s *Session) LaneCount() int { return s.laneCount }

// Invincible reports whether a post-hit grace period is running
func (s *Session) Invincible() bool { return s.invincible > 0 }
