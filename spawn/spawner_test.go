package spawn

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/lane-runner/config"
	"github.com/lixenwraith/lane-runner/event"
	"github.com/lixenwraith/lane-runner/lane"
	"github.com/lixenwraith/lane-runner/parameter"
	"github.com/lixenwraith/lane-runner/status"
	"github.com/lixenwraith/lane-runner/track"
)

func segmentInfo(lanes int, z, startH, endH float64) track.SegmentInfo {
	return track.SegmentInfo{
		Type:        config.TypeStraight,
		Z:           z,
		Length:      parameter.SegmentLength,
		StartHeight: startH,
		EndHeight:   endH,
		LaneCount:   lanes,
		Positions:   lane.Positions(lanes, parameter.LaneSpacing),
	}
}

func newTestSpawner(seed int64, opts ...Option) *Spawner {
	return New(config.Default(), rand.New(rand.NewSource(seed)), opts...)
}

func TestSpawnForSegment_GapStaysClear(t *testing.T) {
	s := newTestSpawner(1)
	info := segmentInfo(3, 50, 0, 0)
	info.HasGap = true
	for i := 0; i < 200; i++ {
		s.SpawnForSegment(info)
	}
	if o, c, p := s.Counts(); o+c+p != 0 {
		t.Fatalf("gap segment got %d obstacles %d collectibles %d powerups", o, c, p)
	}
}

func TestSpawnForSegment_RowsLeaveALaneOpen(t *testing.T) {
	tests := []struct {
		lanes      int
		maxBlocked int
	}{
		{1, 1},
		{3, 2},
		{5, 3},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d lanes", tt.lanes), func(t *testing.T) {
			s := newTestSpawner(int64(tt.lanes))
			info := segmentInfo(tt.lanes, 50, 0, 0)
			seen := 0
			for i := 0; i < 500; i++ {
				s.Reset()
				s.SpawnForSegment(info)

				rows := map[float64][]int{}
				s.EachObstacle(func(_ int, o *Obstacle) {
					rows[o.Z] = append(rows[o.Z], o.Lane)
					if o.X != info.Positions[o.Lane] {
						t.Errorf("obstacle x %g not on lane %d", o.X, o.Lane)
					}
					if tt.lanes == 1 && o.Tall {
						t.Errorf("tall %s on a single-lane segment", o.Kind)
					}
					if o.Z < info.Start() || o.Z >= info.Start()+info.Length {
						t.Errorf("obstacle z %g outside segment", o.Z)
					}
				})
				if len(rows) > 2 {
					t.Fatalf("%d rows on one segment", len(rows))
				}
				for z, lanes := range rows {
					seen++
					if len(lanes) > tt.maxBlocked {
						t.Fatalf("row at %g blocks %d lanes, max %d", z, len(lanes), tt.maxBlocked)
					}
					if tt.lanes > 1 && len(lanes) >= tt.lanes {
						t.Fatalf("row at %g blocks every lane", z)
					}
					uniq := map[int]bool{}
					for _, l := range lanes {
						if uniq[l] {
							t.Fatalf("lane %d blocked twice at %g", l, z)
						}
						uniq[l] = true
					}
				}
			}
			if seen == 0 {
				t.Error("no obstacle rows spawned")
			}
		})
	}
}

func TestSpawnForSegment_Heights(t *testing.T) {
	s := newTestSpawner(3)
	cfg := config.Default()
	info := segmentInfo(3, 50, 2, 6)

	for i := 0; i < 300; i++ {
		s.SpawnForSegment(info)
	}
	surface := func(z float64) float64 {
		return info.HeightAt((z - info.Start()) / info.Length)
	}

	s.EachObstacle(func(_ int, o *Obstacle) {
		kind := cfg.Obstacles.Kinds[o.Kind]
		want := kind.Height/2 + surface(o.Z)
		if kind.Elevated {
			want += kind.BottomY
		}
		if math.Abs(o.Y-want) > 1e-9 {
			t.Errorf("%s y %g, want %g", o.Kind, o.Y, want)
		}
	})
	s.EachCollectible(func(_ int, c *Collectible) {
		if want := parameter.CollectibleLift + surface(c.Z); math.Abs(c.Y-want) > 1e-9 {
			t.Errorf("collectible y %g, want %g", c.Y, want)
		}
	})
	s.EachPowerup(func(_ int, p *Powerup) {
		if want := parameter.PowerupLift + surface(p.Z); math.Abs(p.Y-want) > 1e-9 {
			t.Errorf("powerup y %g, want %g", p.Y, want)
		}
	})
}

func TestSpawnForSegment_PickupsInFreeLanes(t *testing.T) {
	s := newTestSpawner(5)
	info := segmentInfo(3, 50, 0, 0)
	pickups := 0
	for i := 0; i < 400; i++ {
		s.Reset()
		s.SpawnForSegment(info)

		blocked := map[float64]map[int]bool{}
		s.EachObstacle(func(_ int, o *Obstacle) {
			if blocked[o.Z] == nil {
				blocked[o.Z] = map[int]bool{}
			}
			blocked[o.Z][o.Lane] = true
		})
		check := func(lane int, z float64) {
			pickups++
			if blocked[z][lane] {
				t.Fatalf("pickup in blocked lane %d at %g", lane, z)
			}
		}
		s.EachCollectible(func(_ int, c *Collectible) { check(c.Lane, c.Z) })
		s.EachPowerup(func(_ int, p *Powerup) { check(p.Lane, p.Z) })
	}
	if pickups == 0 {
		t.Error("no pickups spawned")
	}
}

func TestUpdate_ScrollsAndRecycles(t *testing.T) {
	s := newTestSpawner(7)
	info := segmentInfo(5, 10, 0, 0)
	for s.obstacles.InUse() == 0 {
		s.SpawnForSegment(info)
	}

	before := map[int]float64{}
	s.EachObstacle(func(i int, o *Obstacle) { before[i] = o.Z })
	s.Update(1.5)
	s.EachObstacle(func(i int, o *Obstacle) {
		if math.Abs(o.Z-(before[i]-1.5)) > 1e-12 {
			t.Errorf("obstacle %d at %g, want %g", i, o.Z, before[i]-1.5)
		}
	})

	// Everything starts before z=20, so 30 more units puts it all behind the recycle line
	s.Update(30)
	if o, c, p := s.Counts(); o+c+p != 0 {
		t.Errorf("items left after scrolling past: %d %d %d", o, c, p)
	}
}

func TestCollect(t *testing.T) {
	s := newTestSpawner(1)

	i, c, _ := s.collectibles.Acquire()
	c.Z = 0
	refill, ok := s.CollectCollectible(i)
	if !ok || refill != parameter.CollectibleRefill {
		t.Errorf("collect = %g, %v", refill, ok)
	}
	if _, ok := s.CollectCollectible(i); ok {
		t.Error("collected the same item twice")
	}

	j, p, _ := s.powerups.Acquire()
	kind, pk, ok := s.CollectPowerup(j)
	if !ok || kind != p.Kind || pk != config.Default().Powerups.Kinds[kind] {
		t.Errorf("collect powerup = %q %+v %v", kind, pk, ok)
	}
	if _, _, ok := s.CollectPowerup(j); ok {
		t.Error("collected the same powerup twice")
	}
	if _, _, ok := s.CollectPowerup(-1); ok {
		t.Error("collected an out-of-range slot")
	}
}

func TestPlace(t *testing.T) {
	q := event.NewQueue()
	s := newTestSpawner(1, WithEvents(q))

	if !s.PlaceObstacle("slideBarrier", 1, 0, 10, 2) {
		t.Fatal("no slideBarrier slot")
	}
	var hanging *Obstacle
	s.EachObstacle(func(_ int, o *Obstacle) { hanging = o })
	if hanging.Kind != "slideBarrier" || hanging.Lane != 1 || hanging.Z != 10 {
		t.Fatalf("placed %+v", hanging)
	}
	if math.Abs(hanging.Bottom()-3.2) > 1e-9 {
		t.Errorf("hanging bottom %g, want floor 2 plus 1.2", hanging.Bottom())
	}

	if !s.PlaceCollectible(0, -3, 12, 2) {
		t.Fatal("no collectible slot")
	}
	if s.PlaceObstacle("wall", 0, 0, 0, 0) {
		t.Error("placed an unknown kind")
	}

	evs := q.Consume()
	if len(evs) != 2 {
		t.Fatalf("%d events, want one batch per placement", len(evs))
	}
	for _, ev := range evs {
		if bp := ev.Payload.(*event.BatchPayload[event.SpawnEntry]); len(bp.Entries) != 1 {
			t.Errorf("batch of %d", len(bp.Entries))
		}
		event.ReleasePayload(ev)
	}
	if o, c, _ := s.Counts(); o != 1 || c != 1 {
		t.Errorf("counts %d obstacles %d collectibles", o, c)
	}
}

func TestPools_KindsRoundRobin(t *testing.T) {
	s := newTestSpawner(1)
	cfg := config.Default()
	obstacleKinds := cfg.Obstacles.SortedKinds()
	for i := 0; i < s.obstacles.Cap(); i++ {
		if got, want := s.obstacles.Get(i).Kind, obstacleKinds[i%len(obstacleKinds)]; got != want {
			t.Errorf("obstacle slot %d kind %s, want %s", i, got, want)
		}
	}
	powerupKinds := cfg.Powerups.SortedKinds()
	for i := 0; i < s.powerups.Cap(); i++ {
		if got, want := s.powerups.Get(i).Kind, powerupKinds[i%len(powerupKinds)]; got != want {
			t.Errorf("powerup slot %d kind %s, want %s", i, got, want)
		}
	}
}

func TestPickPowerup_FollowsWeights(t *testing.T) {
	s := newTestSpawner(11)
	cfg := config.Default()
	total := 0.0
	for _, k := range cfg.Powerups.Kinds {
		total += k.SpawnWeight
	}

	const n = 20000
	counts := map[string]int{}
	for i := 0; i < n; i++ {
		counts[s.pickPowerup()]++
	}
	for name, k := range cfg.Powerups.Kinds {
		want := k.SpawnWeight / total
		got := float64(counts[name]) / n
		if math.Abs(got-want) > 0.02 {
			t.Errorf("%s drawn %.3f, want about %.3f", name, got, want)
		}
	}
}

func TestAttract(t *testing.T) {
	s := newTestSpawner(1)
	place := func(x, z float64) int {
		i, c, _ := s.collectibles.Acquire()
		c.X, c.Z = x, z
		return i
	}
	near := place(3, 0)
	far := place(10, 0)
	inner := place(0.3, 0)

	s.Attract(0, 0, 6, 0.1)

	if x := s.collectibles.Get(near).X; !(x < 3) {
		t.Errorf("pickup in radius not pulled: x %g", x)
	} else if want := 3 - (1-3.0/6)*parameter.MagnetAttractSpeed*0.1; math.Abs(x-want) > 1e-12 {
		t.Errorf("pulled to %g, want %g", x, want)
	}
	if x := s.collectibles.Get(far).X; x != 10 {
		t.Errorf("pickup outside radius moved to %g", x)
	}
	if x := s.collectibles.Get(inner).X; x != 0.3 {
		t.Errorf("pickup inside minimum distance moved to %g", x)
	}
}

func TestSpawn_EventsAndMetrics(t *testing.T) {
	q := event.NewQueue()
	reg := status.NewRegistry()
	s := newTestSpawner(13, WithEvents(q), WithMetrics(reg))
	info := segmentInfo(3, 50, 0, 0)

	entries := 0
	for i := 0; i < 100; i++ {
		s.Reset()
		s.SpawnForSegment(info)
		for _, ev := range q.Consume() {
			if ev.Type != event.EventItemsSpawned {
				t.Fatalf("unexpected event %v", ev.Type)
			}
			bp := ev.Payload.(*event.BatchPayload[event.SpawnEntry])
			if len(bp.Entries) == 0 {
				t.Error("empty batch emitted")
			}
			entries += len(bp.Entries)
			event.ReleasePayload(ev)
		}
	}

	spawned := reg.Ints.Get(status.KeyObstaclesSpawned).Load() +
		reg.Ints.Get(status.KeyCollectiblesSpawned).Load() +
		reg.Ints.Get(status.KeyPowerupsSpawned).Load()
	if spawned == 0 || int64(entries) != spawned {
		t.Errorf("%d batch entries, %d counted spawns", entries, spawned)
	}
}

func TestSpawn_StarvedPoolsAreCounted(t *testing.T) {
	cfg := config.Default()
	cfg.Obstacles.PoolSize = 1
	reg := status.NewRegistry()
	s := New(cfg, rand.New(rand.NewSource(2)), WithMetrics(reg))
	info := segmentInfo(5, 50, 0, 0)
	for i := 0; i < 50; i++ {
		s.SpawnForSegment(info)
	}
	if s.obstacles.InUse() != 1 {
		t.Errorf("%d obstacles in use from a pool of 1", s.obstacles.InUse())
	}
	if reg.Ints.Get(status.KeySpawnStarved).Load() == 0 {
		t.Error("starvation not counted")
	}
}

func TestSpawn_Deterministic(t *testing.T) {
	run := func() []float64 {
		s := newTestSpawner(21)
		for i := 0; i < 20; i++ {
			s.SpawnForSegment(segmentInfo(3, 50+float64(i)*20, 0, 0))
		}
		var zs []float64
		s.EachObstacle(func(_ int, o *Obstacle) { zs = append(zs, o.X, o.Z) })
		return zs
	}
	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("value %d differs: %g vs %g", i, a[i], b[i])
		}
	}
}

func TestObstacle_Blocks(t *testing.T) {
	o := &Obstacle{Width: 2.5, Height: 2, Depth: 0.5, X: 3, Y: 1, Z: 0}
	tests := []struct {
		x, z, y float64
		want    bool
	}{
		{3, 0, 0, true},
		{1.5, 0, 0, true},
		{0, 0, 0, false},
		{3, 0.6, 0, true},
		{3, 0.8, 0, false},
		{3, 0, 1.95, false}, // cleared by a jump
		{3, 0, 1.8, true},
	}
	for _, tt := range tests {
		if got := o.Blocks(tt.x, tt.z, 0.4, 0.4, tt.y+0.1, tt.y+1.4); got != tt.want {
			t.Errorf("Blocks(%g, %g, feet %g) = %v, want %v", tt.x, tt.z, tt.y, got, tt.want)
		}
	}

	hanging := &Obstacle{Width: 2, Height: 4, Depth: 0.3, Elevated: true, Y: 3.25}
	if hanging.Bottom() != 1.25 || hanging.Top() != 5.25 {
		t.Fatalf("hanging span %g..%g", hanging.Bottom(), hanging.Top())
	}
	if !hanging.Blocks(0, 0, 0.4, 0.4, 0.1, 1.4) {
		t.Error("upright runner passed under a hanging obstacle")
	}
	if hanging.Blocks(0, 0, 0.4, 0.4, -0.4, 0.15) {
		t.Error("sliding runner struck a hanging obstacle")
	}
}
