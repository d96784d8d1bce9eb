package geometry

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/lixenwraith/lane-runner/config"
)

func TestProfile_TaperZone(t *testing.T) {
	tests := []struct {
		profile Profile
		t       float64
		want    bool
	}{
		{Full, 0.05, false},
		{Full, 0.95, false},
		{NarrowFlat, 0.1, false},
		{NarrowTaperIn, 0.1, true},
		{NarrowTaperIn, 0.9, false},
		{NarrowTaperOut, 0.1, false},
		{NarrowTaperOut, 0.9, true},
		{NarrowTaperBoth, 0.1, true},
		{NarrowTaperBoth, 0.5, false},
		{NarrowTaperBoth, 0.9, true},
		{WideTaperBoth, 0.19, true},
		{WideTaperBoth, 0.2, false},
		{WideTaperBoth, 0.8, false},
		{WideTaperBoth, 0.81, true},
		{WideFlat, 0.9, false},
	}

	for _, tc := range tests {
		t.Run(tc.profile.String(), func(t *testing.T) {
			if got := tc.profile.TaperZone(tc.t); got != tc.want {
				t.Errorf("%s.TaperZone(%g) = %v, want %v", tc.profile, tc.t, got, tc.want)
			}
		})
	}
}

func TestProfile_WithoutTaperOut(t *testing.T) {
	tests := []struct{ in, want Profile }{
		{NarrowTaperBoth, NarrowTaperIn},
		{NarrowTaperOut, NarrowFlat},
		{NarrowTaperIn, NarrowTaperIn},
		{NarrowFlat, NarrowFlat},
		{WideTaperBoth, WideTaperIn},
		{WideTaperOut, WideFlat},
		{Full, Full},
	}
	for _, tc := range tests {
		if got := tc.in.WithoutTaperOut(); got != tc.want {
			t.Errorf("%s.WithoutTaperOut() = %s, want %s", tc.in, got, tc.want)
		}
		if tc.in.WithoutTaperOut().TaperOut() {
			t.Errorf("%s still tapers out", tc.in.WithoutTaperOut())
		}
	}
}

func TestVariant_RoundTrip(t *testing.T) {
	for _, p := range Profiles() {
		got := Variant(p.Narrow(), p.Wide(), p.TaperIn(), p.TaperOut())
		if p == Full {
			if got != Full {
				t.Errorf("Variant of full = %s", got)
			}
			continue
		}
		if got != p {
			t.Errorf("Variant(%v,%v,%v,%v) = %s, want %s", p.Narrow(), p.Wide(), p.TaperIn(), p.TaperOut(), got, p)
		}
	}
	if Variant(false, false, true, true) != Full {
		t.Error("standard width never tapers")
	}
}

func TestWidthFunc_Endpoints(t *testing.T) {
	spec := DefaultSpec()
	std := spec.Width
	narrow := spec.Width * spec.NarrowFactor
	wide := spec.Width * spec.WideFactor

	tests := []struct {
		profile    Profile
		start, mid float64
		end        float64
	}{
		{Full, std, std, std},
		{NarrowFlat, narrow, narrow, narrow},
		{NarrowTaperIn, std, narrow, narrow},
		{NarrowTaperOut, narrow, narrow, std},
		{NarrowTaperBoth, std, narrow, std},
		{WideFlat, wide, wide, wide},
		{WideTaperIn, std, wide, wide},
		{WideTaperOut, wide, wide, std},
		{WideTaperBoth, std, wide, std},
	}

	for _, tc := range tests {
		t.Run(tc.profile.String(), func(t *testing.T) {
			w := spec.WidthFunc(tc.profile)
			for _, c := range []struct {
				at   float64
				want float64
			}{{0, tc.start}, {0.5, tc.mid}, {1, tc.end}} {
				if got := w(c.at); math.Abs(got-c.want) > 1e-9 {
					t.Errorf("width(%g) = %g, want %g", c.at, got, c.want)
				}
			}
		})
	}
}

func TestWidthFunc_TaperIsMonotonic(t *testing.T) {
	spec := DefaultSpec()
	w := spec.WidthFunc(NarrowTaperIn)
	prev := w(0)
	for i := 1; i <= 20; i++ {
		cur := w(float64(i) * TaperFraction / 20)
		if cur > prev+1e-12 {
			t.Fatalf("narrow taper widens at step %d: %g > %g", i, cur, prev)
		}
		prev = cur
	}
}

func TestCache_AllProfiles(t *testing.T) {
	c := NewCache(DefaultSpec())
	if c.Len() != 9 {
		t.Fatalf("cache holds %d profiles, want 9", c.Len())
	}
	for _, p := range Profiles() {
		set, err := c.Lookup(p)
		if err != nil {
			t.Fatalf("Lookup(%s): %v", p, err)
		}
		if set.Profile != p || set.Floor == nil || set.LeftWall == nil || set.RightWall == nil {
			t.Errorf("incomplete set for %s", p)
		}
	}
}

func TestCache_LookupMiss(t *testing.T) {
	c := NewCache(DefaultSpec())
	_, err := c.Lookup(Profile(42))
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("want ErrProfileNotFound, got %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustLookup did not panic on miss")
		}
	}()
	c.MustLookup(Profile(42))
}

func TestCache_MeshSizes(t *testing.T) {
	spec := DefaultSpec()
	c := NewCache(spec)
	set := c.MustLookup(NarrowTaperBoth)
	n := spec.Slices

	if got, want := set.Floor.VertexCount(), 4*(n+1)*2; got != want {
		t.Errorf("floor vertices = %d, want %d", got, want)
	}
	if got, want := set.Floor.TriangleCount(), 4*n*2; got != want {
		t.Errorf("floor triangles = %d, want %d", got, want)
	}
	if got, want := set.LeftWall.VertexCount(), 3*(n+1)*2; got != want {
		t.Errorf("wall vertices = %d, want %d", got, want)
	}
	if got, want := set.RightWall.TriangleCount(), 3*n*2; got != want {
		t.Errorf("wall triangles = %d, want %d", got, want)
	}

	box := c.Parts().Marker
	if box.VertexCount() != 24 || box.TriangleCount() != 12 {
		t.Errorf("box = %d vertices, %d triangles", box.VertexCount(), box.TriangleCount())
	}
}

// Every triangle's geometric normal must agree with its stored vertex normal
func TestMeshes_WindingMatchesNormals(t *testing.T) {
	c := NewCache(DefaultSpec())
	meshes := map[string]*Mesh{}
	for _, p := range Profiles() {
		set := c.MustLookup(p)
		meshes[p.String()+"/floor"] = set.Floor
		meshes[p.String()+"/left"] = set.LeftWall
		meshes[p.String()+"/right"] = set.RightWall
	}
	parts := c.Parts()
	meshes["gap"] = parts.GapPiece
	meshes["strip"] = parts.WarningStrip
	meshes["marker"] = parts.Marker
	meshes["ceiling"] = parts.Ceiling
	meshes["ceilingSide"] = parts.CeilingSide

	for name, m := range meshes {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < m.TriangleCount(); i++ {
				a, b, cc := m.Triangle(i)
				pa, pb, pc := m.Position(int(a)), m.Position(int(b)), m.Position(int(cc))
				face := pb.Sub(pa).Cross(pc.Sub(pa))
				if face.Dot(m.Normal(int(a))) <= 0 {
					t.Fatalf("triangle %d faces away from its normal %v", i, m.Normal(int(a)))
				}
			}
		})
	}
}

func TestFloor_EdgesFollowWidth(t *testing.T) {
	spec := DefaultSpec()
	c := NewCache(spec)
	for _, p := range []Profile{Full, NarrowTaperBoth, WideTaperIn} {
		floor := c.MustLookup(p).Floor
		w := spec.WidthFunc(p)
		for i := 0; i <= spec.Slices; i++ {
			tt := float64(i) / float64(spec.Slices)
			right := floor.Position(i*2 + 1)
			if math.Abs(float64(right[0])*2-w(tt)) > 1e-4 {
				t.Errorf("%s slice %d: width %g, want %g", p, i, right[0]*2, w(tt))
			}
			wantZ := (tt - 0.5) * spec.Length
			if math.Abs(float64(right[2])-wantZ) > 1e-4 {
				t.Errorf("%s slice %d: z %g, want %g", p, i, right[2], wantZ)
			}
		}
	}
}

func TestWall_HugsFloor(t *testing.T) {
	spec := DefaultSpec()
	set := NewCache(spec).MustLookup(WideTaperOut)
	for i := 0; i <= spec.Slices; i++ {
		floorLeft := set.Floor.Position(i * 2)
		wallInner := set.LeftWall.Position(i * 2)
		if floorLeft[0] != wallInner[0] {
			t.Fatalf("slice %d: wall x %g, floor edge %g", i, wallInner[0], floorLeft[0])
		}
		floorRight := set.Floor.Position(i*2 + 1)
		rightInner := set.RightWall.Position(i * 2)
		if floorRight[0] != rightInner[0] {
			t.Fatalf("slice %d: right wall x %g, floor edge %g", i, rightInner[0], floorRight[0])
		}
	}
	lo, hi := set.LeftWall.Bounds()
	if float64(lo[1]) != -spec.FloorDepth || float64(hi[1]) != spec.WallHeight {
		t.Errorf("wall spans y %g..%g", lo[1], hi[1])
	}
}

func TestCache_Deterministic(t *testing.T) {
	a := NewCache(DefaultSpec()).MustLookup(NarrowTaperIn).Floor
	b := NewCache(DefaultSpec()).MustLookup(NarrowTaperIn).Floor
	for i := 0; i < a.VertexCount(); i++ {
		if a.Position(i) != b.Position(i) {
			t.Fatalf("vertex %d differs between builds", i)
		}
	}
}

func TestWriteOBJ(t *testing.T) {
	m := BoxMesh(1, 2, 3)
	var buf bytes.Buffer
	if err := WriteOBJ(&buf, "box", m); err != nil {
		t.Fatalf("WriteOBJ: %v", err)
	}

	counts := map[string]int{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		counts[strings.Fields(line)[0]]++
	}
	if counts["o"] != 1 || counts["v"] != 24 || counts["vt"] != 24 || counts["vn"] != 24 || counts["f"] != 12 {
		t.Errorf("unexpected OBJ record counts: %v", counts)
	}
	if !strings.Contains(buf.String(), "f 1/1/1 2/2/2 3/3/3") {
		t.Error("first face should reference 1-based indices")
	}
}

func TestSpecFor(t *testing.T) {
	cfg := config.Default()
	cfg.Track.SegmentLength = 30
	cfg.Track.SegmentWidth = 15

	spec := SpecFor(cfg)
	if spec.Length != 30 || spec.Width != 15 {
		t.Fatalf("spec %gx%g, want 30x15", spec.Length, spec.Width)
	}
	if spec.NarrowFactor != cfg.Segments.NarrowFactor() || spec.WideFactor != cfg.Segments.WideFactor() {
		t.Errorf("factors %g/%g", spec.NarrowFactor, spec.WideFactor)
	}
	if spec.Slices != DefaultSpec().Slices {
		t.Errorf("slices %d not defaulted", spec.Slices)
	}

	floor := NewCache(spec).MustLookup(Full).Floor
	first, last := floor.Position(1), floor.Position(spec.Slices*2+1)
	if math.Abs(float64(first[0])*2-15) > 1e-4 {
		t.Errorf("floor width %g, want 15", first[0]*2)
	}
	if math.Abs(float64(last[2]-first[2])-30) > 1e-4 {
		t.Errorf("floor length %g, want 30", last[2]-first[2])
	}
}
