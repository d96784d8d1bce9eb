package geometry

import "github.com/go-gl/mathgl/mgl32"

// Mesh is an indexed triangle list; immutable once built
type Mesh struct {
	positions []mgl32.Vec3
	normals   []mgl32.Vec3
	uvs       []mgl32.Vec2
	indices   []uint32
}

func (m *Mesh) VertexCount() int { return len(m.positions) }

func (m *Mesh) TriangleCount() int { return len(m.indices) / 3 }

func (m *Mesh) Position(i int) mgl32.Vec3 { return m.positions[i] }

func (m *Mesh) Normal(i int) mgl32.Vec3 { return m.normals[i] }

func (m *Mesh) UV(i int) mgl32.Vec2 { return m.uvs[i] }

// Triangle returns the vertex indices of triangle i
func (m *Mesh) Triangle(i int) (a, b, c uint32) {
	return m.indices[i*3], m.indices[i*3+1], m.indices[i*3+2]
}

// Bounds returns the axis-aligned min and max corners
func (m *Mesh) Bounds() (lo, hi mgl32.Vec3) {
	if len(m.positions) == 0 {
		return
	}
	lo, hi = m.positions[0], m.positions[0]
	for _, p := range m.positions[1:] {
		for k := 0; k < 3; k++ {
			lo[k] = min(lo[k], p[k])
			hi[k] = max(hi[k], p[k])
		}
	}
	return lo, hi
}

// builder accumulates vertices and indices for one mesh
type builder struct {
	m Mesh
}

func (b *builder) vertex(pos, normal mgl32.Vec3, uv mgl32.Vec2) {
	b.m.positions = append(b.m.positions, pos)
	b.m.normals = append(b.m.normals, normal)
	b.m.uvs = append(b.m.uvs, uv)
}

func (b *builder) base() uint32 { return uint32(len(b.m.positions)) }

// winding of a quad strip; both produce the same quads with opposite facing
type winding bool

const (
	acb winding = true  // (a,c,b)(b,c,d)
	abc winding = false // (a,b,c)(b,d,c)
)

// strip emits slices+1 vertex pairs from pair and stitches them into quads
// Pair i holds the two vertices at t = i/slices
func (b *builder) strip(slices int, w winding, pair func(t float32) (p0, p1, n mgl32.Vec3, uv0, uv1 mgl32.Vec2)) {
	start := b.base()
	for i := 0; i <= slices; i++ {
		t := float32(i) / float32(slices)
		p0, p1, n, uv0, uv1 := pair(t)
		b.vertex(p0, n, uv0)
		b.vertex(p1, n, uv1)
	}
	for i := uint32(0); i < uint32(slices); i++ {
		a := start + i*2
		bb := a + 1
		c := a + 2
		d := a + 3
		if w == acb {
			b.m.indices = append(b.m.indices, a, c, bb, bb, c, d)
		} else {
			b.m.indices = append(b.m.indices, a, bb, c, bb, d, c)
		}
	}
}

func (b *builder) mesh() *Mesh {
	m := b.m
	return &m
}

// FloorMesh builds a ruled floor of the given length whose width follows width(t)
// Top at y=0 facing up, bottom at -depth facing down, and both side skirts
func FloorMesh(length float64, width WidthFunc, slices int, depth float64) *Mesh {
	var b builder
	l := float32(length)
	dep := float32(depth)
	edge := func(t float32) (half, z float32) {
		return float32(width(float64(t))) / 2, (t - 0.5) * l
	}

	// Top
	b.strip(slices, acb, func(t float32) (p0, p1, n mgl32.Vec3, uv0, uv1 mgl32.Vec2) {
		h, z := edge(t)
		return mgl32.Vec3{-h, 0, z}, mgl32.Vec3{h, 0, z}, mgl32.Vec3{0, 1, 0}, mgl32.Vec2{0, t}, mgl32.Vec2{1, t}
	})
	// Bottom
	b.strip(slices, abc, func(t float32) (p0, p1, n mgl32.Vec3, uv0, uv1 mgl32.Vec2) {
		h, z := edge(t)
		return mgl32.Vec3{-h, -dep, z}, mgl32.Vec3{h, -dep, z}, mgl32.Vec3{0, -1, 0}, mgl32.Vec2{0, t}, mgl32.Vec2{1, t}
	})
	// Left skirt
	b.strip(slices, abc, func(t float32) (p0, p1, n mgl32.Vec3, uv0, uv1 mgl32.Vec2) {
		h, z := edge(t)
		return mgl32.Vec3{-h, 0, z}, mgl32.Vec3{-h, -dep, z}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec2{t, 1}, mgl32.Vec2{t, 0}
	})
	// Right skirt
	b.strip(slices, acb, func(t float32) (p0, p1, n mgl32.Vec3, uv0, uv1 mgl32.Vec2) {
		h, z := edge(t)
		return mgl32.Vec3{h, 0, z}, mgl32.Vec3{h, -dep, z}, mgl32.Vec3{1, 0, 0}, mgl32.Vec2{t, 1}, mgl32.Vec2{t, 0}
	})

	return b.mesh()
}

// Side of a wall relative to the track centerline
type Side int

const (
	Left  Side = -1
	Right Side = 1
)

// WallMesh builds one side wall hugging the floor edge width(t)/2
// Inner face, outer face offset by thickness, and top cap; windings mirror between sides
func WallMesh(length float64, width WidthFunc, slices int, height, thickness, depth float64, side Side) *Mesh {
	var b builder
	l := float32(length)
	s := float32(side)
	top := float32(height)
	bottom := -float32(depth)
	thick := float32(thickness)
	edge := func(t float32) (inner, outer, z float32) {
		h := float32(width(float64(t))) / 2
		return h * s, (h + thick) * s, (t - 0.5) * l
	}

	inW, outW := abc, acb
	if side == Right {
		inW, outW = acb, abc
	}

	// Inner face
	b.strip(slices, inW, func(t float32) (p0, p1, n mgl32.Vec3, uv0, uv1 mgl32.Vec2) {
		x, _, z := edge(t)
		return mgl32.Vec3{x, bottom, z}, mgl32.Vec3{x, top, z}, mgl32.Vec3{-s, 0, 0}, mgl32.Vec2{t, 0}, mgl32.Vec2{t, 1}
	})
	// Outer face
	b.strip(slices, outW, func(t float32) (p0, p1, n mgl32.Vec3, uv0, uv1 mgl32.Vec2) {
		_, x, z := edge(t)
		return mgl32.Vec3{x, bottom, z}, mgl32.Vec3{x, top, z}, mgl32.Vec3{s, 0, 0}, mgl32.Vec2{t, 0}, mgl32.Vec2{t, 1}
	})
	// Top cap
	b.strip(slices, inW, func(t float32) (p0, p1, n mgl32.Vec3, uv0, uv1 mgl32.Vec2) {
		in, out, z := edge(t)
		return mgl32.Vec3{in, top, z}, mgl32.Vec3{out, top, z}, mgl32.Vec3{0, 1, 0}, mgl32.Vec2{0, t}, mgl32.Vec2{1, t}
	})

	return b.mesh()
}

var boxFaces = [6]struct{ n, u, v mgl32.Vec3 }{
	{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
	{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
}

// BoxMesh builds an axis-aligned box centered at the origin, four vertices per face
func BoxMesh(w, h, d float64) *Mesh {
	var b builder
	half := mgl32.Vec3{float32(w) / 2, float32(h) / 2, float32(d) / 2}
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

	for _, f := range boxFaces {
		start := b.base()
		for _, c := range corners {
			dir := f.n.Add(f.u.Mul(c[0])).Add(f.v.Mul(c[1]))
			pos := mgl32.Vec3{dir[0] * half[0], dir[1] * half[1], dir[2] * half[2]}
			b.vertex(pos, f.n, mgl32.Vec2{(c[0] + 1) / 2, (c[1] + 1) / 2})
		}
		b.m.indices = append(b.m.indices, start, start+1, start+2, start, start+2, start+3)
	}
	return b.mesh()
}
