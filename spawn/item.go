package spawn

// Obstacle is a pooled barrier; its kind and dimensions are fixed when the pool is built
type Obstacle struct {
	Kind     string
	Width    float64
	Height   float64
	Depth    float64
	Elevated bool
	Tall     bool

	Lane    int
	X, Y, Z float64 // center
}

// Blocks reports whether a box centered at (x, z) with the given half extents,
// spanning bottom to top in Y, overlaps the obstacle
func (o *Obstacle) Blocks(x, z, halfWidth, halfDepth, bottom, top float64) bool {
	return overlap(o.X, x, o.Width/2+halfWidth) && overlap(o.Z, z, o.Depth/2+halfDepth) &&
		top > o.Bottom() && bottom < o.Top()
}

// Bottom is the world Y of the obstacle's underside
func (o *Obstacle) Bottom() float64 { return o.Y - o.Height/2 }

func (o *Obstacle) Top() float64 { return o.Y + o.Height/2 }

// Collectible is a pooled refill pickup
type Collectible struct {
	Refill float64

	Lane    int
	X, Y, Z float64
}

// Powerup is a pooled timed pickup; each slot keeps the kind assigned at build time
type Powerup struct {
	Kind string

	Lane    int
	X, Y, Z float64
}

func overlap(a, b, reach float64) bool {
	d := a - b
	return d < reach && d > -reach
}
