package arena

import (
	"math"

	"github.com/tsujio/game-util/mathutil"
)

const (
	starPoints      = 5
	starOuterRadius = 30.0
	starInnerRadius = 5.0
)

// StarHero is the geometric hero: a star outline whose collision body is the
// circle through its outer tips.
type StarHero struct {
	mover
	vertices []*mathutil.Vector2D
}

func NewStarHero(center *mathutil.Vector2D, speed float64) *StarHero {
	h := &StarHero{
		mover: mover{
			speed: speed,
			halfW: starOuterRadius,
			halfH: starOuterRadius,
		},
		vertices: make([]*mathutil.Vector2D, starPoints*2),
	}
	h.Reset(center)
	return h
}

func (h *StarHero) Step(in Input, bounds Bounds) {
	h.move(in, bounds)
	h.calculateVertices()
}

func (h *StarHero) Reset(center *mathutil.Vector2D) {
	h.reset(center)
	h.calculateVertices()
}

// Vertices returns the outline, alternating outer and inner points.
func (h *StarHero) Vertices() []*mathutil.Vector2D {
	return h.vertices
}

func (h *StarHero) calculateVertices() {
	for i := range h.vertices {
		angle := 2 * math.Pi / starPoints * float64(i)
		r := starInnerRadius
		if i%2 == 0 {
			r = starOuterRadius
		}
		h.vertices[i] = mathutil.NewVector2D(h.pos.X+r*math.Cos(angle), h.pos.Y+r*math.Sin(angle))
	}
}

func (h *StarHero) Collides(b *Ball) bool {
	dx := float64(b.Pos.X) - h.pos.X
	dy := float64(b.Pos.Y) - h.pos.Y
	r := starOuterRadius + float64(b.Radius)
	return dx*dx+dy*dy <= r*r
}
