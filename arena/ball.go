package arena

import "math/rand"

type Color int

const (
	White Color = iota
	Yellow
)

func (c Color) String() string {
	if c == Yellow {
		return "yellow"
	}
	return "white"
}

const (
	minBallSpeed = 5
	maxBallSpeed = 14

	regularBonus = 100
	cornerBonus  = 5000
)

type Ball struct {
	Pos         Point
	Vel         Point
	Radius      int
	Color       Color
	Destroyable bool
	Corner      bool
}

// SpawnBall places a ball uniformly inside bounds, kept radius+inset away
// from every edge, moving diagonally at a random speed.
func SpawnBall(rng *rand.Rand, bounds Bounds, radius int, color Color, inset int) *Ball {
	return &Ball{
		Pos: Point{
			X: randBetween(rng, radius+inset, bounds.Width-radius-inset),
			Y: randBetween(rng, radius+inset, bounds.Height-radius-inset),
		},
		Vel:         Point{X: randVelocity(rng), Y: randVelocity(rng)},
		Radius:      radius,
		Color:       color,
		Destroyable: color == Yellow,
	}
}

// SpawnCornerBalls creates one ball per screen quadrant. Each ball stays at
// least offset away from both center lines, so none starts on the hero.
func SpawnCornerBalls(rng *rand.Rand, bounds Bounds, radius, offset int) []*Ball {
	c := bounds.Center()
	balls := make([]*Ball, 0, 4)
	for _, q := range [][2]bool{{false, false}, {true, false}, {false, true}, {true, true}} {
		x := randBetween(rng, radius, c.X-offset)
		if q[0] {
			x = randBetween(rng, c.X+offset, bounds.Width-radius)
		}
		y := randBetween(rng, radius, c.Y-offset)
		if q[1] {
			y = randBetween(rng, c.Y+offset, bounds.Height-radius)
		}
		balls = append(balls, &Ball{
			Pos:    Point{X: x, Y: y},
			Vel:    Point{X: randVelocity(rng), Y: randVelocity(rng)},
			Radius: radius,
			Color:  White,
			Corner: true,
		})
	}
	return balls
}

// Step advances the ball by one frame. A ball crossing an edge is clamped
// back onto it and its velocity on that axis is reflected.
func (b *Ball) Step(bounds Bounds) {
	b.Pos.X, b.Vel.X = bounce(b.Pos.X+b.Vel.X, b.Vel.X, b.Radius, bounds.Width)
	b.Pos.Y, b.Vel.Y = bounce(b.Pos.Y+b.Vel.Y, b.Vel.Y, b.Radius, bounds.Height)
}

func bounce(pos, vel, radius, dim int) (int, int) {
	if pos-radius < 0 {
		return radius, abs(vel)
	}
	if pos+radius > dim {
		return dim - radius, -abs(vel)
	}
	return pos, vel
}

func (b *Ball) HitTest(p Point) bool {
	dx, dy := p.X-b.Pos.X, p.Y-b.Pos.Y
	return dx*dx+dy*dy <= b.Radius*b.Radius
}

// SetSpeed rewrites the speed on both axes, keeping each axis' direction.
func (b *Ball) SetSpeed(speed int) {
	b.Vel.X = withSign(speed, b.Vel.X)
	b.Vel.Y = withSign(speed, b.Vel.Y)
}

func withSign(magnitude, sign int) int {
	if sign < 0 {
		return -abs(magnitude)
	}
	return abs(magnitude)
}

func (b *Ball) SetDestroyable(destroyable bool) {
	b.Destroyable = destroyable
	if destroyable {
		b.Color = Yellow
	} else {
		b.Color = White
	}
}

func (b *Ball) Bonus() int {
	if b.Corner {
		return cornerBonus
	}
	return regularBonus
}

func randBetween(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}

func randVelocity(rng *rand.Rand) int {
	v := randBetween(rng, minBallSpeed, maxBallSpeed)
	if rng.Intn(2) == 0 {
		return -v
	}
	return v
}
