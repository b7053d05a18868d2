package arena

import (
	"github.com/samber/lo"
	"github.com/tsujio/game-util/mathutil"
)

type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Input is the player's input for a single tick. Clicks holds the positions
// of left-button presses that started this tick.
type Input struct {
	Up, Down, Left, Right bool
	Confirm               bool
	Clicks                []Point
}

func (in Input) anyDirection() bool {
	return in.Up || in.Down || in.Left || in.Right
}

type Hero interface {
	Step(in Input, bounds Bounds)
	Collides(b *Ball) bool
	Moving() bool
	Facing() Facing
	Position() *mathutil.Vector2D
	Reset(center *mathutil.Vector2D)
}

func NewHero(cfg Config) Hero {
	c := cfg.Bounds.Center()
	center := mathutil.NewVector2D(float64(c.X), float64(c.Y))
	switch cfg.Hero {
	case HeroSprite:
		return NewSpriteHero(center, cfg)
	default:
		return NewStarHero(center, cfg.HeroSpeed)
	}
}

// CheckCollision reports whether the hero touches any of the balls.
func CheckCollision(h Hero, balls []*Ball) bool {
	return lo.ContainsBy(balls, h.Collides)
}

// mover is the keyboard-driven motion shared by every hero kind. halfW and
// halfH keep the hero's whole body on screen.
type mover struct {
	pos          *mathutil.Vector2D
	speed        float64
	halfW, halfH float64
	moving       bool
	facing       Facing
}

func (m *mover) move(in Input, bounds Bounds) {
	m.moving = in.anyDirection()
	if !m.moving {
		return
	}

	d := mathutil.NewVector2D(0, 0)
	if in.Up {
		d.Y -= m.speed
	}
	if in.Down {
		d.Y += m.speed
	}
	if in.Left {
		d.X -= m.speed
	}
	if in.Right {
		d.X += m.speed
	}
	if in.Left && !in.Right {
		m.facing = FacingLeft
	} else if in.Right && !in.Left {
		m.facing = FacingRight
	}

	m.pos = m.pos.Add(d)
	m.pos.X = clamp(m.pos.X, m.halfW, float64(bounds.Width)-m.halfW)
	m.pos.Y = clamp(m.pos.Y, m.halfH, float64(bounds.Height)-m.halfH)
}

func (m *mover) Moving() bool {
	return m.moving
}

func (m *mover) Facing() Facing {
	return m.facing
}

func (m *mover) Position() *mathutil.Vector2D {
	return m.pos
}

func (m *mover) reset(center *mathutil.Vector2D) {
	m.pos = center.Clone()
	m.moving = false
	m.facing = FacingRight
}
