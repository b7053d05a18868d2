package arena

import (
	"github.com/solarlune/resolv"
	"github.com/tsujio/game-util/mathutil"
)

const SpriteFrames = 6

// animationRate is the tick count FramesSpeed is expressed against, so the
// cadence is the same whichever TPS a variant runs at.
const animationRate = 60

var tagBall = resolv.NewTag("ball")

// SpriteHero is the animated hero. Its collision body is the bounding
// rectangle of one sprite frame centered on the position.
type SpriteHero struct {
	mover
	frameW, frameH float64
	frame          int
	frameCounter   int
	frameEvery     int
	space          *resolv.Space
}

func NewSpriteHero(center *mathutil.Vector2D, cfg Config) *SpriteHero {
	every := 1
	if cfg.FramesSpeed > 0 && animationRate/cfg.FramesSpeed > 1 {
		every = animationRate / cfg.FramesSpeed
	}
	h := &SpriteHero{
		mover: mover{
			speed: cfg.HeroSpeed,
			halfW: cfg.FrameWidth / 2,
			halfH: cfg.FrameHeight / 2,
		},
		frameW:     cfg.FrameWidth,
		frameH:     cfg.FrameHeight,
		frameEvery: every,
		space:      resolv.NewSpace(cfg.Bounds.Width, cfg.Bounds.Height, 32, 32),
	}
	h.Reset(center)
	return h
}

func (h *SpriteHero) Step(in Input, bounds Bounds) {
	h.move(in, bounds)
	if !h.moving {
		h.frame = 0
		h.frameCounter = 0
		return
	}
	h.frameCounter++
	if h.frameCounter >= h.frameEvery {
		h.frameCounter = 0
		h.frame = (h.frame + 1) % SpriteFrames
	}
}

func (h *SpriteHero) Reset(center *mathutil.Vector2D) {
	h.reset(center)
	h.frame = 0
	h.frameCounter = 0
}

// Frame returns the animation frame to draw. Walking left plays the strip
// backwards; the presentation also mirrors the image.
func (h *SpriteHero) Frame() int {
	if h.facing == FacingLeft && h.frame != 0 {
		return SpriteFrames - h.frame
	}
	return h.frame
}

func (h *SpriteHero) FrameSize() (float64, float64) {
	return h.frameW, h.frameH
}

// Collides tests the ball against the hero's rectangle. resolv reports edge
// crossings; a ball whose center lies inside the rectangle is a hit as well.
func (h *SpriteHero) Collides(b *Ball) bool {
	left, top := h.pos.X-h.frameW/2, h.pos.Y-h.frameH/2
	cx, cy := float64(b.Pos.X), float64(b.Pos.Y)
	if cx >= left && cx <= left+h.frameW && cy >= top && cy <= top+h.frameH {
		return true
	}

	body := resolv.NewRectangleFromTopLeft(left, top, h.frameW, h.frameH)
	circle := resolv.NewCircle(cx, cy, float64(b.Radius))
	circle.Tags().Set(tagBall)

	h.space.Add(body)
	h.space.Add(circle)
	defer func() {
		h.space.Remove(body)
		h.space.Remove(circle)
	}()

	hit := false
	body.IntersectionTest(resolv.IntersectionTestSettings{
		TestAgainst: body.SelectTouchingCells(0).FilterShapes().ByTags(tagBall),
		OnIntersect: func(set resolv.IntersectionSet) bool {
			hit = true
			return false
		},
	})
	return hit
}
