package arena

import (
	"testing"

	"github.com/tsujio/game-util/mathutil"
)

var testBounds = Bounds{Width: 1920, Height: 1080}

func TestStarHeroMovesAndStaysOnScreen(t *testing.T) {
	h := NewStarHero(mathutil.NewVector2D(100, 100), 5)

	h.Step(Input{Right: true, Down: true}, testBounds)
	if p := h.Position(); p.X != 105 || p.Y != 105 {
		t.Errorf("position after one step = (%v,%v), want (105,105)", p.X, p.Y)
	}
	if !h.Moving() {
		t.Error("hero not moving while a key is held")
	}

	for i := 0; i < 100; i++ {
		h.Step(Input{Left: true, Up: true}, testBounds)
	}
	if p := h.Position(); p.X != starOuterRadius || p.Y != starOuterRadius {
		t.Errorf("position = (%v,%v), want clamped to (%v,%v)", p.X, p.Y, starOuterRadius, starOuterRadius)
	}
	if h.Facing() != FacingLeft {
		t.Error("hero not facing left")
	}

	h.Step(Input{}, testBounds)
	if h.Moving() {
		t.Error("hero moving without input")
	}
}

func TestStarHeroVertices(t *testing.T) {
	h := NewStarHero(mathutil.NewVector2D(500, 500), 5)
	v := h.Vertices()
	if len(v) != starPoints*2 {
		t.Fatalf("got %d vertices, want %d", len(v), starPoints*2)
	}
	if v[0].X != 500+starOuterRadius || v[0].Y != 500 {
		t.Errorf("first vertex = (%v,%v), want outer tip at (530,500)", v[0].X, v[0].Y)
	}

	h.Step(Input{Right: true}, testBounds)
	if h.Vertices()[0].X != 505+starOuterRadius {
		t.Errorf("vertices not recomputed after move: %v", h.Vertices()[0].X)
	}
}

func TestStarHeroCollides(t *testing.T) {
	h := NewStarHero(mathutil.NewVector2D(500, 500), 5)
	tests := []struct {
		pos  Point
		want bool
	}{
		{Point{500, 500}, true},
		{Point{550, 500}, true},
		{Point{551, 500}, false},
		{Point{540, 540}, false},
		{Point{530, 530}, true},
	}
	for _, tt := range tests {
		b := &Ball{Pos: tt.pos, Radius: 20}
		if got := h.Collides(b); got != tt.want {
			t.Errorf("Collides(ball at %v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestSpriteHeroAnimation(t *testing.T) {
	cfg := SpriteConfig(testBounds)
	h := NewSpriteHero(mathutil.NewVector2D(960, 540), cfg)
	every := 60 / cfg.FramesSpeed
	if every != 7 {
		t.Fatalf("frame cadence = %d ticks, want 7 for FramesSpeed 8", every)
	}

	for i := 0; i < every-1; i++ {
		h.Step(Input{Right: true}, testBounds)
	}
	if h.Frame() != 0 {
		t.Fatalf("frame advanced early: %d", h.Frame())
	}
	h.Step(Input{Right: true}, testBounds)
	if h.Frame() != 1 {
		t.Fatalf("frame = %d after %d moving ticks, want 1", h.Frame(), every)
	}

	h.Step(Input{}, testBounds)
	if h.Frame() != 0 {
		t.Errorf("frame = %d while idle, want 0", h.Frame())
	}

	for i := 0; i < every*2; i++ {
		h.Step(Input{Left: true}, testBounds)
	}
	if h.Facing() != FacingLeft {
		t.Fatal("hero not facing left")
	}
	if h.Frame() != SpriteFrames-2 {
		t.Errorf("frame = %d walking left, want reversed %d", h.Frame(), SpriteFrames-2)
	}
}

func TestSpriteHeroCollides(t *testing.T) {
	cfg := SpriteConfig(testBounds)
	h := NewSpriteHero(mathutil.NewVector2D(960, 540), cfg)

	tests := []struct {
		name string
		pos  Point
		want bool
	}{
		{"center", Point{960, 540}, true},
		{"inside rectangle", Point{980, 500}, true},
		{"fully inside lower half", Point{960, 580}, true},
		{"overlapping right edge", Point{1005, 540}, true},
		{"far right", Point{1100, 540}, false},
		{"far above", Point{960, 300}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Ball{Pos: tt.pos, Radius: 20}
			if got := h.Collides(b); got != tt.want {
				t.Errorf("Collides(ball at %v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}

	if !CheckCollision(h, []*Ball{{Pos: Point{100, 100}, Radius: 20}, {Pos: Point{960, 540}, Radius: 20}}) {
		t.Error("CheckCollision missed the overlapping ball")
	}
	if CheckCollision(h, []*Ball{{Pos: Point{100, 100}, Radius: 20}}) {
		t.Error("CheckCollision reported a distant ball")
	}
}

func TestNewHero(t *testing.T) {
	if _, ok := NewHero(ClassicConfig(testBounds)).(*StarHero); !ok {
		t.Error("classic config did not build a star hero")
	}
	h := NewHero(SpriteConfig(testBounds))
	if _, ok := h.(*SpriteHero); !ok {
		t.Error("sprite config did not build a sprite hero")
	}
	if p := h.Position(); p.X != 960 || p.Y != 540 {
		t.Errorf("hero starts at (%v,%v), want screen center", p.X, p.Y)
	}
}
