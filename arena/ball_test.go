package arena

import (
	"math/rand"
	"testing"
)

func TestBallStepStaysInBounds(t *testing.T) {
	bounds := Bounds{Width: 320, Height: 240}
	random := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		b := SpawnBall(random, bounds, 20, White, 0)
		b.SetSpeed(randBetween(random, 1, 60))
		for tick := 0; tick < 500; tick++ {
			b.Step(bounds)
			if b.Pos.X < b.Radius || b.Pos.X > bounds.Width-b.Radius {
				t.Fatalf("ball %d tick %d: x=%d outside [%d,%d]", i, tick, b.Pos.X, b.Radius, bounds.Width-b.Radius)
			}
			if b.Pos.Y < b.Radius || b.Pos.Y > bounds.Height-b.Radius {
				t.Fatalf("ball %d tick %d: y=%d outside [%d,%d]", i, tick, b.Pos.Y, b.Radius, bounds.Height-b.Radius)
			}
		}
	}
}

func TestBallStepBounce(t *testing.T) {
	bounds := Bounds{Width: 100, Height: 100}
	tests := []struct {
		name    string
		pos     Point
		vel     Point
		wantPos Point
		wantVel Point
	}{
		{"free", Point{50, 50}, Point{5, -5}, Point{55, 45}, Point{5, -5}},
		{"right wall", Point{75, 50}, Point{10, 3}, Point{80, 53}, Point{-10, 3}},
		{"left wall", Point{25, 50}, Point{-10, 3}, Point{20, 53}, Point{10, 3}},
		{"top wall", Point{50, 22}, Point{1, -7}, Point{51, 20}, Point{1, 7}},
		{"bottom corner", Point{79, 79}, Point{14, 14}, Point{80, 80}, Point{-14, -14}},
		{"exactly on edge", Point{70, 50}, Point{10, 0}, Point{80, 50}, Point{10, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Ball{Pos: tt.pos, Vel: tt.vel, Radius: 20}
			b.Step(bounds)
			if b.Pos != tt.wantPos || b.Vel != tt.wantVel {
				t.Errorf("got pos=%v vel=%v, want pos=%v vel=%v", b.Pos, b.Vel, tt.wantPos, tt.wantVel)
			}
		})
	}
}

func TestBallSetSpeedKeepsDirection(t *testing.T) {
	for _, vel := range []Point{{5, 5}, {-5, 9}, {14, -6}, {-7, -13}} {
		b := &Ball{Vel: vel}
		b.SetSpeed(8)
		if abs(b.Vel.X) != 8 || abs(b.Vel.Y) != 8 {
			t.Errorf("SetSpeed(8) on %v: got %v", vel, b.Vel)
		}
		if (b.Vel.X < 0) != (vel.X < 0) || (b.Vel.Y < 0) != (vel.Y < 0) {
			t.Errorf("SetSpeed(8) on %v flipped direction: got %v", vel, b.Vel)
		}
	}
}

func TestBallHitTest(t *testing.T) {
	b := &Ball{Pos: Point{100, 100}, Radius: 20}
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{100, 100}, true},
		{Point{120, 100}, true},
		{Point{112, 116}, true},
		{Point{121, 100}, false},
		{Point{115, 115}, false},
	}
	for _, tt := range tests {
		if got := b.HitTest(tt.p); got != tt.want {
			t.Errorf("HitTest(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestSpawnBall(t *testing.T) {
	bounds := Bounds{Width: 1920, Height: 1080}
	random := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		b := SpawnBall(random, bounds, 20, White, 50)
		if b.Pos.X < 70 || b.Pos.X > 1850 || b.Pos.Y < 70 || b.Pos.Y > 1010 {
			t.Fatalf("spawned outside inset area: %v", b.Pos)
		}
		for _, v := range []int{b.Vel.X, b.Vel.Y} {
			if abs(v) < minBallSpeed || abs(v) > maxBallSpeed {
				t.Fatalf("speed %d outside [%d,%d]", v, minBallSpeed, maxBallSpeed)
			}
		}
		if b.Destroyable || b.Color != White || b.Corner {
			t.Fatalf("unexpected flags on new ball: %+v", b)
		}
	}
}

func TestSpawnCornerBalls(t *testing.T) {
	bounds := Bounds{Width: 1920, Height: 1080}
	balls := SpawnCornerBalls(rand.New(rand.NewSource(3)), bounds, 20, 200)
	if len(balls) != 4 {
		t.Fatalf("got %d corner balls, want 4", len(balls))
	}
	assertCornerBalls(t, balls, bounds, 200)
}

func TestSetDestroyableAndBonus(t *testing.T) {
	b := &Ball{}
	b.SetDestroyable(true)
	if !b.Destroyable || b.Color != Yellow {
		t.Errorf("SetDestroyable(true): got %+v", b)
	}
	b.SetDestroyable(false)
	if b.Destroyable || b.Color != White {
		t.Errorf("SetDestroyable(false): got %+v", b)
	}
	if b.Bonus() != 100 {
		t.Errorf("regular bonus = %d, want 100", b.Bonus())
	}
	b.Corner = true
	if b.Bonus() != 5000 {
		t.Errorf("corner bonus = %d, want 5000", b.Bonus())
	}
}

// assertCornerBalls checks one ball per quadrant, each kept offset away from
// the center lines.
func assertCornerBalls(t *testing.T, balls []*Ball, bounds Bounds, offset int) {
	t.Helper()
	c := bounds.Center()
	seen := map[[2]bool]bool{}
	for _, b := range balls {
		if !b.Corner {
			t.Errorf("ball %v is not marked as corner ball", b.Pos)
		}
		dx, dy := b.Pos.X-c.X, b.Pos.Y-c.Y
		if abs(dx) < offset || abs(dy) < offset {
			t.Errorf("corner ball %v too close to center %v", b.Pos, c)
		}
		seen[[2]bool{dx > 0, dy > 0}] = true
	}
	if len(seen) != 4 {
		t.Errorf("corner balls cover %d quadrants, want 4", len(seen))
	}
}
