package arena

type Point struct {
	X, Y int
}

type Bounds struct {
	Width, Height int
}

func (b Bounds) Center() Point {
	return Point{X: b.Width / 2, Y: b.Height / 2}
}

type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
