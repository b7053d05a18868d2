package arena

import "time"

type HeroKind int

const (
	HeroStar HeroKind = iota
	HeroSprite
)

func (k HeroKind) String() string {
	switch k {
	case HeroStar:
		return "star"
	case HeroSprite:
		return "sprite"
	}
	return "unknown"
}

// Config holds the tuning of one game variant. The two presets differ in
// hero kind, tick rate, vulnerable duration and speed coupling.
type Config struct {
	Bounds Bounds
	TPS    int

	Hero      HeroKind
	HeroSpeed float64

	// Sprite hero only. Frame size is taken from the loaded sprite sheet.
	FrameWidth  float64
	FrameHeight float64
	FramesSpeed int

	BallRadius   int
	SpawnInset   int
	CornerOffset int

	SpawnEvery    time.Duration
	NormalFor     time.Duration
	VulnerableFor time.Duration

	SpeedMoving int
	SpeedIdle   int

	Instructions bool
}

func ClassicConfig(bounds Bounds) Config {
	return Config{
		Bounds:        bounds,
		TPS:           60,
		Hero:          HeroStar,
		HeroSpeed:     5,
		BallRadius:    20,
		SpawnInset:    0,
		CornerOffset:  200,
		SpawnEvery:    3 * time.Second,
		NormalFor:     10 * time.Second,
		VulnerableFor: 3 * time.Second,
		SpeedMoving:   8,
		SpeedIdle:     1,
	}
}

func SpriteConfig(bounds Bounds) Config {
	return Config{
		Bounds:        bounds,
		TPS:           120,
		Hero:          HeroSprite,
		HeroSpeed:     4,
		FrameWidth:    64,
		FrameHeight:   128,
		FramesSpeed:   8,
		BallRadius:    20,
		SpawnInset:    0,
		CornerOffset:  200,
		SpawnEvery:    3 * time.Second,
		NormalFor:     10 * time.Second,
		VulnerableFor: 13 * time.Second,
		SpeedMoving:   15,
		SpeedIdle:     4,
		Instructions:  true,
	}
}

// TicksFor converts a duration to a whole number of update ticks.
func (c Config) TicksFor(d time.Duration) int {
	return int(d * time.Duration(c.TPS) / time.Second)
}
