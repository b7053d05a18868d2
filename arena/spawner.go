package arena

import (
	"math/rand"
	"time"
)

// Spawner adds a white ball every interval while its caller reports the
// normal phase.
type Spawner struct {
	every time.Duration
	last  time.Duration
}

func NewSpawner(every time.Duration) *Spawner {
	return &Spawner{every: every}
}

// Due reports whether a ball should be spawned at now, and if so restarts
// the interval.
func (s *Spawner) Due(now time.Duration, phase Phase) bool {
	if phase != PhaseNormal || now-s.last < s.every {
		return false
	}
	s.last = now
	return true
}

func (s *Spawner) Restart(now time.Duration) {
	s.last = now
}

func (s *Spawner) Spawn(rng *rand.Rand, cfg Config) *Ball {
	return SpawnBall(rng, cfg.Bounds, cfg.BallRadius, White, cfg.SpawnInset)
}
