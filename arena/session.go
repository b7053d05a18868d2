package arena

import (
	"math/rand"
	"time"

	"github.com/samber/lo"
	"github.com/tsujio/game-util/mathutil"
)

type State int

const (
	StateInstructions State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateInstructions:
		return "instructions"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game-over"
	}
	return "unknown"
}

type Event int

const (
	EventBallDestroyed Event = iota
	EventGameOver
	EventRetry
	EventPhaseChanged
)

const (
	retryButtonWidth  = 240
	retryButtonHeight = 60
)

// Session is the whole game state advanced by Update once per tick.
type Session struct {
	cfg     Config
	random  *rand.Rand
	ticks   uint64
	state   State
	score   int
	hero    Hero
	balls   []*Ball
	corners []*Ball
	phase   PhaseState
	spawner *Spawner
	events  []Event
}

func NewSession(cfg Config, random *rand.Rand) *Session {
	s := &Session{
		cfg:     cfg,
		random:  random,
		hero:    NewHero(cfg),
		spawner: NewSpawner(cfg.SpawnEvery),
	}
	s.initialize()
	if cfg.Instructions {
		s.state = StateInstructions
	}
	return s
}

func (s *Session) initialize() {
	c := s.cfg.Bounds.Center()
	s.ticks = 0
	s.state = StatePlaying
	s.score = 0
	s.hero.Reset(mathutil.NewVector2D(float64(c.X), float64(c.Y)))
	s.balls = nil
	s.corners = SpawnCornerBalls(s.random, s.cfg.Bounds, s.cfg.BallRadius, s.cfg.CornerOffset)
	s.phase = PhaseState{Phase: PhaseNormal}
	s.spawner.Restart(0)
}

// Now is the simulated time since the current round started.
func (s *Session) Now() time.Duration {
	return time.Duration(s.ticks) * time.Second / time.Duration(s.cfg.TPS)
}

func (s *Session) Update(in Input) {
	s.events = s.events[:0]

	switch s.state {
	case StateInstructions:
		if in.Confirm || len(in.Clicks) > 0 {
			s.state = StatePlaying
		}
		return
	case StateGameOver:
		if lo.ContainsBy(in.Clicks, s.RetryButton().Contains) {
			s.initialize()
			s.events = append(s.events, EventRetry)
			return
		}
	}

	s.ticks++

	if s.state == StatePlaying {
		s.play(in)
	}

	s.advancePhase()

	if s.phase.Phase == PhaseVulnerable {
		for _, p := range in.Clicks {
			s.destroyAt(p)
		}
	}
}

func (s *Session) play(in Input) {
	s.hero.Step(in, s.cfg.Bounds)

	speed := s.cfg.SpeedIdle
	if s.hero.Moving() {
		speed = s.cfg.SpeedMoving
	}
	s.forEachBall(func(b *Ball) {
		b.SetSpeed(speed)
	})

	if s.spawner.Due(s.Now(), s.phase.Phase) {
		s.balls = append(s.balls, s.spawner.Spawn(s.random, s.cfg))
	}

	if s.hero.Moving() {
		s.score++
	}

	s.forEachBall(func(b *Ball) {
		b.Step(s.cfg.Bounds)
	})

	if CheckCollision(s.hero, s.balls) || CheckCollision(s.hero, s.corners) {
		s.state = StateGameOver
		s.events = append(s.events, EventGameOver)
	}
}

func (s *Session) advancePhase() {
	now := s.Now()
	next, tr := NextPhase(s.phase, now, s.cfg)
	s.phase = next

	switch tr {
	case TransitionVulnerable:
		setDestroyable(true, s.balls, s.corners)
	case TransitionNormal:
		setDestroyable(false, s.balls, s.corners)
		s.balls = append(s.balls, s.spawner.Spawn(s.random, s.cfg))
		s.spawner.Restart(now)
	default:
		return
	}
	s.events = append(s.events, EventPhaseChanged)
}

// destroyAt handles one click. The score only changes while playing.
func (s *Session) destroyAt(p Point) {
	var removed, removedCorners []*Ball
	s.balls, removed = destroyAt(s.balls, p)
	s.corners, removedCorners = destroyAt(s.corners, p)
	removed = append(removed, removedCorners...)

	if s.state == StatePlaying {
		s.score += lo.SumBy(removed, func(b *Ball) int {
			return b.Bonus()
		})
	}
	for range removed {
		s.events = append(s.events, EventBallDestroyed)
	}
}

func (s *Session) forEachBall(f func(b *Ball)) {
	for _, b := range s.balls {
		f(b)
	}
	for _, b := range s.corners {
		f(b)
	}
}

// RetryButton is the clickable area of the game-over screen.
func (s *Session) RetryButton() Rect {
	c := s.cfg.Bounds.Center()
	return Rect{
		X: c.X - retryButtonWidth/2,
		Y: c.Y + retryButtonHeight,
		W: retryButtonWidth,
		H: retryButtonHeight,
	}
}

func (s *Session) Config() Config       { return s.cfg }
func (s *Session) State() State         { return s.state }
func (s *Session) Score() int           { return s.score }
func (s *Session) Hero() Hero           { return s.hero }
func (s *Session) Balls() []*Ball       { return s.balls }
func (s *Session) CornerBalls() []*Ball { return s.corners }
func (s *Session) Phase() PhaseState    { return s.phase }

// Events returns what happened during the last Update. The slice is reused
// by the next call.
func (s *Session) Events() []Event {
	return s.events
}
