package arena

import (
	"time"

	"github.com/samber/lo"
)

type Phase int

const (
	PhaseNormal Phase = iota
	PhaseVulnerable
)

func (p Phase) String() string {
	switch p {
	case PhaseNormal:
		return "normal"
	case PhaseVulnerable:
		return "vulnerable"
	}
	return "unknown"
}

// PhaseState is the vulnerability timer: the current phase and the simulated
// time at which it was entered.
type PhaseState struct {
	Phase Phase
	Since time.Duration
}

type Transition int

const (
	TransitionNone Transition = iota
	TransitionVulnerable
	TransitionNormal
)

// NextPhase computes the timer state at now. Both thresholds are measured
// from the time the current phase was entered.
func NextPhase(s PhaseState, now time.Duration, cfg Config) (PhaseState, Transition) {
	elapsed := now - s.Since
	switch s.Phase {
	case PhaseNormal:
		if elapsed >= cfg.NormalFor {
			return PhaseState{Phase: PhaseVulnerable, Since: now}, TransitionVulnerable
		}
	case PhaseVulnerable:
		if elapsed >= cfg.VulnerableFor {
			return PhaseState{Phase: PhaseNormal, Since: now}, TransitionNormal
		}
	}
	return s, TransitionNone
}

func setDestroyable(destroyable bool, groups ...[]*Ball) {
	for _, balls := range groups {
		lo.ForEach(balls, func(b *Ball, _ int) {
			b.SetDestroyable(destroyable)
		})
	}
}

// destroyAt removes the destroyable balls containing p and returns the
// survivors and the removed balls.
func destroyAt(balls []*Ball, p Point) ([]*Ball, []*Ball) {
	hit := func(b *Ball, _ int) bool {
		return b.Destroyable && b.HitTest(p)
	}
	removed := lo.Filter(balls, hit)
	if len(removed) == 0 {
		return balls, nil
	}
	kept := lo.Filter(balls, func(b *Ball, i int) bool {
		return !hit(b, i)
	})
	return kept, removed
}
