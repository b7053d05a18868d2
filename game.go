package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/samber/lo"
	"github.com/tsujio/game-no-time-to-die/arena"
	"github.com/tsujio/game-no-time-to-die/touchutil"
	"github.com/tsujio/game-util/mathutil"
)

const (
	destroyVolume    = 1.0
	vulnerableVolume = 0.7
	gameOverVolume   = 0.4
)

type Game struct {
	touches []touchutil.Touch
	session *arena.Session
	assets  *Assets
}

func (g *Game) Update() error {
	g.touches = touchutil.AppendNewTouches(g.touches)

	var started []*mathutil.Vector2D
	g.touches, started = touchutil.Update(g.touches)

	in := arena.Input{
		Up:      ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:    ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:    ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:   ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Confirm: inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Clicks: lo.Map(started, func(p *mathutil.Vector2D, _ int) arena.Point {
			return arena.Point{X: int(p.X), Y: int(p.Y)}
		}),
	}

	g.session.Update(in)

	for _, e := range g.session.Events() {
		switch e {
		case arena.EventBallDestroyed:
			g.assets.PlayClip(destroyVolume)
		case arena.EventPhaseChanged:
			if g.session.Phase().Phase == arena.PhaseVulnerable {
				g.assets.PlayClip(vulnerableVolume)
			}
		case arena.EventGameOver:
			g.assets.PlayClip(gameOverVolume)
		}
	}

	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
