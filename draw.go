package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tsujio/game-no-time-to-die/arena"
)

const (
	hudScale   = 3
	titleScale = 6
)

var (
	fontFace = text.NewGoXFace(bitmapfont.Face)

	yellow      = color.RGBA{0xfd, 0xf9, 0x00, 0xff}
	buttonColor = color.RGBA{0x80, 0x80, 0x80, 0xff}
	shadeColor  = color.RGBA{0, 0, 0, 0xa0}
)

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)

	switch g.session.State() {
	case arena.StateInstructions:
		g.drawInstructions(screen)
		return
	case arena.StatePlaying:
		g.drawBalls(screen)
		g.drawHero(screen)
		g.drawHUD(screen)
	case arena.StateGameOver:
		g.drawBalls(screen)
		g.drawGameOver(screen)
	}
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	screen.Fill(color.Black)
	bg := g.assets.background
	if bg == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(screenWidth)/float64(bg.Bounds().Dx()), float64(screenHeight)/float64(bg.Bounds().Dy()))
	screen.DrawImage(bg, op)
}

func (g *Game) drawBalls(screen *ebiten.Image) {
	draw := func(b *arena.Ball) {
		var clr color.Color = color.White
		if b.Color == arena.Yellow {
			clr = yellow
		}
		vector.DrawFilledCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Radius), clr, true)
	}
	for _, b := range g.session.Balls() {
		draw(b)
	}
	for _, b := range g.session.CornerBalls() {
		draw(b)
	}
}

func (g *Game) drawHero(screen *ebiten.Image) {
	switch h := g.session.Hero().(type) {
	case *arena.StarHero:
		v := h.Vertices()
		for i := range v {
			next := v[(i+1)%len(v)]
			vector.StrokeLine(screen, float32(v[i].X), float32(v[i].Y), float32(next.X), float32(next.Y), 2, color.White, true)
		}
	case *arena.SpriteHero:
		sheet := g.assets.sheet
		fw, fh := h.FrameSize()
		x0 := h.Frame() * int(fw)
		frame := sheet.SubImage(image.Rect(x0, 0, x0+int(fw), int(fh))).(*ebiten.Image)

		op := &ebiten.DrawImageOptions{}
		if h.Facing() == arena.FacingLeft {
			op.GeoM.Scale(-1, 1)
			op.GeoM.Translate(fw, 0)
		}
		pos := h.Position()
		op.GeoM.Translate(pos.X-fw/2, pos.Y-fh/2)
		screen.DrawImage(frame, op)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	drawText(screen, fmt.Sprintf("SCORE: %d", g.session.Score()), 20, 20, hudScale, color.White)
	if g.session.Phase().Phase == arena.PhaseVulnerable {
		drawCenteredText(screen, "CLICK THE YELLOW BALLS!", 20, hudScale, yellow)
	}
}

func (g *Game) drawInstructions(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, screenWidth, screenHeight, shadeColor, false)

	y := 200.0
	drawCenteredText(screen, "NO TIME TO DIE", y, titleScale, color.White)
	y += 160
	for _, line := range []string{
		"Move with W A S D or the arrow keys.",
		"Do not touch the balls. Moving makes them faster.",
		"Every 10 seconds the balls turn yellow for a while.",
		"Click yellow balls to destroy them: 100 points, 5000 for corner balls.",
		"",
		"Press ENTER or click to start",
	} {
		drawCenteredText(screen, line, y, hudScale, color.White)
		y += 60
	}
}

func (g *Game) drawGameOver(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, screenWidth, screenHeight, shadeColor, false)

	drawCenteredText(screen, "GAME OVER", screenHeight/2-200, titleScale, color.White)
	drawCenteredText(screen, fmt.Sprintf("SCORE: %d", g.session.Score()), screenHeight/2-80, hudScale, color.White)

	btn := g.session.RetryButton()
	vector.DrawFilledRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), buttonColor, false)
	_, h := text.Measure("RETRY", fontFace, 0)
	drawCenteredText(screen, "RETRY", float64(btn.Y)+(float64(btn.H)-h*hudScale)/2, hudScale, color.White)
}

func drawText(screen *ebiten.Image, str string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, fontFace, op)
}

func drawCenteredText(screen *ebiten.Image, str string, y, scale float64, clr color.Color) {
	w, _ := text.Measure(str, fontFace, 0)
	drawText(screen, str, (screenWidth-w*scale)/2, y, scale, clr)
}
