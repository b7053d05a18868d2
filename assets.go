package main

//go:generate go run ./resources assets/coin.wav

import (
	"fmt"
	_ "image/png"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tsujio/game-no-time-to-die/arena"
	"github.com/tsujio/game-util/resourceutil"
)

const (
	spriteSheetPath = "assets/scarfy.png"
	backgroundPath  = "assets/background.png"
	clipPath        = "assets/coin.wav"

	sampleRate = 44100
)

// Assets owns every texture and sound the game loads. It is loaded once at
// startup and released once by Close. The classic variant draws only
// vector shapes and loads nothing.
type Assets struct {
	sheet      *ebiten.Image
	background *ebiten.Image
	audioCtx   *audio.Context
	clip       *audio.Player
}

func LoadAssets(hero arena.HeroKind) (*Assets, error) {
	a := &Assets{}
	if hero != arena.HeroSprite {
		return a, nil
	}
	if err := a.load(); err != nil {
		a.Close()
		return nil, err
	}
	log.Printf("assets loaded: sheet %dx%d", a.sheet.Bounds().Dx(), a.sheet.Bounds().Dy())
	return a, nil
}

// load acquires the sprite variant's assets in order. On error, whatever was
// already acquired stays set for Close to release.
func (a *Assets) load() error {
	var err error
	if a.sheet, _, err = ebitenutil.NewImageFromFile(spriteSheetPath); err != nil {
		return fmt.Errorf("load sprite sheet: %w", err)
	}
	if a.background, _, err = ebitenutil.NewImageFromFile(backgroundPath); err != nil {
		return fmt.Errorf("load background: %w", err)
	}

	a.audioCtx = audio.NewContext(sampleRate)
	pcm, err := loadClip(os.DirFS("."), a.audioCtx)
	if err != nil {
		return fmt.Errorf("load sound: %w", err)
	}
	a.clip = a.audioCtx.NewPlayerFromBytes(pcm)
	return nil
}

// loadClip prefers the PCM written by go:generate and decodes the source
// clip when it is missing.
func loadClip(repository fs.FS, ctx *audio.Context) ([]byte, error) {
	if pcm, err := resourceutil.LoadDecodedAudio(repository, clipPath+".dat", ctx); err == nil {
		return pcm, nil
	}
	stream, err := resourceutil.LoadAudioStream(repository, clipPath, ctx)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(stream)
}

// FrameSize is the size of one of the sprite sheet's horizontal frames.
func (a *Assets) FrameSize() (int, int) {
	b := a.sheet.Bounds()
	return b.Dx() / arena.SpriteFrames, b.Dy()
}

func (a *Assets) PlayClip(volume float64) {
	if a.clip == nil {
		return
	}
	a.clip.SetVolume(volume)
	if err := a.clip.Rewind(); err != nil {
		log.Printf("rewind sound: %v", err)
		return
	}
	a.clip.Play()
}

func (a *Assets) Close() {
	if a.clip != nil {
		if err := a.clip.Close(); err != nil {
			log.Printf("close sound: %v", err)
		}
		a.clip = nil
	}
	if a.background != nil {
		a.background.Deallocate()
		a.background = nil
	}
	if a.sheet != nil {
		a.sheet.Deallocate()
		a.sheet = nil
	}
}
