package main

import (
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tsujio/game-no-time-to-die/arena"
)

const (
	gameName     = "no-time-to-die"
	screenWidth  = 1920
	screenHeight = 1080
)

func loadConfig() arena.Config {
	bounds := arena.Bounds{Width: screenWidth, Height: screenHeight}
	switch v := os.Getenv("GAME_VARIANT"); v {
	case "classic":
		return arena.ClassicConfig(bounds)
	case "", "sprite":
		return arena.SpriteConfig(bounds)
	default:
		log.Printf("unknown GAME_VARIANT %q, using sprite", v)
		return arena.SpriteConfig(bounds)
	}
}

func run(cfg arena.Config, seed int64) error {
	assets, err := LoadAssets(cfg.Hero)
	if err != nil {
		return err
	}
	defer assets.Close()

	if cfg.Hero == arena.HeroSprite {
		fw, fh := assets.FrameSize()
		cfg.FrameWidth, cfg.FrameHeight = float64(fw), float64(fh)
	}

	game := &Game{
		session: arena.NewSession(cfg, rand.New(rand.NewSource(seed))),
		assets:  assets,
	}

	return ebiten.RunGame(game)
}

func main() {
	seed := time.Now().UnixNano()
	if s, err := strconv.Atoi(os.Getenv("GAME_RAND_SEED")); err == nil {
		seed = int64(s)
	}

	cfg := loadConfig()
	log.Printf("%s: variant=%s tps=%d seed=%d", gameName, cfg.Hero, cfg.TPS, seed)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("No time to die")
	ebiten.SetTPS(cfg.TPS)

	if err := run(cfg, seed); err != nil {
		log.Fatal(err)
	}
}
