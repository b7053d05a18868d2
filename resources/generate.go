// Command generate pre-decodes the game's audio clips with the same sample
// rate the game opens its audio context with.
//
//	go run ./resources assets/coin.wav
package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/tsujio/game-util/resourceutil"
)

// Must match sampleRate in assets.go.
const sampleRate = 44100

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: generate <audio file>...")
	}

	ctx := audio.NewContext(sampleRate)
	for _, path := range os.Args[1:] {
		log.Printf("decoding %s", path)
		resourceutil.ForceSaveDecodedAudio(path, ctx)
	}
}
