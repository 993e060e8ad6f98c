//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifeterrain/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	game, err := app.New(cfg)
	if err != nil {
		log.Fatalf("life: %v", err)
	}
	defer game.Close()

	ebiten.SetWindowTitle("Life terrain")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Size*cfg.Scale, cfg.Size*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
