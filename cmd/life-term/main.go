package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"lifeterrain/internal/app"
	"lifeterrain/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Size = 200
	cfg.TPS = 30
	cfg.Bind(flag.CommandLine)
	start := flag.Bool("run", false, "start iterating immediately")
	flag.Parse()

	if err := cfg.Life().Validate(); err != nil {
		log.Fatalf("life-term: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}

	session, err := term.NewSession(screen, cfg)
	if err != nil {
		screen.Fini()
		log.Fatalf("life-term: %v", err)
	}
	if *start {
		session.Controller().Start()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = session.Run(ctx)
	stop()
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}

	s := session.Controller().Terrain().Stats()
	log.Printf("stopped at generation %d, population %d", s.Iteration, s.Population)
}
