package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"chosenoffset.com/dotsandboxes/internal/config"
	"chosenoffset.com/dotsandboxes/internal/core/board"
	"chosenoffset.com/dotsandboxes/internal/game"
	ebitenrender "chosenoffset.com/dotsandboxes/internal/render/ebiten"
)

func main() {
	configPath := flag.String("config", "dots.json", "path to the JSON config file")
	debug := flag.Bool("debug", false, "log board and input decisions")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	if *debug {
		board.SetLogger(slog.Default())
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	session, err := game.NewSession(cfg, renderer, inputMgr, engine)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("Starting %dx%d board...", cfg.Cells, cfg.Cells)
	if err := session.Run(ctx); err != nil {
		log.Fatal(err)
	}
}
