package main

import (
	"context"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/dotsandboxes/internal/config"
	"chosenoffset.com/dotsandboxes/internal/core/board"
	"chosenoffset.com/dotsandboxes/internal/game"
	"chosenoffset.com/dotsandboxes/internal/render/term"
)

func main() {
	configPath := flag.String("config", "dots.json", "path to the JSON config file")
	debug := flag.Bool("debug", false, "log board and input decisions")
	logPath := flag.String("log", "", "write logs to this file (the terminal is in use)")
	flag.Parse()

	var out io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		out = f
	}
	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})))
	if *debug {
		board.SetLogger(slog.Default())
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init terminal: %v", err)
	}
	width, height := term.NewScreen(screen).Size()

	inputMgr := term.NewInputManager()
	engine := term.NewEngine(screen, inputMgr)

	session, err := game.NewSession(cfg.ForTerminal(width, height), term.NewRenderer(), inputMgr, engine)
	if err != nil {
		screen.Fini()
		log.Fatalf("Failed to create session: %v", err)
	}
	session.SnapshotConfig = cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := session.Run(ctx); err != nil {
		log.Fatal(err)
	}
}
