// Package game wires a board, pointer input and a rendering backend into a
// playable session.
package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"chosenoffset.com/dotsandboxes/internal/config"
	"chosenoffset.com/dotsandboxes/internal/core/board"
	"chosenoffset.com/dotsandboxes/internal/core/lattice"
	"chosenoffset.com/dotsandboxes/internal/export"
	"chosenoffset.com/dotsandboxes/internal/input"
	"chosenoffset.com/dotsandboxes/internal/render"
	"chosenoffset.com/dotsandboxes/internal/scene"
	"chosenoffset.com/dotsandboxes/internal/ui/hud"
)

// Session holds all state for one game on one backend. Update and Draw are
// called from the engine loop; Stop may be called from any goroutine.
type Session struct {
	ID     uuid.UUID
	Config *config.Config
	Board  *board.Board

	// SnapshotConfig sizes PNG snapshots. It defaults to Config.
	SnapshotConfig *config.Config

	Renderer render.Renderer
	InputMgr render.InputManager
	Engine   render.Engine

	ScreenWidth  int
	ScreenHeight int

	mapper  *input.Mapper
	gesture *input.Gesture
	source  *input.PointerSource
	events  []input.Event
	frame   scene.State

	// HUD
	GameHUD *hud.HUD
	ShowHUD bool

	// UI state
	Messages []Message

	logger  *slog.Logger
	active  atomic.Bool
	stopped atomic.Bool

	// Overridden in tests.
	now          func() time.Time
	copyBoard    func(*board.Board, int) error
	saveSnapshot func(*board.Board, *config.Config, time.Time) (string, error)
}

// NewSession creates a session for cfg drawing with r, reading from in and
// driven by engine. The session does not react to input until Start.
func NewSession(cfg *config.Config, r render.Renderer, in render.InputManager, engine render.Engine) (*Session, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if r == nil || in == nil || engine == nil {
		return nil, errors.New("session needs a renderer, an input manager and an engine")
	}

	id := uuid.New()
	s := &Session{
		ID:             id,
		Config:         cfg,
		SnapshotConfig: cfg,
		Board:          board.New(),
		Renderer:       r,
		InputMgr:       in,
		Engine:         engine,
		ScreenWidth:    cfg.WindowWidth,
		ScreenHeight:   cfg.WindowHeight,
		ShowHUD:        cfg.ShowHUD,
		logger:         slog.Default().With(slog.String("session", id.String())),
		now:            time.Now,
		copyBoard:      export.CopyText,
		saveSnapshot:   export.Snapshot,
	}
	s.mapper = input.NewMapper(cfg.Cells, cfg.Padding, cfg.WindowWidth, cfg.WindowHeight)
	s.gesture = input.NewGesture(s.mapper, cfg.ClampToGrid)
	s.source = input.NewPointerSource(in)
	s.GameHUD = hud.New(hud.DefaultConfig(), r, cfg.WindowWidth, cfg.WindowHeight)
	s.Board.OnCellClaimed = s.cellClaimed

	s.logger.Debug("session created",
		slog.Int("cells", cfg.Cells),
		slog.Float64("padding", cfg.Padding))
	return s, nil
}

// Start subscribes the session to pointer and key input.
func (s *Session) Start() {
	s.active.Store(true)
}

// Stop unsubscribes the session from input and ends Run at the next tick.
// It is safe to call from any goroutine, and more than once.
func (s *Session) Stop() {
	s.active.Store(false)
	if !s.stopped.Swap(true) {
		s.logger.Debug("session stopped")
	}
}

// Active reports whether the session is reacting to input.
func (s *Session) Active() bool {
	return s.active.Load() && !s.stopped.Load()
}

// Run starts the session and blocks in the engine loop until the player
// quits, Stop is called or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	s.Engine.SetWindowSize(s.Config.WindowWidth, s.Config.WindowHeight)
	s.Engine.SetWindowTitle(s.Config.Title)
	s.Engine.SetWindowResizable(true)

	stop := context.AfterFunc(ctx, s.Stop)
	defer stop()

	s.Start()
	s.logger.Info("session started")
	if err := s.Engine.RunGame(s); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}
	s.logger.Info("session ended",
		slog.Int("edges", s.Board.EdgeCount()),
		slog.Int("boxes", s.Board.CellCount()))
	return nil
}

// Update handles input and advances message timers.
func (s *Session) Update() error {
	if s.stopped.Load() {
		return render.ErrTerminate
	}

	s.updateMessages(tickDuration)

	if !s.active.Load() {
		return nil
	}

	s.handleKeys()
	if s.stopped.Load() {
		return render.ErrTerminate
	}

	s.events = s.source.Poll(s.events[:0])
	for _, ev := range s.events {
		if e, ok := s.gesture.Handle(ev); ok {
			s.commit(e)
		}
	}
	return nil
}

// Layout keeps the logical screen equal to the window and refits the board.
func (s *Session) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != s.ScreenWidth || outsideHeight != s.ScreenHeight {
		s.ScreenWidth, s.ScreenHeight = outsideWidth, outsideHeight
		s.mapper.Resize(outsideWidth, outsideHeight)
		s.GameHUD.SetScreenSize(outsideWidth, outsideHeight)
	}
	return s.ScreenWidth, s.ScreenHeight
}

// Mapper returns the pixel to lattice mapping for the current screen size.
func (s *Session) Mapper() *input.Mapper {
	return s.mapper
}

// commit inserts a finished gesture's edge into the board. Rejected edges
// are dropped.
func (s *Session) commit(e lattice.Edge) {
	if lattice.Distance(e.P1, e.P2) == 0 {
		s.logger.Debug("gesture ended where it started", slog.String("point", e.P1.String()))
		return
	}

	claimed, err := s.Board.Insert(e)
	switch {
	case err == nil:
		s.logger.Debug("edge drawn", slog.String("edge", e.String()))
		if len(claimed) > 0 && s.Board.CellCount() == s.Config.Cells*s.Config.Cells {
			s.ShowMessage("All boxes claimed")
		}
	case errors.Is(err, board.ErrInvalidEdge), errors.Is(err, board.ErrDuplicateEdge):
		s.logger.Debug("edge ignored", slog.String("edge", e.String()), slog.Any("err", err))
	default:
		s.logger.Warn("edge rejected", slog.String("edge", e.String()), slog.Any("err", err))
	}
}

func (s *Session) cellClaimed(c lattice.Cell) {
	s.ShowMessage(fmt.Sprintf("Box claimed at %d, %d", c.Origin.X, c.Origin.Y))
}

func (s *Session) updateMessages(dt float64) {
	var active []Message
	for _, msg := range s.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	s.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (s *Session) ShowMessage(text string) {
	s.Messages = append(s.Messages, Message{
		Text:     text,
		TimeLeft: messageDuration,
		MaxTime:  messageDuration,
	})
	s.logger.Info("message", slog.String("text", text))
}
