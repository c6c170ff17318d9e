package term

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/dotsandboxes/internal/render"
)

// ticksPerSecond matches the window backend.
const ticksPerSecond = 60

// Engine implements render.Engine on a tcell screen.
type Engine struct {
	screen tcell.Screen
	input  *InputManager
	image  *Screen
	title  string
}

// NewEngine creates an engine for an initialized screen. Events are routed
// to in. RunGame finalizes the screen when it returns.
func NewEngine(screen tcell.Screen, in *InputManager) *Engine {
	return &Engine{screen: screen, input: in, image: NewScreen(screen)}
}

// SetWindowSize is a no-op; the terminal decides its size.
func (e *Engine) SetWindowSize(width, height int) {}

// SetWindowTitle records the title for log output.
func (e *Engine) SetWindowTitle(title string) {
	e.title = title
}

// SetWindowResizable is a no-op; terminals are always resizable.
func (e *Engine) SetWindowResizable(resizable bool) {}

// RunGame runs the tick loop until Update returns an error.
func (e *Engine) RunGame(game render.Game) error {
	defer e.screen.Fini()

	e.screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents | tcell.MouseMotionEvents)
	e.screen.HideCursor()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := e.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	layout := func() {
		w, h := e.image.Size()
		game.Layout(w, h)
	}
	layout()
	slog.Debug("terminal loop started", slog.String("title", e.title))

	ticker := time.NewTicker(time.Second / ticksPerSecond)
	defer ticker.Stop()

	for range ticker.C {
		e.input.beginTick()
		e.drain(events, layout)

		if err := game.Update(); err != nil {
			if errors.Is(err, render.ErrTerminate) {
				return nil
			}
			return err
		}

		game.Draw(e.image)
		e.screen.Show()
	}
	return nil
}

// drain hands queued events to the input manager. It stops after a mouse
// button change so that Update sees every press and release.
func (e *Engine) drain(events <-chan tcell.Event, layout func()) {
	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				e.screen.Sync()
				layout()
				continue
			}
			if e.input.HandleEvent(ev) {
				return
			}
		default:
			return
		}
	}
}

var _ render.Engine = (*Engine)(nil)
