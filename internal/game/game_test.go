package game

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"chosenoffset.com/dotsandboxes/internal/config"
	"chosenoffset.com/dotsandboxes/internal/core/board"
	"chosenoffset.com/dotsandboxes/internal/core/lattice"
	"chosenoffset.com/dotsandboxes/internal/render"
	"chosenoffset.com/dotsandboxes/internal/render/raster"
)

// fakeInput is a render.InputManager driven by the test.
type fakeInput struct {
	x, y    int
	pressed bool
	keys    map[render.Key]bool
}

func (f *fakeInput) IsKeyJustPressed(k render.Key) bool { return f.keys[k] }
func (f *fakeInput) GetCursorPosition() (int, int)      { return f.x, f.y }
func (f *fakeInput) IsMouseButtonPressed(b render.MouseButton) bool {
	return b == render.MouseButtonLeft && f.pressed
}
func (f *fakeInput) AppendTouchIDs(ids []render.TouchID) []render.TouchID { return ids }
func (f *fakeInput) TouchPosition(render.TouchID) (int, int)              { return 0, 0 }

// fakeEngine runs Update until the session terminates.
type fakeEngine struct {
	width, height int
	title         string
	resizable     bool
	onTick        func()
	ticks         int
}

func (e *fakeEngine) SetWindowSize(w, h int)      { e.width, e.height = w, h }
func (e *fakeEngine) SetWindowTitle(title string) { e.title = title }
func (e *fakeEngine) SetWindowResizable(r bool)   { e.resizable = r }

func (e *fakeEngine) RunGame(g render.Game) error {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if e.onTick != nil {
			e.onTick()
		}
		e.ticks++
		if err := g.Update(); err != nil {
			if errors.Is(err, render.ErrTerminate) {
				return nil
			}
			return err
		}
		time.Sleep(time.Millisecond)
	}
	return errors.New("game never terminated")
}

// testConfig is a 2x2 board whose lattice points sit at 10, 60 and 110.
func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Cells = 2
	cfg.Padding = 10
	cfg.WindowWidth, cfg.WindowHeight = 120, 120
	return cfg
}

func newTestSession(t *testing.T) (*Session, *fakeInput, *fakeEngine) {
	t.Helper()
	in := &fakeInput{keys: map[render.Key]bool{}}
	eng := &fakeEngine{}
	s, err := NewSession(testConfig(), raster.NewRenderer(), in, eng)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s, in, eng
}

// drag presses at (x0, y0) on one tick and releases at (x1, y1) on the next.
func drag(t *testing.T, s *Session, in *fakeInput, x0, y0, x1, y1 int) {
	t.Helper()
	in.x, in.y, in.pressed = x0, y0, true
	if err := s.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	in.x, in.y, in.pressed = x1, y1, false
	if err := s.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
}

func messageTexts(s *Session) []string {
	var texts []string
	for _, m := range s.Messages {
		texts = append(texts, m.Text)
	}
	return texts
}

func TestNewSessionRejects(t *testing.T) {
	bad := testConfig()
	bad.Cells = 0
	if _, err := NewSession(bad, raster.NewRenderer(), &fakeInput{}, &fakeEngine{}); err == nil {
		t.Error("Expected error for zero cells")
	}
	if _, err := NewSession(testConfig(), nil, &fakeInput{}, &fakeEngine{}); err == nil {
		t.Error("Expected error for missing renderer")
	}
}

func TestInputIgnoredUntilStart(t *testing.T) {
	s, in, _ := newTestSession(t)
	drag(t, s, in, 10, 10, 60, 10)
	if n := s.Board.EdgeCount(); n != 0 {
		t.Errorf("Expected no edges before Start, got %d", n)
	}

	s.Start()
	drag(t, s, in, 10, 10, 60, 10)
	if n := s.Board.EdgeCount(); n != 1 {
		t.Errorf("Expected 1 edge after Start, got %d", n)
	}
}

func TestDragClaimsBox(t *testing.T) {
	s, in, _ := newTestSession(t)
	s.Start()

	// Pointer positions a few pixels off the lattice still snap.
	drag(t, s, in, 12, 8, 58, 11)
	drag(t, s, in, 61, 9, 62, 57)
	drag(t, s, in, 59, 61, 9, 60)
	drag(t, s, in, 11, 62, 10, 12)

	want := []lattice.Edge{
		lattice.E(lattice.Pt(0, 0), lattice.Pt(1, 0)),
		lattice.E(lattice.Pt(1, 0), lattice.Pt(1, 1)),
		lattice.E(lattice.Pt(1, 1), lattice.Pt(0, 1)),
		lattice.E(lattice.Pt(0, 1), lattice.Pt(0, 0)),
	}
	if diff := cmp.Diff(want, s.Board.Edges()); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]lattice.Cell{{Origin: lattice.Pt(0, 0)}}, s.Board.Cells()); diff != "" {
		t.Errorf("cells mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Box claimed at 0, 0"}, messageTexts(s)); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestRejectedGesturesAreDropped(t *testing.T) {
	s, in, _ := newTestSession(t)
	s.Start()

	drag(t, s, in, 10, 10, 60, 60)  // diagonal
	drag(t, s, in, 10, 10, 110, 10) // two cells long
	drag(t, s, in, 10, 10, 12, 12)  // tap
	if n := s.Board.EdgeCount(); n != 0 {
		t.Fatalf("Expected no edges, got %d", n)
	}

	drag(t, s, in, 10, 10, 60, 10)
	drag(t, s, in, 60, 10, 10, 10) // same edge reversed
	if n := s.Board.EdgeCount(); n != 1 {
		t.Errorf("Expected duplicate to be dropped, got %d edges", n)
	}
}

func TestClampToGrid(t *testing.T) {
	s, in, _ := newTestSession(t)
	s.Start()

	// Far outside the board snaps to the right edge.
	drag(t, s, in, 110, 10, 400, 60)
	want := []lattice.Edge{lattice.E(lattice.Pt(2, 0), lattice.Pt(2, 1))}
	if diff := cmp.Diff(want, s.Board.Edges()); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}
}

func TestAllBoxesClaimed(t *testing.T) {
	cfg := testConfig()
	cfg.Cells = 1
	in := &fakeInput{keys: map[render.Key]bool{}}
	s, err := NewSession(cfg, raster.NewRenderer(), in, &fakeEngine{})
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	s.Start()

	// One cell of 100px between 10 and 110.
	drag(t, s, in, 10, 10, 110, 10)
	drag(t, s, in, 110, 10, 110, 110)
	drag(t, s, in, 110, 110, 10, 110)
	drag(t, s, in, 10, 110, 10, 10)

	want := []string{"Box claimed at 0, 0", "All boxes claimed"}
	if diff := cmp.Diff(want, messageTexts(s)); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestKeyCommands(t *testing.T) {
	s, in, _ := newTestSession(t)
	s.Start()

	var copied, snapped int
	s.copyBoard = func(b *board.Board, cells int) error {
		copied++
		if cells != 2 {
			t.Errorf("Expected 2 cells, got %d", cells)
		}
		return nil
	}
	s.saveSnapshot = func(*board.Board, *config.Config, time.Time) (string, error) {
		snapped++
		return "shot.png", nil
	}

	in.keys[render.KeyH] = true
	in.keys[render.KeyC] = true
	in.keys[render.KeyP] = true
	if err := s.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if s.ShowHUD {
		t.Error("Expected H to hide the HUD")
	}
	if copied != 1 || snapped != 1 {
		t.Errorf("Expected one copy and one snapshot, got %d and %d", copied, snapped)
	}
	want := []string{"Board copied to clipboard", "Saved shot.png"}
	if diff := cmp.Diff(want, messageTexts(s)); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestKeyCommandFailuresShowMessage(t *testing.T) {
	s, in, _ := newTestSession(t)
	s.Start()
	s.copyBoard = func(*board.Board, int) error { return errors.New("no clipboard") }
	s.saveSnapshot = func(*board.Board, *config.Config, time.Time) (string, error) {
		return "", errors.New("disk full")
	}

	in.keys[render.KeyC] = true
	in.keys[render.KeyP] = true
	if err := s.Update(); err != nil {
		t.Fatalf("Expected failures to stay in game, got %v", err)
	}
	want := []string{"Copy failed", "Snapshot failed"}
	if diff := cmp.Diff(want, messageTexts(s)); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestEscapeStops(t *testing.T) {
	s, in, _ := newTestSession(t)
	s.Start()

	in.keys[render.KeyEscape] = true
	if err := s.Update(); !errors.Is(err, render.ErrTerminate) {
		t.Fatalf("Expected ErrTerminate, got %v", err)
	}
	if s.Active() {
		t.Error("Expected session to be inactive after Escape")
	}

	in.keys[render.KeyEscape] = false
	if err := s.Update(); !errors.Is(err, render.ErrTerminate) {
		t.Errorf("Expected ErrTerminate after stop, got %v", err)
	}
}

func TestRunConfiguresEngineAndStopsOnCancel(t *testing.T) {
	s, _, eng := newTestSession(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eng.onTick = func() {
		if eng.ticks == 3 {
			cancel()
		}
	}

	if err := s.Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if eng.width != 120 || eng.height != 120 || eng.title != s.Config.Title || !eng.resizable {
		t.Errorf("Unexpected window setup %dx%d %q resizable=%v", eng.width, eng.height, eng.title, eng.resizable)
	}
	if eng.ticks < 3 {
		t.Errorf("Expected the loop to run before cancel, got %d ticks", eng.ticks)
	}
}

func TestMessagesFade(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.ShowMessage("hello")

	for range 60 {
		if err := s.Update(); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
	}
	if len(s.Messages) != 1 {
		t.Fatalf("Expected message to survive one second, got %d", len(s.Messages))
	}

	for range 121 {
		if err := s.Update(); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
	}
	if len(s.Messages) != 0 {
		t.Errorf("Expected message to fade after three seconds, got %v", s.Messages)
	}
}

func TestLayoutRefitsBoard(t *testing.T) {
	s, _, _ := newTestSession(t)

	w, h := s.Layout(240, 120)
	if w != 240 || h != 120 {
		t.Fatalf("Expected 240x120, got %dx%d", w, h)
	}
	x, y := s.Mapper().ToPixel(lattice.Pt(0, 0))
	if x != 70 || y != 10 {
		t.Errorf("Expected origin at (70,10), got (%v,%v)", x, y)
	}
}

func TestDrawShowsHUDAndMessages(t *testing.T) {
	s, in, _ := newTestSession(t)
	s.Start()
	drag(t, s, in, 10, 10, 60, 10)
	s.ShowMessage("hi")

	canvas := raster.NewCanvas(120, 120)
	defer canvas.Dispose()
	s.Draw(canvas)

	lines := s.GameHUD.Lines()
	if len(lines) == 0 || !strings.HasPrefix(lines[0], "Edges: 1") {
		t.Errorf("Expected HUD to count the drawn edge, got %v", lines)
	}
}
