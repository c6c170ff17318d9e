package input

import (
	"chosenoffset.com/dotsandboxes/internal/core/lattice"
)

// Gesture tracks one down-to-up pointer interaction and the cursor
// feedback drawn while it happens.
//
// A Down while a gesture is already in progress replaces its start point:
// an abandoned gesture never blocks a new one.
type Gesture struct {
	mapper *Mapper
	clamp  bool

	start    lattice.Point
	hasStart bool

	cursorX, cursorY float64
	hasCursor        bool

	highlight    lattice.Point
	hasHighlight bool
}

// NewGesture creates a gesture tracker. When clamp is set, snapped points
// are limited to the board.
func NewGesture(m *Mapper, clamp bool) *Gesture {
	return &Gesture{mapper: m, clamp: clamp}
}

func (g *Gesture) snap(px, py float64) lattice.Point {
	p := g.mapper.Nearest(px, py)
	if g.clamp {
		p = g.mapper.Clamp(p)
	}
	return p
}

// Down starts a gesture at the lattice point nearest to (px, py).
func (g *Gesture) Down(px, py float64) {
	g.start = g.snap(px, py)
	g.hasStart = true
}

// Move updates the cursor and the highlighted lattice point.
func (g *Gesture) Move(px, py float64) {
	g.cursorX, g.cursorY = px, py
	g.hasCursor = true
	g.highlight = g.snap(px, py)
	g.hasHighlight = true
}

// Up ends the gesture at the lattice point nearest to (px, py) and returns
// the edge it describes. ok is false when no gesture was in progress. The
// edge is not validated.
func (g *Gesture) Up(px, py float64) (e lattice.Edge, ok bool) {
	if g.hasStart {
		e = lattice.Edge{P1: g.start, P2: g.snap(px, py)}
		ok = true
	}
	g.hasStart = false
	return e, ok
}

// Reset drops the cursor and highlight, as at the end of a touch.
func (g *Gesture) Reset() {
	g.hasCursor = false
	g.hasHighlight = false
}

// Handle applies a pointer event and returns the edge completed by it, if
// any. A touch ending also resets cursor feedback.
func (g *Gesture) Handle(ev Event) (lattice.Edge, bool) {
	switch ev.Type {
	case EventDown:
		g.Down(ev.X, ev.Y)
	case EventMove:
		g.Move(ev.X, ev.Y)
	case EventUp:
		e, ok := g.Up(ev.X, ev.Y)
		if ev.Pointer == PointerTouch {
			g.Reset()
		}
		return e, ok
	}
	return lattice.Edge{}, false
}

// Start returns the start point of the gesture in progress.
func (g *Gesture) Start() (lattice.Point, bool) {
	return g.start, g.hasStart
}

// Cursor returns the last pointer position in pixels.
func (g *Gesture) Cursor() (x, y float64, ok bool) {
	return g.cursorX, g.cursorY, g.hasCursor
}

// Highlight returns the lattice point nearest to the cursor.
func (g *Gesture) Highlight() (lattice.Point, bool) {
	return g.highlight, g.hasHighlight
}
