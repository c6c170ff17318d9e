// Package scene draws a board and its cursor feedback with any renderer.
package scene

import (
	"chosenoffset.com/dotsandboxes/internal/config"
	"chosenoffset.com/dotsandboxes/internal/core/lattice"
	"chosenoffset.com/dotsandboxes/internal/input"
	"chosenoffset.com/dotsandboxes/internal/render"
)

// State is everything drawn for one frame.
type State struct {
	Edges []lattice.Edge
	Cells []lattice.Cell

	// Gesture feedback
	Start            lattice.Point
	HasStart         bool
	CursorX, CursorY float64
	HasCursor        bool
	Highlight        lattice.Point
	HasHighlight     bool
}

// FromGesture copies the feedback of g into st.
func (st *State) FromGesture(g *input.Gesture) {
	st.Start, st.HasStart = g.Start()
	st.CursorX, st.CursorY, st.HasCursor = g.Cursor()
	st.Highlight, st.HasHighlight = g.Highlight()
}

// Draw renders st onto dst: background, lattice points, edges, the pending
// line, the cursor and finally the claimed cells on top.
func Draw(r render.Renderer, dst render.Image, m *input.Mapper, st *State, style config.Style) {
	dst.Fill(style.Background.Color())

	drawPoints(r, dst, m, st, style)
	drawEdges(r, dst, m, st, style)
	drawCursor(r, dst, st, style)
	drawCells(r, dst, m, st, style)
}

func drawPoints(r render.Renderer, dst render.Image, m *input.Mapper, st *State, style config.Style) {
	for row := 0; row <= m.Cells; row++ {
		for col := 0; col <= m.Cells; col++ {
			p := lattice.Point{X: col, Y: row}
			x, y := m.ToPixel(p)
			r.FillCircle(dst, float32(x), float32(y), style.DotRadius, style.Dot.Color())

			if st.HasHighlight && st.Highlight == p {
				r.FillCircle(dst, float32(x), float32(y), style.HighlightRadius, style.Highlight.Color())
			}
		}
	}
}

func drawEdges(r render.Renderer, dst render.Image, m *input.Mapper, st *State, style config.Style) {
	for _, e := range st.Edges {
		x0, y0 := m.ToPixel(e.P1)
		x1, y1 := m.ToPixel(e.P2)
		r.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), style.LineWidth, style.Line.Color())
	}

	if st.HasStart && st.HasCursor {
		x0, y0 := m.ToPixel(st.Start)
		r.StrokeLine(dst, float32(x0), float32(y0), float32(st.CursorX), float32(st.CursorY), style.LineWidth, style.Pending.Color())
	}
}

func drawCursor(r render.Renderer, dst render.Image, st *State, style config.Style) {
	if !st.HasCursor {
		return
	}
	r.FillCircle(dst, float32(st.CursorX), float32(st.CursorY), style.CursorRadius, style.Cursor.Color())
}

func drawCells(r render.Renderer, dst render.Image, m *input.Mapper, st *State, style config.Style) {
	cs := float32(m.CellSize())
	for _, c := range st.Cells {
		x, y := m.ToPixel(c.Origin)
		r.FillRect(dst, float32(x), float32(y), cs, cs, style.Box.Color())
	}
}
