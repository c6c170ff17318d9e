// Package input turns pointer and touch input into lattice points and edges.
package input

import (
	"math"

	"chosenoffset.com/dotsandboxes/internal/core/lattice"
)

// Mapper converts between pixel positions and lattice points. The board is
// a square of side min(Width, Height) centred in the surface, with Padding
// pixels between its border and the outermost lattice points.
type Mapper struct {
	Cells   int
	Padding float64
	Width   float64
	Height  float64
}

// NewMapper creates a mapper for a board of cells x cells on a surface of
// the given pixel size.
func NewMapper(cells int, padding float64, width, height int) *Mapper {
	return &Mapper{
		Cells:   cells,
		Padding: padding,
		Width:   float64(width),
		Height:  float64(height),
	}
}

// Resize updates the surface size.
func (m *Mapper) Resize(width, height int) {
	m.Width = float64(width)
	m.Height = float64(height)
}

// side is the edge length of the square board area.
func (m *Mapper) side() float64 {
	return math.Min(m.Width, m.Height)
}

// CellSize returns the pixel distance between neighbouring lattice points.
func (m *Mapper) CellSize() float64 {
	if m.Cells <= 0 {
		return 0
	}
	return (m.side() - 2*m.Padding) / float64(m.Cells)
}

// Origin returns the pixel position of lattice point (0,0).
func (m *Mapper) Origin() (x, y float64) {
	s := m.side()
	return (m.Width-s)/2 + m.Padding, (m.Height-s)/2 + m.Padding
}

// ToPixel returns the pixel position of p.
func (m *Mapper) ToPixel(p lattice.Point) (x, y float64) {
	ox, oy := m.Origin()
	cs := m.CellSize()
	return float64(p.X)*cs + ox, float64(p.Y)*cs + oy
}

// Nearest returns the lattice point closest to a pixel position. Each axis
// is rounded independently, half away from zero. The result may lie outside
// the board; see Clamp.
func (m *Mapper) Nearest(px, py float64) lattice.Point {
	cs := m.CellSize()
	if cs <= 0 {
		return lattice.Point{}
	}
	ox, oy := m.Origin()
	return lattice.Point{
		X: int(math.Round((px - ox) / cs)),
		Y: int(math.Round((py - oy) / cs)),
	}
}

// Clamp limits p to the lattice points of the board, 0..Cells on each axis.
func (m *Mapper) Clamp(p lattice.Point) lattice.Point {
	return lattice.Point{
		X: max(0, min(p.X, m.Cells)),
		Y: max(0, min(p.Y, m.Cells)),
	}
}

// Contains reports whether p is one of the board's lattice points.
func (m *Mapper) Contains(p lattice.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= m.Cells && p.Y <= m.Cells
}
