package board

import (
	"chosenoffset.com/dotsandboxes/internal/core/lattice"
)

// Completes returns the cells that e would close if it were drawn now: one
// per side of e whose other three edges are already on the board. The board
// is not modified and e itself is never consulted as present.
//
// Cells are returned in west-then-east order for vertical edges and
// north-then-south order for horizontal ones. Invalid edges and edges
// without an orientation close nothing.
func (b *Board) Completes(e lattice.Edge) []lattice.Cell {
	if !e.IsValid() {
		return nil
	}

	o := e.Orientation()
	if o == lattice.None {
		return nil
	}

	// Canonical vertical edges run downward and horizontal edges run
	// rightward, so P1 is always the north-west end.
	c := e.Canonical()
	if o.Vertical() {
		return b.completesVertical(c.P1)
	}
	return b.completesHorizontal(c.P1)
}

// completesVertical checks the cells west and east of the edge from top
// down to top+(0,1).
func (b *Board) completesVertical(top lattice.Point) []lattice.Cell {
	var out []lattice.Cell
	if west := (lattice.Cell{Origin: top.Add(-1, 0)}); b.closedExcept(west, 1) {
		out = append(out, west)
	}
	if east := (lattice.Cell{Origin: top}); b.closedExcept(east, 3) {
		out = append(out, east)
	}
	return out
}

// completesHorizontal checks the cells north and south of the edge from
// left across to left+(1,0).
func (b *Board) completesHorizontal(left lattice.Point) []lattice.Cell {
	var out []lattice.Cell
	if north := (lattice.Cell{Origin: left.Add(0, -1)}); b.closedExcept(north, 2) {
		out = append(out, north)
	}
	if south := (lattice.Cell{Origin: left}); b.closedExcept(south, 0) {
		out = append(out, south)
	}
	return out
}

// closedExcept reports whether every side of c other than Sides()[skip] is
// drawn. skip is the side being placed.
func (b *Board) closedExcept(c lattice.Cell, skip int) bool {
	for i, side := range c.Sides() {
		if i == skip {
			continue
		}
		if !b.HasEdge(side) {
			return false
		}
	}
	return true
}
