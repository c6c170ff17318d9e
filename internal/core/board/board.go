// Package board keeps the drawn edges and claimed cells of a game and
// detects which cells a new edge closes.
package board

import (
	"errors"
	"log/slog"

	"chosenoffset.com/dotsandboxes/internal/core/lattice"
)

var (
	// ErrInvalidEdge is returned for edges whose endpoints are not
	// orthogonally adjacent.
	ErrInvalidEdge = errors.New("board: edge does not join adjacent lattice points")
	// ErrDuplicateEdge is returned for edges already on the board in either
	// endpoint order.
	ErrDuplicateEdge = errors.New("board: edge already drawn")
)

// Board is the append-only state of one game. Edges and cells keep their
// insertion order for rendering; lookups go through sets keyed by canonical
// edge and by cell origin.
//
// A Board is not safe for concurrent use.
type Board struct {
	edges   []lattice.Edge
	edgeSet map[lattice.Edge]struct{}
	cells   []lattice.Cell
	cellSet map[lattice.Point]struct{}

	// OnCellClaimed is called once for every newly claimed cell, after the
	// edge that closed it has been recorded.
	OnCellClaimed func(cell lattice.Cell)
}

// New creates an empty board.
func New() *Board {
	return &Board{
		edgeSet: make(map[lattice.Edge]struct{}),
		cellSet: make(map[lattice.Point]struct{}),
	}
}

// Insert validates e, records it and claims every cell it closes. It returns
// the newly claimed cells, in west/north then east/south order.
//
// ErrInvalidEdge and ErrDuplicateEdge leave the board unchanged. They are
// policy rejections rather than failures; interactive callers drop them.
func (b *Board) Insert(e lattice.Edge) ([]lattice.Cell, error) {
	if !e.IsValid() {
		Logger().Debug("rejected edge", slog.String("edge", e.String()), slog.String("reason", "invalid"))
		return nil, ErrInvalidEdge
	}
	if b.HasEdge(e) {
		Logger().Debug("rejected edge", slog.String("edge", e.String()), slog.String("reason", "duplicate"))
		return nil, ErrDuplicateEdge
	}

	// Detection must only see edges drawn before e.
	closed := b.Completes(e)

	b.edges = append(b.edges, e)
	b.edgeSet[e.Canonical()] = struct{}{}
	Logger().Debug("added edge",
		slog.String("edge", e.String()),
		slog.String("orientation", e.Orientation().String()))

	var claimed []lattice.Cell
	for _, c := range closed {
		if _, ok := b.cellSet[c.Origin]; ok {
			continue
		}
		b.cellSet[c.Origin] = struct{}{}
		b.cells = append(b.cells, c)
		claimed = append(claimed, c)
		Logger().Debug("claimed cell", slog.String("origin", c.Origin.String()))
	}

	if b.OnCellClaimed != nil {
		for _, c := range claimed {
			b.OnCellClaimed(c)
		}
	}
	return claimed, nil
}

// HasEdge reports whether e is drawn, in either endpoint order.
func (b *Board) HasEdge(e lattice.Edge) bool {
	_, ok := b.edgeSet[e.Canonical()]
	return ok
}

// Claimed reports whether the cell with the given origin has been claimed.
func (b *Board) Claimed(origin lattice.Point) bool {
	_, ok := b.cellSet[origin]
	return ok
}

// Edges returns the drawn edges in insertion order, as they were recorded.
func (b *Board) Edges() []lattice.Edge {
	out := make([]lattice.Edge, len(b.edges))
	copy(out, b.edges)
	return out
}

// Cells returns the claimed cells in claim order.
func (b *Board) Cells() []lattice.Cell {
	out := make([]lattice.Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// EdgeCount returns the number of drawn edges.
func (b *Board) EdgeCount() int {
	return len(b.edges)
}

// CellCount returns the number of claimed cells.
func (b *Board) CellCount() int {
	return len(b.cells)
}
