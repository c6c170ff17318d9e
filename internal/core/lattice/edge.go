package lattice

import "fmt"

// Orientation is the cardinal direction of an edge, read from P1 towards P2
// with Y growing downward. It depends on endpoint order.
type Orientation int

const (
	None Orientation = iota
	North
	East
	South
	West
)

// String returns the lowercase direction name.
func (o Orientation) String() string {
	switch o {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "none"
	}
}

// Opposite returns the orientation of the same edge with its endpoints swapped.
func (o Orientation) Opposite() Orientation {
	switch o {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return None
	}
}

// Vertical reports whether o runs along the Y axis.
func (o Orientation) Vertical() bool {
	return o == North || o == South
}

// Edge is a segment between two lattice points. Equality ignores endpoint
// order; orientation does not.
type Edge struct {
	P1, P2 Point
}

// E is shorthand for Edge{P1: p1, P2: p2}.
func E(p1, p2 Point) Edge {
	return Edge{P1: p1, P2: p2}
}

// IsValid reports whether the endpoints are orthogonally adjacent. Diagonal,
// zero-length and longer segments are invalid.
func (e Edge) IsValid() bool {
	return abs(e.P1.X-e.P2.X)+abs(e.P1.Y-e.P2.Y) == 1
}

// Orientation classifies the edge from P1 - P2. Invalid edges may still
// classify when one axis differs by exactly one; callers check IsValid first.
func (e Edge) Orientation() Orientation {
	dx := e.P1.X - e.P2.X
	dy := e.P1.Y - e.P2.Y
	switch {
	case dy == 1:
		return North
	case dx == -1:
		return East
	case dy == -1:
		return South
	case dx == 1:
		return West
	default:
		return None
	}
}

// Equals reports whether e and o join the same two points in either order.
func (e Edge) Equals(o Edge) bool {
	return (e.P1.Equals(o.P1) && e.P2.Equals(o.P2)) ||
		(e.P1.Equals(o.P2) && e.P2.Equals(o.P1))
}

// Reverse swaps the endpoints.
func (e Edge) Reverse() Edge {
	return Edge{P1: e.P2, P2: e.P1}
}

// Canonical returns e with the lexicographically smaller endpoint first, so
// that two equal edges have identical canonical forms. A canonical vertical
// edge runs downward and a canonical horizontal edge runs rightward.
func (e Edge) Canonical() Edge {
	if e.P2.Less(e.P1) {
		return e.Reverse()
	}
	return e
}

// String implements fmt.Stringer.
func (e Edge) String() string {
	return fmt.Sprintf("%v-%v", e.P1, e.P2)
}
