// Package lattice holds the integer grid geometry of the board: lattice
// points, the unit edges drawn between them and the cells they enclose.
package lattice

import (
	"fmt"
	"math"
)

// Point is a lattice coordinate, not a pixel position.
// (0,0) is the top-left point and Y grows downward.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Equals reports whether both coordinates match exactly.
func (p Point) Equals(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Add returns p offset by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Less orders points by X, then by Y.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
