package lattice

// Cell is a unit square identified by its north-west (min X, min Y) corner.
type Cell struct {
	Origin Point
}

// Sides returns the four edges bordering c in canonical form:
// north, east, south, west.
func (c Cell) Sides() [4]Edge {
	nw := c.Origin
	ne := nw.Add(1, 0)
	sw := nw.Add(0, 1)
	se := nw.Add(1, 1)
	return [4]Edge{
		{P1: nw, P2: ne},
		{P1: ne, P2: se},
		{P1: sw, P2: se},
		{P1: nw, P2: sw},
	}
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	return "cell" + c.Origin.String()
}
