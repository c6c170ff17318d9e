package lattice

import (
	"math"
	"testing"
)

func TestPointEquals(t *testing.T) {
	if !Pt(3, 4).Equals(Pt(3, 4)) {
		t.Error("Expected (3,4) to equal (3,4)")
	}
	if Pt(3, 4).Equals(Pt(4, 3)) {
		t.Error("Expected (3,4) to differ from (4,3)")
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(Pt(0, 0), Pt(3, 4)); d != 5 {
		t.Errorf("Expected distance 5, got %v", d)
	}
	if d := Distance(Pt(1, 1), Pt(2, 2)); math.Abs(d-math.Sqrt2) > 1e-12 {
		t.Errorf("Expected distance sqrt(2), got %v", d)
	}
}

func TestEdgeIsValid(t *testing.T) {
	tests := []struct {
		name string
		edge Edge
		want bool
	}{
		{"horizontal", E(Pt(0, 0), Pt(1, 0)), true},
		{"vertical", E(Pt(2, 3), Pt(2, 2)), true},
		{"negative coordinates", E(Pt(-1, -1), Pt(-1, 0)), true},
		{"zero length", E(Pt(1, 1), Pt(1, 1)), false},
		{"diagonal", E(Pt(0, 0), Pt(1, 1)), false},
		{"two cells long", E(Pt(0, 0), Pt(2, 0)), false},
		{"knight move", E(Pt(0, 0), Pt(1, 2)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.edge.IsValid(); got != tt.want {
				t.Errorf("IsValid(%v) = %v, want %v", tt.edge, got, tt.want)
			}
			if got := tt.edge.Reverse().IsValid(); got != tt.want {
				t.Errorf("IsValid(%v) = %v, want %v", tt.edge.Reverse(), got, tt.want)
			}
		})
	}
}

func TestEdgeOrientation(t *testing.T) {
	tests := []struct {
		edge Edge
		want Orientation
	}{
		{E(Pt(0, 1), Pt(0, 0)), North},
		{E(Pt(0, 0), Pt(0, 1)), South},
		{E(Pt(0, 0), Pt(1, 0)), East},
		{E(Pt(1, 0), Pt(0, 0)), West},
		{E(Pt(0, 0), Pt(0, 0)), None},
		{E(Pt(0, 0), Pt(3, 0)), None},
	}

	for _, tt := range tests {
		if got := tt.edge.Orientation(); got != tt.want {
			t.Errorf("Orientation(%v) = %v, want %v", tt.edge, got, tt.want)
		}
	}
}

func TestOrientationSwapIsOpposite(t *testing.T) {
	origin := Pt(5, 5)
	for _, other := range []Point{origin.Add(1, 0), origin.Add(-1, 0), origin.Add(0, 1), origin.Add(0, -1)} {
		e := E(origin, other)
		o := e.Orientation()
		if o == None {
			t.Fatalf("Expected a direction for valid edge %v", e)
		}
		if got := e.Reverse().Orientation(); got != o.Opposite() {
			t.Errorf("Reverse of %v (%v) classified as %v, want %v", e, o, got, o.Opposite())
		}
	}
	if None.Opposite() != None {
		t.Error("Expected None to be its own opposite")
	}
}

func TestEdgeEquals(t *testing.T) {
	p, q, r := Pt(0, 0), Pt(0, 1), Pt(1, 0)

	if !E(p, q).Equals(E(q, p)) {
		t.Error("Expected edge to equal its reverse")
	}
	if !E(p, q).Equals(E(p, q)) {
		t.Error("Expected edge to equal itself")
	}
	if E(p, q).Equals(E(p, r)) {
		t.Error("Expected edges with different far endpoints to differ")
	}
}

func TestEdgeCanonical(t *testing.T) {
	down := E(Pt(2, 3), Pt(2, 2)).Canonical()
	if down.P1 != Pt(2, 2) || down.P2 != Pt(2, 3) {
		t.Errorf("Expected canonical vertical edge to run downward, got %v", down)
	}
	if down.Orientation() != South {
		t.Errorf("Expected canonical vertical edge to be south, got %v", down.Orientation())
	}

	right := E(Pt(4, 1), Pt(3, 1)).Canonical()
	if right.P1 != Pt(3, 1) || right.P2 != Pt(4, 1) {
		t.Errorf("Expected canonical horizontal edge to run rightward, got %v", right)
	}
	if right.Orientation() != East {
		t.Errorf("Expected canonical horizontal edge to be east, got %v", right.Orientation())
	}

	e := E(Pt(7, 7), Pt(7, 8))
	if e.Canonical() != e.Reverse().Canonical() {
		t.Errorf("Expected %v and its reverse to share a canonical form", e)
	}
}

func TestCellSides(t *testing.T) {
	sides := Cell{Origin: Pt(1, 2)}.Sides()
	want := [4]Edge{
		E(Pt(1, 2), Pt(2, 2)),
		E(Pt(2, 2), Pt(2, 3)),
		E(Pt(1, 3), Pt(2, 3)),
		E(Pt(1, 2), Pt(1, 3)),
	}
	if sides != want {
		t.Errorf("Expected sides %v, got %v", want, sides)
	}
	for _, s := range sides {
		if !s.IsValid() {
			t.Errorf("Expected side %v to be valid", s)
		}
		if s.Canonical() != s {
			t.Errorf("Expected side %v to be canonical", s)
		}
	}
}

func TestStringers(t *testing.T) {
	if got := E(Pt(0, 0), Pt(1, 0)).String(); got != "(0,0)-(1,0)" {
		t.Errorf("Expected '(0,0)-(1,0)', got '%s'", got)
	}
	if got := North.String(); got != "north" {
		t.Errorf("Expected 'north', got '%s'", got)
	}
	if got := (Cell{Origin: Pt(2, 1)}).String(); got != "cell(2,1)" {
		t.Errorf("Expected 'cell(2,1)', got '%s'", got)
	}
}
