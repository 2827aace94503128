package board

import (
	"math/rand"
	"testing"
)

func TestNewGraphTwoByTwo(t *testing.T) {
	g := NewGraph(MustShape("two-by-two"), rand.New(rand.NewSource(1)))

	if g.EdgeCount() != 12 {
		t.Fatalf("EdgeCount() = %d, want 12", g.EdgeCount())
	}

	interior := map[Edge]struct{}{
		NewEdge(0, 0, Horizontal): {},
		NewEdge(0, 1, Horizontal): {},
		NewEdge(0, 0, Vertical):   {},
		NewEdge(1, 0, Vertical):   {},
	}

	for _, e := range g.Edges() {
		near := len(g.NearSquares(e))
		if _, c := interior[e]; c {
			if near != 2 {
				t.Errorf("interior edge %v borders %d squares, want 2", e, near)
			}
		} else if near != 1 {
			t.Errorf("boundary edge %v borders %d squares, want 1", e, near)
		}
	}
}

func TestNewGraphEdgeCounts(t *testing.T) {
	tests := []struct {
		shape string
		edges int
	}{
		{"single", 4},
		{"l-shape", 10},
		{"two-by-two", 12},
		{"long-strip", 13},
	}

	for _, tt := range tests {
		g := NewGraph(MustShape(tt.shape), rand.New(rand.NewSource(1)))
		if g.EdgeCount() != tt.edges {
			t.Errorf("%s: EdgeCount() = %d, want %d", tt.shape, g.EdgeCount(), tt.edges)
		}
	}
}

func TestNewGraphEveryEdgeBordersShape(t *testing.T) {
	for _, name := range ShapeNames() {
		g := NewGraph(MustShape(name), rand.New(rand.NewSource(2)))
		for _, e := range g.Edges() {
			if len(g.NearSquares(e)) == 0 {
				t.Errorf("%s: edge %v borders no shape square", name, e)
			}
		}
	}
}

func TestNewGraphDeterministic(t *testing.T) {
	shape := MustShape("two-by-two")

	a := NewGraph(shape, rand.New(rand.NewSource(42)))
	b := NewGraph(shape, rand.New(rand.NewSource(42)))

	if len(a.Colors) != len(b.Colors) {
		t.Fatalf("edge counts differ: %d vs %d", len(a.Colors), len(b.Colors))
	}

	for e, color := range a.Colors {
		if b.Colors[e] != color {
			t.Errorf("edge %v colored %v and %v under the same seed", e, color, b.Colors[e])
		}
	}
}

func TestGraphContains(t *testing.T) {
	g := NewGraph(MustShape("single"), rand.New(rand.NewSource(1)))

	if !g.Contains(NewEdge(0, 0, Horizontal)) {
		t.Error("Contains() = false for an edge of the single square")
	}
	if g.Contains(NewEdge(5, 5, Vertical)) {
		t.Error("Contains() = true for a far-away edge")
	}
}
