package board

import (
	"math/rand"
	"sort"
)

// Graph maps every edge bordering at least one shape square to its color. The
// structure is fixed for the lifetime of a game; only the owning Game tracks
// which edges have been removed.
type Graph struct {
	Shape  Shape
	Colors map[Edge]Color
}

// NewGraph enumerates each square's four candidate edges, deduplicates shared
// ones and assigns each retained edge a uniform random color drawn from r.
// Squares are visited in row-major order so a fixed seed reproduces the same
// coloring.
func NewGraph(shape Shape, r *rand.Rand) (g Graph) {
	g = Graph{
		Shape:  shape,
		Colors: make(map[Edge]Color),
	}

	for _, sq := range shape.Squares() {
		for _, e := range sq.Edges() {
			if _, c := g.Colors[e]; c {
				continue
			}

			if len(g.NearSquares(e)) == 0 {
				continue
			}

			if r.Intn(2) == 0 {
				g.Colors[e] = Blue
			} else {
				g.Colors[e] = Red
			}
		}
	}

	return
}

func (g Graph) Contains(e Edge) bool {
	_, c := g.Colors[e]
	return c
}

func (g Graph) EdgeCount() int {
	return len(g.Colors)
}

// NearSquares returns the 1 or 2 shape squares bordered by e.
func (g Graph) NearSquares(e Edge) (near []Square) {
	for _, sq := range e.NearSquares() {
		if g.Shape.Contains(sq) {
			near = append(near, sq)
		}
	}
	return
}

// Edges returns every graph edge in a stable order.
func (g Graph) Edges() (edges []Edge) {
	for e := range g.Colors {
		edges = append(edges, e)
	}
	sortEdges(edges)
	return
}

func sortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].R != edges[j].R {
			return edges[i].R < edges[j].R
		}
		if edges[i].C != edges[j].C {
			return edges[i].C < edges[j].C
		}
		return edges[i].Orientation < edges[j].Orientation
	})
}
