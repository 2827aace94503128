package board

import "fmt"

type Square struct {
	R int `json:"r"`
	C int `json:"c"`
}

func NewSquare(r, c int) Square {
	return Square{R: r, C: c}
}

func (s Square) String() string {
	return fmt.Sprintf("(%d, %d)", s.R, s.C)
}

// Edges returns the four candidate edges bounding s. Candidates above and to
// the left are addressed through the neighbouring square, so a shared edge has
// a single identifier no matter which square generated it.
func (s Square) Edges() [4]Edge {
	return [...]Edge{
		NewEdge(s.R-1, s.C, Horizontal),
		NewEdge(s.R, s.C, Horizontal),
		NewEdge(s.R, s.C-1, Vertical),
		NewEdge(s.R, s.C, Vertical),
	}
}
