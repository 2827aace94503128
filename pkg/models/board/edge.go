package board

import "fmt"

type Orientation int8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "H"
	case Vertical:
		return "V"
	}
	return ""
}

// Edge identifies the border line addressed by a square coordinate and an
// orientation. A horizontal edge at (r, c) lies between squares (r, c) and
// (r+1, c); a vertical edge at (r, c) lies between (r, c) and (r, c+1).
type Edge struct {
	R           int         `json:"r"`
	C           int         `json:"c"`
	Orientation Orientation `json:"o"`
}

func NewEdge(r, c int, o Orientation) Edge {
	return Edge{R: r, C: c, Orientation: o}
}

func (e Edge) String() string {
	return fmt.Sprintf("(%d, %d, %s)", e.R, e.C, e.Orientation)
}

// NearSquares returns both squares the edge could border, whether or not they
// belong to any shape.
func (e Edge) NearSquares() [2]Square {
	if e.Orientation == Horizontal {
		return [...]Square{NewSquare(e.R, e.C), NewSquare(e.R+1, e.C)}
	}
	return [...]Square{NewSquare(e.R, e.C), NewSquare(e.R, e.C+1)}
}
