package board

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrEmptyShape   = errors.New("shape must contain at least one square")
	ErrUnknownShape = errors.New("unknown shape name")
)

// Shape is the immutable set of squares a board is built from. Connectivity is
// not checked: a disconnected shape simply plays as independent components.
type Shape map[Square]struct{}

func NewShape(squares ...Square) (Shape, error) {
	if len(squares) == 0 {
		return nil, ErrEmptyShape
	}

	s := make(Shape, len(squares))
	for _, sq := range squares {
		s[sq] = struct{}{}
	}
	return s, nil
}

func (s Shape) Contains(sq Square) bool {
	_, c := s[sq]
	return c
}

func (s Shape) Count() int {
	return len(s)
}

// Squares returns the shape in row-major order.
func (s Shape) Squares() (squares []Square) {
	for sq := range s {
		squares = append(squares, sq)
	}
	sortSquares(squares)
	return
}

func (s Shape) BoundingBox() (minR, minC, maxR, maxC int) {
	first := true
	for sq := range s {
		if first {
			minR, maxR = sq.R, sq.R
			minC, maxC = sq.C, sq.C
			first = false
			continue
		}
		minR = min(minR, sq.R)
		maxR = max(maxR, sq.R)
		minC = min(minC, sq.C)
		maxC = max(maxC, sq.C)
	}
	return
}

func sortSquares(squares []Square) {
	sort.Slice(squares, func(i, j int) bool {
		if squares[i].R != squares[j].R {
			return squares[i].R < squares[j].R
		}
		return squares[i].C < squares[j].C
	})
}

var shapeSquares = map[string][]Square{
	"single":     {NewSquare(0, 0)},
	"l-shape":    {NewSquare(0, 0), NewSquare(0, 1), NewSquare(1, 0)},
	"two-by-two": {NewSquare(0, 0), NewSquare(0, 1), NewSquare(1, 0), NewSquare(1, 1)},
	"long-strip": {NewSquare(0, 0), NewSquare(0, 1), NewSquare(0, 2), NewSquare(0, 3)},
}

func ShapeByName(name string) (Shape, error) {
	squares, c := shapeSquares[name]
	if !c {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
	return NewShape(squares...)
}

func MustShape(name string) Shape {
	s, err := ShapeByName(name)
	if err != nil {
		panic(err)
	}
	return s
}

func ShapeNames() (names []string) {
	for name := range shapeSquares {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
