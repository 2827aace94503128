package board

import (
	"errors"
	"testing"
)

func TestNewShapeRejectsEmpty(t *testing.T) {
	if _, err := NewShape(); !errors.Is(err, ErrEmptyShape) {
		t.Fatalf("NewShape() error = %v, want %v", err, ErrEmptyShape)
	}
}

func TestShapeByName(t *testing.T) {
	for _, name := range ShapeNames() {
		shape, err := ShapeByName(name)
		if err != nil {
			t.Fatalf("ShapeByName(%q) error = %v", name, err)
		}
		if shape.Count() == 0 {
			t.Fatalf("ShapeByName(%q) returned empty shape", name)
		}
	}

	if _, err := ShapeByName("pentomino"); !errors.Is(err, ErrUnknownShape) {
		t.Fatalf("ShapeByName(unknown) error = %v, want %v", err, ErrUnknownShape)
	}
}

func TestShapeCounts(t *testing.T) {
	tests := []struct {
		name  string
		count int
	}{
		{"single", 1},
		{"l-shape", 3},
		{"two-by-two", 4},
		{"long-strip", 4},
	}

	for _, tt := range tests {
		if got := MustShape(tt.name).Count(); got != tt.count {
			t.Errorf("%s: Count() = %d, want %d", tt.name, got, tt.count)
		}
	}
}

func TestBoundingBox(t *testing.T) {
	shape, err := NewShape(NewSquare(-1, 2), NewSquare(3, 0), NewSquare(1, 1))
	if err != nil {
		t.Fatal(err)
	}

	minR, minC, maxR, maxC := shape.BoundingBox()
	if minR != -1 || minC != 0 || maxR != 3 || maxC != 2 {
		t.Fatalf("BoundingBox() = (%d, %d, %d, %d), want (-1, 0, 3, 2)", minR, minC, maxR, maxC)
	}
}

func TestSquaresSorted(t *testing.T) {
	shape := MustShape("two-by-two")
	squares := shape.Squares()

	want := []Square{NewSquare(0, 0), NewSquare(0, 1), NewSquare(1, 0), NewSquare(1, 1)}
	if len(squares) != len(want) {
		t.Fatalf("Squares() returned %d squares, want %d", len(squares), len(want))
	}

	for i := range want {
		if squares[i] != want[i] {
			t.Errorf("Squares()[%d] = %v, want %v", i, squares[i], want[i])
		}
	}
}
