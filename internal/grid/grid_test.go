package grid

import (
	"errors"
	"testing"
)

func TestInBounds(t *testing.T) {
	g := New(10, 8)
	cases := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{9, 7}, true},
		{Point{-1, 0}, false},
		{Point{10, 0}, false},
		{Point{0, 8}, false},
	}
	for _, c := range cases {
		if got := g.InBounds(c.p); got != c.want {
			t.Errorf("InBounds(%v)=%v, want %v", c.p, got, c.want)
		}
	}
}

func TestPlaceAndAt(t *testing.T) {
	g := New(5, 5)
	if _, ok := g.At(Point{2, 3}); ok {
		t.Fatal("new grid should be empty")
	}
	if err := g.Place(Point{2, 3}, 7); err != nil {
		t.Fatalf("Place: %v", err)
	}
	id, ok := g.At(Point{2, 3})
	if !ok || id != 7 {
		t.Fatalf("At(2,3) = %d,%v; want 7,true", id, ok)
	}
	// Row-major layout: (2,3) lives at 3*5+2.
	if g.cells[17] != 7 {
		t.Fatalf("expected row-major index 17 to hold 7, got %d", g.cells[17])
	}
}

func TestPlaceRejectsOccupiedAndOutOfBounds(t *testing.T) {
	g := New(5, 5)
	if err := g.Place(Point{1, 1}, 1); err != nil {
		t.Fatal(err)
	}
	if err := g.Place(Point{1, 1}, 2); !errors.Is(err, ErrCellOccupied) {
		t.Fatalf("expected ErrCellOccupied, got %v", err)
	}
	if err := g.Place(Point{5, 0}, 2); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if id, _ := g.At(Point{1, 1}); id != 1 {
		t.Fatalf("original occupant overwritten: %d", id)
	}
}

func TestMove(t *testing.T) {
	g := New(5, 5)
	_ = g.Place(Point{0, 0}, 3)
	if err := g.Move(Point{0, 0}, Point{4, 4}); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if g.Occupied(Point{0, 0}) {
		t.Error("source cell should be vacated")
	}
	if id, _ := g.At(Point{4, 4}); id != 3 {
		t.Errorf("destination holds %d; want 3", id)
	}
	// Moving in place is allowed.
	if err := g.Move(Point{4, 4}, Point{4, 4}); err != nil {
		t.Errorf("in-place move: %v", err)
	}
	_ = g.Place(Point{1, 1}, 9)
	if err := g.Move(Point{4, 4}, Point{1, 1}); !errors.Is(err, ErrCellOccupied) {
		t.Errorf("expected ErrCellOccupied, got %v", err)
	}
}

func TestPointsRowMajor(t *testing.T) {
	g := New(3, 2)
	want := []Point{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	got := g.Points()
	if len(got) != len(want) {
		t.Fatalf("len = %d; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Points()[%d] = %v; want %v", i, got[i], want[i])
		}
	}
}

func TestOccupantsOrder(t *testing.T) {
	g := New(4, 4)
	_ = g.Place(Point{3, 3}, 1)
	_ = g.Place(Point{0, 1}, 2)
	_ = g.Place(Point{2, 0}, 3)
	got := g.Occupants()
	want := []OccupantID{3, 2, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Occupants() = %v; want %v", got, want)
		}
	}
}

func TestPerpendicular(t *testing.T) {
	cases := []struct{ in, want Point }{
		{Point{1, 0}, Point{0, 1}},
		{Point{0, 1}, Point{-1, 0}},
		{Point{1, 1}, Point{-1, 1}},
	}
	for _, c := range cases {
		if got := c.in.Perpendicular(); got != c.want {
			t.Errorf("%v.Perpendicular() = %v; want %v", c.in, got, c.want)
		}
	}
}
