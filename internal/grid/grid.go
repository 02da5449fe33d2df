package grid

import (
	"errors"
	"fmt"
)

// OccupantID identifies whatever sits in a cell. Zero means the cell is empty.
type OccupantID uint64

// NoOccupant is the empty-cell value.
const NoOccupant OccupantID = 0

// DefaultSize is the width and height of the reference arena.
const DefaultSize = 45

var (
	ErrOutOfBounds  = errors.New("cell out of bounds")
	ErrCellOccupied = errors.New("cell occupied")
)

// Grid is the single source of truth for which occupant sits at a cell.
// Cells are stored row-major at index y*Width + x.
type Grid struct {
	Width, Height int
	cells         []OccupantID
}

// New creates an empty width x height grid.
func New(width, height int) *Grid {
	return &Grid{Width: width, Height: height, cells: make([]OccupantID, width*height)}
}

// InBounds reports whether p lies within [0,Width) x [0,Height).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

func (g *Grid) index(p Point) int { return p.Y*g.Width + p.X }

// At returns the occupant at p. ok is false when p is empty or out of bounds.
func (g *Grid) At(p Point) (OccupantID, bool) {
	if !g.InBounds(p) {
		return NoOccupant, false
	}
	id := g.cells[g.index(p)]
	return id, id != NoOccupant
}

// Occupied reports whether p is in bounds and holds an occupant.
func (g *Grid) Occupied(p Point) bool {
	_, ok := g.At(p)
	return ok
}

// Free reports whether p is in bounds and empty.
func (g *Grid) Free(p Point) bool {
	return g.InBounds(p) && !g.Occupied(p)
}

// Place writes id into the empty cell p.
func (g *Grid) Place(p Point, id OccupantID) error {
	if !g.InBounds(p) {
		return fmt.Errorf("place %d at %v: %w", id, p, ErrOutOfBounds)
	}
	if cur := g.cells[g.index(p)]; cur != NoOccupant {
		return fmt.Errorf("place %d at %v (held by %d): %w", id, p, cur, ErrCellOccupied)
	}
	g.cells[g.index(p)] = id
	return nil
}

// Vacate clears p. Out-of-bounds cells are ignored.
func (g *Grid) Vacate(p Point) {
	if g.InBounds(p) {
		g.cells[g.index(p)] = NoOccupant
	}
}

// Move transfers the occupant of from into the empty cell to.
func (g *Grid) Move(from, to Point) error {
	id, ok := g.At(from)
	if !ok {
		return fmt.Errorf("move from empty cell %v", from)
	}
	if from == to {
		return nil
	}
	if err := g.Place(to, id); err != nil {
		return err
	}
	g.cells[g.index(from)] = NoOccupant
	return nil
}

// Points returns every cell in row-major order.
func (g *Grid) Points() []Point {
	pts := make([]Point, 0, len(g.cells))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			pts = append(pts, Point{x, y})
		}
	}
	return pts
}

// Occupants returns every occupant in row-major cell order.
func (g *Grid) Occupants() []OccupantID {
	var ids []OccupantID
	for _, id := range g.cells {
		if id != NoOccupant {
			ids = append(ids, id)
		}
	}
	return ids
}
