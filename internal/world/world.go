package world

import (
	"errors"
	"fmt"
	"sort"

	"soulcaster/internal/creature"
	"soulcaster/internal/grid"
	"soulcaster/internal/soul"
)

// ErrConfig marks a setup mistake that play can never recover from, as
// opposed to a gameplay no-op.
var ErrConfig = errors.New("configuration error")

// World is the whole simulation state the turn resolver owns during a pass.
type World struct {
	Grid      *grid.Grid
	Souls     soul.Minter
	nextID    creature.ID
	creatures map[creature.ID]*creature.Creature
}

// New creates an empty world on a width x height grid.
func New(width, height int) *World {
	return &World{
		Grid:      grid.New(width, height),
		nextID:    1,
		creatures: make(map[creature.ID]*creature.Creature),
	}
}

// Spawn assigns c an ID and, unless it is intangible, writes it into the Grid.
func (w *World) Spawn(c *creature.Creature) (creature.ID, error) {
	id := w.nextID
	if !c.Intangible {
		if err := w.Grid.Place(c.Pos, id); err != nil {
			return grid.NoOccupant, fmt.Errorf("spawn %v: %w", c.Species, err)
		}
	} else if !w.Grid.InBounds(c.Pos) {
		return grid.NoOccupant, fmt.Errorf("spawn %v at %v: %w", c.Species, c.Pos, grid.ErrOutOfBounds)
	}
	w.nextID++
	c.ID = id
	w.creatures[id] = c
	return id, nil
}

// Remove takes a creature out of the simulation and vacates its cell.
func (w *World) Remove(id creature.ID) {
	c, ok := w.creatures[id]
	if !ok {
		return
	}
	if !c.Intangible {
		if cur, _ := w.Grid.At(c.Pos); cur == id {
			w.Grid.Vacate(c.Pos)
		}
	}
	delete(w.creatures, id)
}

// Creature returns the creature with the given ID.
func (w *World) Creature(id creature.ID) (*creature.Creature, bool) {
	c, ok := w.creatures[id]
	return c, ok
}

// Creatures returns all creatures ordered by ID.
func (w *World) Creatures() []*creature.Creature {
	out := make([]*creature.Creature, 0, len(w.creatures))
	for _, c := range w.creatures {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of creatures.
func (w *World) Len() int { return len(w.creatures) }

// Player returns the single player-controlled creature.
func (w *World) Player() (*creature.Creature, error) {
	var found *creature.Creature
	for _, c := range w.Creatures() {
		if !c.Player {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("%w: more than one player (%d and %d)", ErrConfig, found.ID, c.ID)
		}
		found = c
	}
	if found == nil {
		return nil, fmt.Errorf("%w: no player creature", ErrConfig)
	}
	return found, nil
}

// Check verifies that the Grid and creature positions agree: every tangible
// creature sits in its own cell and nothing else is in the Grid.
func (w *World) Check() error {
	seen := 0
	for _, c := range w.Creatures() {
		if c.Intangible {
			continue
		}
		id, ok := w.Grid.At(c.Pos)
		if !ok || id != c.ID {
			return fmt.Errorf("creature %d at %v not found in grid (cell holds %d)", c.ID, c.Pos, id)
		}
		seen++
	}
	if n := len(w.Grid.Occupants()); n != seen {
		return fmt.Errorf("grid holds %d occupants, %d tangible creatures", n, seen)
	}
	return nil
}
