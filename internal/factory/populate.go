package factory

import (
	"fmt"
	"math/rand"

	"soulcaster/internal/config"
	"soulcaster/internal/creature"
	"soulcaster/internal/generate"
	"soulcaster/internal/grid"
	"soulcaster/internal/targeting"
	"soulcaster/internal/world"
)

// NewWorld builds a world sized and populated from t.
func NewWorld(t config.Tuning, rng *rand.Rand) (*world.World, error) {
	w := world.New(t.Width, t.Height)
	if err := Populate(w, t, rng); err != nil {
		return nil, err
	}
	return w, nil
}

// Populate spawns every entry of t.Population into w. Entries with Cells
// spawn one creature per in-bounds cell of that footprint. Any failure is a
// configuration error.
func Populate(w *world.World, t config.Tuning, rng *rand.Rand) error {
	for i, s := range t.Population {
		species, ok := creature.ParseSpecies(s.Species)
		if !ok {
			return fmt.Errorf("%w: population[%d]: unknown species %q", world.ErrConfig, i, s.Species)
		}
		faction, ok := creature.ParseFaction(s.Faction)
		if !ok {
			return fmt.Errorf("%w: population[%d]: unknown faction %q", world.ErrConfig, i, s.Faction)
		}

		cells := []grid.Point{{X: s.X, Y: s.Y}}
		if len(s.Cells) > 0 {
			pts := make([]grid.Point, len(s.Cells))
			for j, c := range s.Cells {
				pts[j] = grid.Point{X: c[0], Y: c[1]}
			}
			cells = targeting.Resolve(targeting.Artificial(pts), grid.Point{}, grid.Point{}, w.Grid).Cells
		}

		for _, p := range cells {
			c, err := NewCreature(w, species, p, t.Targeting, rng)
			if err != nil {
				return fmt.Errorf("%w: population[%d]: %w", world.ErrConfig, i, err)
			}
			c.Faction = faction
			c.Player = s.Player
		}
	}
	if err := raiseVaults(w, t, rng); err != nil {
		return err
	}
	if _, err := w.Player(); err != nil {
		return err
	}
	return nil
}

// raiseVaults walls off generated rooms. Cells already holding a creature
// stay open.
func raiseVaults(w *world.World, t config.Tuning, rng *rand.Rand) error {
	vaults := generate.Vaults(&generate.Config{
		Width:       t.Width,
		Height:      t.Height,
		MinLeafSize: t.Vaults.MinLeafSize,
		MaxLeafSize: t.Vaults.MaxLeafSize,
		Padding:     t.Vaults.Padding,
		Count:       t.Vaults.Count,
		Rand:        rng,
	})
	for i, v := range vaults {
		footprint := targeting.Resolve(targeting.Artificial(v.Walls), v.Room.Center(), grid.Point{}, w.Grid)
		for _, p := range footprint.Cells {
			if w.Grid.Occupied(p) {
				continue
			}
			if _, err := NewCreature(w, creature.SpeciesWall, p, t.Targeting, rng); err != nil {
				return fmt.Errorf("%w: vault %d: %w", world.ErrConfig, i, err)
			}
		}
	}
	return nil
}
