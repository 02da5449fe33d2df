package factory

import (
	"math/rand"

	"soulcaster/assets"
	"soulcaster/internal/config"
	"soulcaster/internal/creature"
	"soulcaster/internal/grid"
	"soulcaster/internal/soul"
	"soulcaster/internal/targeting"
	"soulcaster/internal/world"
)

// NewCreature builds a creature of the given species at pos from its
// assets definition, deals it freshly minted souls, fills its hand and
// spawns it into w.
func NewCreature(w *world.World, species creature.Species, pos grid.Point, reach config.Targeting, rng *rand.Rand) (*creature.Creature, error) {
	def := assets.SpeciesFor(species)
	c := creature.New(species, pos)
	c.Intangible = def.Intangible
	c.Axioms = def.Axioms
	for i := range c.Axioms {
		c.Axioms[i].Form = withReach(c.Axioms[i].Form, reach)
	}
	for _, e := range def.Virtues {
		c.Effects.Add(e.Kind, e.Stacks)
	}
	for cat, n := range def.Souls {
		for range n {
			c.Souls.Deal(w.Souls.Mint(soul.Category(cat)))
		}
	}
	if _, err := w.Spawn(c); err != nil {
		return nil, err
	}
	if c.Souls.Count() > 0 {
		if err := c.Souls.Fill(rng); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// NewPlayer creates the player-controlled Terminal at pos.
func NewPlayer(w *world.World, pos grid.Point, reach config.Targeting, rng *rand.Rand) (*creature.Creature, error) {
	c, err := NewCreature(w, creature.SpeciesTerminal, pos, reach, rng)
	if err != nil {
		return nil, err
	}
	c.Player = true
	c.Faction = creature.FactionSaintly
	return c, nil
}

// withReach applies the configured reach to sized forms that keep the default.
func withReach(f targeting.Form, reach config.Targeting) targeting.Form {
	if f.Reach > 0 {
		return f
	}
	switch f.Kind {
	case targeting.FormMomentumBeam:
		f.Reach = reach.BeamReach
	case targeting.FormSmallBurst:
		f.Reach = reach.BurstRadius
	case targeting.FormBigOuter:
		f.Reach = reach.OuterRadius
	}
	return f
}
