package creature

import (
	"soulcaster/internal/axiom"
	"soulcaster/internal/effect"
	"soulcaster/internal/grid"
	"soulcaster/internal/soul"
)

// ID identifies a creature. It is also the creature's Grid occupant value.
type ID = grid.OccupantID

// Species tags the kind of creature; per-species data lives in assets.
type Species uint8

const (
	SpeciesTerminal Species = iota // the player
	SpeciesScion
	SpeciesShrike
	SpeciesApiarist
	SpeciesTinker
	SpeciesHarmonizer
	SpeciesWisp // intangible
	SpeciesWall
)

var speciesNames = map[Species]string{
	SpeciesTerminal:   "terminal",
	SpeciesScion:      "scion",
	SpeciesShrike:     "shrike",
	SpeciesApiarist:   "apiarist",
	SpeciesTinker:     "tinker",
	SpeciesHarmonizer: "harmonizer",
	SpeciesWisp:       "wisp",
	SpeciesWall:       "wall",
}

func (s Species) String() string {
	if n, ok := speciesNames[s]; ok {
		return n
	}
	return "unknown"
}

// ParseSpecies maps a config name back to its Species.
func ParseSpecies(name string) (Species, bool) {
	for s, n := range speciesNames {
		if n == name {
			return s, true
		}
	}
	return 0, false
}

// Faction groups creatures that fight together.
type Faction uint8

const (
	FactionUnaligned Faction = iota
	FactionSaintly
	FactionOrdered
	FactionFeral
	FactionVile
)

// Creature is one occupant of the simulation.
type Creature struct {
	ID       ID
	Pos      grid.Point
	Momentum grid.Point // each component in {-1, 0, 1}
	Species  Species
	Faction  Faction

	// native is the faction to return to once a Charm wears off.
	native  Faction
	charmed bool

	// Player marks the creature driven by the input collaborator.
	Player bool
	// Intangible creatures are never written into the Grid.
	Intangible bool

	Effects *effect.Ledger
	Souls   *soul.Deck
	Axioms  axiom.Table
}

// Charm switches c to faction f, remembering its own faction. Charming an
// already charmed creature keeps the faction it started with.
func (c *Creature) Charm(f Faction) {
	if !c.charmed {
		c.native = c.Faction
		c.charmed = true
	}
	c.Faction = f
}

// Charmed reports whether c fights for a faction other than its own.
func (c *Creature) Charmed() bool { return c.charmed }

// Uncharm restores c's own faction. It reports false if c was not charmed.
func (c *Creature) Uncharm() bool {
	if !c.charmed {
		return false
	}
	c.Faction = c.native
	c.charmed = false
	return true
}

// New returns a creature with an empty ledger and deck.
func New(species Species, pos grid.Point) *Creature {
	return &Creature{
		Species:  species,
		Pos:      pos,
		Momentum: grid.Point{X: 0, Y: 1},
		Effects:  effect.NewLedger(),
		Souls:    soul.NewDeck(),
	}
}

var factionNames = map[Faction]string{
	FactionUnaligned: "unaligned",
	FactionSaintly:   "saintly",
	FactionOrdered:   "ordered",
	FactionFeral:     "feral",
	FactionVile:      "vile",
}

func (f Faction) String() string {
	if n, ok := factionNames[f]; ok {
		return n
	}
	return "unknown"
}

// ParseFaction maps a config name back to its Faction. The empty name is
// FactionUnaligned.
func ParseFaction(name string) (Faction, bool) {
	if name == "" {
		return FactionUnaligned, true
	}
	for f, n := range factionNames {
		if n == name {
			return f, true
		}
	}
	return FactionUnaligned, false
}
