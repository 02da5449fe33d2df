package creature

import (
	"testing"

	"soulcaster/internal/grid"
)

func TestNewDefaults(t *testing.T) {
	c := New(SpeciesScion, grid.Point{X: 3, Y: 4})
	if c.Momentum != (grid.Point{X: 0, Y: 1}) {
		t.Errorf("momentum = %v; want (0,1)", c.Momentum)
	}
	if c.Effects == nil || c.Souls == nil {
		t.Fatal("New must allocate a ledger and a deck")
	}
	if c.Souls.Count() != 0 {
		t.Errorf("fresh deck holds %d tokens; want 0", c.Souls.Count())
	}
}

func TestParseNames(t *testing.T) {
	for s, name := range speciesNames {
		t.Run(name, func(t *testing.T) {
			got, ok := ParseSpecies(name)
			if !ok || got != s {
				t.Errorf("ParseSpecies(%q) = %v, %v", name, got, ok)
			}
		})
	}
	for f, name := range factionNames {
		t.Run(name, func(t *testing.T) {
			got, ok := ParseFaction(name)
			if !ok || got != f {
				t.Errorf("ParseFaction(%q) = %v, %v", name, got, ok)
			}
		})
	}
	if f, ok := ParseFaction(""); !ok || f != FactionUnaligned {
		t.Errorf("ParseFaction(\"\") = %v, %v; want unaligned", f, ok)
	}
	if _, ok := ParseSpecies("dragon"); ok {
		t.Error("ParseSpecies accepted an unknown name")
	}
}

func TestCharmRestoresNativeFaction(t *testing.T) {
	c := New(SpeciesShrike, grid.Point{})
	c.Faction = FactionFeral
	if c.Uncharm() {
		t.Error("Uncharm on an uncharmed creature reported true")
	}

	c.Charm(FactionSaintly)
	c.Charm(FactionVile)
	if c.Faction != FactionVile || !c.Charmed() {
		t.Fatalf("faction = %v charmed = %v; want vile, true", c.Faction, c.Charmed())
	}
	if !c.Uncharm() {
		t.Fatal("Uncharm reported false on a charmed creature")
	}
	if c.Faction != FactionFeral || c.Charmed() {
		t.Errorf("faction = %v charmed = %v; want feral, false", c.Faction, c.Charmed())
	}
}
