package assets

import (
	"soulcaster/internal/axiom"
	"soulcaster/internal/creature"
	"soulcaster/internal/effect"
	"soulcaster/internal/soul"
	"soulcaster/internal/targeting"
)

// Emoji constants used as creature glyphs.
const (
	GlyphTerminal   = "🧙"
	GlyphScion      = "👼"
	GlyphShrike     = "🦅"
	GlyphApiarist   = "🐝"
	GlyphTinker     = "🔧"
	GlyphHarmonizer = "🎐"
	GlyphWisp       = "👻"
	GlyphWall       = "🧱"
	GlyphUnknown    = "❓"
)

// SpeciesDef is everything a species starts with. Axioms are indexed by
// soul.AxiomIndex: 0 Saintly/Serene, 1 Ordered, 2 Feral, 3 Vile.
type SpeciesDef struct {
	Name       string
	Glyph      string
	Intangible bool
	Axioms     axiom.Table
	Souls      [soul.NumCategories]int // tokens dealt per category
	Virtues    []effect.Effect
}

func ax(form targeting.FormKind, fn axiom.Function) axiom.Axiom {
	return axiom.Axiom{Form: targeting.Simple(form), Function: fn}
}

// Species is the dispatch table for per-species data. New species are added
// here and nowhere else.
var Species = map[creature.Species]SpeciesDef{
	creature.SpeciesTerminal: {
		Name:  "Terminal",
		Glyph: GlyphTerminal,
		Axioms: axiom.Table{
			ax(targeting.FormMomentumTouch, axiom.Collide()),
			ax(targeting.FormMomentumLateral, axiom.Charm(3)),
			ax(targeting.FormSelf, axiom.LinearDash(3)),
			ax(targeting.FormMomentumTouch, axiom.StealSouls()),
		},
		Souls: [soul.NumCategories]int{2, 2, 2, 2, 2},
		Virtues: []effect.Effect{
			{Kind: effect.KindDiscipline, Stacks: 1},
			{Kind: effect.KindGlamour, Stacks: 1},
			{Kind: effect.KindGrace, Stacks: 1},
			{Kind: effect.KindPride, Stacks: 1},
		},
	},
	creature.SpeciesScion: {
		Name:  "Scion",
		Glyph: GlyphScion,
		Axioms: axiom.Table{
			ax(targeting.FormSelf, axiom.ApplyEffect(effect.KindGrace, 1)),
			ax(targeting.FormMomentumTouch, axiom.Collide()),
			ax(targeting.FormMomentumTail, axiom.Collide()),
			ax(targeting.FormMomentumLateral, axiom.MessageLog("The Scion hums a hymn.")),
		},
		Souls:   [soul.NumCategories]int{3, 3, 0, 0, 2},
		Virtues: []effect.Effect{{Kind: effect.KindGrace, Stacks: 2}},
	},
	creature.SpeciesShrike: {
		Name:  "Shrike",
		Glyph: GlyphShrike,
		Axioms: axiom.Table{
			ax(targeting.FormMomentumTouch, axiom.Collide()),
			ax(targeting.FormSelf, axiom.LinearDash(2)),
			ax(targeting.FormSelf, axiom.LinearDash(4)),
			ax(targeting.FormSmallBurst, axiom.Collide()),
		},
		Souls:   [soul.NumCategories]int{0, 2, 4, 2, 0},
		Virtues: []effect.Effect{{Kind: effect.KindPride, Stacks: 1}},
	},
	creature.SpeciesApiarist: {
		Name:  "Apiarist",
		Glyph: GlyphApiarist,
		Axioms: axiom.Table{
			ax(targeting.FormSmallBurst, axiom.ApplyEffect(effect.KindSync, 1)),
			ax(targeting.FormMomentumTouch, axiom.ApplyEffect(effect.KindAssignedPatient, 1)),
			ax(targeting.FormSmallBurst, axiom.Collide()),
			ax(targeting.FormMomentumTouch, axiom.Function{Kind: axiom.FuncSummon}),
		},
		Souls: [soul.NumCategories]int{1, 1, 3, 1, 1},
	},
	creature.SpeciesTinker: {
		Name:  "Tinker",
		Glyph: GlyphTinker,
		Axioms: axiom.Table{
			ax(targeting.FormMomentumTouch, axiom.ApplyEffect(effect.KindOpenDoor, 1)),
			ax(targeting.FormMomentumLateral, axiom.Collide()),
			ax(targeting.FormMomentumBeam, axiom.Function{Kind: axiom.FuncGrapple}),
			ax(targeting.FormSelf, axiom.ApplyEffect(effect.KindMeltdown, 1)),
		},
		Souls:   [soul.NumCategories]int{0, 4, 1, 1, 0},
		Virtues: []effect.Effect{{Kind: effect.KindDiscipline, Stacks: 2}},
	},
	creature.SpeciesHarmonizer: {
		Name:  "Harmonizer",
		Glyph: GlyphHarmonizer,
		Axioms: axiom.Table{
			ax(targeting.FormBigOuter, axiom.MessageLog("A distant chord rings out.")),
			ax(targeting.FormBigOuter, axiom.Charm(2)),
			ax(targeting.FormSmallBurst, axiom.ApplyEffect(effect.KindStun, 1)),
			ax(targeting.FormBigOuter, axiom.StealSouls()),
		},
		Souls:   [soul.NumCategories]int{1, 2, 1, 2, 2},
		Virtues: []effect.Effect{{Kind: effect.KindGlamour, Stacks: 3}},
	},
	creature.SpeciesWisp: {
		Name:       "Wisp",
		Glyph:      GlyphWisp,
		Intangible: true,
		Axioms: axiom.Table{
			ax(targeting.FormMomentumBeam, axiom.MessageLog("A wisp flickers.")),
			ax(targeting.FormSelf, axiom.LinearDash(3)),
			ax(targeting.FormEmpty, axiom.Empty()),
			ax(targeting.FormEmpty, axiom.Empty()),
		},
		Souls: [soul.NumCategories]int{1, 1, 1, 0, 1},
	},
	creature.SpeciesWall: {
		Name:  "Wall",
		Glyph: GlyphWall,
	},
}

// SpeciesFor returns the definition for s, or a blank, soulless one.
func SpeciesFor(s creature.Species) SpeciesDef {
	if d, ok := Species[s]; ok {
		return d
	}
	return SpeciesDef{Name: s.String(), Glyph: GlyphUnknown}
}
