package render

import (
	"soulcaster/internal/creature"
	"soulcaster/internal/effect"
	"soulcaster/internal/soul"

	"github.com/gdamore/tcell/v2"
)

// Floor glyphs. Emoji carry their own colors, so the floor is a plain
// dotted pattern and creatures are told apart by their cell background.
const (
	GlyphFloor = "·"
	GlyphEdge  = "▒"
)

// FactionColors tints the cell behind a creature.
var FactionColors = map[creature.Faction]tcell.Color{
	creature.FactionUnaligned: tcell.ColorBlack,
	creature.FactionSaintly:   tcell.ColorNavy,
	creature.FactionOrdered:   tcell.ColorDarkSlateGray,
	creature.FactionFeral:     tcell.ColorDarkGreen,
	creature.FactionVile:      tcell.ColorMaroon,
}

// CategoryColors colors a held soul in the HUD.
var CategoryColors = [soul.NumCategories]tcell.Color{
	soul.Saintly: tcell.ColorGold,
	soul.Ordered: tcell.ColorLightSteelBlue,
	soul.Feral:   tcell.ColorLimeGreen,
	soul.Vile:    tcell.ColorOrangeRed,
	soul.Serene:  tcell.ColorAqua,
}

func factionColor(f creature.Faction) tcell.Color {
	if c, ok := FactionColors[f]; ok {
		return c
	}
	return tcell.ColorBlack
}

func effectColor(k effect.Kind) tcell.Color {
	if k.IsVirtue() {
		return tcell.ColorLightYellow
	}
	return tcell.ColorFuchsia
}
