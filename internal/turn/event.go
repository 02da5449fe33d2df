package turn

import (
	"soulcaster/internal/creature"
	"soulcaster/internal/effect"
	"soulcaster/internal/grid"
	"soulcaster/internal/soul"
)

// EventKind tags what changed during a pass.
type EventKind uint8

const (
	EventMoved EventKind = iota
	EventDashed
	EventSoulDrawn
	EventReshuffled
	EventEffectChanged
	EventMessage
	EventSoulStolen
	EventCharmed
	EventCharmEnded
)

// Event is what the presentation layer needs to animate one change. Only
// the fields that belong to Kind are set.
type Event struct {
	Kind     EventKind
	Turn     int
	Pass     int
	Creature creature.ID
	Other    creature.ID // thief for SoulStolen, charmer for Charmed

	From, To grid.Point // Moved, Dashed

	Slot      int        // SoulDrawn
	Discarded soul.Token // SoulDrawn
	Drawn     soul.Token // SoulDrawn, SoulStolen

	Effect effect.Kind // EffectChanged
	Stacks int         // EffectChanged

	Text string // Message
}
