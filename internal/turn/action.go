package turn

import (
	"soulcaster/internal/axiom"
	"soulcaster/internal/creature"
	"soulcaster/internal/grid"
)

// ActionKind tags what a creature wants to do this turn.
type ActionKind uint8

const (
	ActNothing ActionKind = iota
	ActWalk
	ActSoulCast
)

// Action is one creature's input for a turn.
type Action struct {
	Kind     ActionKind
	Momentum grid.Point // Walk
	Slot     int        // SoulCast
}

// Walk steps along (dx, dy). Components are clamped to {-1, 0, 1}.
func Walk(dx, dy int) Action {
	return Action{Kind: ActWalk, Momentum: grid.Point{X: dx, Y: dy}.Sign()}
}

// SoulCast casts the soul held in slot.
func SoulCast(slot int) Action { return Action{Kind: ActSoulCast, Slot: slot} }

// Nothing passes the turn.
func Nothing() Action { return Action{} }

// CasterContext describes who cast a queued application and from where.
type CasterContext struct {
	ID       creature.ID
	Pos      grid.Point
	Momentum grid.Point
	Species  creature.Species
}

// Application is one queued effect-application: a Function aimed at a
// target, remembering its caster.
type Application struct {
	Caster   CasterContext
	Target   creature.ID
	Function axiom.Function
}

func contextOf(c *creature.Creature) CasterContext {
	return CasterContext{ID: c.ID, Pos: c.Pos, Momentum: c.Momentum, Species: c.Species}
}
