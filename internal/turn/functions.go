package turn

import (
	"errors"
	"fmt"

	"soulcaster/internal/axiom"
	"soulcaster/internal/creature"
	"soulcaster/internal/effect"
	"soulcaster/internal/grid"
	"soulcaster/internal/soul"
	"soulcaster/internal/targeting"
	"soulcaster/internal/world"
)

type handler func(r *Resolver, w *world.World, app Application) error

// handlers is the dispatch table for Functions. Kinds without an entry are
// consumed without touching the world.
var handlers = map[axiom.FunctionKind]handler{
	axiom.FuncDash:        dash,
	axiom.FuncTeleport:    teleport,
	axiom.FuncLinearDash:  linearDash,
	axiom.FuncDiscardSoul: discardSoul,
	axiom.FuncApplyEffect: applyEffect,
	axiom.FuncCollide:     collide,
	axiom.FuncMessageLog:  messageLog,
	axiom.FuncStealSouls:  stealSouls,
	axiom.FuncCharm:       charm,
}

var errNoTarget = errors.New("target no longer exists")

func target(w *world.World, app Application) (*creature.Creature, error) {
	c, ok := w.Creature(app.Target)
	if !ok {
		return nil, fmt.Errorf("%v on %d: %w", app.Function.Kind, app.Target, errNoTarget)
	}
	return c, nil
}

// linearDash turns momentum into a Dash of the given length.
func linearDash(r *Resolver, w *world.World, app Application) error {
	c, err := target(w, app)
	if err != nil {
		return err
	}
	d := c.Momentum.Scale(app.Function.Distance)
	r.Enqueue(Application{Caster: app.Caster, Target: c.ID, Function: axiom.Dash(d.X, d.Y)})
	return nil
}

// dash walks the line toward Delta and queues a Teleport to the last free
// cell before anything blocks it.
func dash(r *Resolver, w *world.World, app Application) error {
	c, err := target(w, app)
	if err != nil {
		return err
	}
	dest := c.Pos
	line := targeting.Line(c.Pos, c.Pos.Add(app.Function.Delta))
	for _, p := range line[1:] {
		if !w.Grid.InBounds(p) {
			break
		}
		if !c.Intangible && w.Grid.Occupied(p) {
			break
		}
		dest = p
	}
	r.emit(Event{Kind: EventDashed, Creature: c.ID, From: c.Pos, To: dest})
	r.Enqueue(Application{Caster: app.Caster, Target: c.ID, Function: axiom.Teleport(dest.X, dest.Y)})
	return nil
}

// teleport moves the target to Dest unless the cell is taken.
func teleport(r *Resolver, w *world.World, app Application) error {
	c, err := target(w, app)
	if err != nil {
		return err
	}
	dest := app.Function.Dest
	if !w.Grid.InBounds(dest) {
		return nil
	}
	from := c.Pos
	if dest == from {
		return nil
	}
	if !c.Intangible {
		if w.Grid.Occupied(dest) {
			return nil
		}
		if err := w.Grid.Move(from, dest); err != nil {
			return fmt.Errorf("%w: creature %d out of sync with grid: %w", world.ErrConfig, c.ID, err)
		}
	}
	c.Pos = dest
	c.Momentum = facing(dest.Sub(from))
	r.emit(Event{Kind: EventMoved, Creature: c.ID, From: from, To: dest})
	r.fire(c, effect.Move)
	return nil
}

// facing is the unit step along the dominant axis of d. A diagonal d keeps
// both axes.
func facing(d grid.Point) grid.Point {
	ax, ay := abs(d.X), abs(d.Y)
	switch {
	case ax > ay:
		return grid.Point{X: d.Sign().X}
	case ay > ax:
		return grid.Point{Y: d.Sign().Y}
	}
	return d.Sign()
}

func discardSoul(r *Resolver, w *world.World, app Application) error {
	c, err := target(w, app)
	if err != nil {
		return err
	}
	if c.Souls == nil {
		return fmt.Errorf("%w: creature %d has no soul deck", world.ErrConfig, c.ID)
	}
	draw, err := c.Souls.DiscardAndDraw(app.Function.Slot, app.Function.Token, r.rng)
	if errors.Is(err, soul.ErrDeckExhausted) {
		return fmt.Errorf("%w: creature %d: %w", world.ErrConfig, c.ID, err)
	}
	if err != nil {
		return err
	}
	if draw.Reshuffled {
		r.emit(Event{Kind: EventReshuffled, Creature: c.ID})
	}
	r.emit(Event{Kind: EventSoulDrawn, Creature: c.ID, Slot: draw.Slot, Discarded: draw.Discarded, Drawn: draw.Drawn})
	return nil
}

func applyEffect(r *Resolver, w *world.World, app Application) error {
	c, err := target(w, app)
	if err != nil {
		return err
	}
	if c.Effects == nil {
		return fmt.Errorf("%w: creature %d has no effect ledger", world.ErrConfig, c.ID)
	}
	n := c.Effects.Add(app.Function.Effect, app.Function.Stacks)
	r.emit(Event{Kind: EventEffectChanged, Creature: c.ID, Effect: app.Function.Effect, Stacks: n})
	return nil
}

// collide is a hit: the caster deals damage and the target takes it.
func collide(r *Resolver, w *world.World, app Application) error {
	c, err := target(w, app)
	if err != nil {
		return err
	}
	if caster, ok := w.Creature(app.Caster.ID); ok {
		r.fire(caster, effect.DealDamage)
	}
	r.fire(c, effect.TakeDamage)
	return nil
}

func messageLog(r *Resolver, _ *world.World, app Application) error {
	r.emit(Event{Kind: EventMessage, Creature: app.Target, Text: app.Function.Message})
	return nil
}

// stealSouls moves the target's first held soul into the caster's discard.
// The target refills the emptied slot.
func stealSouls(r *Resolver, w *world.World, app Application) error {
	victim, err := target(w, app)
	if err != nil {
		return err
	}
	thief, ok := w.Creature(app.Caster.ID)
	if !ok || thief == victim || thief.Souls == nil || victim.Souls == nil {
		return nil
	}
	slot, ok := victim.Souls.FirstHeld()
	if !ok {
		return nil
	}
	tok, err := victim.Souls.Take(slot, r.rng)
	if err != nil {
		return fmt.Errorf("%w: creature %d: %w", world.ErrConfig, victim.ID, err)
	}
	thief.Souls.Receive(tok)
	r.emit(Event{Kind: EventSoulStolen, Creature: victim.ID, Other: thief.ID, Slot: slot, Drawn: tok})
	return nil
}

// charm stacks Charm on the target and brings it into the caster's faction.
func charm(r *Resolver, w *world.World, app Application) error {
	c, err := target(w, app)
	if err != nil {
		return err
	}
	caster, ok := w.Creature(app.Caster.ID)
	if !ok || caster == c {
		return nil
	}
	if c.Effects == nil {
		return fmt.Errorf("%w: creature %d has no effect ledger", world.ErrConfig, c.ID)
	}
	n := c.Effects.Add(effect.KindCharm, app.Function.Stacks)
	if n == 0 {
		return nil
	}
	c.Charm(caster.Faction)
	r.emit(Event{Kind: EventCharmed, Creature: c.ID, Other: caster.ID, Effect: effect.KindCharm, Stacks: n})
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
