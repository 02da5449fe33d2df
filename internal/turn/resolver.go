package turn

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"soulcaster/internal/axiom"
	"soulcaster/internal/creature"
	"soulcaster/internal/effect"
	"soulcaster/internal/soul"
	"soulcaster/internal/targeting"
	"soulcaster/internal/world"
)

// State is the turn state machine.
type State uint8

const (
	AwaitingInput State = iota
	CalculatingResponse
	ExecutingTurn
	DispensingFunctions
)

func (s State) String() string {
	switch s {
	case AwaitingInput:
		return "awaiting-input"
	case CalculatingResponse:
		return "calculating-response"
	case ExecutingTurn:
		return "executing-turn"
	case DispensingFunctions:
		return "dispensing-functions"
	}
	return "unknown"
}

const (
	DefaultWalkDistance = 1
	DefaultMaxPasses    = 64
)

var (
	// ErrNotAwaitingInput is returned by Submit outside AwaitingInput.
	ErrNotAwaitingInput = errors.New("resolver is not awaiting input")
	// ErrRunaway means a turn kept producing applications past MaxPasses.
	ErrRunaway = errors.New("turn did not settle")
)

// Resolver expands creature actions into queued applications and resolves
// them one pass at a time. It is not safe for concurrent use: the host calls
// Step once per pass.
type Resolver struct {
	WalkDistance int
	MaxPasses    int

	rng     *rand.Rand
	log     *slog.Logger
	state   State
	actions map[creature.ID]Action
	queue   []Application

	turn    int
	pass    int
	pending []Event
	events  []Event
}

// New returns a resolver awaiting input.
func New(rng *rand.Rand, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		WalkDistance: DefaultWalkDistance,
		MaxPasses:    DefaultMaxPasses,
		rng:          rng,
		log:          logger,
		actions:      make(map[creature.ID]Action),
	}
}

// State returns the current state.
func (r *Resolver) State() State { return r.state }

// Turn returns how many turns have started.
func (r *Resolver) Turn() int { return r.turn }

// Queue returns a copy of the applications waiting for the next pass.
func (r *Resolver) Queue() []Application { return append([]Application(nil), r.queue...) }

// Events returns the events published by completed passes since the last
// DrainEvents.
func (r *Resolver) Events() []Event { return r.events }

// DrainEvents returns and clears the published events.
func (r *Resolver) DrainEvents() []Event {
	ev := r.events
	r.events = nil
	return ev
}

// Submit records this turn's actions and leaves AwaitingInput.
func (r *Resolver) Submit(actions map[creature.ID]Action) error {
	if r.state != AwaitingInput {
		return fmt.Errorf("submit in %v: %w", r.state, ErrNotAwaitingInput)
	}
	clear(r.actions)
	for id, a := range actions {
		r.actions[id] = a
	}
	r.state = CalculatingResponse
	return nil
}

// Enqueue adds an application for the next pass. Hosts use it to inject
// world-seed effects; functions use it to decompose into later passes.
func (r *Resolver) Enqueue(app Application) {
	r.queue = append(r.queue, app)
}

// Step advances the state machine by one transition, or by one pass while
// DispensingFunctions. An error wrapping world.ErrConfig is fatal. An error
// wrapping ErrRunaway abandons the rest of the turn: the queue is dropped
// and the resolver is back in AwaitingInput.
func (r *Resolver) Step(w *world.World) error {
	switch r.state {
	case AwaitingInput:
		return nil
	case CalculatingResponse:
		r.calculateResponse(w)
		r.state = ExecutingTurn
		return nil
	case ExecutingTurn:
		if err := r.executeTurn(w); err != nil {
			return err
		}
		r.state = DispensingFunctions
		return nil
	case DispensingFunctions:
		if err := r.dispense(w); err != nil {
			return err
		}
		if len(r.queue) == 0 {
			r.state = AwaitingInput
		}
		return nil
	}
	return fmt.Errorf("%w: unknown resolver state %d", world.ErrConfig, r.state)
}

// Settle steps until the resolver is back in AwaitingInput.
func (r *Resolver) Settle(w *world.World) error {
	for steps := 0; r.state != AwaitingInput; steps++ {
		if steps > r.MaxPasses+2 {
			r.abandon()
			return fmt.Errorf("turn %d after %d passes: %w", r.turn, r.pass, ErrRunaway)
		}
		if err := r.Step(w); err != nil {
			return err
		}
	}
	return nil
}

// calculateResponse is where non-player decisions would be made. For now
// every non-player creature does nothing.
func (r *Resolver) calculateResponse(w *world.World) {
	for id := range r.actions {
		if c, ok := w.Creature(id); !ok || !c.Player {
			delete(r.actions, id)
		}
	}
}

func (r *Resolver) executeTurn(w *world.World) error {
	r.turn++
	r.pass = 0
	creatures := w.Creatures()
	// Stun is read before EachTurn decays it, so n stacks cost n turns.
	stunned := make(map[creature.ID]bool)
	for _, c := range creatures {
		if c.Effects != nil && c.Effects.Has(effect.KindStun) {
			stunned[c.ID] = true
		}
		r.fire(c, effect.EachTurn)
	}
	for _, c := range creatures {
		a, ok := r.actions[c.ID]
		if !ok {
			continue
		}
		if stunned[c.ID] {
			r.log.Debug("stunned creature loses its action", "creature", c.ID, "action", a.Kind)
			continue
		}
		switch a.Kind {
		case ActWalk:
			r.expandWalk(c, a)
		case ActSoulCast:
			if err := r.expandCast(w, c, a.Slot); err != nil {
				return err
			}
		}
	}
	clear(r.actions)
	r.events = append(r.events, r.pending...)
	r.pending = nil
	r.log.Debug("turn expanded", "turn", r.turn, "queued", len(r.queue))
	return nil
}

// expandWalk faces the creature along the walk and queues the step. A walk
// with no direction goes nowhere and leaves the facing alone.
func (r *Resolver) expandWalk(c *creature.Creature, a Action) {
	if a.Momentum.IsZero() {
		return
	}
	c.Momentum = a.Momentum
	r.Enqueue(Application{Caster: contextOf(c), Target: c.ID, Function: axiom.LinearDash(r.WalkDistance)})
}

// expandCast queues the cast's function on every occupant its form covers,
// then the caster's own discard. An empty or invalid slot casts nothing.
func (r *Resolver) expandCast(w *world.World, c *creature.Creature, slot int) error {
	if c.Souls == nil {
		return fmt.Errorf("%w: creature %d casts without a soul deck", world.ErrConfig, c.ID)
	}
	if slot < 0 || slot >= soul.HeldSlots {
		return nil
	}
	tok := c.Souls.Held[slot]
	if tok.IsEmpty() {
		return nil
	}
	ax := c.Axioms.For(tok.Category)
	ctx := contextOf(c)
	res := targeting.Resolve(ax.Form, c.Pos, c.Momentum, w.Grid)
	for _, target := range res.Occupants {
		r.Enqueue(Application{Caster: ctx, Target: target, Function: ax.Function})
	}
	r.Enqueue(Application{Caster: ctx, Target: c.ID, Function: axiom.DiscardSoul(tok.ID, slot)})
	r.fire(c, effect.CastSoul)
	r.log.Debug("soul cast",
		"caster", c.ID, "slot", slot, "category", tok.Category,
		"form", ax.Form.Kind, "function", ax.Function.Kind, "targets", len(res.Occupants))
	return nil
}

// dispense runs one pass: every queued application, in order. Anything they
// enqueue waits for the next pass.
func (r *Resolver) dispense(w *world.World) error {
	r.pass++
	if r.pass > r.MaxPasses {
		dropped := len(r.queue)
		r.abandon()
		return fmt.Errorf("turn %d pass %d, %d applications dropped: %w", r.turn, r.pass, dropped, ErrRunaway)
	}
	current := r.queue
	r.queue = nil
	r.log.Debug("pass", "turn", r.turn, "pass", r.pass, "applications", len(current))

	for _, app := range current {
		h, ok := handlers[app.Function.Kind]
		if !ok {
			continue
		}
		if err := h(r, w, app); err != nil {
			if errors.Is(err, world.ErrConfig) {
				return err
			}
			r.log.Warn("application dropped",
				"function", app.Function.Kind, "target", app.Target, "caster", app.Caster.ID, "error", err)
		}
	}
	r.events = append(r.events, r.pending...)
	r.pending = nil
	return nil
}

// abandon drops the rest of the turn. Events already published stay.
func (r *Resolver) abandon() {
	r.queue = nil
	r.pending = nil
	clear(r.actions)
	r.state = AwaitingInput
}

func (r *Resolver) emit(e Event) {
	e.Turn, e.Pass = r.turn, r.pass
	r.pending = append(r.pending, e)
}

// fire applies trigger t to c's ledger and reports the stacks that moved.
// A creature whose Charm runs out returns to its own faction.
func (r *Resolver) fire(c *creature.Creature, t effect.Trigger) {
	if c.Effects == nil {
		return
	}
	for _, ch := range c.Effects.Fire(t) {
		r.emit(Event{Kind: EventEffectChanged, Creature: c.ID, Effect: ch.Kind, Stacks: ch.After})
		if ch.Kind == effect.KindCharm && ch.After == 0 && c.Uncharm() {
			r.emit(Event{Kind: EventCharmEnded, Creature: c.ID})
		}
	}
}
