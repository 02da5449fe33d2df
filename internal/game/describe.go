package game

import (
	"fmt"
	"strings"

	"soulcaster/assets"
	"soulcaster/internal/creature"
	"soulcaster/internal/turn"
	"soulcaster/internal/world"
)

// describe turns a resolver event into a log line. Routine movement and
// other creatures' bookkeeping produce no line.
func describe(w *world.World, player creature.ID, ev turn.Event) string {
	switch ev.Kind {
	case turn.EventMessage:
		return ev.Text
	case turn.EventSoulStolen:
		return fmt.Sprintf("%s a %s soul from %s.",
			subject(w, player, ev.Other, "steal"), ev.Drawn.Category, object(w, player, ev.Creature))
	case turn.EventCharmed:
		return fmt.Sprintf("%s %s.", subject(w, player, ev.Other, "charm"), object(w, player, ev.Creature))
	case turn.EventCharmEnded:
		return fmt.Sprintf("%s off the charm.", subject(w, player, ev.Creature, "shake"))
	case turn.EventReshuffled:
		if ev.Creature == player {
			return "Your discarded souls return to the pile."
		}
	case turn.EventSoulDrawn:
		if ev.Creature == player && !ev.Drawn.IsEmpty() {
			return fmt.Sprintf("You draw a %s soul into slot %d.", ev.Drawn.Category, ev.Slot+1)
		}
	case turn.EventEffectChanged:
		if ev.Creature == player {
			return fmt.Sprintf("Your %s is now %d.", ev.Effect, ev.Stacks)
		}
	}
	return ""
}

// subject renders "You steal" or "The Shrike steals".
func subject(w *world.World, player, id creature.ID, verb string) string {
	if id == player {
		return "You " + verb
	}
	name := object(w, player, id)
	return strings.ToUpper(name[:1]) + name[1:] + " " + verb + "s"
}

func object(w *world.World, player, id creature.ID) string {
	if id == player {
		return "you"
	}
	if c, ok := w.Creature(id); ok {
		return "the " + assets.SpeciesFor(c.Species).Name
	}
	return "something"
}
