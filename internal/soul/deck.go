package soul

import (
	"errors"
	"fmt"
	"math/rand"
)

// HeldSlots is the number of souls a creature holds ready to cast.
const HeldSlots = 4

var (
	// ErrDeckExhausted means a deck has no tokens left in any pile or discard.
	// It is a setup mistake, never a gameplay outcome.
	ErrDeckExhausted = errors.New("soul deck exhausted")
	// ErrNotHeld means the slot no longer holds the token being discarded.
	ErrNotHeld = errors.New("token not held in slot")
	// ErrBadSlot means the slot index is outside [0, HeldSlots).
	ErrBadSlot = errors.New("held slot out of range")
)

// Deck is a creature's soul store. Every token is in exactly one of Held,
// Pile or Discard.
type Deck struct {
	Held    [HeldSlots]Token
	Pile    [NumCategories][]Token
	Discard [NumCategories][]Token
}

// Draw describes one discard-and-draw so callers can report it.
type Draw struct {
	Slot       int
	Discarded  Token
	Drawn      Token
	Reshuffled bool
}

// NewDeck returns a deck with tokens dealt into their category piles.
func NewDeck(tokens ...Token) *Deck {
	d := &Deck{}
	d.Deal(tokens...)
	return d
}

// Deal adds tokens to the piles of their categories.
func (d *Deck) Deal(tokens ...Token) {
	for _, t := range tokens {
		d.Pile[t.Category] = append(d.Pile[t.Category], t)
	}
}

// Count returns the number of tokens in the deck, wherever they are.
func (d *Deck) Count() int {
	n := 0
	for _, t := range d.Held {
		if !t.IsEmpty() {
			n++
		}
	}
	for c := range NumCategories {
		n += len(d.Pile[c]) + len(d.Discard[c])
	}
	return n
}

// PileSize returns how many tokens remain undrawn.
func (d *Deck) PileSize() int {
	n := 0
	for c := range NumCategories {
		n += len(d.Pile[c])
	}
	return n
}

// DiscardSize returns how many tokens wait in the discard piles.
func (d *Deck) DiscardSize() int {
	n := 0
	for c := range NumCategories {
		n += len(d.Discard[c])
	}
	return n
}

// Reshuffle moves every discarded token back into its category pile.
func (d *Deck) Reshuffle() {
	for c := range NumCategories {
		d.Pile[c] = append(d.Pile[c], d.Discard[c]...)
		d.Discard[c] = nil
	}
}

// Fill draws into every empty held slot. A deck with fewer tokens than slots
// leaves the rest empty; a deck with no tokens at all is exhausted.
func (d *Deck) Fill(rng *rand.Rand) error {
	if d.Count() == 0 {
		return ErrDeckExhausted
	}
	for slot := range HeldSlots {
		if !d.Held[slot].IsEmpty() {
			continue
		}
		if d.PileSize()+d.DiscardSize() == 0 {
			return nil
		}
		if _, _, err := d.draw(slot, rng); err != nil {
			return err
		}
	}
	return nil
}

// DiscardAndDraw moves the token in slot to its discard pile, then draws a
// replacement from a uniformly chosen non-empty pile category, reshuffling
// first if every pile is empty.
func (d *Deck) DiscardAndDraw(slot int, id TokenID, rng *rand.Rand) (Draw, error) {
	if slot < 0 || slot >= HeldSlots {
		return Draw{}, fmt.Errorf("discard slot %d: %w", slot, ErrBadSlot)
	}
	held := d.Held[slot]
	if held.IsEmpty() || held.ID != id {
		return Draw{}, fmt.Errorf("discard token %d from slot %d: %w", id, slot, ErrNotHeld)
	}
	d.Held[slot] = Token{}
	d.Discard[held.Category] = append(d.Discard[held.Category], held)

	drawn, reshuffled, err := d.draw(slot, rng)
	if err != nil {
		return Draw{}, err
	}
	return Draw{Slot: slot, Discarded: held, Drawn: drawn, Reshuffled: reshuffled}, nil
}

// Take removes the token in slot and refills the slot, without discarding.
// The removed token leaves the deck.
func (d *Deck) Take(slot int, rng *rand.Rand) (Token, error) {
	if slot < 0 || slot >= HeldSlots {
		return Token{}, fmt.Errorf("take slot %d: %w", slot, ErrBadSlot)
	}
	t := d.Held[slot]
	if t.IsEmpty() {
		return Token{}, fmt.Errorf("take slot %d: %w", slot, ErrNotHeld)
	}
	d.Held[slot] = Token{}
	if d.PileSize()+d.DiscardSize() == 0 {
		return t, nil
	}
	if _, _, err := d.draw(slot, rng); err != nil {
		return Token{}, err
	}
	return t, nil
}

// Receive places a token taken from another deck into its discard pile.
func (d *Deck) Receive(t Token) {
	d.Discard[t.Category] = append(d.Discard[t.Category], t)
}

// FirstHeld returns the lowest slot holding a token.
func (d *Deck) FirstHeld() (int, bool) {
	for slot, t := range d.Held {
		if !t.IsEmpty() {
			return slot, true
		}
	}
	return 0, false
}

func (d *Deck) draw(slot int, rng *rand.Rand) (Token, bool, error) {
	reshuffled := false
	cats := d.nonEmptyPiles()
	if len(cats) == 0 {
		d.Reshuffle()
		reshuffled = true
		cats = d.nonEmptyPiles()
	}
	if len(cats) == 0 {
		return Token{}, reshuffled, ErrDeckExhausted
	}
	c := cats[0]
	if len(cats) > 1 {
		c = cats[rng.Intn(len(cats))]
	}
	pile := d.Pile[c]
	t := pile[len(pile)-1]
	d.Pile[c] = pile[:len(pile)-1]
	d.Held[slot] = t
	return t, reshuffled, nil
}

func (d *Deck) nonEmptyPiles() []Category {
	var cats []Category
	for c := range NumCategories {
		if len(d.Pile[c]) > 0 {
			cats = append(cats, Category(c))
		}
	}
	return cats
}
