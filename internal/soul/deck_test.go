package soul

import (
	"errors"
	"math/rand"
	"testing"
)

func newRand() *rand.Rand { return rand.New(rand.NewSource(1)) }

func TestAxiomIndex(t *testing.T) {
	cases := []struct {
		c    Category
		want int
	}{
		{Saintly, 0}, {Ordered, 1}, {Feral, 2}, {Vile, 3}, {Serene, 0},
	}
	for _, c := range cases {
		if got := AxiomIndex(c.c); got != c.want {
			t.Errorf("AxiomIndex(%v) = %d; want %d", c.c, got, c.want)
		}
	}
}

func TestDiscardAndDrawOnlyNonEmptyCategory(t *testing.T) {
	// held = [A(Feral)], pile[Ordered] = [B], everything else empty.
	a := Token{ID: 1, Category: Feral}
	b := Token{ID: 2, Category: Ordered}
	d := NewDeck(b)
	d.Held[0] = a

	draw, err := d.DiscardAndDraw(0, a.ID, newRand())
	if err != nil {
		t.Fatalf("DiscardAndDraw: %v", err)
	}
	if d.Held[0] != b {
		t.Errorf("held[0] = %+v; want %+v", d.Held[0], b)
	}
	if len(d.Discard[Feral]) != 1 || d.Discard[Feral][0] != a {
		t.Errorf("discard[Feral] = %+v; want [A]", d.Discard[Feral])
	}
	if draw.Reshuffled {
		t.Error("no reshuffle expected")
	}
	if draw.Discarded != a || draw.Drawn != b {
		t.Errorf("draw = %+v", draw)
	}
}

func TestDiscardAndDrawReshufflesWhenPilesEmpty(t *testing.T) {
	a := Token{ID: 1, Category: Vile}
	x := Token{ID: 2, Category: Saintly}
	y := Token{ID: 3, Category: Serene}
	d := NewDeck()
	d.Held[2] = a
	d.Discard[Saintly] = []Token{x}
	d.Discard[Serene] = []Token{y}

	draw, err := d.DiscardAndDraw(2, a.ID, newRand())
	if err != nil {
		t.Fatalf("DiscardAndDraw: %v", err)
	}
	if !draw.Reshuffled {
		t.Error("expected a reshuffle")
	}
	if d.DiscardSize() != 0 {
		t.Errorf("discard should be empty after reshuffle, has %d", d.DiscardSize())
	}
	if d.Held[2].IsEmpty() {
		t.Fatal("slot should have been refilled")
	}
	if d.PileSize() != 2 {
		t.Errorf("pile size = %d; want 2 (three reshuffled, one drawn)", d.PileSize())
	}
	if d.Count() != 3 {
		t.Errorf("count = %d; want 3", d.Count())
	}
}

func TestDiscardAndDrawRejectsWrongToken(t *testing.T) {
	d := NewDeck(Token{ID: 5, Category: Feral})
	d.Held[0] = Token{ID: 1, Category: Feral}
	if _, err := d.DiscardAndDraw(0, 9, newRand()); !errors.Is(err, ErrNotHeld) {
		t.Fatalf("expected ErrNotHeld, got %v", err)
	}
	if _, err := d.DiscardAndDraw(1, 1, newRand()); !errors.Is(err, ErrNotHeld) {
		t.Fatalf("empty slot: expected ErrNotHeld, got %v", err)
	}
	if _, err := d.DiscardAndDraw(7, 1, newRand()); !errors.Is(err, ErrBadSlot) {
		t.Fatalf("expected ErrBadSlot, got %v", err)
	}
	if d.Held[0].ID != 1 || d.Count() != 2 {
		t.Errorf("deck changed after rejected discard: %+v", d)
	}
}

func TestFillOnEmptyDeckIsExhausted(t *testing.T) {
	d := NewDeck()
	if err := d.Fill(newRand()); !errors.Is(err, ErrDeckExhausted) {
		t.Fatalf("expected ErrDeckExhausted, got %v", err)
	}
}

func TestCategorySelectionIsUniformOverCategories(t *testing.T) {
	// One Feral token against many Ordered ones: selection by category means
	// Feral should still be drawn about half the time.
	rng := newRand()
	feral := 0
	const trials = 2000
	for range trials {
		d := NewDeck(Token{ID: 100, Category: Feral})
		for i := range 20 {
			d.Deal(Token{ID: TokenID(i + 1), Category: Ordered})
		}
		d.Held[0] = Token{ID: 999, Category: Vile}
		draw, err := d.DiscardAndDraw(0, 999, rng)
		if err != nil {
			t.Fatal(err)
		}
		if draw.Drawn.Category == Feral {
			feral++
		}
	}
	if feral < trials*4/10 || feral > trials*6/10 {
		t.Errorf("feral drawn %d/%d times; want roughly half", feral, trials)
	}
}

func TestSoulConservation(t *testing.T) {
	var m Minter
	var tokens []Token
	for i := range 12 {
		tokens = append(tokens, m.Mint(Category(i%NumCategories)))
	}
	rng := newRand()
	d := NewDeck(tokens...)
	if err := d.Fill(rng); err != nil {
		t.Fatal(err)
	}
	total := d.Count()
	if total != 12 {
		t.Fatalf("count = %d; want 12", total)
	}
	for i := range 200 {
		slot := i % HeldSlots
		if _, err := d.DiscardAndDraw(slot, d.Held[slot].ID, rng); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if d.Count() != total {
			t.Fatalf("step %d: count %d; want %d", i, d.Count(), total)
		}
	}
}

func TestTakeAndReceive(t *testing.T) {
	rng := newRand()
	victim := NewDeck(Token{ID: 2, Category: Ordered})
	victim.Held[1] = Token{ID: 1, Category: Feral}
	thief := NewDeck()

	slot, ok := victim.FirstHeld()
	if !ok || slot != 1 {
		t.Fatalf("FirstHeld = %d,%v; want 1,true", slot, ok)
	}
	tok, err := victim.Take(slot, rng)
	if err != nil {
		t.Fatalf("Take: %v", err)
	}
	thief.Receive(tok)

	if tok.ID != 1 {
		t.Errorf("took %+v; want token 1", tok)
	}
	if victim.Held[1].ID != 2 {
		t.Errorf("victim slot should refill with token 2, got %+v", victim.Held[1])
	}
	if victim.Count() != 1 || thief.Count() != 1 {
		t.Errorf("counts victim=%d thief=%d; want 1 and 1", victim.Count(), thief.Count())
	}
	if len(thief.Discard[Feral]) != 1 {
		t.Errorf("stolen token should land in thief's discard")
	}
}

func TestMinterUnique(t *testing.T) {
	var m Minter
	seen := map[TokenID]bool{}
	for range 50 {
		tok := m.Mint(Serene)
		if tok.ID == NoToken || seen[tok.ID] {
			t.Fatalf("duplicate or zero id %d", tok.ID)
		}
		seen[tok.ID] = true
	}
}

func TestFillLeavesSlotsEmptyWhenShort(t *testing.T) {
	d := NewDeck(Token{ID: 1, Category: Serene}, Token{ID: 2, Category: Vile})
	if err := d.Fill(newRand()); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	held := 0
	for _, tok := range d.Held {
		if !tok.IsEmpty() {
			held++
		}
	}
	if held != 2 || d.Count() != 2 {
		t.Fatalf("held %d, count %d; want 2 and 2", held, d.Count())
	}
}
