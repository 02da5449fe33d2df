package game

import (
	"io"
	"log/slog"
	"testing"

	"soulcaster/internal/config"
	"soulcaster/internal/creature"
	"soulcaster/internal/effect"
	"soulcaster/internal/grid"
	"soulcaster/internal/soul"
	"soulcaster/internal/turn"
	"soulcaster/internal/world"

	"github.com/gdamore/tcell/v2"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(100, 40)
	t.Cleanup(s.Fini)

	tun := config.Default()
	tun.Seed = 42
	tun.Vaults.Count = 0
	g, err := New(s, tun, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestPlayTurnWalks(t *testing.T) {
	g := newTestGame(t)
	p, _ := g.world.Player()
	start := p.Pos

	if err := g.playTurn(turn.Walk(1, 0)); err != nil {
		t.Fatalf("playTurn: %v", err)
	}
	if want := start.Add(grid.Point{X: 1, Y: 0}); p.Pos != want {
		t.Errorf("player at %v; want %v", p.Pos, want)
	}
	if g.resolver.State() != turn.AwaitingInput {
		t.Errorf("state = %v; want awaiting-input", g.resolver.State())
	}
	if err := g.world.Check(); err != nil {
		t.Error(err)
	}
}

func TestPlayTurnCastKeepsSouls(t *testing.T) {
	g := newTestGame(t)
	p, _ := g.world.Player()
	before := p.Souls.Count()
	for range 6 {
		if err := g.playTurn(turn.SoulCast(0)); err != nil {
			t.Fatalf("playTurn: %v", err)
		}
	}
	// No default creature stands next to the player, so nothing is stolen.
	if got := p.Souls.Count(); got != before {
		t.Errorf("player holds %d souls; want %d", got, before)
	}
	if g.resolver.Turn() != 6 {
		t.Errorf("turn = %d; want 6", g.resolver.Turn())
	}
}

func TestRunQuits(t *testing.T) {
	g := newTestGame(t)
	s := g.screen.(tcell.SimulationScreen)
	s.InjectKey(tcell.KeyRune, 'l', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	if err := g.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if g.resolver.Turn() != 1 {
		t.Errorf("turn = %d; want 1", g.resolver.Turn())
	}
}

func TestDescribe(t *testing.T) {
	w := world.New(5, 5)
	p := creature.New(creature.SpeciesTerminal, grid.Point{X: 0, Y: 0})
	p.Player = true
	pid, _ := w.Spawn(p)
	s := creature.New(creature.SpeciesShrike, grid.Point{X: 1, Y: 0})
	sid, _ := w.Spawn(s)
	tok := soul.Token{ID: 9, Category: soul.Feral}

	tests := []struct {
		name string
		ev   turn.Event
		want string
	}{
		{"message", turn.Event{Kind: turn.EventMessage, Text: "hi"}, "hi"},
		{"stolen", turn.Event{Kind: turn.EventSoulStolen, Creature: sid, Other: pid, Drawn: tok}, "You steal a feral soul from the Shrike."},
		{"charmed", turn.Event{Kind: turn.EventCharmed, Creature: sid, Other: pid}, "You charm the Shrike."},
		{"own effect", turn.Event{Kind: turn.EventEffectChanged, Creature: pid, Effect: effect.KindGrace, Stacks: 2}, "Your grace is now 2."},
		{"other effect", turn.Event{Kind: turn.EventEffectChanged, Creature: sid, Effect: effect.KindGrace, Stacks: 2}, ""},
		{"own draw", turn.Event{Kind: turn.EventSoulDrawn, Creature: pid, Slot: 1, Drawn: tok}, "You draw a feral soul into slot 2."},
		{"moved", turn.Event{Kind: turn.EventMoved, Creature: pid}, ""},
		{"charm ends", turn.Event{Kind: turn.EventCharmEnded, Creature: sid}, "The Shrike shakes off the charm."},
		{"own charm ends", turn.Event{Kind: turn.EventCharmEnded, Creature: pid}, "You shake off the charm."},
		{"stolen from you", turn.Event{Kind: turn.EventSoulStolen, Creature: pid, Other: sid, Drawn: tok}, "The Shrike steals a feral soul from you."},
		{"gone", turn.Event{Kind: turn.EventCharmed, Creature: 99, Other: sid}, "The Shrike charms something."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := describe(w, pid, tt.ev); got != tt.want {
				t.Errorf("describe = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestPlayTurnSurvivesRunaway(t *testing.T) {
	g := newTestGame(t)
	p, _ := g.world.Player()
	g.resolver.MaxPasses = 1

	if err := g.playTurn(turn.Walk(1, 0)); err != nil {
		t.Fatalf("playTurn: %v", err)
	}
	if g.resolver.State() != turn.AwaitingInput {
		t.Fatalf("state = %v; want awaiting-input", g.resolver.State())
	}
	msgs := g.Messages()
	if len(msgs) == 0 || msgs[len(msgs)-1] != "The world shudders and goes still." {
		t.Errorf("messages = %q", msgs)
	}

	g.resolver.MaxPasses = turn.DefaultMaxPasses
	start := p.Pos
	if err := g.playTurn(turn.Walk(1, 0)); err != nil {
		t.Fatalf("playTurn after runaway: %v", err)
	}
	if want := start.Add(grid.Point{X: 1, Y: 0}); p.Pos != want {
		t.Errorf("player at %v; want %v", p.Pos, want)
	}
}
