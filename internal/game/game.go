package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"soulcaster/internal/config"
	"soulcaster/internal/creature"
	"soulcaster/internal/factory"
	"soulcaster/internal/render"
	"soulcaster/internal/turn"
	"soulcaster/internal/world"

	"github.com/gdamore/tcell/v2"
)

const maxMessages = 50

// Game is one player's session: a world, its resolver and the screen the
// player drives it from. The caller owns the screen and must Fini it.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	world    *world.World
	resolver *turn.Resolver
	log      *slog.Logger
	player   creature.ID
	messages []string

	// PassDelay pauses between resolver passes so chained moves animate.
	PassDelay time.Duration
}

// New builds a fresh world from t and binds it to screen.
func New(screen tcell.Screen, t config.Tuning, logger *slog.Logger) (*Game, error) {
	if logger == nil {
		logger = slog.Default()
	}
	seed := t.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	w, err := factory.NewWorld(t, rng)
	if err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}
	p, err := w.Player()
	if err != nil {
		return nil, err
	}

	r := turn.New(rng, logger)
	r.WalkDistance = t.WalkDistance
	r.MaxPasses = t.MaxPasses

	logger.Info("session started", "seed", seed, "width", t.Width, "height", t.Height, "creatures", w.Len())
	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		world:    w,
		resolver: r,
		log:      logger,
		player:   p.ID,
	}, nil
}

// World returns the simulation state.
func (g *Game) World() *world.World { return g.world }

// Messages returns the message log, oldest first.
func (g *Game) Messages() []string { return g.messages }

// Run is the main loop. It returns nil when the player quits and an error
// wrapping world.ErrConfig if the simulation hits a fatal setup mistake.
func (g *Game) Run() error {
	g.addMessage("hjklyubn or arrows to walk, 1-4 to cast a held soul, q to quit.")
	for {
		g.draw()

		switch ev := g.screen.PollEvent().(type) {
		case nil:
			// Screen finalized under us (SSH client gone).
			return nil
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventKey:
			cmd := keyToCommand(ev)
			if cmd == CmdQuit {
				return nil
			}
			a, ok := commandToAction(cmd)
			if !ok {
				continue
			}
			if err := g.playTurn(a); err != nil {
				return err
			}
		}
	}
}

// playTurn submits the player's action and resolves the turn one pass at a
// time, redrawing after each pass.
func (g *Game) playTurn(a turn.Action) error {
	if _, ok := g.world.Creature(g.player); !ok {
		g.addMessage("You are gone.")
		return nil
	}
	if err := g.resolver.Submit(map[creature.ID]turn.Action{g.player: a}); err != nil {
		return err
	}
	for g.resolver.State() != turn.AwaitingInput {
		before := g.resolver.State()
		if err := g.resolver.Step(g.world); err != nil {
			if errors.Is(err, turn.ErrRunaway) {
				// The resolver dropped the rest of the turn; play goes on.
				g.log.Warn("turn cut short", "turn", g.resolver.Turn(), "error", err)
				g.addMessage("The world shudders and goes still.")
				return nil
			}
			if errors.Is(err, world.ErrConfig) {
				g.log.Error("turn aborted", "turn", g.resolver.Turn(), "error", err)
			}
			return err
		}
		for _, ev := range g.resolver.DrainEvents() {
			if msg := describe(g.world, g.player, ev); msg != "" {
				g.addMessage(msg)
			}
		}
		if before == turn.DispensingFunctions && g.PassDelay > 0 {
			g.draw()
			time.Sleep(g.PassDelay)
		}
	}
	return nil
}

func (g *Game) draw() {
	p, _ := g.world.Creature(g.player)
	if p != nil {
		g.renderer.CenterOn(p.Pos)
	}
	g.renderer.DrawFrame(g.world)
	g.renderer.DrawHUD(p, render.Status{
		Turn:     g.resolver.Turn(),
		State:    g.resolver.State(),
		Messages: g.messages,
	})
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}
