package render

import (
	"fmt"
	"strings"

	"soulcaster/internal/creature"
	"soulcaster/internal/turn"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Status is the non-world state the HUD shows.
type Status struct {
	Turn     int
	State    turn.State
	Messages []string
}

// DrawHUD renders the player's hand, effects and the message log at the
// bottom of the screen, then shows the frame.
func (r *Renderer) DrawHUD(player *creature.Creature, st Status) {
	_, screenH := r.screen.Size()
	hudY := screenH - HUDRows

	r.drawHLine(hudY, tcell.ColorGray)

	head := fmt.Sprintf("Turn %d  [%s]", st.Turn, st.State)
	if player != nil {
		head += fmt.Sprintf("  (%d,%d) facing (%d,%d)  %s",
			player.Pos.X, player.Pos.Y, player.Momentum.X, player.Momentum.Y, player.Faction)
	}
	r.drawText(0, hudY+1, head, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	if player != nil {
		r.drawHand(hudY+2, player)
		r.drawEffects(hudY+3, player)
	}

	// Message log (last 4 messages).
	start := max(len(st.Messages)-4, 0)
	for i, msg := range st.Messages[start:] {
		r.drawText(0, hudY+4+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	r.screen.Show()
}

// drawHand lists the held souls as "1:feral→dash" cells.
func (r *Renderer) drawHand(y int, c *creature.Creature) {
	x := 0
	if c.Souls == nil {
		return
	}
	for slot, tok := range c.Souls.Held {
		style := tcell.StyleDefault.Foreground(tcell.ColorDimGray)
		label := fmt.Sprintf("%d:---", slot+1)
		if !tok.IsEmpty() {
			style = tcell.StyleDefault.Foreground(CategoryColors[tok.Category])
			label = fmt.Sprintf("%d:%s→%s", slot+1, tok.Category, c.Axioms.For(tok.Category).Function.Kind)
		}
		x = r.drawText(x, y, label, style) + 2
	}
	r.drawText(x, y, fmt.Sprintf("deck %d/%d", c.Souls.PileSize(), c.Souls.DiscardSize()),
		tcell.StyleDefault.Foreground(tcell.ColorGray))
}

func (r *Renderer) drawEffects(y int, c *creature.Creature) {
	if c.Effects == nil || len(c.Effects.Active) == 0 {
		return
	}
	x := 0
	for _, e := range c.Effects.Active {
		name := e.Kind.String()
		label := fmt.Sprintf("%s%s %d", strings.ToUpper(name[:1]), name[1:], e.Stacks)
		x = r.drawText(x, y, label, tcell.StyleDefault.Foreground(effectColor(e.Kind))) + 2
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := range w {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text from column x and returns the column after it.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
	return col
}
