package render

import (
	"sort"

	"soulcaster/assets"
	"soulcaster/internal/creature"
	"soulcaster/internal/grid"
	"soulcaster/internal/world"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUDRows is the number of screen rows reserved below the grid.
const HUDRows = 8

// Renderer draws the world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(grid.Point{}, w, max(h-HUDRows, 1)),
	}
}

// Resize recomputes the viewport after the terminal changes size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(h-HUDRows, 1)
}

// CenterOn recenters the camera on cell p.
func (r *Renderer) CenterOn(p grid.Point) { r.camera.Center(p) }

// ToScreen converts a grid cell to screen coordinates.
func (r *Renderer) ToScreen(p grid.Point) (sx, sy int, visible bool) {
	return r.camera.ToScreen(p)
}

// DrawFrame renders the grid and every creature. The HUD is drawn
// separately so callers can pass their own message log.
func (r *Renderer) DrawFrame(w *world.World) {
	r.screen.Clear()
	r.drawGrid(w.Grid)
	r.drawCreatures(w)
}

func (r *Renderer) drawGrid(g *grid.Grid) {
	floor := tcell.StyleDefault.Foreground(tcell.ColorDimGray).Background(tcell.ColorBlack)
	for _, p := range g.Points() {
		sx, sy, ok := r.camera.ToScreen(p)
		if !ok {
			continue
		}
		r.putGlyph(sx, sy, GlyphFloor, floor)
	}
	// Mark the edge so the arena bounds are visible on big terminals.
	edge := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for x := -1; x <= g.Width; x++ {
		r.putCell(grid.Point{X: x, Y: -1}, GlyphEdge, edge)
		r.putCell(grid.Point{X: x, Y: g.Height}, GlyphEdge, edge)
	}
	for y := range g.Height {
		r.putCell(grid.Point{X: -1, Y: y}, GlyphEdge, edge)
		r.putCell(grid.Point{X: g.Width, Y: y}, GlyphEdge, edge)
	}
}

// drawCreatures draws tangible creatures over intangible ones so a wisp
// sharing a cell never hides what is really there.
func (r *Renderer) drawCreatures(w *world.World) {
	cs := w.Creatures()
	sort.SliceStable(cs, func(i, j int) bool {
		return cs[i].Intangible && !cs[j].Intangible
	})
	for _, c := range cs {
		r.putCell(c.Pos, glyphOf(c), tcell.StyleDefault.Background(factionColor(c.Faction)))
	}
}

func glyphOf(c *creature.Creature) string {
	return assets.SpeciesFor(c.Species).Glyph
}

func (r *Renderer) putCell(p grid.Point, glyph string, style tcell.Style) {
	sx, sy, ok := r.camera.ToScreen(p)
	if !ok {
		return
	}
	r.putGlyph(sx, sy, glyph, style)
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) < 2 {
		// Narrow glyphs still own two columns per cell.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
