package render

import "soulcaster/internal/grid"

// Camera translates between grid cells and screen coordinates.
// Cell X is multiplied by 2 because emoji occupy 2 terminal columns.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera centered on c.
func NewCamera(c grid.Point, viewW, viewH int) *Camera {
	cam := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	cam.Center(c)
	return cam
}

// Center repositions the camera so that cell c is in the middle.
func (c *Camera) Center(p grid.Point) {
	c.OffsetX = p.X - (c.ViewWidth/2)/2
	c.OffsetY = p.Y - c.ViewHeight/2
}

// ToScreen converts cell p to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) ToScreen(p grid.Point) (sx, sy int, visible bool) {
	sx = (p.X - c.OffsetX) * 2
	sy = p.Y - c.OffsetY
	visible = sx >= 0 && sx+1 < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ToCell converts screen (sx, sy) back to a grid cell.
func (c *Camera) ToCell(sx, sy int) grid.Point {
	return grid.Point{X: sx/2 + c.OffsetX, Y: sy + c.OffsetY}
}
