package targeting

import "soulcaster/internal/grid"

// Line rasterizes the segment from a to b with Bresenham's algorithm.
// Both endpoints are included, starting at a.
func Line(a, b grid.Point) []grid.Point {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy

	pts := make([]grid.Point, 0, max(dx, -dy)+1)
	x, y := a.X, a.Y
	for {
		pts = append(pts, grid.Point{X: x, Y: y})
		if x == b.X && y == b.Y {
			return pts
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// CircleOutline returns the 8-way symmetric midpoint circle of radius r.
func CircleOutline(c grid.Point, r int) []grid.Point {
	var set pointSet
	midpoint(r, func(x, y int) {
		set.add(
			grid.Point{X: c.X + x, Y: c.Y + y}, grid.Point{X: c.X - x, Y: c.Y + y},
			grid.Point{X: c.X + x, Y: c.Y - y}, grid.Point{X: c.X - x, Y: c.Y - y},
			grid.Point{X: c.X + y, Y: c.Y + x}, grid.Point{X: c.X - y, Y: c.Y + x},
			grid.Point{X: c.X + y, Y: c.Y - x}, grid.Point{X: c.X - y, Y: c.Y - x},
		)
	})
	return set.pts
}

// FilledDisk sweeps the midpoint circle of radius r and, for every step,
// paints the four horizontal spans mirrored across both axes. The result is
// the scanline approximation of a disk, not an exact one.
func FilledDisk(c grid.Point, r int) []grid.Point {
	var set pointSet
	span := func(row, half int) {
		for i := -half; i <= half; i++ {
			set.add(grid.Point{X: c.X + i, Y: row})
		}
	}
	midpoint(r, func(x, y int) {
		span(c.Y+y, x)
		span(c.Y-y, x)
		span(c.Y+x, y)
		span(c.Y-x, y)
	})
	return set.pts
}

// midpoint walks one octant of the midpoint circle algorithm, calling plot
// with each (x, y) offset from x=r, y=0 until y passes x.
func midpoint(r int, plot func(x, y int)) {
	if r < 0 {
		return
	}
	x, y := r, 0
	d := 1 - r
	for x >= y {
		plot(x, y)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// pointSet keeps the first-seen order of unique points.
type pointSet struct {
	seen map[grid.Point]bool
	pts  []grid.Point
}

func (s *pointSet) add(pts ...grid.Point) {
	if s.seen == nil {
		s.seen = make(map[grid.Point]bool)
	}
	for _, p := range pts {
		if !s.seen[p] {
			s.seen[p] = true
			s.pts = append(s.pts, p)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
