package generate

import (
	"math/rand"

	"soulcaster/internal/grid"
	"soulcaster/internal/targeting"
)

// Config drives vault generation for one arena.
type Config struct {
	Width, Height int
	MinLeafSize   int
	MaxLeafSize   int
	Padding       int // free cells kept between a vault and its leaf edge
	Count         int // upper bound on vaults placed
	Rand          *rand.Rand
}

// Rect is an inclusive cell rectangle.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Center returns the middle cell.
func (r Rect) Center() grid.Point {
	return grid.Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Contains reports whether p lies inside r, walls included.
func (r Rect) Contains(p grid.Point) bool {
	return p.X >= r.X1 && p.X <= r.X2 && p.Y >= r.Y1 && p.Y <= r.Y2
}

// Vault is a walled room with one doorway.
type Vault struct {
	Room  Rect
	Door  grid.Point
	Walls []grid.Point // the outline minus Door, clockwise from the top-left corner
}

// bspLeaf is a node in the BSP tree.
type bspLeaf struct {
	X, Y, W, H  int
	left, right *bspLeaf
}

// split divides the leaf into two children, returning false when leaf is too small.
func (l *bspLeaf) split(cfg *Config) bool {
	if l.left != nil || l.right != nil {
		return false
	}
	// Split across the long side once it is clearly longer.
	splitH := cfg.Rand.Intn(2) == 0
	if l.W > l.H && float64(l.W)/float64(l.H) >= 1.25 {
		splitH = false
	} else if l.H > l.W && float64(l.H)/float64(l.W) >= 1.25 {
		splitH = true
	}

	size := l.H
	if !splitH {
		size = l.W
	}
	lo, hi := cfg.MinLeafSize, size-cfg.MinLeafSize
	if lo >= hi {
		return false
	}
	at := lo + cfg.Rand.Intn(hi-lo+1)

	if splitH {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: l.W, H: at}
		l.right = &bspLeaf{X: l.X, Y: l.Y + at, W: l.W, H: l.H - at}
	} else {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: at, H: l.H}
		l.right = &bspLeaf{X: l.X + at, Y: l.Y, W: l.W - at, H: l.H}
	}
	return true
}

// leaves partitions the arena and returns the terminal leaves.
func leaves(cfg *Config) []*bspLeaf {
	out := []*bspLeaf{{W: cfg.Width, H: cfg.Height}}
	for splitAny := true; splitAny; {
		splitAny = false
		var next []*bspLeaf
		for _, leaf := range out {
			if leaf.W > cfg.MaxLeafSize || leaf.H > cfg.MaxLeafSize || cfg.Rand.Float64() > 0.25 {
				if leaf.split(cfg) {
					next = append(next, leaf.left, leaf.right)
					splitAny = true
					continue
				}
			}
			next = append(next, leaf)
		}
		out = next
	}
	return out
}

// room places a rectangle of at least 3x3 inside the leaf, or reports false.
func (l *bspLeaf) room(cfg *Config) (Rect, bool) {
	availW, availH := l.W-2*cfg.Padding, l.H-2*cfg.Padding
	if availW < 3 || availH < 3 {
		return Rect{}, false
	}
	rw := 3 + cfg.Rand.Intn(availW-2)
	rh := 3 + cfg.Rand.Intn(availH-2)
	rx := l.X + cfg.Padding + cfg.Rand.Intn(availW-rw+1)
	ry := l.Y + cfg.Padding + cfg.Rand.Intn(availH-rh+1)
	return Rect{X1: rx, Y1: ry, X2: rx + rw - 1, Y2: ry + rh - 1}, true
}

// Vaults partitions the arena with BSP and walls off up to cfg.Count of the
// resulting leaves.
func Vaults(cfg *Config) []Vault {
	if cfg.Count <= 0 || cfg.Width <= 0 || cfg.Height <= 0 {
		return nil
	}
	ls := leaves(cfg)
	cfg.Rand.Shuffle(len(ls), func(i, j int) { ls[i], ls[j] = ls[j], ls[i] })

	var out []Vault
	for _, l := range ls {
		if len(out) == cfg.Count {
			break
		}
		r, ok := l.room(cfg)
		if !ok {
			continue
		}
		out = append(out, wall(r, cfg.Rand))
	}
	return out
}

// wall traces the outline of r and knocks a door into a random side, away
// from the corners.
func wall(r Rect, rng *rand.Rand) Vault {
	corners := []grid.Point{
		{X: r.X1, Y: r.Y1}, {X: r.X2, Y: r.Y1}, {X: r.X2, Y: r.Y2}, {X: r.X1, Y: r.Y2},
	}
	side := rng.Intn(4)
	a, b := corners[side], corners[(side+1)%4]
	edge := targeting.Line(a, b)
	door := edge[1+rng.Intn(len(edge)-2)]

	v := Vault{Room: r, Door: door}
	for i := range corners {
		seg := targeting.Line(corners[i], corners[(i+1)%4])
		for _, p := range seg[:len(seg)-1] {
			if p != door {
				v.Walls = append(v.Walls, p)
			}
		}
	}
	return v
}
