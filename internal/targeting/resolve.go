package targeting

import "soulcaster/internal/grid"

// Result holds the cells a Form covers and the occupants found in them.
// Occupants never outnumber Cells.
type Result struct {
	Cells     []grid.Point
	Occupants []grid.OccupantID
}

type shapeFunc func(f Form, pos, momentum grid.Point, g *grid.Grid) []grid.Point

// shapes is the dispatch table for every FormKind. New kinds are added here.
var shapes = map[FormKind]shapeFunc{
	FormEmpty: func(Form, grid.Point, grid.Point, *grid.Grid) []grid.Point { return nil },
	FormSelf: func(_ Form, pos, _ grid.Point, _ *grid.Grid) []grid.Point {
		return []grid.Point{pos}
	},
	FormMomentumBeam: beam,
	FormMomentumTail: func(_ Form, pos, m grid.Point, _ *grid.Grid) []grid.Point {
		return []grid.Point{pos.Sub(m)}
	},
	FormMomentumTouch: func(_ Form, pos, m grid.Point, _ *grid.Grid) []grid.Point {
		return []grid.Point{pos.Add(m)}
	},
	FormMomentumLateral: func(_ Form, pos, m grid.Point, _ *grid.Grid) []grid.Point {
		side := m.Perpendicular()
		return []grid.Point{pos.Add(side), pos.Sub(side)}
	},
	FormSmallBurst: func(f Form, pos, _ grid.Point, _ *grid.Grid) []grid.Point {
		return FilledDisk(pos, f.reach(DefaultSmallBurstRadius))
	},
	FormBigOuter: func(f Form, pos, _ grid.Point, _ *grid.Grid) []grid.Point {
		return CircleOutline(pos, f.reach(DefaultBigOuterRadius))
	},
	FormArtificial: func(f Form, _, _ grid.Point, _ *grid.Grid) []grid.Point {
		return f.Cells
	},
}

// Resolve converts form, cast from pos while facing momentum, into the
// in-bounds cells it covers and the occupants of those cells.
func Resolve(f Form, pos, momentum grid.Point, g *grid.Grid) Result {
	shape, ok := shapes[f.Kind]
	if !ok {
		return Result{}
	}
	var res Result
	for _, p := range shape(f, pos, momentum, g) {
		if !g.InBounds(p) {
			continue
		}
		res.Cells = append(res.Cells, p)
		if id, ok := g.At(p); ok {
			res.Occupants = append(res.Occupants, id)
		}
	}
	return res
}

// beam walks a straight line from pos along momentum. The caster's own cell
// is skipped and the beam stops before the first occupied or out-of-bounds
// cell.
func beam(f Form, pos, m grid.Point, g *grid.Grid) []grid.Point {
	if m.IsZero() {
		return nil
	}
	line := Line(pos, pos.Add(m.Scale(f.reach(DefaultBeamReach))))
	var out []grid.Point
	for _, p := range line[1:] {
		if !g.InBounds(p) || g.Occupied(p) {
			break
		}
		out = append(out, p)
	}
	return out
}
