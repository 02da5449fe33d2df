package grid

// Point is a cell coordinate. It doubles as a direction vector for momentum.
type Point struct {
	X, Y int
}

// Add returns p + o.
func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }

// Sub returns p - o.
func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y} }

// Scale returns p multiplied component-wise by k.
func (p Point) Scale(k int) Point { return Point{p.X * k, p.Y * k} }

// Neg returns -p.
func (p Point) Neg() Point { return Point{-p.X, -p.Y} }

// Perpendicular swaps the components and negates the new X, rotating a
// direction by 90 degrees. Perpendicular().Neg() is the other side.
func (p Point) Perpendicular() Point { return Point{-p.Y, p.X} }

// IsZero reports whether both components are zero.
func (p Point) IsZero() bool { return p.X == 0 && p.Y == 0 }

// Sign clamps each component to {-1, 0, 1}.
func (p Point) Sign() Point { return Point{sign(p.X), sign(p.Y)} }

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
