package core

// Point is a grid coordinate inside the arena
// X is a column index; Y is a double-resolution row index, two logical rows per terminal row
type Point struct {
	X, Y uint8
}

// NewPoint creates a point from column and half-row
func NewPoint(x, y uint8) Point {
	return Point{X: x, Y: y}
}

// Step returns the point one unit in direction d without arena wrapping
// Coordinates are signed to keep off-grid neighbours comparable
func (p Point) Step(d Direction) (x, y int) {
	dx, dy := d.Coords()
	return int(p.X) + dx, int(p.Y) + dy
}

// Wrapped returns the neighbour of p in direction d on a torus of the given logical bounds
// Underflow re-enters at bound-1, overflow at 0
func (p Point) Wrapped(d Direction, width, height int) Point {
	x, y := p.Step(d)
	return Point{X: wrapAxis(x, width), Y: wrapAxis(y, height)}
}

// IsTop reports whether p is the upper half of its terminal cell
func (p Point) IsTop() bool {
	return p.Y%2 == 0
}

// Sibling returns the other half-cell sharing p's terminal cell
func (p Point) Sibling() Point {
	if p.IsTop() {
		return Point{X: p.X, Y: p.Y + 1}
	}
	return Point{X: p.X, Y: p.Y - 1}
}

// wrapAxis folds one coordinate back into [0, bound)
func wrapAxis(v, bound int) uint8 {
	if bound <= 0 {
		return 0
	}
	switch {
	case v < 0:
		return uint8(bound - 1)
	case v >= bound:
		return 0
	}
	return uint8(v)
}

// ColoredPoint is a half-cell awaiting its sibling during frame composition
type ColoredPoint struct {
	Point
	Color uint8
}
