// Package core provides geometry, the cell buffer and runtime settings shared by
// the simulation and the terminal front end. It has no external dependencies so
// game logic stays pure and testable.
package core

// Rect is an axis-aligned box in world units. X grows to the right, Y grows down.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether the two boxes share a non-empty area.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Scale maps the rectangle from world units into cells, dividing each axis by the
// given number of world units per cell. Non-empty boxes keep at least one cell.
func (r Rect) Scale(unitsX, unitsY float64) Rect {
	x0 := floorDiv(r.X, unitsX)
	y0 := floorDiv(r.Y, unitsY)
	x1 := floorDiv(r.Right(), unitsX)
	y1 := floorDiv(r.Bottom(), unitsY)
	if r.W > 0 && x1 == x0 {
		x1 = x0 + 1
	}
	if r.H > 0 && y1 == y0 {
		y1 = y0 + 1
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func floorDiv(v int, units float64) int {
	if units <= 0 {
		return v
	}
	q := float64(v) / units
	i := int(q)
	if q < 0 && float64(i) != q {
		i--
	}
	return i
}
