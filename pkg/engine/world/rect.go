package world

import "math"

// Rect is an axis-aligned integer rectangle covering [X, X+W) x [Y, Y+H).
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle from its minimum corner and size
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// MinX returns the smallest covered column
func (r Rect) MinX() int { return r.X }

// MinY returns the smallest covered row
func (r Rect) MinY() int { return r.Y }

// MaxX returns the first column past the right edge
func (r Rect) MaxX() int { return r.X + r.W }

// MaxY returns the first row past the top edge
func (r Rect) MaxY() int { return r.Y + r.H }

// Valid reports whether the rectangle has a positive area
func (r Rect) Valid() bool {
	return r.W > 0 && r.H > 0
}

// Area returns the number of cells covered
func (r Rect) Area() int {
	if !r.Valid() {
		return 0
	}
	return r.W * r.H
}

// Contains reports whether the cell lies inside the rectangle
func (r Rect) Contains(c Cell) bool {
	return c.X >= r.X && c.X < r.MaxX() && c.Y >= r.Y && c.Y < r.MaxY()
}

// Overlaps reports whether two rectangles share at least one cell
func (r Rect) Overlaps(o Rect) bool {
	return o.X < r.MaxX() && o.MaxX() > r.X && o.Y < r.MaxY() && o.MaxY() > r.Y
}

// Expand grows the rectangle by n cells on every side. Negative n shrinks it.
func (r Rect) Expand(n int) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, W: r.W + 2*n, H: r.H + 2*n}
}

// Center returns the continuous centre point of the rectangle
func (r Rect) Center() (float64, float64) {
	return float64(r.X) + float64(r.W)/2, float64(r.Y) + float64(r.H)/2
}

// CenterCell returns the centre rounded half-to-even to the nearest cell
func (r Rect) CenterCell() Cell {
	cx, cy := r.Center()
	return Cell{X: int(math.RoundToEven(cx)), Y: int(math.RoundToEven(cy))}
}

// ForEachCell calls fn for every covered cell, column by column
func (r Rect) ForEachCell(fn func(c Cell)) {
	for x := r.X; x < r.MaxX(); x++ {
		for y := r.Y; y < r.MaxY(); y++ {
			fn(Cell{X: x, Y: y})
		}
	}
}

// Touches reports whether any of the eight neighbours of c lies inside the rectangle
func (r Rect) Touches(c Cell) bool {
	for _, off := range Neighbors8 {
		if r.Contains(c.Add(off)) {
			return true
		}
	}
	return false
}
