package world

import "math"

// WorldToCell returns the cell containing a continuous world position.
// Cell (x, y) covers [x, x+1) x [y, y+1).
func WorldToCell(x, y float64) Cell {
	return Cell{X: int(math.Floor(x)), Y: int(math.Floor(y))}
}

// CellCenter returns the world position at the centre of a cell
func CellCenter(c Cell) (float64, float64) {
	return float64(c.X) + 0.5, float64(c.Y) + 0.5
}
