// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import (
	"fmt"
	"math"
)

// Cell is an integer grid coordinate. X grows east and Y grows north.
// Cells are plain values and are used directly as set and map keys.
type Cell struct {
	X int
	Y int
}

// C is shorthand for Cell{X: x, Y: y}
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// Add returns the cell offset by o
func (c Cell) Add(o Cell) Cell {
	return Cell{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the offset from o to c
func (c Cell) Sub(o Cell) Cell {
	return Cell{X: c.X - o.X, Y: c.Y - o.Y}
}

// String returns "x,y"
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Distance returns the Euclidean distance between two cells
func (c Cell) Distance(o Cell) float64 {
	dx := float64(c.X - o.X)
	dy := float64(c.Y - o.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Neighbors8 are the eight unit offsets around a cell: the four cardinal
// directions followed by the four diagonals.
var Neighbors8 = []Cell{
	{0, 1}, {0, -1}, {-1, 0}, {1, 0},
	{1, 1}, {1, -1}, {-1, -1}, {-1, 1},
}

// GetNeighbors returns the eight cells surrounding c
func (c Cell) GetNeighbors() []Cell {
	neighbors := make([]Cell, 0, len(Neighbors8))
	for _, off := range Neighbors8 {
		neighbors = append(neighbors, c.Add(off))
	}
	return neighbors
}

// GetNeighbor returns the adjacent cell in the given cardinal direction
func (c Cell) GetNeighbor(dir Direction) Cell {
	dx, dy := dir.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}
