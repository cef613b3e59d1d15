package world

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// CellSet is a mutable set of cells. The zero value is not usable; create one
// with NewCellSet.
type CellSet struct {
	cells mapset.Set[Cell]
}

// NewCellSet creates a set holding the given cells
func NewCellSet(cells ...Cell) *CellSet {
	s := &CellSet{cells: mapset.New[Cell]()}
	for _, c := range cells {
		s.cells.Put(c)
	}
	return s
}

// Add inserts a cell
func (s *CellSet) Add(c Cell) {
	s.cells.Put(c)
}

// AddAll inserts every cell of other
func (s *CellSet) AddAll(other *CellSet) {
	if other == nil {
		return
	}
	other.cells.Each(func(c Cell) {
		s.cells.Put(c)
	})
}

// AddRect inserts every cell covered by r
func (s *CellSet) AddRect(r Rect) {
	r.ForEachCell(s.cells.Put)
}

// Remove deletes a cell if present
func (s *CellSet) Remove(c Cell) {
	s.cells.Remove(c)
}

// Has reports whether the cell is in the set. A nil set is empty.
func (s *CellSet) Has(c Cell) bool {
	if s == nil {
		return false
	}
	return s.cells.Has(c)
}

// HasWall lets a CellSet of wall cells act as an Occluder
func (s *CellSet) HasWall(c Cell) bool {
	return s.Has(c)
}

// Len returns the number of cells
func (s *CellSet) Len() int {
	if s == nil {
		return 0
	}
	return s.cells.Size()
}

// Each calls fn once per cell in unspecified order
func (s *CellSet) Each(fn func(c Cell)) {
	if s == nil {
		return
	}
	s.cells.Each(fn)
}

// Clone returns an independent copy
func (s *CellSet) Clone() *CellSet {
	out := NewCellSet()
	out.AddAll(s)
	return out
}

// Cells returns the cells sorted by X then Y, for stable output
func (s *CellSet) Cells() []Cell {
	out := make([]Cell, 0, s.Len())
	s.Each(func(c Cell) {
		out = append(out, c)
	})
	SortCells(out)
	return out
}

// Bounds returns the smallest rectangle covering every cell, and false for an empty set
func (s *CellSet) Bounds() (Rect, bool) {
	if s.Len() == 0 {
		return Rect{}, false
	}
	first := true
	var minX, minY, maxX, maxY int
	s.Each(func(c Cell) {
		if first {
			minX, maxX, minY, maxY = c.X, c.X, c.Y, c.Y
			first = false
			return
		}
		minX = min(minX, c.X)
		maxX = max(maxX, c.X)
		minY = min(minY, c.Y)
		maxY = max(maxY, c.Y)
	})
	return Rect{X: minX, Y: minY, W: maxX - minX + 1, H: maxY - minY + 1}, true
}

// Intersects reports whether the two sets share a cell
func (s *CellSet) Intersects(other *CellSet) bool {
	if s.Len() > other.Len() {
		s, other = other, s
	}
	found := false
	s.Each(func(c Cell) {
		if !found && other.Has(c) {
			found = true
		}
	})
	return found
}

// Equal reports whether both sets hold exactly the same cells
func (s *CellSet) Equal(other *CellSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	equal := true
	s.Each(func(c Cell) {
		if !other.Has(c) {
			equal = false
		}
	})
	return equal
}

// SortCells orders cells by X then Y in place
func SortCells(cells []Cell) {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].X != cells[j].X {
			return cells[i].X < cells[j].X
		}
		return cells[i].Y < cells[j].Y
	})
}
