package world

// DefaultSightRadius is the sight radius used when none is configured
const DefaultSightRadius = 8

// Occluder answers whether a cell blocks line of sight
type Occluder interface {
	HasWall(c Cell) bool
}

// Visibility tracks every cell ever revealed to an observer. The revealed set
// only grows. It is not safe for concurrent use; callers serialise Reveal.
type Visibility struct {
	walls    Occluder
	radius   int
	revealed *CellSet
}

// NewVisibility creates a visibility tracker over the given occluder
func NewVisibility(walls Occluder, radius int) *Visibility {
	if radius < 0 {
		radius = 0
	}
	return &Visibility{
		walls:    walls,
		radius:   radius,
		revealed: NewCellSet(),
	}
}

// Radius returns the sight radius
func (v *Visibility) Radius() int {
	return v.radius
}

// Reset forgets every revealed cell. Used when a new level is built.
func (v *Visibility) Reset() {
	v.revealed = NewCellSet()
}

// IsRevealed reports whether the cell has ever been revealed
func (v *Visibility) IsRevealed(c Cell) bool {
	return v.revealed.Has(c)
}

// RevealedCount returns the size of the revealed set
func (v *Visibility) RevealedCount() int {
	return v.revealed.Len()
}

// Revealed returns a snapshot of the revealed set
func (v *Visibility) Revealed() *CellSet {
	return v.revealed.Clone()
}

// Reveal computes the cells newly visible from the observer cell, adds them to
// the revealed set and returns them. Cells inside the Euclidean sight disk that
// were revealed before are not tested again.
func (v *Visibility) Reveal(observer Cell) []Cell {
	var fresh []Cell
	r := v.radius
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			target := Cell{X: observer.X + dx, Y: observer.Y + dy}
			if v.revealed.Has(target) {
				continue
			}
			if !HasLineOfSight(v.walls, observer, target) {
				continue
			}
			v.revealed.Add(target)
			fresh = append(fresh, target)
		}
	}
	return fresh
}

// HasLineOfSight walks a Bresenham line from start to end and reports whether
// no intermediate cell is a wall. The endpoints are never tested.
func HasLineOfSight(walls Occluder, start, end Cell) bool {
	x0, y0 := start.X, start.Y
	x1, y1 := end.X, end.Y

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	for {
		cur := Cell{X: x0, Y: y0}
		if cur != start && cur != end && walls != nil && walls.HasWall(cur) {
			return false
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
