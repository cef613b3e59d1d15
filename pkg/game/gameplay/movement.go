package gameplay

import (
	"gallerycrawl/pkg/engine/world"
)

// CanEnter checks if the observer can stand on a cell
func CanEnter(floor *world.CellSet, c world.Cell) bool {
	return floor.Has(c)
}

// Move steps the observer one cell in dir when the target is floor, and
// returns whether it moved plus the cells revealed by the move. Before the
// first update there is no observer to move.
func Move(t *FogTracker, floor *world.CellSet, dir world.Direction) (bool, []world.Cell) {
	from, ok := t.Observer()
	if !ok || !dir.IsValid() {
		return false, nil
	}

	to := from.GetNeighbor(dir)
	if !CanEnter(floor, to) {
		return false, nil
	}
	return true, t.UpdateCell(to)
}

// Walk applies a route of moves, stopping at the first blocked step. It
// returns the number of steps taken and every cell revealed on the way.
func Walk(t *FogTracker, floor *world.CellSet, route []world.Direction) (int, []world.Cell) {
	var revealed []world.Cell
	for i, dir := range route {
		moved, fresh := Move(t, floor, dir)
		if !moved {
			return i, revealed
		}
		revealed = append(revealed, fresh...)
	}
	return len(route), revealed
}

// FollowTour feeds every tour position into the tracker and returns the
// number of cells revealed along the way
func FollowTour(t *FogTracker, positions []Position) int {
	total := 0
	for _, p := range positions {
		total += len(t.Update(p))
	}
	return total
}
