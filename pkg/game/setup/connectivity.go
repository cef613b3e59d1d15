package setup

import (
	"gallerycrawl/pkg/engine/world"
)

// ReachableFloor returns every floor cell reachable from start by BFS over
// orthogonal steps. The result is empty when start is not on the floor.
func ReachableFloor(floor *world.CellSet, start world.Cell) *world.CellSet {
	reachable := world.NewCellSet()
	if !floor.Has(start) {
		return reachable
	}

	queue := []world.Cell{start}
	reachable.Add(start)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range world.AllDirections() {
			n := current.GetNeighbor(dir)
			if floor.Has(n) && !reachable.Has(n) {
				reachable.Add(n)
				queue = append(queue, n)
			}
		}
	}

	return reachable
}

// UnreachableFloor returns the floor cells that cannot be walked to from start
func UnreachableFloor(floor *world.CellSet, start world.Cell) []world.Cell {
	reachable := ReachableFloor(floor, start)
	if reachable.Len() == floor.Len() {
		return nil
	}

	var out []world.Cell
	for _, c := range floor.Cells() {
		if !reachable.Has(c) {
			out = append(out, c)
		}
	}
	return out
}
