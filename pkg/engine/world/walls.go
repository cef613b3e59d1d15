package world

// DeriveWalls returns every cell that is an 8-neighbour of a floor cell without
// being a floor cell itself. The input is not modified.
func DeriveWalls(floor *CellSet) *CellSet {
	walls := NewCellSet()
	floor.Each(func(c Cell) {
		for _, off := range Neighbors8 {
			n := c.Add(off)
			if !floor.Has(n) {
				walls.Add(n)
			}
		}
	})
	return walls
}
