package world

// Canvas is the paint surface the level pipeline draws on. It stands in for
// whatever tile storage the host engine provides.
type Canvas interface {
	SetFloor(c Cell)
	SetWall(c Cell)
	SetFog(c Cell)
	ClearFog(c Cell)
	ClearAll()
	HasWall(c Cell) bool
}

// Layer flags stored per cell in a Grid
type Layer uint8

const (
	LayerFloor Layer = 1 << iota
	LayerWall
	LayerFog
)

// Grid is a sparse, unbounded layered tilemap. It implements Canvas.
type Grid struct {
	tiles map[int]map[int]Layer
}

// NewGrid creates an empty grid
func NewGrid() *Grid {
	g := &Grid{}
	g.ClearAll()
	return g
}

// ClearAll removes every tile on every layer
func (g *Grid) ClearAll() {
	g.tiles = make(map[int]map[int]Layer)
}

func (g *Grid) set(c Cell, l Layer) {
	if g.tiles == nil {
		g.ClearAll()
	}
	col, found := g.tiles[c.X]
	if !found {
		col = make(map[int]Layer)
		g.tiles[c.X] = col
	}
	col[c.Y] |= l
}

func (g *Grid) clear(c Cell, l Layer) {
	col, found := g.tiles[c.X]
	if !found {
		return
	}
	v := col[c.Y] &^ l
	if v == 0 {
		delete(col, c.Y)
		if len(col) == 0 {
			delete(g.tiles, c.X)
		}
		return
	}
	col[c.Y] = v
}

// Get returns the layers present at a cell
func (g *Grid) Get(c Cell) Layer {
	col, found := g.tiles[c.X]
	if !found {
		return 0
	}
	return col[c.Y]
}

// SetFloor paints a floor tile
func (g *Grid) SetFloor(c Cell) { g.set(c, LayerFloor) }

// SetWall paints a wall tile
func (g *Grid) SetWall(c Cell) { g.set(c, LayerWall) }

// SetFog covers a cell with fog
func (g *Grid) SetFog(c Cell) { g.set(c, LayerFog) }

// ClearFog removes fog from a cell
func (g *Grid) ClearFog(c Cell) { g.clear(c, LayerFog) }

// HasFloor reports whether the cell has a floor tile
func (g *Grid) HasFloor(c Cell) bool { return g.Get(c)&LayerFloor != 0 }

// HasWall reports whether the cell has a wall tile
func (g *Grid) HasWall(c Cell) bool { return g.Get(c)&LayerWall != 0 }

// HasFog reports whether the cell is fogged
func (g *Grid) HasFog(c Cell) bool { return g.Get(c)&LayerFog != 0 }

// Count returns the number of cells carrying layer l
func (g *Grid) Count(l Layer) int {
	n := 0
	g.ForEachCell(func(_ Cell, v Layer) {
		if v&l != 0 {
			n++
		}
	})
	return n
}

// ForEachCell iterates over all painted cells in unspecified order
func (g *Grid) ForEachCell(fn func(c Cell, l Layer)) {
	for x, col := range g.tiles {
		for y, v := range col {
			fn(Cell{X: x, Y: y}, v)
		}
	}
}

// Bounds returns the rectangle covering every cell painted on layer l
func (g *Grid) Bounds(l Layer) (Rect, bool) {
	set := NewCellSet()
	g.ForEachCell(func(c Cell, v Layer) {
		if v&l != 0 {
			set.Add(c)
		}
	})
	return set.Bounds()
}
