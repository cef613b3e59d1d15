// Package gameplay drives the fog of war from observer movement.
package gameplay

import (
	"gallerycrawl/pkg/engine/world"
)

// Position is a continuous world position
type Position struct {
	X, Y float64
}

// Cell returns the cell containing the position
func (p Position) Cell() world.Cell {
	return world.WorldToCell(p.X, p.Y)
}

// FogTracker feeds observer positions into a Visibility and clears the fog
// of every newly revealed cell. It only recomputes when the observer enters a
// new cell, except on the first update after construction or Reset, which
// always reveals.
type FogTracker struct {
	vis    *world.Visibility
	canvas world.Canvas

	last        world.Cell
	initialized bool
}

// NewFogTracker creates a tracker. canvas may be nil when only the revealed
// set is of interest.
func NewFogTracker(vis *world.Visibility, canvas world.Canvas) *FogTracker {
	return &FogTracker{vis: vis, canvas: canvas}
}

// Visibility returns the underlying visibility tracker
func (t *FogTracker) Visibility() *world.Visibility {
	return t.vis
}

// Observer returns the last observer cell, and false before the first update
func (t *FogTracker) Observer() (world.Cell, bool) {
	return t.last, t.initialized
}

// Reset forgets the observer and every revealed cell, for a new level
func (t *FogTracker) Reset() {
	t.initialized = false
	t.last = world.Cell{}
	t.vis.Reset()
}

// Update moves the observer to pos and returns the newly revealed cells
func (t *FogTracker) Update(pos Position) []world.Cell {
	return t.UpdateCell(pos.Cell())
}

// UpdateCell moves the observer to cell and returns the newly revealed cells
func (t *FogTracker) UpdateCell(cell world.Cell) []world.Cell {
	if t.initialized && cell == t.last {
		return nil
	}
	t.initialized = true
	t.last = cell

	fresh := t.vis.Reveal(cell)
	if t.canvas != nil {
		for _, c := range fresh {
			t.canvas.ClearFog(c)
		}
	}
	return fresh
}
