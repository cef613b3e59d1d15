// Package state holds the state of one generated level.
package state

import (
	"github.com/leonelquinteros/gotext"

	"gallerycrawl/pkg/engine/world"
	"gallerycrawl/pkg/game/config"
	"gallerycrawl/pkg/game/gameplay"
	"gallerycrawl/pkg/game/generator"
	"gallerycrawl/pkg/game/wing"
)

// Anchor is the world-space spawn position of an exhibit
type Anchor struct {
	Cell world.Cell
	X, Y float64
}

// NewAnchor returns the anchor at the centre of a cell
func NewAnchor(c world.Cell) Anchor {
	x, y := world.CellCenter(c)
	return Anchor{Cell: c, X: x, Y: y}
}

// Level is everything produced by one build
type Level struct {
	// Config is the configuration the level was built from; Base is the
	// unscaled configuration later wings are sized from
	Config *config.Config
	Base   *config.Config
	Seed   int64
	Depth  int

	Layout   *generator.Layout
	Walls    *world.CellSet
	Exhibits []world.Cell
	Anchors  []Anchor

	Canvas world.Canvas
	Fog    *gameplay.FogTracker

	// Problems lists the pipeline steps that were skipped and why
	Problems []error

	Messages []string
}

// AddProblem records a skipped step
func (l *Level) AddProblem(err error) {
	l.Problems = append(l.Problems, err)
}

// AddMessage adds a message to the level's message log
func (l *Level) AddMessage(msg string) {
	const maxMessages = 5
	l.Messages = append(l.Messages, msg)

	if len(l.Messages) > maxMessages {
		l.Messages = l.Messages[len(l.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (l *Level) ClearMessages() {
	l.Messages = make([]string, 0)
}

// Revealed returns a snapshot of every cell revealed so far
func (l *Level) Revealed() *world.CellSet {
	if l.Fog == nil {
		return world.NewCellSet()
	}
	return l.Fog.Visibility().Revealed()
}

// FogBounds returns the area covered by the initial fog: the floor bounds
// grown by the configured fog buffer
func (l *Level) FogBounds() (world.Rect, bool) {
	if l.Layout == nil {
		return world.Rect{}, false
	}
	bounds, ok := l.Layout.Floor.Bounds()
	if !ok {
		return world.Rect{}, false
	}
	return bounds.Expand(l.Config.FogBuffer), true
}

// ExhibitSet returns the exhibit points as a set
func (l *Level) ExhibitSet() *world.CellSet {
	return world.NewCellSet(l.Exhibits...)
}

// Observer returns the observer cell, and false before the first reveal
func (l *Level) Observer() (world.Cell, bool) {
	if l.Fog == nil {
		return world.Cell{}, false
	}
	return l.Fog.Observer()
}

// Theme returns the theme of the level's wing
func (l *Level) Theme() wing.Theme {
	return wing.ThemeFor(l.Depth)
}

// StructureAt returns the index of the structure containing c
func (l *Level) StructureAt(c world.Cell) (int, bool) {
	if l.Layout == nil {
		return 0, false
	}
	for i, s := range l.Layout.Structures {
		if s.Rect.Contains(c) {
			return i, true
		}
	}
	return 0, false
}

// PlaceName names the room, corridor or doorway at c, or "" outside the floor
func (l *Level) PlaceName(c world.Cell) string {
	if l.Layout == nil {
		return ""
	}
	if l.Layout.Doors.Has(c) {
		return gotext.Get("Doorway")
	}
	i, ok := l.StructureAt(c)
	if !ok {
		return ""
	}
	if l.Layout.Structures[i].IsCorridor {
		return gotext.Get("Corridor")
	}
	return wing.RoomName(l.Theme(), l.Seed, i)
}
