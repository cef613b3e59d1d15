// Package renderer turns a level into rows of glyphs. Backends such as the
// terminal renderer style the glyphs; developer dumps print them as is.
package renderer

import (
	"strings"

	"gallerycrawl/pkg/engine/world"
	"gallerycrawl/pkg/game/state"
)

// Icon constants
const (
	IconObserver = "@"
	IconFloor    = "·"
	IconWall     = "▒"
	IconDoor     = "□"
	IconExhibit  = "◆"
	IconFog      = "░"
	IconVoid     = " "
)

// Snapshot caches the per-level lookups needed to pick glyphs
type Snapshot struct {
	lvl      *state.Level
	exhibits *world.CellSet
	fog      world.Rect
	hasFog   bool
	observer world.Cell
	hasObs   bool

	// Reveal ignores the fog and shows the whole layout
	Reveal bool
}

// NewSnapshot prepares a level for rendering
func NewSnapshot(lvl *state.Level) *Snapshot {
	s := &Snapshot{lvl: lvl, exhibits: lvl.ExhibitSet()}
	s.fog, s.hasFog = lvl.FogBounds()
	s.observer, s.hasObs = lvl.Observer()
	return s
}

// Glyph picks the icon and style for a cell
func (s *Snapshot) Glyph(c world.Cell) (string, TextStyle) {
	if s.hasObs && c == s.observer {
		return IconObserver, StyleObserver
	}

	if !s.Reveal && s.lvl.Fog != nil && !s.lvl.Fog.Visibility().IsRevealed(c) {
		if s.hasFog && s.fog.Contains(c) {
			return IconFog, StyleFog
		}
		return IconVoid, StyleNormal
	}

	switch {
	case s.lvl.Layout.Doors.Has(c):
		return IconDoor, StyleDoor
	case s.exhibits.Has(c):
		return IconExhibit, StyleExhibit
	case s.lvl.Layout.Floor.Has(c):
		return IconFloor, StyleFloor
	case s.lvl.Walls.Has(c):
		return IconWall, StyleWall
	}
	return IconVoid, StyleNormal
}

// Lines renders the cells of view, north at the top. style may be nil for
// plain text.
func (s *Snapshot) Lines(view world.Rect, style func(text string, st TextStyle) string) []string {
	lines := make([]string, 0, view.H)
	var sb strings.Builder

	for y := view.MaxY() - 1; y >= view.MinY(); y-- {
		sb.Reset()
		for x := view.MinX(); x < view.MaxX(); x++ {
			icon, st := s.Glyph(world.C(x, y))
			if style != nil {
				icon = style(icon, st)
			}
			sb.WriteString(icon)
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// Bounds returns the smallest rect showing the walls, and therefore the
// whole layout
func (s *Snapshot) Bounds() (world.Rect, bool) {
	return s.lvl.Walls.Bounds()
}

// Viewport returns a rows x cols rect centred on the observer, or on the
// layout when there is no observer yet
func (s *Snapshot) Viewport(rows, cols int) world.Rect {
	centre := s.observer
	if !s.hasObs {
		if b, ok := s.Bounds(); ok {
			centre = b.CenterCell()
		}
	}
	return world.NewRect(centre.X-cols/2, centre.Y-rows/2, cols, rows)
}
