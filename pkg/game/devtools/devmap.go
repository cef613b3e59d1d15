// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"gallerycrawl/pkg/engine/rng"
	"gallerycrawl/pkg/engine/world"
	"gallerycrawl/pkg/game/config"
	"gallerycrawl/pkg/game/generator"
)

// DevMap is a generator that always returns the same hand-built layout: a
// starting room, a room north of it, and two rooms reached through corridors
// to the east. Useful for checking rendering and fog by eye.
type DevMap struct{}

// Name returns the generator name
func (DevMap) Name() string {
	return "DevMap"
}

// Generate ignores cfg and src and builds the fixed layout
func (DevMap) Generate(cfg *config.Config, src rng.Source) *generator.Layout {
	l := generator.NewLayout()

	start := world.NewRect(-6, -6, 13, 13)
	north := world.NewRect(-5, 8, 11, 9)
	eastCorridor := world.NewRect(8, -1, 15, 3)
	east := world.NewRect(24, -5, 11, 11)
	northCorridor := world.NewRect(28, 7, 3, 12)
	farRoom := world.NewRect(24, 20, 11, 11)

	l.Structures = []generator.Structure{
		{Rect: start},
		{Rect: north},
		{Rect: eastCorridor, IsCorridor: true},
		{Rect: east},
		{Rect: northCorridor, IsCorridor: true},
		{Rect: farRoom},
	}

	link := func(door world.Cell, from, to world.Rect, dir world.Direction) {
		l.Doors.Add(door)
		l.Links = append(l.Links, generator.Link{Door: door, From: from, To: to, Dir: dir})
	}
	link(world.C(0, 7), start, north, world.North)
	link(world.C(7, 0), start, eastCorridor, world.East)
	link(world.C(23, 0), eastCorridor, east, world.East)
	link(world.C(29, 6), east, northCorridor, world.North)
	link(world.C(29, 19), northCorridor, farRoom, world.North)

	l.RebuildFloor()
	return l
}
