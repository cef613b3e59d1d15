package generator

import (
	"gallerycrawl/pkg/engine/world"
)

// Structure is a room or corridor rectangle. Index 0 of a layout is always the
// starting room.
type Structure struct {
	Rect       world.Rect
	IsCorridor bool
}

// Kind returns "corridor" or "room"
func (s Structure) Kind() string {
	if s.IsCorridor {
		return "corridor"
	}
	return "room"
}

// Link records the door cut between two structures when the second was attached
type Link struct {
	Door world.Cell
	From world.Rect
	To   world.Rect
	Dir  world.Direction
}

// PruneReport describes a dead-end pruning run
type PruneReport struct {
	Passes  int
	Removed int
	CapHit  bool
}

// Layout is the result of one generation run. Downstream stages treat it as
// read-only.
type Layout struct {
	Structures []Structure
	Doors      *world.CellSet
	Floor      *world.CellSet
	Links      []Link

	Attempts          int
	AttemptsExhausted bool
	Prune             PruneReport
}

// NewLayout creates an empty layout
func NewLayout() *Layout {
	return &Layout{
		Doors: world.NewCellSet(),
		Floor: world.NewCellSet(),
	}
}

// StartRoom returns the starting room
func (l *Layout) StartRoom() (Structure, bool) {
	if len(l.Structures) == 0 {
		return Structure{}, false
	}
	return l.Structures[0], true
}

// SpawnCell returns the observer's spawn cell: the centre of the starting room
func (l *Layout) SpawnCell() world.Cell {
	start, ok := l.StartRoom()
	if !ok {
		return world.Cell{}
	}
	return start.Rect.CenterCell()
}

// RoomCount returns the number of non-corridor structures
func (l *Layout) RoomCount() int {
	n := 0
	for _, s := range l.Structures {
		if !s.IsCorridor {
			n++
		}
	}
	return n
}

// CorridorCount returns the number of corridor structures
func (l *Layout) CorridorCount() int {
	return len(l.Structures) - l.RoomCount()
}

// RebuildFloor recomputes the floor set from every structure interior and door
func (l *Layout) RebuildFloor() {
	floor := world.NewCellSet()
	for _, s := range l.Structures {
		floor.AddRect(s.Rect)
	}
	floor.AddAll(l.Doors)
	l.Floor = floor
}

// DoorTouches counts, per structure, the doors with an 8-neighbour inside it
func (l *Layout) DoorTouches() []int {
	counts := make([]int, len(l.Structures))
	l.Doors.Each(func(door world.Cell) {
		for i, s := range l.Structures {
			if s.Rect.Touches(door) {
				counts[i]++
			}
		}
	})
	return counts
}
