package gameplay

import (
	"testing"

	"gallerycrawl/pkg/engine/world"
)

// corridorFloor is a 5x1 strip from (0,0) to (4,0)
func corridorFloor() *world.CellSet {
	floor := world.NewCellSet()
	floor.AddRect(world.NewRect(0, 0, 5, 1))
	return floor
}

func TestCanEnter_NonFloorCell(t *testing.T) {
	if CanEnter(corridorFloor(), world.C(0, 1)) {
		t.Error("CanEnter(off-floor cell) = true, want false")
	}
	if !CanEnter(corridorFloor(), world.C(2, 0)) {
		t.Error("CanEnter(floor cell) = false, want true")
	}
}

func TestMove_BeforeFirstUpdate(t *testing.T) {
	tr := NewFogTracker(world.NewVisibility(world.NewCellSet(), 2), nil)
	if moved, _ := Move(tr, corridorFloor(), world.East); moved {
		t.Error("Move() before any update = true, want false")
	}
}

func TestMove_BlockedByMissingFloor(t *testing.T) {
	tr := NewFogTracker(world.NewVisibility(world.NewCellSet(), 2), nil)
	tr.UpdateCell(world.C(0, 0))

	if moved, fresh := Move(tr, corridorFloor(), world.North); moved || fresh != nil {
		t.Errorf("Move(North) = %v, %v; want false, nil", moved, fresh)
	}
	if cell, _ := tr.Observer(); cell != world.C(0, 0) {
		t.Errorf("observer moved to %v", cell)
	}
}

func TestMove_InvalidDirection(t *testing.T) {
	tr := NewFogTracker(world.NewVisibility(world.NewCellSet(), 2), nil)
	tr.UpdateCell(world.C(0, 0))
	if moved, _ := Move(tr, corridorFloor(), world.Direction(9)); moved {
		t.Error("Move(invalid) = true, want false")
	}
}

func TestMove_RevealsAhead(t *testing.T) {
	tr := NewFogTracker(world.NewVisibility(world.NewCellSet(), 2), nil)
	tr.UpdateCell(world.C(0, 0))

	moved, fresh := Move(tr, corridorFloor(), world.East)
	if !moved {
		t.Fatal("Move(East) = false, want true")
	}
	found := false
	for _, c := range fresh {
		if c == world.C(3, 0) {
			found = true
		}
	}
	if !found {
		t.Errorf("moving east did not reveal (3,0): %v", fresh)
	}
}

func TestWalk_StopsAtFirstBlockedStep(t *testing.T) {
	tr := NewFogTracker(world.NewVisibility(world.NewCellSet(), 2), nil)
	tr.UpdateCell(world.C(0, 0))

	route := []world.Direction{world.East, world.East, world.North, world.East}
	steps, _ := Walk(tr, corridorFloor(), route)
	if steps != 2 {
		t.Errorf("Walk() steps = %d, want 2", steps)
	}
	if cell, _ := tr.Observer(); cell != world.C(2, 0) {
		t.Errorf("observer at %v, want (2,0)", cell)
	}
}

func TestFollowTour_CountsNewCellsOnce(t *testing.T) {
	tr := NewFogTracker(world.NewVisibility(world.NewCellSet(), 1), nil)
	total := FollowTour(tr, Tour([]world.Cell{world.C(0, 0), world.C(2, 0)}, 0.25))

	if total != tr.Visibility().RevealedCount() {
		t.Errorf("FollowTour() = %d, want %d", total, tr.Visibility().RevealedCount())
	}
	// plus shapes at x = 0, 1, 2 overlap; 11 distinct cells
	if total != 11 {
		t.Errorf("FollowTour() = %d, want 11", total)
	}
}
