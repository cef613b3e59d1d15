package setup

import (
	"strings"
	"testing"

	"gallerycrawl/pkg/engine/world"
	"gallerycrawl/pkg/game/wing"
)

func TestNewLevel_PostsObjectives(t *testing.T) {
	lvl, err := newBuilder(world.NewGrid(), nil).NewLevel(seeded(17))
	if err != nil {
		t.Fatalf("NewLevel() error = %v", err)
	}
	if lvl.Depth != 1 {
		t.Errorf("Depth = %d, want 1", lvl.Depth)
	}
	if len(lvl.Messages) != 3 {
		t.Fatalf("Messages = %v, want 3 entries", lvl.Messages)
	}
	if !strings.HasPrefix(lvl.Messages[0], "Welcome") {
		t.Errorf("Messages[0] = %q, want the welcome line", lvl.Messages[0])
	}
}

func TestResetLevel_SameLayoutFreshFog(t *testing.T) {
	grid := world.NewGrid()
	b := newBuilder(grid, nil)
	lvl, err := b.NewLevel(seeded(0))
	if err != nil {
		t.Fatalf("NewLevel() error = %v", err)
	}
	lvl.Fog.UpdateCell(lvl.Layout.SpawnCell().Add(world.C(1, 0)))

	next, err := b.ResetLevel(lvl)
	if err != nil {
		t.Fatalf("ResetLevel() error = %v", err)
	}
	if next.Seed != lvl.Seed {
		t.Errorf("Seed = %d, want %d", next.Seed, lvl.Seed)
	}
	if !next.Layout.Floor.Equal(lvl.Layout.Floor) {
		t.Error("reset produced a different floor")
	}
	if obs, _ := next.Fog.Observer(); obs != next.Layout.SpawnCell() {
		t.Errorf("observer at %v after reset, want spawn", obs)
	}
	if next.Messages[0] != "Level reset!" {
		t.Errorf("Messages[0] = %q", next.Messages[0])
	}
}

func TestAdvanceLevel_IncrementsDepth(t *testing.T) {
	b := newBuilder(nil, nil)
	lvl, err := b.NewLevel(seeded(4))
	if err != nil {
		t.Fatalf("NewLevel() error = %v", err)
	}
	next, err := b.AdvanceLevel(lvl)
	if err != nil {
		t.Fatalf("AdvanceLevel() error = %v", err)
	}
	if next.Depth != 2 {
		t.Errorf("Depth = %d, want 2", next.Depth)
	}
	if next.Seed == 4 {
		t.Error("AdvanceLevel reused the configured seed")
	}
	if lvl.Config.Seed != 4 {
		t.Error("AdvanceLevel modified the previous level's config")
	}
	if want := lvl.Base.NumberOfRooms + 2; next.Config.NumberOfRooms != want {
		t.Errorf("NumberOfRooms = %d, want %d", next.Config.NumberOfRooms, want)
	}
	if next.Base != lvl.Base {
		t.Error("AdvanceLevel dropped the base config")
	}
}

func TestAdvanceLevel_LastWing(t *testing.T) {
	b := newBuilder(nil, nil)
	lvl, err := b.NewLevel(seeded(4))
	if err != nil {
		t.Fatalf("NewLevel() error = %v", err)
	}
	lvl.Depth = wing.TotalWings

	next, err := b.AdvanceLevel(lvl)
	if err != nil {
		t.Fatalf("AdvanceLevel() error = %v", err)
	}
	if next != lvl {
		t.Error("AdvanceLevel on the last wing built a new level")
	}
	if last := lvl.Messages[len(lvl.Messages)-1]; !strings.Contains(last, "last wing") {
		t.Errorf("last message = %q", last)
	}
}
