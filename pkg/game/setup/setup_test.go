package setup

import (
	"errors"
	"testing"

	"gallerycrawl/pkg/engine/logger"
	"gallerycrawl/pkg/engine/world"
	"gallerycrawl/pkg/game/config"
)

type spawnCall struct {
	template string
	x, y     float64
}

type recordingSink struct {
	calls []spawnCall
	err   error
}

func (s *recordingSink) Spawn(template string, x, y float64) error {
	s.calls = append(s.calls, spawnCall{template, x, y})
	return s.err
}

func newBuilder(canvas world.Canvas, sink SpawnSink) *Builder {
	b := &Builder{Canvas: canvas, Logger: logger.Discard()}
	if sink != nil {
		b.Spawner = sink
	}
	return b
}

func seeded(seed int64) *config.Config {
	cfg := config.Default()
	cfg.Seed = seed
	return cfg
}

func singleRoom() *config.Config {
	cfg := seeded(7)
	cfg.NumberOfRooms = 1
	cfg.MinRoomSize = config.Size{W: 15, H: 15}
	cfg.MaxRoomSize = config.Size{W: 16, H: 16}
	return cfg
}

func TestBuild_PaintsFloorAndWalls(t *testing.T) {
	grid := world.NewGrid()
	lvl, err := newBuilder(grid, &recordingSink{}).Build(seeded(42))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if got, want := grid.Count(world.LayerFloor), lvl.Layout.Floor.Len(); got != want {
		t.Errorf("floor tiles = %d, want %d", got, want)
	}
	if got, want := grid.Count(world.LayerWall), lvl.Walls.Len(); got != want {
		t.Errorf("wall tiles = %d, want %d", got, want)
	}
	if len(lvl.Problems) != 0 {
		t.Errorf("Problems = %v, want none", lvl.Problems)
	}
}

func TestBuild_ClearsCanvasFirst(t *testing.T) {
	grid := world.NewGrid()
	stray := world.C(1000, 1000)
	grid.SetWall(stray)

	if _, err := newBuilder(grid, nil).Build(seeded(3)); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if grid.HasWall(stray) {
		t.Error("stray wall from a previous build survived")
	}
}

func TestBuild_InitialFogCoversBufferedBounds(t *testing.T) {
	grid := world.NewGrid()
	cfg := singleRoom()
	lvl, err := newBuilder(grid, nil).Build(cfg)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	// 15x15 room at (-7,-7), fog from -12 to 12 on both axes
	if lvl.Layout.Floor.Len() != 225 {
		t.Fatalf("floor = %d, want 225", lvl.Layout.Floor.Len())
	}
	for _, c := range []world.Cell{world.C(-12, -12), world.C(12, 12), world.C(-12, 12), world.C(12, -12)} {
		if !grid.HasFog(c) {
			t.Errorf("HasFog(%v) = false, want true", c)
		}
	}
	if grid.HasFog(world.C(-13, 0)) || grid.HasFog(world.C(13, 0)) {
		t.Error("fog painted outside the buffered bounds")
	}
}

func TestBuild_FirstRevealAtSpawn(t *testing.T) {
	grid := world.NewGrid()
	lvl, err := newBuilder(grid, nil).Build(singleRoom())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	spawn := lvl.Layout.SpawnCell()
	if spawn != world.C(0, 0) {
		t.Errorf("SpawnCell() = %v, want (0,0)", spawn)
	}
	if grid.HasFog(spawn) {
		t.Error("spawn cell still fogged after the first visibility pass")
	}
	if !lvl.Fog.Visibility().IsRevealed(world.C(0, 8)) {
		t.Error("cell at sight radius not revealed")
	}
	if lvl.Fog.Visibility().IsRevealed(world.C(0, 9)) {
		t.Error("cell beyond sight radius revealed")
	}
	if obs, ok := lvl.Fog.Observer(); !ok || obs != spawn {
		t.Errorf("Observer() = %v, %v, want %v, true", obs, ok, spawn)
	}
}

func TestBuild_SpawnsExhibitsAtCellCentres(t *testing.T) {
	sink := &recordingSink{}
	cfg := seeded(11)
	cfg.ExhibitTemplate = "statue"
	lvl, err := newBuilder(world.NewGrid(), sink).Build(cfg)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if len(sink.calls) != len(lvl.Exhibits) {
		t.Fatalf("spawn calls = %d, want %d", len(sink.calls), len(lvl.Exhibits))
	}
	for i, call := range sink.calls {
		c := lvl.Exhibits[i]
		if call.template != "statue" {
			t.Errorf("call %d template = %q, want %q", i, call.template, "statue")
		}
		if call.x != float64(c.X)+0.5 || call.y != float64(c.Y)+0.5 {
			t.Errorf("call %d at (%g,%g), want centre of %v", i, call.x, call.y, c)
		}
	}
}

func TestBuild_MissingSpawnerSkipsSpawning(t *testing.T) {
	grid := world.NewGrid()
	lvl, err := newBuilder(grid, nil).Build(seeded(5))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(lvl.Problems) != 1 || !errors.Is(lvl.Problems[0], ErrNoSpawnTemplate) {
		t.Errorf("Problems = %v, want one ErrNoSpawnTemplate", lvl.Problems)
	}
	if grid.Count(world.LayerFloor) == 0 {
		t.Error("pipeline stopped after the spawn error")
	}
}

func TestBuild_EmptyTemplateSkipsSpawning(t *testing.T) {
	sink := &recordingSink{}
	cfg := seeded(5)
	cfg.ExhibitTemplate = ""
	lvl, err := newBuilder(world.NewGrid(), sink).Build(cfg)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(sink.calls) != 0 {
		t.Errorf("spawn calls = %d, want 0", len(sink.calls))
	}
	if len(lvl.Problems) != 1 || !errors.Is(lvl.Problems[0], ErrNoSpawnTemplate) {
		t.Errorf("Problems = %v, want one ErrNoSpawnTemplate", lvl.Problems)
	}
}

func TestBuild_SpawnErrorsDoNotStopOtherSpawns(t *testing.T) {
	failure := errors.New("prefab broken")
	sink := &recordingSink{err: failure}
	lvl, err := newBuilder(world.NewGrid(), sink).Build(seeded(9))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(sink.calls) != len(lvl.Anchors) {
		t.Errorf("spawn calls = %d, want %d", len(sink.calls), len(lvl.Anchors))
	}
	if len(lvl.Problems) != len(lvl.Anchors) {
		t.Errorf("Problems = %d, want %d", len(lvl.Problems), len(lvl.Anchors))
	}
	for _, p := range lvl.Problems {
		if !errors.Is(p, failure) {
			t.Errorf("problem %v does not wrap the sink error", p)
		}
	}
}

func TestBuild_NoCanvasStillRevealsAgainstWalls(t *testing.T) {
	lvl, err := newBuilder(nil, &recordingSink{}).Build(seeded(13))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(lvl.Problems) != 1 || !errors.Is(lvl.Problems[0], ErrNoCanvas) {
		t.Errorf("Problems = %v, want one ErrNoCanvas", lvl.Problems)
	}
	if lvl.Revealed().Len() == 0 {
		t.Error("nothing revealed without a canvas")
	}
}

func TestBuild_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.SightRadius = 0
	lvl, err := newBuilder(world.NewGrid(), nil).Build(cfg)
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Build() error = %v, want ErrInvalid", err)
	}
	if lvl != nil {
		t.Error("Build() returned a level for an invalid config")
	}
}

func TestBuild_Deterministic(t *testing.T) {
	a, err := newBuilder(world.NewGrid(), nil).Build(seeded(21))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	b, err := newBuilder(world.NewGrid(), nil).Build(seeded(21))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if !a.Layout.Floor.Equal(b.Layout.Floor) {
		t.Error("floors differ for the same seed")
	}
	if len(a.Exhibits) != len(b.Exhibits) {
		t.Fatalf("exhibit counts differ: %d vs %d", len(a.Exhibits), len(b.Exhibits))
	}
	for i := range a.Exhibits {
		if a.Exhibits[i] != b.Exhibits[i] {
			t.Errorf("exhibit %d: %v vs %v", i, a.Exhibits[i], b.Exhibits[i])
		}
	}
}

func TestBuild_ReportsClockSeed(t *testing.T) {
	lvl, err := newBuilder(nil, nil).Build(seeded(0))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if lvl.Seed == 0 {
		t.Error("Seed = 0, want the derived clock seed")
	}
}

func TestBuild_FloorReachableFromSpawn(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		lvl, err := newBuilder(nil, nil).Build(seeded(seed))
		if err != nil {
			t.Fatalf("seed %d: Build() error = %v", seed, err)
		}
		if cut := UnreachableFloor(lvl.Layout.Floor, lvl.Layout.SpawnCell()); len(cut) != 0 {
			t.Errorf("seed %d: %d floor cells unreachable", seed, len(cut))
		}
	}
}
