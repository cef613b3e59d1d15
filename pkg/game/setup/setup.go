// Package setup runs the level build pipeline: layout, walls, exhibits,
// painting, fog, spawning and the first visibility pass.
package setup

import (
	"errors"
	"fmt"
	"log/slog"

	"gallerycrawl/pkg/engine/logger"
	"gallerycrawl/pkg/engine/rng"
	"gallerycrawl/pkg/engine/world"
	"gallerycrawl/pkg/game/config"
	"gallerycrawl/pkg/game/exhibits"
	"gallerycrawl/pkg/game/gameplay"
	"gallerycrawl/pkg/game/generator"
	"gallerycrawl/pkg/game/state"
)

var (
	ErrNoCanvas        = errors.New("setup: no canvas bound")
	ErrNoSpawnTemplate = errors.New("setup: no exhibit template configured")
)

// SpawnSink instantiates exhibits at world positions
type SpawnSink interface {
	Spawn(template string, x, y float64) error
}

// SpawnFunc adapts a function to SpawnSink
type SpawnFunc func(template string, x, y float64) error

// Spawn calls f
func (f SpawnFunc) Spawn(template string, x, y float64) error {
	return f(template, x, y)
}

// Builder wires the pipeline collaborators together
type Builder struct {
	Generator generator.LayoutGenerator
	Canvas    world.Canvas
	Spawner   SpawnSink
	Logger    *slog.Logger
}

func (b *Builder) log() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return logger.Logger()
}

// Build generates a complete level. Only an invalid configuration is an error;
// a missing canvas or spawner skips the affected steps, which are listed in
// Level.Problems.
func (b *Builder) Build(cfg *config.Config) (*state.Level, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gen := b.Generator
	if gen == nil {
		gen = &generator.GrowthGenerator{Logger: b.Logger}
	}

	src := rng.New(cfg.Seed)
	lvl := &state.Level{
		Config: cfg,
		Seed:   src.Seed(),
		Canvas: b.Canvas,
	}

	if b.Canvas != nil {
		b.Canvas.ClearAll()
	}

	lvl.Layout = gen.Generate(cfg, src)
	lvl.Walls = world.DeriveWalls(lvl.Layout.Floor)
	if cut := UnreachableFloor(lvl.Layout.Floor, lvl.Layout.SpawnCell()); len(cut) > 0 {
		b.log().Warn("floor cells unreachable from spawn", "count", len(cut))
	}
	lvl.Exhibits = exhibits.Plan(lvl.Layout, exhibits.Spacing{
		Wall:    cfg.ExhibitWallSpacing,
		Exhibit: cfg.ExhibitMinSpacing,
		Door:    cfg.DoorMinSpacing,
	})
	for _, c := range lvl.Exhibits {
		lvl.Anchors = append(lvl.Anchors, state.NewAnchor(c))
	}

	if b.Canvas == nil {
		err := fmt.Errorf("painting skipped: %w", ErrNoCanvas)
		b.log().Error("level will not be painted", "error", err)
		lvl.AddProblem(err)
	} else {
		PaintLevel(b.Canvas, lvl.Layout.Floor, lvl.Walls)
		if bounds, ok := lvl.FogBounds(); ok {
			bounds.ForEachCell(b.Canvas.SetFog)
		}
	}

	b.spawnExhibits(lvl)

	var occluder world.Occluder = lvl.Walls
	if b.Canvas != nil {
		occluder = b.Canvas
	}
	lvl.Fog = gameplay.NewFogTracker(world.NewVisibility(occluder, cfg.SightRadius), b.Canvas)
	lvl.Fog.UpdateCell(lvl.Layout.SpawnCell())

	b.log().Info("level generated",
		"seed", lvl.Seed,
		"structures", len(lvl.Layout.Structures),
		"rooms", lvl.Layout.RoomCount(),
		"corridors", lvl.Layout.CorridorCount(),
		"doors", lvl.Layout.Doors.Len(),
		"exhibits", len(lvl.Exhibits))

	return lvl, nil
}

// spawnExhibits hands every anchor to the spawn sink
func (b *Builder) spawnExhibits(lvl *state.Level) {
	if b.Spawner == nil || lvl.Config.ExhibitTemplate == "" {
		err := fmt.Errorf("exhibit spawning skipped: %w", ErrNoSpawnTemplate)
		b.log().Error("exhibits will not be spawned", "error", err)
		lvl.AddProblem(err)
		return
	}

	for _, a := range lvl.Anchors {
		if err := b.Spawner.Spawn(lvl.Config.ExhibitTemplate, a.X, a.Y); err != nil {
			err = fmt.Errorf("spawning exhibit at %v: %w", a.Cell, err)
			b.log().Error("exhibit spawn failed", "error", err)
			lvl.AddProblem(err)
		}
	}
}

// PaintLevel paints floor and wall tiles
func PaintLevel(canvas world.Canvas, floor, walls *world.CellSet) {
	floor.Each(canvas.SetFloor)
	walls.Each(canvas.SetWall)
}
