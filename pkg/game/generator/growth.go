package generator

import (
	"log/slog"

	"gallerycrawl/pkg/engine/rng"
	"gallerycrawl/pkg/engine/world"
	"gallerycrawl/pkg/game/config"
)

// PruneSafetyCap bounds the number of dead-end pruning passes
const PruneSafetyCap = 100

// Overlap buffers around existing structures
const (
	structureBuffer = 1
	corridorBuffer  = 2
)

// growthDirections is the order directions are drawn in
var growthDirections = []world.Direction{world.North, world.South, world.West, world.East}

// GrowthGenerator grows a level outwards from a starting room by attaching
// rooms and corridors to random existing structures.
type GrowthGenerator struct {
	Logger *slog.Logger
}

// Name returns the name of this generator
func (g *GrowthGenerator) Name() string {
	return "Growth"
}

// Generate builds, prunes and floors a new layout
func (g *GrowthGenerator) Generate(cfg *config.Config, src rng.Source) *Layout {
	l := NewLayout()

	createStartingRoom(l, cfg, src)
	growStructures(l, cfg, src)
	if l.AttemptsExhausted {
		g.log().Warn("maximum generation attempts reached, stopping early",
			"attempts", l.Attempts, "structures", len(l.Structures), "wanted", cfg.NumberOfRooms)
	}

	l.Prune = l.PruneDeadEnds(PruneSafetyCap)
	if l.Prune.CapHit {
		g.log().Warn("dead-end pruning hit its safety cap", "passes", l.Prune.Passes, "removed", l.Prune.Removed)
	}

	l.RebuildFloor()

	g.log().Debug("layout generated",
		"structures", len(l.Structures),
		"rooms", l.RoomCount(),
		"corridors", l.CorridorCount(),
		"doors", l.Doors.Len(),
		"attempts", l.Attempts,
		"pruned", l.Prune.Removed)

	return l
}

// createStartingRoom places a random-sized room centred on the origin
func createStartingRoom(l *Layout, cfg *config.Config, src rng.Source) {
	w := rng.Range(src, cfg.MinRoomSize.W, cfg.MaxRoomSize.W)
	h := rng.Range(src, cfg.MinRoomSize.H, cfg.MaxRoomSize.H)
	l.Structures = append(l.Structures, Structure{
		Rect: world.NewRect(-w/2, -h/2, w, h),
	})
}

// growStructures runs the attachment loop until the target count is reached or
// the attempt budget is spent
func growStructures(l *Layout, cfg *config.Config, src rng.Source) {
	for len(l.Structures) < cfg.NumberOfRooms && l.Attempts < cfg.MaxGenerationAttempts {
		l.Attempts++

		source := l.Structures[src.Intn(len(l.Structures))]
		dir := growthDirections[src.Intn(len(growthDirections))]
		corridor := rng.Chance(src, cfg.CorridorChance)

		// Corridors never chain into corridors
		if corridor && source.IsCorridor {
			continue
		}

		w, h := candidateSize(cfg, src, corridor, dir)
		candidate := placeAdjacent(source.Rect, dir, w, h)

		if overlapsExisting(l.Structures, candidate, corridor) {
			continue
		}

		l.Structures = append(l.Structures, Structure{Rect: candidate, IsCorridor: corridor})
		door := doorBetween(source.Rect, candidate, dir, src)
		l.Doors.Add(door)
		l.Links = append(l.Links, Link{Door: door, From: source.Rect, To: candidate, Dir: dir})
	}

	l.AttemptsExhausted = l.Attempts >= cfg.MaxGenerationAttempts && len(l.Structures) < cfg.NumberOfRooms
}

// candidateSize draws the dimensions of a new room or corridor
func candidateSize(cfg *config.Config, src rng.Source, corridor bool, dir world.Direction) (w, h int) {
	if !corridor {
		w = rng.Range(src, cfg.MinRoomSize.W, cfg.MaxRoomSize.W)
		h = rng.Range(src, cfg.MinRoomSize.H, cfg.MaxRoomSize.H)
		return w, h
	}

	var vertical bool
	if cfg.CorridorFollowsDirection {
		vertical = dir.IsVertical()
	} else {
		vertical = src.Float64() > 0.5
	}

	if vertical {
		w = rng.Range(src, cfg.CorridorSize.Min, cfg.CorridorSize.Max)
		h = rng.Range(src, cfg.CorridorLength.Min, cfg.CorridorLength.Max)
	} else {
		w = rng.Range(src, cfg.CorridorLength.Min, cfg.CorridorLength.Max)
		h = rng.Range(src, cfg.CorridorSize.Min, cfg.CorridorSize.Max)
	}
	return w, h
}

// placeAdjacent positions a w x h rectangle one cell away from source in dir,
// centred on the source's perpendicular extent
func placeAdjacent(source world.Rect, dir world.Direction, w, h int) world.Rect {
	centredX := source.X + source.W/2 - w/2
	centredY := source.Y + source.H/2 - h/2

	switch dir {
	case world.North:
		return world.NewRect(centredX, source.MaxY()+1, w, h)
	case world.South:
		return world.NewRect(centredX, source.MinY()-h-1, w, h)
	case world.East:
		return world.NewRect(source.MaxX()+1, centredY, w, h)
	default:
		return world.NewRect(source.MinX()-w-1, centredY, w, h)
	}
}

// overlapsExisting reports whether candidate comes too close to an existing structure
func overlapsExisting(structures []Structure, candidate world.Rect, corridor bool) bool {
	buffered := candidate.Expand(structureBuffer)
	corridorBuffered := candidate.Expand(corridorBuffer)

	for _, existing := range structures {
		if existing.Rect.Overlaps(buffered) {
			return true
		}
		if corridor && existing.IsCorridor && existing.Rect.Overlaps(corridorBuffered) {
			return true
		}
	}
	return false
}

// doorBetween picks the door cell in the one-cell gap between a and b
func doorBetween(a, b world.Rect, dir world.Direction, src rng.Source) world.Cell {
	if dir.IsVertical() {
		x := spanPosition(max(a.MinX(), b.MinX()), min(a.MaxX(), b.MaxX()), src)
		y := a.MaxY()
		if dir == world.South {
			y = a.MinY() - 1
		}
		return world.C(x, y)
	}

	y := spanPosition(max(a.MinY(), b.MinY()), min(a.MaxY(), b.MaxY()), src)
	x := a.MaxX()
	if dir == world.West {
		x = a.MinX() - 1
	}
	return world.C(x, y)
}

// spanPosition picks a door coordinate within the overlap [lo, hi), keeping
// off the span's edges when it is wide enough
func spanPosition(lo, hi int, src rng.Source) int {
	if lo >= hi-1 {
		return lo
	}
	return rng.Range(src, lo+1, hi-1)
}
