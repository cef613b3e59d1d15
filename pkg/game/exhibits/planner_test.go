package exhibits

import (
	"testing"

	"gallerycrawl/pkg/engine/logger"
	"gallerycrawl/pkg/engine/rng"
	"gallerycrawl/pkg/engine/world"
	"gallerycrawl/pkg/game/config"
	"gallerycrawl/pkg/game/generator"
)

var defaultSpacing = Spacing{Wall: 5, Exhibit: 5, Door: 5}

// layoutOf builds a floored layout from a starting room plus extra structures
func layoutOf(doors []world.Cell, structures ...generator.Structure) *generator.Layout {
	l := generator.NewLayout()
	l.Structures = append([]generator.Structure{{Rect: world.NewRect(-60, -60, 10, 10)}}, structures...)
	for _, d := range doors {
		l.Doors.Add(d)
	}
	l.RebuildFloor()
	return l
}

func room(x, y, w, h int) generator.Structure {
	return generator.Structure{Rect: world.NewRect(x, y, w, h)}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		rect world.Rect
		want Shape
	}{
		{world.NewRect(0, 0, 10, 10), Square},
		{world.NewRect(0, 0, 15, 10), Square},
		{world.NewRect(0, 0, 16, 10), Wide},
		{world.NewRect(0, 0, 10, 16), Tall},
		{world.NewRect(0, 0, 1, 1), Square},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			if got := Classify(tt.rect); got != tt.want {
				t.Errorf("Classify(%+v) = %v, want %v", tt.rect, got, tt.want)
			}
		})
	}
}

func TestPlan_SquareRoomGetsFourCorners(t *testing.T) {
	l := layoutOf(nil, room(100, 100, 25, 25))
	got := Plan(l, defaultSpacing)
	want := []world.Cell{
		world.C(109, 109), world.C(115, 109),
		world.C(109, 115), world.C(115, 115),
	}
	if len(got) != len(want) {
		t.Fatalf("Plan = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPlan_TallRoomLinesRespectSpacing(t *testing.T) {
	l := layoutOf(nil, room(0, 100, 15, 30))
	got := Plan(l, defaultSpacing)
	want := []world.Cell{world.C(5, 105), world.C(5, 110), world.C(5, 115), world.C(5, 120)}
	if len(got) != len(want) {
		t.Fatalf("Plan = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPlan_WideRoomUsesTopAndBottom(t *testing.T) {
	l := layoutOf(nil, room(0, 100, 40, 16))
	got := Plan(l, defaultSpacing)
	if len(got) == 0 {
		t.Fatal("Plan returned no points for a wide room")
	}
	for _, pt := range got {
		if pt.Y != 105 && pt.Y != 110 {
			t.Errorf("point %v is not on the inset top/bottom lines", pt)
		}
	}
}

func TestPlan_SkipsStartRoomAndCorridors(t *testing.T) {
	l := generator.NewLayout()
	l.Structures = []generator.Structure{
		{Rect: world.NewRect(0, 0, 25, 25)},
		{Rect: world.NewRect(30, 0, 25, 25), IsCorridor: true},
	}
	l.RebuildFloor()
	if got := Plan(l, defaultSpacing); len(got) != 0 {
		t.Errorf("Plan = %v, want no points", got)
	}
}

func TestPlan_FillPhaseUsesRoomCentre(t *testing.T) {
	// An 8x8 room has no inset with a wall spacing of 5
	l := layoutOf(nil, room(200, 200, 8, 8))
	got := Plan(l, defaultSpacing)
	if len(got) != 1 || got[0] != world.C(204, 204) {
		t.Errorf("Plan = %v, want [204,204]", got)
	}
}

func TestPlan_FillPhaseLeavesRoomEmptyNearDoor(t *testing.T) {
	l := layoutOf([]world.Cell{world.C(204, 207)}, room(200, 200, 8, 8))
	if got := Plan(l, defaultSpacing); len(got) != 0 {
		t.Errorf("Plan = %v, want no points", got)
	}
}

func TestCanPlace_Rules(t *testing.T) {
	l := layoutOf([]world.Cell{world.C(110, 99)}, room(100, 100, 25, 25))
	p := NewPlanner(l, defaultSpacing)

	if p.CanPlace(world.C(110, 102)) {
		t.Error("accepted a point 3 cells from a door")
	}
	if !p.CanPlace(world.C(110, 104)) {
		t.Error("rejected a point exactly 5 cells from a door")
	}
	if p.CanPlace(world.C(99, 110)) {
		t.Error("accepted a point off the floor")
	}
	if !p.TryAccept(world.C(115, 115)) {
		t.Fatal("TryAccept rejected a valid point")
	}
	if p.CanPlace(world.C(118, 118)) {
		t.Error("accepted a point closer than the exhibit spacing")
	}
}

func TestPlan_GeneratedLayoutsHoldInvariants(t *testing.T) {
	gen := &generator.GrowthGenerator{Logger: logger.Discard()}
	for seed := int64(1); seed <= 25; seed++ {
		cfg := config.Default()
		l := gen.Generate(cfg, rng.New(seed))
		spacing := Spacing{Wall: cfg.ExhibitWallSpacing, Exhibit: cfg.ExhibitMinSpacing, Door: cfg.DoorMinSpacing}
		points := Plan(l, spacing)

		for i, pt := range points {
			if !l.Floor.Has(pt) {
				t.Errorf("seed %d: point %v off the floor", seed, pt)
			}
			l.Doors.Each(func(d world.Cell) {
				if pt.Distance(d) < float64(spacing.Door) {
					t.Errorf("seed %d: point %v within %d of door %v", seed, pt, spacing.Door, d)
				}
			})
			for j := i + 1; j < len(points); j++ {
				if pt.Distance(points[j]) < float64(spacing.Exhibit) {
					t.Errorf("seed %d: points %v and %v too close", seed, pt, points[j])
				}
			}
			start, _ := l.StartRoom()
			if start.Rect.Contains(pt) {
				t.Errorf("seed %d: point %v in the starting room", seed, pt)
			}
		}
	}
}
