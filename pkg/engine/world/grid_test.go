package world

import "testing"

func TestGrid_Layers(t *testing.T) {
	g := NewGrid()
	c := C(3, -2)

	g.SetFloor(c)
	g.SetFog(c)
	if !g.HasFloor(c) || !g.HasFog(c) {
		t.Fatalf("layers = %b, want floor and fog", g.Get(c))
	}
	if g.HasWall(c) {
		t.Error("HasWall = true on a floor cell")
	}

	g.ClearFog(c)
	if g.HasFog(c) {
		t.Error("fog survived ClearFog")
	}
	if !g.HasFloor(c) {
		t.Error("ClearFog removed the floor")
	}
}

func TestGrid_ClearFogOnEmptyCell(t *testing.T) {
	g := NewGrid()
	g.ClearFog(C(100, 100))
	if g.Count(LayerFog) != 0 {
		t.Error("ClearFog on an empty cell painted something")
	}
}

func TestGrid_ClearAll(t *testing.T) {
	g := NewGrid()
	g.SetWall(C(0, 0))
	g.SetFloor(C(1, 0))
	g.ClearAll()
	if g.Count(LayerWall|LayerFloor|LayerFog) != 0 {
		t.Error("ClearAll left tiles behind")
	}
}

func TestGrid_BoundsAndCount(t *testing.T) {
	g := NewGrid()
	NewRect(-2, -1, 4, 3).ForEachCell(g.SetFloor)
	g.SetWall(C(10, 10))

	if got := g.Count(LayerFloor); got != 12 {
		t.Errorf("Count(floor) = %d, want 12", got)
	}
	b, ok := g.Bounds(LayerFloor)
	if !ok || b != NewRect(-2, -1, 4, 3) {
		t.Errorf("Bounds(floor) = %+v, %v", b, ok)
	}
	if _, ok := g.Bounds(LayerFog); ok {
		t.Error("Bounds(fog) reported a rectangle for an empty layer")
	}
}

func TestGrid_IsOccluder(t *testing.T) {
	var _ Canvas = NewGrid()
	g := NewGrid()
	g.SetWall(C(1, 0))
	if HasLineOfSight(g, C(0, 0), C(2, 0)) {
		t.Error("grid wall did not block line of sight")
	}
}
