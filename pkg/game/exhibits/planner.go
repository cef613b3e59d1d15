// Package exhibits plans exhibit anchor points inside the rooms of a layout.
package exhibits

import (
	"math"

	"gallerycrawl/pkg/engine/world"
	"gallerycrawl/pkg/game/generator"
)

// aspectThreshold separates wide and tall rooms from roughly square ones
const aspectThreshold = 1.5

// Spacing holds the placement distances
type Spacing struct {
	Wall    int // inset from the room edge for pattern points
	Exhibit int // minimum distance between exhibits
	Door    int // minimum distance from any door
}

// Shape classifies a spawnable area
type Shape int

const (
	Square Shape = iota
	Wide
	Tall
)

// String returns the shape name
func (s Shape) String() string {
	switch s {
	case Wide:
		return "wide"
	case Tall:
		return "tall"
	default:
		return "square"
	}
}

// Classify returns the shape of r by aspect ratio
func Classify(r world.Rect) Shape {
	switch {
	case float64(r.H) > float64(r.W)*aspectThreshold:
		return Tall
	case float64(r.W) > float64(r.H)*aspectThreshold:
		return Wide
	default:
		return Square
	}
}

// Planner accumulates accepted exhibit points for one layout
type Planner struct {
	layout  *generator.Layout
	spacing Spacing
	points  []world.Cell
}

// NewPlanner creates a planner for the given layout
func NewPlanner(layout *generator.Layout, spacing Spacing) *Planner {
	return &Planner{layout: layout, spacing: spacing}
}

// Plan runs the pattern phase and then the fill phase, returning every
// accepted point in acceptance order.
func Plan(layout *generator.Layout, spacing Spacing) []world.Cell {
	p := NewPlanner(layout, spacing)
	p.PlacePatterns()
	p.FillEmptyRooms()
	return p.Points()
}

// Points returns the accepted points
func (p *Planner) Points() []world.Cell {
	out := make([]world.Cell, len(p.points))
	copy(out, p.points)
	return out
}

// exhibitRooms returns every non-corridor structure except the starting room
func (p *Planner) exhibitRooms() []generator.Structure {
	var rooms []generator.Structure
	for i, s := range p.layout.Structures {
		if i == 0 || s.IsCorridor {
			continue
		}
		rooms = append(rooms, s)
	}
	return rooms
}

// PlacePatterns proposes line or corner patterns in every exhibit room and
// keeps the candidates that satisfy the placement rule
func (p *Planner) PlacePatterns() {
	for _, room := range p.exhibitRooms() {
		bounds := room.Rect.Expand(-p.spacing.Wall)
		if !bounds.Valid() {
			continue
		}
		for _, candidate := range p.candidates(bounds) {
			p.TryAccept(candidate)
		}
	}
}

// candidates returns the pattern points for a spawnable area
func (p *Planner) candidates(bounds world.Rect) []world.Cell {
	var points []world.Cell
	step := max(p.spacing.Exhibit, 1)

	switch Classify(bounds) {
	case Tall:
		left, right := bounds.MinX(), bounds.MaxX()-1
		for y := bounds.MinY(); y < bounds.MaxY(); y += step {
			points = append(points, world.C(left, y), world.C(right, y))
		}
	case Wide:
		bottom, top := bounds.MinY(), bounds.MaxY()-1
		for x := bounds.MinX(); x < bounds.MaxX(); x += step {
			points = append(points, world.C(x, bottom), world.C(x, top))
		}
	default:
		mid := bounds.CenterCell()
		half := int(math.Ceil(float64(p.spacing.Exhibit) / 2))
		points = append(points,
			world.C(mid.X-half, mid.Y-half),
			world.C(mid.X+half, mid.Y-half),
			world.C(mid.X-half, mid.Y+half),
			world.C(mid.X+half, mid.Y+half),
		)
	}
	return points
}

// FillEmptyRooms tries the centre of every exhibit room that has no point yet
func (p *Planner) FillEmptyRooms() {
	for _, room := range p.exhibitRooms() {
		if p.hasPointIn(room.Rect) {
			continue
		}
		p.TryAccept(room.Rect.CenterCell())
	}
}

func (p *Planner) hasPointIn(r world.Rect) bool {
	for _, pt := range p.points {
		if r.Contains(pt) {
			return true
		}
	}
	return false
}

// CanPlace reports whether a point keeps its distance from every door and
// accepted exhibit and lies on the floor
func (p *Planner) CanPlace(c world.Cell) bool {
	doorMin := float64(p.spacing.Door)
	tooClose := false
	p.layout.Doors.Each(func(door world.Cell) {
		if !tooClose && c.Distance(door) < doorMin {
			tooClose = true
		}
	})
	if tooClose {
		return false
	}

	exhibitMin := float64(p.spacing.Exhibit)
	for _, pt := range p.points {
		if c.Distance(pt) < exhibitMin {
			return false
		}
	}

	return p.layout.Floor.Has(c)
}

// TryAccept adds the point if CanPlace allows it
func (p *Planner) TryAccept(c world.Cell) bool {
	if !p.CanPlace(c) {
		return false
	}
	p.points = append(p.points, c)
	return true
}
