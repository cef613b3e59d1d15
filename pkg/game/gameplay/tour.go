package gameplay

import (
	"math"

	"gallerycrawl/pkg/engine/world"
	"gallerycrawl/pkg/game/generator"
)

// Tour returns observer positions walking in straight lines between the
// centres of the given cells, spaced at most step apart. The positions include
// every waypoint centre. It does not avoid walls.
func Tour(waypoints []world.Cell, step float64) []Position {
	if len(waypoints) == 0 {
		return nil
	}
	if step <= 0 {
		step = 0.5
	}

	x, y := world.CellCenter(waypoints[0])
	positions := []Position{{X: x, Y: y}}

	for i := 1; i < len(waypoints); i++ {
		fromX, fromY := world.CellCenter(waypoints[i-1])
		toX, toY := world.CellCenter(waypoints[i])
		dist := math.Hypot(toX-fromX, toY-fromY)
		steps := int(math.Ceil(dist / step))
		for s := 1; s <= steps; s++ {
			f := float64(s) / float64(steps)
			positions = append(positions, Position{
				X: fromX + (toX-fromX)*f,
				Y: fromY + (toY-fromY)*f,
			})
		}
	}
	return positions
}

// TourWaypoints lists a visit of every structure in attachment order: the
// spawn cell, then for each door the source centre, the door and the
// target centre. Pruned structures have no links and are skipped.
func TourWaypoints(l *generator.Layout) []world.Cell {
	if len(l.Structures) == 0 {
		return nil
	}

	waypoints := []world.Cell{l.SpawnCell()}
	for _, link := range l.Links {
		from := link.From.CenterCell()
		if waypoints[len(waypoints)-1] != from {
			waypoints = append(waypoints, from)
		}
		waypoints = append(waypoints, link.Door, link.To.CenterCell())
	}
	return waypoints
}
