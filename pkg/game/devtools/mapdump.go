package devtools

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gallerycrawl/pkg/engine/world"
	"gallerycrawl/pkg/game/renderer"
	"gallerycrawl/pkg/game/state"
)

// MapDumpFilename is the default dump file name
const MapDumpFilename = "map.txt"

// ErrNoLayout is returned when a level has not been generated
var ErrNoLayout = errors.New("devtools: level has no layout")

// asciiSymbols maps renderer icons to single ASCII characters
var asciiSymbols = map[string]rune{
	renderer.IconObserver: '@',
	renderer.IconFloor:    '.',
	renderer.IconWall:     '#',
	renderer.IconDoor:     'D',
	renderer.IconExhibit:  'X',
	renderer.IconFog:      '~',
	renderer.IconVoid:     ' ',
}

// cellSymbol returns the single-character symbol for a cell
func cellSymbol(snap *renderer.Snapshot, c world.Cell) rune {
	icon, _ := snap.Glyph(c)
	if r, ok := asciiSymbols[icon]; ok {
		return r
	}
	return '?'
}

// writeMapGrid writes every cell of view, north at the top
func writeMapGrid(w io.Writer, snap *renderer.Snapshot, view world.Rect) {
	for y := view.MaxY() - 1; y >= view.MinY(); y-- {
		var sb strings.Builder
		for x := view.MinX(); x < view.MaxX(); x++ {
			sb.WriteRune(cellSymbol(snap, world.C(x, y)))
		}
		fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
	}
}

// WriteMapDump writes a debug dump of the level: metadata, legend, the map as
// the observer sees it, the full map, and structure/door/exhibit lists.
func WriteMapDump(w io.Writer, lvl *state.Level) error {
	if lvl == nil || lvl.Layout == nil {
		return ErrNoLayout
	}

	snap := renderer.NewSnapshot(lvl)
	full := renderer.NewSnapshot(lvl)
	full.Reveal = true

	view, ok := lvl.FogBounds()
	if !ok {
		view = world.NewRect(0, 0, 1, 1)
	}
	observer, hasObserver := lvl.Observer()

	fmt.Fprintln(w, "=== MAP DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "depth: %d\n", lvl.Depth)
	fmt.Fprintf(w, "theme: %s\n", lvl.Theme().Name())
	fmt.Fprintf(w, "seed: %d\n", lvl.Seed)
	fmt.Fprintf(w, "coordinate_system: x,y (x grows east, y grows north; top row is north)\n")
	fmt.Fprintf(w, "view_min: %d,%d\n", view.MinX(), view.MinY())
	fmt.Fprintf(w, "view_max: %d,%d\n", view.MaxX()-1, view.MaxY()-1)
	if hasObserver {
		fmt.Fprintf(w, "observer_cell: %d,%d\n", observer.X, observer.Y)
	}
	fmt.Fprintf(w, "spawn_cell: %d,%d\n", lvl.Layout.SpawnCell().X, lvl.Layout.SpawnCell().Y)
	fmt.Fprintf(w, "structures: %d (rooms %d, corridors %d)\n", len(lvl.Layout.Structures), lvl.Layout.RoomCount(), lvl.Layout.CorridorCount())
	fmt.Fprintf(w, "floor_cells: %d\n", lvl.Layout.Floor.Len())
	fmt.Fprintf(w, "wall_cells: %d\n", lvl.Walls.Len())
	fmt.Fprintf(w, "revealed_cells: %d\n", lvl.Revealed().Len())
	fmt.Fprintf(w, "generation_attempts: %d (exhausted: %v)\n", lvl.Layout.Attempts, lvl.Layout.AttemptsExhausted)
	fmt.Fprintf(w, "prune_passes: %d (removed: %d, cap_hit: %v)\n", lvl.Layout.Prune.Passes, lvl.Layout.Prune.Removed, lvl.Layout.Prune.CapHit)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, ". = floor  # = wall  D = door  X = exhibit  ~ = fog  @ = observer")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (as seen by the observer) ---")
	writeMapGrid(w, snap, view)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (fully revealed) ---")
	writeMapGrid(w, full, view)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Structures:")
	for i, s := range lvl.Layout.Structures {
		fmt.Fprintf(w, "  index: %d kind: %s x: %d y: %d w: %d h: %d name: %q\n", i, s.Kind(), s.Rect.X, s.Rect.Y, s.Rect.W, s.Rect.H, lvl.PlaceName(s.Rect.CenterCell()))
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Doors:")
	for _, d := range lvl.Layout.Doors.Cells() {
		fmt.Fprintf(w, "  x: %d y: %d\n", d.X, d.Y)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Exhibits:")
	for _, a := range lvl.Anchors {
		fmt.Fprintf(w, "  x: %d y: %d anchor: %g,%g\n", a.Cell.X, a.Cell.Y, a.X, a.Y)
	}
	fmt.Fprintln(w, "")

	if len(lvl.Problems) > 0 {
		fmt.Fprintln(w, "Problems:")
		for _, p := range lvl.Problems {
			fmt.Fprintf(w, "  %v\n", p)
		}
		fmt.Fprintln(w, "")
	}

	_, err := fmt.Fprintln(w, "=== END MAP DUMP ===")
	return err
}

// DumpMapToFile writes the map dump to path, or to map.txt in the working
// directory when path is empty, and returns the absolute path written
func DumpMapToFile(lvl *state.Level, path string) (string, error) {
	if path == "" {
		path = MapDumpFilename
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMapDump(f, lvl); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
