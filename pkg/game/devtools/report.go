package devtools

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gallerycrawl/pkg/game/state"
)

// RectReport is a structure rectangle in a layout report
type RectReport struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	W    int    `yaml:"w"`
	H    int    `yaml:"h"`
}

// PointReport is a single cell in a layout report
type PointReport struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// LayoutReport summarises a generated level for inspection. It is an export
// format only; levels are never loaded back from it.
type LayoutReport struct {
	Seed      int64  `yaml:"seed"`
	Depth     int    `yaml:"depth"`
	Theme     string `yaml:"theme"`
	Generator string `yaml:"generator,omitempty"`

	Attempts          int  `yaml:"attempts"`
	AttemptsExhausted bool `yaml:"attempts_exhausted"`
	PrunePasses       int  `yaml:"prune_passes"`
	Pruned            int  `yaml:"pruned"`
	PruneCapHit       bool `yaml:"prune_cap_hit"`

	FloorCells    int `yaml:"floor_cells"`
	WallCells     int `yaml:"wall_cells"`
	RevealedCells int `yaml:"revealed_cells"`

	Spawn      PointReport   `yaml:"spawn"`
	Structures []RectReport  `yaml:"structures"`
	Doors      []PointReport `yaml:"doors"`
	Exhibits   []PointReport `yaml:"exhibits"`
	Problems   []string      `yaml:"problems,omitempty"`
}

// NewLayoutReport builds the report for a level
func NewLayoutReport(lvl *state.Level, generatorName string) (*LayoutReport, error) {
	if lvl == nil || lvl.Layout == nil {
		return nil, ErrNoLayout
	}

	l := lvl.Layout
	spawn := l.SpawnCell()
	r := &LayoutReport{
		Seed:              lvl.Seed,
		Depth:             lvl.Depth,
		Theme:             lvl.Theme().Name(),
		Generator:         generatorName,
		Attempts:          l.Attempts,
		AttemptsExhausted: l.AttemptsExhausted,
		PrunePasses:       l.Prune.Passes,
		Pruned:            l.Prune.Removed,
		PruneCapHit:       l.Prune.CapHit,
		FloorCells:        l.Floor.Len(),
		WallCells:         lvl.Walls.Len(),
		RevealedCells:     lvl.Revealed().Len(),
		Spawn:             PointReport{X: spawn.X, Y: spawn.Y},
	}

	for _, s := range l.Structures {
		r.Structures = append(r.Structures, RectReport{Name: lvl.PlaceName(s.Rect.CenterCell()), Kind: s.Kind(), X: s.Rect.X, Y: s.Rect.Y, W: s.Rect.W, H: s.Rect.H})
	}
	for _, d := range l.Doors.Cells() {
		r.Doors = append(r.Doors, PointReport{X: d.X, Y: d.Y})
	}
	for _, e := range lvl.Exhibits {
		r.Exhibits = append(r.Exhibits, PointReport{X: e.X, Y: e.Y})
	}
	for _, p := range lvl.Problems {
		r.Problems = append(r.Problems, p.Error())
	}
	return r, nil
}

// WriteLayoutYAML writes the layout report for a level to path
func WriteLayoutYAML(lvl *state.Level, generatorName, path string) error {
	report, err := NewLayoutReport(lvl, generatorName)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encoding layout report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing layout report: %w", err)
	}
	return nil
}
