// Package wing defines the themed wings of the gallery. Each level is one
// wing; wings cycle through themes and grow larger the deeper the viewer goes.
package wing

import (
	"github.com/leonelquinteros/gotext"

	"gallerycrawl/pkg/game/config"
)

// Theme is the collection shown in a wing
type Theme int

const (
	Sculpture Theme = iota
	Paintings
	Antiquities
	NaturalHistory
	Textiles
	Modern
)

// themeCount is the number of themes (for cycling).
const themeCount = 6

// TotalWings is the fixed number of wings in the gallery
const TotalWings = 10

// ThemeFor returns the theme for the given wing depth (1-based)
func ThemeFor(depth int) Theme {
	if depth <= 0 {
		return Sculpture
	}
	return Theme((depth - 1) % themeCount)
}

// IsFinal returns true if depth is the last wing
func IsFinal(depth int) bool {
	return depth >= TotalWings
}

// Next returns the next wing depth, or 0 if depth is the last wing
func Next(depth int) int {
	if depth <= 0 || depth >= TotalWings {
		return 0
	}
	return depth + 1
}

// Name returns the translated theme name. Uses gotext.Get with constant keys
// to satisfy vet.
func (t Theme) Name() string {
	switch t {
	case Sculpture:
		return gotext.Get("Sculpture")
	case Paintings:
		return gotext.Get("Paintings")
	case Antiquities:
		return gotext.Get("Antiquities")
	case NaturalHistory:
		return gotext.Get("Natural History")
	case Textiles:
		return gotext.Get("Textiles")
	default:
		return gotext.Get("Modern Art")
	}
}

// Scale returns a copy of base sized for the given depth: two more
// structures per wing after the first, and corridors slightly more likely,
// capped at 0.6.
func Scale(base *config.Config, depth int) *config.Config {
	cfg := *base
	if depth <= 1 {
		return &cfg
	}

	extra := depth - 1
	cfg.NumberOfRooms += 2 * extra

	chance := cfg.CorridorChance + 0.03*float64(extra)
	if chance > 0.6 {
		chance = 0.6
	}
	if chance > cfg.CorridorChance {
		cfg.CorridorChance = chance
	}
	return &cfg
}

// roomNames returns thematic room names for a theme
func roomNames(t Theme) []string {
	switch t {
	case Sculpture:
		return []string{"Marble Court", "Bronze Hall", "Plaster Cast Room", "Rotunda", "Statue Gallery", "Relief Room"}
	case Paintings:
		return []string{"Long Gallery", "Portrait Room", "Landscape Hall", "Altarpiece Chapel", "Print Room", "Miniatures Cabinet"}
	case Antiquities:
		return []string{"Tomb Chamber", "Amphora Store", "Coin Cabinet", "Mosaic Hall", "Papyrus Room", "Temple Court"}
	case NaturalHistory:
		return []string{"Fossil Hall", "Mineral Vault", "Bird Gallery", "Whale Hall", "Insect Room", "Herbarium"}
	case Textiles:
		return []string{"Tapestry Hall", "Costume Room", "Loom Gallery", "Carpet Court", "Lace Cabinet", "Dye Room"}
	default:
		return []string{"White Cube", "Video Room", "Installation Hall", "Pop Art Gallery", "Sound Room", "Light Court"}
	}
}

// RoomName returns a stable name for the room at a structure index. Names
// repeat with a number once a theme's list is used up.
func RoomName(t Theme, seed int64, index int) string {
	names := roomNames(t)
	offset := int(uint64(seed) % uint64(len(names)))
	i := (index + offset) % len(names)
	round := index / len(names)
	if round == 0 {
		return names[i]
	}
	return gotext.Get("%s %d", names[i], round+1)
}
