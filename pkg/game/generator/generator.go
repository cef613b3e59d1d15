// Package generator grows the room and corridor graph of a level.
package generator

import (
	"log/slog"

	"gallerycrawl/pkg/engine/logger"
	"gallerycrawl/pkg/engine/rng"
	"gallerycrawl/pkg/game/config"
)

// LayoutGenerator is an interface for layout generation algorithms
type LayoutGenerator interface {
	Generate(cfg *config.Config, src rng.Source) *Layout
	Name() string
}

// Available generators
var (
	Growth = &GrowthGenerator{}
)

// DefaultGenerator is the default layout generator
var DefaultGenerator LayoutGenerator = Growth

// log returns the generator's logger, falling back to the package logger
func (g *GrowthGenerator) log() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return logger.Logger()
}
