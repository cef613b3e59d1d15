package setup

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"gallerycrawl/pkg/game/config"
	"gallerycrawl/pkg/game/state"
	"gallerycrawl/pkg/game/wing"
)

// NewLevel builds the first wing and posts the opening messages
func (b *Builder) NewLevel(cfg *config.Config) (*state.Level, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	lvl, err := b.Build(wing.Scale(cfg, 1))
	if err != nil {
		return nil, err
	}
	lvl.Base = cfg
	lvl.Depth = 1

	lvl.ClearMessages()
	lvl.AddMessage(gotext.Get("Welcome to the gallery."))
	ShowLevelObjectives(lvl)
	return lvl, nil
}

// ResetLevel rebuilds the current wing from its seed, forgetting every
// revealed cell
func (b *Builder) ResetLevel(lvl *state.Level) (*state.Level, error) {
	cfg := *lvl.Config
	cfg.Seed = lvl.Seed

	next, err := b.Build(&cfg)
	if err != nil {
		return nil, fmt.Errorf("resetting level: %w", err)
	}
	next.Base = lvl.Base
	next.Depth = lvl.Depth

	next.ClearMessages()
	next.AddMessage(gotext.Get("Level reset!"))
	ShowLevelObjectives(next)
	return next, nil
}

// AdvanceLevel generates the next, larger wing from a fresh seed. On the last
// wing the level is returned unchanged with a message.
func (b *Builder) AdvanceLevel(lvl *state.Level) (*state.Level, error) {
	depth := wing.Next(lvl.Depth)
	if depth == 0 {
		lvl.AddMessage(gotext.Get("This is the last wing of the gallery."))
		return lvl, nil
	}

	base := lvl.Base
	if base == nil {
		base = lvl.Config
	}
	cfg := wing.Scale(base, depth)
	cfg.Seed = 0

	next, err := b.Build(cfg)
	if err != nil {
		return nil, fmt.Errorf("advancing level: %w", err)
	}
	next.Base = base
	next.Depth = depth

	next.ClearMessages()
	next.AddMessage(gotext.Get("You moved to wing %d.", next.Depth))
	ShowLevelObjectives(next)
	return next, nil
}

// ShowLevelObjectives posts the wing theme and the exhibit and room counts
func ShowLevelObjectives(lvl *state.Level) {
	lvl.AddMessage(gotext.Get("This wing shows %s.", lvl.Theme().Name()))
	if len(lvl.Exhibits) > 0 {
		lvl.AddMessage(gotext.Get("Find %d exhibit(s) across %d room(s).", len(lvl.Exhibits), lvl.Layout.RoomCount()))
		return
	}
	lvl.AddMessage(gotext.Get("This wing has no exhibits."))
}
