package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/leonelquinteros/gotext"

	"gallerycrawl/pkg/engine/input"
	"gallerycrawl/pkg/engine/logger"
	"gallerycrawl/pkg/engine/terminal"
	"gallerycrawl/pkg/engine/world"
	"gallerycrawl/pkg/game/config"
	"gallerycrawl/pkg/game/devtools"
	"gallerycrawl/pkg/game/gameplay"
	"gallerycrawl/pkg/game/generator"
	"gallerycrawl/pkg/game/renderer"
	"gallerycrawl/pkg/game/renderer/tui"
	"gallerycrawl/pkg/game/setup"
	"gallerycrawl/pkg/game/state"
)

func initGettext(locale string) {
	gotext.Configure("locales", locale, "default")
}

func main() {
	configFile := flag.String("config", "", "Path to level config YAML file")
	loggingConfig := flag.String("logging", "", "Path to logging config YAML file")
	seed := flag.Int64("seed", 0, "Level seed (default: from config, or random)")
	rooms := flag.Int("rooms", 0, "Number of structures to grow (default: from config)")
	radius := flag.Int("radius", 0, "Sight radius in cells (default: from config)")
	locale := flag.String("locale", "en_GB", "Locale for messages")
	tour := flag.Bool("tour", false, "Walk the observer through every structure before rendering")
	walk := flag.String("walk", "", "Route to walk from the spawn, e.g. nneew or north,east")
	explore := flag.Bool("explore", false, "Explore the level interactively with the keyboard")
	reveal := flag.Bool("reveal", false, "Render the whole layout, ignoring fog")
	devMap := flag.Bool("devmap", false, "Use the fixed developer layout instead of generating one")
	dumpFile := flag.String("dump", "", "Write a map dump to this file (map.txt if set to \"-\")")
	yamlFile := flag.String("yaml", "", "Write a YAML layout report to this file")
	screenshotDir := flag.String("screenshot", "", "Write an HTML screenshot into this directory")
	flag.Parse()

	logConfig, err := logger.LoadConfig(*loggingConfig)
	logger.Initialize(logConfig)
	if err != nil {
		logger.Warning("Using default logging config", "error", err)
	}

	initGettext(*locale)

	cfg, err := config.Load(*configFile)
	if err != nil {
		logger.Error("Failed to load level config", "path", *configFile, "error", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *rooms > 0 {
		cfg.NumberOfRooms = *rooms
	}
	if *radius > 0 {
		cfg.SightRadius = *radius
	}

	builder := &setup.Builder{
		Generator: generator.DefaultGenerator,
		Canvas:    world.NewGrid(),
		Spawner:   setup.SpawnFunc(logSpawn),
		Logger:    logger.Logger(),
	}
	if *devMap {
		builder.Generator = devtools.DevMap{}
	}

	lvl, err := builder.NewLevel(cfg)
	if err != nil {
		logger.Error("Failed to build level", "error", err)
		os.Exit(1)
	}

	if *walk != "" {
		walkRoute(lvl, *walk)
	}
	if *tour {
		walkTour(lvl)
	}

	r := tui.New()
	r.Reveal = *reveal
	renderer.SetRenderer(r)
	renderer.Init()

	if *explore {
		lvl = exploreLoop(builder, lvl, r)
	} else {
		renderer.RenderFrame(lvl)
	}

	writeOutputs(lvl, builder.Generator.Name(), *dumpFile, *yamlFile, *screenshotDir)
}

// logSpawn stands in for an engine spawner by logging every exhibit anchor
func logSpawn(template string, x, y float64) error {
	logger.Debug("Exhibit spawned", "template", template, "x", x, "y", y)
	return nil
}

func walkRoute(lvl *state.Level, route string) {
	dirs, err := input.ParseRoute(route)
	if err != nil {
		logger.Error("Invalid walk route", "route", route, "error", err)
		lvl.AddMessage(gotext.Get("Invalid route: %s", route))
		return
	}

	steps, revealed := gameplay.Walk(lvl.Fog, lvl.Layout.Floor, dirs)
	if steps < len(dirs) {
		lvl.AddMessage(gotext.Get("Walked %d of %d steps before hitting a wall.", steps, len(dirs)))
	}
	logger.Info("Route walked", "steps", steps, "revealed", len(revealed))
}

func walkTour(lvl *state.Level) {
	positions := gameplay.Tour(gameplay.TourWaypoints(lvl.Layout), 0.5)
	revealed := gameplay.FollowTour(lvl.Fog, positions)
	lvl.AddMessage(gotext.Get("Tour revealed %d cells.", revealed))
	logger.Info("Tour walked", "positions", len(positions), "revealed", revealed)
}

// exploreLoop renders and reads keys until the viewer quits, and returns
// the last level shown
func exploreLoop(builder *setup.Builder, lvl *state.Level, r *tui.TUIRenderer) *state.Level {
	if !terminal.IsInteractive() {
		logger.Warning("Explore mode needs an interactive terminal")
		renderer.RenderFrame(lvl)
		return lvl
	}

	for {
		renderer.Clear()
		renderer.RenderFrame(lvl)
		r.PrintKeyHelp()

		key, err := input.ReadKey()
		if err != nil {
			if !errors.Is(err, input.ErrNotTerminal) {
				logger.Error("Reading key failed", "error", err)
			}
			return lvl
		}

		intent := input.MapToIntent(key)
		if dir, ok := intent.Action.Direction(); ok {
			if moved, _ := gameplay.Move(lvl.Fog, lvl.Layout.Floor, dir); !moved {
				lvl.AddMessage(gotext.Get("A wall blocks the way."))
			}
			continue
		}

		switch intent.Action {
		case input.ActionResetLevel:
			lvl = replaceLevel(lvl, builder.ResetLevel)
		case input.ActionNextLevel:
			lvl = replaceLevel(lvl, builder.AdvanceLevel)
		case input.ActionQuit:
			return lvl
		}
	}
}

func replaceLevel(lvl *state.Level, next func(*state.Level) (*state.Level, error)) *state.Level {
	fresh, err := next(lvl)
	if err != nil {
		logger.Error("Failed to rebuild level", "error", err)
		return lvl
	}
	return fresh
}

func writeOutputs(lvl *state.Level, generatorName, dumpFile, yamlFile, screenshotDir string) {
	if dumpFile != "" {
		if dumpFile == "-" {
			dumpFile = devtools.MapDumpFilename
		}
		path, err := devtools.DumpMapToFile(lvl, dumpFile)
		if err != nil {
			logger.Error("Failed to write map dump", "error", err)
		} else {
			fmt.Println(gotext.Get("Map dump written to %s", path))
		}
	}

	if yamlFile != "" {
		if err := devtools.WriteLayoutYAML(lvl, generatorName, yamlFile); err != nil {
			logger.Error("Failed to write layout report", "error", err)
		} else {
			fmt.Println(gotext.Get("Layout report written to %s", yamlFile))
		}
	}

	if screenshotDir != "" {
		rows, cols := renderer.GetViewportSize()
		path, err := devtools.SaveScreenshotHTML(lvl, screenshotDir, rows, cols)
		if err != nil {
			logger.Error("Failed to write screenshot", "error", err)
		} else {
			fmt.Println(gotext.Get("Screenshot written to %s", path))
		}
	}
}
