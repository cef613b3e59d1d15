// Package config holds the per-run level generation settings.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("config: invalid value")

// Size is a width/height pair
type Size struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// MinMax is a half-open integer range [Min, Max)
type MinMax struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Config holds every setting that drives one generation run.
type Config struct {
	// Seed for the random source. 0 means a seed is derived from the clock.
	Seed int64 `yaml:"seed"`

	// NumberOfRooms is the target structure count, corridors included.
	NumberOfRooms int `yaml:"number_of_rooms"`

	// MinRoomSize and MaxRoomSize bound room dimensions; the max is exclusive.
	MinRoomSize Size `yaml:"min_room_size"`
	MaxRoomSize Size `yaml:"max_room_size"`

	// MaxGenerationAttempts caps the growth loop.
	MaxGenerationAttempts int `yaml:"max_generation_attempts"`

	// CorridorChance is the probability in [0,1] that a growth attempt builds a corridor.
	CorridorChance float64 `yaml:"corridor_chance"`

	// CorridorSize is the thin side of a corridor, CorridorLength the long side.
	CorridorSize   MinMax `yaml:"corridor_size"`
	CorridorLength MinMax `yaml:"corridor_length"`

	// CorridorFollowsDirection lays the long side of a corridor along the growth
	// direction instead of picking the orientation at random.
	CorridorFollowsDirection bool `yaml:"corridor_follows_direction"`

	ExhibitWallSpacing int `yaml:"exhibit_wall_spacing"`
	ExhibitMinSpacing  int `yaml:"exhibit_min_spacing"`
	DoorMinSpacing     int `yaml:"door_min_spacing"`

	// ExhibitTemplate names what the spawn sink instantiates at each exhibit point.
	ExhibitTemplate string `yaml:"exhibit_template"`

	SightRadius int `yaml:"sight_radius"`

	// FogBuffer is how far past the floor bounds the initial fog extends.
	FogBuffer int `yaml:"fog_buffer"`
}

// Default returns the stock generation settings
func Default() *Config {
	return &Config{
		NumberOfRooms:         20,
		MinRoomSize:           Size{W: 15, H: 15},
		MaxRoomSize:           Size{W: 25, H: 25},
		MaxGenerationAttempts: 1000,
		CorridorChance:        0.3,
		CorridorSize:          MinMax{Min: 2, Max: 4},
		CorridorLength:        MinMax{Min: 15, Max: 25},
		ExhibitWallSpacing:    5,
		ExhibitMinSpacing:     5,
		DoorMinSpacing:        5,
		ExhibitTemplate:       "exhibit",
		SightRadius:           8,
		FogBuffer:             5,
	}
}

// Load reads a YAML file over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return Default(), fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every dimensional setting and returns all problems at once
func (c *Config) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, name, v))
		}
	}

	positive("number_of_rooms", c.NumberOfRooms)
	positive("min_room_size.w", c.MinRoomSize.W)
	positive("min_room_size.h", c.MinRoomSize.H)
	positive("max_room_size.w", c.MaxRoomSize.W)
	positive("max_room_size.h", c.MaxRoomSize.H)
	positive("max_generation_attempts", c.MaxGenerationAttempts)
	positive("corridor_size.min", c.CorridorSize.Min)
	positive("corridor_size.max", c.CorridorSize.Max)
	positive("corridor_length.min", c.CorridorLength.Min)
	positive("corridor_length.max", c.CorridorLength.Max)
	positive("exhibit_min_spacing", c.ExhibitMinSpacing)
	positive("sight_radius", c.SightRadius)

	if c.ExhibitWallSpacing < 0 {
		errs = append(errs, fmt.Errorf("%w: exhibit_wall_spacing must not be negative, got %d", ErrInvalid, c.ExhibitWallSpacing))
	}
	if c.DoorMinSpacing < 0 {
		errs = append(errs, fmt.Errorf("%w: door_min_spacing must not be negative, got %d", ErrInvalid, c.DoorMinSpacing))
	}
	if c.FogBuffer < 0 {
		errs = append(errs, fmt.Errorf("%w: fog_buffer must not be negative, got %d", ErrInvalid, c.FogBuffer))
	}
	if c.CorridorChance < 0 || c.CorridorChance > 1 {
		errs = append(errs, fmt.Errorf("%w: corridor_chance must be within [0,1], got %g", ErrInvalid, c.CorridorChance))
	}
	if c.MaxRoomSize.W < c.MinRoomSize.W || c.MaxRoomSize.H < c.MinRoomSize.H {
		errs = append(errs, fmt.Errorf("%w: max_room_size must not be smaller than min_room_size", ErrInvalid))
	}
	if c.CorridorSize.Max < c.CorridorSize.Min {
		errs = append(errs, fmt.Errorf("%w: corridor_size max below min", ErrInvalid))
	}
	if c.CorridorLength.Max < c.CorridorLength.Min {
		errs = append(errs, fmt.Errorf("%w: corridor_length max below min", ErrInvalid))
	}

	return errors.Join(errs...)
}
