package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, want nil", err)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err != nil {
		t.Fatalf("Load returned error for missing file: %v", err)
	}
	if cfg.NumberOfRooms != 20 {
		t.Errorf("NumberOfRooms = %d, want 20", cfg.NumberOfRooms)
	}
	if cfg.SightRadius != 8 {
		t.Errorf("SightRadius = %d, want 8", cfg.SightRadius)
	}
}

func TestLoad_OverlaysYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.yaml")
	content := `
seed: 1234
number_of_rooms: 5
min_room_size: {w: 10, h: 12}
corridor_chance: 0.5
sight_radius: 3
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 1234 {
		t.Errorf("Seed = %d, want 1234", cfg.Seed)
	}
	if cfg.NumberOfRooms != 5 {
		t.Errorf("NumberOfRooms = %d, want 5", cfg.NumberOfRooms)
	}
	if cfg.MinRoomSize != (Size{W: 10, H: 12}) {
		t.Errorf("MinRoomSize = %+v, want {10 12}", cfg.MinRoomSize)
	}
	if cfg.CorridorChance != 0.5 {
		t.Errorf("CorridorChance = %g, want 0.5", cfg.CorridorChance)
	}
	// Untouched keys keep their defaults
	if cfg.MaxRoomSize != (Size{W: 25, H: 25}) {
		t.Errorf("MaxRoomSize = %+v, want default {25 25}", cfg.MaxRoomSize)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("number_of_rooms: [oops"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatal("Load returned nil error for malformed YAML")
	}
	if cfg == nil || cfg.NumberOfRooms != 20 {
		t.Error("Load should fall back to defaults on parse error")
	}
}

func TestValidate_ReportsEveryField(t *testing.T) {
	cfg := Default()
	cfg.NumberOfRooms = 0
	cfg.SightRadius = -1
	cfg.CorridorChance = 1.5

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("errors.Is(err, ErrInvalid) = false")
	}
	for _, field := range []string{"number_of_rooms", "sight_radius", "corridor_chance"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not mention %s", err, field)
		}
	}
}

func TestValidate_RangeOrder(t *testing.T) {
	cfg := Default()
	cfg.CorridorLength = MinMax{Min: 10, Max: 5}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() accepted corridor_length max below min")
	}
}
