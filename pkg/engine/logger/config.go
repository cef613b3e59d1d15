package logger

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds logging configuration
type Config struct {
	Level          string `yaml:"level"`
	Format         string `yaml:"format"`
	FileEnabled    bool   `yaml:"file_enabled"`
	FilePath       string `yaml:"file_path"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

// fileConfig is the top-level YAML document shape
type fileConfig struct {
	Logging Config `yaml:"logging"`
}

// DefaultConfig returns console-only text logging at INFO
func DefaultConfig() Config {
	return Config{
		Level:          "INFO",
		Format:         "text",
		FileEnabled:    false,
		FilePath:       "logs/gallerycrawl.log",
		FileMaxSizeMB:  10,
		FileMaxBackups: 3,
		FileMaxAgeDays: 14,
	}
}

// LoadConfig reads the `logging:` block of a YAML file over the defaults and
// applies LOG_LEVEL, LOG_FORMAT, LOG_FILE_ENABLED and LOG_FILE_PATH overrides.
// A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			var fc fileConfig
			if err := yaml.Unmarshal(data, &fc); err != nil {
				return config, fmt.Errorf("logger: parsing %s: %w", path, err)
			}
			merge(&config, fc.Logging)
		case !os.IsNotExist(err):
			return config, fmt.Errorf("logger: reading %s: %w", path, err)
		}
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		config.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		config.Format = v
	}
	if v := os.Getenv("LOG_FILE_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			config.FileEnabled = enabled
		}
	}
	if v := os.Getenv("LOG_FILE_PATH"); v != "" {
		config.FilePath = v
	}

	return config, nil
}

func merge(dst *Config, src Config) {
	if src.Level != "" {
		dst.Level = src.Level
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	dst.FileEnabled = src.FileEnabled
	if src.FilePath != "" {
		dst.FilePath = src.FilePath
	}
	if src.FileMaxSizeMB > 0 {
		dst.FileMaxSizeMB = src.FileMaxSizeMB
	}
	if src.FileMaxBackups > 0 {
		dst.FileMaxBackups = src.FileMaxBackups
	}
	if src.FileMaxAgeDays > 0 {
		dst.FileMaxAgeDays = src.FileMaxAgeDays
	}
}
