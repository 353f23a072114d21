package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ResolvePath returns the configuration file location for a run rooted at dir.
func ResolvePath(dir string) string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}
	return filepath.Join(dir, DefaultFileName)
}

// Load reads a YAML file from the given path and returns a new Manager.
// A missing file yields the default configuration; nothing is written to disk.
func Load(path string) (*Manager, error) {
	cfg := createDefaultConfig()

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("Config file not found, using defaults", "path", path)
		return NewManager(cfg), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	// Fields absent from the file keep their default values.
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	slog.Debug("Config loaded", "path", path)
	return NewManager(cfg), nil
}
