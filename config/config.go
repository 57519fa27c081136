package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/sector-atlas/parameter"
)

// Settings is the small persisted state: the gravity tunable plus the
// last view and coordinate modes. Read at startup, written on every
// change.
type Settings struct {
	GravityStrength float64 `toml:"gravity_strength"`
	ViewMode        string  `toml:"view_mode"`       // "3d" or "flat"
	CoordinateMode  string  `toml:"coordinate_mode"` // "linear" or "geodesic"
}

// Default returns the out-of-box settings
func Default() Settings {
	return Settings{
		GravityStrength: parameter.GravityDefault,
		ViewMode:        "3d",
		CoordinateMode:  "geodesic",
	}
}

// Dir resolves the settings directory: $XDG_CONFIG_HOME/sector-atlas,
// falling back to ~/.config/sector-atlas
func Dir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "sector-atlas")
}

// DefaultPath is the fixed settings file location
func DefaultPath() string {
	return filepath.Join(Dir(), "settings.toml")
}

// Load reads settings, returning defaults when the file is missing or
// unreadable. Settings are not worth failing startup over.
func Load(path string) Settings {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return Default()
	}

	if s.GravityStrength < 0 {
		s.GravityStrength = 0
	}
	if s.GravityStrength > 1 {
		s.GravityStrength = 1
	}
	return s
}

// Save writes settings atomically
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("settings dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".settings-*.toml")
	if err != nil {
		return fmt.Errorf("settings temp file: %w", err)
	}

	if err := toml.NewEncoder(tmp).Encode(s); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close settings temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace settings: %w", err)
	}
	return nil
}
