package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/sector-atlas/parameter"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "none.toml"))
	if s.GravityStrength != parameter.GravityDefault {
		t.Errorf("Expected default gravity %v, got %v", parameter.GravityDefault, s.GravityStrength)
	}
	if s.ViewMode != "3d" || s.CoordinateMode != "geodesic" {
		t.Errorf("Unexpected default modes: %+v", s)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")

	in := Settings{GravityStrength: 0.85, ViewMode: "flat", CoordinateMode: "linear"}
	if err := Save(path, in); err != nil {
		t.Fatal(err)
	}

	out := Load(path)
	if out != in {
		t.Errorf("Roundtrip mismatch: %+v vs %+v", out, in)
	}
}

func TestLoadClampsGravity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	os.WriteFile(path, []byte("gravity_strength = 7.5\n"), 0o644)

	if s := Load(path); s.GravityStrength != 1 {
		t.Errorf("Expected gravity clamped to 1, got %v", s.GravityStrength)
	}
}

func TestLoadMalformedFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	os.WriteFile(path, []byte("not toml {{{"), 0o644)

	if s := Load(path); s != Default() {
		t.Errorf("Expected defaults for malformed settings, got %+v", s)
	}
}
