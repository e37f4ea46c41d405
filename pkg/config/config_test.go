package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/treeviz/pkg/errors"
	"github.com/matzehuels/treeviz/pkg/render"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
format = "svg"
direction = "LR"

[colors]
Program = "#ffffff"
Custom = "#000000"
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cfg.Format != "svg" {
		t.Errorf("Format = %q, want %q", cfg.Format, "svg")
	}
	if cfg.Direction != "LR" {
		t.Errorf("Direction = %q, want %q", cfg.Direction, "LR")
	}
	if cfg.DefaultFormat() != render.FormatSVG {
		t.Errorf("DefaultFormat() = %q, want %q", cfg.DefaultFormat(), render.FormatSVG)
	}

	p := cfg.Palette()
	if p.Color("Program") != "#ffffff" {
		t.Error("Palette() did not apply the Program override")
	}
	if p.Color("Custom") != "#000000" {
		t.Error("Palette() did not add the new kind")
	}
	if p.Color("Block") != render.DefaultPalette().Color("Block") {
		t.Error("Palette() dropped a built-in entry")
	}
}

func TestLoadFileMissing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFile() on missing file error = %v, want nil", err)
	}
	if cfg.Format != "" || cfg.Direction != "" || cfg.Colors != nil {
		t.Errorf("missing file should yield zero Config, got %+v", cfg)
	}
	if cfg.DefaultFormat() != render.DefaultFormat {
		t.Errorf("zero Config DefaultFormat() = %q, want %q", cfg.DefaultFormat(), render.DefaultFormat)
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := writeConfig(t, "format = [not toml")

	_, err := LoadFile(path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("LoadFile() error = %v, want INVALID_CONFIG", err)
	}
}

func TestLoadFileUnknownFormat(t *testing.T) {
	path := writeConfig(t, `format = "gif"`)

	_, err := LoadFile(path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("LoadFile() error = %v, want INVALID_CONFIG", err)
	}
}

func TestPathHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	path, err := Path()
	if err != nil {
		t.Fatalf("Path() error = %v", err)
	}
	want := filepath.Join("/tmp/xdg", "treeviz", "config.toml")
	if path != want {
		t.Errorf("Path() = %q, want %q", path, want)
	}
}
