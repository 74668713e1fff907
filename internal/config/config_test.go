package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/ggfu"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Sphere.Radius != 100 || cfg.Sphere.LightAngle != 45 || !cfg.Sphere.Shadow {
		t.Errorf("sphere defaults = %+v", cfg.Sphere)
	}
	if cfg.Sphere.Background != ggfu.White || cfg.Sphere.Color != ggfu.Red {
		t.Errorf("sphere colors = %v %v", cfg.Sphere.Background, cfg.Sphere.Color)
	}
	if cfg.Clothify.XBlur != 9 || cfg.Clothify.Azimuth != 135 || cfg.Clothify.Depth != 3 {
		t.Errorf("clothify defaults = %+v", cfg.Clothify)
	}
	if cfg.Output.Backend != "raster" {
		t.Errorf("expected raster backend, got %s", cfg.Output.Backend)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.SphereSpec().Validate(); err != nil {
		t.Errorf("default spec invalid: %v", err)
	}
	if err := cfg.ClothifyParams().Validate(); err != nil {
		t.Errorf("default params invalid: %v", err)
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeFile(t, `
sphere:
  radius: 40
  light: 120
  color: "#00ff00"
  background: "10,20,30"
logging:
  level: debug
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Sphere.Radius != 40 || cfg.Sphere.LightAngle != 120 {
		t.Errorf("sphere = %+v", cfg.Sphere)
	}
	if cfg.Sphere.Color != (ggfu.RGB{G: 255}) {
		t.Errorf("color = %v", cfg.Sphere.Color)
	}
	if cfg.Sphere.Background != (ggfu.RGB{R: 10, G: 20, B: 30}) {
		t.Errorf("background = %v", cfg.Sphere.Background)
	}
	// Unset keys keep their defaults.
	if !cfg.Sphere.Shadow || cfg.Clothify.XBlur != 9 {
		t.Error("defaults were not preserved")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %s", cfg.Logging.Level)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Load(writeFile(t, "sphere:\n  color: \"not a color\"\n")); err == nil {
		t.Error("expected error for bad color")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Sphere.Color = ggfu.ShadowTone
	cfg.Clothify.Depth = 12
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}

func newSphereFlags() *Flags {
	fs := flag.NewFlagSet("sphere", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return NewFlags(fs).SphereFlags()
}

func TestFlagsOverrideFile(t *testing.T) {
	path := writeFile(t, "sphere:\n  radius: 40\n  light: 120\n")

	cfg, err := newSphereFlags().Parse([]string{"-config", path, "-light", "60", "-fg", "blue", "-debug"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Sphere.Radius != 40 {
		t.Errorf("radius from file lost: %v", cfg.Sphere.Radius)
	}
	if cfg.Sphere.LightAngle != 60 {
		t.Errorf("light = %v, want 60", cfg.Sphere.LightAngle)
	}
	if cfg.Sphere.Color != (ggfu.RGB{B: 255}) {
		t.Errorf("fg = %v", cfg.Sphere.Color)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %s", cfg.Logging.Level)
	}
}

func TestFlagsBoolFalse(t *testing.T) {
	cfg, err := newSphereFlags().Parse([]string{"-shadow=false", "extra"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Sphere.Shadow {
		t.Error("shadow should be disabled")
	}
}

func TestClothifyFlags(t *testing.T) {
	fs := flag.NewFlagSet("clothify", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := NewFlags(fs).ClothifyFlags()
	cfg, err := f.Parse([]string{"-x-blur", "3", "-bg", "#000", "-width", "64"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	p := cfg.ClothifyParams()
	if p.XBlur != 3 || p.YBlur != 9 || p.Background != ggfu.Black {
		t.Errorf("params = %+v", p)
	}
	if cfg.Clothify.Width != 64 || cfg.Clothify.Height != 256 {
		t.Errorf("size = %dx%d", cfg.Clothify.Width, cfg.Clothify.Height)
	}
	if cfg.Sphere.Background != ggfu.White {
		t.Error("clothify -bg must not touch the sphere background")
	}
}

func TestFlagsBadValue(t *testing.T) {
	if _, err := newSphereFlags().Parse([]string{"-fg", "nope"}); err == nil {
		t.Error("expected error for bad color flag")
	}
}
