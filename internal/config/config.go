// Package config holds the ggfu command settings.
package config

import (
	"github.com/gogpu/ggfu"
	"github.com/gogpu/ggfu/clothify"
	"github.com/gogpu/ggfu/sphere"
)

// Config holds all command settings.
type Config struct {
	Sphere   SphereConfig   `yaml:"sphere"`
	Clothify ClothifyConfig `yaml:"clothify"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SphereConfig holds the sphere script arguments.
type SphereConfig struct {
	Radius     float64  `yaml:"radius"`
	LightAngle float64  `yaml:"light"`
	Shadow     bool     `yaml:"shadow"`
	Background ggfu.RGB `yaml:"background"`
	Color      ggfu.RGB `yaml:"color"`
}

// ClothifyConfig holds the clothify script arguments.
type ClothifyConfig struct {
	XBlur      int      `yaml:"x_blur"`
	YBlur      int      `yaml:"y_blur"`
	Azimuth    int      `yaml:"azimuth"`
	Elevation  int      `yaml:"elevation"`
	Depth      int      `yaml:"depth"`
	Background ggfu.RGB `yaml:"background"`
	Width      int      `yaml:"width"`
	Height     int      `yaml:"height"`
}

// OutputConfig holds where and how results are written.
type OutputConfig struct {
	Path    string `yaml:"path"`
	Backend string `yaml:"backend"`
	Dump    bool   `yaml:"dump"`
	Display bool   `yaml:"display"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the scripts' registered defaults.
func Default() *Config {
	s := sphere.DefaultSpec()
	c := clothify.DefaultParams()
	return &Config{
		Sphere: SphereConfig{
			Radius:     s.Radius,
			LightAngle: s.LightAngle,
			Shadow:     s.Shadow,
			Background: s.Background,
			Color:      s.Color,
		},
		Clothify: ClothifyConfig{
			XBlur:      c.XBlur,
			YBlur:      c.YBlur,
			Azimuth:    c.Azimuth,
			Elevation:  c.Elevation,
			Depth:      c.Depth,
			Background: c.Background,
			Width:      256,
			Height:     256,
		},
		Output: OutputConfig{
			Path:    "sphere.png",
			Backend: "raster",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// SphereSpec converts the sphere settings.
func (c *Config) SphereSpec() sphere.Spec {
	return sphere.Spec{
		Radius:     c.Sphere.Radius,
		LightAngle: c.Sphere.LightAngle,
		Shadow:     c.Sphere.Shadow,
		Background: c.Sphere.Background,
		Color:      c.Sphere.Color,
	}
}

// ClothifyParams converts the clothify settings.
func (c *Config) ClothifyParams() clothify.Params {
	return clothify.Params{
		XBlur:      c.Clothify.XBlur,
		YBlur:      c.Clothify.YBlur,
		Azimuth:    c.Clothify.Azimuth,
		Elevation:  c.Clothify.Elevation,
		Depth:      c.Clothify.Depth,
		Background: c.Clothify.Background,
	}
}
