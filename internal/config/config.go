// Package config holds the demo renderer's settings: JSON file first, CLI
// flags override, Resolve fills the rest with defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds all configurable render settings.
type Config struct {
	Shape       string  `json:"shape"` // box, sphere or torus
	Size        int     `json:"size"`
	Supersample int     `json:"supersample"`
	Frames      int     `json:"frames"`
	OutputDir   string  `json:"output_dir"`
	Texture     string  `json:"texture"`
	YawDeg      float64 `json:"yaw_deg"`
	PitchDeg    float64 `json:"pitch_deg"`
	RollDeg     float64 `json:"roll_deg"`
	Distance    float64 `json:"distance"`
	FOVDeg      float64 `json:"fov_deg"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Shape     string
	Size      int
	Frames    int
	OutputDir string
	Texture   string
}

// Load reads a JSON config file. Fields not set in the file keep their zero
// values until Resolve runs.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies flag overrides, then fills any remaining empty fields with
// defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.Shape != "" {
		c.Shape = flags.Shape
	}
	if flags.Size > 0 {
		c.Size = flags.Size
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Texture != "" {
		c.Texture = flags.Texture
	}

	if c.Shape == "" {
		c.Shape = "torus"
	}
	if c.Size <= 0 {
		c.Size = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Frames <= 0 {
		c.Frames = 1
	}
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.Distance <= 0 {
		c.Distance = 5
	}
	if c.FOVDeg <= 0 {
		c.FOVDeg = 45
	}
}
