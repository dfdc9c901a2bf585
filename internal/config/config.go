// Package config holds the application-level configuration shared by the
// terrain tools: the core terrain parameters plus viewer and data-dir
// settings, with file/flag merge semantics.
package config

import "github.com/QuangD300504/ridgeline/pkg/terrain"

// Config holds the tool configuration.
type Config struct {
	Terrain terrain.Config `json:"terrain"`

	// DataDir is where presets and saved configs live.
	DataDir string `json:"data_dir"`

	// ScrollSpeed is the viewer's auto-scroll speed in world units per tick.
	ScrollSpeed float64 `json:"scroll_speed"`

	WindowWidth  int `json:"window_width"`
	WindowHeight int `json:"window_height"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Terrain:      terrain.DefaultConfig(),
		DataDir:      "./data",
		ScrollSpeed:  0.5,
		WindowWidth:  1280,
		WindowHeight: 720,
	}
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["seed"] {
		cfg.Terrain.Seed = fromFile.Terrain.Seed
	}
	if !explicitFlags["columns"] {
		cfg.Terrain.ChunkColumns = fromFile.Terrain.ChunkColumns
	}
	if !explicitFlags["spacing"] {
		cfg.Terrain.ColumnSpacing = fromFile.Terrain.ColumnSpacing
	}
	if !explicitFlags["depth"] {
		cfg.Terrain.BottomDepth = fromFile.Terrain.BottomDepth
	}
	if !explicitFlags["chunks"] {
		cfg.Terrain.ChunkCount = fromFile.Terrain.ChunkCount
	}
	if !explicitFlags["blend-window"] {
		cfg.Terrain.SeamBlendWindow = fromFile.Terrain.SeamBlendWindow
	}
	if !explicitFlags["blend-strength"] {
		cfg.Terrain.SeamBlendStrength = fromFile.Terrain.SeamBlendStrength
	}
	if !explicitFlags["padding"] {
		cfg.Terrain.RecyclePadding = fromFile.Terrain.RecyclePadding
	}
	if !explicitFlags["amplitude"] {
		cfg.Terrain.Amplitude = fromFile.Terrain.Amplitude
	}
	if !explicitFlags["frequency"] {
		cfg.Terrain.Frequency = fromFile.Terrain.Frequency
	}
	if !explicitFlags["data-dir"] {
		cfg.DataDir = fromFile.DataDir
	}
	if !explicitFlags["scroll-speed"] {
		cfg.ScrollSpeed = fromFile.ScrollSpeed
	}
}
