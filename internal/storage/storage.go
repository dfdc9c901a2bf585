// Package storage handles file-based persistence for the terrain tools:
// the active config and named terrain presets, all as JSON with atomic
// writes.
package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/QuangD300504/ridgeline/internal/config"
	"github.com/QuangD300504/ridgeline/pkg/terrain"
)

// Storage persists config and presets under a data directory.
type Storage struct {
	dir string
	log *slog.Logger
}

// New creates a Storage rooted at dir, creating subdirectories as needed.
func New(dir string, log *slog.Logger) (*Storage, error) {
	dirs := []string{
		dir,
		filepath.Join(dir, "presets"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("create directory %s: %w", d, err)
		}
	}
	return &Storage{dir: dir, log: log}, nil
}

// PresetDir returns the directory preset files live in.
func (s *Storage) PresetDir() string {
	return filepath.Join(s.dir, "presets")
}

// LoadConfig reads config.json into cfg. If the file does not exist, cfg is
// unchanged.
func (s *Storage) LoadConfig(cfg *config.Config) error {
	path := filepath.Join(s.dir, "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	s.log.Info("loaded config from file", "path", path)
	return nil
}

// SaveConfig writes cfg to config.json atomically.
func (s *Storage) SaveConfig(cfg *config.Config) error {
	path := filepath.Join(s.dir, "config.json")
	return s.atomicWriteJSON(path, cfg)
}

// LoadPreset reads a named terrain preset from the presets directory.
func (s *Storage) LoadPreset(name string) (terrain.Config, error) {
	path := filepath.Join(s.PresetDir(), name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return terrain.Config{}, fmt.Errorf("read preset %s: %w", name, err)
	}
	var cfg terrain.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return terrain.Config{}, fmt.Errorf("parse preset %s: %w", name, err)
	}
	return cfg, nil
}

// SavePreset writes a named terrain preset atomically.
func (s *Storage) SavePreset(name string, cfg terrain.Config) error {
	path := filepath.Join(s.PresetDir(), name+".json")
	return s.atomicWriteJSON(path, cfg)
}

// ListPresets returns the names of all stored presets, sorted.
func (s *Storage) ListPresets() ([]string, error) {
	entries, err := os.ReadDir(s.PresetDir())
	if err != nil {
		return nil, fmt.Errorf("read presets directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// atomicWriteJSON marshals v and writes it via a temp file + rename so a
// crash never leaves a half-written file behind.
func (s *Storage) atomicWriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}
