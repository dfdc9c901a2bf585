package storage

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/QuangD300504/ridgeline/internal/config"
	"github.com/QuangD300504/ridgeline/pkg/terrain"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(t.TempDir(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestConfigRoundTrip(t *testing.T) {
	s := newTestStorage(t)

	cfg := config.DefaultConfig()
	cfg.Terrain.Seed = 99
	cfg.DataDir = "/elsewhere"
	if err := s.SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded := config.DefaultConfig()
	if err := s.LoadConfig(loaded); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Terrain.Seed != 99 || loaded.DataDir != "/elsewhere" {
		t.Errorf("loaded config = %+v, want saved values", loaded)
	}
}

func TestLoadConfigMissingFileIsNoop(t *testing.T) {
	s := newTestStorage(t)

	cfg := config.DefaultConfig()
	want := *cfg
	if err := s.LoadConfig(cfg); err != nil {
		t.Fatalf("LoadConfig on empty dir: %v", err)
	}
	if *cfg != want {
		t.Error("LoadConfig without a file should leave cfg unchanged")
	}
}

func TestPresetRoundTripAndList(t *testing.T) {
	s := newTestStorage(t)

	hills := terrain.DefaultConfig()
	hills.Amplitude = 12
	canyon := terrain.DefaultConfig()
	canyon.Amplitude = 30
	canyon.Frequency = 40

	if err := s.SavePreset("hills", hills); err != nil {
		t.Fatalf("SavePreset: %v", err)
	}
	if err := s.SavePreset("canyon", canyon); err != nil {
		t.Fatalf("SavePreset: %v", err)
	}

	names, err := s.ListPresets()
	if err != nil {
		t.Fatalf("ListPresets: %v", err)
	}
	if len(names) != 2 || names[0] != "canyon" || names[1] != "hills" {
		t.Errorf("ListPresets = %v, want [canyon hills]", names)
	}

	got, err := s.LoadPreset("canyon")
	if err != nil {
		t.Fatalf("LoadPreset: %v", err)
	}
	if got.Amplitude != 30 || got.Frequency != 40 {
		t.Errorf("loaded preset = %+v, want saved values", got)
	}
}

func TestAtomicWriteLeavesNoTempFile(t *testing.T) {
	s := newTestStorage(t)

	if err := s.SavePreset("p", terrain.DefaultConfig()); err != nil {
		t.Fatalf("SavePreset: %v", err)
	}
	if _, err := os.Stat(filepath.Join(s.PresetDir(), "p.json.tmp")); !os.IsNotExist(err) {
		t.Error("temp file left behind after atomic write")
	}
}
