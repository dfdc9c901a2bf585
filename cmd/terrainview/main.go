// Command terrainview opens an interactive window onto the sliding terrain:
// scroll the probe with the keyboard and watch chunks recycle at both edges.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/QuangD300504/ridgeline/internal/config"
	"github.com/QuangD300504/ridgeline/internal/storage"
	"github.com/QuangD300504/ridgeline/internal/viewer"
	"github.com/QuangD300504/ridgeline/pkg/terrain"
)

func main() {
	cfg := config.DefaultConfig()

	flag.Int64Var(&cfg.Terrain.Seed, "seed", cfg.Terrain.Seed, "terrain seed")
	flag.IntVar(&cfg.Terrain.ChunkColumns, "columns", cfg.Terrain.ChunkColumns, "ridge samples per chunk")
	flag.Float64Var(&cfg.Terrain.ColumnSpacing, "spacing", cfg.Terrain.ColumnSpacing, "world distance between samples")
	flag.Float64Var(&cfg.Terrain.BottomDepth, "depth", cfg.Terrain.BottomDepth, "mesh bottom depth")
	flag.IntVar(&cfg.Terrain.ChunkCount, "chunks", cfg.Terrain.ChunkCount, "chunks in the sliding window")
	flag.IntVar(&cfg.Terrain.SeamBlendWindow, "blend-window", cfg.Terrain.SeamBlendWindow, "seam blend window in samples")
	flag.Float64Var(&cfg.Terrain.SeamBlendStrength, "blend-strength", cfg.Terrain.SeamBlendStrength, "seam blend strength")
	flag.Float64Var(&cfg.Terrain.RecyclePadding, "padding", cfg.Terrain.RecyclePadding, "recycle threshold padding")
	flag.Float64Var(&cfg.Terrain.Amplitude, "amplitude", cfg.Terrain.Amplitude, "noise amplitude")
	flag.IntVar(&cfg.Terrain.Frequency, "frequency", cfg.Terrain.Frequency, "noise feature size in columns")
	flag.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "config and preset directory")
	flag.Float64Var(&cfg.ScrollSpeed, "scroll-speed", cfg.ScrollSpeed, "auto-scroll speed in units per tick")
	preset := flag.String("preset", "", "load a named terrain preset from the data dir")
	saveConfig := flag.Bool("save-config", false, "write the effective config back to the data dir")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	store, err := storage.New(cfg.DataDir, log)
	if err != nil {
		log.Error("open storage", "error", err)
		os.Exit(1)
	}

	fromFile := config.DefaultConfig()
	if err := store.LoadConfig(fromFile); err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}
	config.Merge(cfg, fromFile, explicit)

	if *preset != "" {
		tc, err := store.LoadPreset(*preset)
		if err != nil {
			log.Error("load preset", "preset", *preset, "error", err)
			os.Exit(1)
		}
		cfg.Terrain = tc
		log.Info("loaded preset", "preset", *preset)
	}

	if *saveConfig {
		if err := store.SaveConfig(cfg); err != nil {
			log.Error("save config", "error", err)
			os.Exit(1)
		}
	}

	window, err := terrain.NewWindow(cfg.Terrain, log)
	if err != nil {
		log.Error("create terrain window", "error", err)
		os.Exit(1)
	}
	if err := window.Initialize(); err != nil {
		log.Error("initialize terrain", "error", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("ridgeline terrain viewer")
	if err := ebiten.RunGame(viewer.New(cfg, log, window)); err != nil {
		log.Error("viewer exited", "error", err)
		os.Exit(1)
	}
}
