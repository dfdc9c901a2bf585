// Command terraindump generates a terrain window headlessly and exports its
// geometry as JSON or Wavefront OBJ, for host engines and inspection tools.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/QuangD300504/ridgeline/internal/export"
	"github.com/QuangD300504/ridgeline/pkg/terrain"
)

func main() {
	cfg := terrain.DefaultConfig()

	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "terrain seed")
	flag.IntVar(&cfg.ChunkColumns, "columns", cfg.ChunkColumns, "ridge samples per chunk")
	flag.Float64Var(&cfg.ColumnSpacing, "spacing", cfg.ColumnSpacing, "world distance between samples")
	flag.Float64Var(&cfg.BottomDepth, "depth", cfg.BottomDepth, "mesh bottom depth")
	flag.IntVar(&cfg.ChunkCount, "chunks", cfg.ChunkCount, "chunks in the sliding window")
	flag.Float64Var(&cfg.Amplitude, "amplitude", cfg.Amplitude, "noise amplitude")
	flag.IntVar(&cfg.Frequency, "frequency", cfg.Frequency, "noise feature size in columns")
	format := flag.String("format", "json", "output format: json or obj")
	out := flag.String("o", "-", "output file, - for stdout")
	scrollTo := flag.Float64("scroll-to", 0, "advance the player to this world x before dumping, exercising recycling")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	window, err := terrain.NewWindow(cfg, log)
	if err != nil {
		log.Error("create terrain window", "error", err)
		os.Exit(1)
	}
	if err := window.Initialize(); err != nil {
		log.Error("initialize terrain", "error", err)
		os.Exit(1)
	}
	if *scrollTo != 0 {
		window.Tick(*scrollTo)
	}

	var w io.Writer = os.Stdout
	if *out != "-" {
		f, err := os.Create(*out)
		if err != nil {
			log.Error("create output file", "path", *out, "error", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	switch *format {
	case "json":
		err = export.WriteJSON(w, window)
	case "obj":
		err = export.WriteOBJ(w, window)
	default:
		err = fmt.Errorf("unknown format %q (want json or obj)", *format)
	}
	if err != nil {
		log.Error("export terrain", "format", *format, "error", err)
		os.Exit(1)
	}
}
