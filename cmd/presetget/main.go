// Command presetget downloads a terrain preset pack into the local data
// directory, so shared tuning sets (hills, canyon, dunes, ...) can be pulled
// from a git repository or any URL go-getter understands.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	get "github.com/hashicorp/go-getter"
)

func main() {
	var (
		base    = flag.String("base", "https://github.com/QuangD300504/ridgeline-presets.git", "base url of the preset pack repository")
		pack    = flag.String("pack", "default", "preset pack name within the repository")
		dataDir = flag.String("data-dir", "./data", "local data directory")
	)
	flag.Parse()

	if *pack == "" {
		log.Fatal("pack name required")
	}
	if *dataDir == "" {
		log.Fatal("data directory required")
	}

	dest := filepath.Join(*dataDir, "presets")
	if err := os.MkdirAll(dest, 0o755); err != nil {
		log.Fatalf("create %s: %v", dest, err)
	}

	url := fmt.Sprintf("git::%s//packs/%s", *base, *pack)
	log.Printf("fetching preset pack %s into %s", *pack, dest)

	if err := get.Get(dest, url); err != nil {
		log.Fatalf("fetch preset pack: %v", err)
	}

	log.Printf("done fetching preset pack %s", *pack)
}
