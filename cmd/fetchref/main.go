// Command fetchref downloads a reference terrain.png for terraingen -verify.
package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	get "github.com/hashicorp/go-getter"
)

func main() {
	var (
		src = flag.String("url", "", "source of the reference PNG (any go-getter address)")
		out = flag.String("o", "reference/terrain.png", "destination file")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *src == "" {
		log.Error("reference url required")
		os.Exit(2)
	}
	if *out == "" {
		log.Error("output path required")
		os.Exit(2)
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		log.Error("create output dir", "error", err)
		os.Exit(1)
	}

	log.Info("downloading reference", "url", *src, "path", *out)
	if err := get.GetFile(*out, *src); err != nil {
		log.Error("download reference", "error", err)
		os.Exit(1)
	}
	log.Info("done downloading reference", "path", *out)
}
