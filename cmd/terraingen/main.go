package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/OCharnyshevich/terrain-atlas/internal/config"
	"github.com/OCharnyshevich/terrain-atlas/internal/pipeline"
)

func main() {
	cfg := config.DefaultConfig()

	configPath := flag.String("config", "", "JSON config file (explicit flags take precedence)")
	flag.StringVar(&cfg.Output, "o", cfg.Output, "output PNG path (directory must exist)")
	flag.StringVar(&cfg.Preview, "preview", cfg.Preview, "also write an upscaled preview PNG to this path")
	flag.IntVar(&cfg.PreviewScale, "scale", cfg.PreviewScale, "preview zoom factor")
	flag.StringVar(&cfg.Layout, "layout", cfg.Layout, "also write a TexturePacker JSON layout to this path")
	flag.StringVar(&cfg.Reference, "verify", cfg.Reference, "compare against a reference PNG before writing")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "concurrent tile generators")
	flag.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log every tile")
	flag.Parse()

	if *configPath != "" {
		fromFile, err := config.Load(*configPath)
		if err != nil {
			newLogger(false).Error("load config", "error", err)
			os.Exit(1)
		}
		explicit := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		config.Merge(cfg, fromFile, explicit)
	}

	log := newLogger(cfg.Verbose)

	if err := pipeline.New(cfg, log).Run(); err != nil {
		log.Error("generate atlas", "error", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
