//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OCharnyshevich/terrain-atlas/internal/terrain"
	"github.com/OCharnyshevich/terrain-atlas/internal/viewer"
)

func main() {
	var (
		zoom    = flag.Int("zoom", 4, "initial magnification")
		workers = flag.Int("workers", 1, "concurrent tile generators")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	m := terrain.Default()
	a, _, err := terrain.NewBuilder(m, log, *workers).Build()
	if err != nil {
		log.Error("build atlas", "error", err)
		os.Exit(1)
	}

	l := a.Layout()
	ebiten.SetWindowTitle("terrain atlas")
	ebiten.SetWindowSize(l.Width()*(*zoom), l.Height()*(*zoom))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(viewer.New(a, m, *zoom)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("viewer", "error", err)
		os.Exit(1)
	}
}
