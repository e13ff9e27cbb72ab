package terrain

import (
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/OCharnyshevich/terrain-atlas/pkg/atlas"
	"github.com/OCharnyshevich/terrain-atlas/pkg/texture"
)

// Stats summarises one build.
type Stats struct {
	Populated int
	Reserved  int
	Empty     int // slots with no manifest entry at all
}

// Builder renders a manifest into an atlas.
type Builder struct {
	manifest *Manifest
	log      *slog.Logger
	workers  int
}

// NewBuilder creates a Builder. With workers > 1 tiles are synthesised
// concurrently; they are always drawn in index order.
func NewBuilder(m *Manifest, log *slog.Logger, workers int) *Builder {
	if workers < 1 {
		workers = 1
	}
	return &Builder{manifest: m, log: log, workers: workers}
}

// Build generates every assigned slot and composites it into a fresh atlas.
func (b *Builder) Build() (*atlas.Atlas, Stats, error) {
	layout := b.manifest.Layout()
	a, err := atlas.New(layout)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("allocate atlas: %w", err)
	}

	b.log.Info("generating atlas",
		"width", layout.Width(),
		"height", layout.Height(),
		"slots", layout.TileCount,
		"workers", b.workers,
	)

	src := NewSources()
	slots := b.manifest.Assigned()
	grids := b.generate(src, slots)

	for i, s := range slots {
		a.DrawTile(s.Index, &grids[i])
		b.log.Debug("drew tile", "index", s.Index, "name", s.Name)
	}

	all := b.manifest.All()
	st := Stats{
		Populated: len(slots),
		Reserved:  len(all) - len(slots),
		Empty:     layout.TileCount - len(all),
	}
	b.log.Info("atlas composited",
		"populated", st.Populated,
		"reserved", st.Reserved,
		"empty", st.Empty,
	)
	return a, st, nil
}

func (b *Builder) generate(src *Sources, slots []Slot) []texture.Grid {
	grids := make([]texture.Grid, len(slots))
	if b.workers == 1 {
		for i, s := range slots {
			grids[i] = s.Generate(src)
		}
		return grids
	}

	// Each goroutine writes only its own element; src is read-only here.
	var g errgroup.Group
	g.SetLimit(b.workers)
	for i, s := range slots {
		i, s := i, s
		g.Go(func() error {
			grids[i] = s.Generate(src)
			return nil
		})
	}
	_ = g.Wait()
	return grids
}
