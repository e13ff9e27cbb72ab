package pipeline

import (
	"fmt"
	"image"
	"log/slog"
	"path/filepath"

	"github.com/OCharnyshevich/terrain-atlas/internal/config"
	"github.com/OCharnyshevich/terrain-atlas/internal/output"
	"github.com/OCharnyshevich/terrain-atlas/internal/terrain"
	"github.com/OCharnyshevich/terrain-atlas/internal/verify"
	"github.com/OCharnyshevich/terrain-atlas/pkg/atlas"
)

// Pipeline runs one generation: build the atlas, check it, persist it.
type Pipeline struct {
	cfg      *config.Config
	log      *slog.Logger
	manifest *terrain.Manifest
}

// New creates a Pipeline over the built-in terrain manifest.
func New(cfg *config.Config, log *slog.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, log: log, manifest: terrain.Default()}
}

// Run generates the atlas and writes every configured artifact. When a
// reference is configured and differs, nothing is written.
func (p *Pipeline) Run() error {
	if err := p.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	a, _, err := terrain.NewBuilder(p.manifest, p.log, p.cfg.Workers).Build()
	if err != nil {
		return err
	}

	if p.cfg.Reference != "" {
		if err := p.verify(a); err != nil {
			return err
		}
	}

	if err := output.WritePNG(p.cfg.Output, a.Image()); err != nil {
		return fmt.Errorf("save atlas: %w", err)
	}
	p.log.Info("saved atlas", "path", p.cfg.Output)

	if p.cfg.Preview != "" {
		if err := output.WritePNG(p.cfg.Preview, output.Preview(a.Image(), p.cfg.PreviewScale)); err != nil {
			return fmt.Errorf("save preview: %w", err)
		}
		p.log.Info("saved preview", "path", p.cfg.Preview, "scale", p.cfg.PreviewScale)
	}

	if p.cfg.Layout != "" {
		if err := p.writeLayout(a.Layout()); err != nil {
			return fmt.Errorf("save layout: %w", err)
		}
		p.log.Info("saved layout", "path", p.cfg.Layout)
	}
	return nil
}

func (p *Pipeline) verify(a *atlas.Atlas) error {
	ref, err := verify.LoadPNG(p.cfg.Reference)
	if err != nil {
		return err
	}
	if err := verify.Compare(a.Image(), ref, a.Layout()); err != nil {
		return fmt.Errorf("verify against %s: %w", p.cfg.Reference, err)
	}
	p.log.Info("atlas matches reference", "reference", p.cfg.Reference)
	return nil
}

func (p *Pipeline) writeLayout(l atlas.Layout) error {
	slots := p.manifest.Assigned()
	regions := make([]output.Region, 0, len(slots))
	for _, s := range slots {
		regions = append(regions, output.Region{Name: s.Name, Rect: l.TileBounds(s.Index)})
	}
	size := image.Pt(l.Width(), l.Height())
	return output.WriteLayout(p.cfg.Layout, filepath.Base(p.cfg.Output), size, regions)
}
