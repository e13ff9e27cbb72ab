package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultOutput is where the game loads terrain.png from.
const DefaultOutput = "src/main/resources/textures/terrain.png"

// Config holds the generator configuration.
type Config struct {
	Output       string `json:"output"`
	Preview      string `json:"preview"`       // upscaled copy, "" = skip
	PreviewScale int    `json:"preview_scale"` // integer zoom for Preview
	Layout       string `json:"layout"`        // TexturePacker JSON, "" = skip
	Reference    string `json:"reference"`     // PNG to compare against, "" = skip
	Workers      int    `json:"workers"`       // 1 = sequential
	Verbose      bool   `json:"verbose"`
}

// DefaultConfig returns a Config that writes terrain.png and nothing else.
func DefaultConfig() *Config {
	return &Config{
		Output:       DefaultOutput,
		PreviewScale: 8,
		Workers:      1,
	}
}

// Validate rejects settings the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Output == "" {
		return fmt.Errorf("output path is empty")
	}
	if c.PreviewScale < 1 {
		return fmt.Errorf("preview scale %d: must be at least 1", c.PreviewScale)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers %d: must be at least 1", c.Workers)
	}
	return nil
}

// Load reads a JSON config file over a copy of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["o"] {
		cfg.Output = fromFile.Output
	}
	if !explicitFlags["preview"] {
		cfg.Preview = fromFile.Preview
	}
	if !explicitFlags["scale"] {
		cfg.PreviewScale = fromFile.PreviewScale
	}
	if !explicitFlags["layout"] {
		cfg.Layout = fromFile.Layout
	}
	if !explicitFlags["verify"] {
		cfg.Reference = fromFile.Reference
	}
	if !explicitFlags["workers"] {
		cfg.Workers = fromFile.Workers
	}
	if !explicitFlags["v"] {
		cfg.Verbose = fromFile.Verbose
	}
}
