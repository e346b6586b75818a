package config

import (
	"github.com/arthur-debert/pkgshift/pkg/pattern"
	"github.com/arthur-debert/pkgshift/pkg/transform"
)

// Config is the merged configuration for one run.
type Config struct {
	Patterns   []pattern.Pattern `koanf:"patterns" toml:"patterns" yaml:"patterns" json:"patterns"`
	Transforms []string          `koanf:"transforms" toml:"transforms" yaml:"transforms" json:"transforms"`
	Prune      Prune             `koanf:"prune" toml:"prune" yaml:"prune" json:"prune"`
	Context    Context           `koanf:"context" toml:"context" yaml:"context" json:"context"`
	Output     Output            `koanf:"output" toml:"output" yaml:"output" json:"output"`
}

// Prune configures manifest pruning.
type Prune struct {
	Marker    string `koanf:"marker" toml:"marker" yaml:"marker" json:"marker"`
	StaleKind string `koanf:"stale_kind" toml:"stale_kind" yaml:"stale_kind" json:"stale_kind"`
	Manifest  string `koanf:"manifest" toml:"manifest" yaml:"manifest" json:"manifest"`
}

// Options returns the prune convention.
func (p Prune) Options() transform.PruneOptions {
	return transform.PruneOptions{
		Marker:    p.Marker,
		StaleKind: p.StaleKind,
		Manifest:  p.Manifest,
	}
}

// Context holds the run values patterns may inject.
type Context struct {
	Username string `koanf:"username" toml:"username" yaml:"username" json:"username"`
	OrgURL   string `koanf:"org_url" toml:"org_url" yaml:"org_url" json:"org_url"`
}

// Output configures where and how results are written.
type Output struct {
	Path   string `koanf:"path" toml:"path" yaml:"path" json:"path"`
	Format string `koanf:"format" toml:"format" yaml:"format" json:"format"`
}

// PatternContext returns the resolution context for this configuration.
func (c *Config) PatternContext() *pattern.RunContext {
	return pattern.NewRunContext(c.Context.Username, c.Context.OrgURL)
}

// PruneTransform returns the prune transform. An empty marker leaves it in
// place but marks nothing.
func (c *Config) PruneTransform() *transform.ManifestPrune {
	return transform.NewManifestPrune(c.Prune.Options())
}
