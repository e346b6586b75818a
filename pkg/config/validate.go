package config

import (
	"github.com/arthur-debert/pkgshift/pkg/errors"
	"github.com/arthur-debert/pkgshift/pkg/pattern"
	"github.com/arthur-debert/pkgshift/pkg/ui"
)

// Validate checks values that decoding alone cannot catch.
func Validate(cfg *Config) error {
	if err := pattern.Validate(cfg.Patterns); err != nil {
		return err
	}

	for i, kind := range cfg.Transforms {
		if kind == "" {
			return errors.Newf(errors.ErrConfigValid, "transform %d has an empty kind", i+1)
		}
	}

	required := []struct{ key, value string }{
		{"prune.stale_kind", cfg.Prune.StaleKind},
		{"prune.manifest", cfg.Prune.Manifest},
	}
	for _, r := range required {
		if r.value == "" {
			return errors.Newf(errors.ErrConfigValid, "%s must be set", r.key).
				WithDetail("key", r.key)
		}
	}

	if _, err := ui.ParseFormat(cfg.Output.Format); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid output.format").
			WithDetail("key", "output.format")
	}
	return nil
}
