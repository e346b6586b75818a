// Test Type: Unit Test
// Description: Tests for configuration validation

package config_test

import (
	"testing"

	"github.com/arthur-debert/pkgshift/pkg/config"
	"github.com/arthur-debert/pkgshift/pkg/errors"
	"github.com/arthur-debert/pkgshift/pkg/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{"defaults", func(*config.Config) {}, false},
		{"pattern_with_env", func(c *config.Config) {
			c.Patterns = []pattern.Pattern{{Find: "a", Env: "A"}}
		}, false},
		{"pattern_with_two_sources", func(c *config.Config) {
			c.Patterns = []pattern.Pattern{{Find: "a", InjectUsername: true, InjectOrgURL: true}}
		}, true},
		{"empty_transform_kind", func(c *config.Config) {
			c.Transforms = []string{"find_replace", ""}
		}, true},
		{"prune_without_marker", func(c *config.Config) {
			c.Prune.Marker = ""
		}, false},
		{"prune_without_stale_kind", func(c *config.Config) {
			c.Prune.StaleKind = ""
		}, true},
		{"prune_without_manifest", func(c *config.Config) {
			c.Prune.Manifest = ""
		}, true},
		{"bad_format", func(c *config.Config) {
			c.Output.Format = "xml"
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Default()
			require.NoError(t, err)
			tt.mutate(cfg)

			err = config.Validate(cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPruneTransformUsesConvention(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)

	prune := cfg.PruneTransform()
	require.NotNil(t, prune)
	assert.Equal(t, "CustomIndex", prune.Options().StaleKind)
}
