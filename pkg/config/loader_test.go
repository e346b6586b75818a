// Test Type: Unit Test
// Description: Tests for layered configuration loading

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pkgshift/pkg/config"
	"github.com/arthur-debert/pkgshift/pkg/errors"
	"github.com/arthur-debert/pkgshift/pkg/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps the user config directory out of the test
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("PKGSHIFT_CONFIG_DIR", t.TempDir())
	return t.TempDir()
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	root := isolate(t)

	cfg, err := config.Load(config.Options{Root: root})
	require.NoError(t, err)

	assert.Empty(t, cfg.Patterns)
	assert.Equal(t, []string{"find_replace"}, cfg.Transforms)
	assert.Equal(t, "customindex", cfg.Prune.Marker)
	assert.Equal(t, "CustomIndex", cfg.Prune.StaleKind)
	assert.Equal(t, "package.xml", cfg.Prune.Manifest)
	assert.Equal(t, "auto", cfg.Output.Format)
}

func TestLoadProjectTOML(t *testing.T) {
	root := isolate(t)
	writeFile(t, root, "pkgshift.toml", `
transforms = ["clean_meta_xml", "find_replace"]

[[patterns]]
find = "Request__c"
replace = "WorkRequest__c"

[[patterns]]
find = "%%USER%%"
inject_username = true

[prune]
marker = "generated"

[context]
username = "deployer@example.com"
`)

	cfg, err := config.Load(config.Options{Root: root})
	require.NoError(t, err)

	assert.Equal(t, []pattern.Pattern{
		{Find: "Request__c", Replace: "WorkRequest__c"},
		{Find: "%%USER%%", InjectUsername: true},
	}, cfg.Patterns)
	assert.Equal(t, []string{"clean_meta_xml", "find_replace"}, cfg.Transforms)
	assert.Equal(t, "generated", cfg.Prune.Marker)
	assert.Equal(t, "CustomIndex", cfg.Prune.StaleKind, "unset keys keep defaults")
	assert.Equal(t, "deployer@example.com", cfg.PatternContext().Username())
}

func TestLoadProjectYAML(t *testing.T) {
	root := isolate(t)
	writeFile(t, root, "pkgshift.yaml", `
patterns:
  - find: "%%NS%%"
    env: DEPLOY_NS
prune:
  marker: ""
`)

	cfg, err := config.Load(config.Options{Root: root})
	require.NoError(t, err)

	require.Len(t, cfg.Patterns, 1)
	assert.Equal(t, "DEPLOY_NS", cfg.Patterns[0].Env)
	assert.Empty(t, cfg.Prune.Marker)
	require.NotNil(t, cfg.PruneTransform(), "prune stays in the pipeline with an empty marker")
}

func TestLoadExplicitPath(t *testing.T) {
	root := isolate(t)
	writeFile(t, root, "pkgshift.toml", `transforms = ["find_replace"]`)
	other := writeFile(t, t.TempDir(), "ci.toml", `transforms = ["clean_meta_xml"]`)

	cfg, err := config.Load(config.Options{Root: root, Path: other})
	require.NoError(t, err)
	assert.Equal(t, []string{"clean_meta_xml"}, cfg.Transforms)

	_, err = config.Load(config.Options{Root: root, Path: filepath.Join(root, "missing.toml")})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoadEnvironment(t *testing.T) {
	root := isolate(t)
	t.Setenv("PKGSHIFT_PRUNE_STALE_KIND", "CustomIndexDef")
	t.Setenv("PKGSHIFT_PRUNE_MARKER", "generated")
	t.Setenv("PKGSHIFT_CONTEXT_ORG_URL", "https://example.my.salesforce.com")
	t.Setenv("PKGSHIFT_TRANSFORMS", "clean_meta_xml, find_replace")
	t.Setenv("PKGSHIFT_ROOT", root)

	cfg, err := config.Load(config.Options{Root: root})
	require.NoError(t, err)

	assert.Equal(t, "CustomIndexDef", cfg.Prune.StaleKind)
	assert.Equal(t, "generated", cfg.Prune.Marker)
	assert.Equal(t, "https://example.my.salesforce.com", cfg.Context.OrgURL)
	assert.Equal(t, []string{"clean_meta_xml", "find_replace"}, cfg.Transforms)
}

func TestLoadOverridesWin(t *testing.T) {
	root := isolate(t)
	writeFile(t, root, "pkgshift.toml", "[context]\nusername = \"from-file\"\n")
	t.Setenv("PKGSHIFT_CONTEXT_USERNAME", "from-env")

	cfg, err := config.Load(config.Options{
		Root:      root,
		Overrides: map[string]interface{}{"context.username": "from-flag", "output.format": "json"},
	})
	require.NoError(t, err)

	assert.Equal(t, "from-flag", cfg.Context.Username)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoadErrors(t *testing.T) {
	t.Run("malformed_toml", func(t *testing.T) {
		root := isolate(t)
		writeFile(t, root, "pkgshift.toml", "transforms = [\n")

		_, err := config.Load(config.Options{Root: root})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("two_replacement_sources", func(t *testing.T) {
		root := isolate(t)
		writeFile(t, root, "pkgshift.toml", `
[[patterns]]
find = "x"
replace = "y"
env = "Z"
`)

		_, err := config.Load(config.Options{Root: root})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}
