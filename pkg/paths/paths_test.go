// Test Type: Unit Test
// Description: Tests for path resolution - env overrides, XDG fallbacks, project config lookup

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pkgshift/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateDir(t *testing.T) {
	t.Run("env_override_wins", func(t *testing.T) {
		t.Setenv(paths.EnvStateDir, "/custom/state")
		assert.Equal(t, "/custom/state", paths.StateDir())
		assert.Equal(t, filepath.Join("/custom/state", "pkgshift.log"), paths.LogFilePath())
	})

	t.Run("xdg_state_home", func(t *testing.T) {
		t.Setenv(paths.EnvStateDir, "")
		t.Setenv("XDG_STATE_HOME", "/xdg/state")
		assert.Equal(t, filepath.Join("/xdg/state", "pkgshift"), paths.StateDir())
	})
}

func TestConfigDir(t *testing.T) {
	t.Setenv(paths.EnvConfigDir, "/etc/pkgshift")
	assert.Equal(t, "/etc/pkgshift", paths.ConfigDir())
	assert.Equal(t, filepath.Join("/etc/pkgshift", "config.toml"), paths.UserConfigPath())
}

func TestProjectRoot(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(paths.EnvProjectRoot, dir)

	root, err := paths.ProjectRoot()
	require.NoError(t, err)
	assert.Equal(t, dir, root)
}

func TestFindProjectConfig(t *testing.T) {
	t.Run("none_present", func(t *testing.T) {
		assert.Equal(t, "", paths.FindProjectConfig(t.TempDir()))
	})

	t.Run("hidden_file_preferred", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "pkgshift.toml"), []byte(""), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".pkgshift.toml"), []byte(""), 0644))

		assert.Equal(t, filepath.Join(dir, ".pkgshift.toml"), paths.FindProjectConfig(dir))
	})

	t.Run("yaml_config", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "pkgshift.yml"), []byte(""), 0644))

		assert.Equal(t, filepath.Join(dir, "pkgshift.yml"), paths.FindProjectConfig(dir))
	})
}
