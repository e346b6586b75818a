// Package paths resolves the files pkgshift reads and writes outside the
// archive itself: the project configuration file, the user configuration
// directory and the log file. Directory lookups follow the XDG Base
// Directory specification.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/pkgshift/pkg/errors"
)

// Environment variable names
const (
	// EnvProjectRoot points at the project holding pkgshift.toml
	EnvProjectRoot = "PKGSHIFT_ROOT"

	// EnvConfigDir overrides the XDG config directory for pkgshift
	EnvConfigDir = "PKGSHIFT_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for pkgshift
	EnvStateDir = "PKGSHIFT_STATE_DIR"
)

const (
	// AppDirName is the directory name used under each XDG base directory
	AppDirName = "pkgshift"

	// LogFileName is the name of the log file
	LogFileName = "pkgshift.log"
)

// ProjectConfigNames lists the project configuration file names in lookup order.
var ProjectConfigNames = []string{
	".pkgshift.toml",
	"pkgshift.toml",
	"pkgshift.yaml",
	"pkgshift.yml",
}

// ProjectRoot returns the directory holding the project configuration.
// PKGSHIFT_ROOT wins over the working directory.
func ProjectRoot() (string, error) {
	root := os.Getenv(EnvProjectRoot)
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrInternal, "failed to get working directory")
		}
		root = wd
	}
	abs, err := filepath.Abs(expandHome(root))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "failed to resolve project root %s", root)
	}
	return abs, nil
}

// FindProjectConfig returns the first project configuration file present in
// root, or "" when there is none.
func FindProjectConfig(root string) string {
	for _, name := range ProjectConfigNames {
		candidate := filepath.Join(root, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// ConfigDir returns the user configuration directory.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the directory for run state such as logs.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return expandHome(dir)
	}
	// xdg reads the environment once at init
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFilePath returns the path of the log file.
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// UserConfigPath returns the path of the per-user configuration file.
func UserConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
