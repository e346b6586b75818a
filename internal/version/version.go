package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/pkgshift/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/pkgshift/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/pkgshift/internal/version.Date={{.Date}}
)

// String returns the version line printed by `pkgshift version`.
func String() string {
	return fmt.Sprintf("pkgshift %s (commit %s, built %s)", Version, Commit, Date)
}
