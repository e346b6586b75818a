// Package config loads pkgshift configuration.
//
// Values are layered, later layers overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the project file (pkgshift.toml, .pkgshift.toml or pkgshift.yaml) or
//     an explicit path
//  3. PKGSHIFT_* environment variables
//  4. command line overrides
//
// The merged tree is decoded into Config and validated before use.
package config
