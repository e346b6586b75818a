// Package testutil provides fixtures for testing pkgshift components.
//
// Key components:
//   - ArchiveBuilder: Declarative archive setup builder
//   - Manifest fixtures: package.xml documents with known declaration blocks
//   - MemFS: afero memory filesystems preloaded with files
//
// All test data is defined inline; nothing reads fixture files from disk.
package testutil
