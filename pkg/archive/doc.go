// Package archive holds the in-memory deployment package that every
// transform reads and produces.
//
// An Archive is an ordered list of named byte entries. Names are unique and
// order is preserved exactly as entries were added. Archives are treated as
// values: transforms never edit an Archive they were given, they build a new
// one with a Builder. Entry content slices are shared between archives, so
// callers must not write into the bytes returned by Entries or Get.
//
// Container formats
//
// The core only needs ordered name to bytes access. Reading and writing the
// concrete container happens at the boundary:
//
//   - ReadZip / WriteZip handle the zip layout used by deploy backends.
//   - FromDir / WriteDir map an archive onto a directory tree.
//   - Load picks between the two based on what a path points at.
package archive
