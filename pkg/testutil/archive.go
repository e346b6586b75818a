package testutil

import (
	"testing"

	"github.com/arthur-debert/pkgshift/pkg/archive"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// ArchiveBuilder builds archives declaratively in tests.
type ArchiveBuilder struct {
	t       testing.TB
	entries []archive.Entry
}

// NewArchive starts an archive builder.
func NewArchive(t testing.TB) *ArchiveBuilder {
	t.Helper()
	return &ArchiveBuilder{t: t}
}

// File adds a text entry.
func (b *ArchiveBuilder) File(name, content string) *ArchiveBuilder {
	b.entries = append(b.entries, archive.Entry{Name: name, Content: []byte(content)})
	return b
}

// Bytes adds a raw entry.
func (b *ArchiveBuilder) Bytes(name string, content []byte) *ArchiveBuilder {
	b.entries = append(b.entries, archive.Entry{Name: name, Content: content})
	return b
}

// Build returns the archive, failing the test on duplicate names.
func (b *ArchiveBuilder) Build() *archive.Archive {
	b.t.Helper()
	a, err := archive.FromEntries(b.entries...)
	require.NoError(b.t, err)
	return a
}

// Contents returns entry content keyed by name.
func Contents(a *archive.Archive) map[string]string {
	out := make(map[string]string, a.Len())
	for _, e := range a.Entries() {
		out[e.Name] = string(e.Content)
	}
	return out
}

// Content returns one entry's content, failing the test when it is absent.
func Content(t testing.TB, a *archive.Archive, name string) string {
	t.Helper()
	e, ok := a.Get(name)
	require.True(t, ok, "entry %q not in archive %v", name, a.Names())
	return string(e.Content)
}

// MemFS returns a memory filesystem holding the given files.
func MemFS(t testing.TB, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0644))
	}
	return fs
}
