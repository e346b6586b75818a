package archive

import (
	"bytes"

	"github.com/arthur-debert/pkgshift/pkg/errors"
)

// Entry is one named payload inside an Archive.
type Entry struct {
	Name    string
	Content []byte
}

// Archive is an ordered collection of uniquely named entries.
type Archive struct {
	entries []Entry
	index   map[string]int
}

// New returns an empty archive.
func New() *Archive {
	return &Archive{index: map[string]int{}}
}

// FromEntries builds an archive holding entries in the given order.
func FromEntries(entries ...Entry) (*Archive, error) {
	b := NewBuilder(len(entries))
	for _, e := range entries {
		if err := b.Add(e); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

// Len returns the number of entries.
func (a *Archive) Len() int {
	return len(a.entries)
}

// Names returns entry names in archive order.
func (a *Archive) Names() []string {
	names := make([]string, len(a.entries))
	for i, e := range a.entries {
		names[i] = e.Name
	}
	return names
}

// Entries returns the entries in archive order. The slice is a copy; the
// content bytes are not.
func (a *Archive) Entries() []Entry {
	out := make([]Entry, len(a.entries))
	copy(out, a.entries)
	return out
}

// Get returns the entry with the given name.
func (a *Archive) Get(name string) (Entry, bool) {
	i, ok := a.index[name]
	if !ok {
		return Entry{}, false
	}
	return a.entries[i], true
}

// Has reports whether an entry with the given name exists.
func (a *Archive) Has(name string) bool {
	_, ok := a.index[name]
	return ok
}

// Equal reports whether both archives hold the same names, in the same
// order, with byte-identical content.
func (a *Archive) Equal(other *Archive) bool {
	if a == other {
		return true
	}
	if a == nil || other == nil || len(a.entries) != len(other.entries) {
		return false
	}
	for i, e := range a.entries {
		o := other.entries[i]
		if e.Name != o.Name || !bytes.Equal(e.Content, o.Content) {
			return false
		}
	}
	return true
}

// Builder accumulates entries for a new Archive.
type Builder struct {
	entries []Entry
	index   map[string]int
}

// NewBuilder returns a builder sized for n entries.
func NewBuilder(n int) *Builder {
	return &Builder{
		entries: make([]Entry, 0, n),
		index:   make(map[string]int, n),
	}
}

// Add appends an entry. Adding a name twice fails with ErrDuplicateEntry.
func (b *Builder) Add(e Entry) error {
	if _, exists := b.index[e.Name]; exists {
		return errors.Newf(errors.ErrDuplicateEntry, "duplicate archive entry %q", e.Name).
			WithDetail(errors.DetailEntry, e.Name)
	}
	b.index[e.Name] = len(b.entries)
	b.entries = append(b.entries, e)
	return nil
}

// Build returns the archive. The builder must not be used afterwards.
func (b *Builder) Build() *Archive {
	a := &Archive{entries: b.entries, index: b.index}
	b.entries = nil
	b.index = nil
	return a
}
