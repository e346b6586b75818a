package transform

import (
	"strings"

	"github.com/arthur-debert/pkgshift/pkg/archive"
	"github.com/arthur-debert/pkgshift/pkg/logging"
	"github.com/arthur-debert/pkgshift/pkg/manifest"
	"github.com/arthur-debert/pkgshift/pkg/pattern"
)

// PruneOptions names the stale artifact convention ManifestPrune removes.
type PruneOptions struct {
	// Marker is matched case-insensitively as a substring of entry names.
	Marker string `koanf:"marker" toml:"marker" yaml:"marker" json:"marker"`

	// StaleKind is the manifest type name whose declaration blocks are removed.
	StaleKind string `koanf:"stale_kind" toml:"stale_kind" yaml:"stale_kind" json:"stale_kind"`

	// Manifest is the file name suffix identifying the manifest entry.
	Manifest string `koanf:"manifest" toml:"manifest" yaml:"manifest" json:"manifest"`
}

// DefaultPruneOptions targets auto-generated CustomIndex components.
func DefaultPruneOptions() PruneOptions {
	return PruneOptions{
		Marker:    "customindex",
		StaleKind: "CustomIndex",
		Manifest:  "package.xml",
	}
}

// ManifestPrune drops entries whose names contain a marker and removes the
// matching declaration blocks from the manifest entry.
type ManifestPrune struct {
	opts   PruneOptions
	marker string
	suffix string
}

// NewManifestPrune returns a prune transform for the given convention.
func NewManifestPrune(opts PruneOptions) *ManifestPrune {
	return &ManifestPrune{
		opts:   opts,
		marker: strings.ToLower(opts.Marker),
		suffix: strings.ToLower(opts.Manifest),
	}
}

// Name returns the transform kind.
func (t *ManifestPrune) Name() string {
	return KindManifestPrune
}

// Options returns the configured convention.
func (t *ManifestPrune) Options() PruneOptions {
	return t.opts
}

func (t *ManifestPrune) isMarked(name string) bool {
	return t.marker != "" && strings.Contains(strings.ToLower(name), t.marker)
}

func (t *ManifestPrune) isManifest(name string) bool {
	return t.suffix != "" && strings.HasSuffix(strings.ToLower(name), t.suffix)
}

// Apply removes marked entries and prunes the manifest. When no entry name
// carries the marker the input archive is returned as is.
func (t *ManifestPrune) Apply(a *archive.Archive, _ pattern.Context) (*archive.Archive, error) {
	logger := logging.GetLogger("transform.prune")

	if len(t.Marked(a)) == 0 {
		logger.Debug().Str("marker", t.opts.Marker).Msg("No marked entries, archive unchanged")
		return a, nil
	}

	entries := a.Entries()
	manifestIdx := -1
	for i, e := range entries {
		if !t.isMarked(e.Name) && t.isManifest(e.Name) {
			manifestIdx = i
			break
		}
	}

	b := archive.NewBuilder(len(entries))
	removed := 0
	for i, e := range entries {
		if t.isMarked(e.Name) {
			logger.Debug().Str("entry", e.Name).Msg("Dropped marked entry")
			removed++
			continue
		}
		if i == manifestIdx {
			pruned, err := t.pruneManifest(e)
			if err != nil {
				return nil, err
			}
			e = pruned
		}
		if err := b.Add(e); err != nil {
			return nil, err
		}
	}

	if manifestIdx < 0 {
		logger.Warn().Str("manifest", t.opts.Manifest).Msg("No manifest entry found, nothing to prune in manifest")
	}
	logger.Info().Int("removed", removed).Msg("Manifest pruning complete")
	return b.Build(), nil
}

// Marked returns the names of the entries Apply would drop.
func (t *ManifestPrune) Marked(a *archive.Archive) []string {
	if t.marker == "" {
		return nil
	}
	var marked []string
	for _, name := range a.Names() {
		if t.isMarked(name) {
			marked = append(marked, name)
		}
	}
	return marked
}

// FindManifest returns the manifest entry Apply would rewrite: the first
// unmarked entry whose name ends with the manifest suffix.
func (t *ManifestPrune) FindManifest(a *archive.Archive) (archive.Entry, bool) {
	for _, e := range a.Entries() {
		if !t.isMarked(e.Name) && t.isManifest(e.Name) {
			return e, true
		}
	}
	return archive.Entry{}, false
}

func (t *ManifestPrune) pruneManifest(e archive.Entry) (archive.Entry, error) {
	text, err := decodeText(e, t.opts.StaleKind)
	if err != nil {
		return archive.Entry{}, err
	}
	pruned, blocks := manifest.RemoveBlocks(text, t.opts.StaleKind)
	logger := logging.GetLogger("transform.prune")
	logger.Debug().
		Str("entry", e.Name).
		Str("kind", t.opts.StaleKind).
		Int("blocks", blocks).
		Msg("Pruned manifest declarations")
	if blocks == 0 {
		return e, nil
	}
	return archive.Entry{Name: e.Name, Content: []byte(pruned)}, nil
}
