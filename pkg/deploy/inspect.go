package deploy

import (
	"github.com/arthur-debert/pkgshift/pkg/archive"
	"github.com/arthur-debert/pkgshift/pkg/manifest"
	"github.com/arthur-debert/pkgshift/pkg/transform"
)

// Inspection describes a package before any transform runs.
type Inspection struct {
	Archive      *archive.Archive
	ManifestName string
	Manifest     *manifest.Summary
	Marked       []string
}

// Inspect loads source and reports its manifest declarations and the
// entries the configured prune convention would remove.
func (r *Runner) Inspect(source string) (*Inspection, error) {
	a, err := archive.Load(r.fs, source)
	if err != nil {
		return nil, err
	}

	prune := transform.NewManifestPrune(r.cfg.Prune.Options())
	result := &Inspection{Archive: a, Marked: prune.Marked(a)}

	if e, ok := prune.FindManifest(a); ok {
		summary, err := manifest.Summarize(e.Content)
		if err != nil {
			return nil, err
		}
		result.ManifestName = e.Name
		result.Manifest = &summary
	}
	return result, nil
}
