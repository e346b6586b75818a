package pipeline

import (
	"github.com/arthur-debert/pkgshift/pkg/transform"
)

// Assemble returns the effective transform list for base. Every
// *transform.ContentReplace is replaced in place by a FilenameReplace with
// the same patterns; every other transform keeps its position. Matching is
// on that concrete type only: a custom kind wrapping content replacement is
// left as registered.
//
// prune is always appended as the final element; nil selects the default
// convention. base is not modified.
func Assemble(base []transform.Transform, prune *transform.ManifestPrune) []transform.Transform {
	out := make([]transform.Transform, 0, len(base)+1)
	for _, t := range base {
		if content, ok := t.(*transform.ContentReplace); ok {
			out = append(out, transform.NewFilenameReplace(content.Patterns()))
			continue
		}
		out = append(out, t)
	}
	if prune == nil {
		prune = transform.NewManifestPrune(transform.DefaultPruneOptions())
	}
	return append(out, prune)
}
