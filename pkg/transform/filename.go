package transform

import (
	"github.com/arthur-debert/pkgshift/pkg/archive"
	"github.com/arthur-debert/pkgshift/pkg/errors"
	"github.com/arthur-debert/pkgshift/pkg/logging"
	"github.com/arthur-debert/pkgshift/pkg/pattern"
)

// FilenameReplace extends ContentReplace to rewrite entry names as well.
// Content is rewritten first, then names, using the same pattern list.
type FilenameReplace struct {
	*ContentReplace
}

// NewFilenameReplace returns a transform that rewrites content and names.
func NewFilenameReplace(patterns []pattern.Pattern) *FilenameReplace {
	return &FilenameReplace{ContentReplace: NewContentReplace(patterns)}
}

// Name returns the transform kind.
func (t *FilenameReplace) Name() string {
	return KindFindReplaceFilenames
}

// Apply performs content replacement and then renames entries. Two source
// entries landing on the same name fail with a collision error naming both.
func (t *FilenameReplace) Apply(a *archive.Archive, ctx pattern.Context) (*archive.Archive, error) {
	logger := logging.GetLogger("transform.filename")

	intermediate, err := t.ContentReplace.Apply(a, ctx)
	if err != nil {
		return nil, err
	}

	rules, err := resolvePatterns(t.patterns, ctx)
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return intermediate, nil
	}

	b := archive.NewBuilder(intermediate.Len())
	sources := make(map[string]string, intermediate.Len())
	renamed := 0
	for _, e := range intermediate.Entries() {
		target := apply(e.Name, rules)
		if source, taken := sources[target]; taken {
			return nil, errors.Collision(source, e.Name, target)
		}
		sources[target] = e.Name

		if target != e.Name {
			logger.Debug().Str("from", e.Name).Str("to", target).Msg("Renamed entry")
			renamed++
		}
		if err := b.Add(archive.Entry{Name: target, Content: e.Content}); err != nil {
			return nil, err
		}
	}

	logger.Info().Int("renamed", renamed).Msg("Filename replacement complete")
	return b.Build(), nil
}
