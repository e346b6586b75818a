package transform

import (
	"strings"

	"github.com/arthur-debert/pkgshift/pkg/archive"
	"github.com/arthur-debert/pkgshift/pkg/logging"
	"github.com/arthur-debert/pkgshift/pkg/pattern"
)

// resolved is a pattern with its replacement fixed for one run.
type resolved struct {
	find    string
	replace string
}

// resolvePatterns resolves every active pattern, in order, before any entry
// is touched so that a bad pattern fails the transform up front.
func resolvePatterns(patterns []pattern.Pattern, ctx pattern.Context) ([]resolved, error) {
	out := make([]resolved, 0, len(patterns))
	for _, p := range patterns {
		if !p.Active() {
			continue
		}
		replacement, err := p.Resolve(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, resolved{find: p.Find, replace: replacement})
	}
	return out, nil
}

// ruleSet names every rule that needs an entry's text view.
func ruleSet(rules []resolved) string {
	finds := make([]string, len(rules))
	for i, r := range rules {
		finds[i] = r.find
	}
	return strings.Join(finds, ", ")
}

// apply runs each rule over s in list order; each rule sees the output of
// the previous one.
func apply(s string, rules []resolved) string {
	for _, r := range rules {
		if strings.Contains(s, r.find) {
			s = strings.ReplaceAll(s, r.find, r.replace)
		}
	}
	return s
}

// ContentReplace rewrites entry content with an ordered pattern list.
type ContentReplace struct {
	patterns []pattern.Pattern
}

// NewContentReplace returns a content rewriting transform. The pattern
// slice is copied.
func NewContentReplace(patterns []pattern.Pattern) *ContentReplace {
	return &ContentReplace{patterns: append([]pattern.Pattern(nil), patterns...)}
}

// Name returns the transform kind.
func (t *ContentReplace) Name() string {
	return KindFindReplace
}

// Patterns returns a copy of the configured patterns.
func (t *ContentReplace) Patterns() []pattern.Pattern {
	return append([]pattern.Pattern(nil), t.patterns...)
}

// Apply rewrites the content of every entry. Names, count and order are
// unchanged. Entries that no pattern touches keep their original bytes.
func (t *ContentReplace) Apply(a *archive.Archive, ctx pattern.Context) (*archive.Archive, error) {
	logger := logging.GetLogger("transform.content")

	rules, err := resolvePatterns(t.patterns, ctx)
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		logger.Debug().Msg("No active patterns, archive unchanged")
		return a, nil
	}

	label := ruleSet(rules)
	b := archive.NewBuilder(a.Len())
	changed := 0
	for _, e := range a.Entries() {
		text, err := decodeText(e, label)
		if err != nil {
			return nil, err
		}
		if rewritten := apply(text, rules); rewritten != text {
			e = archive.Entry{Name: e.Name, Content: []byte(rewritten)}
			changed++
			logger.Debug().Str("entry", e.Name).Msg("Rewrote content")
		}
		if err := b.Add(e); err != nil {
			return nil, err
		}
	}

	logger.Info().
		Int("patterns", len(rules)).
		Int("entries", a.Len()).
		Int("changed", changed).
		Msg("Content replacement complete")
	return b.Build(), nil
}
