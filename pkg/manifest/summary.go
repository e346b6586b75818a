package manifest

import (
	"strings"

	"github.com/arthur-debert/pkgshift/pkg/errors"
	"github.com/beevik/etree"
)

// Declaration is one <types> block of a manifest.
type Declaration struct {
	Name    string   `json:"name" yaml:"name"`
	Members []string `json:"members" yaml:"members"`
}

// Summary lists what a manifest declares.
type Summary struct {
	Version string        `json:"version,omitempty" yaml:"version,omitempty"`
	Types   []Declaration `json:"types" yaml:"types"`
}

// Kinds returns declared type names in document order.
func (s Summary) Kinds() []string {
	kinds := make([]string, len(s.Types))
	for i, d := range s.Types {
		kinds[i] = d.Name
	}
	return kinds
}

// Has reports whether kind is declared.
func (s Summary) Has(kind string) bool {
	for _, d := range s.Types {
		if d.Name == kind {
			return true
		}
	}
	return false
}

// Summarize parses a manifest document.
func Summarize(content []byte) (Summary, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(content); err != nil {
		return Summary{}, errors.Wrap(err, errors.ErrInvalidInput, "failed to parse manifest")
	}

	root := doc.SelectElement("Package")
	if root == nil {
		return Summary{}, errors.New(errors.ErrInvalidInput, "manifest has no <Package> root element")
	}

	var summary Summary
	if v := root.SelectElement("version"); v != nil {
		summary.Version = strings.TrimSpace(v.Text())
	}
	for _, t := range root.SelectElements("types") {
		decl := Declaration{Members: []string{}}
		if name := t.SelectElement("name"); name != nil {
			decl.Name = strings.TrimSpace(name.Text())
		}
		for _, m := range t.SelectElements("members") {
			decl.Members = append(decl.Members, strings.TrimSpace(m.Text()))
		}
		summary.Types = append(summary.Types, decl)
	}
	return summary, nil
}
