package transform

import (
	"bytes"
	"strings"

	"github.com/arthur-debert/pkgshift/pkg/archive"
	"github.com/arthur-debert/pkgshift/pkg/errors"
	"github.com/arthur-debert/pkgshift/pkg/logging"
	"github.com/arthur-debert/pkgshift/pkg/pattern"
	"github.com/beevik/etree"
)

const (
	metaXMLSuffix      = "-meta.xml"
	packageVersionsTag = "packageVersions"
)

// CleanMetaXML removes <packageVersions> elements from metadata files so a
// package deploys without pinning managed package versions.
type CleanMetaXML struct{}

// NewCleanMetaXML returns the transform.
func NewCleanMetaXML() *CleanMetaXML {
	return &CleanMetaXML{}
}

// Name returns the transform kind.
func (t *CleanMetaXML) Name() string {
	return KindCleanMetaXML
}

// Apply rewrites -meta.xml entries that declare package versions. All other
// entries keep their original bytes.
func (t *CleanMetaXML) Apply(a *archive.Archive, _ pattern.Context) (*archive.Archive, error) {
	logger := logging.GetLogger("transform.metaxml")

	b := archive.NewBuilder(a.Len())
	cleaned := 0
	for _, e := range a.Entries() {
		if strings.HasSuffix(e.Name, metaXMLSuffix) && bytes.Contains(e.Content, []byte("<"+packageVersionsTag)) {
			content, err := stripPackageVersions(e)
			if err != nil {
				return nil, err
			}
			e = archive.Entry{Name: e.Name, Content: content}
			cleaned++
		}
		if err := b.Add(e); err != nil {
			return nil, err
		}
	}

	if cleaned == 0 {
		return a, nil
	}
	logger.Info().Int("cleaned", cleaned).Msg("Removed package versions from metadata")
	return b.Build(), nil
}

func stripPackageVersions(e archive.Entry) ([]byte, error) {
	doc := etree.NewDocument()
	doc.WriteSettings.CanonicalText = true
	doc.WriteSettings.CanonicalAttrVal = true
	if err := doc.ReadFromBytes(e.Content); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to parse %s", e.Name).
			WithDetail(errors.DetailEntry, e.Name).
			WithDetail(errors.DetailTransform, KindCleanMetaXML)
	}

	root := doc.Root()
	if root == nil {
		return e.Content, nil
	}
	for _, el := range root.SelectElements(packageVersionsTag) {
		idx := el.Index()
		root.RemoveChildAt(idx)
		// drop the indentation that preceded the element
		if idx > 0 {
			if cd, ok := root.Child[idx-1].(*etree.CharData); ok && cd.IsWhitespace() {
				root.RemoveChildAt(idx - 1)
			}
		}
	}

	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to write %s", e.Name)
	}
	return out, nil
}
