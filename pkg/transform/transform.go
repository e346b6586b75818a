package transform

import (
	"github.com/arthur-debert/pkgshift/pkg/archive"
	"github.com/arthur-debert/pkgshift/pkg/pattern"
)

// Transform kind names as they appear in configuration.
const (
	KindFindReplace          = "find_replace"
	KindFindReplaceFilenames = "find_replace_filenames"
	KindCleanMetaXML         = "clean_meta_xml"
	KindManifestPrune        = "strip_manifest_blocks"
)

// Transform maps one archive to a new one.
type Transform interface {
	// Name returns the transform kind.
	Name() string

	// Apply returns the transformed archive. The input archive and context
	// are not modified.
	Apply(a *archive.Archive, ctx pattern.Context) (*archive.Archive, error)
}
