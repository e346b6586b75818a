// Test Type: Unit Test
// Description: Tests for effective transform list assembly

package pipeline_test

import (
	"testing"

	"github.com/arthur-debert/pkgshift/pkg/pattern"
	"github.com/arthur-debert/pkgshift/pkg/pipeline"
	"github.com/arthur-debert/pkgshift/pkg/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble(t *testing.T) {
	first := []pattern.Pattern{{Find: "Request__c", Replace: "WorkRequest__c"}}
	second := []pattern.Pattern{{Find: "%%USER%%", InjectUsername: true}}
	clean := transform.NewCleanMetaXML()
	prune := transform.NewManifestPrune(transform.DefaultPruneOptions())

	base := []transform.Transform{
		transform.NewContentReplace(first),
		clean,
		transform.NewContentReplace(second),
	}

	t.Run("replaces_content_transforms_in_place", func(t *testing.T) {
		got := pipeline.Assemble(base, prune)
		require.Len(t, got, 4)

		f0, ok := got[0].(*transform.FilenameReplace)
		require.True(t, ok, "position 0 should be filename aware, got %T", got[0])
		assert.Equal(t, first, f0.Patterns())

		assert.Same(t, clean, got[1])

		f2, ok := got[2].(*transform.FilenameReplace)
		require.True(t, ok, "position 2 should be filename aware, got %T", got[2])
		assert.Equal(t, second, f2.Patterns())

		assert.Same(t, prune, got[3])
	})

	t.Run("base_list_unchanged", func(t *testing.T) {
		_ = pipeline.Assemble(base, prune)
		require.Len(t, base, 3)
		assert.IsType(t, &transform.ContentReplace{}, base[0])
		assert.IsType(t, &transform.ContentReplace{}, base[2])
	})

	t.Run("nil_prune_uses_default_convention", func(t *testing.T) {
		got := pipeline.Assemble(base, nil)
		require.Len(t, got, 4)
		last, ok := got[3].(*transform.ManifestPrune)
		require.True(t, ok, "prune must run last, got %T", got[3])
		assert.Equal(t, transform.DefaultPruneOptions(), last.Options())
	})

	t.Run("wrapped_content_replace_not_upgraded", func(t *testing.T) {
		wrapped := struct{ transform.Transform }{transform.NewContentReplace(first)}
		got := pipeline.Assemble([]transform.Transform{wrapped}, prune)
		require.Len(t, got, 2)
		assert.Equal(t, transform.KindFindReplace, got[0].Name())
	})

	t.Run("filename_transform_kept", func(t *testing.T) {
		existing := transform.NewFilenameReplace(first)
		got := pipeline.Assemble([]transform.Transform{existing}, prune)
		require.Len(t, got, 2)
		assert.Same(t, existing, got[0])
	})

	t.Run("empty_base", func(t *testing.T) {
		got := pipeline.Assemble(nil, prune)
		require.Len(t, got, 1)
		assert.Same(t, prune, got[0])
	})
}
