// Test Type: Unit Test
// Description: Tests for the zip container codec

package archive_test

import (
	stdzip "archive/zip"
	"bytes"
	"testing"

	"github.com/arthur-debert/pkgshift/pkg/archive"
	"github.com/arthur-debert/pkgshift/pkg/errors"
	"github.com/arthur-debert/pkgshift/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZipPreservesEntriesAndOrder(t *testing.T) {
	original := testutil.NewArchive(t).
		File("package.xml", testutil.ManifestWithoutStaleBlocks).
		File("objects/Request__c/Request__c.object-meta.xml", testutil.RequestObjectMeta).
		Bytes("staticresources/logo.resource", []byte{0x89, 0x50, 0x4e, 0x47, 0xff}).
		Build()

	data, err := archive.ZipBytes(original)
	require.NoError(t, err)

	decoded, err := archive.ReadZipBytes(data)
	require.NoError(t, err)
	assert.True(t, original.Equal(decoded))
}

func TestReadZipSkipsDirectoryRecords(t *testing.T) {
	var buf bytes.Buffer
	zw := stdzip.NewWriter(&buf)
	_, err := zw.Create("objects/")
	require.NoError(t, err)
	w, err := zw.Create("objects/Request__c.object")
	require.NoError(t, err)
	_, err = w.Write([]byte("obj"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	a, err := archive.ReadZipBytes(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []string{"objects/Request__c.object"}, a.Names())
}

func TestReadZipRejectsGarbage(t *testing.T) {
	_, err := archive.ReadZipBytes([]byte("definitely not a zip"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrArchiveRead))
}
