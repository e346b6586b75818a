package archive

import (
	"bytes"
	"io"
	"strings"

	"github.com/arthur-debert/pkgshift/pkg/errors"
	"github.com/klauspost/compress/zip"
)

// ReadZip decodes a zip container into an Archive. Directory records are
// skipped; entry order follows the zip central directory.
func ReadZip(r io.ReaderAt, size int64) (*Archive, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrArchiveRead, "failed to open zip archive")
	}

	b := NewBuilder(len(zr.File))
	for _, f := range zr.File {
		if strings.HasSuffix(f.Name, "/") {
			continue
		}
		content, err := readZipFile(f)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrArchiveRead, "failed to read zip entry %s", f.Name).
				WithDetail(errors.DetailEntry, f.Name)
		}
		if err := b.Add(Entry{Name: f.Name, Content: content}); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

// ReadZipBytes decodes an in-memory zip container.
func ReadZipBytes(data []byte) (*Archive, error) {
	return ReadZip(bytes.NewReader(data), int64(len(data)))
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return io.ReadAll(rc)
}

// WriteZip encodes the archive as a deflate-compressed zip container.
func WriteZip(w io.Writer, a *Archive) (err error) {
	zw := zip.NewWriter(w)
	defer func() {
		if closeErr := zw.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, errors.ErrArchiveWrite, "failed to finish zip archive")
		}
	}()

	for _, e := range a.entries {
		fw, createErr := zw.CreateHeader(&zip.FileHeader{Name: e.Name, Method: zip.Deflate})
		if createErr != nil {
			return errors.Wrapf(createErr, errors.ErrArchiveWrite, "failed to create zip entry %s", e.Name).
				WithDetail(errors.DetailEntry, e.Name)
		}
		if _, writeErr := fw.Write(e.Content); writeErr != nil {
			return errors.Wrapf(writeErr, errors.ErrArchiveWrite, "failed to write zip entry %s", e.Name).
				WithDetail(errors.DetailEntry, e.Name)
		}
	}
	return nil
}

// ZipBytes encodes the archive into a new byte slice.
func ZipBytes(a *Archive) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteZip(&buf, a); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
