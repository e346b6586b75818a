package archive

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/pkgshift/pkg/errors"
	"github.com/spf13/afero"
)

// FromDir packages every regular file under root into an Archive. Entry
// names are slash-separated paths relative to root, in lexical walk order.
func FromDir(fs afero.Fs, root string) (*Archive, error) {
	b := NewBuilder(0)
	walkErr := afero.Walk(fs, root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		content, err := afero.ReadFile(fs, p)
		if err != nil {
			return err
		}
		return b.Add(Entry{Name: filepath.ToSlash(rel), Content: content})
	})
	if walkErr != nil {
		if errors.IsErrorCode(walkErr, errors.ErrDuplicateEntry) {
			return nil, walkErr
		}
		return nil, errors.Wrapf(walkErr, errors.ErrArchiveRead, "failed to package directory %s", root)
	}
	return b.Build(), nil
}

// EntryPath returns the file path an entry maps to below root. Names that
// would land outside root are rejected.
func EntryPath(root, name string) (string, error) {
	clean := path.Clean(name)
	if clean == ".." || strings.HasPrefix(clean, "../") || path.IsAbs(clean) {
		return "", errors.Newf(errors.ErrInvalidInput, "entry %q escapes the output directory", name).
			WithDetail(errors.DetailEntry, name)
	}
	return filepath.Join(root, filepath.FromSlash(clean)), nil
}

// WriteDir writes each entry as a file below root, creating parent
// directories as needed.
func WriteDir(fs afero.Fs, root string, a *Archive) error {
	for _, e := range a.entries {
		target, err := EntryPath(root, e.Name)
		if err != nil {
			return err
		}
		if err := fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return errors.Wrapf(err, errors.ErrArchiveWrite, "failed to create directory for %s", e.Name)
		}
		if err := afero.WriteFile(fs, target, e.Content, 0644); err != nil {
			return errors.Wrapf(err, errors.ErrArchiveWrite, "failed to write %s", e.Name).
				WithDetail(errors.DetailEntry, e.Name)
		}
	}
	return nil
}

// Load reads an archive from path: a directory is packaged with FromDir,
// anything else is decoded as a zip file.
func Load(fs afero.Fs, p string) (*Archive, error) {
	info, err := fs.Stat(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrNotFound, "archive %s not found", p)
		}
		return nil, errors.Wrapf(err, errors.ErrArchiveRead, "failed to stat %s", p)
	}
	if info.IsDir() {
		return FromDir(fs, p)
	}
	data, err := afero.ReadFile(fs, p)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrArchiveRead, "failed to read %s", p)
	}
	return ReadZipBytes(data)
}
