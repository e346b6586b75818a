package deploy

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/arthur-debert/pkgshift/pkg/archive"
	"github.com/arthur-debert/pkgshift/pkg/errors"
	"github.com/arthur-debert/pkgshift/pkg/logging"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/core"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/arthur-debert/synthfs/pkg/synthfs/operations"
	"github.com/spf13/afero"
)

// TreeWriter materializes an archive as a directory tree.
type TreeWriter interface {
	WriteTree(root string, a *archive.Archive) error
}

// aferoTree writes trees on the runner's afero filesystem.
type aferoTree struct {
	fs afero.Fs
}

func (t aferoTree) WriteTree(root string, a *archive.Archive) error {
	return archive.WriteDir(t.fs, root, a)
}

// SynthfsTree writes a tree on the host filesystem as one synthfs pipeline:
// missing directories first, then every entry file.
type SynthfsTree struct {
	filesystem synthfs.FileSystem
}

// NewSynthfsTree returns a tree writer rooted at the host root.
func NewSynthfsTree() *SynthfsTree {
	return &SynthfsTree{filesystem: filesystem.NewOSFileSystem("/")}
}

// WriteTree writes every entry of a below root.
func (t *SynthfsTree) WriteTree(root string, a *archive.Archive) error {
	logger := logging.GetLogger("deploy.synthfs")

	abs, err := filepath.Abs(root)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "failed to resolve %s", root)
	}

	targets := make([]string, 0, a.Len())
	dirs := map[string]bool{}
	for _, e := range a.Entries() {
		target, err := archive.EntryPath(abs, e.Name)
		if err != nil {
			return err
		}
		targets = append(targets, target)
		for dir := filepath.Dir(target); ; dir = filepath.Dir(dir) {
			if dirs[dir] {
				break
			}
			if _, err := os.Stat(dir); err == nil {
				break
			}
			dirs[dir] = true
			if dir == abs || dir == filepath.Dir(dir) {
				break
			}
		}
	}

	// parents sort before their children
	missing := make([]string, 0, len(dirs))
	for dir := range dirs {
		missing = append(missing, dir)
	}
	sort.Strings(missing)

	pipeline := synthfs.NewMemPipeline()
	for _, dir := range missing {
		rel, err := filepath.Rel("/", dir)
		if err != nil {
			return errors.Wrapf(err, errors.ErrInvalidInput, "failed to convert path: %s", dir)
		}
		op := operations.NewCreateDirectoryOperation(core.OperationID(fmt.Sprintf("create-dir-%s", dir)), rel)
		op.SetItem(&directoryItem{path: rel, mode: 0755})
		if err := pipeline.Add(synthfs.NewOperationsPackageAdapter(op)); err != nil {
			return errors.Wrapf(err, errors.ErrArchiveWrite, "failed to plan directory %s", dir)
		}
	}
	for i, e := range a.Entries() {
		rel, err := filepath.Rel("/", targets[i])
		if err != nil {
			return errors.Wrapf(err, errors.ErrInvalidInput, "failed to convert path: %s", targets[i])
		}
		op := operations.NewCreateFileOperation(core.OperationID(fmt.Sprintf("write-file-%s", targets[i])), rel)
		op.SetItem(&fileItem{path: rel, content: e.Content, mode: 0644})
		if err := pipeline.Add(synthfs.NewOperationsPackageAdapter(op)); err != nil {
			return errors.Wrapf(err, errors.ErrArchiveWrite, "failed to plan %s", e.Name).
				WithDetail(errors.DetailEntry, e.Name)
		}
	}

	logger.Debug().
		Str("root", abs).
		Int("dirs", len(missing)).
		Int("files", a.Len()).
		Msg("Executing write pipeline")

	result := synthfs.NewExecutor().Run(context.Background(), pipeline, t.filesystem)
	if result.GetError() != nil {
		return errors.Wrapf(result.GetError(), errors.ErrArchiveWrite, "failed to write tree %s", abs)
	}
	return nil
}

type fileItem struct {
	path    string
	content []byte
	mode    fs.FileMode
}

func (f *fileItem) Path() string       { return f.path }
func (f *fileItem) Type() string       { return "file" }
func (f *fileItem) Content() []byte    { return f.content }
func (f *fileItem) Mode() fs.FileMode  { return f.mode }
func (f *fileItem) IsDir() bool        { return false }
func (f *fileItem) ModTime() time.Time { return time.Now() }
func (f *fileItem) Size() int64        { return int64(len(f.content)) }

type directoryItem struct {
	path string
	mode fs.FileMode
}

func (d *directoryItem) Path() string       { return d.path }
func (d *directoryItem) Type() string       { return "directory" }
func (d *directoryItem) Mode() fs.FileMode  { return d.mode }
func (d *directoryItem) IsDir() bool        { return true }
func (d *directoryItem) ModTime() time.Time { return time.Now() }
func (d *directoryItem) Size() int64        { return 0 }
