// Package deploy owns one pkgshift invocation: it loads the source
// package, runs the assembled transform pipeline, encodes the result and
// hands it to a deploy backend. All filesystem access happens here.
package deploy

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"

	"github.com/arthur-debert/pkgshift/pkg/errors"
	"github.com/arthur-debert/pkgshift/pkg/logging"
	"github.com/spf13/afero"
)

// Result describes what a backend accepted.
type Result struct {
	Backend  string
	Target   string
	Bytes    int
	Checksum string
}

// Checksum returns the sha256 digest of payload as "sha256:<hex>".
func Checksum(payload []byte) string {
	sum := sha256.Sum256(payload)
	return "sha256:" + hex.EncodeToString(sum[:])
}

// Backend receives the encoded package.
type Backend interface {
	Name() string
	Deploy(ctx context.Context, payload []byte) (Result, error)
}

// FileBackend writes the package zip to a path. It stands in for an org
// deploy when packages are shipped by another tool.
type FileBackend struct {
	fs   afero.Fs
	path string
}

// NewFileBackend returns a backend writing to path on fs.
func NewFileBackend(fs afero.Fs, path string) *FileBackend {
	return &FileBackend{fs: fs, path: path}
}

// Name returns the backend name.
func (b *FileBackend) Name() string {
	return "file"
}

// Deploy writes payload to the configured path.
func (b *FileBackend) Deploy(ctx context.Context, payload []byte) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, errors.Wrap(err, errors.ErrDeployFailed, "deploy cancelled")
	}
	if b.path == "" {
		return Result{}, errors.New(errors.ErrInvalidInput, "file backend has no target path")
	}

	if err := b.fs.MkdirAll(filepath.Dir(b.path), 0755); err != nil {
		return Result{}, errors.Wrapf(err, errors.ErrDeployFailed, "failed to create directory for %s", b.path)
	}
	if err := afero.WriteFile(b.fs, b.path, payload, 0644); err != nil {
		return Result{}, errors.Wrapf(err, errors.ErrDeployFailed, "failed to write %s", b.path)
	}

	logger := logging.GetLogger("deploy.file")
	logger.Info().
		Str("path", b.path).
		Int("bytes", len(payload)).
		Msg("Package written")
	return Result{
		Backend:  b.Name(),
		Target:   b.path,
		Bytes:    len(payload),
		Checksum: Checksum(payload),
	}, nil
}
