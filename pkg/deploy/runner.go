package deploy

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/pkgshift/pkg/archive"
	"github.com/arthur-debert/pkgshift/pkg/config"
	"github.com/arthur-debert/pkgshift/pkg/errors"
	"github.com/arthur-debert/pkgshift/pkg/logging"
	"github.com/arthur-debert/pkgshift/pkg/pattern"
	"github.com/arthur-debert/pkgshift/pkg/pipeline"
	"github.com/arthur-debert/pkgshift/pkg/transform"
	"github.com/spf13/afero"
)

// Outcome is the result of running the pipeline over one package.
type Outcome struct {
	Archive    *archive.Archive
	Report     pipeline.Report
	Transforms []string
	Deploy     *Result
}

// Runner runs configured pipelines over packages on a filesystem.
type Runner struct {
	fs       afero.Fs
	cfg      *config.Config
	registry *transform.Registry
	context  pattern.Context
	backend  Backend
	tree     TreeWriter
}

// Option configures a Runner.
type Option func(*Runner)

// WithRegistry replaces the default transform registry.
func WithRegistry(r *transform.Registry) Option {
	return func(rn *Runner) { rn.registry = r }
}

// WithBackend sets the deploy backend.
func WithBackend(b Backend) Option {
	return func(rn *Runner) { rn.backend = b }
}

// WithTreeWriter sets how Write materializes directory output. The default
// writes on the runner's filesystem.
func WithTreeWriter(w TreeWriter) Option {
	return func(rn *Runner) { rn.tree = w }
}

// WithPatternContext replaces the context built from configuration.
func WithPatternContext(ctx pattern.Context) Option {
	return func(rn *Runner) { rn.context = ctx }
}

// NewRunner returns a runner for cfg.
func NewRunner(fs afero.Fs, cfg *config.Config, opts ...Option) *Runner {
	r := &Runner{
		fs:       fs,
		cfg:      cfg,
		registry: transform.NewRegistry(),
		context:  cfg.PatternContext(),
		tree:     aferoTree{fs: fs},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Pipeline builds the base transform list from configuration and assembles
// the effective pipeline.
func (r *Runner) Pipeline() (*pipeline.Pipeline, error) {
	base, err := r.registry.Build(r.cfg.Transforms, r.cfg.Patterns)
	if err != nil {
		return nil, err
	}
	return pipeline.New(pipeline.Assemble(base, r.cfg.PruneTransform())), nil
}

// Transform loads source and runs the pipeline over it.
func (r *Runner) Transform(ctx context.Context, source string) (*Outcome, error) {
	logger := logging.GetLogger("deploy.runner")

	p, err := r.Pipeline()
	if err != nil {
		return nil, err
	}

	in, err := archive.Load(r.fs, source)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("source", source).Int("entries", in.Len()).Msg("Package loaded")

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrDeployFailed, "run cancelled")
	}

	out, report, err := p.Run(in, r.context)
	if err != nil {
		return nil, err
	}
	return &Outcome{Archive: out, Report: report, Transforms: p.Transforms()}, nil
}

// Deploy transforms source and submits the zipped result to the backend.
func (r *Runner) Deploy(ctx context.Context, source string) (*Outcome, error) {
	if r.backend == nil {
		return nil, errors.New(errors.ErrInvalidInput, "no deploy backend configured")
	}

	outcome, err := r.Transform(ctx, source)
	if err != nil {
		return nil, err
	}

	payload, err := archive.ZipBytes(outcome.Archive)
	if err != nil {
		return nil, err
	}

	result, err := r.backend.Deploy(ctx, payload)
	if err != nil {
		if errors.GetErrorCode(err) == errors.ErrUnknown {
			err = errors.Wrapf(err, errors.ErrDeployFailed, "%s backend failed", r.backend.Name())
		}
		return nil, err
	}
	outcome.Deploy = &result
	return outcome, nil
}

// Write stores an archive at path: a .zip path gets a zip file, anything
// else a directory tree.
func (r *Runner) Write(a *archive.Archive, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		payload, err := archive.ZipBytes(a)
		if err != nil {
			return err
		}
		_, err = NewFileBackend(r.fs, path).Deploy(context.Background(), payload)
		if err != nil {
			return errors.Wrapf(err, errors.ErrArchiveWrite, "failed to write %s", path)
		}
		return nil
	}
	return r.tree.WriteTree(path, a)
}
