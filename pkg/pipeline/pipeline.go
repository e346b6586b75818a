package pipeline

import (
	"time"

	"github.com/arthur-debert/pkgshift/pkg/archive"
	"github.com/arthur-debert/pkgshift/pkg/logging"
	"github.com/arthur-debert/pkgshift/pkg/pattern"
	"github.com/arthur-debert/pkgshift/pkg/transform"
)

// Step records the effect of one transform.
type Step struct {
	Transform  string        `json:"transform" yaml:"transform"`
	EntriesIn  int           `json:"entries_in" yaml:"entries_in"`
	EntriesOut int           `json:"entries_out" yaml:"entries_out"`
	Added      []string      `json:"added,omitempty" yaml:"added,omitempty"`
	Removed    []string      `json:"removed,omitempty" yaml:"removed,omitempty"`
	Changed    bool          `json:"changed" yaml:"changed"`
	Duration   time.Duration `json:"duration" yaml:"duration"`
}

// Report summarizes a pipeline run.
type Report struct {
	Steps   []Step `json:"steps" yaml:"steps"`
	Entries int    `json:"entries" yaml:"entries"`
}

// Pipeline is an ordered transform list.
type Pipeline struct {
	transforms []transform.Transform
}

// New returns a pipeline running transforms in order.
func New(transforms []transform.Transform) *Pipeline {
	return &Pipeline{transforms: append([]transform.Transform(nil), transforms...)}
}

// Transforms returns the transform names in run order.
func (p *Pipeline) Transforms() []string {
	names := make([]string, len(p.transforms))
	for i, t := range p.transforms {
		names[i] = t.Name()
	}
	return names
}

// Run applies every transform in order, feeding each the previous output.
// The first failing transform aborts the run and its error is returned
// unchanged, along with the steps completed so far.
func (p *Pipeline) Run(a *archive.Archive, ctx pattern.Context) (*archive.Archive, Report, error) {
	logger := logging.GetLogger("pipeline")
	done := logging.LogOperationStart(logger, "pipeline")
	defer done()

	report := Report{Steps: make([]Step, 0, len(p.transforms))}
	current := a
	for i, t := range p.transforms {
		start := time.Now()
		next, err := t.Apply(current, ctx)
		if err != nil {
			logger.Error().Err(err).Str("transform", t.Name()).Int("position", i+1).Msg("Transform failed")
			return nil, report, err
		}

		step := diff(current, next)
		step.Transform = t.Name()
		step.Duration = time.Since(start)
		report.Steps = append(report.Steps, step)

		logger.Debug().
			Str("transform", t.Name()).
			Int("in", step.EntriesIn).
			Int("out", step.EntriesOut).
			Bool("changed", step.Changed).
			Msg("Transform applied")
		current = next
	}

	report.Entries = current.Len()
	return current, report, nil
}

// diff compares the archives around one transform by entry name.
func diff(before, after *archive.Archive) Step {
	step := Step{EntriesIn: before.Len(), EntriesOut: after.Len()}
	if before == after {
		return step
	}
	for _, name := range after.Names() {
		if !before.Has(name) {
			step.Added = append(step.Added, name)
		}
	}
	for _, name := range before.Names() {
		if !after.Has(name) {
			step.Removed = append(step.Removed, name)
		}
	}
	step.Changed = !before.Equal(after)
	return step
}
