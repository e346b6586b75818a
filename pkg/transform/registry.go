package transform

import (
	"github.com/arthur-debert/pkgshift/pkg/errors"
	"github.com/arthur-debert/pkgshift/pkg/pattern"
	"github.com/arthur-debert/pkgshift/pkg/registry"
)

// Factory builds a transform from the run's pattern configuration.
type Factory func(patterns []pattern.Pattern) Transform

// Registry maps configured kind names to factories.
type Registry struct {
	factories *registry.Registry[Factory]
}

// NewRegistry returns a registry holding the base transform kinds a
// deploy framework may list.
func NewRegistry() *Registry {
	r := &Registry{factories: registry.New[Factory]()}
	registry.MustRegister(r.factories, KindFindReplace, func(p []pattern.Pattern) Transform {
		return NewContentReplace(p)
	})
	registry.MustRegister(r.factories, KindCleanMetaXML, func([]pattern.Pattern) Transform {
		return NewCleanMetaXML()
	})
	return r
}

// Register adds a kind.
func (r *Registry) Register(kind string, f Factory) error {
	return r.factories.Register(kind, f)
}

// Kinds lists the registered kinds in registration order.
func (r *Registry) Kinds() []string {
	return r.factories.List()
}

// Build instantiates the listed kinds in order.
func (r *Registry) Build(kinds []string, patterns []pattern.Pattern) ([]Transform, error) {
	out := make([]Transform, 0, len(kinds))
	for i, kind := range kinds {
		f, err := r.factories.Get(kind)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrTransformUnknown, "unknown transform kind %q at position %d", kind, i+1).
				WithDetail(errors.DetailTransform, kind)
		}
		out = append(out, f(patterns))
	}
	return out, nil
}
