// Package pattern defines find/replace rules and the run context their
// replacement text is resolved against.
package pattern

import (
	"fmt"

	"github.com/arthur-debert/pkgshift/pkg/errors"
)

// Pattern is one find/replace rule. The replacement comes from exactly one
// source: the run username, the run org URL, an environment variable, or
// the literal Replace text.
type Pattern struct {
	Find           string `koanf:"find" toml:"find" yaml:"find" json:"find"`
	Replace        string `koanf:"replace" toml:"replace,omitempty" yaml:"replace,omitempty" json:"replace,omitempty"`
	Env            string `koanf:"env" toml:"env,omitempty" yaml:"env,omitempty" json:"env,omitempty"`
	InjectUsername bool   `koanf:"inject_username" toml:"inject_username,omitempty" yaml:"inject_username,omitempty" json:"inject_username,omitempty"`
	InjectOrgURL   bool   `koanf:"inject_org_url" toml:"inject_org_url,omitempty" yaml:"inject_org_url,omitempty" json:"inject_org_url,omitempty"`
}

// Active reports whether the pattern can match anything. An empty Find is
// inert.
func (p Pattern) Active() bool {
	return p.Find != ""
}

// Resolve returns the replacement text for this run.
func (p Pattern) Resolve(ctx Context) (string, error) {
	switch {
	case p.InjectUsername:
		if ctx == nil || ctx.Username() == "" {
			return "", p.resolveError("no username available for inject_username")
		}
		return ctx.Username(), nil
	case p.InjectOrgURL:
		if ctx == nil || ctx.OrgURL() == "" {
			return "", p.resolveError("no org URL available for inject_org_url")
		}
		return ctx.OrgURL(), nil
	case p.Env != "":
		if ctx == nil {
			return "", p.resolveError(fmt.Sprintf("environment variable %s is not set", p.Env))
		}
		value, ok := ctx.LookupEnv(p.Env)
		if !ok {
			return "", p.resolveError(fmt.Sprintf("environment variable %s is not set", p.Env))
		}
		return value, nil
	default:
		return p.Replace, nil
	}
}

func (p Pattern) resolveError(msg string) error {
	return errors.Newf(errors.ErrPatternResolve, "cannot resolve replacement for %q: %s", p.Find, msg).
		WithDetail(errors.DetailRule, p.Find)
}

// Validate checks that at most one replacement source is set.
func (p Pattern) Validate() error {
	sources := 0
	if p.Replace != "" {
		sources++
	}
	if p.Env != "" {
		sources++
	}
	if p.InjectUsername {
		sources++
	}
	if p.InjectOrgURL {
		sources++
	}
	if sources > 1 {
		return errors.Newf(errors.ErrConfigValid, "pattern %q sets more than one of replace, env, inject_username, inject_org_url", p.Find).
			WithDetail(errors.DetailRule, p.Find)
	}
	return nil
}

// String names the rule in logs and error messages.
func (p Pattern) String() string {
	return p.Find
}

// Validate checks every pattern in list order.
func Validate(patterns []Pattern) error {
	for i, p := range patterns {
		if err := p.Validate(); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "pattern %d is invalid", i+1)
		}
	}
	return nil
}

// ActiveCount returns how many patterns have a non-empty Find.
func ActiveCount(patterns []Pattern) int {
	n := 0
	for _, p := range patterns {
		if p.Active() {
			n++
		}
	}
	return n
}
