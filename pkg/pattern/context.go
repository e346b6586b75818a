package pattern

import "os"

// Context is the read-only run data replacement resolution may consult.
type Context interface {
	Username() string
	OrgURL() string
	LookupEnv(key string) (string, bool)
}

// RunContext is the Context for one deploy invocation.
type RunContext struct {
	username string
	orgURL   string
	lookup   func(string) (string, bool)
}

// NewRunContext returns a context reading environment variables from the
// process environment.
func NewRunContext(username, orgURL string) *RunContext {
	return &RunContext{username: username, orgURL: orgURL, lookup: os.LookupEnv}
}

// WithEnv returns a copy of the context that reads environment variables
// from env instead of the process.
func (c *RunContext) WithEnv(env map[string]string) *RunContext {
	clone := *c
	clone.lookup = func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
	return &clone
}

// Username returns the deploying user's name. A nil context has none.
func (c *RunContext) Username() string {
	if c == nil {
		return ""
	}
	return c.username
}

// OrgURL returns the target org instance URL.
func (c *RunContext) OrgURL() string {
	if c == nil {
		return ""
	}
	return c.orgURL
}

// LookupEnv returns an environment value.
func (c *RunContext) LookupEnv(key string) (string, bool) {
	if c == nil || c.lookup == nil {
		return "", false
	}
	return c.lookup(key)
}
