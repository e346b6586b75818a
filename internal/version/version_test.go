package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "1.4.0"
	assert.Contains(t, String(), "pkgshift 1.4.0")
	assert.Contains(t, String(), "commit "+Commit)
}
