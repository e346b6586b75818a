// Test Type: Unit Test
// Description: Tests for pattern validation and replacement resolution

package pattern_test

import (
	"testing"

	"github.com/arthur-debert/pkgshift/pkg/errors"
	"github.com/arthur-debert/pkgshift/pkg/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	ctx := pattern.NewRunContext("deployer@example.com", "https://example.my.salesforce.com").
		WithEnv(map[string]string{"NAMESPACE": "delivery"})

	tests := []struct {
		name    string
		pattern pattern.Pattern
		want    string
	}{
		{"literal", pattern.Pattern{Find: "Request__c", Replace: "WorkRequest__c"}, "WorkRequest__c"},
		{"empty_literal_deletes", pattern.Pattern{Find: "%%%NAMESPACE%%%"}, ""},
		{"username", pattern.Pattern{Find: "%%USER%%", InjectUsername: true}, "deployer@example.com"},
		{"org_url", pattern.Pattern{Find: "%%ORG%%", InjectOrgURL: true}, "https://example.my.salesforce.com"},
		{"env", pattern.Pattern{Find: "%%NS%%", Env: "NAMESPACE"}, "delivery"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.pattern.Resolve(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveFailures(t *testing.T) {
	ctx := pattern.NewRunContext("", "").WithEnv(map[string]string{})

	tests := []struct {
		name    string
		pattern pattern.Pattern
		ctx     pattern.Context
	}{
		{"missing_env", pattern.Pattern{Find: "x", Env: "UNSET_VAR"}, ctx},
		{"missing_username", pattern.Pattern{Find: "x", InjectUsername: true}, ctx},
		{"missing_org_url", pattern.Pattern{Find: "x", InjectOrgURL: true}, ctx},
		{"nil_context", pattern.Pattern{Find: "x", Env: "HOME"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.pattern.Resolve(tt.ctx)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrPatternResolve))
			assert.Equal(t, "x", errors.GetErrorDetails(err)[errors.DetailRule])
		})
	}
}

func TestLiteralResolvesWithoutContext(t *testing.T) {
	got, err := pattern.Pattern{Find: "a", Replace: "b"}.Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, "b", got)
}

func TestResolveWithNilRunContext(t *testing.T) {
	var rc *pattern.RunContext
	var ctx pattern.Context = rc

	for _, p := range []pattern.Pattern{
		{Find: "%%USER%%", InjectUsername: true},
		{Find: "%%ORG%%", InjectOrgURL: true},
		{Find: "%%NS%%", Env: "NAMESPACE"},
	} {
		var err error
		require.NotPanics(t, func() { _, err = p.Resolve(ctx) }, p.Find)
		assert.True(t, errors.IsErrorCode(err, errors.ErrPatternResolve), p.Find)
	}

	got, err := pattern.Pattern{Find: "a", Replace: "b"}.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "b", got)
}

func TestValidate(t *testing.T) {
	t.Run("single_source_ok", func(t *testing.T) {
		require.NoError(t, pattern.Validate([]pattern.Pattern{
			{Find: "a", Replace: "b"},
			{Find: "c", Env: "C"},
			{Find: "d", InjectUsername: true},
			{Find: ""},
		}))
	})

	t.Run("two_sources_rejected", func(t *testing.T) {
		err := pattern.Validate([]pattern.Pattern{
			{Find: "a", Replace: "b"},
			{Find: "c", Replace: "d", Env: "D"},
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
		assert.Contains(t, err.Error(), "pattern 2")
	})
}

func TestActive(t *testing.T) {
	patterns := []pattern.Pattern{{Find: ""}, {Find: "a"}, {Find: "", Replace: "x"}}
	assert.False(t, patterns[0].Active())
	assert.True(t, patterns[1].Active())
	assert.Equal(t, 1, pattern.ActiveCount(patterns))
}
