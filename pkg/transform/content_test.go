// Test Type: Unit Test
// Description: Tests for content replacement - ordering, no-op behavior, decoding

package transform_test

import (
	"testing"

	"github.com/arthur-debert/pkgshift/pkg/errors"
	"github.com/arthur-debert/pkgshift/pkg/pattern"
	"github.com/arthur-debert/pkgshift/pkg/testutil"
	"github.com/arthur-debert/pkgshift/pkg/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentReplaceEmptyPatternsIsIdentity(t *testing.T) {
	in := testutil.NewArchive(t).
		File("classes/RequestService.cls", "Request__c r;").
		Bytes("staticresources/logo.resource", []byte{0xff, 0xfe}).
		Build()

	for _, patterns := range [][]pattern.Pattern{nil, {{Find: ""}}, {{Find: "", Replace: "x"}}} {
		out, err := transform.NewContentReplace(patterns).Apply(in, nil)
		require.NoError(t, err)
		assert.True(t, in.Equal(out))
	}
}

func TestContentReplaceRewritesAllOccurrences(t *testing.T) {
	in := testutil.NewArchive(t).
		File("classes/RequestService.cls", "List<Request__c> r = [SELECT Id FROM Request__c];").
		File("classes/Other.cls", "no match here").
		Build()

	out, err := transform.NewContentReplace([]pattern.Pattern{
		{Find: "Request__c", Replace: "WorkRequest__c"},
	}).Apply(in, nil)
	require.NoError(t, err)

	assert.Equal(t, in.Names(), out.Names())
	assert.Equal(t, "List<WorkRequest__c> r = [SELECT Id FROM WorkRequest__c];",
		testutil.Content(t, out, "classes/RequestService.cls"))
	assert.Equal(t, "no match here", testutil.Content(t, out, "classes/Other.cls"))
}

func TestContentReplaceChainsPatternsInOrder(t *testing.T) {
	in := testutil.NewArchive(t).File("a.txt", "alpha").Build()

	t.Run("second_sees_first_output", func(t *testing.T) {
		out, err := transform.NewContentReplace([]pattern.Pattern{
			{Find: "alpha", Replace: "beta"},
			{Find: "beta", Replace: "gamma"},
		}).Apply(in, nil)
		require.NoError(t, err)
		assert.Equal(t, "gamma", testutil.Content(t, out, "a.txt"))
	})

	t.Run("reverse_order_applies_once", func(t *testing.T) {
		out, err := transform.NewContentReplace([]pattern.Pattern{
			{Find: "beta", Replace: "gamma"},
			{Find: "alpha", Replace: "beta"},
		}).Apply(in, nil)
		require.NoError(t, err)
		assert.Equal(t, "beta", testutil.Content(t, out, "a.txt"))
	})
}

func TestContentReplaceDoesNotMutateInput(t *testing.T) {
	in := testutil.NewArchive(t).File("a.txt", "Request__c").Build()

	_, err := transform.NewContentReplace([]pattern.Pattern{{Find: "Request__c", Replace: "X"}}).Apply(in, nil)
	require.NoError(t, err)

	assert.Equal(t, "Request__c", testutil.Content(t, in, "a.txt"))
}

func TestContentReplaceResolvesAgainstContext(t *testing.T) {
	in := testutil.NewArchive(t).File("settings.xml", "<user>%%USER%%</user><ns>%%NS%%</ns>").Build()
	ctx := pattern.NewRunContext("deployer@example.com", "").WithEnv(map[string]string{"NS": "delivery"})

	out, err := transform.NewContentReplace([]pattern.Pattern{
		{Find: "%%USER%%", InjectUsername: true},
		{Find: "%%NS%%", Env: "NS"},
	}).Apply(in, ctx)
	require.NoError(t, err)

	assert.Equal(t, "<user>deployer@example.com</user><ns>delivery</ns>", testutil.Content(t, out, "settings.xml"))
}

func TestContentReplaceUnresolvablePattern(t *testing.T) {
	in := testutil.NewArchive(t).File("a.txt", "x").Build()
	ctx := pattern.NewRunContext("", "").WithEnv(map[string]string{})

	out, err := transform.NewContentReplace([]pattern.Pattern{{Find: "x", Env: "MISSING"}}).Apply(in, ctx)
	assert.Nil(t, out)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPatternResolve))
}

func TestContentReplaceInvalidUTF8(t *testing.T) {
	in := testutil.NewArchive(t).
		File("a.txt", "Request__c").
		Bytes("staticresources/logo.resource", []byte{0x89, 'P', 'N', 'G', 0xff, 0xfe}).
		Build()

	out, err := transform.NewContentReplace([]pattern.Pattern{{Find: "Request__c", Replace: "X"}}).Apply(in, nil)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDecoding))

	details := errors.GetErrorDetails(err)
	assert.Equal(t, "staticresources/logo.resource", details[errors.DetailEntry])
	assert.Equal(t, "Request__c", details[errors.DetailRule])
}

func TestContentReplaceDecodingNamesAllRules(t *testing.T) {
	in := testutil.NewArchive(t).Bytes("bin/blob", []byte{0xff, 0xfe, 0x00}).Build()

	_, err := transform.NewContentReplace([]pattern.Pattern{
		{Find: "alpha", Replace: "a"},
		{Find: ""},
		{Find: "beta", Replace: "b"},
	}).Apply(in, nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDecoding))
	assert.Equal(t, "alpha, beta", errors.GetErrorDetails(err)[errors.DetailRule])
}

func TestContentReplacePatternsAreCopied(t *testing.T) {
	patterns := []pattern.Pattern{{Find: "a", Replace: "b"}}
	tr := transform.NewContentReplace(patterns)
	patterns[0].Replace = "changed"

	assert.Equal(t, "b", tr.Patterns()[0].Replace)
	assert.Equal(t, transform.KindFindReplace, tr.Name())
}
