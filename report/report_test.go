package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(logLevel int) *Collector {
	InitReporter(logLevel)
	c := &Collector{}
	SetSink(c)
	return c
}

func TestReporter_SilentStillCountsErrors(t *testing.T) {
	c := setup(LogLevelSilent)

	ReportError(nil, "broken")

	assert.True(t, AnyErrors())
	assert.Equal(t, 1, ErrorCount())
	assert.Empty(t, c.Diags)
}

func TestReporter_ErrorLevelSuppressesWarnings(t *testing.T) {
	c := setup(LogLevelError)

	ReportWarning(nil, "sketchy")
	ReportError(nil, "broken")

	require.Len(t, c.Diags, 1)
	assert.Equal(t, SevError, c.Diags[0].Severity)
	assert.Equal(t, 1, ErrorCount())
}

func TestReporter_ViolationCarriesKindAndNotes(t *testing.T) {
	c := setup(LogLevelVerbose)

	span := &TextSpan{StartLine: 4, StartCol: 2}
	ReportViolation(ViolationRecursion, span, Note{Message: "declared here"})

	require.Len(t, c.Diags, 1)
	d := c.Diags[0]
	assert.Equal(t, ViolationRecursion, d.Violation)
	assert.Equal(t, ViolationRecursion.Message(), d.Message)
	assert.Equal(t, span, d.Span)
	require.Len(t, d.Notes, 1)

	require.Len(t, c.Violations(ViolationRecursion), 1)
	assert.Empty(t, c.Violations(ViolationVirtualCall))
}

func TestReporter_ReinitDiscardsState(t *testing.T) {
	setup(LogLevelVerbose)
	ReportError(nil, "broken")
	require.True(t, AnyErrors())

	setup(LogLevelVerbose)
	assert.False(t, AnyErrors())
	assert.Equal(t, 0, ErrorCount())
}

func TestViolationMessages_AllDistinct(t *testing.T) {
	kinds := []RestrictKind{
		ViolationGlobalVariable, ViolationRTTI, ViolationNonConstStaticMember,
		ViolationVirtualCall, ViolationRecursion, ViolationFunctionPointerCall,
		ViolationHeapAllocation, ViolationException, ViolationInlineAssembly,
	}

	seen := make(map[string]struct{})
	for _, kind := range kinds {
		msg := kind.Message()
		assert.NotEmpty(t, msg)
		seen[msg] = struct{}{}
	}

	assert.Len(t, seen, len(kinds))
}
