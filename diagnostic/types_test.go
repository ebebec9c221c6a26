package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	d := &Diagnostics{}
	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddWarning("unknown_type", `unknown _type "Foo"`, "header.foo")
	d.AddInfo("inherited_segment", "inherits N9", "refs.qualifier")
	assert.True(t, d.IsValid())
	assert.True(t, d.HasWarnings())
	require.NoError(t, d.Error())

	d.AddError("negative_position", "valuePosition must not be negative", "header.date")
	d.AddError("missing_segment", "segmentIdentifier is required", "")
	assert.True(t, d.HasErrors())

	err := d.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header.date: [negative_position] valuePosition must not be negative")
	assert.Contains(t, err.Error(), "[missing_segment] segmentIdentifier is required")
	assert.Contains(t, err.Error(), "2 errors occurred")

	assert.Len(t, d.All(), 4)
	assert.Equal(t, SeverityError, d.All()[0].Severity)
}

func TestMerge(t *testing.T) {
	a := &Diagnostics{}
	a.AddError("a", "first", "")

	b := &Diagnostics{}
	b.AddWarning("b", "second", "")
	b.AddInfo("c", "third", "")

	a.Merge(b)
	a.Merge(nil)

	assert.Len(t, a.Errors, 1)
	assert.Len(t, a.Warnings, 1)
	assert.Len(t, a.Infos, 1)
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
