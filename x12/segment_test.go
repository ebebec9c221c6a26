package x12

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldTrim(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "ST", want: "ST"},
		{in: "  ST\n", want: "ST"},
		{in: "\t997\r", want: "997"},
		{in: "AB\tC", want: "ABC"},
		{in: "ABC Hauling STAR USA", want: "ABC Hauling STAR USA"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		f := NewField(tt.in).Trim()
		assert.Equal(t, tt.want, f.Content())
		assert.Equal(t, len(tt.want), f.Len())
	}
}

func TestSegmentFields(t *testing.T) {
	seg := NewSegment("N9", "CN", "3216547")

	v, ok := seg.FieldValue(1)
	require.True(t, ok)
	assert.Equal(t, "3216547", v)

	_, ok = seg.FieldValue(2)
	assert.False(t, ok)

	_, ok = seg.Field(-1)
	assert.False(t, ok)

	first, _ := seg.Field(0)
	seg.RemoveField(first)
	assert.Equal(t, []string{"3216547"}, seg.Values())

	// Fields returns a copy
	fields := seg.Fields()
	fields[0] = NewField("changed")
	assert.Equal(t, []string{"3216547"}, seg.Values())
}

func TestSegmentTrimFields(t *testing.T) {
	seg := NewSegment("ST", " 944 ", "0001\r")
	seg.TrimFields()

	assert.Equal(t, []string{"944", "0001"}, seg.Values())
}

func TestSegmentJSON(t *testing.T) {
	data, err := json.Marshal(NewSegment("ST", "944", "0001"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"ST","fields":["944","0001"]}`, string(data))

	data, err = json.Marshal(NewSegment("SE"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"SE","fields":[]}`, string(data))
}
