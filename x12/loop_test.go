package x12

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(group []*Segment) []string {
	out := make([]string, len(group))
	for i, s := range group {
		out[i] = s.Name
	}

	return out
}

func TestLoopRun(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		matchers []Matcher
		groups   [][]string
		first    []string // first field of each group's anchor
	}{
		{
			name:     "two plain groups",
			doc:      "A*1\nB\nC\nA*2\nB\nC",
			matchers: []Matcher{Bare("A"), Bare("B"), Bare("C")},
			groups:   [][]string{{"A", "B", "C"}, {"A", "B", "C"}},
			first:    []string{"1", "2"},
		},
		{
			name:     "qualified anchor drops the first run",
			doc:      "A*Y\nB\nC\nA*X\nB\nC",
			matchers: []Matcher{Qualified("A", 0, "X"), Bare("B"), Bare("C")},
			groups:   [][]string{{"A", "B", "C"}},
			first:    []string{"X"},
		},
		{
			name:     "unrelated segments are ignored",
			doc:      "ISA\nA*1\nZ\nB\nQ\nC\nSE",
			matchers: []Matcher{Bare("A"), Bare("B"), Bare("C")},
			groups:   [][]string{{"A", "B", "C"}},
			first:    []string{"1"},
		},
		{
			name:     "segments before the anchor are discarded",
			doc:      "B\nC\nA*1\nB\nC",
			matchers: []Matcher{Bare("A"), Bare("B"), Bare("C")},
			groups:   [][]string{{"A", "B", "C"}},
			first:    []string{"1"},
		},
		{
			name:     "trailing partial group is dropped",
			doc:      "A*1\nB\nC\nA*2\nB",
			matchers: []Matcher{Bare("A"), Bare("B"), Bare("C")},
			groups:   [][]string{{"A", "B", "C"}},
			first:    []string{"1"},
		},
		{
			name:     "no anchor",
			doc:      "B\nC",
			matchers: []Matcher{Bare("A"), Bare("B"), Bare("C")},
		},
		{
			name:     "qualifier checked only at group start",
			doc:      "A*X\nA*Y\nB\nA*Y\nA*X\nB",
			matchers: []Matcher{Qualified("A", 0, "X"), Bare("A"), Bare("B")},
			groups:   [][]string{{"A", "A", "B"}},
			first:    []string{"X"},
		},
		{
			name:     "qualified anchor with missing field",
			doc:      "A\nB\nA*X\nB",
			matchers: []Matcher{Qualified("A", 0, "X"), Bare("B")},
			groups:   [][]string{{"A", "B"}},
			first:    []string{"X"},
		},
		{
			name: "repeated member identifiers",
			doc:  "ST*990\nB1\nN9*CN\nN9*CI\nN9*CA\nSE\nST*990\nB1\nN9*CN\nN9*CI\nN9*CA\nSE",
			matchers: []Matcher{
				Bare("ST"), Bare("B1"), Bare("N9"), Bare("N9"), Bare("N9"), Bare("SE"),
			},
			groups: [][]string{
				{"ST", "B1", "N9", "N9", "N9", "SE"},
				{"ST", "B1", "N9", "N9", "N9", "SE"},
			},
			first: []string{"990", "990"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := ParseString(tt.doc)
			l := NewLoop(0, tt.matchers...)
			tx.AddLoop(l)
			tx.RunLoops()

			require.Len(t, l.Contents(), len(tt.groups))

			for i, group := range l.Contents() {
				assert.Equal(t, tt.groups[i], names(group))

				v, _ := group[0].FieldValue(0)
				assert.Equal(t, tt.first[i], v)
			}
		})
	}
}

func TestLoopRun_ReplacesContents(t *testing.T) {
	tx := ParseString("A\nB\nA\nB")
	l := NewLoop(0).AddSegmentIdentifiers("A", "B")
	tx.AddLoop(l)

	tx.RunLoops()
	tx.RunLoops()

	assert.Len(t, l.Contents(), 2)
}

func TestLoopRun_Empty(t *testing.T) {
	l := NewLoop(0)
	l.Run(ParseString("A\nB").Segments())

	assert.Empty(t, l.Contents())
	assert.Empty(t, l.LastSegmentIdentifier())

	_, ok := l.Anchor()
	assert.False(t, ok)
}

func TestLoopIdentifiers(t *testing.T) {
	l := NewLoop(3).
		AddMatcher(Qualified("N1", 0, "WH")).
		AddSegmentIdentifiers("N3", "N4")

	assert.Equal(t, []string{"N1", "N3", "N4"}, l.SegmentIdentifiers())
	assert.Equal(t, "N4", l.LastSegmentIdentifier())

	l.RemoveSegmentIdentifier("N3")
	assert.Equal(t, []string{"N1", "N4"}, l.SegmentIdentifiers())

	anchor, ok := l.Anchor()
	require.True(t, ok)
	assert.True(t, anchor.IsQualified())
	assert.Equal(t, "N1[0=WH]", anchor.String())

	l.SetPosition(0)
	assert.Equal(t, 0, l.Position)
}

func TestMatcherJSON(t *testing.T) {
	data, err := json.Marshal([]Matcher{Bare("W07"), Qualified("N1", 0, "WH")})
	require.NoError(t, err)
	assert.JSONEq(t,
		`["W07", {"segmentIdentifier":"N1","identifierPosition":0,"identifierValue":"WH"}]`,
		string(data))
}

func TestMatcherMatches(t *testing.T) {
	seg := NewSegment("N1", "WH", "Distribution Center")

	assert.True(t, Bare("N1").Matches(seg))
	assert.False(t, Bare("N2").Matches(seg))
	assert.True(t, Qualified("N1", 0, "WH").Matches(seg))
	assert.False(t, Qualified("N1", 0, "DE").Matches(seg))
	assert.False(t, Qualified("N1", 5, "WH").Matches(seg))
	assert.False(t, Bare("N1").Matches(nil))
}
