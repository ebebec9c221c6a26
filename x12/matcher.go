package x12

import (
	"encoding/json"
	"fmt"
)

// Qualifier narrows a segment identifier to segments whose field at
// Position holds Value.
type Qualifier struct {
	Position int    `json:"identifierPosition" yaml:"identifierPosition"`
	Value    string `json:"identifierValue" yaml:"identifierValue"`
}

// Matches reports whether seg carries the qualifying value.
// A missing field never matches.
func (q Qualifier) Matches(seg *Segment) bool {
	v, ok := seg.FieldValue(q.Position)

	return ok && v == q.Value
}

// Matcher selects segments by identifier and, when Qualifier is set, by the
// value of one of their fields.
type Matcher struct {
	SegmentID string
	Qualifier *Qualifier
}

// Bare returns a matcher for any segment named id.
func Bare(id string) Matcher {
	return Matcher{SegmentID: id}
}

// Qualified returns a matcher for segments named id whose field at position
// equals value.
func Qualified(id string, position int, value string) Matcher {
	return Matcher{
		SegmentID: id,
		Qualifier: &Qualifier{Position: position, Value: value},
	}
}

// IsQualified reports whether the matcher carries a qualifier.
func (m Matcher) IsQualified() bool {
	return m.Qualifier != nil
}

// Matches reports whether seg is selected by the matcher.
func (m Matcher) Matches(seg *Segment) bool {
	if seg == nil || seg.Name != m.SegmentID {
		return false
	}

	return m.Qualifier == nil || m.Qualifier.Matches(seg)
}

// String returns "ID" for bare matchers and "ID[pos=value]" for qualified ones.
func (m Matcher) String() string {
	if m.Qualifier == nil {
		return m.SegmentID
	}

	return fmt.Sprintf("%s[%d=%s]", m.SegmentID, m.Qualifier.Position, m.Qualifier.Value)
}

// MarshalJSON encodes a bare matcher as its identifier and a qualified one as
// an object with segmentIdentifier, identifierPosition and identifierValue.
func (m Matcher) MarshalJSON() ([]byte, error) {
	if m.Qualifier == nil {
		return json.Marshal(m.SegmentID)
	}

	return json.Marshal(struct {
		SegmentID string `json:"segmentIdentifier"`
		Qualifier
	}{
		SegmentID: m.SegmentID,
		Qualifier: *m.Qualifier,
	})
}
