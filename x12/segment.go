package x12

import (
	"encoding/json"
	"slices"

	"x12map/internal/common"
)

// Segment is one line of a document: an identifier followed by its fields.
// Field i is the i-th token after the identifier.
type Segment struct {
	Name   string
	fields []*Field
}

// NewSegment returns a segment with the given identifier and field values.
// The values are stored untrimmed.
func NewSegment(name string, fields ...string) *Segment {
	s := &Segment{Name: name}
	for _, f := range fields {
		s.AddField(NewField(f))
	}

	return s
}

// Fields returns a copy of the field list.
func (s *Segment) Fields() []*Field {
	return slices.Clone(s.fields)
}

// Field returns the field at index i, if present.
func (s *Segment) Field(i int) (*Field, bool) {
	if !common.IsIndex(i, len(s.fields)) {
		return nil, false
	}

	return s.fields[i], true
}

// FieldValue returns the content of the field at index i, if present.
func (s *Segment) FieldValue(i int) (string, bool) {
	f, ok := s.Field(i)
	if !ok {
		return "", false
	}

	return f.content, true
}

// Values returns the content of every field in order.
func (s *Segment) Values() []string {
	out := make([]string, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.content
	}

	return out
}

// AddField appends a field.
func (s *Segment) AddField(f *Field) *Segment {
	s.fields = append(s.fields, f)

	return s
}

// RemoveField drops every occurrence of f from the segment.
func (s *Segment) RemoveField(f *Field) *Segment {
	s.fields = slices.DeleteFunc(s.fields, func(x *Field) bool { return x == f })

	return s
}

// TrimFields trims every field in place.
func (s *Segment) TrimFields() {
	for _, f := range s.fields {
		f.Trim()
	}
}

// MarshalJSON encodes the segment as {"name": ..., "fields": [...]}.
func (s *Segment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name   string   `json:"name"`
		Fields []*Field `json:"fields"`
	}{
		Name:   s.Name,
		Fields: s.nonNilFields(),
	})
}

func (s *Segment) nonNilFields() []*Field {
	if s.fields == nil {
		return []*Field{}
	}

	return s.fields
}
