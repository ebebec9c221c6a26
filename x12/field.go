package x12

import (
	"encoding/json"
	"strings"
)

var controlReplacer = strings.NewReplacer("\n", "", "\t", "", "\r", "")

// Field is a single delimited value of a Segment.
type Field struct {
	content string
}

// NewField returns a Field holding content as is.
func NewField(content string) *Field {
	return &Field{content: content}
}

// Content returns the text of the field.
func (f *Field) Content() string {
	return f.content
}

// String implements fmt.Stringer.
func (f *Field) String() string {
	return f.content
}

// Len returns the length of the content in bytes.
func (f *Field) Len() int {
	return len(f.content)
}

// Trim removes surrounding whitespace and drops every newline, tab and
// carriage return from the content.
func (f *Field) Trim() *Field {
	f.content = controlReplacer.Replace(strings.TrimSpace(f.content))

	return f
}

// MarshalJSON encodes the field as its bare content.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.content)
}
