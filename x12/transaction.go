package x12

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"x12map/internal/common"
)

const (
	// DefaultLineTerminator separates segments.
	DefaultLineTerminator = "\n"
	// DefaultFieldTerminator separates fields within a segment.
	DefaultFieldTerminator = "*"
)

// Delimiters configures how raw text is split.
// Empty values fall back to the defaults.
type Delimiters struct {
	Line  string
	Field string
}

func (d Delimiters) withDefaults() Delimiters {
	if d.Line == "" {
		d.Line = DefaultLineTerminator
	}

	if d.Field == "" {
		d.Field = DefaultFieldTerminator
	}

	return d
}

// Transaction is one parsed document: its segments in source order and the
// loops registered against them.
//
// A Transaction is not safe for concurrent use.
type Transaction struct {
	segments []*Segment
	loops    []*Loop
}

// NewTransaction returns an empty transaction.
func NewTransaction() *Transaction {
	return &Transaction{}
}

// Parse tokenizes content with the given delimiters into a new transaction.
func Parse(content string, d Delimiters) *Transaction {
	tx := NewTransaction()
	tx.GenerateSegments(content, d.Line, d.Field)

	return tx
}

// ParseString tokenizes content with the default delimiters.
func ParseString(content string) *Transaction {
	return Parse(content, Delimiters{})
}

// GenerateSegments splits content into lines and each line into fields, and
// appends the resulting segments. Empty terminators select the defaults.
// Empty lines yield segments with an empty name.
func (t *Transaction) GenerateSegments(content, lineTerminator, fieldTerminator string) {
	d := Delimiters{Line: lineTerminator, Field: fieldTerminator}.withDefaults()

	lines := strings.Split(content, d.Line)
	for _, line := range lines {
		tokens := strings.Split(line, d.Field)

		seg := NewSegment(tokens[0])
		for _, tok := range tokens[1:] {
			seg.AddField(NewField(tok).Trim())
		}

		t.segments = append(t.segments, seg)
	}

	logrus.Debugf("tokenized %d segments", len(lines))
}

// Segments returns a copy of the segment list.
func (t *Transaction) Segments() []*Segment {
	return slices.Clone(t.segments)
}

// ListSegmentIdentifiers returns the name of every segment in source order.
func (t *Transaction) ListSegmentIdentifiers() []string {
	ids := make([]string, len(t.segments))
	for i, s := range t.segments {
		ids[i] = s.Name
	}

	return ids
}

// AddSegment appends a segment.
func (t *Transaction) AddSegment(seg *Segment) *Transaction {
	t.segments = append(t.segments, seg)

	return t
}

// RemoveSegment drops seg from the transaction.
func (t *Transaction) RemoveSegment(seg *Segment) *Transaction {
	t.segments = slices.DeleteFunc(t.segments, func(s *Segment) bool { return s == seg })

	return t
}

// Loops returns a copy of the loop registry.
func (t *Transaction) Loops() []*Loop {
	return slices.Clone(t.loops)
}

// AddLoop registers a loop. Loop mappings find loops by registration index,
// so a position that differs from that index is logged.
func (t *Transaction) AddLoop(l *Loop) {
	if l.Position != len(t.loops) {
		logrus.Warnf("loop with position %d registered at index %d; loop mappings resolve by index",
			l.Position, len(t.loops))
	}

	t.loops = append(t.loops, l)
}

// LoopAt returns the loop registered at index position.
func (t *Transaction) LoopAt(position int) (*Loop, bool) {
	if !common.IsIndex(position, len(t.loops)) {
		return nil, false
	}

	return t.loops[position], true
}

// RunLoops runs every registered loop against the full segment list.
func (t *Transaction) RunLoops() {
	for _, l := range t.loops {
		t.RunLoop(l)
	}
}

// RunLoop runs a single loop against the full segment list.
func (t *Transaction) RunLoop(l *Loop) {
	l.Run(t.segments)
}

// InferLoops builds one loop from every identifier that occurs more than
// once, in order of first appearance, registers it and runs all loops.
// The result is a heuristic and may not match the real document structure.
func (t *Transaction) InferLoops() *Loop {
	counts := map[string]int{}

	var order []string

	for _, s := range t.segments {
		if counts[s.Name] == 0 {
			order = append(order, s.Name)
		}

		counts[s.Name]++
	}

	l := NewLoop(len(t.loops))

	for _, id := range order {
		if counts[id] > 1 {
			l.AddSegmentIdentifier(id)
		}
	}

	logrus.Debugf("inferred loop %d: %v", l.Position, l.SegmentIdentifiers())

	t.AddLoop(l)
	t.RunLoops()

	return l
}

// Type returns the transaction set identifier, the first field of the ST
// segment.
func (t *Transaction) Type() (*Field, error) {
	idx := slices.IndexFunc(t.segments, func(s *Segment) bool { return s.Name == "ST" })
	if idx < 0 {
		return nil, fmt.Errorf("no ST segment found: %w", ErrNoSuchSegment)
	}

	st := t.segments[idx]
	st.TrimFields()

	f, ok := st.Field(0)
	if !ok {
		return nil, fmt.Errorf("no ST01 field found: %w", ErrNoSuchField)
	}

	return f, nil
}

// MarshalJSON encodes the transaction as {"segments": [...], "loops": [...]}.
func (t *Transaction) MarshalJSON() ([]byte, error) {
	segments := t.segments
	if segments == nil {
		segments = []*Segment{}
	}

	loops := t.loops
	if loops == nil {
		loops = []*Loop{}
	}

	return json.Marshal(struct {
		Segments []*Segment `json:"segments"`
		Loops    []*Loop    `json:"loops"`
	}{
		Segments: segments,
		Loops:    loops,
	})
}
