package mapspec

import (
	"slices"

	"x12map/internal/common"
	"x12map/x12"
)

// MaxFieldPosition is the highest field index a mapping may address.
const MaxFieldPosition = 999

// Node is one element of a mapping specification.
// The set of implementations is closed to this package.
type Node interface {
	Kind() Kind
	isNode()
}

// FieldMap maps one field of one segment to a key.
type FieldMap struct {
	// SegmentID is the identifier of the segment to read or write.
	SegmentID string
	// Qualifier picks one segment when several share SegmentID.
	Qualifier *x12.Qualifier
	// ValuePosition is the index of the mapped field.
	ValuePosition int
}

// NewFieldMap returns an unqualified field mapping.
func NewFieldMap(segmentID string, valuePosition int) *FieldMap {
	return &FieldMap{SegmentID: segmentID, ValuePosition: valuePosition}
}

// NewQualifiedFieldMap returns a field mapping restricted to segments whose
// field at qualifierPosition equals qualifierValue.
func NewQualifiedFieldMap(segmentID string, qualifierPosition int, qualifierValue string, valuePosition int) *FieldMap {
	return &FieldMap{
		SegmentID:     segmentID,
		Qualifier:     &x12.Qualifier{Position: qualifierPosition, Value: qualifierValue},
		ValuePosition: valuePosition,
	}
}

func (*FieldMap) Kind() Kind { return KindField }
func (*FieldMap) isNode()    {}

// MaxPosition returns the highest field index the mapping touches.
func (f *FieldMap) MaxPosition() int {
	if f.Qualifier != nil && f.Qualifier.Position > f.ValuePosition {
		return f.Qualifier.Position
	}

	return f.ValuePosition
}

// InRange reports whether every position of the mapping lies within
// 0..MaxFieldPosition.
func (f *FieldMap) InRange() bool {
	if f.Qualifier != nil && !positionInRange(f.Qualifier.Position) {
		return false
	}

	return positionInRange(f.ValuePosition)
}

// LoopMap applies Values to every group of the loop registered at Position.
type LoopMap struct {
	Position int
	Values   *Group
}

// NewLoopMap returns a loop mapping.
func NewLoopMap(position int, values *Group) *LoopMap {
	return &LoopMap{Position: position, Values: nonNilGroup(values)}
}

func (*LoopMap) Kind() Kind { return KindLoop }
func (*LoopMap) isNode()    {}

// RepeatingSegmentMap applies a flat Values specification to every segment
// matching SegmentID and, when set, Qualifier.
type RepeatingSegmentMap struct {
	SegmentID string
	Qualifier *x12.Qualifier
	Values    *Group
}

// NewRepeatingSegmentMap returns a repeating-segment mapping. Field mappings
// in values without a segment identifier inherit segmentID.
func NewRepeatingSegmentMap(segmentID string, values *Group) *RepeatingSegmentMap {
	return &RepeatingSegmentMap{SegmentID: segmentID, Values: inheritSegmentID(segmentID, values)}
}

// NewQualifiedRepeatingSegmentMap is NewRepeatingSegmentMap restricted to
// segments whose field at qualifierPosition equals qualifierValue.
func NewQualifiedRepeatingSegmentMap(
	segmentID string, qualifierPosition int, qualifierValue string, values *Group,
) *RepeatingSegmentMap {
	r := NewRepeatingSegmentMap(segmentID, values)
	r.Qualifier = &x12.Qualifier{Position: qualifierPosition, Value: qualifierValue}

	return r
}

func (*RepeatingSegmentMap) Kind() Kind { return KindRepeating }
func (*RepeatingSegmentMap) isNode()    {}

// EffectiveValues returns Values with SegmentID filled into field mappings
// that lack one.
func (r *RepeatingSegmentMap) EffectiveValues() *Group {
	return inheritSegmentID(r.SegmentID, r.Values)
}

// Matcher returns the segment matcher described by the mapping.
func (r *RepeatingSegmentMap) Matcher() x12.Matcher {
	return x12.Matcher{SegmentID: r.SegmentID, Qualifier: r.Qualifier}
}

// Entry is one keyed element of a Group.
type Entry struct {
	Key  string
	Node Node
}

// Group is an ordered set of keyed sub-specifications.
type Group struct {
	Entries []Entry
	// Discriminator holds the unknown "_type" the group was revived from.
	Discriminator string
}

// NewGroup returns an empty group.
func NewGroup() *Group {
	return &Group{}
}

func (g *Group) Kind() Kind {
	if g.Discriminator != "" {
		return KindUnrecognized
	}

	return KindGroup
}

func (*Group) isNode() {}

// Set assigns n to key, replacing an existing entry in place or appending a
// new one.
func (g *Group) Set(key string, n Node) *Group {
	for i := range g.Entries {
		if g.Entries[i].Key == key {
			g.Entries[i].Node = n
			return g
		}
	}

	g.Entries = append(g.Entries, Entry{Key: key, Node: n})

	return g
}

// Get returns the node at key.
func (g *Group) Get(key string) (Node, bool) {
	for _, e := range g.Entries {
		if e.Key == key {
			return e.Node, true
		}
	}

	return nil, false
}

// Keys returns the keys in declaration order.
func (g *Group) Keys() []string {
	keys := make([]string, len(g.Entries))
	for i, e := range g.Entries {
		keys[i] = e.Key
	}

	return keys
}

// Len returns the number of entries.
func (g *Group) Len() int {
	return len(g.Entries)
}

// List is an array of sub-specifications, each applied to the same segments.
type List struct {
	Items []Node
}

// NewList returns a list of nodes.
func NewList(items ...Node) *List {
	return &List{Items: slices.Clone(items)}
}

func (*List) Kind() Kind { return KindList }
func (*List) isNode()    {}

// Literal is a constant copied into extracted output and ignored during
// generation.
type Literal struct {
	Value any
}

// Lit wraps v in a Literal.
func Lit(v any) Literal {
	return Literal{Value: v}
}

func (Literal) Kind() Kind { return KindLiteral }
func (Literal) isNode()    {}

func positionInRange(p int) bool {
	return common.IsInRange(0, p, MaxFieldPosition)
}

func nonNilGroup(g *Group) *Group {
	if g == nil {
		return NewGroup()
	}

	return g
}

// inheritSegmentID returns values with segmentID filled into every direct
// FieldMap entry that lacks one. Nodes are copied, never modified.
func inheritSegmentID(segmentID string, values *Group) *Group {
	values = nonNilGroup(values)

	out := &Group{Discriminator: values.Discriminator, Entries: make([]Entry, len(values.Entries))}
	for i, e := range values.Entries {
		if fm, ok := e.Node.(*FieldMap); ok && fm.SegmentID == "" {
			cp := *fm
			cp.SegmentID = segmentID
			e.Node = &cp
		}

		out.Entries[i] = e
	}

	return out
}
