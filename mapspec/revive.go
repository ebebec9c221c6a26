package mapspec

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"x12map/diagnostic"
	"x12map/x12"
)

// TypeKey is the discriminator key of plain-data descriptor nodes.
const TypeKey = "_type"

// Discriminator values recognised by Revive.
const (
	TypeFieldMap            = "FieldMap"
	TypeLoopMap             = "LoopMap"
	TypeRepeatingSegmentMap = "RepeatingSegmentMap"
)

// Plain-data attribute names.
const (
	attrSegmentID          = "segmentIdentifier"
	attrIdentifierValue    = "identifierValue"
	attrIdentifierPosition = "identifierPosition"
	attrValuePosition      = "valuePosition"
	attrPosition           = "position"
	attrValues             = "values"
)

// Revive converts plain data into a specification tree.
//
// Objects carrying a "_type" key become descriptors, other objects become
// Groups, slices become Lists and scalars become Literals. Values that are
// already Nodes are returned unchanged, so reviving twice is a no-op.
// Problems are reported as diagnostics; Revive never fails.
func Revive(v any) (Node, *diagnostic.Diagnostics) {
	r := &reviver{diags: &diagnostic.Diagnostics{}}

	return r.node(v, ""), r.diags
}

// ReviveGroup is Revive for specifications whose root must be a Group.
// Any other root is reported and replaced by an empty Group.
func ReviveGroup(v any) (*Group, *diagnostic.Diagnostics) {
	r := &reviver{diags: &diagnostic.Diagnostics{}}

	return r.group(v, ""), r.diags
}

type reviver struct {
	diags *diagnostic.Diagnostics
}

func (r *reviver) node(v any, path string) Node {
	switch val := v.(type) {
	case Node:
		return val
	case Object:
		return r.object(val, path)
	case map[string]any:
		return r.object(ObjectFromMap(val), path)
	case []any:
		items := make([]Node, len(val))
		for i, item := range val {
			items[i] = r.node(item, joinPath(path, strconv.Itoa(i)))
		}

		return &List{Items: items}
	case nil, string, bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return Literal{Value: val}
	default:
		r.diags.AddWarning("unsupported_value",
			fmt.Sprintf("value of type %T kept as a literal", v), path)

		return Literal{Value: val}
	}
}

func (r *reviver) object(obj Object, path string) Node {
	raw, ok := obj.Get(TypeKey)
	if !ok {
		return r.entries(obj, path)
	}

	typ, isString := raw.(string)
	if !isString {
		typ = fmt.Sprint(raw)
	}

	props := obj.Without(TypeKey)

	switch typ {
	case TypeFieldMap:
		return r.fieldMap(props, path)
	case TypeLoopMap:
		return &LoopMap{
			Position: r.requiredInt(props, attrPosition, path),
			Values:   r.group(r.attr(props, attrValues), joinPath(path, attrValues)),
		}
	case TypeRepeatingSegmentMap:
		segmentID := r.str(props, attrSegmentID)

		return &RepeatingSegmentMap{
			SegmentID: segmentID,
			Qualifier: r.qualifier(props, path),
			Values: inheritSegmentID(segmentID,
				r.group(r.attr(props, attrValues), joinPath(path, attrValues))),
		}
	default:
		logrus.Warnf("unknown %s %q at %q, treating it as a plain group", TypeKey, typ, path)
		r.diags.AddWarning("unknown_type",
			fmt.Sprintf("unknown %s %q, treated as a plain group", TypeKey, typ), path)

		g := r.entries(props, path)
		g.Discriminator = typ

		if typ == "" {
			g.Discriminator = "(empty)"
		}

		return g
	}
}

func (r *reviver) entries(obj Object, path string) *Group {
	g := &Group{Entries: make([]Entry, 0, len(obj))}
	for _, p := range obj {
		g.Entries = append(g.Entries, Entry{Key: p.Key, Node: r.node(p.Value, joinPath(path, p.Key))})
	}

	return g
}

func (r *reviver) group(v any, path string) *Group {
	if v == nil {
		return NewGroup()
	}

	if g, ok := r.node(v, path).(*Group); ok {
		return g
	}

	r.diags.AddError("not_an_object", "expected an object of sub-specifications", path)

	return NewGroup()
}

func (r *reviver) fieldMap(props Object, path string) *FieldMap {
	return &FieldMap{
		SegmentID:     r.str(props, attrSegmentID),
		Qualifier:     r.qualifier(props, path),
		ValuePosition: r.requiredInt(props, attrValuePosition, path),
	}
}

// qualifier returns a Qualifier only when both identifierPosition and
// identifierValue are set.
func (r *reviver) qualifier(props Object, path string) *x12.Qualifier {
	value := r.attr(props, attrIdentifierValue)
	position := r.attr(props, attrIdentifierPosition)

	switch {
	case value == nil && position == nil:
		return nil
	case value == nil || position == nil:
		r.diags.AddWarning("incomplete_qualifier",
			"identifierPosition and identifierValue must be set together; qualifier ignored", path)

		return nil
	}

	pos, ok := toInt(position)
	if !ok {
		r.diags.AddError("invalid_attribute",
			fmt.Sprintf("%s: expected an integer, got %v", attrIdentifierPosition, position), path)

		return nil
	}

	return &x12.Qualifier{Position: pos, Value: scalarString(value)}
}

// attr returns the attribute value, or nil when it is absent.
func (r *reviver) attr(props Object, key string) any {
	v, _ := props.Get(key)

	return v
}

func (r *reviver) str(props Object, key string) string {
	v := r.attr(props, key)
	if v == nil {
		return ""
	}

	return scalarString(v)
}

func (r *reviver) requiredInt(props Object, key, path string) int {
	v := r.attr(props, key)
	if v == nil {
		r.diags.AddError("missing_attribute", fmt.Sprintf("%s is required", key), path)

		return 0
	}

	n, ok := toInt(v)
	if !ok {
		r.diags.AddError("invalid_attribute", fmt.Sprintf("%s: expected an integer, got %v", key, v), path)

		return 0
	}

	return n
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float32:
		return toInt(float64(n))
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}

		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))

		return i, err == nil
	default:
		return 0, false
	}
}

func scalarString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}

	return parent + "." + key
}
