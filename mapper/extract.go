package mapper

import (
	"github.com/sirupsen/logrus"

	"x12map/internal/common"
	"x12map/mapspec"
	"x12map/x12"
)

// Extract applies spec to every segment of tx.
// Loops referenced by the specification must already have been run.
func Extract(tx *x12.Transaction, spec *mapspec.Group) map[string]any {
	return ExtractFrom(tx, spec, tx.Segments())
}

// ExtractFrom applies spec to the segments in pool. Loop mappings still
// read their groups from tx.
func ExtractFrom(tx *x12.Transaction, spec *mapspec.Group, pool []*x12.Segment) map[string]any {
	if spec == nil {
		return map[string]any{}
	}

	out := make(map[string]any, spec.Len())

	for _, e := range spec.Entries {
		v, ok := extractNode(tx, e.Node, pool)
		if !ok {
			logrus.Debugf("extract: no value for %q", e.Key)
			continue
		}

		out[e.Key] = v
	}

	return out
}

func extractNode(tx *x12.Transaction, n mapspec.Node, pool []*x12.Segment) (any, bool) {
	switch v := n.(type) {
	case *mapspec.FieldMap:
		return extractField(v, pool)
	case *mapspec.LoopMap:
		return extractLoop(tx, v)
	case *mapspec.RepeatingSegmentMap:
		return extractRepeating(tx, v, pool), true
	case *mapspec.Group:
		return ExtractFrom(tx, v, pool), true
	case *mapspec.List:
		out := make([]any, len(v.Items))
		for i, item := range v.Items {
			out[i], _ = extractNode(tx, item, pool)
		}

		return out, true
	case mapspec.Literal:
		return v.Value, v.Value != nil
	default:
		return nil, false
	}
}

// extractField reads one field. Several candidate segments are narrowed by
// the qualifier; without one the mapping is ambiguous and yields nothing.
func extractField(f *mapspec.FieldMap, pool []*x12.Segment) (any, bool) {
	candidates := common.Filter(pool, func(seg *x12.Segment) bool {
		return seg.Name == f.SegmentID
	})

	var (
		seg *x12.Segment
		ok  bool
	)

	switch {
	case common.IsEmpty(candidates):
		return nil, false
	case common.IsSingle(candidates):
		seg, ok = candidates[0], f.Qualifier == nil || f.Qualifier.Matches(candidates[0])
	case f.Qualifier == nil:
		logrus.Debugf("extract: %d %s segments and no qualifier", len(candidates), f.SegmentID)
		return nil, false
	default:
		seg, ok = common.FirstMatch(candidates, f.Qualifier.Matches)
	}

	if !ok {
		return nil, false
	}

	value, ok := seg.FieldValue(f.ValuePosition)
	if !ok {
		return nil, false
	}

	return value, true
}

func extractLoop(tx *x12.Transaction, m *mapspec.LoopMap) (any, bool) {
	loop, ok := tx.LoopAt(m.Position)
	if !ok {
		logrus.Debugf("extract: no loop at position %d", m.Position)
		return nil, false
	}

	groups := loop.Contents()
	out := make([]any, len(groups))

	for i, group := range groups {
		out[i] = ExtractFrom(tx, m.Values, group)
	}

	return out, true
}

// extractRepeating always returns a slice, empty when nothing matches.
func extractRepeating(tx *x12.Transaction, m *mapspec.RepeatingSegmentMap, pool []*x12.Segment) []any {
	matcher := m.Matcher()
	values := m.EffectiveValues()
	out := []any{}

	for _, seg := range pool {
		if matcher.Matches(seg) {
			out = append(out, ExtractFrom(tx, values, []*x12.Segment{seg}))
		}
	}

	return out
}
