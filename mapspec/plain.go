package mapspec

import "x12map/x12"

// ToPlain converts a specification tree back into plain data with "_type"
// tags. Revive(ToPlain(n)) rebuilds an equivalent tree.
func ToPlain(n Node) any {
	switch v := n.(type) {
	case *Group:
		out := make(Object, 0, len(v.Entries)+1)
		if v.Discriminator != "" {
			out = append(out, Pair{Key: TypeKey, Value: v.Discriminator})
		}

		for _, e := range v.Entries {
			out = append(out, Pair{Key: e.Key, Value: ToPlain(e.Node)})
		}

		return out
	case *FieldMap:
		out := Object{
			{Key: TypeKey, Value: TypeFieldMap},
			{Key: attrSegmentID, Value: v.SegmentID},
		}
		out = appendQualifier(out, v.Qualifier)

		return append(out, Pair{Key: attrValuePosition, Value: v.ValuePosition})
	case *LoopMap:
		return Object{
			{Key: TypeKey, Value: TypeLoopMap},
			{Key: attrPosition, Value: v.Position},
			{Key: attrValues, Value: ToPlain(nonNilGroup(v.Values))},
		}
	case *RepeatingSegmentMap:
		out := Object{
			{Key: TypeKey, Value: TypeRepeatingSegmentMap},
			{Key: attrSegmentID, Value: v.SegmentID},
		}
		out = appendQualifier(out, v.Qualifier)

		return append(out, Pair{Key: attrValues, Value: ToPlain(nonNilGroup(v.Values))})
	case *List:
		out := make([]any, len(v.Items))
		for i, item := range v.Items {
			out[i] = ToPlain(item)
		}

		return out
	case Literal:
		return v.Value
	default:
		return nil
	}
}

func appendQualifier(out Object, q *x12.Qualifier) Object {
	if q == nil {
		return out
	}

	return append(out,
		Pair{Key: attrIdentifierValue, Value: q.Value},
		Pair{Key: attrIdentifierPosition, Value: q.Position},
	)
}
