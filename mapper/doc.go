// Package mapper converts between X12 transactions and nested data trees
// using a mapspec specification.
//
// Extraction walks the specification against the segments of a
// Transaction and builds a tree of map[string]any, []any and strings.
// Missing segments, missing fields and unmatched qualifiers leave keys
// out of the result; extraction never fails.
//
// Generation walks the specification against a data tree and emits one
// segment line per field-mapped segment identifier and per repeated
// element. Absent data leaves empty fields.
//
// Example:
//
//	spec := mapspec.NewGroup().
//		Set("type", mapspec.NewFieldMap("ST", 0)).
//		Set("references", mapspec.NewRepeatingSegmentMap("N9", mapspec.NewGroup().
//			Set("qualifier", &mapspec.FieldMap{ValuePosition: 0}).
//			Set("reference", &mapspec.FieldMap{ValuePosition: 1})))
//
//	tree := mapper.Extract(tx, spec)
//	text := mapper.Generate(tree, spec)
package mapper
