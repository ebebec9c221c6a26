package mapspec

import (
	"fmt"
	"strconv"

	"x12map/diagnostic"
)

// Validate performs structural checks on a specification tree.
// It never fails; problems are returned as diagnostics.
func Validate(n Node) *diagnostic.Diagnostics {
	v := &validator{diags: &diagnostic.Diagnostics{}}
	v.node(n, "", "")

	return v.diags
}

// Validate checks the loop definitions and the map of a spec file, including
// the diagnostics recorded when the map was revived.
func (f *File) Validate() *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}

	for i, def := range f.Loops {
		path := "loops." + strconv.Itoa(i)

		if len(def.Segments) == 0 {
			diags.AddError("empty_loop", "loop has no segment matchers", path)
		}

		if def.Position != i {
			diags.AddWarning("loop_position_mismatch",
				fmt.Sprintf("position %d differs from index %d; loop maps look loops up by index", def.Position, i),
				path)
		}

		for j, m := range def.Segments {
			mpath := joinPath(path, "segments."+strconv.Itoa(j))

			if m.SegmentID == "" {
				diags.AddError("missing_segment_identifier", "matcher has no segment identifier", mpath)
			}

			if m.Qualifier != nil {
				diags.Merge(checkPosition(attrIdentifierPosition, m.Qualifier.Position, mpath))
			}
		}
	}

	root := nonNilGroup(f.Map)
	diags.Merge(Validate(root))
	mergeNew(diags, f.Diagnostics)

	known := len(f.Loops)
	if f.InferLoops {
		known++
	}

	walkLoopMaps(root, "", func(lm *LoopMap, path string) {
		if lm.Position >= known {
			diags.AddWarning("unknown_loop",
				fmt.Sprintf("no loop is registered at position %d", lm.Position), path)
		}
	})

	return diags
}

type validator struct {
	diags *diagnostic.Diagnostics
}

// node validates n. repeating is the enclosing RepeatingSegmentMap's
// segment identifier, if any.
func (v *validator) node(n Node, path, repeating string) {
	switch val := n.(type) {
	case *FieldMap:
		v.fieldMap(val, path, repeating)
	case *LoopMap:
		if val.Position < 0 {
			v.diags.AddError("negative_position", "position must not be negative", path)
		}

		v.node(nonNilGroup(val.Values), joinPath(path, attrValues), "")
	case *RepeatingSegmentMap:
		if val.SegmentID == "" {
			v.diags.AddError("missing_segment_identifier", "repeating map has no segment identifier", path)
		}

		if val.Qualifier != nil {
			v.position(attrIdentifierPosition, val.Qualifier.Position, path)
		}

		v.node(val.EffectiveValues(), joinPath(path, attrValues), val.SegmentID)
	case *Group:
		if val.Discriminator != "" {
			v.diags.AddWarning("unknown_type",
				fmt.Sprintf("unknown %s %q, treated as a plain group", TypeKey, val.Discriminator), path)
		}

		for _, e := range val.Entries {
			v.node(e.Node, joinPath(path, e.Key), repeating)
		}
	case *List:
		for i, item := range val.Items {
			v.node(item, joinPath(path, strconv.Itoa(i)), repeating)
		}
	case Literal:
	case nil:
		v.diags.AddError("nil_node", "specification node is nil", path)
	}
}

func (v *validator) fieldMap(f *FieldMap, path, repeating string) {
	if f.SegmentID == "" {
		v.diags.AddError("missing_segment_identifier", "field map has no segment identifier", path)
	}

	v.position(attrValuePosition, f.ValuePosition, path)

	if f.Qualifier != nil {
		v.position(attrIdentifierPosition, f.Qualifier.Position, path)
	}

	// Repeating maps extract against one segment at a time.
	if repeating != "" && f.SegmentID != "" && f.SegmentID != repeating {
		v.diags.AddWarning("segment_mismatch",
			fmt.Sprintf("field map reads %s inside a repeating %s map and will never match", f.SegmentID, repeating),
			path)
	}
}

func (v *validator) position(name string, p int, path string) {
	v.diags.Merge(checkPosition(name, p, path))
}

// checkPosition reports field positions outside 0..MaxFieldPosition.
func checkPosition(name string, p int, path string) *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}

	switch {
	case p < 0:
		diags.AddError("negative_position", name+" must not be negative", path)
	case p > MaxFieldPosition:
		diags.AddError("position_out_of_range",
			fmt.Sprintf("%s %d exceeds the maximum of %d", name, p, MaxFieldPosition), path)
	}

	return diags
}

func walkLoopMaps(n Node, path string, fn func(*LoopMap, string)) {
	switch val := n.(type) {
	case *LoopMap:
		fn(val, path)
		walkLoopMaps(nonNilGroup(val.Values), joinPath(path, attrValues), fn)
	case *RepeatingSegmentMap:
		walkLoopMaps(nonNilGroup(val.Values), joinPath(path, attrValues), fn)
	case *Group:
		for _, e := range val.Entries {
			walkLoopMaps(e.Node, joinPath(path, e.Key), fn)
		}
	case *List:
		for i, item := range val.Items {
			walkLoopMaps(item, joinPath(path, strconv.Itoa(i)), fn)
		}
	}
}

// mergeNew adds the diagnostics of other that dst does not already report
// at the same path.
func mergeNew(dst, other *diagnostic.Diagnostics) {
	if other == nil {
		return
	}

	seen := make(map[string]bool)
	for _, d := range dst.All() {
		seen[d.Code+"@"+d.Path] = true
	}

	for _, d := range other.All() {
		if seen[d.Code+"@"+d.Path] {
			continue
		}

		switch d.Severity {
		case diagnostic.SeverityError:
			dst.AddError(d.Code, d.Message, d.Path)
		case diagnostic.SeverityWarning:
			dst.AddWarning(d.Code, d.Message, d.Path)
		default:
			dst.AddInfo(d.Code, d.Message, d.Path)
		}
	}
}
