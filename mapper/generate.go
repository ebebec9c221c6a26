package mapper

import (
	"strings"

	"github.com/sirupsen/logrus"

	"x12map/internal/common"
	"x12map/mapspec"
	"x12map/x12"
)

// Generator renders data trees as X12 text.
// Empty terminators select the x12 defaults.
type Generator struct {
	FieldTerminator string
	LineTerminator  string
}

// Generate renders data with the default terminators.
func Generate(data map[string]any, spec *mapspec.Group) string {
	return Generator{}.Generate(data, spec)
}

// Generate renders data as segment lines joined by the line terminator,
// with a trailing terminator. It returns "" when no line is produced.
func (g Generator) Generate(data map[string]any, spec *mapspec.Group) string {
	lines := g.Lines(data, spec)
	if len(lines) == 0 {
		return ""
	}

	lt := g.lineTerminator()

	return strings.Join(lines, lt) + lt
}

// Lines renders data as segment lines without terminators.
func (g Generator) Lines(data map[string]any, spec *mapspec.Group) []string {
	if spec == nil {
		return nil
	}

	if data == nil {
		data = map[string]any{}
	}

	lines := g.fieldLines(data, spec)

	for _, e := range spec.Entries {
		lines = append(lines, g.compositeLines(data, e)...)
	}

	return lines
}

// fieldLines emits one line per segment identifier of the group's field
// mappings, in first-seen order, whether or not data holds values for it.
func (g Generator) fieldLines(data map[string]any, spec *mapspec.Group) []string {
	var order, result []string

	byID := make(map[string][]mapspec.Entry)

	for _, e := range spec.Entries {
		fm, ok := e.Node.(*mapspec.FieldMap)
		if !ok {
			continue
		}

		if !fm.InRange() {
			logrus.Debugf("generate: %q addresses a field outside 0..%d, skipped", e.Key, mapspec.MaxFieldPosition)
			continue
		}

		if _, seen := byID[fm.SegmentID]; !seen {
			order = append(order, fm.SegmentID)
		}

		byID[fm.SegmentID] = append(byID[fm.SegmentID], e)
	}

	for _, id := range order {
		entries := byID[id]

		size := 0
		for _, e := range entries {
			size = max(size, e.Node.(*mapspec.FieldMap).MaxPosition()+1)
		}

		fields := make([]string, size)
		for _, e := range entries {
			value, ok := data[e.Key]
			if !ok || value == nil {
				continue
			}

			writeField(fields, e.Node.(*mapspec.FieldMap), value)
		}

		result = append(result, g.line(id, fields))
	}

	return result
}

func (g Generator) compositeLines(data map[string]any, e mapspec.Entry) []string {
	switch v := e.Node.(type) {
	case *mapspec.LoopMap:
		var lines []string

		for _, item := range asArray(data[e.Key]) {
			obj, ok := asObject(item)
			if !ok {
				logrus.Debugf("generate: %q element %T is not an object", e.Key, item)
				continue
			}

			lines = append(lines, g.Lines(obj, v.Values)...)
		}

		return lines
	case *mapspec.RepeatingSegmentMap:
		return g.repeatingLines(asArray(data[e.Key]), v)
	case *mapspec.Group:
		obj, _ := asObject(data[e.Key])

		return g.Lines(obj, v)
	case *mapspec.List:
		items := asArray(data[e.Key])

		var lines []string

		for i, node := range v.Items {
			if i >= len(items) {
				break
			}

			// Each element is rendered as a one-key group so every node
			// kind follows the same rules as at a group level.
			lines = append(lines, g.Lines(
				map[string]any{e.Key: items[i]},
				&mapspec.Group{Entries: []mapspec.Entry{{Key: e.Key, Node: node}}},
			)...)
		}

		return lines
	default:
		return nil
	}
}

// repeatingLines emits one line per element. Maps without field mappings
// produce nothing.
func (g Generator) repeatingLines(items []any, m *mapspec.RepeatingSegmentMap) []string {
	values := m.EffectiveValues()

	var fieldMaps []mapspec.Entry

	size := 0
	if m.Qualifier != nil {
		if !common.IsInRange(0, m.Qualifier.Position, mapspec.MaxFieldPosition) {
			logrus.Debugf("generate: %s qualifier position %d out of range, skipped", m.SegmentID, m.Qualifier.Position)
			return nil
		}

		size = m.Qualifier.Position + 1
	}

	for _, e := range values.Entries {
		if fm, ok := e.Node.(*mapspec.FieldMap); ok && fm.InRange() {
			fieldMaps = append(fieldMaps, e)
			size = max(size, fm.MaxPosition()+1)
		}
	}

	if len(fieldMaps) == 0 {
		return nil
	}

	lines := make([]string, 0, len(items))

	for _, item := range items {
		obj, ok := asObject(item)
		if !ok {
			continue
		}

		fields := make([]string, size)
		if m.Qualifier != nil {
			fields[m.Qualifier.Position] = m.Qualifier.Value
		}

		for _, e := range fieldMaps {
			value, ok := obj[e.Key]
			if !ok || value == nil {
				continue
			}

			writeField(fields, e.Node.(*mapspec.FieldMap), value)
		}

		lines = append(lines, g.line(m.SegmentID, fields))
	}

	return lines
}

// writeField stores the qualifier and the rendered value. Positions outside
// fields are ignored.
func writeField(fields []string, fm *mapspec.FieldMap, value any) {
	if q := fm.Qualifier; q != nil && common.IsIndex(q.Position, len(fields)) {
		fields[q.Position] = q.Value
	}

	if common.IsIndex(fm.ValuePosition, len(fields)) {
		fields[fm.ValuePosition] = Render(value)
	}
}

func (g Generator) line(id string, fields []string) string {
	ft := g.FieldTerminator
	if ft == "" {
		ft = x12.DefaultFieldTerminator
	}

	return strings.Join(append([]string{id}, fields...), ft)
}

func (g Generator) lineTerminator() string {
	if g.LineTerminator == "" {
		return x12.DefaultLineTerminator
	}

	return g.LineTerminator
}
