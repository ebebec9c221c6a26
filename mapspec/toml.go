package mapspec

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
	gotoml "github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// ParseTOML parses TOML data into a File. Map entries keep the order in
// which their keys appear in the document.
func ParseTOML(data []byte) (*File, error) {
	var m map[string]any

	md, err := toml.Decode(string(data), &m)
	if err != nil {
		return nil, fmt.Errorf("failed to parse spec TOML: %w", err)
	}

	order := make(map[string]int)
	for i, key := range md.Keys() {
		if _, seen := order[key.String()]; !seen {
			order[key.String()] = i
		}
	}

	// Route the ordered tree through yaml.v3 so both formats share one decoder.
	var node yaml.Node

	err = node.Encode(orderTOML(m, nil, order))
	if err != nil {
		return nil, fmt.Errorf("failed to convert spec TOML: %w", err)
	}

	var raw yamlFile

	err = node.Decode(&raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode spec TOML: %w", err)
	}

	return fromYAML(&raw)
}

// orderTOML rebuilds decoded TOML tables as Objects sorted by key position.
func orderTOML(v any, prefix toml.Key, order map[string]int) any {
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}

		rank := func(k string) int {
			if i, ok := order[childKey(prefix, k).String()]; ok {
				return i
			}

			return len(order)
		}

		sort.SliceStable(keys, func(i, j int) bool {
			ri, rj := rank(keys[i]), rank(keys[j])
			if ri != rj {
				return ri < rj
			}

			return keys[i] < keys[j]
		})

		out := make(Object, len(keys))
		for i, k := range keys {
			out[i] = Pair{Key: k, Value: orderTOML(val[k], childKey(prefix, k), order)}
		}

		return out
	case []map[string]any:
		// Elements of an array of tables share one key path, so every
		// element is ordered by the first appearance of each key anywhere
		// in the array.
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = orderTOML(item, prefix, order)
		}

		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = orderTOML(item, prefix, order)
		}

		return out
	default:
		return v
	}
}

func childKey(prefix toml.Key, k string) toml.Key {
	out := make(toml.Key, len(prefix), len(prefix)+1)
	copy(out, prefix)

	return append(out, k)
}

// MarshalTOML serializes a File to TOML. TOML tables are unordered, so
// map entries come back sorted by key when the output is parsed again.
// Nil literals have no TOML form and are dropped.
func MarshalTOML(f *File) ([]byte, error) {
	doc := map[string]any{
		"version": f.Version,
		"map":     plainMap(ToPlain(nonNilGroup(f.Map))),
	}

	if f.InferLoops {
		doc["infer_loops"] = true
	}

	if len(f.Loops) > 0 {
		loops := make([]any, len(f.Loops))
		for i, def := range f.Loops {
			loops[i] = map[string]any{
				"position": def.Position,
				"segments": tomlMatchers(def.Segments),
			}
		}

		doc["loops"] = loops
	}

	tree, err := gotoml.TreeFromMap(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to build spec TOML: %w", err)
	}

	return tree.Marshal()
}

// tomlMatchers writes every matcher as a table once one of them is
// qualified, since TOML arrays cannot mix strings and tables.
func tomlMatchers(list MatcherList) []any {
	qualified := false
	for _, m := range list {
		qualified = qualified || m.IsQualified()
	}

	out := make([]any, len(list))
	for i, m := range list {
		switch {
		case !qualified:
			out[i] = m.SegmentID
		case m.Qualifier == nil:
			out[i] = map[string]any{attrSegmentID: m.SegmentID}
		default:
			out[i] = map[string]any{
				attrSegmentID:          m.SegmentID,
				attrIdentifierPosition: m.Qualifier.Position,
				attrIdentifierValue:    m.Qualifier.Value,
			}
		}
	}

	return out
}

// plainMap turns Objects into maps, dropping nil values.
func plainMap(v any) any {
	switch val := v.(type) {
	case Object:
		out := make(map[string]any, len(val))
		for _, p := range val {
			if p.Value != nil {
				out[p.Key] = plainMap(p.Value)
			}
		}

		return out
	case []any:
		out := make([]any, 0, len(val))
		for _, item := range val {
			if item != nil {
				out = append(out, plainMap(item))
			}
		}

		return out
	default:
		return v
	}
}
