package mapspec

import (
	"sort"

	"gopkg.in/yaml.v3"
)

// Pair is one key/value of an Object.
type Pair struct {
	Key   string
	Value any
}

// Object is a plain-data mapping that keeps its key order. The file loaders
// produce Objects so that Group entries follow declaration order.
type Object []Pair

// Get returns the value stored at key.
func (o Object) Get(key string) (any, bool) {
	for _, p := range o {
		if p.Key == key {
			return p.Value, true
		}
	}

	return nil, false
}

// Without returns a copy of o without key.
func (o Object) Without(key string) Object {
	out := make(Object, 0, len(o))
	for _, p := range o {
		if p.Key != key {
			out = append(out, p)
		}
	}

	return out
}

// ObjectFromMap converts m into an Object with keys in sorted order.
// Nested maps are left as they are; Revive handles them on its own.
func ObjectFromMap(m map[string]any) Object {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	out := make(Object, len(keys))
	for i, k := range keys {
		out[i] = Pair{Key: k, Value: m[k]}
	}

	return out
}

// MarshalYAML emits the pairs as an ordered mapping.
func (o Object) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, p := range o {
		var v yaml.Node

		err := v.Encode(p.Value)
		if err != nil {
			return nil, err
		}

		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Key},
			&v,
		)
	}

	return n, nil
}

// plainFromYAML converts a YAML node tree into Objects, slices and scalars.
func plainFromYAML(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}

		return plainFromYAML(n.Content[0])

	case yaml.AliasNode:
		return plainFromYAML(n.Alias)

	case yaml.MappingNode:
		out := make(Object, 0, len(n.Content)/2)

		for i := 0; i+1 < len(n.Content); i += 2 {
			var key string

			err := n.Content[i].Decode(&key)
			if err != nil {
				return nil, err
			}

			if raw, ok := rawText(key, n.Content[i+1]); ok {
				out = append(out, Pair{Key: key, Value: raw})
				continue
			}

			v, err := plainFromYAML(n.Content[i+1])
			if err != nil {
				return nil, err
			}

			out = append(out, Pair{Key: key, Value: v})
		}

		return out, nil

	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))

		for _, item := range n.Content {
			v, err := plainFromYAML(item)
			if err != nil {
				return nil, err
			}

			out = append(out, v)
		}

		return out, nil

	default:
		var v any

		err := n.Decode(&v)
		if err != nil {
			return nil, err
		}

		return v, nil
	}
}

// rawText returns the source text of string-typed attributes so that
// unquoted codes such as 00 or 01 keep their leading zeros.
func rawText(key string, n *yaml.Node) (string, bool) {
	switch key {
	case attrSegmentID, attrIdentifierValue:
	default:
		return "", false
	}

	if n.Kind != yaml.ScalarNode || n.ShortTag() == "!!null" {
		return "", false
	}

	return n.Value, true
}
