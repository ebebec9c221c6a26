package mapspec

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"x12map/diagnostic"
	"x12map/x12"
)

// File is a complete mapping definition: the loops to detect in a document
// and the specification to apply to it.
type File struct {
	// Version of the spec file schema (for future compatibility).
	Version string

	// InferLoops runs Transaction.InferLoops after the declared loops.
	InferLoops bool

	// Loops are registered in order; Loops[i] must have position i.
	Loops []LoopDef

	// Map is the mapping specification.
	Map *Group

	// Diagnostics collected while reviving Map.
	Diagnostics *diagnostic.Diagnostics
}

// LoopDef declares one loop.
type LoopDef struct {
	Position int         `yaml:"position"`
	Segments MatcherList `yaml:"segments"`
}

// Loop builds an unexecuted x12.Loop from the definition.
func (d LoopDef) Loop() *x12.Loop {
	return x12.NewLoop(d.Position, d.Segments...)
}

// Apply registers the file's loops with tx and runs them, then infers an
// extra loop when InferLoops is set.
func (f *File) Apply(tx *x12.Transaction) {
	for _, def := range f.Loops {
		tx.AddLoop(def.Loop())
	}

	tx.RunLoops()

	if f.InferLoops {
		tx.InferLoops()
	}
}

// yamlFile is the on-disk layout of a File.
type yamlFile struct {
	Version    string     `yaml:"version,omitempty"`
	InferLoops bool       `yaml:"infer_loops,omitempty"`
	Loops      []yamlLoop `yaml:"loops,omitempty"`
	Map        yaml.Node  `yaml:"map"`
}

type yamlLoop struct {
	// Position defaults to the index of the loop in the list.
	Position *int        `yaml:"position"`
	Segments MatcherList `yaml:"segments"`
}

// MatcherList is a list of segment matchers that can be unmarshaled from:
//   - Identifier strings: [W07, N9, W20]
//   - Qualified maps: [{segmentIdentifier: N1, identifierPosition: 0, identifierValue: WH}]
//   - Any mix of both
type MatcherList []x12.Matcher

// UnmarshalYAML implements custom YAML unmarshaling for MatcherList.
func (m *MatcherList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		// Single identifier: "W07"
		var id string

		err := node.Decode(&id)
		if err != nil {
			return err
		}

		*m = MatcherList{x12.Bare(id)}

		return nil

	case yaml.SequenceNode:
		out := make(MatcherList, 0, len(node.Content))

		for _, item := range node.Content {
			matcher, err := parseMatcher(item)
			if err != nil {
				return err
			}

			out = append(out, matcher)
		}

		*m = out

		return nil

	default:
		return fmt.Errorf("expected identifier or list of matchers, got %v", node.Kind)
	}
}

// parseMatcher parses "W07" or {segmentIdentifier: N1, identifierPosition: 0, identifierValue: WH}.
func parseMatcher(node *yaml.Node) (x12.Matcher, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		var id string

		err := node.Decode(&id)
		if err != nil {
			return x12.Matcher{}, err
		}

		return x12.Bare(id), nil

	case yaml.MappingNode:
		var raw struct {
			SegmentID string  `yaml:"segmentIdentifier"`
			Position  *int    `yaml:"identifierPosition"`
			Value     *string `yaml:"identifierValue"`
		}

		err := node.Decode(&raw)
		if err != nil {
			return x12.Matcher{}, fmt.Errorf("invalid matcher: %w", err)
		}

		if raw.SegmentID == "" {
			return x12.Matcher{}, errors.New("matcher requires segmentIdentifier")
		}

		if (raw.Position == nil) != (raw.Value == nil) {
			return x12.Matcher{}, fmt.Errorf(
				"matcher %s: identifierPosition and identifierValue must be set together", raw.SegmentID)
		}

		if raw.Position == nil {
			return x12.Bare(raw.SegmentID), nil
		}

		return x12.Qualified(raw.SegmentID, *raw.Position, *raw.Value), nil

	default:
		return x12.Matcher{}, fmt.Errorf("expected identifier or map, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for MatcherList.
// Bare matchers are written as plain identifiers.
func (m MatcherList) MarshalYAML() (any, error) {
	out := make([]any, len(m))

	for i, matcher := range m {
		if matcher.Qualifier == nil {
			out[i] = matcher.SegmentID
			continue
		}

		out[i] = Object{
			{Key: attrSegmentID, Value: matcher.SegmentID},
			{Key: attrIdentifierPosition, Value: matcher.Qualifier.Position},
			{Key: attrIdentifierValue, Value: matcher.Qualifier.Value},
		}
	}

	return out, nil
}
