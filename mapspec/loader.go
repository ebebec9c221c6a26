package mapspec

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a spec file from the given path.
// Files ending in ".toml" are read as TOML, anything else as YAML or JSON.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOML(data)
	}

	return Parse(data)
}

// Parse parses YAML or JSON data into a File.
func Parse(data []byte) (*File, error) {
	var raw yamlFile

	err := yaml.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse spec YAML: %w", err)
	}

	return fromYAML(&raw)
}

// fromYAML converts the on-disk layout into a File and applies defaults.
func fromYAML(raw *yamlFile) (*File, error) {
	f := &File{
		Version:    raw.Version,
		InferLoops: raw.InferLoops,
		Loops:      make([]LoopDef, len(raw.Loops)),
	}

	for i, l := range raw.Loops {
		pos := i
		if l.Position != nil {
			pos = *l.Position
		}

		f.Loops[i] = LoopDef{Position: pos, Segments: l.Segments}
	}

	var plain any

	if raw.Map.Kind != 0 {
		var err error

		plain, err = plainFromYAML(&raw.Map)
		if err != nil {
			return nil, fmt.Errorf("failed to read spec map: %w", err)
		}
	}

	f.Map, f.Diagnostics = ReviveGroup(plain)

	applyDefaults(f)

	return f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	if f.Map == nil {
		f.Map = NewGroup()
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	out := struct {
		Version    string    `yaml:"version"`
		InferLoops bool      `yaml:"infer_loops,omitempty"`
		Loops      []LoopDef `yaml:"loops,omitempty"`
		Map        any       `yaml:"map"`
	}{
		Version:    f.Version,
		InferLoops: f.InferLoops,
		Loops:      f.Loops,
		Map:        ToPlain(nonNilGroup(f.Map)),
	}

	return yaml.Marshal(out)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal spec: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write spec file %s: %w", path, err)
	}

	return nil
}
