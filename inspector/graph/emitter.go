package graph

import (
	"bytes"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Model represents symbol model produced for a batch of files
type Model struct {
	Classes   []*ClassNode             `yaml:"classes,omitempty"`
	Protocols []*ProtocolNode          `yaml:"protocols,omitempty"`
	Methods   map[string][]*MethodNode `yaml:"methods,omitempty"`
}

// Emitter represents generator
type Emitter interface {
	Emit(model *Model) ([]byte, error)
}

// YAMLEmitter emits symbol model as YAML document
type YAMLEmitter struct {
	Indent int
}

// Emit sorts the model by name and encodes it
func (e *YAMLEmitter) Emit(model *Model) ([]byte, error) {
	if model == nil {
		return nil, fmt.Errorf("model was nil")
	}
	sorted := &Model{
		Classes:   append([]*ClassNode(nil), model.Classes...),
		Protocols: append([]*ProtocolNode(nil), model.Protocols...),
		Methods:   model.Methods,
	}
	sort.SliceStable(sorted.Classes, func(i, j int) bool {
		return sorted.Classes[i].Name < sorted.Classes[j].Name
	})
	sort.SliceStable(sorted.Protocols, func(i, j int) bool {
		return sorted.Protocols[i].Name < sorted.Protocols[j].Name
	})
	indent := e.Indent
	if indent == 0 {
		indent = 2
	}
	buffer := &bytes.Buffer{}
	encoder := yaml.NewEncoder(buffer)
	encoder.SetIndent(indent)
	if err := encoder.Encode(sorted); err != nil {
		return nil, fmt.Errorf("failed to encode model: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode model: %w", err)
	}
	return buffer.Bytes(), nil
}
