package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParamMap is an insertion-ordered mapping from parameter name to Param.
// Go maps lose declaration order, which the rendered page depends on.
type ParamMap struct {
	order []string
	items map[string]*Param
}

// NewParamMap builds a ParamMap from params in the given order
func NewParamMap(params ...*Param) ParamMap {
	var m ParamMap
	for _, p := range params {
		m.Set(p)
	}
	return m
}

// Set inserts or replaces a parameter, keeping the original position on replace
func (m *ParamMap) Set(p *Param) {
	if p == nil {
		return
	}
	if m.items == nil {
		m.items = make(map[string]*Param)
	}
	if _, exists := m.items[p.Name]; !exists {
		m.order = append(m.order, p.Name)
	}
	m.items[p.Name] = p
}

// Get returns the parameter with the given name
func (m ParamMap) Get(name string) (*Param, bool) {
	p, ok := m.items[name]
	return p, ok
}

// Len returns the number of parameters
func (m ParamMap) Len() int {
	return len(m.order)
}

// All returns the parameters in declaration order
func (m ParamMap) All() []*Param {
	out := make([]*Param, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.items[name])
	}
	return out
}

// UnmarshalYAML decodes a mapping node, back-filling each Param.Name from its key
func (m *ParamMap) UnmarshalYAML(value *yaml.Node) error {
	value = resolveAlias(value)
	if isNull(value) {
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: params must be a mapping", value.Line)
	}

	for i := 0; i+1 < len(value.Content); i += 2 {
		name := value.Content[i].Value
		p := &Param{}
		if err := value.Content[i+1].Decode(p); err != nil {
			return fmt.Errorf("param %q: %w", name, err)
		}
		p.Name = name
		m.Set(p)
	}
	return nil
}

// UnmarshalYAML decodes a parameter and records whether "default" was declared
func (p *Param) UnmarshalYAML(value *yaml.Node) error {
	value = resolveAlias(value)
	if isNull(value) {
		return nil
	}

	var raw struct {
		Type    string `yaml:"type"`
		Comment string `yaml:"comment"`
		Hide    bool   `yaml:"hide"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	p.Type = raw.Type
	p.Comment = raw.Comment
	p.Hide = raw.Hide

	for i := 0; i+1 < len(value.Content); i += 2 {
		if value.Content[i].Value != "default" {
			continue
		}
		var def any
		if err := value.Content[i+1].Decode(&def); err != nil {
			return fmt.Errorf("default: %w", err)
		}
		p.Default = def
		p.HasDefault = true
	}
	return nil
}

// TypeMap is an insertion-ordered mapping from type name to Type
type TypeMap struct {
	order []string
	items map[string]*Type
}

// NewTypeMap builds a TypeMap from types in the given order
func NewTypeMap(types ...*Type) TypeMap {
	var m TypeMap
	for _, t := range types {
		m.Set(t)
	}
	return m
}

// Set inserts or replaces a type, keeping the original position on replace
func (m *TypeMap) Set(t *Type) {
	if t == nil {
		return
	}
	if m.items == nil {
		m.items = make(map[string]*Type)
	}
	if _, exists := m.items[t.Name]; !exists {
		m.order = append(m.order, t.Name)
	}
	m.items[t.Name] = t
}

// Get returns the type with the given name
func (m TypeMap) Get(name string) (*Type, bool) {
	t, ok := m.items[name]
	return t, ok
}

// Len returns the number of types
func (m TypeMap) Len() int {
	return len(m.order)
}

// All returns the types in declaration order
func (m TypeMap) All() []*Type {
	out := make([]*Type, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.items[name])
	}
	return out
}

// UnmarshalYAML decodes a mapping node, back-filling each Type.Name from its key
func (m *TypeMap) UnmarshalYAML(value *yaml.Node) error {
	value = resolveAlias(value)
	if isNull(value) {
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: types must be a mapping", value.Line)
	}

	for i := 0; i+1 < len(value.Content); i += 2 {
		name := value.Content[i].Value
		t := &Type{}
		if err := value.Content[i+1].Decode(t); err != nil {
			return fmt.Errorf("type %q: %w", name, err)
		}
		t.Name = name
		m.Set(t)
	}
	return nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func isNull(node *yaml.Node) bool {
	return node == nil || (node.Kind == yaml.ScalarNode && node.Tag == "!!null")
}
