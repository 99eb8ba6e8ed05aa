package docgen

import (
	"fmt"

	"apidocs/internal/model"
)

// TypeInfo is the display metadata of one custom type
type TypeInfo struct {
	Name        string
	Description string
	IsDefault   bool
	Checker     string
	Formatter   string
}

// DisplayDescription returns the description shown next to a parameter.
// Default (built-in) types show none.
func (t TypeInfo) DisplayDescription() string {
	if t.IsDefault {
		return ""
	}
	return t.Description
}

// TypeResolver indexes custom types by name. It is handed explicitly to every
// component that needs type metadata.
type TypeResolver struct {
	order []string
	types map[string]TypeInfo
}

// NewTypeResolver snapshots the type mapping into a resolver
func NewTypeResolver(types model.TypeMap) *TypeResolver {
	r := &TypeResolver{
		order: make([]string, 0, types.Len()),
		types: make(map[string]TypeInfo, types.Len()),
	}

	for _, t := range types.All() {
		r.order = append(r.order, t.Name)
		r.types[t.Name] = TypeInfo{
			Name:        t.Name,
			Description: t.Description,
			IsDefault:   t.IsDefault,
			Checker:     t.Checker,
			Formatter:   t.Formatter,
		}
	}

	return r
}

// Resolve returns the metadata of the named type or ErrUnknownType
func (r *TypeResolver) Resolve(name string) (TypeInfo, error) {
	info, ok := r.types[name]
	if !ok {
		return TypeInfo{}, fmt.Errorf("%w %q", ErrUnknownType, name)
	}
	return info, nil
}

// Index returns the public type index: every non-default type exactly once,
// in declaration order of the type mapping.
func (r *TypeResolver) Index() []TypeInfo {
	out := make([]TypeInfo, 0, len(r.order))
	for _, name := range r.order {
		info := r.types[name]
		if info.IsDefault {
			continue
		}
		out = append(out, info)
	}
	return out
}

// Len returns the total number of known types, default ones included
func (r *TypeResolver) Len() int {
	return len(r.order)
}
