package model

// Docs is the documentation data model produced by an upstream generator.
// It is a read-only snapshot: render-time fields (id, route, defaulted group)
// are derived into view records and never written back here.
type Docs struct {
	// Endpoint descriptions in discovery order
	Schemas []*Schema `yaml:"schemas"`

	// Custom parameter types keyed by name
	Types TypeMap `yaml:"types"`
}

// Schema documents one API endpoint
type Schema struct {
	// HTTP verb as written by the generator (e.g. "get")
	Method string `yaml:"method"`

	// Request path (e.g. "/user/:id")
	Path string `yaml:"path"`

	Title       string `yaml:"title"`
	Description string `yaml:"description"`

	// Logical group; empty means the "global" group
	Group string `yaml:"group"`

	// Where the schema was declared, for provenance display
	SourceFile SourceFile `yaml:"sourceFile"`

	// Parameters keyed by name, in declaration order
	Params ParamMap `yaml:"params"`

	// Names that are unconditionally required
	Required []string `yaml:"required"`

	// Alternative sets: exactly one name of each set must be present
	RequiredOneOf [][]string `yaml:"requiredOneOf"`

	Examples []Example `yaml:"examples"`
}

// SourceFile records the file a schema was declared in
type SourceFile struct {
	// Path relative to the project root, display only
	Relative string `yaml:"relative"`

	// Absolute path on the generator's machine (optional)
	Absolute string `yaml:"absolute"`
}

// Param describes one request parameter
type Param struct {
	// Back-filled from the mapping key by the decoder
	Name string `yaml:"-"`

	// Name of a Type in Docs.Types
	Type string `yaml:"type"`

	Comment string `yaml:"comment"`

	// Hidden parameters are never rendered
	Hide bool `yaml:"hide"`

	// Default value; only meaningful when HasDefault is true
	Default any `yaml:"-"`

	// Whether the "default" key was present (an explicit null still counts)
	HasDefault bool `yaml:"-"`
}

// Example is one runnable usage example of a schema
type Example struct {
	Description string `yaml:"description"`

	// Arbitrary structured values; may be self-referential when built in memory
	Input  any `yaml:"input"`
	Output any `yaml:"output"`
}

// Type is a named, reusable parameter type
type Type struct {
	// Back-filled from the mapping key by the decoder
	Name string `yaml:"-"`

	Description string `yaml:"description"`

	// Built-in primitive types are hidden from the public type index
	IsDefault bool `yaml:"isDefault"`

	// Source text of the validation logic, shown verbatim, never executed
	Checker string `yaml:"checker"`

	// Source text of the formatting logic, shown verbatim, never executed
	Formatter string `yaml:"formatter"`
}

// NewDocs creates an empty data model
func NewDocs() *Docs {
	return &Docs{
		Schemas: make([]*Schema, 0),
	}
}

// AddSchema appends a schema in discovery order
func (d *Docs) AddSchema(schema *Schema) {
	if schema == nil {
		return
	}
	d.Schemas = append(d.Schemas, schema)
}
