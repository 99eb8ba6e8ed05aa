package docgen

import "time"

// TypesAnchor is the navigation anchor of the custom types section
const TypesAnchor = "global:types"

// Document is the navigation tree and content tree of one rendered page.
// It is handed as-is to a presentation layer.
type Document struct {
	Title  string `json:"title"`
	Labels Labels `json:"labels"`

	Nav    Nav            `json:"nav"`
	Types  []TypeEntry    `json:"types"`
	Groups []GroupSection `json:"groups"`

	// Optional cosmetic pass for the presentation layer; nil when disabled
	Highlight *HighlightTask `json:"highlight,omitempty"`
}

// Nav is the navigation tree
type Nav struct {
	// Fixed entry pointing at the custom types section
	Types NavItem `json:"types"`

	// One group per schema group, in content order
	Groups []NavGroup `json:"groups"`
}

// NavGroup lists the schemas of one group
type NavGroup struct {
	Name  string    `json:"name"`
	Items []NavItem `json:"items"`
}

// NavItem links to a content anchor
type NavItem struct {
	Title  string `json:"title"`
	Route  string `json:"route,omitempty"`
	Anchor string `json:"anchor"`
}

// TypeEntry is one entry of the custom types reference
type TypeEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Checker     string `json:"checker"`
	Formatter   string `json:"formatter"`
}

// GroupSection holds the rendered schemas of one group
type GroupSection struct {
	Name    string          `json:"name"`
	Schemas []SchemaSection `json:"schemas"`
}

// SchemaSection is the rendered content of one schema
type SchemaSection struct {
	ID          string `json:"id"`
	Route       string `json:"route"`
	Method      string `json:"method"`
	Path        string `json:"path"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Group       string `json:"group"`
	SourceFile  string `json:"sourceFile"`

	// Nil when the schema has no visible parameters
	Params []ParamLine `json:"params,omitempty"`

	// Nil when nothing is required; the block is omitted
	Required []RequiredLine `json:"required,omitempty"`

	// Nil when there are no examples; the block is omitted
	Examples []ExampleBlock `json:"examples,omitempty"`
}

// ParamLine is one visible parameter
type ParamLine struct {
	Name string `json:"name"`
	Type string `json:"type"`

	// Empty for default types
	TypeDescription string `json:"typeDescription"`

	Comment string `json:"comment"`

	// Serialized default, or the "no default" marker
	DefaultText string `json:"defaultText"`
	HasDefault  bool   `json:"hasDefault"`
}

// ExampleBlock is one rendered example
type ExampleBlock struct {
	// Description as "// " comment lines; empty when there is none
	Comment string `json:"comment"`
	Input   string `json:"input"`
	Output  string `json:"output"`
}

// HighlightTask asks the presentation layer to colorize code blocks after
// a short delay. It is best-effort: nothing waits for it and the document
// is complete without it.
type HighlightTask struct {
	Delay    time.Duration `json:"delay"`
	Selector string        `json:"selector"`
}

// SchemaCount returns the number of rendered schemas across all groups
func (d *Document) SchemaCount() int {
	total := 0
	for _, g := range d.Groups {
		total += len(g.Schemas)
	}
	return total
}
