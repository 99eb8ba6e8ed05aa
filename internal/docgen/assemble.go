package docgen

import (
	"fmt"
	"strings"
	"time"

	"apidocs/internal/logger"
	"apidocs/internal/model"
)

const (
	// defaultTitle is used when caller does not provide a page title.
	defaultTitle = "API Documentation"
	// exampleIndent is the pretty-print width of example payloads.
	exampleIndent = 2
	// commentPrefix starts every line of an example description.
	commentPrefix = "// "
	// highlightDelay postpones the cosmetic highlighting pass.
	highlightDelay = 100 * time.Millisecond
	// highlightSelector selects the code blocks to colorize.
	highlightSelector = "pre.prettyprint"
)

// Options configures one render pass
type Options struct {
	Title    string
	Language string

	// Allow two schemas to derive the same id; the first keeps the nav anchor
	AllowDuplicateIDs bool

	// Attach a HighlightTask to the document
	Highlight bool
}

// Assembler composes identity derivation, type resolution, grouping,
// required-set flattening and example serialization into a Document.
type Assembler struct {
	types  *TypeResolver
	labels Labels
	opts   Options
}

// NewAssembler creates an assembler bound to a type resolver
func NewAssembler(types *TypeResolver, opts Options) *Assembler {
	if types == nil {
		types = NewTypeResolver(model.TypeMap{})
	}

	return &Assembler{
		types:  types,
		labels: NewLabels(opts.Language),
		opts:   opts,
	}
}

// Assemble renders docs with a resolver built from docs.Types
func Assemble(docs *model.Docs, opts Options) (*Document, error) {
	if docs == nil {
		return nil, ErrNilDocs
	}
	return NewAssembler(NewTypeResolver(docs.Types), opts).Assemble(docs)
}

// Assemble builds the navigation and content trees. Any error aborts the
// whole render; no partial document is returned.
func (a *Assembler) Assemble(docs *model.Docs) (*Document, error) {
	if docs == nil {
		return nil, ErrNilDocs
	}

	// 1. Identities
	refs, err := a.deriveRefs(docs.Schemas)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(a.opts.Title)
	if title == "" {
		title = defaultTitle
	}

	doc := &Document{
		Title:  title,
		Labels: a.labels,
		Nav: Nav{
			Types: NavItem{Title: a.labels.CustomTypes, Anchor: TypesAnchor},
		},
	}

	// 2. Public type index
	for _, info := range a.types.Index() {
		doc.Types = append(doc.Types, TypeEntry{
			Name:        info.Name,
			Description: info.Description,
			Checker:     info.Checker,
			Formatter:   info.Formatter,
		})
	}

	// 3. Groups, 4. per-schema content, 5. navigation
	for _, group := range GroupSchemas(refs) {
		section := GroupSection{Name: group.Name}
		nav := NavGroup{Name: group.Name}

		for _, ref := range group.Schemas {
			schema, err := a.renderSchema(ref)
			if err != nil {
				return nil, err
			}
			section.Schemas = append(section.Schemas, schema)
			nav.Items = append(nav.Items, NavItem{
				Title:  schema.Title,
				Route:  schema.Route,
				Anchor: schema.ID,
			})
		}

		doc.Groups = append(doc.Groups, section)
		doc.Nav.Groups = append(doc.Nav.Groups, nav)
	}

	if a.opts.Highlight {
		doc.Highlight = &HighlightTask{Delay: highlightDelay, Selector: highlightSelector}
	}

	logger.Debug("Assembled %d schemas in %d groups, %d custom types", doc.SchemaCount(), len(doc.Groups), len(doc.Types))
	return doc, nil
}

// deriveRefs computes every schema identity once and rejects anchor collisions
func (a *Assembler) deriveRefs(schemas []*model.Schema) ([]SchemaRef, error) {
	refs := make([]SchemaRef, 0, len(schemas))
	seen := make(map[string]int, len(schemas))

	for i, schema := range schemas {
		if schema == nil {
			continue
		}

		identity, err := DeriveIdentity(schema.Method, schema.Path)
		if err != nil {
			return nil, fmt.Errorf("schema #%d %q: %w", i, schema.Title, err)
		}

		if first, dup := seen[identity.ID]; dup {
			if !a.opts.AllowDuplicateIDs {
				return nil, fmt.Errorf("%w %q: schemas #%d and #%d", ErrDuplicateIdentifier, identity.ID, first, i)
			}
			logger.Warn("Duplicate identifier %s (schemas #%d and #%d); anchor points at the first", identity.ID, first, i)
		} else {
			seen[identity.ID] = i
		}

		refs = append(refs, SchemaRef{
			Identity: identity,
			Group:    GroupName(schema.Group),
			Schema:   schema,
		})
	}

	return refs, nil
}

func (a *Assembler) renderSchema(ref SchemaRef) (SchemaSection, error) {
	schema := ref.Schema
	section := SchemaSection{
		ID:          ref.ID,
		Route:       ref.Route,
		Method:      strings.ToUpper(schema.Method),
		Path:        schema.Path,
		Title:       schema.Title,
		Description: schema.Description,
		Group:       ref.Group,
		SourceFile:  schema.SourceFile.Relative,
	}

	params, err := a.renderParams(schema)
	if err != nil {
		return SchemaSection{}, fmt.Errorf("schema %s: %w", ref.ID, err)
	}
	section.Params = params
	section.Required = FlattenRequired(schema.Required, schema.RequiredOneOf, a.labels)
	section.Examples = renderExamples(schema.Examples)

	return section, nil
}

func (a *Assembler) renderParams(schema *model.Schema) ([]ParamLine, error) {
	var lines []ParamLine
	for _, param := range schema.Params.All() {
		if param.Hide {
			continue
		}

		info, err := a.types.Resolve(param.Type)
		if err != nil {
			return nil, fmt.Errorf("param %q: %w", param.Name, err)
		}

		line := ParamLine{
			Name:            param.Name,
			Type:            param.Type,
			TypeDescription: info.DisplayDescription(),
			Comment:         param.Comment,
			DefaultText:     a.labels.NoDefaultText(),
			HasDefault:      param.HasDefault,
		}
		if param.HasDefault {
			line.DefaultText = Stringify(param.Default, 0)
		}

		lines = append(lines, line)
	}
	return lines, nil
}

func renderExamples(examples []model.Example) []ExampleBlock {
	if len(examples) == 0 {
		return nil
	}

	blocks := make([]ExampleBlock, 0, len(examples))
	for _, example := range examples {
		blocks = append(blocks, ExampleBlock{
			Comment: CommentLines(example.Description),
			Input:   Stringify(example.Input, exampleIndent),
			Output:  Stringify(example.Output, exampleIndent),
		})
	}
	return blocks
}

// CommentLines turns a description into "// " prefixed lines, each trimmed
func CommentLines(description string) string {
	description = strings.TrimSpace(description)
	if description == "" {
		return ""
	}

	lines := strings.Split(strings.ReplaceAll(description, "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = commentPrefix + strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}
