package openapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"slices"
	"strings"

	"apidocs/internal/config"
	"apidocs/internal/docgen"
	"apidocs/internal/logger"

	"github.com/getkin/kin-openapi/openapi3"
)

const (
	openAPIVersion = "3.0.3"
	infoVersion    = "1.0.0"
	jsonMediaType  = "application/json"
)

// OpenAPIExporter writes the rendered document as an OpenAPI 3 description
type OpenAPIExporter struct {
	// Stateless
}

func NewOpenAPIExporter() *OpenAPIExporter {
	return &OpenAPIExporter{}
}

func (b *OpenAPIExporter) Export(doc *docgen.Document, cfg *config.Config) error {
	spec, err := Build(doc)
	if err != nil {
		return err
	}

	// Best effort: the description is still written when validation complains
	if err := spec.Validate(context.Background()); err != nil {
		logger.Warn("OpenAPI validation: %v", err)
	}

	content, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode OpenAPI document: %w", err)
	}

	outputFile := cfg.GetOutputPath("openapi.json")
	if err := os.WriteFile(outputFile, content, 0644); err != nil {
		return fmt.Errorf("failed to write OpenAPI document: %w", err)
	}

	logger.Info("🧭 OpenAPI document generated: %s", outputFile)
	return nil
}

// Build converts the document into an OpenAPI description. Groups become
// tags and schema ids become operation ids.
func Build(doc *docgen.Document) (*openapi3.T, error) {
	if doc == nil {
		return nil, docgen.ErrNilDocs
	}

	spec := &openapi3.T{
		OpenAPI: openAPIVersion,
		Info: &openapi3.Info{
			Title:   doc.Title,
			Version: infoVersion,
		},
		Paths: openapi3.Paths{},
	}

	descriptions := typeDescriptions(doc.Types)

	for _, group := range doc.Groups {
		spec.Tags = append(spec.Tags, &openapi3.Tag{Name: group.Name})

		for _, schema := range group.Schemas {
			path, pathParams := openAPIPath(schema.Path)

			if !supportedMethod(schema.Method) {
				logger.Warn("OpenAPI: skipping %s, method not supported", schema.ID)
				continue
			}
			if item := spec.Paths[path]; item != nil && item.GetOperation(schema.Method) != nil {
				logger.Warn("OpenAPI: %s declared twice, keeping the first", schema.ID)
				continue
			}

			op, err := buildOperation(schema, pathParams, descriptions)
			if err != nil {
				return nil, fmt.Errorf("schema %s: %w", schema.ID, err)
			}
			spec.AddOperation(path, schema.Method, op)
		}
	}

	return spec, nil
}

func buildOperation(s docgen.SchemaSection, pathParams []string, descriptions map[string]string) (*openapi3.Operation, error) {
	op := &openapi3.Operation{
		Tags:        []string{s.Group},
		Summary:     s.Title,
		Description: operationDescription(s),
		OperationID: s.ID,
	}
	if op.Summary == "" {
		op.Summary = s.Route
	}

	required := requiredSet(s.Required)

	// Declared parameters named like a path segment describe that segment
	inPath := make(map[string]docgen.ParamLine, len(pathParams))
	var rest []docgen.ParamLine
	for _, p := range s.Params {
		if slices.Contains(pathParams, p.Name) {
			inPath[p.Name] = p
			continue
		}
		rest = append(rest, p)
	}

	for _, name := range pathParams {
		param := openapi3.NewPathParameter(name)
		if p, ok := inPath[name]; ok {
			schema, err := paramSchema(p, descriptions)
			if err != nil {
				return nil, err
			}
			param = param.WithDescription(p.Comment).WithSchema(schema)
		} else {
			param = param.WithSchema(openapi3.NewStringSchema())
		}
		op.Parameters = append(op.Parameters, &openapi3.ParameterRef{Value: param})
	}
	s.Params = rest

	if hasBody(s.Method) {
		body, err := buildRequestBody(s, required, descriptions)
		if err != nil {
			return nil, err
		}
		op.RequestBody = body
	} else {
		for _, p := range s.Params {
			schema, err := paramSchema(p, descriptions)
			if err != nil {
				return nil, err
			}
			param := openapi3.NewQueryParameter(p.Name).
				WithDescription(p.Comment).
				WithRequired(required[p.Name]).
				WithSchema(schema)
			op.Parameters = append(op.Parameters, &openapi3.ParameterRef{Value: param})
		}
	}

	response, err := buildResponse(s)
	if err != nil {
		return nil, err
	}
	op.Responses = openapi3.Responses{
		"200": &openapi3.ResponseRef{Value: response},
	}

	return op, nil
}

// buildRequestBody collects the parameters of a body-carrying method into one JSON object
func buildRequestBody(s docgen.SchemaSection, required map[string]bool, descriptions map[string]string) (*openapi3.RequestBodyRef, error) {
	object := openapi3.NewObjectSchema()
	for _, p := range s.Params {
		schema, err := paramSchema(p, descriptions)
		if err != nil {
			return nil, err
		}
		if p.Comment != "" {
			schema.Description = strings.TrimSpace(schema.Description + " " + p.Comment)
		}
		object.WithProperty(p.Name, schema)
		if required[p.Name] {
			object.Required = append(object.Required, p.Name)
		}
	}

	content := openapi3.NewContentWithJSONSchema(object)
	examples, err := buildExamples(s.Examples, func(e docgen.ExampleBlock) string { return e.Input })
	if err != nil {
		return nil, err
	}
	content[jsonMediaType].Examples = examples

	body := openapi3.NewRequestBody().
		WithContent(content).
		WithRequired(len(object.Required) > 0)
	return &openapi3.RequestBodyRef{Value: body}, nil
}

func buildResponse(s docgen.SchemaSection) (*openapi3.Response, error) {
	response := openapi3.NewResponse().WithDescription("Successful response")
	if len(s.Examples) == 0 {
		return response, nil
	}

	// Outputs are free-form, so the schema accepts any value
	content := openapi3.NewContentWithJSONSchema(&openapi3.Schema{})
	examples, err := buildExamples(s.Examples, func(e docgen.ExampleBlock) string { return e.Output })
	if err != nil {
		return nil, err
	}
	content[jsonMediaType].Examples = examples

	return response.WithContent(content), nil
}

// buildExamples decodes the serialized payloads back into JSON values
func buildExamples(blocks []docgen.ExampleBlock, payload func(docgen.ExampleBlock) string) (openapi3.Examples, error) {
	if len(blocks) == 0 {
		return nil, nil
	}

	examples := make(openapi3.Examples, len(blocks))
	for i, block := range blocks {
		value, err := decodeJSON(payload(block))
		if err != nil {
			return nil, fmt.Errorf("example %d: %w", i+1, err)
		}
		example := openapi3.NewExample(value)
		example.Summary = commentText(block.Comment)
		examples[fmt.Sprintf("example%d", i+1)] = &openapi3.ExampleRef{Value: example}
	}
	return examples, nil
}

// paramSchema maps a parameter type name to a JSON schema. Custom types are
// strings carrying their description.
func paramSchema(p docgen.ParamLine, descriptions map[string]string) (*openapi3.Schema, error) {
	var schema *openapi3.Schema
	switch strings.ToLower(p.Type) {
	case "number", "float", "double":
		schema = openapi3.NewFloat64Schema()
	case "integer", "int", "long":
		schema = openapi3.NewInt64Schema()
	case "boolean", "bool":
		schema = openapi3.NewBoolSchema()
	case "object", "json":
		schema = openapi3.NewObjectSchema()
	case "array", "list":
		schema = openapi3.NewArraySchema().WithItems(&openapi3.Schema{})
	default:
		schema = openapi3.NewStringSchema()
	}

	if description, ok := descriptions[p.Type]; ok {
		schema.Description = description
	}

	if p.HasDefault {
		value, err := decodeJSON(p.DefaultText)
		if err != nil {
			return nil, fmt.Errorf("param %q default: %w", p.Name, err)
		}
		schema.Default = value
	}

	return schema, nil
}

// openAPIPath rewrites ":name" segments to "{name}" and returns the path
// parameter names in order of appearance
func openAPIPath(path string) (string, []string) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	var names []string
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		switch {
		case strings.HasPrefix(segment, ":") && len(segment) > 1:
			name := strings.TrimSuffix(segment[1:], "?")
			segments[i] = "{" + name + "}"
			names = append(names, name)
		case strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") && len(segment) > 2:
			names = append(names, segment[1:len(segment)-1])
		}
	}
	return strings.Join(segments, "/"), names
}

func typeDescriptions(types []docgen.TypeEntry) map[string]string {
	descriptions := make(map[string]string, len(types))
	for _, t := range types {
		descriptions[t.Name] = t.Description
	}
	return descriptions
}

// requiredSet marks the unconditionally required names; one-of members stay optional
func requiredSet(lines []docgen.RequiredLine) map[string]bool {
	set := make(map[string]bool)
	for _, line := range lines {
		if line.OneOf {
			continue
		}
		for _, name := range line.Names {
			set[name] = true
		}
	}
	return set
}

// operationDescription appends the one-of constraints, which OpenAPI cannot express on parameters
func operationDescription(s docgen.SchemaSection) string {
	parts := []string{}
	if s.Description != "" {
		parts = append(parts, s.Description)
	}
	for _, line := range s.Required {
		if line.OneOf {
			parts = append(parts, "Required: "+line.Label)
		}
	}
	return strings.Join(parts, "\n\n")
}

func commentText(comment string) string {
	lines := strings.Split(comment, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, "// ")
	}
	return strings.TrimSpace(strings.Join(lines, " "))
}

func supportedMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete,
		http.MethodHead, http.MethodOptions, http.MethodTrace, http.MethodConnect:
		return true
	}
	return false
}

func hasBody(method string) bool {
	switch strings.ToUpper(method) {
	case "POST", "PUT", "PATCH":
		return true
	}
	return false
}

func decodeJSON(text string) (any, error) {
	var value any
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return nil, err
	}
	return value, nil
}
