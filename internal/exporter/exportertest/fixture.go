// Package exportertest builds a small rendered document shared by the
// exporter tests.
package exportertest

import (
	"testing"

	"apidocs/internal/config"
	"apidocs/internal/docgen"
	"apidocs/internal/model"
)

// Docs returns a data model with two groups, a custom type, a hidden
// parameter, a one-of constraint and a self-referential example.
func Docs() *model.Docs {
	docs := model.NewDocs()
	docs.Types = model.NewTypeMap(
		&model.Type{Name: "number", Description: "any number", IsDefault: true},
		&model.Type{Name: "string", Description: "any string", IsDefault: true},
		&model.Type{
			Name:        "Phone",
			Description: "mobile phone number",
			Checker:     "v => /^1\\d{10}$/.test(v)",
			Formatter:   "v => String(v).trim()",
		},
	)

	cyclic := map[string]any{"name": "root"}
	cyclic["self"] = cyclic

	docs.AddSchema(&model.Schema{
		Method:      "get",
		Path:        "/user",
		Title:       "Get user",
		Description: "Returns one user <b>by id</b>",
		SourceFile:  model.SourceFile{Relative: "api/user.js"},
		Params: model.NewParamMap(
			&model.Param{Name: "id", Type: "number", Comment: "user id"},
			&model.Param{Name: "phone", Type: "Phone", Comment: "lookup by phone"},
			&model.Param{Name: "fields", Type: "string", Default: "name,email", HasDefault: true},
			&model.Param{Name: "token", Type: "string", Hide: true},
		),
		Required:      []string{"id"},
		RequiredOneOf: [][]string{{"id", "phone"}},
		Examples: []model.Example{
			{Description: "fetch\nby id", Input: map[string]any{"id": 1}, Output: map[string]any{"name": "x"}},
			{Input: map[string]any{"phone": "13800000000"}, Output: cyclic},
		},
	})
	docs.AddSchema(&model.Schema{
		Method: "post",
		Path:   "/order",
		Group:  "order",
		Title:  "Create order",
		Params: model.NewParamMap(
			&model.Param{Name: "amount", Type: "number", Default: 0, HasDefault: true},
		),
		Required: []string{"amount"},
	})
	docs.AddSchema(&model.Schema{
		Method: "get",
		Path:   "/ping",
		Title:  "Ping",
	})
	return docs
}

// Document assembles Docs with highlighting enabled
func Document(t testing.TB) *docgen.Document {
	t.Helper()
	doc, err := docgen.Assemble(Docs(), docgen.Options{Title: "Shop API", Highlight: true})
	if err != nil {
		t.Fatalf("assemble fixture: %v", err)
	}
	return doc
}

// Config writes outputs into a fresh temporary directory
func Config(t testing.TB, formats ...string) *config.Config {
	t.Helper()
	return &config.Config{
		Render: config.RenderConfig{Title: "Shop API", Language: "en", Highlight: true},
		Output: config.OutputConfig{
			Dir:      t.TempDir(),
			FileName: "api-docs",
			Formats:  formats,
		},
	}
}
