package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const docsYAML = `
types:
  zeta:
    description: last letter
  string:
    description: any string
    isDefault: true
  alpha:
    description: first letter
    checker: "v => v.length > 0"
schemas:
  - method: get
    path: /user
    group: user
    sourceFile:
      relative: api/user.js
    params:
      name:
        type: string
        comment: user name
      id:
        type: alpha
        default: 42
      page:
        type: zeta
        default: null
      token:
        type: string
        hide: true
    required: [id]
    requiredOneOf:
      - [name, token]
    examples:
      - description: fetch
        input: {id: 1}
        output: {name: x}
`

func TestDocsDecodeKeepsOrder(t *testing.T) {
	var docs Docs
	require.NoError(t, yaml.Unmarshal([]byte(docsYAML), &docs))

	var typeNames []string
	for _, tp := range docs.Types.All() {
		typeNames = append(typeNames, tp.Name)
	}
	assert.Equal(t, []string{"zeta", "string", "alpha"}, typeNames)

	alpha, ok := docs.Types.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, "v => v.length > 0", alpha.Checker)

	str, _ := docs.Types.Get("string")
	assert.True(t, str.IsDefault)

	require.Len(t, docs.Schemas, 1)
	schema := docs.Schemas[0]
	assert.Equal(t, "api/user.js", schema.SourceFile.Relative)

	var paramNames []string
	for _, p := range schema.Params.All() {
		paramNames = append(paramNames, p.Name)
	}
	assert.Equal(t, []string{"name", "id", "page", "token"}, paramNames)

	assert.Equal(t, []string{"id"}, schema.Required)
	assert.Equal(t, [][]string{{"name", "token"}}, schema.RequiredOneOf)
	require.Len(t, schema.Examples, 1)
	assert.Equal(t, map[string]any{"id": 1}, schema.Examples[0].Input)
}

func TestParamDefaultDetection(t *testing.T) {
	var docs Docs
	require.NoError(t, yaml.Unmarshal([]byte(docsYAML), &docs))
	params := docs.Schemas[0].Params

	name, _ := params.Get("name")
	assert.False(t, name.HasDefault)
	assert.Nil(t, name.Default)

	id, _ := params.Get("id")
	assert.True(t, id.HasDefault)
	assert.Equal(t, 42, id.Default)

	page, _ := params.Get("page")
	assert.True(t, page.HasDefault, "explicit null still counts as a default")
	assert.Nil(t, page.Default)

	token, _ := params.Get("token")
	assert.True(t, token.Hide)
}

func TestDocsDecodeJSONSyntax(t *testing.T) {
	input := `{"types": {"b": {"description": "B"}, "a": {"description": "A"}},
  "schemas": [{"method": "post", "path": "/x", "params": {"q": {"type": "a", "default": [1, 2]}}}]}`

	var docs Docs
	require.NoError(t, yaml.Unmarshal([]byte(input), &docs))

	assert.Equal(t, 2, docs.Types.Len())
	assert.Equal(t, "b", docs.Types.All()[0].Name)

	q, ok := docs.Schemas[0].Params.Get("q")
	require.True(t, ok)
	assert.Equal(t, []any{1, 2}, q.Default)
}

func TestOrderedMapRejectsSequence(t *testing.T) {
	var docs Docs
	err := yaml.Unmarshal([]byte("types: [a, b]\n"), &docs)
	assert.Error(t, err)
}

func TestOrderedMapSetReplaceKeepsPosition(t *testing.T) {
	m := NewParamMap(&Param{Name: "a"}, &Param{Name: "b"})
	m.Set(&Param{Name: "a", Comment: "replaced"})
	m.Set(nil)

	all := m.All()
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].Name)
	assert.Equal(t, "replaced", all[0].Comment)

	var empty TypeMap
	assert.Zero(t, empty.Len())
	_, ok := empty.Get("x")
	assert.False(t, ok)
}

func TestAddSchema(t *testing.T) {
	docs := NewDocs()
	docs.AddSchema(nil)
	docs.AddSchema(&Schema{Method: "get", Path: "/a"})

	assert.Len(t, docs.Schemas, 1)
}
