package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

const userJSON = `{
	"types": {
		"string": {"description": "any string", "isDefault": true},
		"Phone": {"description": "mobile number"}
	},
	"schemas": [
		{"method": "get", "path": "/user", "title": "Get user",
		 "params": {"id": {"type": "string", "comment": "user id"}},
		 "required": ["id"],
		 "examples": [{"description": "fetch", "input": {"id": 1}, "output": {"name": "x"}}]}
	]
}`

const orderYAML = `types:
  Money:
    description: amount in cents
schemas:
  - method: post
    path: /order
    group: order
    params:
      amount:
        type: Money
        default: 0
`

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func encode(t *testing.T, tr transform.Transformer, s string) []byte {
	t.Helper()
	out, _, err := transform.Bytes(tr, []byte(s))
	require.NoError(t, err)
	return out
}

func TestLoadFileJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "docs.json", []byte(userJSON))

	docs, err := LoadFile(path, nil)
	require.NoError(t, err)

	require.Len(t, docs.Schemas, 1)
	assert.Equal(t, "/user", docs.Schemas[0].Path)
	assert.Equal(t, 2, docs.Types.Len())
	assert.Equal(t, "string", docs.Types.All()[0].Name)

	id, ok := docs.Schemas[0].Params.Get("id")
	require.True(t, ok)
	assert.Equal(t, "user id", id.Comment)
	assert.False(t, id.HasDefault)
}

func TestLoadFileYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "order.yaml", []byte(orderYAML))

	docs, err := LoadFile(path, nil)
	require.NoError(t, err)

	amount, ok := docs.Schemas[0].Params.Get("amount")
	require.True(t, ok)
	assert.True(t, amount.HasDefault)
	assert.Equal(t, 0, amount.Default)
}

func TestLoadFileStripsBOM(t *testing.T) {
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte(userJSON)...)
	path := writeFile(t, t.TempDir(), "bom.json", content)

	docs, err := LoadFile(path, nil)
	require.NoError(t, err)
	assert.Len(t, docs.Schemas, 1)
}

func TestLoadFileLegacyEncodings(t *testing.T) {
	dir := t.TempDir()

	t.Run("gb18030", func(t *testing.T) {
		src := `{"schemas": [{"method": "get", "path": "/u", "title": "获取用户"}]}`
		path := writeFile(t, dir, "zh.json", encode(t, simplifiedchinese.GB18030.NewEncoder(), src))

		docs, err := LoadFile(path, []string{"utf-8", "gb18030"})
		require.NoError(t, err)
		assert.Equal(t, "获取用户", docs.Schemas[0].Title)
	})

	t.Run("euc-kr", func(t *testing.T) {
		src := `{"schemas": [{"method": "get", "path": "/u", "title": "사용자 조회"}]}`
		path := writeFile(t, dir, "ko.json", encode(t, korean.EUCKR.NewEncoder(), src))

		docs, err := LoadFile(path, []string{"euc-kr"})
		require.NoError(t, err)
		assert.Equal(t, "사용자 조회", docs.Schemas[0].Title)
	})

	t.Run("unknown hint", func(t *testing.T) {
		path := writeFile(t, dir, "bad.json", []byte{'{', 0xff, 0xfe, '}'})

		_, err := LoadFile(path, []string{"no-such-charset"})
		assert.ErrorIs(t, err, ErrUnknownEncoding)
		assert.ErrorIs(t, err, ErrDecode)
	})
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.json"), nil)
	assert.ErrorIs(t, err, ErrReadFile)

	path := writeFile(t, dir, "broken.json", []byte(`{"schemas": [`))
	_, err = LoadFile(path, nil)
	assert.ErrorIs(t, err, ErrDecode)
	assert.Contains(t, err.Error(), "broken.json")
}

func TestLoadFileEmpty(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty.yaml", []byte("\n"))

	docs, err := LoadFile(path, nil)
	require.NoError(t, err)
	assert.Empty(t, docs.Schemas)
	assert.Zero(t, docs.Types.Len())
}

func TestLoadPathDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b_order.yaml", []byte(orderYAML))
	writeFile(t, dir, "a_user.json", []byte(userJSON))
	writeFile(t, dir, "notes.txt", []byte("ignored"))
	writeFile(t, dir, ".cache/stale.json", []byte(`{"schemas": [{"method": "get", "path": "/stale"}]}`))

	docs, err := LoadPath(dir, nil)
	require.NoError(t, err)

	require.Len(t, docs.Schemas, 2)
	assert.Equal(t, "/user", docs.Schemas[0].Path)
	assert.Equal(t, "/order", docs.Schemas[1].Path)

	var names []string
	for _, tp := range docs.Types.All() {
		names = append(names, tp.Name)
	}
	assert.Equal(t, []string{"string", "Phone", "Money"}, names)
}

func TestLoadPathSingleFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "docs.json", []byte(userJSON))

	docs, err := LoadPath(path, nil)
	require.NoError(t, err)
	assert.Len(t, docs.Schemas, 1)
}

func TestLoadPathErrors(t *testing.T) {
	t.Run("missing path", func(t *testing.T) {
		_, err := LoadPath(filepath.Join(t.TempDir(), "nope"), nil)
		assert.ErrorIs(t, err, ErrReadFile)
	})

	t.Run("no data files", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "readme.md", []byte("# docs"))

		_, err := LoadPath(dir, nil)
		assert.ErrorIs(t, err, ErrNoDataFiles)
	})

	t.Run("conflicting type", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.yaml", []byte("types:\n  Money:\n    description: cents\n"))
		writeFile(t, dir, "b.yaml", []byte("types:\n  Money:\n    description: dollars\n"))

		_, err := LoadPath(dir, nil)
		assert.ErrorIs(t, err, ErrConflictingType)
	})

	t.Run("identical redefinition", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.yaml", []byte("types:\n  Money:\n    description: cents\n"))
		writeFile(t, dir, "b.yaml", []byte("types:\n  Money:\n    description: cents\n"))

		docs, err := LoadPath(dir, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, docs.Types.Len())
	})
}

func TestIsDataFile(t *testing.T) {
	assert.True(t, IsDataFile("a.json"))
	assert.True(t, IsDataFile("a.YAML"))
	assert.True(t, IsDataFile("dir/a.yml"))
	assert.False(t, IsDataFile("a.txt"))
	assert.False(t, IsDataFile("json"))
}
