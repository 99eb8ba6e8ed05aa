package docgen

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type treeNode struct {
	Name     string      `json:"name"`
	Parent   *treeNode   `json:"parent,omitempty"`
	Children []*treeNode `json:"children,omitempty"`
	secret   string
}

// Audit is embedded by exported name
type Audit struct {
	CreatedBy string `json:"createdBy"`
	Version   int    `json:"version"`
}

type base struct {
	ID   int    `json:"id"`
	Kind string `json:"kind"`
}

type record struct {
	Audit
	base
	Kind string `json:"kind"`
}

type taggedRecord struct {
	Audit `json:"audit"`
	Name  string `json:"name"`
}

type linkedRecord struct {
	*Audit
	*linkedRecord
	Name string `json:"name"`
}

func TestStringify(t *testing.T) {
	t.Run("scalars", func(t *testing.T) {
		assert.Equal(t, "null", Stringify(nil, 0))
		assert.Equal(t, "1", Stringify(1, 0))
		assert.Equal(t, "true", Stringify(true, 0))
		assert.Equal(t, `"x"`, Stringify("x", 0))
		assert.Equal(t, "1.5", Stringify(1.5, 2))
	})

	t.Run("compact", func(t *testing.T) {
		assert.Equal(t, `{"id":1}`, Stringify(map[string]any{"id": 1}, 0))
		assert.Equal(t, `[1,"a",null]`, Stringify([]any{1, "a", nil}, 0))
	})

	t.Run("indented", func(t *testing.T) {
		got := Stringify(map[string]any{"name": "x", "tags": []any{"a"}}, 2)
		want := "{\n  \"name\": \"x\",\n  \"tags\": [\n    \"a\"\n  ]\n}"
		assert.Equal(t, want, got)
	})

	t.Run("indent width", func(t *testing.T) {
		got := Stringify(map[string]any{"a": 1}, 4)
		assert.Equal(t, "{\n    \"a\": 1\n}", got)
	})

	t.Run("html is not escaped", func(t *testing.T) {
		assert.Equal(t, `"<b>&</b>"`, Stringify("<b>&</b>", 0))
	})

	t.Run("keys sorted", func(t *testing.T) {
		assert.Equal(t, `{"a":1,"b":2,"c":3}`, Stringify(map[string]int{"c": 3, "a": 1, "b": 2}, 0))
	})

	t.Run("non string keys", func(t *testing.T) {
		assert.Equal(t, `{"1":"one","2":"two"}`, Stringify(map[any]any{2: "two", 1: "one"}, 0))
	})

	t.Run("struct fields follow json tags", func(t *testing.T) {
		got := Stringify(treeNode{Name: "root", secret: "hidden"}, 0)
		assert.Equal(t, `{"name":"root"}`, got)
	})

	t.Run("embedded fields are promoted", func(t *testing.T) {
		value := record{
			Audit: Audit{CreatedBy: "ops", Version: 3},
			base:  base{ID: 9, Kind: "inner"},
			Kind:  "outer",
		}

		want, err := json.Marshal(value)
		require.NoError(t, err)
		assert.Equal(t, `{"createdBy":"ops","id":9,"kind":"outer","version":3}`, Stringify(value, 0))
		assert.JSONEq(t, string(want), Stringify(value, 0))
	})

	t.Run("tagged embedded struct stays nested", func(t *testing.T) {
		got := Stringify(taggedRecord{Audit: Audit{CreatedBy: "ops"}, Name: "x"}, 0)
		assert.Equal(t, `{"audit":{"createdBy":"ops","version":0},"name":"x"}`, got)
	})

	t.Run("embedded pointers", func(t *testing.T) {
		assert.Equal(t, `{"name":"x"}`, Stringify(linkedRecord{Name: "x"}, 0))

		value := &linkedRecord{Audit: &Audit{Version: 1}, Name: "x"}
		value.linkedRecord = value
		assert.Equal(t, `{"createdBy":"","name":"x","version":1}`, Stringify(value, 0))
	})

	t.Run("marshalers are scalars", func(t *testing.T) {
		ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		assert.Equal(t, `{"at":"2024-01-02T03:04:05Z"}`, Stringify(map[string]any{"at": ts}, 0))
	})

	t.Run("unencodable values degrade", func(t *testing.T) {
		got := Stringify(map[string]any{
			"fn":  func() {},
			"ch":  make(chan int),
			"nan": math.NaN(),
			"inf": math.Inf(1),
		}, 0)
		assert.Equal(t, `{"ch":null,"fn":null,"inf":null,"nan":null}`, got)
	})

	t.Run("idempotent", func(t *testing.T) {
		value := map[string]any{
			"user":  map[string]any{"id": 7, "roles": []any{"admin", "dev"}},
			"count": 2,
		}
		first := Stringify(value, 2)
		second := Stringify(value, 2)
		assert.Equal(t, first, second)
		assert.Equal(t, Stringify(value, 0), Stringify(value, 0))
	})
}

func TestStringifyCycles(t *testing.T) {
	t.Run("map contains itself", func(t *testing.T) {
		m := map[string]any{"a": 1}
		m["self"] = m

		assert.Equal(t, `{"a":1,"self":"[Circular]"}`, Stringify(m, 0))
	})

	t.Run("slice contains itself", func(t *testing.T) {
		s := make([]any, 2)
		s[0] = 1
		s[1] = s

		assert.Equal(t, `[1,"[Circular]"]`, Stringify(s, 0))
	})

	t.Run("transitive cycle", func(t *testing.T) {
		a := map[string]any{"name": "a"}
		b := map[string]any{"name": "b", "parent": a}
		a["child"] = b

		assert.Equal(t, `{"child":{"name":"b","parent":"[Circular]"},"name":"a"}`, Stringify(a, 0))
	})

	t.Run("pointer cycle through structs", func(t *testing.T) {
		root := &treeNode{Name: "root"}
		leaf := &treeNode{Name: "leaf", Parent: root}
		root.Children = []*treeNode{leaf}

		got := Stringify(root, 0)
		assert.Equal(t, `{"children":[{"name":"leaf","parent":"[Circular]"}],"name":"root"}`, got)
	})

	t.Run("marker at every closing point", func(t *testing.T) {
		m := map[string]any{}
		m["x"] = m
		m["y"] = m
		m["z"] = []any{m}

		assert.Equal(t, `{"x":"[Circular]","y":"[Circular]","z":["[Circular]"]}`, Stringify(m, 0))
	})

	t.Run("shared node is expanded once", func(t *testing.T) {
		shared := map[string]any{"v": 1}
		value := map[string]any{"left": shared, "right": shared}

		assert.Equal(t, `{"left":{"v":1},"right":"[Circular]"}`, Stringify(value, 0))
	})

	t.Run("visited set does not leak between calls", func(t *testing.T) {
		shared := map[string]any{"v": 1}
		assert.Equal(t, `{"v":1}`, Stringify(shared, 0))
		assert.Equal(t, `{"v":1}`, Stringify(shared, 0))
	})

	t.Run("empty composites are not markers", func(t *testing.T) {
		value := map[string]any{"a": []any{}, "b": []any{}, "c": map[string]any{}}
		assert.Equal(t, `{"a":[],"b":[],"c":{}}`, Stringify(value, 0))
	})

	t.Run("zero-size elements are not shared", func(t *testing.T) {
		value := map[string]any{"x": []struct{}{{}}, "y": []struct{}{{}}}
		assert.Equal(t, `{"x":[{}],"y":[{}]}`, Stringify(value, 0))

		pointers := []any{&struct{}{}, &struct{}{}}
		assert.Equal(t, `[{},{}]`, Stringify(pointers, 0))
	})

	t.Run("indented cycle", func(t *testing.T) {
		m := map[string]any{"id": 1}
		m["me"] = m

		assert.Equal(t, "{\n  \"id\": 1,\n  \"me\": \"[Circular]\"\n}", Stringify(m, 2))
	})
}

func TestAcyclic(t *testing.T) {
	m := map[string]any{"id": 1}
	m["self"] = m

	tree := Acyclic(m)
	out, ok := tree.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, int64(1), out["id"])
	assert.Equal(t, CircularMarker, out["self"])

	// The source graph is left untouched
	assert.Contains(t, m, "self")
	_, stillCyclic := m["self"].(map[string]any)
	assert.True(t, stillCyclic)
}
