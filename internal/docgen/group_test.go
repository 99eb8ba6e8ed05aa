package docgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apidocs/internal/model"
)

func refFor(t *testing.T, method, path, group string) SchemaRef {
	t.Helper()
	identity, err := DeriveIdentity(method, path)
	require.NoError(t, err)
	return SchemaRef{
		Identity: identity,
		Schema:   &model.Schema{Method: method, Path: path, Group: group},
	}
}

func TestGroupName(t *testing.T) {
	assert.Equal(t, DefaultGroup, GroupName(""))
	assert.Equal(t, DefaultGroup, GroupName("   "))
	assert.Equal(t, "user", GroupName("user"))
}

func TestGroupSchemasStablePartition(t *testing.T) {
	refs := []SchemaRef{
		refFor(t, "get", "/user", "user"),
		refFor(t, "get", "/ping", ""),
		refFor(t, "post", "/user", "user"),
		refFor(t, "get", "/order", "order"),
		refFor(t, "get", "/health", ""),
	}

	groups := GroupSchemas(refs)
	require.Len(t, groups, 3)

	assert.Equal(t, "user", groups[0].Name)
	assert.Equal(t, DefaultGroup, groups[1].Name)
	assert.Equal(t, "order", groups[2].Name)

	ids := func(g Group) []string {
		var out []string
		for _, r := range g.Schemas {
			out = append(out, r.ID)
		}
		return out
	}
	assert.Equal(t, []string{"[GET]/user", "[POST]/user"}, ids(groups[0]))
	assert.Equal(t, []string{"[GET]/ping", "[GET]/health"}, ids(groups[1]))
	assert.Equal(t, []string{"[GET]/order"}, ids(groups[2]))

	for _, g := range groups {
		for _, r := range g.Schemas {
			assert.Equal(t, g.Name, r.Group)
		}
	}
}

func TestGroupSchemasDoesNotMutateInput(t *testing.T) {
	refs := []SchemaRef{refFor(t, "get", "/ping", "")}

	groups := GroupSchemas(refs)
	require.Len(t, groups, 1)

	assert.Empty(t, refs[0].Group)
	assert.Empty(t, refs[0].Schema.Group)
	assert.Equal(t, DefaultGroup, groups[0].Schemas[0].Group)
}

func TestGroupSchemasEmpty(t *testing.T) {
	assert.Empty(t, GroupSchemas(nil))
}
