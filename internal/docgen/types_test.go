package docgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apidocs/internal/model"
)

func sampleTypes() model.TypeMap {
	return model.NewTypeMap(
		&model.Type{Name: "string", Description: "any string", IsDefault: true},
		&model.Type{Name: "Phone", Description: "mobile number", Checker: "v => /^1\\d{10}$/.test(v)"},
		&model.Type{Name: "number", Description: "any number", IsDefault: true},
		&model.Type{Name: "Email", Description: "email address", Formatter: "v => v.trim()"},
	)
}

func TestTypeResolverResolve(t *testing.T) {
	r := NewTypeResolver(sampleTypes())

	info, err := r.Resolve("Phone")
	require.NoError(t, err)
	assert.Equal(t, "Phone", info.Name)
	assert.Equal(t, "mobile number", info.DisplayDescription())
	assert.Equal(t, "v => /^1\\d{10}$/.test(v)", info.Checker)

	info, err = r.Resolve("string")
	require.NoError(t, err)
	assert.True(t, info.IsDefault)
	assert.Empty(t, info.DisplayDescription())

	assert.Equal(t, 4, r.Len())
}

func TestTypeResolverUnknownType(t *testing.T) {
	r := NewTypeResolver(sampleTypes())

	_, err := r.Resolve("Money")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownType)
	assert.Contains(t, err.Error(), `"Money"`)
}

func TestTypeResolverIndex(t *testing.T) {
	r := NewTypeResolver(sampleTypes())

	index := r.Index()
	require.Len(t, index, 2)
	assert.Equal(t, "Phone", index[0].Name)
	assert.Equal(t, "Email", index[1].Name)

	for _, info := range index {
		assert.False(t, info.IsDefault)
	}
}

func TestTypeResolverEmpty(t *testing.T) {
	r := NewTypeResolver(model.TypeMap{})

	assert.Empty(t, r.Index())
	assert.Zero(t, r.Len())

	_, err := r.Resolve("string")
	assert.ErrorIs(t, err, ErrUnknownType)
}
