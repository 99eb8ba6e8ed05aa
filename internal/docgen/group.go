package docgen

import (
	"strings"

	"apidocs/internal/model"
)

// DefaultGroup collects schemas that declare no group
const DefaultGroup = "global"

// SchemaRef is the derived view of one input schema: its identity and
// effective group, next to the untouched source schema.
type SchemaRef struct {
	Identity

	// Effective group; filled by GroupSchemas
	Group string

	Schema *model.Schema
}

// Group is one named bucket of schemas in first-seen order
type Group struct {
	Name    string
	Schemas []SchemaRef
}

// GroupName returns the effective group of a declared group value
func GroupName(declared string) string {
	if strings.TrimSpace(declared) == "" {
		return DefaultGroup
	}
	return declared
}

// GroupSchemas partitions refs into groups. Groups appear in first-seen order
// and every group keeps the relative order of its schemas (stable partition).
// Each returned ref carries its effective group in Group; the input slice is
// not modified.
func GroupSchemas(refs []SchemaRef) []Group {
	groups := make([]Group, 0)
	index := make(map[string]int)

	for _, ref := range refs {
		declared := ref.Group
		if declared == "" && ref.Schema != nil {
			declared = ref.Schema.Group
		}
		ref.Group = GroupName(declared)

		pos, ok := index[ref.Group]
		if !ok {
			pos = len(groups)
			index[ref.Group] = pos
			groups = append(groups, Group{Name: ref.Group})
		}
		groups[pos].Schemas = append(groups[pos].Schemas, ref)
	}

	return groups
}
