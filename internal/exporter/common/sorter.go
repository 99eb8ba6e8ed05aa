package common

import "apidocs/internal/docgen"

// OrderedSchemas returns every schema section of the content tree in render
// order: groups in first-seen order, schemas in their group order.
func OrderedSchemas(doc *docgen.Document) []docgen.SchemaSection {
	if doc == nil {
		return nil
	}

	var out []docgen.SchemaSection
	for _, group := range doc.Groups {
		out = append(out, group.Schemas...)
	}
	return out
}

// DisplayTitle returns the schema title, falling back to its route
func DisplayTitle(s docgen.SchemaSection) string {
	if s.Title != "" {
		return s.Title
	}
	return s.Route
}
