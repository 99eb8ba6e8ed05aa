package common

import "apidocs/internal/docgen"

// NavRow is one navigation entry with its indentation level for display
type NavRow struct {
	Title  string
	Route  string
	Anchor string
	Indent int
}

// FlattenNav turns the navigation tree into display rows: the types entry,
// then every group header (indent 0) followed by its items (indent 1).
func FlattenNav(nav docgen.Nav) []NavRow {
	rows := []NavRow{{
		Title:  nav.Types.Title,
		Anchor: nav.Types.Anchor,
	}}

	for _, group := range nav.Groups {
		rows = append(rows, NavRow{Title: group.Name})
		for _, item := range group.Items {
			rows = append(rows, NavRow{
				Title:  item.Title,
				Route:  item.Route,
				Anchor: item.Anchor,
				Indent: 1,
			})
		}
	}

	return rows
}
