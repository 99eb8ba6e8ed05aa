package docgen

import "strings"

// RequiredLine is one renderable line of the required-parameters block
type RequiredLine struct {
	// Parameter names covered by the line
	Names []string

	// Display text
	Label string

	// True for an "exactly one of" set
	OneOf bool
}

// FlattenRequired merges plain required names and one-of sets into a single
// display list: plain names first, then one-of sets, both in input order.
// It returns nil when there is nothing to render so callers can drop the block.
func FlattenRequired(required []string, oneOf [][]string, labels Labels) []RequiredLine {
	if len(required) == 0 && len(oneOf) == 0 {
		return nil
	}

	var lines []RequiredLine
	for _, name := range required {
		lines = append(lines, RequiredLine{
			Names: []string{name},
			Label: name,
		})
	}

	for _, set := range oneOf {
		if len(set) == 0 {
			continue
		}
		names := append([]string(nil), set...)
		lines = append(lines, RequiredLine{
			Names: names,
			Label: labels.OneOfLabel(strings.Join(names, labels.Separator())),
			OneOf: true,
		})
	}

	return lines
}
