// Package components holds the UI primitives pages are composed from:
// buttons, badges, cards and inline icons. Every component is a pure
// function from props to a vdom tree.
package components

import "strings"

// Cn joins class fragments, skipping empty ones and collapsing whitespace
func Cn(classes ...string) string {
	parts := make([]string, 0, len(classes))
	for _, class := range classes {
		parts = append(parts, strings.Fields(class)...)
	}
	return strings.Join(parts, " ")
}
