package server

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far a mistyped path may be from a route
const maxSuggestDistance = 3

// Closest returns the static route nearest to path by edit distance, or ""
// when nothing is within reach. Ties go to the lexically first route.
// A route only qualifies when fewer edits reach it than the path has
// characters, so short unknown paths are not all pointed at "/".
func (r *Router) Closest(path string) string {
	requested := path
	typed := strings.Trim(strings.ToLower(path), "/")
	path = "/" + typed

	best := ""
	bestDist := min(maxSuggestDistance+1, len(typed))
	for _, entry := range r.ExportTable() {
		if !entry.Static() || entry.Path == requested {
			continue
		}
		d := levenshtein.ComputeDistance(path, entry.Path)
		if d < bestDist {
			best, bestDist = entry.Path, d
		}
	}
	return best
}
