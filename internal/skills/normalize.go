// Package skills provides skill token utilities for résumé text.
package skills

import (
	"regexp"
	"strings"
)

// delimiters matches runs of the separators users type between skills:
// commas, semicolons, and newlines.
var delimiters = regexp.MustCompile(`[,;\n]+`)

// Normalize splits delimiter-separated free text into a deduplicated set of
// trimmed, lowercased tokens. Empty input yields an empty, non-nil set.
//
// Intended for matching résumé skills against a job description; no caller
// wires it into the render or analysis pipelines yet.
func Normalize(text string) map[string]struct{} {
	tokens := make(map[string]struct{})
	if text == "" {
		return tokens
	}

	for _, part := range delimiters.Split(strings.ToLower(text), -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tokens[part] = struct{}{}
	}
	return tokens
}
