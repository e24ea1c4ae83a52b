// Package picker presents loaded templates in an interactive filterable list.
package picker

import (
	"strings"

	"github.com/genry-dev/genry/internal/template"
)

// Filter returns the templates whose name or description contains query as a
// case-insensitive substring, preserving input order. An empty query returns
// the input unchanged. Deterministic: equal inputs always produce equal
// output, and a template containing the query is never omitted.
func Filter(query string, templates []template.Template) []template.Template {
	if query == "" {
		return templates
	}

	q := strings.ToLower(query)
	var out []template.Template
	for _, tpl := range templates {
		if strings.Contains(strings.ToLower(tpl.Name), q) ||
			strings.Contains(strings.ToLower(tpl.Description), q) {
			out = append(out, tpl)
		}
	}
	return out
}
