// Package htmlsanitize cleans the rich-text HTML produced by the article editor.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var richPolicy = newRichPolicy()

func newRichPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("u", "s", "mark", "figure", "figcaption")
	p.AllowAttrs("class").OnElements("p", "span", "figure", "table", "tr", "td", "th")
	p.AllowAttrs("colspan", "rowspan").OnElements("td", "th")
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// Sanitize removes scripts, event handlers and unsafe URLs while keeping editorial markup.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(richPolicy.Sanitize(s))
}
