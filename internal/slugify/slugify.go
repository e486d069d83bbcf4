// Package slugify derives URL-friendly article slugs from titles.
package slugify

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// removed is the punctuation dropped outright before separators are computed.
	removed = regexp.MustCompile(`[*+~.()'"!:@]`)

	separators = regexp.MustCompile(`[^a-z0-9]+`)

	ligatures = strings.NewReplacer("œ", "oe", "æ", "ae", "ß", "ss")
)

// Make lowercases title, strips punctuation, folds accents and joins the
// remaining words with hyphens: "Hello, World! (Draft)" becomes "hello-world-draft".
func Make(title string) string {
	s := strings.ToLower(title)
	s = removed.ReplaceAllString(s, "")
	s = ligatures.Replace(s)
	s = foldAccents(s)
	s = separators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
