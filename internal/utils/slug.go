package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonWordRe = regexp.MustCompile(`[^\w\s-]`)
	sepRe     = regexp.MustCompile(`[\s_-]+`)
	// Decompose, drop combining marks, recompose: "café" -> "cafe".
	deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Slugify normalizes arbitrary text into a lowercase, hyphen-separated,
// URL-safe token.  Diacritics are folded to their base letters, any
// remaining non-word characters are dropped and runs of whitespace,
// underscores and hyphens collapse into a single hyphen.  The function
// is total: any input, including the empty string, yields a valid
// (possibly empty) slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if folded, _, err := transform.String(deaccent, s); err == nil {
		s = folded
	}
	s = nonWordRe.ReplaceAllString(s, "")
	s = sepRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
