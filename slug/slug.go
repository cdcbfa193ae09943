package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Latin letters that have no decomposition into a base letter plus marks.
var transliterator = strings.NewReplacer(
	"ı", "i",
	"ß", "ss",
	"æ", "ae",
	"œ", "oe",
	"ø", "o",
	"ł", "l",
	"đ", "d",
	"ð", "d",
	"þ", "th",
)

// Generate creates a URL-friendly slug from a display name.
// Accented letters are folded to their base letter, everything else that is not
// an ASCII letter or digit collapses into a single hyphen. Names written only in
// non-Latin scripts yield "", callers pick their own fallback.
//
// Examples:
//   - "Red Shirt" -> "red-shirt"
//   - "Crème Brûlée!" -> "creme-brulee"
//   - "Kadın Straße" -> "kadin-strasse"
//   - "  Hello   World  " -> "hello-world"
func Generate(name string) string {
	folded, _, err := transform.String(foldAccents(), name)
	if err != nil {
		folded = name
	}

	s := transliterator.Replace(strings.ToLower(folded))
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// foldAccents is built per call: transform.Chain keeps internal state and is not
// safe for concurrent use.
func foldAccents() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}
