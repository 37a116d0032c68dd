package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldAccents lowercases the input and strips combining accent marks so
// that Italian raw strings ("coupé", "città") compare against plain-ASCII
// rule keywords and tokenizers.
func FoldAccents(s string) string {
	folded, _, err := transform.String(accentStripper, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}
