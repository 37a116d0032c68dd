package normalize

import (
	"regexp"
	"strings"
)

// modelExpansions expands brand and sub-brand shorthand found in one source
// but not the other. Keys and values are lowercase.
var modelExpansions = map[string]string{
	// Land Rover
	"rr":   "range rover",
	"r.r.": "range rover",
	"rre":  "range rover evoque",
	"rrs":  "range rover sport",
	"rrv":  "range rover velar",
	// Alfa Romeo
	"ar": "alfa romeo",
	// Volkswagen
	"vw": "volkswagen",
}

var (
	generationSuffixRe = regexp.MustCompile(`\s+(i{1,3}|iv|v|vi|vii|viii)(\s+\d{4})?$`)
	yearSuffixRe       = regexp.MustCompile(`\s+\d{4}$`)
	dsSpacingRe        = regexp.MustCompile(`^ds\s+(\d)\b`)
)

// NormalizeModel lowercases a model name, strips trailing generation and year
// tokens, collapses the spaced DS sub-brand pattern ("ds 3" -> "ds3"), and
// expands known abbreviations. All other tokens pass through unchanged.
func NormalizeModel(raw string) string {
	model := strings.ToLower(strings.TrimSpace(raw))
	if model == "" {
		return ""
	}

	model = generationSuffixRe.ReplaceAllString(model, "")
	model = yearSuffixRe.ReplaceAllString(model, "")
	model = dsSpacingRe.ReplaceAllString(model, "ds$1")

	words := strings.Fields(model)
	for i, word := range words {
		if expanded, ok := modelExpansions[word]; ok {
			words[i] = expanded
		}
	}
	return strings.Join(words, " ")
}

// Spaceless removes all whitespace, for comparisons that must tolerate
// inconsistent internal spacing between data sources ("500 x" vs "500x").
func Spaceless(s string) string {
	return strings.Join(strings.Fields(s), "")
}
