package normalize

import (
	"regexp"
	"sort"
)

// trimVocabulary is the fixed trim/equipment keyword list scanned out of
// free-text vehicle names. Matching is whole-word and case-insensitive; the
// result is a set, so scan order never matters.
var trimVocabulary = []string{
	// Performance / sporty
	"sport", "sportline", "s-line", "s line", "sline",
	"amg", "amg line", "m sport", "msport", "r-line", "r line", "rline",
	"gt line", "gtline", "gt-line", "n line", "nline",
	"gs line", "gsline", "gs-line",
	"fr", "cupra", "st", "rs", "vrs", "gti", "gtd", "gte", "gt", "gts",
	"r-design", "r-dynamic", "polestar", "veloce", "competition",
	"performance", "sprint", "racing", "s-design",
	// Luxury / premium
	"executive", "premium", "luxury", "exclusive", "ultimate",
	"inscription", "designo", "maybach", "lusso", "tributo",
	"prestige", "platinum", "vip", "deluxe", "luxe",
	// Equipment levels
	"business", "businessline", "style", "elegance", "ambition", "ambiente",
	"comfort", "life", "edition", "special", "limited", "advanced", "tech",
	"active", "plus", "pro", "base", "standard", "lounge", "pop", "cult",
	"icon", "iconic", "trend", "essential", "select", "selection", "core",
	"pure", "prime", "entry", "move", "access", "modern", "individual",
	"signature", "collection", "premiere", "bright", "fresh",
	// Renault / Dacia
	"dynamique", "seduction", "initiale", "intens", "intense", "zen",
	"expression", "laureate", "equilibre", "ambiance", "energy",
	"esprit", "hypnotic", "classique", "authentique", "invite",
	"techroad", "stepway", "wave", "evolve",
	// Peugeot / Citroen / DS
	"shine", "allure", "feline", "feel", "live", "uptown",
	"sense", "chic", "hype", "mylife", "allstreet", "crossway",
	"bastille", "rivoli", "opera", "etoile", "sesame", "trocadero",
	"extravagance", "irresistible", "attitude",
	// Fiat / Alfa Romeo / Maserati / Abarth
	"easy", "distinctive", "eletta", "progression", "dolcevita",
	"mirror", "ecochic", "elective", "eccelsa", "duel", "goldplay",
	"passion", "glam", "trekking", "competizione", "quadrifoglio",
	"trofeo", "modena",
	// VW group / Seat / Skoda
	"comfortline", "highline", "trendline", "xcellence", "xperience",
	"admired", "monte carlo", "scout", "scoutline", "connectline",
	"emotion",
	// BMW
	"xline", "x-line", "advantage", "sport line", "luxury line",
	// Mercedes
	"avantgarde", "progressive", "black edition", "dark",
	"night edition", "atmosphere",
	// Volvo
	"kinetic", "summum", "design",
	// Opel
	"cosmo", "attraction", "enjoy", "youngster",
	// Ford
	"titanium", "vignale", "zetec", "ghia", "wildtrak",
	"connected", "st-line",
	// Nissan
	"acenta", "tekna", "visia", "n-connecta", "n-design", "n-joy",
	// Honda / Mazda
	"instyle", "homura", "takumi",
	// Hyundai / Kia / Genesis
	"essentia", "calligraphy", "exceed",
	// Suzuki
	"attiva", "excite",
	// Jaguar / Land Rover
	"hse", "se", "dynamic", "momentum", "autobiography",
	"portfolio", "vogue",
	// Jeep
	"longitude", "altitude", "overland", "trailhawk", "rebel",
	"summit", "sahara", "rubicon",
	// MG / other
	"trophy", "futura", "classic", "favoured",
	"blackline", "startline", "ocean", "outdoor", "trail",
	// Special editions
	"anniversary", "innovation", "advance", "connect",
	"first edition", "launch", "techno",
	"evolution", "ultra", "extreme",
	"authentic", "lifestyle", "pulse",
	"junior", "club",
	// Variants / drivetrain
	"urban", "city", "cross", "adventure", "offroad", "allroad", "quattro",
	"4matic", "xdrive", "4x4", "4wd", "traction",
}

type trimPattern struct {
	token string
	re    *regexp.Regexp
}

var trimPatterns = buildTrimPatterns()

func buildTrimPatterns() []trimPattern {
	patterns := make([]trimPattern, 0, len(trimVocabulary))
	for _, token := range trimVocabulary {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(token) + `\b`)
		patterns = append(patterns, trimPattern{token: token, re: re})
	}
	return patterns
}

// TokenSet is an unordered set of matched vocabulary entries.
type TokenSet map[string]struct{}

// ExtractTrimTokens returns the set of trim vocabulary entries appearing as
// whole words in the name, case-insensitive.
func ExtractTrimTokens(name string) TokenSet {
	found := TokenSet{}
	if name == "" {
		return found
	}
	lower := FoldAccents(name)
	for _, p := range trimPatterns {
		if p.re.MatchString(lower) {
			found[p.token] = struct{}{}
		}
	}
	return found
}

// Contains reports set membership.
func (s TokenSet) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// Intersect returns the tokens present in both sets.
func (s TokenSet) Intersect(other TokenSet) TokenSet {
	out := TokenSet{}
	for token := range s {
		if other.Contains(token) {
			out[token] = struct{}{}
		}
	}
	return out
}

// Diff returns the tokens present in s but not in other.
func (s TokenSet) Diff(other TokenSet) TokenSet {
	out := TokenSet{}
	for token := range s {
		if !other.Contains(token) {
			out[token] = struct{}{}
		}
	}
	return out
}

// Sorted returns the set's tokens in lexical order. Always non-nil, so it
// marshals to a JSON array rather than null.
func (s TokenSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for token := range s {
		out = append(out, token)
	}
	sort.Strings(out)
	return out
}
