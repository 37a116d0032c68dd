package normalize

import (
	"regexp"
	"strings"
	"unicode"
)

// Brand-keyed OEM code transforms. Each brand's manufacturer codes carry a
// deterministic prefix or suffix added by one data source only; cleaning
// strips it so codes from both sources can be compared.
var (
	renaultPrefixRe  = regexp.MustCompile(`^[A-Z]{2,3}\d(.+)$`)
	renaultPrefix2Re = regexp.MustCompile(`^[A-Z]{2}\d{2}(.+)$`)
	daciaPrefixRe    = regexp.MustCompile(`^[A-Z0-9]{2,3}\d?([A-Z].+)$`)
	vwSuffixRe       = regexp.MustCompile(`-[A-Z0-9]{3}$`)
	mercedesDLRe     = regexp.MustCompile(`^(.+DL\d)`)
	mercedesSuffixRe = regexp.MustCompile(`-[A-Z0-9]{2}$`)
	audiSuffixRe     = regexp.MustCompile(`^(.+)-[A-Z0-9]{1,3}$`)
	cupraSuffixRe    = regexp.MustCompile(`^(.+?)(P[0-9X][0-9A-Z]|PF[0-9]).*$`)
	mgSuffixRe       = regexp.MustCompile(`^(.+?)(BJAY|WSB|JAY|JAB|LMD|LJAY|SSA|YGM|RSJ)$`)
)

var skodaSuffixes = []string{"RAA", "WI1"}

var audiSuffixes = []string{"YEG", "YEA", "WK4"}

var miniSuffixes = []string{"7EL", "ZKQ", "ZEA", "ZEB", "ZBI", "ZBU", "ZBX"}

// CleanOEMCode applies the brand-specific OEM code transform for the given
// make. It returns the cleaned code, or "" when no transform applies to the
// brand or the code does not fit the brand's pattern.
func CleanOEMCode(oem, brand string) string {
	oem = strings.ToUpper(strings.TrimSpace(oem))
	if oem == "" {
		return ""
	}
	brand = strings.ToUpper(strings.TrimSpace(brand))

	switch brand {
	case "RENAULT":
		if m := renaultPrefixRe.FindStringSubmatch(oem); m != nil && len(m[1]) >= 5 {
			return m[1]
		}
		if m := renaultPrefix2Re.FindStringSubmatch(oem); m != nil && len(m[1]) >= 5 {
			return m[1]
		}
		if len(oem) > 6 {
			return oem[3:]
		}
	case "DACIA":
		if m := daciaPrefixRe.FindStringSubmatch(oem); m != nil && len(m[1]) >= 5 {
			return m[1]
		}
		if len(oem) > 8 {
			return oem[3:]
		}
	case "VOLKSWAGEN":
		if vwSuffixRe.MatchString(oem) {
			return oem[:len(oem)-4]
		}
	case "SKODA":
		for _, suffix := range skodaSuffixes {
			if strings.HasSuffix(oem, suffix) {
				return strings.TrimSuffix(oem, suffix)
			}
		}
	case "MERCEDES", "MERCEDES-BENZ":
		if m := mercedesDLRe.FindStringSubmatch(oem); m != nil {
			return m[1]
		}
		if mercedesSuffixRe.MatchString(oem) {
			return oem[:len(oem)-3]
		}
	case "AUDI":
		for _, suffix := range audiSuffixes {
			if strings.HasSuffix(oem, suffix) {
				return strings.TrimSuffix(oem, suffix)
			}
		}
		if m := audiSuffixRe.FindStringSubmatch(oem); m != nil {
			return m[1]
		}
	case "OPEL":
		if len(oem) >= 7 && isLetter(oem[len(oem)-1]) && !isLetter(oem[len(oem)-2]) {
			return oem[:len(oem)-1]
		}
		if len(oem) >= 7 {
			return oem[:len(oem)-2]
		}
	case "MINI":
		for _, suffix := range miniSuffixes {
			if strings.HasSuffix(oem, suffix) {
				return strings.TrimSuffix(oem, suffix)
			}
		}
	case "PEUGEOT", "CITROEN", "DS":
		if len(oem) >= 8 {
			return oem[:len(oem)-2]
		}
	case "KIA", "HYUNDAI":
		if len(oem) >= 8 {
			return oem[:len(oem)-3]
		}
	case "MAZDA":
		if len(oem) >= 5 {
			return oem[:len(oem)-1]
		}
	case "CUPRA":
		if m := cupraSuffixRe.FindStringSubmatch(oem); m != nil && len(m[1]) >= 5 {
			return m[1]
		}
	case "MG":
		if m := mgSuffixRe.FindStringSubmatch(oem); m != nil && len(m[1]) >= 8 {
			return m[1]
		}
	}
	return ""
}

func isLetter(b byte) bool {
	return unicode.IsLetter(rune(b))
}
