package normalize

import "strings"

// Traction is a canonical drivetrain category.
type Traction string

const (
	TractionFWD     Traction = "FWD"
	TractionRWD     Traction = "RWD"
	TractionAWD     Traction = "AWD"
	TractionUnknown Traction = "UNKNOWN"
)

// NormalizeTraction maps a raw drivetrain string to a canonical Traction.
func NormalizeTraction(raw string) Traction {
	if strings.TrimSpace(raw) == "" {
		return TractionUnknown
	}
	traction := strings.TrimSpace(FoldAccents(raw))

	switch {
	case containsAny(traction, "anteriore", "front", "fwd"):
		return TractionFWD
	case containsAny(traction, "posteriore", "rear", "rwd"):
		return TractionRWD
	case containsAny(traction, "integrale", "all-wheel", "awd", "4x4", "4wd"):
		return TractionAWD
	}
	return TractionUnknown
}
