package normalize

import "strings"

// Fuel is a canonical fuel category.
type Fuel string

const (
	FuelDiesel       Fuel = "DIESEL"
	FuelPetrol       Fuel = "PETROL"
	FuelHybridPetrol Fuel = "HYBRID_PETROL"
	FuelHybridDiesel Fuel = "HYBRID_DIESEL"
	FuelElectric     Fuel = "ELECTRIC"
	FuelLPG          Fuel = "LPG"
	FuelCNG          Fuel = "CNG"
	FuelUnknown      Fuel = "UNKNOWN"
)

// IsHybrid reports whether the fuel is one of the hybrid variants.
func (f Fuel) IsHybrid() bool {
	return f == FuelHybridPetrol || f == FuelHybridDiesel
}

func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// NormalizeFuel maps a raw fuel string to a canonical Fuel. Evaluation order
// matters: pure-electric markers are checked before hybrid combinations so
// that "elettrico/benzina" style strings are not misread as pure electric,
// and hybrid markers are checked before base fuels.
func NormalizeFuel(raw string) Fuel {
	if strings.TrimSpace(raw) == "" {
		return FuelUnknown
	}
	fuel := strings.TrimSpace(FoldAccents(raw))

	switch fuel {
	case "elettrica", "elettrico", "electric":
		return FuelElectric
	}

	// Hybrid markers, including plug-in variants, win over base fuels.
	if containsAny(fuel, "ibrido", "ibrida", "hybrid") {
		if containsAny(fuel, "diesel", "gasolio") {
			return FuelHybridDiesel
		}
		return FuelHybridPetrol
	}

	// Electric combined with a combustion fuel is a hybrid, alone electric.
	if strings.Contains(fuel, "elettric") {
		if containsAny(fuel, "benzina", "petrol") {
			return FuelHybridPetrol
		}
		if containsAny(fuel, "gasolio", "diesel") {
			return FuelHybridDiesel
		}
		return FuelElectric
	}

	switch {
	case containsAny(fuel, "diesel", "gasolio"):
		return FuelDiesel
	case containsAny(fuel, "benzina", "petrol", "gasoline"):
		return FuelPetrol
	case containsAny(fuel, "metano", "cng"):
		return FuelCNG
	case containsAny(fuel, "gpl", "lpg"):
		return FuelLPG
	}

	return FuelUnknown
}
