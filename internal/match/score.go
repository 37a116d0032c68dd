package match

import (
	"math"
	"regexp"
	"strings"

	"carmatch/internal/normalize"
	"carmatch/internal/vehicle"
)

// OEMMatchType records how a candidate's OEM code related to the source's.
type OEMMatchType string

const (
	OEMMatchExact   OEMMatchType = "EXACT"
	OEMMatchCleaned OEMMatchType = "CLEANED"
	OEMMatchNone    OEMMatchType = "NONE"
)

// Breakdown is the per-factor point award for one candidate, plus the
// match-type metadata the UI surfaces. Invariants: every factor award is
// within [0, weight] and the awards sum to the candidate's total score.
type Breakdown struct {
	Points         map[Factor]int
	OEMMatch       OEMMatchType
	TrimMatched    normalize.TokenSet
	TrimSourceOnly normalize.TokenSet
	TrimTargetOnly normalize.TokenSet
}

// Total sums the per-factor awards.
func (b Breakdown) Total() int {
	total := 0
	for _, pts := range b.Points {
		total += pts
	}
	return total
}

// ScoreCandidate computes the full breakdown and total for one candidate
// under the given profile. Both specs must already be normalized. Factors
// are independent; a missing value on either side awards 0 for that factor.
func ScoreCandidate(source, target *vehicle.Spec, profile Profile) (int, Breakdown) {
	b := Breakdown{Points: make(map[Factor]int, len(Factors))}

	b.Points[FactorPrice] = scorePctDiff(source.Price, target.Price, profile.Weight(FactorPrice), pctTiers{10: 1, 20: 0.6, 35: 0.3})
	b.Points[FactorHP] = scoreAbsDiff(source.HP, target.HP, profile.Weight(FactorHP), absTiers{0: 1, 5: 0.8, 10: 0.5})
	b.Points[FactorCC] = scoreAbsDiff(source.CC, target.CC, profile.Weight(FactorCC), absTiers{0: 1, 50: 0.8, 100: 0.5})
	b.Points[FactorKW] = scoreAbsDiff(source.KW, target.KW, profile.Weight(FactorKW), absTiers{0: 1, 5: 0.8, 10: 0.5})
	b.Points[FactorMass] = scorePctDiff(source.Mass, target.Mass, profile.Weight(FactorMass), pctTiers{5: 1, 10: 0.6})
	b.Points[FactorFuel] = scoreFuel(source.FuelNorm, target.FuelNorm, profile.Weight(FactorFuel))
	b.Points[FactorBody] = scoreExact(string(source.BodyNorm), string(target.BodyNorm), string(normalize.BodyUnknown), profile.Weight(FactorBody))
	b.Points[FactorTransmission] = scoreTransmission(source, target, profile.Weight(FactorTransmission))
	b.Points[FactorTraction] = scoreExact(string(source.TractionNorm), string(target.TractionNorm), string(normalize.TractionUnknown), profile.Weight(FactorTraction))
	b.Points[FactorDoors] = scoreOffByOne(source.Doors, target.Doors, profile.Weight(FactorDoors))
	b.Points[FactorSeats] = scoreOffByOne(source.Seats, target.Seats, profile.Weight(FactorSeats))
	b.Points[FactorGears] = scoreOffByOne(source.Gears, target.Gears, profile.Weight(FactorGears))
	b.Points[FactorModel] = scoreModel(source.ModelNorm, target.ModelNorm, profile.Weight(FactorModel))
	b.Points[FactorName] = scoreNameSimilarity(source.Name, target.Name, profile.Weight(FactorName))
	b.Points[FactorSellable] = scoreSellable(source, target, profile.Weight(FactorSellable))

	trimScore, matched, sourceOnly, targetOnly := scoreTrim(source.TrimTokens, target.TrimTokens, profile.Weight(FactorTrim))
	b.Points[FactorTrim] = trimScore
	b.TrimMatched = matched
	b.TrimSourceOnly = sourceOnly
	b.TrimTargetOnly = targetOnly

	oemScore, oemMatch := scoreOEM(source, target, profile.Weight(FactorOEM))
	b.Points[FactorOEM] = oemScore
	b.OEMMatch = oemMatch

	return b.Total(), b
}

// scaled truncates weight×fraction, matching integer-point profiles of any
// total.
func scaled(weight int, fraction float64) int {
	return int(float64(weight) * fraction)
}

// pctTiers maps a percentage-difference ceiling to the awarded fraction.
type pctTiers map[float64]float64

func scorePctDiff(source, target float64, weight int, tiers pctTiers) int {
	if source <= 0 || target <= 0 {
		return 0
	}
	diffPct := math.Abs(source-target) / math.Max(source, target) * 100

	bestFraction := 0.0
	for ceiling, fraction := range tiers {
		if diffPct <= ceiling && fraction > bestFraction {
			bestFraction = fraction
		}
	}
	return scaled(weight, bestFraction)
}

// absTiers maps an absolute-difference ceiling to the awarded fraction.
type absTiers map[int]float64

func scoreAbsDiff(source, target, weight int, tiers absTiers) int {
	if source == 0 || target == 0 {
		return 0
	}
	diff := source - target
	if diff < 0 {
		diff = -diff
	}
	bestFraction := 0.0
	for ceiling, fraction := range tiers {
		if diff <= ceiling && fraction > bestFraction {
			bestFraction = fraction
		}
	}
	return scaled(weight, bestFraction)
}

func scoreOffByOne(source, target, weight int) int {
	if source == 0 || target == 0 {
		return 0
	}
	diff := source - target
	if diff < 0 {
		diff = -diff
	}
	switch diff {
	case 0:
		return weight
	case 1:
		return scaled(weight, 0.6)
	}
	return 0
}

func scoreExact(source, target, unknown string, weight int) int {
	if source == unknown || target == unknown {
		return 0
	}
	if source == target {
		return weight
	}
	return 0
}

func scoreFuel(source, target normalize.Fuel, weight int) int {
	if source == normalize.FuelUnknown || target == normalize.FuelUnknown {
		return 0
	}
	if source == target {
		return weight
	}
	// Hybrid variants differing only in base fuel still carry most of the
	// signal.
	if source.IsHybrid() && target.IsHybrid() {
		return scaled(weight, 0.7)
	}
	return 0
}

func scoreTransmission(source, target *vehicle.Spec, weight int) int {
	if source.GearTypeNorm == normalize.TransmissionUnknown || target.GearTypeNorm == normalize.TransmissionUnknown {
		return 0
	}
	if source.GearTypeNorm == target.GearTypeNorm {
		return weight
	}
	// EV transmissions are encoded inconsistently across providers.
	if source.FuelNorm == normalize.FuelElectric {
		return scaled(weight, 0.5)
	}
	return 0
}

// scoreModel awards points for exact normalized equality or spaceless
// equality only. Containment is deliberately insufficient here: the
// candidate selector is permissive so variants surface, the model factor is
// strict so exact matches outrank them.
func scoreModel(source, target string, weight int) int {
	if source == "" || target == "" {
		return 0
	}
	if source == target {
		return weight
	}
	if normalize.Spaceless(source) == normalize.Spaceless(target) {
		return weight
	}
	return 0
}

const openEndedYear = 9999

func scoreSellable(source, target *vehicle.Spec, weight int) int {
	if source.SellableBegin == 0 || target.SellableBegin == 0 {
		return 0
	}
	sourceEnd := source.SellableEnd
	if sourceEnd == 0 {
		sourceEnd = openEndedYear
	}
	targetEnd := target.SellableEnd
	if targetEnd == 0 {
		targetEnd = openEndedYear
	}

	if source.SellableBegin > targetEnd || target.SellableBegin > sourceEnd {
		return 0
	}
	if source.SellableBegin == target.SellableBegin && sourceEnd == targetEnd {
		return weight
	}
	return scaled(weight, 0.5)
}

func scoreTrim(source, target normalize.TokenSet, weight int) (int, normalize.TokenSet, normalize.TokenSet, normalize.TokenSet) {
	matched := source.Intersect(target)
	sourceOnly := source.Diff(target)
	targetOnly := target.Diff(source)

	if len(source) == 0 || len(target) == 0 {
		return 0, matched, sourceOnly, targetOnly
	}
	if len(matched) == 0 {
		return 0, matched, sourceOnly, targetOnly
	}
	ratio := float64(len(matched)) / math.Max(float64(len(source)), float64(len(target)))
	return scaled(weight, ratio), matched, sourceOnly, targetOnly
}

var nameTokenRe = regexp.MustCompile(`[0-9a-z_]+`)

// Tokens carrying no identity signal in free-text vehicle names.
var nameNoiseWords = map[string]struct{}{
	"cv": {}, "hp": {}, "kw": {}, "auto": {}, "aut": {}, "man": {},
	"the": {}, "and": {}, "di": {}, "da": {},
}

// nameTokens folds accents before tokenizing so "Coupé" survives as one
// token instead of splitting at the accented rune.
func nameTokens(name string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, token := range nameTokenRe.FindAllString(normalize.FoldAccents(name), -1) {
		if _, noise := nameNoiseWords[token]; noise {
			continue
		}
		tokens[token] = struct{}{}
	}
	return tokens
}

func scoreNameSimilarity(sourceName, targetName string, weight int) int {
	if sourceName == "" || targetName == "" {
		return 0
	}
	source := nameTokens(sourceName)
	target := nameTokens(targetName)
	if len(source) == 0 || len(target) == 0 {
		return 0
	}
	common := 0
	for token := range source {
		if _, ok := target[token]; ok {
			common++
		}
	}
	similarity := float64(common) / math.Max(float64(len(source)), float64(len(target)))
	return scaled(weight, similarity)
}

// scoreOEM compares codes exactly first, then after brand-specific cleaning
// at half weight. Both codes must be present.
func scoreOEM(source, target *vehicle.Spec, weight int) (int, OEMMatchType) {
	sourceCode := source.OEMCodeUpper()
	targetCode := target.OEMCodeUpper()
	if sourceCode == "" || targetCode == "" {
		return 0, OEMMatchNone
	}
	if sourceCode == targetCode {
		return weight, OEMMatchExact
	}
	if source.OEMCodeClean != "" && target.OEMCodeClean != "" &&
		strings.EqualFold(source.OEMCodeClean, target.OEMCodeClean) {
		return scaled(weight, 0.5), OEMMatchCleaned
	}
	return 0, OEMMatchNone
}
