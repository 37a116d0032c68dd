package match

import (
	"strings"

	"carmatch/internal/normalize"
	"carmatch/internal/vehicle"
)

// CatalogLookup is the slice of the catalog index the selector needs.
type CatalogLookup interface {
	// ByMake returns the published records whose normalized make equals the
	// given make (canonical uppercase form).
	ByMake(make string) []*vehicle.Spec
}

// ModelsCompatible performs the six-way symmetric containment check between
// two model names. Normalization, raw spelling, and inconsistent internal
// spacing each cause false negatives in a plain substring test on their own,
// so any one of the six directions succeeding is sufficient.
func ModelsCompatible(sourceNorm, targetNorm, sourceRaw, targetRaw string) bool {
	srcRaw := strings.ToLower(strings.TrimSpace(sourceRaw))
	tgtRaw := strings.ToLower(strings.TrimSpace(targetRaw))
	srcSpaceless := normalize.Spaceless(sourceNorm)
	tgtSpaceless := normalize.Spaceless(targetNorm)

	return strings.Contains(targetNorm, sourceNorm) ||
		strings.Contains(sourceNorm, targetNorm) ||
		strings.Contains(tgtRaw, srcRaw) ||
		strings.Contains(srcRaw, tgtRaw) ||
		strings.Contains(tgtSpaceless, srcSpaceless) ||
		strings.Contains(srcSpaceless, tgtSpaceless)
}

// SelectCandidates returns every catalog record passing the three filters:
// normalized make equality, derived vehicle-class equality, and model
// containment. OEM codes play no part here: candidate membership must never
// depend on OEM equality, so that scoring alone decides the winner among
// same-make/model variants.
func SelectCandidates(source *vehicle.Spec, catalog CatalogLookup) []*vehicle.Spec {
	if source.MakeNorm == "" || source.ModelNorm == "" {
		return nil
	}

	var candidates []*vehicle.Spec
	for _, rec := range catalog.ByMake(source.MakeNorm) {
		if rec.Class != source.Class {
			continue
		}
		if rec.ModelNorm == "" {
			continue
		}
		if ModelsCompatible(source.ModelNorm, rec.ModelNorm, source.Model, rec.Model) {
			candidates = append(candidates, rec)
		}
	}
	return candidates
}
