package api

import (
	"carmatch/internal/match"
	"carmatch/internal/vehicle"
	"carmatch/internal/xcatalog"
)

// FromSpec converts a normalized vehicle record into its transport view.
func FromSpec(spec *vehicle.Spec) VehicleView {
	if spec == nil {
		return VehicleView{}
	}
	return VehicleView{
		Natcode:       spec.Natcode,
		Name:          spec.Name,
		Make:          spec.Make,
		Model:         spec.Model,
		OEMCode:       spec.OEMCode,
		Price:         spec.Price,
		HP:            spec.HP,
		KW:            spec.KW,
		CC:            spec.CC,
		Fuel:          spec.Fuel,
		Body:          spec.Body,
		GearType:      spec.GearType,
		Traction:      spec.Traction,
		Doors:         spec.Doors,
		Seats:         spec.Seats,
		Gears:         spec.Gears,
		Mass:          spec.Mass,
		SellableBegin: spec.SellableBegin,
		SellableEnd:   spec.SellableEnd,
		MakeNorm:      spec.MakeNorm,
		ModelNorm:     spec.ModelNorm,
		FuelNorm:      string(spec.FuelNorm),
		BodyNorm:      string(spec.BodyNorm),
		GearTypeNorm:  string(spec.GearTypeNorm),
		TractionNorm:  string(spec.TractionNorm),
		VehicleClass:  string(spec.Class),
	}
}

// FromCandidate converts one ranked candidate, flattening the factor
// breakdown into a string-keyed map for JSON consumers. Match-type metadata
// rides inside the breakdown under underscore-prefixed keys so factor keys
// stay all-integer.
func FromCandidate(c match.Candidate) CandidateView {
	breakdown := make(map[string]any, len(c.Breakdown.Points)+4)
	for factor, points := range c.Breakdown.Points {
		breakdown[string(factor)] = points
	}
	breakdown["_oem_match_type"] = string(c.Breakdown.OEMMatch)
	breakdown["_trim_matched"] = c.Breakdown.TrimMatched.Sorted()
	breakdown["_trim_source_only"] = c.Breakdown.TrimSourceOnly.Sorted()
	breakdown["_trim_target_only"] = c.Breakdown.TrimTargetOnly.Sorted()
	view := CandidateView{
		Score:        c.Score,
		Breakdown:    breakdown,
		OEMMatchType: string(c.Breakdown.OEMMatch),
		Specs:        FromSpec(c.Spec),
	}
	if c.Spec != nil {
		view.Natcode = c.Spec.Natcode
		view.EurotaxCode = c.Spec.OEMCode
		view.Name = c.Spec.Name
	}
	if len(c.Breakdown.TrimMatched) > 0 {
		view.TrimMatched = c.Breakdown.TrimMatched.Sorted()
	}
	if len(c.Breakdown.TrimSourceOnly) > 0 {
		view.TrimSourceOnly = c.Breakdown.TrimSourceOnly.Sorted()
	}
	if len(c.Breakdown.TrimTargetOnly) > 0 {
		view.TrimTargetOnly = c.Breakdown.TrimTargetOnly.Sorted()
	}
	return view
}

// FromCandidates converts a ranked candidate slice in order.
func FromCandidates(candidates []match.Candidate) []CandidateView {
	if len(candidates) == 0 {
		return nil
	}
	out := make([]CandidateView, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, FromCandidate(c))
	}
	return out
}

// FromMapping converts an upstream mapping document.
func FromMapping(m *xcatalog.Mapping) *MappingView {
	if m == nil {
		return nil
	}
	return &MappingView{
		ID:       m.ID,
		DestCode: m.DestCode,
		Provider: m.DestProvider,
		Score:    m.Score,
		Strategy: m.Strategy,
	}
}

// ProfileViews renders every registered profile in registry order.
func ProfileViews(registry *match.Registry) ProfilesResponse {
	resp := ProfilesResponse{Default: match.DefaultProfileName}
	if registry == nil {
		return resp
	}
	for _, name := range registry.Names() {
		profile, err := registry.Lookup(name)
		if err != nil {
			continue
		}
		weights := make(map[string]int, len(match.Factors))
		for factor, weight := range profile.Weights() {
			weights[string(factor)] = weight
		}
		resp.Profiles = append(resp.Profiles, ProfileView{
			Name:     profile.Name(),
			MaxScore: profile.MaxScore(),
			Weights:  weights,
		})
	}
	return resp
}
