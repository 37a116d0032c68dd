package match

import (
	"testing"

	"carmatch/internal/vehicle"
)

type fakeCatalog map[string][]*vehicle.Spec

func (f fakeCatalog) ByMake(make string) []*vehicle.Spec { return f[make] }

func newSpec(t *testing.T, natcode, makeName, model string, mutate func(*vehicle.Spec)) *vehicle.Spec {
	t.Helper()
	spec := &vehicle.Spec{Natcode: natcode, Make: makeName, Model: model}
	if mutate != nil {
		mutate(spec)
	}
	spec.Normalize()
	return spec
}

func TestModelsCompatible(t *testing.T) {
	cases := []struct {
		sourceNorm, targetNorm string
		sourceRaw, targetRaw   string
		want                   bool
	}{
		{"golf", "golf", "Golf", "Golf", true},
		{"golf", "golf variant", "Golf", "Golf Variant", true},
		{"golf variant", "golf", "Golf Variant", "Golf", true},
		{"500x", "500 x", "500X", "500 X", true},
		{"panda", "punto", "Panda", "Punto", false},
		// Raw containment saves pairs normalization pushed apart.
		{"a", "b", "Model S", "Model S Plaid", true},
	}
	for _, tc := range cases {
		got := ModelsCompatible(tc.sourceNorm, tc.targetNorm, tc.sourceRaw, tc.targetRaw)
		if got != tc.want {
			t.Errorf("ModelsCompatible(%q, %q, %q, %q) = %t",
				tc.sourceNorm, tc.targetNorm, tc.sourceRaw, tc.targetRaw, got)
		}
		// Containment runs both directions, so swapping the sides never
		// changes the verdict.
		swapped := ModelsCompatible(tc.targetNorm, tc.sourceNorm, tc.targetRaw, tc.sourceRaw)
		if swapped != got {
			t.Errorf("ModelsCompatible not symmetric for (%q, %q)", tc.sourceNorm, tc.targetNorm)
		}
	}
}

func TestSelectCandidatesFilters(t *testing.T) {
	source := newSpec(t, "S1", "Fiat", "500", func(s *vehicle.Spec) {
		s.Body = "berlina"
	})

	sameModel := newSpec(t, "T1", "Fiat", "500", func(s *vehicle.Spec) { s.Body = "berlina" })
	variant := newSpec(t, "T2", "Fiat", "500X", func(s *vehicle.Spec) { s.Body = "suv" })
	otherModel := newSpec(t, "T3", "Fiat", "Panda", func(s *vehicle.Spec) { s.Body = "berlina" })
	lcv := newSpec(t, "T4", "Fiat", "500", func(s *vehicle.Spec) { s.Body = "furgone" })

	catalog := fakeCatalog{"FIAT": {sameModel, variant, otherModel, lcv}}

	got := SelectCandidates(source, catalog)
	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2", len(got))
	}
	if got[0].Natcode != "T1" || got[1].Natcode != "T2" {
		t.Fatalf("candidates = %s, %s", got[0].Natcode, got[1].Natcode)
	}
}

func TestSelectCandidatesIgnoresOEM(t *testing.T) {
	source := newSpec(t, "S1", "Fiat", "500", func(s *vehicle.Spec) {
		s.OEMCode = "AAA111"
	})
	target := newSpec(t, "T1", "Fiat", "500", func(s *vehicle.Spec) {
		s.OEMCode = "ZZZ999"
	})
	catalog := fakeCatalog{"FIAT": {target}}

	if got := SelectCandidates(source, catalog); len(got) != 1 {
		t.Fatalf("OEM mismatch removed a candidate: got %d", len(got))
	}
}

func TestSelectCandidatesMissingKeys(t *testing.T) {
	noMake := &vehicle.Spec{Model: "500"}
	noMake.Normalize()
	if got := SelectCandidates(noMake, fakeCatalog{}); got != nil {
		t.Fatalf("missing make produced candidates: %v", got)
	}

	noModel := &vehicle.Spec{Make: "Fiat"}
	noModel.Normalize()
	if got := SelectCandidates(noModel, fakeCatalog{}); got != nil {
		t.Fatalf("missing model produced candidates: %v", got)
	}
}
