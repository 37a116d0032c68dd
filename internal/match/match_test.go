package match

import (
	"fmt"
	"testing"

	"carmatch/internal/vehicle"
)

func TestMatchFullFlow(t *testing.T) {
	profile := defaultProfile(t)

	source := newSpec(t, "SRC", "Fiat", "500", func(s *vehicle.Spec) {
		s.Name = "500 Lounge 1.2 69cv"
		s.Price = 15000
		s.HP = 69
		s.CC = 1242
		s.Fuel = "Benzina"
		s.Body = "berlina"
		s.GearType = "Manuale"
		s.Doors = 3
	})

	exact := newSpec(t, "T-EXACT", "Fiat", "500", func(s *vehicle.Spec) {
		s.Name = "500 1.2 Lounge"
		s.Price = 15200
		s.HP = 69
		s.CC = 1242
		s.Fuel = "Benzina"
		s.Body = "berlina"
		s.GearType = "Manuale"
		s.Doors = 3
	})
	variant := newSpec(t, "T-VARIANT", "Fiat", "500", func(s *vehicle.Spec) {
		s.Name = "500 1.2 Pop"
		s.Price = 13000
		s.HP = 69
		s.CC = 1242
		s.Fuel = "Benzina"
		s.Body = "berlina"
		s.GearType = "Manuale"
		s.Doors = 3
	})
	far := newSpec(t, "T-FAR", "Fiat", "500X", func(s *vehicle.Spec) {
		s.Name = "500X Cross 1.6 Diesel"
		s.Price = 24000
		s.HP = 120
		s.CC = 1598
		s.Fuel = "Diesel"
		s.Body = "suv"
		s.GearType = "Automatico"
		s.Doors = 5
	})

	catalog := fakeCatalog{"FIAT": {far, variant, exact}}

	result := Match(source, catalog, profile)

	if result.CandidateCount != 3 {
		t.Fatalf("CandidateCount = %d", result.CandidateCount)
	}
	if result.RecommendedNatcode != "T-EXACT" {
		t.Fatalf("recommended %s", result.RecommendedNatcode)
	}
	if result.Candidates[0].Spec.Natcode != "T-EXACT" {
		t.Fatalf("top candidate %s", result.Candidates[0].Spec.Natcode)
	}
	if result.Profile != DefaultProfileName || result.MaxScore != profile.MaxScore() {
		t.Fatalf("profile context %s/%d", result.Profile, result.MaxScore)
	}
	if result.Decision == ConfidenceNoCandidates {
		t.Fatal("unexpected NO_CANDIDATES")
	}
	for _, c := range result.Candidates {
		if c.Breakdown.Total() != c.Score {
			t.Fatalf("candidate %s breakdown sum %d != score %d",
				c.Spec.Natcode, c.Breakdown.Total(), c.Score)
		}
	}
	if result.Candidates[0].Score <= result.Candidates[2].Score {
		t.Fatal("ranking not descending")
	}
}

func TestMatchEmptyCatalog(t *testing.T) {
	profile := defaultProfile(t)
	source := newSpec(t, "SRC", "Fiat", "500", nil)

	result := Match(source, fakeCatalog{}, profile)
	if result.Decision != ConfidenceNoCandidates {
		t.Fatalf("Decision = %s", result.Decision)
	}
	if result.CandidateCount != 0 || len(result.Candidates) != 0 {
		t.Fatal("empty catalog produced candidates")
	}
	if result.RecommendedNatcode != "" {
		t.Fatalf("recommended %s", result.RecommendedNatcode)
	}
}

func TestMatchCapsCandidateList(t *testing.T) {
	profile := defaultProfile(t)
	source := newSpec(t, "SRC", "Fiat", "500", nil)

	var records []*vehicle.Spec
	for i := 0; i < 25; i++ {
		records = append(records, newSpec(t, fmt.Sprintf("T%02d", i), "Fiat", "500", nil))
	}
	catalog := fakeCatalog{"FIAT": records}

	result := Match(source, catalog, profile)
	if result.CandidateCount != 25 {
		t.Fatalf("CandidateCount = %d", result.CandidateCount)
	}
	if len(result.Candidates) != 10 {
		t.Fatalf("returned %d candidates", len(result.Candidates))
	}
}

// Two same-model targets that differ only in doors: the scorer, not OEM
// gating, must pick the one matching the source's doors.
func TestMatchScoringBreaksOEMAmbiguity(t *testing.T) {
	profile := defaultProfile(t)
	source := newSpec(t, "SRC", "Fiat", "500", func(s *vehicle.Spec) {
		s.OEMCode = "SAME123"
		s.Doors = 5
	})
	threeDoor := newSpec(t, "T-3D", "Fiat", "500", func(s *vehicle.Spec) {
		s.OEMCode = "SAME123"
		s.Doors = 3
	})
	fiveDoor := newSpec(t, "T-5D", "Fiat", "500", func(s *vehicle.Spec) {
		s.OEMCode = "SAME123"
		s.Doors = 5
	})
	catalog := fakeCatalog{"FIAT": {threeDoor, fiveDoor}}

	result := Match(source, catalog, profile)
	if result.RecommendedNatcode != "T-5D" {
		t.Fatalf("recommended %s, want T-5D", result.RecommendedNatcode)
	}
}

// An exact OEM hit is worth only half a weight more than a cleaned one, so
// a cleaned-code candidate whose specs fit better must still win. Under
// "flat" the doors factor (10) outweighs the exact-vs-cleaned OEM gap (5).
func TestMatchCleanedOEMLosesToBetterSpecs(t *testing.T) {
	profile, err := BuiltinRegistry().Lookup("flat")
	if err != nil {
		t.Fatal(err)
	}
	source := newSpec(t, "SRC", "Volkswagen", "Golf", func(s *vehicle.Spec) {
		s.Name = "GOLF 1.5 TSI"
		s.OEMCode = "ABC12-AAA"
		s.Doors = 5
	})
	exactOEM := newSpec(t, "T-EXACT-OEM", "Volkswagen", "Golf", func(s *vehicle.Spec) {
		s.Name = "GOLF 1.5 TSI"
		s.OEMCode = "ABC12-AAA"
		s.Doors = 3
	})
	cleanedOEM := newSpec(t, "T-CLEANED-OEM", "Volkswagen", "Golf", func(s *vehicle.Spec) {
		s.Name = "GOLF 1.5 TSI"
		s.OEMCode = "ABC12-BBB"
		s.Doors = 5
	})
	catalog := fakeCatalog{"VOLKSWAGEN": {exactOEM, cleanedOEM}}

	result := Match(source, catalog, profile)
	if result.RecommendedNatcode != "T-CLEANED-OEM" {
		t.Fatalf("recommended %s, want T-CLEANED-OEM", result.RecommendedNatcode)
	}
	byCode := map[string]Candidate{}
	for _, c := range result.Candidates {
		byCode[c.Spec.Natcode] = c
	}
	if got := byCode["T-EXACT-OEM"].Breakdown.OEMMatch; got != OEMMatchExact {
		t.Errorf("exact candidate OEM match = %s", got)
	}
	if got := byCode["T-CLEANED-OEM"].Breakdown.OEMMatch; got != OEMMatchCleaned {
		t.Errorf("cleaned candidate OEM match = %s", got)
	}
	gap := byCode["T-CLEANED-OEM"].Score - byCode["T-EXACT-OEM"].Score
	if gap != 5 {
		t.Errorf("score gap = %d, want doors weight minus half the OEM weight", gap)
	}
}

func TestMatchTieBreakKeepsCatalogOrder(t *testing.T) {
	profile := defaultProfile(t)
	source := newSpec(t, "SRC", "Fiat", "500", nil)
	first := newSpec(t, "T-FIRST", "Fiat", "500", nil)
	second := newSpec(t, "T-SECOND", "Fiat", "500", nil)
	catalog := fakeCatalog{"FIAT": {first, second}}

	result := Match(source, catalog, profile)
	if result.Candidates[0].Spec.Natcode != "T-FIRST" {
		t.Fatalf("tie broke to %s", result.Candidates[0].Spec.Natcode)
	}
}
