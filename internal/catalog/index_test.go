package catalog

import (
	"testing"

	"carmatch/internal/vehicle"
)

func sampleRecords() []vehicle.Spec {
	return []vehicle.Spec{
		{Natcode: "N1", Make: "Fiat", Model: "500", OEMCode: "A1"},
		{Natcode: "N2", Make: "Fiat", Model: "Panda", OEMCode: "A2"},
		{Natcode: "N3", Make: "Volkswagen", Model: "Golf", OEMCode: "A1"},
		{Natcode: "N4", Make: "Volkswagen", Model: "Polo"},
	}
}

func TestNewIndex(t *testing.T) {
	idx := NewIndex(sampleRecords())

	if idx.Len() != 4 {
		t.Fatalf("Len = %d", idx.Len())
	}
	if idx.MakeCount() != 2 {
		t.Fatalf("MakeCount = %d", idx.MakeCount())
	}
	// A1 appears twice but counts once.
	if idx.OEMCodeCount() != 2 {
		t.Fatalf("OEMCodeCount = %d", idx.OEMCodeCount())
	}
	if idx.BuiltAt().IsZero() {
		t.Fatal("BuiltAt not set")
	}

	fiat := idx.ByMake("FIAT")
	if len(fiat) != 2 {
		t.Fatalf("ByMake(FIAT) = %d records", len(fiat))
	}
	if fiat[0].Natcode != "N1" || fiat[1].Natcode != "N2" {
		t.Fatal("make bucket lost catalog order")
	}
	if fiat[0].MakeNorm != "FIAT" || fiat[0].ModelNorm != "500" {
		t.Fatal("records not normalized at build time")
	}

	spec, ok := idx.ByNatcode("N3")
	if !ok || spec.Model != "Golf" {
		t.Fatalf("ByNatcode(N3) = %v, %t", spec, ok)
	}
	if _, ok := idx.ByNatcode("missing"); ok {
		t.Fatal("missing natcode resolved")
	}
}

func TestSnapshotPublish(t *testing.T) {
	var snap Snapshot

	if snap.Loaded() {
		t.Fatal("fresh snapshot reports loaded")
	}
	if _, err := snap.Current(); err != ErrNotLoaded {
		t.Fatalf("Current before publish: %v", err)
	}

	first := NewIndex(sampleRecords()[:1])
	snap.Publish(first)
	got, err := snap.Current()
	if err != nil || got.Len() != 1 {
		t.Fatalf("Current after publish: %v, %v", got, err)
	}

	second := NewIndex(sampleRecords())
	snap.Publish(second)
	// The first index stays intact for readers that grabbed it earlier.
	if first.Len() != 1 {
		t.Fatal("published index mutated")
	}
	got, _ = snap.Current()
	if got.Len() != 4 {
		t.Fatalf("swap not visible: Len = %d", got.Len())
	}
}
