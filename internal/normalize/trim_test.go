package normalize

import (
	"reflect"
	"testing"
)

func TestExtractTrimTokens(t *testing.T) {
	tokens := ExtractTrimTokens("Golf GTI Performance 2.0")
	if !tokens.Contains("gti") || !tokens.Contains("performance") {
		t.Fatalf("expected gti and performance, got %v", tokens.Sorted())
	}

	// Whole-word matching: "sport" must not fire inside "Sportback".
	if ExtractTrimTokens("A5 Sportback").Contains("sport") {
		t.Fatal("sport matched inside a longer word")
	}
	if ExtractTrimTokens("Fastback").Contains("st") {
		t.Fatal("st matched inside a longer word")
	}

	multi := ExtractTrimTokens("Clio Monte Carlo TCe 90")
	if !multi.Contains("monte carlo") {
		t.Fatalf("multi-word entry missed, got %v", multi.Sorted())
	}

	if got := ExtractTrimTokens(""); len(got) != 0 {
		t.Fatalf("empty name produced tokens %v", got.Sorted())
	}
}

func TestTokenSetOps(t *testing.T) {
	a := ExtractTrimTokens("Sport Business Plus")
	b := ExtractTrimTokens("Business Style")

	inter := a.Intersect(b)
	if len(inter) != 1 || !inter.Contains("business") {
		t.Fatalf("Intersect = %v", inter.Sorted())
	}

	onlyA := a.Diff(b)
	if !reflect.DeepEqual(onlyA.Sorted(), []string{"plus", "sport"}) {
		t.Fatalf("Diff = %v", onlyA.Sorted())
	}

	onlyB := b.Diff(a)
	if !reflect.DeepEqual(onlyB.Sorted(), []string{"style"}) {
		t.Fatalf("Diff = %v", onlyB.Sorted())
	}

	if sorted := (TokenSet{}).Sorted(); sorted == nil || len(sorted) != 0 {
		t.Fatalf("empty Sorted = %v", sorted)
	}
}
