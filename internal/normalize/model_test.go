package normalize

import "testing"

func TestNormalizeModel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Golf", "golf"},
		{"Golf VII", "golf"},
		{"Golf VII 2013", "golf"},
		{"Fiesta 2017", "fiesta"},
		{"500X", "500x"},
		{"DS 3 Crossback", "ds3 crossback"},
		{"AR Giulietta", "alfa romeo giulietta"},
		{"RR Sport", "range rover sport"},
		{"RRE", "range rover evoque"},
		{"VW Golf", "volkswagen golf"},
		{"Passat Variant", "passat variant"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeModel(tc.in); got != tc.want {
			t.Errorf("NormalizeModel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeModelIdempotent(t *testing.T) {
	inputs := []string{"Golf VII 2013", "DS 3", "AR Giulietta", "500 X"}
	for _, in := range inputs {
		once := NormalizeModel(in)
		if twice := NormalizeModel(once); twice != once {
			t.Errorf("NormalizeModel(%q): %q -> %q, not idempotent", in, once, twice)
		}
	}
}

func TestSpaceless(t *testing.T) {
	if got := Spaceless("500 x"); got != "500x" {
		t.Fatalf("Spaceless(\"500 x\") = %q", got)
	}
	if got := Spaceless("  range  rover "); got != "rangerover" {
		t.Fatalf("Spaceless collapsed = %q", got)
	}
}
