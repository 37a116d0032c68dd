package normalize

import "testing"

func TestCleanOEMCode(t *testing.T) {
	cases := []struct {
		oem   string
		brand string
		want  string
	}{
		{"AB1CDEFG", "RENAULT", "CDEFG"},
		{"ABCDEFG", "RENAULT", "DEFG"},
		{"ABCDE-XYZ", "VOLKSWAGEN", "ABCDE"},
		{"abcde-xyz", "Volkswagen", "ABCDE"},
		{"ABCDERAA", "SKODA", "ABCDE"},
		{"ABCDL1EF", "MERCEDES-BENZ", "ABCDL1"},
		{"ABCDEF-GH", "MERCEDES", "ABCDEF"},
		{"ABCDEYEG", "AUDI", "ABCDE"},
		{"XYZABC7EL", "MINI", "XYZABC"},
		{"ABCDEFGH", "PEUGEOT", "ABCDEF"},
		{"ABCDEFGH", "CITROEN", "ABCDEF"},
		{"ABCDEFGH", "KIA", "ABCDE"},
		{"ABCDEFGH", "HYUNDAI", "ABCDE"},
		{"ABCDE", "MAZDA", "ABCD"},
		{"ABC123", "FERRARI", ""},
		{"", "RENAULT", ""},
		{"SHORT", "PEUGEOT", ""},
	}
	for _, tc := range cases {
		if got := CleanOEMCode(tc.oem, tc.brand); got != tc.want {
			t.Errorf("CleanOEMCode(%q, %q) = %q, want %q", tc.oem, tc.brand, got, tc.want)
		}
	}
}
