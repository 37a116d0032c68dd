package xcatalog

import "testing"

func TestInvertProviderCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"swaps halves", "123456789012", "789012123456"},
		{"round trip", "789012123456", "123456789012"},
		{"too short", "12345678901", ""},
		{"too long", "1234567890123", ""},
		{"empty", "", ""},
		{"non numeric", "12345678901A", ""},
		{"letters", "ABCDEFGHIJKL", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InvertProviderCode(tt.code); got != tt.want {
				t.Errorf("InvertProviderCode(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}
