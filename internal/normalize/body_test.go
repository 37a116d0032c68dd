package normalize

import "testing"

func TestNormalizeBody(t *testing.T) {
	cases := []struct {
		in   string
		want Body
	}{
		{"Berlina", BodySedan},
		{"berlina 5 porte", BodySedan},
		{"Fuoristrada 5 porte", BodySUV},
		{"CrossOver", BodySUV},
		{"Coupé", BodyCoupe},
		{"coupe 3 porte", BodyCoupe},
		{"Station Wagon", BodyWagon},
		{"familiare", BodyWagon},
		{"Cabrio", BodyConvertible},
		{"spider", BodyConvertible},
		{"Monovolume", BodyMPV},
		{"Pulmino", BodyVan},
		{"furgone vetrato", BodyVan},
		{"van", BodyVan},
		{"microfurgone pick-up", BodyPickup},
		{"cabinato con cassone", BodyPlatform},
		{"telaio cabinato", BodyChassis},
		{"pianale cabinato", BodyChassis},
		{"Scuolabus", BodyBus},
		{"bus", BodyBus},
		{"", BodyUnknown},
		{"qualcosa", BodyUnknown},
	}
	for _, tc := range cases {
		if got := NormalizeBody(tc.in); got != tc.want {
			t.Errorf("NormalizeBody(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeBodyIdempotent(t *testing.T) {
	bodies := []Body{
		BodyPickup, BodyBus, BodyPlatform, BodyVan, BodyChassis, BodySUV,
		BodyWagon, BodyConvertible, BodyCoupe, BodyMPV, BodyHatchback,
		BodySedan, BodyUnknown,
	}
	for _, body := range bodies {
		if got := NormalizeBody(string(body)); got != body {
			t.Errorf("NormalizeBody(%s) = %s, not idempotent", body, got)
		}
	}
}
