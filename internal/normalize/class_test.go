package normalize

import "testing"

func TestClassifyVehicle(t *testing.T) {
	cases := []struct {
		makeNorm  string
		modelNorm string
		bodyNorm  Body
		want      VehicleClass
	}{
		{"IVECO", "whatever", BodySedan, ClassLCV},
		{"FIAT", "ducato", BodyUnknown, ClassLCV},
		{"MERCEDES-BENZ", "sprinter", BodyUnknown, ClassLCV},
		{"FIAT", "panda", BodyVan, ClassLCV},
		{"FIAT", "panda", BodyPickup, ClassLCV},
		{"FIAT", "panda", BodyHatchback, ClassCar},
		{"VOLKSWAGEN", "golf", BodyUnknown, ClassCar},
		{"BMW", "x5", BodySUV, ClassCar},
	}
	for _, tc := range cases {
		got := ClassifyVehicle(tc.makeNorm, tc.modelNorm, tc.bodyNorm)
		if got != tc.want {
			t.Errorf("ClassifyVehicle(%q, %q, %s) = %s, want %s",
				tc.makeNorm, tc.modelNorm, tc.bodyNorm, got, tc.want)
		}
	}
}
