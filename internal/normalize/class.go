package normalize

import "strings"

// VehicleClass partitions the catalogs into passenger cars and light
// commercial vehicles. Source and target catalogs disagree on their own
// class flags, so the class is always derived here instead of trusted.
type VehicleClass string

const (
	ClassCar VehicleClass = "CAR"
	ClassLCV VehicleClass = "LCV"
)

// Makes that only produce commercial vehicles.
var lcvMakes = map[string]struct{}{
	"IVECO":                       {},
	"MAN":                         {},
	"ISUZU":                       {},
	"PIAGGIO VEICOLI COMMERCIALI": {},
}

// Model name fragments that indicate a commercial vehicle regardless of make.
var lcvModelKeywords = []string{
	"ducato", "daily", "sprinter", "transit", "transporter", "crafter",
	"vito", "citan", "boxer", "jumper", "expert", "jumpy", "berlingo van",
	"partner", "kangoo", "trafic", "master", "movano", "vivaro",
	"combo cargo", "proace", "hiace", "nv200", "nv300", "nv400", "e-nv200",
	"tourneo",
}

var lcvBodies = map[Body]struct{}{
	BodyVan:      {},
	BodyChassis:  {},
	BodyPickup:   {},
	BodyPlatform: {},
	BodyBus:      {},
}

// ClassifyVehicle derives CAR or LCV from normalized make, model, and body,
// applying rules in order: LCV-only make, LCV model keyword, LCV body
// category, default CAR.
func ClassifyVehicle(makeNorm, modelNorm string, bodyNorm Body) VehicleClass {
	if _, ok := lcvMakes[strings.ToUpper(strings.TrimSpace(makeNorm))]; ok {
		return ClassLCV
	}
	model := strings.ToLower(modelNorm)
	for _, kw := range lcvModelKeywords {
		if strings.Contains(model, kw) {
			return ClassLCV
		}
	}
	if _, ok := lcvBodies[bodyNorm]; ok {
		return ClassLCV
	}
	return ClassCar
}
