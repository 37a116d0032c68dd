// Package vehicle defines the vehicle record shared between the catalog
// index, the matching engine, and the API payloads.
package vehicle

import (
	"strings"

	"carmatch/internal/normalize"
)

// Spec is one vehicle record: the raw fields as delivered by a provider plus
// the canonical fields derived from them. Normalized fields are computed
// exactly once by Normalize and cached on the record so that candidate
// selection, scoring, and the values shown to operators can never diverge.
//
// Missing numeric fields are zero; missing strings are empty. Both score
// zero for their factor, they are never errors.
type Spec struct {
	Natcode string `json:"natcode"`

	Name          string  `json:"name"`
	Make          string  `json:"make"`
	Model         string  `json:"model"`
	OEMCode       string  `json:"oem_code,omitempty"`
	Price         float64 `json:"price"`
	HP            int     `json:"hp"`
	KW            int     `json:"kw"`
	CC            int     `json:"cc"`
	Fuel          string  `json:"fuel"`
	Body          string  `json:"body"`
	GearType      string  `json:"gear_type"`
	Traction      string  `json:"traction"`
	Doors         int     `json:"doors"`
	Seats         int     `json:"seats"`
	Gears         int     `json:"gears"`
	Mass          float64 `json:"mass"`
	SellableBegin int     `json:"sellable_begin"`
	SellableEnd   int     `json:"sellable_end"`

	// Derived canonical fields, cached by Normalize.
	MakeNorm     string                 `json:"make_norm"`
	ModelNorm    string                 `json:"model_norm"`
	FuelNorm     normalize.Fuel         `json:"fuel_norm"`
	BodyNorm     normalize.Body         `json:"body_norm"`
	GearTypeNorm normalize.Transmission `json:"gear_type_norm"`
	TractionNorm normalize.Traction     `json:"traction_norm"`
	Class        normalize.VehicleClass `json:"vehicle_class"`
	TrimTokens   normalize.TokenSet     `json:"-"`
	OEMCodeClean string                 `json:"-"`
}

// Normalize computes every derived field from the raw ones. It is called
// once per record: at index build time for catalog records and at search
// time for the source record.
func (s *Spec) Normalize() {
	s.MakeNorm = strings.ToUpper(strings.TrimSpace(s.Make))
	s.ModelNorm = normalize.NormalizeModel(s.Model)
	s.FuelNorm = normalize.NormalizeFuel(s.Fuel)
	s.BodyNorm = normalize.NormalizeBody(s.Body)
	s.GearTypeNorm = normalize.NormalizeTransmission(s.GearType)
	s.TractionNorm = normalize.NormalizeTraction(s.Traction)
	s.Class = normalize.ClassifyVehicle(s.MakeNorm, s.ModelNorm, s.BodyNorm)
	s.TrimTokens = normalize.ExtractTrimTokens(s.Name)
	s.OEMCodeClean = normalize.CleanOEMCode(s.OEMCode, s.MakeNorm)
}

// OEMCodeUpper returns the raw OEM code in canonical comparison form.
func (s *Spec) OEMCodeUpper() string {
	return strings.ToUpper(strings.TrimSpace(s.OEMCode))
}
