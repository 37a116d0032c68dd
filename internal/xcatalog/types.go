package xcatalog

import (
	"carmatch/internal/vehicle"
)

// Record is one trim document as the upstream API returns it.
type Record struct {
	Name             string          `json:"name"`
	Make             string          `json:"make"`
	NormalizedMake   string          `json:"normalizedMake"`
	NormalizedModel  string          `json:"normalizedModel"`
	ProviderCode     string          `json:"providerCode"`
	ManufacturerCode string          `json:"manufacturerCode"`
	PowerHP          int             `json:"powerHp"`
	PowerKW          int             `json:"powerKw"`
	CC               int             `json:"cc"`
	Price            float64         `json:"price"`
	Prices           *Prices         `json:"prices"`
	FuelType         string          `json:"fuelType"`
	BodyType         string          `json:"bodyType"`
	Doors            int             `json:"doors"`
	Seats            int             `json:"seats"`
	Gears            int             `json:"gears"`
	GearType         string          `json:"gearType"`
	TractionType     string          `json:"tractionType"`
	Mass             float64         `json:"mass"`
	SellableWindow   *SellableWindow `json:"sellableWindow"`

	// Error envelope fields on miss responses.
	Code string `json:"code"`
}

// Prices is the nested upstream price structure.
type Prices struct {
	OnTheRoad struct {
		Value float64 `json:"value"`
	} `json:"onTheRoad"`
}

// SellableWindow carries epoch-millisecond bounds; a missing end means the
// trim is still sellable.
type SellableWindow struct {
	Begin int64 `json:"begin"`
	End   int64 `json:"end"`
}

// yearFromEpochMillis converts an epoch-millisecond timestamp to a calendar
// year the same way the historical data was cut: whole 365-day years since
// 1970.
func yearFromEpochMillis(ms int64) int {
	if ms <= 0 {
		return 0
	}
	return int(ms/1000/86400/365) + 1970
}

// effectivePrice prefers the flat price field, falling back to the nested
// on-the-road price.
func (r *Record) effectivePrice() float64 {
	if r.Price > 0 {
		return r.Price
	}
	if r.Prices != nil {
		return r.Prices.OnTheRoad.Value
	}
	return 0
}

// Spec converts the upstream document into an unnormalized vehicle record.
// Callers normalize it exactly once (index build or search entry).
func (r *Record) Spec() vehicle.Spec {
	spec := vehicle.Spec{
		Natcode:  r.ProviderCode,
		Name:     r.Name,
		Make:     r.NormalizedMake,
		Model:    r.NormalizedModel,
		OEMCode:  r.ManufacturerCode,
		Price:    r.effectivePrice(),
		HP:       r.PowerHP,
		KW:       r.PowerKW,
		CC:       r.CC,
		Fuel:     r.FuelType,
		Body:     r.BodyType,
		GearType: r.GearType,
		Traction: r.TractionType,
		Doors:    r.Doors,
		Seats:    r.Seats,
		Gears:    r.Gears,
		Mass:     r.Mass,
	}
	if spec.Make == "" {
		spec.Make = r.Make
	}
	if r.SellableWindow != nil {
		spec.SellableBegin = yearFromEpochMillis(r.SellableWindow.Begin)
		spec.SellableEnd = yearFromEpochMillis(r.SellableWindow.End)
	}
	return spec
}

// Mapping is one existing source→target mapping on record upstream.
type Mapping struct {
	ID           string  `json:"id"`
	DestCode     string  `json:"destCode"`
	DestProvider string  `json:"destProvider"`
	Score        float64 `json:"score"`
	Strategy     string  `json:"strategy"`
}

// Submission is a confirmed mapping to persist upstream. Score is the raw
// engine score; it is normalized against MaxScore before leaving the
// process.
type Submission struct {
	SourceCode   string
	DestCode     string
	Score        int
	MaxScore     int
	VehicleClass string
	Country      string
}
