package match

import (
	"errors"
	"fmt"
	"sort"
)

// Factor identifies one scored attribute.
type Factor string

const (
	FactorPrice        Factor = "price"
	FactorHP           Factor = "hp"
	FactorTrim         Factor = "trim"
	FactorCC           Factor = "cc"
	FactorFuel         Factor = "fuel"
	FactorSellable     Factor = "sellable"
	FactorBody         Factor = "body"
	FactorOEM          Factor = "oem"
	FactorModel        Factor = "model"
	FactorTransmission Factor = "transmission"
	FactorTraction     Factor = "traction"
	FactorDoors        Factor = "doors"
	FactorName         Factor = "name"
	FactorSeats        Factor = "seats"
	FactorGears        Factor = "gears"
	FactorKW           Factor = "kw"
	FactorMass         Factor = "mass"
)

// Factors lists every scored factor. Profiles must weight all of them.
var Factors = []Factor{
	FactorPrice, FactorHP, FactorTrim, FactorCC, FactorFuel, FactorSellable,
	FactorBody, FactorOEM, FactorModel, FactorTransmission, FactorTraction,
	FactorDoors, FactorName, FactorSeats, FactorGears, FactorKW, FactorMass,
}

// Weights maps factors to non-negative point weights.
type Weights map[Factor]int

// Profile is a named, validated, immutable scoring configuration. MaxScore
// is derived from the weights at construction and never stored separately.
type Profile struct {
	name     string
	weights  Weights
	maxScore int
}

// NewProfile validates and freezes a weight mapping. Every factor must be
// present with a non-negative weight, and no unknown factor keys are
// accepted; a bad profile is rejected here, never at search time.
func NewProfile(name string, weights Weights) (Profile, error) {
	if name == "" {
		return Profile{}, errors.New("profile name required")
	}
	known := make(map[Factor]struct{}, len(Factors))
	for _, f := range Factors {
		known[f] = struct{}{}
	}
	for f, w := range weights {
		if _, ok := known[f]; !ok {
			return Profile{}, fmt.Errorf("profile %q: unknown factor %q", name, f)
		}
		if w < 0 {
			return Profile{}, fmt.Errorf("profile %q: negative weight %d for factor %q", name, w, f)
		}
	}
	frozen := make(Weights, len(Factors))
	maxScore := 0
	for _, f := range Factors {
		w, ok := weights[f]
		if !ok {
			return Profile{}, fmt.Errorf("profile %q: missing factor %q", name, f)
		}
		frozen[f] = w
		maxScore += w
	}
	return Profile{name: name, weights: frozen, maxScore: maxScore}, nil
}

// Name returns the profile's registry name.
func (p Profile) Name() string { return p.name }

// Weight returns the point weight assigned to a factor.
func (p Profile) Weight(f Factor) int { return p.weights[f] }

// MaxScore is the sum of all weights: the highest total any candidate can
// reach under this profile.
func (p Profile) MaxScore() int { return p.maxScore }

// Weights returns a copy of the weight mapping.
func (p Profile) Weights() Weights {
	out := make(Weights, len(p.weights))
	for f, w := range p.weights {
		out[f] = w
	}
	return out
}

// DefaultProfileName selects the profile used when a request names none.
const DefaultProfileName = "default"

// Registry holds the named weight profiles. It is populated once at process
// start and read-only afterwards.
type Registry struct {
	profiles map[string]Profile
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{profiles: make(map[string]Profile)}
}

// Register validates and adds a profile. Registering a duplicate name is a
// configuration error.
func (r *Registry) Register(name string, weights Weights) error {
	if _, exists := r.profiles[name]; exists {
		return fmt.Errorf("profile %q: already registered", name)
	}
	profile, err := NewProfile(name, weights)
	if err != nil {
		return err
	}
	r.profiles[name] = profile
	return nil
}

// Lookup resolves a profile by name. An empty name selects the default
// profile; an unregistered name is a configuration error, never a silent
// fallback.
func (r *Registry) Lookup(name string) (Profile, error) {
	if name == "" {
		name = DefaultProfileName
	}
	profile, ok := r.profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	return profile, nil
}

// Names returns the registered profile names in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuiltinRegistry returns the registry with the shipped profiles: "default"
// (157 points), "flat", and "trim_heavy".
func BuiltinRegistry() *Registry {
	r := NewRegistry()
	builtins := map[string]Weights{
		DefaultProfileName: {
			FactorPrice: 25, FactorHP: 20, FactorTrim: 15, FactorCC: 15,
			FactorFuel: 15, FactorSellable: 10, FactorBody: 10, FactorOEM: 10,
			FactorModel: 5, FactorTransmission: 5, FactorTraction: 5,
			FactorDoors: 5, FactorName: 5, FactorSeats: 3, FactorGears: 3,
			FactorKW: 3, FactorMass: 3,
		},
		"flat": {
			FactorPrice: 10, FactorHP: 10, FactorTrim: 10, FactorCC: 10,
			FactorFuel: 10, FactorSellable: 10, FactorBody: 10, FactorOEM: 10,
			FactorModel: 10, FactorTransmission: 10, FactorTraction: 10,
			FactorDoors: 10, FactorName: 10, FactorSeats: 3, FactorGears: 3,
			FactorKW: 3, FactorMass: 3,
		},
		"trim_heavy": {
			FactorPrice: 5, FactorHP: 10, FactorTrim: 40, FactorCC: 10,
			FactorFuel: 10, FactorSellable: 20, FactorBody: 10, FactorOEM: 5,
			FactorModel: 5, FactorTransmission: 5, FactorTraction: 5,
			FactorDoors: 5, FactorName: 5, FactorSeats: 3, FactorGears: 3,
			FactorKW: 3, FactorMass: 3,
		},
	}
	for name, weights := range builtins {
		if err := r.Register(name, weights); err != nil {
			panic(err)
		}
	}
	return r
}
