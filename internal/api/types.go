package api

// VehicleView describes a vehicle record in a transport-friendly format.
type VehicleView struct {
	Natcode       string  `json:"natcode,omitempty"`
	Name          string  `json:"name"`
	Make          string  `json:"make"`
	Model         string  `json:"model"`
	OEMCode       string  `json:"oem_code,omitempty"`
	Price         float64 `json:"price,omitempty"`
	HP            int     `json:"hp,omitempty"`
	KW            int     `json:"kw,omitempty"`
	CC            int     `json:"cc,omitempty"`
	Fuel          string  `json:"fuel,omitempty"`
	Body          string  `json:"body,omitempty"`
	GearType      string  `json:"gear_type,omitempty"`
	Traction      string  `json:"traction,omitempty"`
	Doors         int     `json:"doors,omitempty"`
	Seats         int     `json:"seats,omitempty"`
	Gears         int     `json:"gears,omitempty"`
	Mass          float64 `json:"mass,omitempty"`
	SellableBegin int     `json:"sellable_begin,omitempty"`
	SellableEnd   int     `json:"sellable_end,omitempty"`
	MakeNorm      string  `json:"make_norm,omitempty"`
	ModelNorm     string  `json:"model_norm,omitempty"`
	FuelNorm      string  `json:"fuel_norm,omitempty"`
	BodyNorm      string  `json:"body_norm,omitempty"`
	GearTypeNorm  string  `json:"gear_type_norm,omitempty"`
	TractionNorm  string  `json:"traction_norm,omitempty"`
	VehicleClass  string  `json:"vehicle_class,omitempty"`
}

// CandidateView is one ranked candidate with its scoring breakdown. The
// breakdown maps factor names to awarded points and carries the match-type
// metadata under underscore-prefixed keys, mirrored by the typed fields.
type CandidateView struct {
	Natcode        string         `json:"natcode"`
	EurotaxCode    string         `json:"eurotax_code"`
	Name           string         `json:"name"`
	Score          int            `json:"score"`
	Breakdown      map[string]any `json:"breakdown"`
	OEMMatchType   string         `json:"oem_match_type"`
	TrimMatched    []string       `json:"trim_matched,omitempty"`
	TrimSourceOnly []string       `json:"trim_source_only,omitempty"`
	TrimTargetOnly []string       `json:"trim_target_only,omitempty"`
	Specs          VehicleView    `json:"specs"`
}

// MappingView is an existing upstream mapping for a source code.
type MappingView struct {
	ID       string  `json:"id"`
	DestCode string  `json:"dest_code"`
	Provider string  `json:"provider"`
	Score    float64 `json:"score,omitempty"`
	Strategy string  `json:"strategy,omitempty"`
}

// SearchResult is the payload for one search request.
type SearchResult struct {
	Found              bool            `json:"found"`
	Error              string          `json:"error,omitempty"`
	OriginalCode       string          `json:"original_code"`
	UsedCode           string          `json:"used_code,omitempty"`
	WasInverted        bool            `json:"was_inverted"`
	Brand              string          `json:"brand,omitempty"`
	InfocarName        string          `json:"infocar_name,omitempty"`
	InfocarSpecs       *VehicleView    `json:"infocar_specs,omitempty"`
	InfocarTrims       []string        `json:"infocar_trims,omitempty"`
	VehicleClass       string          `json:"vehicle_class,omitempty"`
	WeightProfile      string          `json:"weight_profile,omitempty"`
	MaxScore           int             `json:"max_score,omitempty"`
	CandidateCount     int             `json:"candidate_count"`
	Candidates         []CandidateView `json:"candidates"`
	Decision           string          `json:"stage2_decision,omitempty"`
	Confidence         float64         `json:"stage2_confidence,omitempty"`
	RecommendedNatcode string          `json:"stage2_recommended_natcode,omitempty"`
	ExistingMapping    *MappingView    `json:"existing_mapping,omitempty"`
}

// ProfileView describes one registered weight profile.
type ProfileView struct {
	Name     string         `json:"name"`
	MaxScore int            `json:"max_score"`
	Weights  map[string]int `json:"weights"`
}

// ProfilesResponse lists the registered weight profiles.
type ProfilesResponse struct {
	Default  string        `json:"default"`
	Profiles []ProfileView `json:"profiles"`
}

// StatsResponse summarizes daemon and catalog state.
type StatsResponse struct {
	Running       bool   `json:"running"`
	CatalogLoaded bool   `json:"catalog_loaded"`
	Records       int    `json:"records"`
	Makes         int    `json:"makes"`
	OEMCodes      int    `json:"oem_codes"`
	BuiltAt       string `json:"built_at,omitempty"`
	RefreshCount  int    `json:"refresh_count"`
	LastRefresh   string `json:"last_refresh,omitempty"`
	LastError     string `json:"last_error,omitempty"`
}

// MappingRequest asks the daemon to persist a confirmed mapping upstream.
type MappingRequest struct {
	SourceCode   string `json:"source_code"`
	DestCode     string `json:"dest_code"`
	Score        int    `json:"score"`
	MaxScore     int    `json:"max_score"`
	VehicleClass string `json:"vehicle_class,omitempty"`
}

// MappingResponse reports the submission outcome.
type MappingResponse struct {
	Submitted       bool    `json:"submitted"`
	NormalizedScore float64 `json:"normalized_score"`
}
