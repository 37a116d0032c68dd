// Package api defines wire-format types and the search service behind the
// HTTP API. It translates internal vehicle and match models into
// transport-friendly DTOs so consumers never couple to internal types.
//
// # Key Types
//
// SearchResult: full outcome of a search, from upstream trim resolution
// through candidate ranking and the existing-mapping check.
//
// CandidateView: one ranked candidate with its per-factor breakdown.
//
// VehicleView: transport representation of a vehicle record, raw fields plus
// normalized derivations.
//
// # Design Notes
//
// DTOs use snake_case JSON tags matching the historical API contract.
// Breakdown factors are exposed under their factor names; match-type
// metadata lives in the same map under underscore-prefixed keys and is also
// mirrored as typed fields for consumers that dislike mixed-value maps.
package api
