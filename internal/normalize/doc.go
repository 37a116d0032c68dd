// Package normalize maps raw vehicle attribute values onto canonical
// vocabularies shared by the candidate selector, the scorer, and the API
// payloads.
//
// Every function here is total: unrecognized input resolves to the Unknown
// sentinel of its vocabulary, never an error. Body and fuel classification
// are expressed as ordered rule tables evaluated first-match-wins because
// several raw keywords are substrings of other rules' raw forms; the table
// order is part of the contract and is exercised directly by tests.
//
// Normalization happens once per record (at catalog index build for targets,
// at search time for the source) and the results are cached on vehicle.Spec.
// Downstream code must read the cached fields rather than re-normalizing.
package normalize
