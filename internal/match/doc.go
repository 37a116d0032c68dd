// Package match implements the matching engine: candidate selection by
// make/model/class containment, multi-factor weighted scoring against a
// registered weight profile, and confidence classification of the ranked
// result.
//
// The engine is a pure computation over already-normalized vehicle records.
// It holds no mutable state, performs no IO, and for identical inputs always
// produces identical output; concurrent searches need no synchronization
// beyond the immutability of the catalog snapshot they read.
package match
