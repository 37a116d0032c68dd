// Package catalog owns the target-catalog side of matching: a SQLite-backed
// record store, an immutable in-memory index keyed by normalized make, and
// an atomically-swapped snapshot so refreshes never disturb in-flight
// searches.
package catalog
