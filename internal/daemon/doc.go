// Package daemon coordinates the long-running carmatch process.
//
// It wires configuration, catalog storage, the weight profile registry, and
// the upstream catalogue client into a single lifecycle with flock-based
// locking to prevent multiple instances. The daemon owns the periodic
// catalog refresh that atomically swaps the in-memory index, and serves the
// HTTP API.
//
// Keep orchestration logic here: matching and normalization live in their
// respective packages while the daemon focuses on startup, shutdown, and
// high level coordination.
package daemon
