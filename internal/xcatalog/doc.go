// Package xcatalog is the client for the upstream X-Catalog service: source
// trim lookup (with provider-code inversion fallback), existing-mapping
// lookup, and mapping submission.
//
// The matching engine never talks to this package; it consumes records the
// caller already resolved. Network concerns — timeouts, request pacing,
// retrying an inverted code — live entirely here.
package xcatalog
