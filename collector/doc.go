// Package collector shapes and delivers analytics hits.
//
// A Hit is a flat, insertion-ordered key-value mapping form-encoded
// with "%20" for spaces, per the measurement protocol convention. The
// HTTPBeacon posts encoded hits to the collector endpoint
// fire-and-forget: no response handling, no retry.
package collector
