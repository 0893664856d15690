// Package testutil provides test doubles and helpers for exercising
// the broker: a recording beacon, a recording host environment with
// configurable failure modes, and form-body decoding helpers.
package testutil
