// Package errors provides unified error handling for the metrics broker.
// It implements a structured error type with machine-readable codes so
// callers can distinguish configuration faults from transport faults
// without matching on message strings.
package errors
