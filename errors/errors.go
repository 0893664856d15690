package errors

import (
	stderrors "errors"
	"fmt"
)

// BrokerError is the unified error type for the library.
type BrokerError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *BrokerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *BrokerError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *BrokerError) WithCause(cause error) *BrokerError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *BrokerError) WithDetail(key string, value any) *BrokerError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new BrokerError.
func New(code ErrorCode, message string) *BrokerError {
	return &BrokerError{Code: code, Message: message}
}

// --- Construction fault constructors ---

// MissingField creates the configuration error for a missing required field.
// The message matches the historical broker surface: "<field> required".
func MissingField(field string) *BrokerError {
	return &BrokerError{
		Code:    ErrCodeMissingField,
		Message: fmt.Sprintf("%s required", field),
		Details: map[string]any{"field": field},
	}
}

// InvalidType creates the configuration error for an unrecognized add-on type.
func InvalidType(got string) *BrokerError {
	return &BrokerError{
		Code:    ErrCodeInvalidType,
		Message: "invalid type",
		Details: map[string]any{"type": got},
	}
}

// TransportInit creates the error for an environment dependency that could
// not be loaded or created during broker construction.
func TransportInit(dependency string, cause error) *BrokerError {
	return &BrokerError{
		Code:    ErrCodeTransportInit,
		Message: fmt.Sprintf("cannot initialize %s transport", dependency),
		Details: map[string]any{"dependency": dependency},
		Cause:   cause,
	}
}

// --- Runtime fault constructors (never surfaced to SendEvent callers) ---

// ClonePayload creates the error for a payload that cannot survive a
// serialize/deserialize round trip.
func ClonePayload(cause error) *BrokerError {
	return &BrokerError{
		Code:    ErrCodeClonePayload,
		Message: "cannot clone payload",
		Cause:   cause,
	}
}

// PublishFailed creates the error for a client channel publish that failed.
func PublishFailed(topic string, cause error) *BrokerError {
	return &BrokerError{
		Code:    ErrCodePublishFailed,
		Message: fmt.Sprintf("publish on %q failed", topic),
		Details: map[string]any{"topic": topic},
		Cause:   cause,
	}
}

// SerializeFailed creates the error for a payload that could not be
// JSON-serialized for string delivery.
func SerializeFailed(cause error) *BrokerError {
	return &BrokerError{
		Code:    ErrCodeSerializeFailed,
		Message: "cannot serialize payload",
		Cause:   cause,
	}
}

// TransformFailed creates the error for a caller-supplied transform that
// returned an error.
func TransformFailed(cause error) *BrokerError {
	return &BrokerError{
		Code:    ErrCodeTransformFailed,
		Message: "transform failed",
		Cause:   cause,
	}
}

// BeaconFailed creates the error for an analytics beacon that could not be
// handed to the network layer.
func BeaconFailed(cause error) *BrokerError {
	return &BrokerError{
		Code:    ErrCodeBeaconFailed,
		Message: "beacon send failed",
		Cause:   cause,
	}
}

// Validation creates the error for a loaded configuration that failed
// struct validation.
func Validation(message string) *BrokerError {
	return &BrokerError{Code: ErrCodeValidation, Message: message}
}

// --- Classification helpers ---

// IsConfig reports whether err is a configuration validation fault.
func IsConfig(err error) bool {
	var be *BrokerError
	if !stderrors.As(err, &be) {
		return false
	}
	return be.Code == ErrCodeMissingField || be.Code == ErrCodeInvalidType
}

// IsTransport reports whether err is a transport initialization fault.
func IsTransport(err error) bool {
	var be *BrokerError
	if !stderrors.As(err, &be) {
		return false
	}
	return be.Code == ErrCodeTransportInit
}

// CodeOf returns the error code of err, or "" if err is not a BrokerError.
func CodeOf(err error) ErrorCode {
	var be *BrokerError
	if stderrors.As(err, &be) {
		return be.Code
	}
	return ""
}
