package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Configuration faults (fatal to construction)
const (
	// ErrCodeMissingField indicates a required identity field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidType indicates the add-on type is not a recognized value.
	ErrCodeInvalidType ErrorCode = "INVALID_TYPE"
)

// Transport faults (fatal to construction)
const (
	// ErrCodeTransportInit indicates an environment dependency for the
	// console or messaging transport could not be loaded or created.
	ErrCodeTransportInit ErrorCode = "TRANSPORT_INIT"
)

// Runtime faults (caught inside SendEvent, never propagated)
const (
	// ErrCodeClonePayload indicates the payload failed the deep-clone round trip.
	ErrCodeClonePayload ErrorCode = "CLONE_PAYLOAD"
	// ErrCodeSerializeFailed indicates the payload could not be JSON-serialized.
	ErrCodeSerializeFailed ErrorCode = "SERIALIZE_FAILED"
	// ErrCodePublishFailed indicates the client channel rejected the publish.
	ErrCodePublishFailed ErrorCode = "PUBLISH_FAILED"
	// ErrCodeTransformFailed indicates a caller-supplied transform errored.
	ErrCodeTransformFailed ErrorCode = "TRANSFORM_FAILED"
	// ErrCodeBeaconFailed indicates the analytics beacon could not be sent.
	ErrCodeBeaconFailed ErrorCode = "BEACON_FAILED"
	// ErrCodeValidation indicates a loaded configuration failed validation.
	ErrCodeValidation ErrorCode = "VALIDATION_FAILED"
)
