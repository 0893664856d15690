package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestBrokerError_MissingField_Success(t *testing.T) {
	err := MissingField("id")
	if err.Code != ErrCodeMissingField {
		t.Errorf("expected code %s, got %s", ErrCodeMissingField, err.Code)
	}
	if err.Message != "id required" {
		t.Errorf("expected message 'id required', got %q", err.Message)
	}
	if err.Details["field"] != "id" {
		t.Errorf("expected field detail 'id', got %v", err.Details["field"])
	}
}

func TestBrokerError_MissingField_MessagePerField(t *testing.T) {
	for _, field := range []string{"id", "version", "uid"} {
		err := MissingField(field)
		want := field + " required"
		if err.Message != want {
			t.Errorf("field %s: expected message %q, got %q", field, want, err.Message)
		}
	}
}

func TestBrokerError_InvalidType_Success(t *testing.T) {
	err := InvalidType("extension")
	if err.Code != ErrCodeInvalidType {
		t.Errorf("expected INVALID_TYPE, got %s", err.Code)
	}
	if err.Message != "invalid type" {
		t.Errorf("expected message 'invalid type', got %q", err.Message)
	}
	if err.Details["type"] != "extension" {
		t.Errorf("expected type detail 'extension', got %v", err.Details["type"])
	}
}

func TestBrokerError_Error_WithCause(t *testing.T) {
	cause := stderrors.New("service unavailable")
	err := TransportInit("notification", cause)
	got := err.Error()
	if !strings.Contains(got, "TRANSPORT_INIT") {
		t.Errorf("error string %q missing code", got)
	}
	if !strings.Contains(got, "service unavailable") {
		t.Errorf("error string %q missing cause", got)
	}
}

func TestBrokerError_Unwrap_Success(t *testing.T) {
	cause := stderrors.New("boom")
	err := ClonePayload(cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestBrokerError_Unwrap_NoCause(t *testing.T) {
	err := MissingField("uid")
	if err.Unwrap() != nil {
		t.Error("expected nil unwrap without a cause")
	}
}

func TestIsConfig_Classification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"missing field", MissingField("id"), true},
		{"invalid type", InvalidType("x"), true},
		{"transport", TransportInit("console", nil), false},
		{"wrapped config", fmt.Errorf("new: %w", MissingField("version")), true},
		{"plain error", stderrors.New("nope"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		if got := IsConfig(tt.err); got != tt.want {
			t.Errorf("%s: IsConfig = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsTransport_Classification(t *testing.T) {
	if !IsTransport(TransportInit("notification", nil)) {
		t.Error("expected transport error to classify as transport")
	}
	if IsTransport(MissingField("id")) {
		t.Error("config error must not classify as transport")
	}
}

func TestCodeOf_Success(t *testing.T) {
	if got := CodeOf(BeaconFailed(nil)); got != ErrCodeBeaconFailed {
		t.Errorf("expected BEACON_FAILED, got %s", got)
	}
	if got := CodeOf(stderrors.New("x")); got != "" {
		t.Errorf("expected empty code for plain error, got %s", got)
	}
}

func TestBrokerError_WithDetail_Success(t *testing.T) {
	err := New(ErrCodePublishFailed, "publish failed").WithDetail("topic", "testpilot")
	if err.Details["topic"] != "testpilot" {
		t.Errorf("expected topic detail, got %v", err.Details)
	}
}
