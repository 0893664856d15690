package metrics

import (
	"testing"

	"github.com/pdehaan/testpilot-metrics/errors"
)

func TestConfig_Validate_Success(t *testing.T) {
	cfg := Config{ID: "ext1", Version: "1.0", UID: "u1"}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if cfg.Type != TypeWebExtension {
		t.Errorf("expected default type webextension, got %s", cfg.Type)
	}
}

func TestConfig_Validate_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantMsg string
	}{
		{"missing id", Config{Version: "1.0", UID: "u1", Type: TypeWebExtension}, "id required"},
		{"missing version", Config{ID: "ext1", UID: "u1", Type: TypeWebExtension}, "version required"},
		{"missing uid", Config{ID: "ext1", Version: "1.0", Type: TypeWebExtension}, "uid required"},
	}
	for _, tt := range tests {
		err := tt.cfg.Validate()
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !errors.IsConfig(err) {
			t.Errorf("%s: expected config fault, got %v", tt.name, err)
		}
		var be *errors.BrokerError
		if !asBrokerError(err, &be) || be.Message != tt.wantMsg {
			t.Errorf("%s: expected message %q, got %v", tt.name, tt.wantMsg, err)
		}
	}
}

func TestConfig_Validate_Order(t *testing.T) {
	// All three identity fields missing: id is reported first.
	err := (&Config{Type: TypeSDK}).Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	var be *errors.BrokerError
	if !asBrokerError(err, &be) || be.Message != "id required" {
		t.Errorf("expected id reported first, got %v", err)
	}
}

func TestConfig_Validate_InvalidType(t *testing.T) {
	cfg := Config{ID: "ext1", Version: "1.0", UID: "u1", Type: "extension"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.CodeOf(err) != errors.ErrCodeInvalidType {
		t.Errorf("expected INVALID_TYPE, got %s", errors.CodeOf(err))
	}
	var be *errors.BrokerError
	if !asBrokerError(err, &be) || be.Message != "invalid type" {
		t.Errorf("expected message 'invalid type', got %v", err)
	}
}

func TestAddonType_Valid(t *testing.T) {
	for _, typ := range []AddonType{TypeWebExtension, TypeSDK, TypeBootstrapped} {
		if !typ.Valid() {
			t.Errorf("%s must be valid", typ)
		}
	}
	for _, typ := range []AddonType{"", "web", "addon", "WEBEXTENSION"} {
		if typ.Valid() {
			t.Errorf("%q must be invalid", typ)
		}
	}
}

func TestTopicFor_Derivation(t *testing.T) {
	tests := []struct {
		id   string
		typ  AddonType
		want string
	}{
		{SentinelID, TypeWebExtension, TopicTestPilot},
		{SentinelID, TypeSDK, TopicTestPilot},
		{SentinelID, TypeBootstrapped, TopicTestPilot},
		{"ext1", TypeWebExtension, TopicTelemetry},
		{"ext1", TypeSDK, TopicNotification},
		{"ext1", TypeBootstrapped, TopicNotification},
	}
	for _, tt := range tests {
		if got := TopicFor(tt.id, tt.typ); got != tt.want {
			t.Errorf("TopicFor(%q, %s) = %q, want %q", tt.id, tt.typ, got, tt.want)
		}
	}
}
