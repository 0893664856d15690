package metrics

import (
	"encoding/json"
	"testing"

	"github.com/pdehaan/testpilot-metrics/errors"
)

func TestEvent_MarshalJSON_NamedFields(t *testing.T) {
	e := Event{Method: "click", Object: "btn1", Category: "interactions"}
	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if m["method"] != "click" || m["object"] != "btn1" || m["category"] != "interactions" {
		t.Errorf("unexpected payload: %v", m)
	}
	if v, present := m["variant"]; !present || v != nil {
		t.Errorf("absent variant must serialize as null, got %v (present=%v)", v, present)
	}
}

func TestEvent_MarshalJSON_FlattensExtra(t *testing.T) {
	e := Event{Method: "view", Category: "mainmenu", Extra: map[string]any{"duration": 1.5}}
	data, _ := json.Marshal(e)
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if m["duration"] != 1.5 {
		t.Errorf("expected extra key at top level, got %v", m)
	}
}

func TestEvent_MarshalJSON_ReservedKeysWin(t *testing.T) {
	e := Event{Method: "click", Category: "interactions", Extra: map[string]any{"method": "spoofed"}}
	data, _ := json.Marshal(e)
	var m map[string]any
	_ = json.Unmarshal(data, &m)
	if m["method"] != "click" {
		t.Errorf("named field must win over extra, got %v", m["method"])
	}
}

func TestEvent_Clone_RoundTrip(t *testing.T) {
	e := Event{
		Method:   "click",
		Object:   "btn1",
		Category: "interactions",
		Variant:  "cohort-A",
		Extra:    map[string]any{"session": "s1"},
	}
	clone, err := e.Clone()
	if err != nil {
		t.Fatalf("clone failed: %v", err)
	}
	if clone.Method != e.Method || clone.Object != e.Object ||
		clone.Category != e.Category || clone.Variant != e.Variant {
		t.Errorf("clone differs: %+v", clone)
	}
	if clone.Extra["session"] != "s1" {
		t.Errorf("extra not carried: %v", clone.Extra)
	}

	// The copy must be decoupled from the original's references.
	clone.Extra["session"] = "mutated"
	if e.Extra["session"] != "s1" {
		t.Error("mutating the clone must not touch the original")
	}
}

func TestEvent_Clone_UnserializableExtra_Error(t *testing.T) {
	e := Event{Method: "click", Extra: map[string]any{"ch": make(chan int)}}
	_, err := e.Clone()
	if err == nil {
		t.Fatal("expected clone error")
	}
	if errors.CodeOf(err) != errors.ErrCodeClonePayload {
		t.Errorf("expected CLONE_PAYLOAD, got %s", errors.CodeOf(err))
	}
}

func TestEvent_Clone_CircularExtra_Error(t *testing.T) {
	cycle := map[string]any{}
	cycle["self"] = cycle
	e := Event{Method: "click", Extra: cycle}
	if _, err := e.Clone(); err == nil {
		t.Fatal("expected clone error for circular payload")
	}
}

func TestEvent_UnmarshalJSON_SplitsReservedAndExtra(t *testing.T) {
	data := []byte(`{"method":"view","category":"mainmenu","variant":null,"elapsed":3}`)
	var e Event
	if err := json.Unmarshal(data, &e); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if e.Method != "view" || e.Category != "mainmenu" || e.Variant != "" {
		t.Errorf("unexpected event: %+v", e)
	}
	if e.Extra["elapsed"] != float64(3) {
		t.Errorf("expected elapsed in extra, got %v", e.Extra)
	}
}
