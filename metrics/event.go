package metrics

import (
	"encoding/json"

	"github.com/pdehaan/testpilot-metrics/errors"
)

// DefaultCategory is applied when an event carries no category.
const DefaultCategory = "interactions"

// Event is one discrete payload submitted to the broker. It is
// transient: the broker clones it per sink and retains nothing after
// dispatch.
type Event struct {
	// Method names the action taken, e.g. "click".
	Method string
	// Object names the thing acted upon, e.g. "home-button-1".
	Object string
	// Category groups related events. Defaults to "interactions".
	Category string
	// Variant identifies the cohort in multi-variant studies.
	Variant string
	// Extra carries additional payload fields verbatim to the client
	// channel and to transforms. Values must be JSON-serializable or
	// the whole event is dropped.
	Extra map[string]any
}

// reserved are the top-level payload keys owned by the named fields.
var reserved = map[string]bool{
	"method":   true,
	"object":   true,
	"category": true,
	"variant":  true,
}

// MarshalJSON flattens the event into a single JSON object: the four
// named fields plus the Extra keys at top level. Absent optional fields
// serialize as null.
func (e Event) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 4+len(e.Extra))
	for k, v := range e.Extra {
		if !reserved[k] {
			m[k] = v
		}
	}
	m["method"] = nullable(e.Method)
	m["object"] = nullable(e.Object)
	m["category"] = nullable(e.Category)
	m["variant"] = nullable(e.Variant)
	return json.Marshal(m)
}

// UnmarshalJSON is the inverse of MarshalJSON: named keys populate the
// struct fields, everything else lands in Extra.
func (e *Event) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	e.Method = popString(m, "method")
	e.Object = popString(m, "object")
	e.Category = popString(m, "category")
	e.Variant = popString(m, "variant")
	if len(m) > 0 {
		e.Extra = m
	} else {
		e.Extra = nil
	}
	return nil
}

// Clone deep-copies the event via a serialize/deserialize round trip,
// decoupling the copy from caller-held references. Payloads that cannot
// survive the round trip fail with a clone error.
func (e Event) Clone() (Event, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return Event{}, errors.ClonePayload(err)
	}
	var out Event
	if err := json.Unmarshal(data, &out); err != nil {
		return Event{}, errors.ClonePayload(err)
	}
	return out, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func popString(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok {
		return ""
	}
	delete(m, key)
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
