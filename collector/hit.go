package collector

import (
	"net/url"
	"strings"
)

// Field is one key-value pair of a hit.
type Field struct {
	Key   string
	Value string
}

// Hit is the flat key-value payload sent to the analytics collector.
// Field order is preserved: the encoded body lists keys in the order
// they were set.
type Hit struct {
	fields []Field
}

// NewHit creates an empty hit.
func NewHit() Hit {
	return Hit{}
}

// Set appends the key-value pair, or replaces the value in place when
// the key is already present.
func (h Hit) Set(key, value string) Hit {
	for i, f := range h.fields {
		if f.Key == key {
			h.fields[i].Value = value
			return h
		}
	}
	h.fields = append(h.fields, Field{Key: key, Value: value})
	return h
}

// Get returns the value for key and whether it is present.
func (h Hit) Get(key string) (string, bool) {
	for _, f := range h.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Len returns the number of fields in the hit.
func (h Hit) Len() int { return len(h.fields) }

// Fields returns the fields in insertion order.
func (h Hit) Fields() []Field {
	out := make([]Field, len(h.fields))
	copy(out, h.fields)
	return out
}

// Encode form-encodes the hit: keys and values are percent-encoded and
// joined as key=value pairs with "&". Space encodes as "%20", matching
// the measurement protocol convention, not the "+" of default form
// encoding.
func (h Hit) Encode() string {
	var b strings.Builder
	for i, f := range h.fields {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(escape(f.Key))
		b.WriteByte('=')
		b.WriteString(escape(f.Value))
	}
	return b.String()
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
