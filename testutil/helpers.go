package testutil

import (
	"fmt"
	"net/url"
	"strings"
)

// DecodeForm parses a form-encoded body into a key-value map. It fails
// on malformed pairs so tests catch encoding regressions.
func DecodeForm(body string) (map[string]string, error) {
	out := make(map[string]string)
	if body == "" {
		return out, nil
	}
	for _, pair := range strings.Split(body, "&") {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("malformed pair %q", pair)
		}
		k, err := url.QueryUnescape(key)
		if err != nil {
			return nil, fmt.Errorf("bad key %q: %w", key, err)
		}
		v, err := url.QueryUnescape(value)
		if err != nil {
			return nil, fmt.Errorf("bad value %q: %w", value, err)
		}
		out[k] = v
	}
	return out, nil
}

// FormKeys returns the keys of a form-encoded body in wire order.
func FormKeys(body string) []string {
	if body == "" {
		return nil
	}
	pairs := strings.Split(body, "&")
	keys := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		key, _, _ := strings.Cut(pair, "=")
		k, err := url.QueryUnescape(key)
		if err != nil {
			k = key
		}
		keys = append(keys, k)
	}
	return keys
}
