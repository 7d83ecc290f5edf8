// Package forms holds the dynamic form payload type shared by the booking and
// contact submission pipelines.
package forms

import (
	"encoding/json"
	"fmt"
)

// Payload is a decoded JSON form submission. Payloads stay dynamic instead of
// binding to structs so that the required-field check can distinguish "absent"
// from every falsy shape a browser form may submit.
type Payload map[string]any

// MissingFields returns the required field names that are missing from the
// payload, in the declared order. A field counts as missing when it is absent,
// null, an empty string, false, or numeric zero. The string "0" is present.
func MissingFields(p Payload, required []string) []string {
	var missing []string
	for _, name := range required {
		if !truthy(p[name]) {
			missing = append(missing, name)
		}
	}
	return missing
}

func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	case float64:
		return val != 0
	case json.Number:
		return val.String() != "0" && val.String() != ""
	default:
		return true
	}
}

// Str renders the value under key for display. Numbers format without a
// decimal point when integral, matching how they were typed into the form.
func (p Payload) Str(key string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%v", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Pick returns a sub-payload containing only the given keys, preserving the
// raw values for echoing back to the client.
func (p Payload) Pick(keys ...string) map[string]any {
	out := make(map[string]any, len(keys))
	for _, k := range keys {
		if v, ok := p[k]; ok {
			out[k] = v
		}
	}
	return out
}
