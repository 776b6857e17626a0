package display

import (
	"encoding/json"
)

// MarshalJSON marshals JSON with two-space indentation for terminal output
func MarshalJSON(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// MarshalCompactJSON marshals JSON on a single line for tool responses
func MarshalCompactJSON(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}
