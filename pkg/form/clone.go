package form

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// cloneToMap deep-copies data into a fresh map via a JSON round trip.
// The round trip both isolates the copy from the caller's object and
// rejects values a request body could never carry (cycles, channels,
// functions). Non-object values fail as well: a form's data is always a
// field-name-to-value mapping.
func cloneToMap(data any) (map[string]any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, &SerializationError{Err: err}
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, &SerializationError{Err: fmt.Errorf("data is not an object: %w", err)}
	}
	return m, nil
}

// clonePair produces two independent deep copies of data from a single
// marshal, so mutating a nested live value can never reach the baseline.
func clonePair(data any) (original, live map[string]any, err error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, nil, &SerializationError{Err: err}
	}
	if err := json.Unmarshal(raw, &original); err != nil {
		return nil, nil, &SerializationError{Err: fmt.Errorf("data is not an object: %w", err)}
	}
	if err := json.Unmarshal(raw, &live); err != nil {
		return nil, nil, &SerializationError{Err: err}
	}
	return original, live, nil
}
