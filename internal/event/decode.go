package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns the payload as T. Events published in process already
// carry the typed struct; anything else (a map from a replayed dead letter,
// say) is converted through JSON.
func DecodePayload[T any](payload any) (T, error) {
	if typed, ok := payload.(T); ok {
		return typed, nil
	}

	var out T
	raw, err := json.Marshal(payload)
	if err != nil {
		return out, fmt.Errorf("encode %T payload: %w", payload, err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode payload as %T: %w", out, err)
	}
	return out, nil
}
