package messaging

import (
	"encoding/json"
	"fmt"
)

// envelope wraps every event on the wire so consumers can dispatch on type
// before decoding the payload.
type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func encodeEnvelope(eventType string, event any) ([]byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	data, err := json.Marshal(envelope{Type: eventType, Payload: payload})
	if err != nil {
		return nil, fmt.Errorf("marshal %s envelope: %w", eventType, err)
	}
	return data, nil
}
