package realtime

import (
	"encoding/json"
	"fmt"
)

type wireEvent struct {
	Type      string `json:"type"`
	Delta     string `json:"delta"`
	Name      string `json:"name"`
	CallID    string `json:"call_id"`
	Arguments string `json:"arguments"`
}

// ParseEvent decodes one inbound model event into its typed variant.
func ParseEvent(data []byte) (Event, error) {
	var env wireEvent
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("malformed realtime event: %w", err)
	}

	switch env.Type {
	case "response.audio.delta":
		return AudioDeltaEvent{Delta: env.Delta}, nil
	case "response.function_call_arguments.done":
		return FunctionCallDoneEvent{
			Name:      env.Name,
			CallID:    env.CallID,
			Arguments: env.Arguments,
		}, nil
	default:
		return UnknownEvent{Type: env.Type}, nil
	}
}
