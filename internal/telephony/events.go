package telephony

import (
	"encoding/json"
	"fmt"
)

type wireEnvelope struct {
	Event     string `json:"event"`
	StreamSID string `json:"streamSid"`
	Start     *struct {
		StreamSID   string   `json:"streamSid"`
		CallSID     string   `json:"callSid"`
		AccountSID  string   `json:"accountSid"`
		Tracks      []string `json:"tracks"`
		MediaFormat struct {
			Encoding   string `json:"encoding"`
			SampleRate int    `json:"sampleRate"`
			Channels   int    `json:"channels"`
		} `json:"mediaFormat"`
	} `json:"start"`
	Media *struct {
		Track     string `json:"track"`
		Chunk     string `json:"chunk"`
		Timestamp string `json:"timestamp"`
		Payload   string `json:"payload"`
	} `json:"media"`
}

// ParseEvent decodes one media-stream wire message into its typed variant.
func ParseEvent(data []byte) (Event, error) {
	var env wireEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("malformed stream event: %w", err)
	}

	switch env.Event {
	case "start":
		ev := StartEvent{StreamSID: env.StreamSID}
		if env.Start != nil {
			if env.Start.StreamSID != "" {
				ev.StreamSID = env.Start.StreamSID
			}
			ev.CallSID = env.Start.CallSID
			ev.AccountSID = env.Start.AccountSID
			ev.MediaFormat = MediaFormat{
				Encoding:   env.Start.MediaFormat.Encoding,
				SampleRate: env.Start.MediaFormat.SampleRate,
				Channels:   env.Start.MediaFormat.Channels,
			}
		}
		return ev, nil
	case "media":
		ev := MediaEvent{StreamSID: env.StreamSID}
		if env.Media != nil {
			ev.Track = env.Media.Track
			ev.Chunk = env.Media.Chunk
			ev.Timestamp = env.Media.Timestamp
			ev.Payload = env.Media.Payload
		}
		return ev, nil
	case "stop":
		return StopEvent{StreamSID: env.StreamSID}, nil
	default:
		return UnknownEvent{Name: env.Event}, nil
	}
}
