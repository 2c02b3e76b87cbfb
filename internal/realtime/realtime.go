package realtime

import "context"

// Dialer opens a realtime voice-model connection for one session.
type Dialer interface {
	Dial(ctx context.Context) (Connection, error)
}

// Connection is the model leg of one bridged call. SendSessionUpdate must be
// the first message on the wire, strictly before any AppendAudio; the remote
// side may reject audio that arrives unconfigured.
type Connection interface {
	ReadEvent() (Event, error)
	SendSessionUpdate(session SessionConfig) error
	AppendAudio(payload string) error
	SendFunctionResult(callID string, output FunctionOutput) error
	CreateResponse() error
	Close() error
}

// SessionConfig is the body of the one-time session.update message.
type SessionConfig struct {
	Modalities        []string       `json:"modalities"`
	Instructions      string         `json:"instructions"`
	Voice             string         `json:"voice"`
	InputAudioFormat  string         `json:"input_audio_format"`
	OutputAudioFormat string         `json:"output_audio_format"`
	TurnDetection     *TurnDetection `json:"turn_detection,omitempty"`
	Tools             []Tool         `json:"tools,omitempty"`
}

type TurnDetection struct {
	Type              string  `json:"type"`
	Threshold         float64 `json:"threshold"`
	PrefixPaddingMs   int     `json:"prefix_padding_ms"`
	SilenceDurationMs int     `json:"silence_duration_ms"`
}

type Tool struct {
	Type        string         `json:"type"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  ToolParameters `json:"parameters"`
}

type ToolParameters struct {
	Type       string                  `json:"type"`
	Properties map[string]ToolProperty `json:"properties"`
	Required   []string                `json:"required"`
}

type ToolProperty struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// FunctionOutput is serialized into item.output of the function result; the
// model always receives one, success or failure, for every call it issues.
type FunctionOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Event is the closed set of inbound model events the bridge reacts to.
// Everything else decodes to UnknownEvent and is ignored.
type Event interface {
	isEvent()
}

type AudioDeltaEvent struct {
	Delta string
}

type FunctionCallDoneEvent struct {
	Name      string
	CallID    string
	Arguments string
}

type UnknownEvent struct {
	Type string
}

func (AudioDeltaEvent) isEvent()       {}
func (FunctionCallDoneEvent) isEvent() {}
func (UnknownEvent) isEvent()          {}
