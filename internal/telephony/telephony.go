package telephony

// Connection is one live media-stream leg to the telephony provider. The
// signaling that established the call is outside this subsystem; a Connection
// exists only after the provider has opened its media WebSocket.
type Connection interface {
	// ReadEvent blocks until the next stream event arrives. It returns an
	// error once the underlying socket is closed.
	ReadEvent() (Event, error)
	// SendAudio forwards one base64 audio frame back to the caller.
	SendAudio(streamSID, payload string) error
	Close() error
}

// StreamHandler runs one bridged call over an accepted media stream.
type StreamHandler interface {
	HandleStream(conn Connection)
}

// Event is the closed set of media-stream wire events. Unrecognized event
// names decode to UnknownEvent so new provider messages never break a call.
type Event interface {
	isEvent()
}

type MediaFormat struct {
	Encoding   string
	SampleRate int
	Channels   int
}

// StartEvent opens a stream. StreamSID is the call identifier used for every
// persisted update for the rest of the session.
type StartEvent struct {
	StreamSID   string
	CallSID     string
	AccountSID  string
	MediaFormat MediaFormat
}

type MediaEvent struct {
	StreamSID string
	Track     string
	Chunk     string
	Timestamp string
	Payload   string
}

type StopEvent struct {
	StreamSID string
}

type UnknownEvent struct {
	Name string
}

func (StartEvent) isEvent()   {}
func (MediaEvent) isEvent()   {}
func (StopEvent) isEvent()    {}
func (UnknownEvent) isEvent() {}
