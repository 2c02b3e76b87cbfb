package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/fixlifyapp/fixlyfy-ai-automate-sub009/internal/realtime"
	"github.com/gorilla/websocket"
)

// OpenAIDialer opens realtime voice sessions against the OpenAI realtime API.
type OpenAIDialer struct {
	url    string
	apiKey string
}

func NewOpenAIDialer(url, apiKey string) realtime.Dialer {
	return &OpenAIDialer{url: url, apiKey: apiKey}
}

func (d *OpenAIDialer) Dial(ctx context.Context) (realtime.Connection, error) {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+d.apiKey)
	header.Set("OpenAI-Beta", "realtime=v1")

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, d.url, header)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("dial realtime api: %w (status %d)", err, resp.StatusCode)
		}
		return nil, fmt.Errorf("dial realtime api: %w", err)
	}
	return &wsConnection{conn: conn}, nil
}

// wsConnection adapts one websocket to realtime.Connection. Writes are
// serialized; gorilla permits one concurrent writer only.
type wsConnection struct {
	conn *websocket.Conn

	writeMu sync.Mutex
}

func (c *wsConnection) ReadEvent() (realtime.Event, error) {
	for {
		msgType, data, err := c.conn.ReadMessage()
		if err != nil {
			return nil, err
		}
		if msgType != websocket.TextMessage {
			continue
		}
		ev, err := realtime.ParseEvent(data)
		if err != nil {
			// Forward compatibility over strictness: a frame we cannot
			// decode must not end the call.
			slog.Warn("skipping undecodable realtime event", "error", err)
			continue
		}
		return ev, nil
	}
}

type sessionUpdateMessage struct {
	Type    string                 `json:"type"`
	Session realtime.SessionConfig `json:"session"`
}

func (c *wsConnection) SendSessionUpdate(session realtime.SessionConfig) error {
	return c.writeJSON(sessionUpdateMessage{Type: "session.update", Session: session})
}

type audioAppendMessage struct {
	Type  string `json:"type"`
	Audio string `json:"audio"`
}

func (c *wsConnection) AppendAudio(payload string) error {
	return c.writeJSON(audioAppendMessage{Type: "input_audio_buffer.append", Audio: payload})
}

type functionOutputItem struct {
	Type   string `json:"type"`
	CallID string `json:"call_id"`
	Output string `json:"output"`
}

type itemCreateMessage struct {
	Type string             `json:"type"`
	Item functionOutputItem `json:"item"`
}

func (c *wsConnection) SendFunctionResult(callID string, output realtime.FunctionOutput) error {
	encoded, err := json.Marshal(output)
	if err != nil {
		return fmt.Errorf("encode function output: %w", err)
	}
	return c.writeJSON(itemCreateMessage{
		Type: "conversation.item.create",
		Item: functionOutputItem{
			Type:   "function_call_output",
			CallID: callID,
			Output: string(encoded),
		},
	})
}

func (c *wsConnection) CreateResponse() error {
	return c.writeJSON(map[string]string{"type": "response.create"})
}

func (c *wsConnection) writeJSON(v any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(v)
}

func (c *wsConnection) Close() error {
	return c.conn.Close()
}
