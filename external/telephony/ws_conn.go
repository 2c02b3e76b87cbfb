package telephony

import (
	"log/slog"
	"sync"

	"github.com/fixlifyapp/fixlyfy-ai-automate-sub009/internal/telephony"
	"github.com/gorilla/websocket"
)

// wsConnection adapts one accepted media-stream websocket to
// telephony.Connection. Writes are serialized; gorilla permits one concurrent
// writer only.
type wsConnection struct {
	conn *websocket.Conn

	writeMu sync.Mutex
}

func newWSConnection(conn *websocket.Conn) *wsConnection {
	return &wsConnection{conn: conn}
}

func (c *wsConnection) ReadEvent() (telephony.Event, error) {
	for {
		msgType, data, err := c.conn.ReadMessage()
		if err != nil {
			return nil, err
		}
		if msgType != websocket.TextMessage {
			continue
		}
		ev, err := telephony.ParseEvent(data)
		if err != nil {
			slog.Warn("skipping undecodable stream event", "error", err)
			continue
		}
		return ev, nil
	}
}

type outboundMedia struct {
	Event     string        `json:"event"`
	StreamSID string        `json:"streamSid"`
	Media     outboundAudio `json:"media"`
}

type outboundAudio struct {
	Payload string `json:"payload"`
}

func (c *wsConnection) SendAudio(streamSID, payload string) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(outboundMedia{
		Event:     "media",
		StreamSID: streamSID,
		Media:     outboundAudio{Payload: payload},
	})
}

func (c *wsConnection) Close() error {
	return c.conn.Close()
}
