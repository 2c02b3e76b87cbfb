package session

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/fixlifyapp/fixlyfy-ai-automate-sub009/internal/callstore"
	"github.com/fixlifyapp/fixlyfy-ai-automate-sub009/internal/realtime"
	"github.com/fixlifyapp/fixlyfy-ai-automate-sub009/internal/telephony"
)

type sentAudio struct {
	streamSID string
	payload   string
}

type fakeTelephonyConn struct {
	events    chan telephony.Event
	closeCh   chan struct{}
	closeOnce sync.Once

	mu   sync.Mutex
	sent []sentAudio
}

func newFakeTelephonyConn() *fakeTelephonyConn {
	return &fakeTelephonyConn{
		events:  make(chan telephony.Event, 32),
		closeCh: make(chan struct{}),
	}
}

func (c *fakeTelephonyConn) push(ev telephony.Event) { c.events <- ev }

func (c *fakeTelephonyConn) ReadEvent() (telephony.Event, error) {
	select {
	case ev := <-c.events:
		return ev, nil
	case <-c.closeCh:
		return nil, net.ErrClosed
	}
}

func (c *fakeTelephonyConn) SendAudio(streamSID, payload string) error {
	select {
	case <-c.closeCh:
		return net.ErrClosed
	default:
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, sentAudio{streamSID: streamSID, payload: payload})
	return nil
}

func (c *fakeTelephonyConn) Close() error {
	c.closeOnce.Do(func() { close(c.closeCh) })
	return nil
}

func (c *fakeTelephonyConn) sentFrames() []sentAudio {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]sentAudio, len(c.sent))
	copy(out, c.sent)
	return out
}

func (c *fakeTelephonyConn) isClosed() bool {
	select {
	case <-c.closeCh:
		return true
	default:
		return false
	}
}

type fakeAIConn struct {
	events    chan realtime.Event
	closeCh   chan struct{}
	closeOnce sync.Once

	mu  sync.Mutex
	ops []string
}

func newFakeAIConn() *fakeAIConn {
	return &fakeAIConn{
		events:  make(chan realtime.Event, 32),
		closeCh: make(chan struct{}),
	}
}

func (c *fakeAIConn) push(ev realtime.Event) { c.events <- ev }

func (c *fakeAIConn) ReadEvent() (realtime.Event, error) {
	select {
	case ev := <-c.events:
		return ev, nil
	case <-c.closeCh:
		return nil, net.ErrClosed
	}
}

func (c *fakeAIConn) record(op string) error {
	select {
	case <-c.closeCh:
		return net.ErrClosed
	default:
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ops = append(c.ops, op)
	return nil
}

func (c *fakeAIConn) SendSessionUpdate(_ realtime.SessionConfig) error {
	return c.record("session.update")
}

func (c *fakeAIConn) AppendAudio(payload string) error {
	return c.record("append:" + payload)
}

func (c *fakeAIConn) SendFunctionResult(callID string, output realtime.FunctionOutput) error {
	return c.record(fmt.Sprintf("function_result:%s:%t:%s", callID, output.Success, output.Message))
}

func (c *fakeAIConn) CreateResponse() error {
	return c.record("response.create")
}

func (c *fakeAIConn) Close() error {
	c.closeOnce.Do(func() { close(c.closeCh) })
	return nil
}

func (c *fakeAIConn) recordedOps() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.ops))
	copy(out, c.ops)
	return out
}

func (c *fakeAIConn) isClosed() bool {
	select {
	case <-c.closeCh:
		return true
	default:
		return false
	}
}

type fakeDialer struct {
	conn *fakeAIConn
	err  error
}

func (d *fakeDialer) Dial(_ context.Context) (realtime.Connection, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.conn, nil
}

type capturedUpdate struct {
	callID string
	update callstore.Update
}

type fakeRecorder struct {
	mu      sync.Mutex
	updates []capturedUpdate
	err     error
}

func (r *fakeRecorder) UpdateCall(_ context.Context, callID string, update callstore.Update) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, capturedUpdate{callID: callID, update: update})
	return r.err
}

func (r *fakeRecorder) captured() []capturedUpdate {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]capturedUpdate, len(r.updates))
	copy(out, r.updates)
	return out
}

// waitUntil polls cond until it holds or the deadline passes.
func waitUntil(timeout time.Duration, cond func() bool) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(2 * time.Millisecond)
	}
	return cond()
}
