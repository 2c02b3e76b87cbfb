package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/fixlifyapp/fixlyfy-ai-automate-sub009/internal/audio"
	"github.com/fixlifyapp/fixlyfy-ai-automate-sub009/internal/bizconfig"
	"github.com/fixlifyapp/fixlyfy-ai-automate-sub009/internal/callstore"
	"github.com/fixlifyapp/fixlyfy-ai-automate-sub009/internal/realtime"
	"github.com/fixlifyapp/fixlyfy-ai-automate-sub009/internal/telephony"
)

type bridgeState int

const (
	stateIdle bridgeState = iota
	stateStreaming
	stateTerminated
)

// bridge is the per-call state machine. It owns both leg connections for the
// lifetime of one call and guarantees both are closed on every exit path.
// Terminated is absorbing: no event is acted on after it.
type bridge struct {
	sessionID string
	bizCfg    bizconfig.BusinessConfig
	tel       telephony.Connection
	ai        realtime.Connection
	recorder  *callstore.BestEffort
	claim     func(streamSID string) bool
	release   func(streamSID string)

	mu        sync.Mutex
	state     bridgeState
	streamSID string
	persist   bool
	done      chan struct{}
}

func newBridge(
	sessionID string,
	bizCfg bizconfig.BusinessConfig,
	tel telephony.Connection,
	ai realtime.Connection,
	recorder *callstore.BestEffort,
	claim func(streamSID string) bool,
	release func(streamSID string),
) *bridge {
	return &bridge{
		sessionID: sessionID,
		bizCfg:    bizCfg,
		tel:       tel,
		ai:        ai,
		recorder:  recorder,
		claim:     claim,
		release:   release,
		done:      make(chan struct{}),
	}
}

// runCallerLoop pumps telephony events until the leg closes or the session
// terminates. A read failure while still live counts as a dropped call.
func (b *bridge) runCallerLoop() {
	for {
		ev, err := b.tel.ReadEvent()
		if err != nil {
			if !b.isTerminated() {
				slog.Info("telephony leg closed", "error", err, "session_id", b.sessionID)
				b.terminate(callstore.CallStatusFailed)
			}
			return
		}
		b.handleTelephonyEvent(ev)
		if b.isTerminated() {
			return
		}
	}
}

// runModelLoop pumps model events until the leg closes or the session
// terminates.
func (b *bridge) runModelLoop() {
	for {
		ev, err := b.ai.ReadEvent()
		if err != nil {
			if !b.isTerminated() {
				slog.Info("model leg closed", "error", err, "session_id", b.sessionID)
				b.terminate(callstore.CallStatusFailed)
			}
			return
		}
		b.handleAIEvent(ev)
		if b.isTerminated() {
			return
		}
	}
}

func (b *bridge) handleTelephonyEvent(ev telephony.Event) {
	switch ev := ev.(type) {
	case telephony.StartEvent:
		b.handleStart(ev)
	case telephony.MediaEvent:
		b.handleCallerAudio(ev)
	case telephony.StopEvent:
		slog.Info("stream stopped", "session_id", b.sessionID, "stream_sid", ev.StreamSID)
		b.terminate(callstore.CallStatusCompleted)
	case telephony.UnknownEvent:
		slog.Debug("ignoring unknown stream event", "event", ev.Name, "session_id", b.sessionID)
	}
}

func (b *bridge) handleStart(ev telephony.StartEvent) {
	b.mu.Lock()
	if b.state != stateIdle {
		b.mu.Unlock()
		slog.Warn("duplicate start event ignored", "session_id", b.sessionID, "stream_sid", ev.StreamSID)
		return
	}
	b.state = stateStreaming
	b.streamSID = ev.StreamSID
	b.persist = ev.StreamSID != "" && (b.claim == nil || b.claim(ev.StreamSID))
	persist := b.persist
	b.mu.Unlock()

	if !persist {
		slog.Warn("streaming without a usable stream sid; call proceeds unlogged",
			"session_id", b.sessionID, "stream_sid", ev.StreamSID)
		return
	}
	slog.Info("stream started", "session_id", b.sessionID, "stream_sid", ev.StreamSID, "call_sid", ev.CallSID)
	b.recorder.UpdateCall(context.Background(), ev.StreamSID, callstore.Update{
		CallStatus:      callstore.StatusPtr(callstore.CallStatusStreaming),
		StreamingActive: callstore.BoolPtr(true),
	})
}

func (b *bridge) handleCallerAudio(ev telephony.MediaEvent) {
	if !b.isStreaming() {
		return
	}
	// A frame that cannot be delivered is dropped; losing audio beats
	// stalling a live call. A dead leg is detected by its read loop.
	if err := b.ai.AppendAudio(audio.NormalizePayload(ev.Payload)); err != nil {
		slog.Warn("dropping caller frame; model leg not writable", "error", err, "session_id", b.sessionID)
	}
}

func (b *bridge) handleAIEvent(ev realtime.Event) {
	switch ev := ev.(type) {
	case realtime.AudioDeltaEvent:
		b.handleModelAudio(ev)
	case realtime.FunctionCallDoneEvent:
		b.handleFunctionCall(ev)
	case realtime.UnknownEvent:
		slog.Debug("ignoring unknown model event", "type", ev.Type, "session_id", b.sessionID)
	}
}

func (b *bridge) handleModelAudio(ev realtime.AudioDeltaEvent) {
	b.mu.Lock()
	streaming := b.state == stateStreaming
	streamSID := b.streamSID
	b.mu.Unlock()
	if !streaming {
		return
	}
	if err := b.tel.SendAudio(streamSID, audio.NormalizePayload(ev.Delta)); err != nil {
		slog.Warn("dropping model frame; telephony leg not writable", "error", err, "session_id", b.sessionID)
	}
}

func (b *bridge) handleFunctionCall(ev realtime.FunctionCallDoneEvent) {
	b.mu.Lock()
	terminated := b.state == stateTerminated
	streamSID := b.streamSID
	persist := b.persist
	b.mu.Unlock()
	if terminated {
		return
	}

	if ev.Name != scheduleAppointmentTool {
		slog.Warn("unsupported function call", "name", ev.Name, "session_id", b.sessionID)
		b.respondToFunctionCall(ev.CallID, realtime.FunctionOutput{
			Success: false,
			Message: fmt.Sprintf("function %q is not available", ev.Name),
		})
		return
	}

	req, err := parseAppointmentRequest(ev.Arguments)
	if err != nil {
		slog.Warn("rejected appointment request", "error", err, "session_id", b.sessionID)
		b.respondToFunctionCall(ev.CallID, realtime.FunctionOutput{
			Success: false,
			Message: fmt.Sprintf("could not schedule the appointment: %v", err),
		})
		return
	}

	if persist {
		b.recorder.UpdateCall(context.Background(), streamSID, callstore.Update{
			AppointmentScheduled: callstore.BoolPtr(true),
			AppointmentData:      appointmentData(req, b.bizCfg.CompanyName),
		})
	}
	slog.Info("appointment scheduled",
		"session_id", b.sessionID, "stream_sid", streamSID,
		"customer", req.CustomerName, "service_type", req.ServiceType)

	message := fmt.Sprintf("Appointment scheduled for %s (%s)", req.CustomerName, req.ServiceType)
	if req.PreferredDate != "" {
		message += " on " + req.PreferredDate
	}
	b.respondToFunctionCall(ev.CallID, realtime.FunctionOutput{Success: true, Message: message})
}

// respondToFunctionCall always answers a function call, then asks the model to
// resume speaking; without the response.create the model waits indefinitely.
func (b *bridge) respondToFunctionCall(callID string, output realtime.FunctionOutput) {
	if err := b.ai.SendFunctionResult(callID, output); err != nil {
		slog.Error("failed to send function result", "error", err, "session_id", b.sessionID, "call_id", callID)
		return
	}
	if err := b.ai.CreateResponse(); err != nil {
		slog.Error("failed to resume model response", "error", err, "session_id", b.sessionID, "call_id", callID)
	}
}

// terminate closes both legs exactly once and records the final status. Any
// later invocation is a no-op.
func (b *bridge) terminate(status callstore.CallStatus) {
	b.mu.Lock()
	if b.state == stateTerminated {
		b.mu.Unlock()
		return
	}
	b.state = stateTerminated
	streamSID := b.streamSID
	persist := b.persist
	b.mu.Unlock()

	_ = b.ai.Close()
	_ = b.tel.Close()
	close(b.done)

	if persist {
		b.recorder.UpdateCall(context.Background(), streamSID, callstore.Update{
			CallStatus:      callstore.StatusPtr(status),
			StreamingActive: callstore.BoolPtr(false),
		})
		if b.release != nil {
			b.release(streamSID)
		}
	}
	slog.Info("session terminated", "session_id", b.sessionID, "stream_sid", streamSID, "status", string(status))
}

func (b *bridge) isStreaming() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state == stateStreaming
}

func (b *bridge) isTerminated() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state == stateTerminated
}
