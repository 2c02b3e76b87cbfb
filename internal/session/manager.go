package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/fixlifyapp/fixlyfy-ai-automate-sub009/internal/bizconfig"
	"github.com/fixlifyapp/fixlyfy-ai-automate-sub009/internal/callstore"
	"github.com/fixlifyapp/fixlyfy-ai-automate-sub009/internal/config"
	"github.com/fixlifyapp/fixlyfy-ai-automate-sub009/internal/realtime"
	"github.com/fixlifyapp/fixlyfy-ai-automate-sub009/internal/telephony"
	"github.com/google/uuid"
)

const modelDialTimeout = 10 * time.Second

// Manager bridges accepted media streams to the voice model. One bridge per
// physical call; sessions share nothing but the keyed external store.
type Manager struct {
	cfg      *config.Config
	resolver *bizconfig.Resolver
	dialer   realtime.Dialer
	recorder *callstore.BestEffort

	mu     sync.Mutex
	active map[string]string // stream SID -> session id
}

func NewManager(cfg *config.Config, resolver *bizconfig.Resolver, dialer realtime.Dialer, recorder *callstore.BestEffort) *Manager {
	return &Manager{
		cfg:      cfg,
		resolver: resolver,
		dialer:   dialer,
		recorder: recorder,
		active:   make(map[string]string),
	}
}

// HandleStream runs one bridged call to completion. It is called once per
// accepted telephony WebSocket and blocks until the session terminates.
func (m *Manager) HandleStream(conn telephony.Connection) {
	sessionID := uuid.NewString()
	slog.Info("media stream accepted", "session_id", sessionID)

	dialCtx, cancel := context.WithTimeout(context.Background(), modelDialTimeout)
	defer cancel()

	bizCfg := m.resolver.Resolve(dialCtx)

	aiConn, err := m.dialer.Dial(dialCtx)
	if err != nil {
		slog.Error("failed to dial model leg", "error", err, "session_id", sessionID)
		_ = conn.Close()
		return
	}

	b := newBridge(sessionID, bizCfg, conn, aiConn, m.recorder,
		func(streamSID string) bool { return m.claimStream(streamSID, sessionID) },
		m.releaseStream,
	)

	// Configuration must be the first message on the model leg, strictly
	// before any audio frame reaches it.
	if err := aiConn.SendSessionUpdate(BuildSessionConfig(bizCfg, m.cfg.OpenAIVoice)); err != nil {
		slog.Error("failed to configure model session", "error", err, "session_id", sessionID)
		_ = aiConn.Close()
		_ = conn.Close()
		return
	}
	// Have the agent greet the caller instead of waiting for speech.
	if err := aiConn.CreateResponse(); err != nil {
		slog.Warn("failed to request greeting", "error", err, "session_id", sessionID)
	}

	maxDuration := time.Duration(m.cfg.MaxCallDurationMin) * time.Minute
	watchdog := time.AfterFunc(maxDuration, func() {
		slog.Warn("max call duration reached; terminating session", "session_id", sessionID, "max_duration", maxDuration)
		b.terminate(callstore.CallStatusCompleted)
	})
	defer watchdog.Stop()

	go b.runModelLoop()
	b.runCallerLoop()
	<-b.done
	slog.Info("media stream finished", "session_id", sessionID)
}

func (m *Manager) claimStream(streamSID, sessionID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if holder, exists := m.active[streamSID]; exists {
		slog.Warn("stream sid already claimed by another session",
			"stream_sid", streamSID, "session_id", sessionID, "holder_session_id", holder)
		return false
	}
	m.active[streamSID] = sessionID
	return true
}

func (m *Manager) releaseStream(streamSID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.active, streamSID)
}

// ActiveSessionCount reports how many claimed streams are currently bridged.
func (m *Manager) ActiveSessionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.active)
}
