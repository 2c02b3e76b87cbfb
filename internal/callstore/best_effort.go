package callstore

import (
	"context"
	"log/slog"
)

// BestEffort wraps a Recorder so persistence is pure telemetry: failures are
// logged and swallowed, never surfaced to the call path.
type BestEffort struct {
	recorder Recorder
}

func NewBestEffort(recorder Recorder) *BestEffort {
	return &BestEffort{recorder: recorder}
}

func (b *BestEffort) UpdateCall(ctx context.Context, callID string, update Update) {
	if b.recorder == nil || callID == "" || update.IsEmpty() {
		return
	}
	if err := b.recorder.UpdateCall(ctx, callID, update); err != nil {
		slog.Error("failed to update call record", "error", err, "call_id", callID)
	}
}
