package callstore

import (
	"context"
	"errors"
	"testing"
)

type recordingRecorder struct {
	calls []string
	err   error
}

func (r *recordingRecorder) UpdateCall(_ context.Context, callID string, _ Update) error {
	r.calls = append(r.calls, callID)
	return r.err
}

func TestBestEffort_SwallowsRecorderErrors(t *testing.T) {
	inner := &recordingRecorder{err: errors.New("store unreachable")}
	be := NewBestEffort(inner)

	be.UpdateCall(context.Background(), "CA123", Update{StreamingActive: BoolPtr(true)})

	if len(inner.calls) != 1 {
		t.Fatalf("expected one attempt, got %d", len(inner.calls))
	}
}

func TestBestEffort_SkipsEmptyCallID(t *testing.T) {
	inner := &recordingRecorder{}
	be := NewBestEffort(inner)

	be.UpdateCall(context.Background(), "", Update{StreamingActive: BoolPtr(true)})

	if len(inner.calls) != 0 {
		t.Fatalf("expected no attempts for empty call id, got %d", len(inner.calls))
	}
}

func TestBestEffort_SkipsEmptyUpdate(t *testing.T) {
	inner := &recordingRecorder{}
	be := NewBestEffort(inner)

	be.UpdateCall(context.Background(), "CA123", Update{})

	if len(inner.calls) != 0 {
		t.Fatalf("expected no attempts for empty update, got %d", len(inner.calls))
	}
}
