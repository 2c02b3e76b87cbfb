package callstore

import (
	"context"
	"encoding/json"
)

type CallStatus string

const (
	CallStatusStreaming CallStatus = "streaming"
	CallStatusCompleted CallStatus = "completed"
	CallStatusFailed    CallStatus = "failed"
)

// Update is a partial field set applied to one call record. Nil fields are
// left untouched; applying the same update twice leaves the row unchanged.
type Update struct {
	CallStatus           *CallStatus
	StreamingActive      *bool
	AppointmentScheduled *bool
	AppointmentData      json.RawMessage
}

func (u Update) IsEmpty() bool {
	return u.CallStatus == nil && u.StreamingActive == nil &&
		u.AppointmentScheduled == nil && u.AppointmentData == nil
}

// Recorder applies partial updates to the externally-owned call record keyed
// by the telephony call identifier. The row is created before the bridge
// starts; an identifier that matches no row is not an error.
type Recorder interface {
	UpdateCall(ctx context.Context, callID string, update Update) error
}

func StatusPtr(s CallStatus) *CallStatus { return &s }

func BoolPtr(b bool) *bool { return &b }
