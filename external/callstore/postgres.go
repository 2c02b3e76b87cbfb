package callstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/fixlifyapp/fixlyfy-ai-automate-sub009/internal/callstore"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRecorder struct {
	pool *pgxpool.Pool
}

func NewPostgresRecorder(pool *pgxpool.Pool) callstore.Recorder {
	return &PostgresRecorder{pool: pool}
}

func (r *PostgresRecorder) UpdateCall(ctx context.Context, callID string, update callstore.Update) error {
	query, args, ok := buildUpdateQuery(callID, update)
	if !ok {
		return nil
	}
	// Zero matched rows is fine: the row is owned by the surrounding
	// application and may not exist yet for this identifier.
	_, err := r.pool.Exec(ctx, query, args...)
	return err
}

func buildUpdateQuery(callID string, update callstore.Update) (string, []any, bool) {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)

	appendSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.CallStatus != nil {
		appendSet("call_status", string(*update.CallStatus))
	}
	if update.StreamingActive != nil {
		appendSet("streaming_active", *update.StreamingActive)
	}
	if update.AppointmentScheduled != nil {
		appendSet("appointment_scheduled", *update.AppointmentScheduled)
	}
	if update.AppointmentData != nil {
		appendSet("appointment_data", []byte(update.AppointmentData))
	}
	if len(sets) == 0 {
		return "", nil, false
	}

	args = append(args, callID)
	query := fmt.Sprintf(
		"UPDATE call_records SET %s, updated_at = NOW() WHERE call_control_id = $%d",
		strings.Join(sets, ", "), len(args))
	return query, args, true
}
