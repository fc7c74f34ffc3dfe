package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
)

// AuditRecorder persists one entry per change. All entries of a batch share
// the same timestamp; the store keeps their insertion order.
type AuditRecorder struct {
	auditLogs ports.AuditLogRepository
	now       func() time.Time
}

func NewAuditRecorder(auditLogs ports.AuditLogRepository) *AuditRecorder {
	return &AuditRecorder{auditLogs: auditLogs, now: time.Now}
}

func (r *AuditRecorder) Record(ctx context.Context, taskID string, actor domain.Actor, changes []domain.Change) error {
	if len(changes) == 0 {
		return nil
	}

	timestamp := r.now().UTC()
	entries := make([]domain.AuditLogEntry, 0, len(changes))
	for _, change := range changes {
		entry := domain.AuditLogEntry{
			ID:            uuid.NewString(),
			TaskID:        taskID,
			Action:        change.Action,
			OldValue:      auditValue(change.OldValue),
			NewValue:      auditValue(change.NewValue),
			PerformedBy:   actor.Name,
			PerformedByID: actor.ID,
			Timestamp:     timestamp,
		}
		if change.Field != "" {
			field := change.Field
			entry.FieldChanged = &field
		}
		entries = append(entries, entry)
	}

	if err := r.auditLogs.InsertMany(ctx, entries); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrAuditNotRecorded, err)
	}
	return nil
}

func auditValue(value any) *string {
	if value == nil {
		return nil
	}
	out := fmt.Sprint(value)
	return &out
}
