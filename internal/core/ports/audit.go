package ports

import (
	"context"
	"time"

	"taskmanager/internal/core/domain"
)

// AuditLogRepository is append-only: entries can be inserted and read, never
// updated or deleted.
type AuditLogRepository interface {
	InsertMany(ctx context.Context, entries []domain.AuditLogEntry) error
	FindByTask(ctx context.Context, taskID string) ([]domain.AuditLogEntry, error)
	FindByActorBetween(ctx context.Context, actorID string, from, to time.Time) ([]domain.AuditLogEntry, error)
}

type AuditService interface {
	TaskHistory(ctx context.Context, taskID string) ([]domain.AuditLogEntry, error)
	UserTimeline(ctx context.Context, userID string, day string) (domain.Timeline, error)
}
