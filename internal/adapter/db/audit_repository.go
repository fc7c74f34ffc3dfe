package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
)

const insertAuditLogQuery = `
INSERT INTO audit_logs (
  id, task_id, action, field_changed, old_value, new_value, performed_by, performed_by_id, created_at
) VALUES (
  :id, :task_id, :action, :field_changed, :old_value, :new_value, :performed_by, :performed_by_id, :created_at
)
`

const selectAuditLogsQuery = `
SELECT
  l.id, l.task_id, t.title AS task_title, l.action, l.field_changed, l.old_value, l.new_value,
  l.performed_by, l.performed_by_id, l.created_at
FROM audit_logs l
LEFT JOIN tasks t ON t.id = l.task_id
`

// AuditLogRepository never updates or deletes rows. The seq column breaks
// ties between entries of one batch, which share a timestamp.
type AuditLogRepository struct {
	db *sqlx.DB
}

type auditLogRow struct {
	ID            string         `db:"id"`
	TaskID        string         `db:"task_id"`
	TaskTitle     sql.NullString `db:"task_title"`
	Action        string         `db:"action"`
	FieldChanged  sql.NullString `db:"field_changed"`
	OldValue      sql.NullString `db:"old_value"`
	NewValue      sql.NullString `db:"new_value"`
	PerformedBy   string         `db:"performed_by"`
	PerformedByID string         `db:"performed_by_id"`
	CreatedAt     time.Time      `db:"created_at"`
}

var _ ports.AuditLogRepository = (*AuditLogRepository)(nil)

func NewAuditLogRepository(db *sqlx.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// InsertMany writes the batch in a single multi-row statement so that either
// every entry is stored or none is.
func (r *AuditLogRepository) InsertMany(ctx context.Context, entries []domain.AuditLogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	rows := make([]auditLogRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, auditLogRow{
			ID:            entry.ID,
			TaskID:        entry.TaskID,
			Action:        string(entry.Action),
			FieldChanged:  ptrNullString(entry.FieldChanged),
			OldValue:      ptrNullString(entry.OldValue),
			NewValue:      ptrNullString(entry.NewValue),
			PerformedBy:   entry.PerformedBy,
			PerformedByID: entry.PerformedByID,
			CreatedAt:     entry.Timestamp.UTC(),
		})
	}

	if _, err := r.db.NamedExecContext(ctx, insertAuditLogQuery, rows); err != nil {
		return fmt.Errorf("insert audit logs: %w", err)
	}
	return nil
}

// FindByTask returns the history of a task newest first.
func (r *AuditLogRepository) FindByTask(ctx context.Context, taskID string) ([]domain.AuditLogEntry, error) {
	statement := selectAuditLogsQuery + "WHERE l.task_id = ? ORDER BY l.created_at DESC, l.seq DESC"

	var rows []auditLogRow
	if err := r.db.SelectContext(ctx, &rows, statement, taskID); err != nil {
		return nil, fmt.Errorf("select audit logs of task %s: %w", taskID, err)
	}
	return mapAuditLogRows(rows), nil
}

// FindByActorBetween returns the entries written by an actor within the
// inclusive range, oldest first.
func (r *AuditLogRepository) FindByActorBetween(ctx context.Context, actorID string, from, to time.Time) ([]domain.AuditLogEntry, error) {
	statement := selectAuditLogsQuery +
		"WHERE l.performed_by_id = ? AND l.created_at BETWEEN ? AND ? ORDER BY l.created_at ASC, l.seq ASC"

	var rows []auditLogRow
	if err := r.db.SelectContext(ctx, &rows, statement, actorID, from.UTC(), to.UTC()); err != nil {
		return nil, fmt.Errorf("select audit logs of user %s: %w", actorID, err)
	}
	return mapAuditLogRows(rows), nil
}

func mapAuditLogRows(rows []auditLogRow) []domain.AuditLogEntry {
	entries := make([]domain.AuditLogEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.AuditLogEntry{
			ID:            row.ID,
			TaskID:        row.TaskID,
			TaskTitle:     nullStringPtr(row.TaskTitle),
			Action:        domain.AuditAction(row.Action),
			FieldChanged:  nullStringPtr(row.FieldChanged),
			OldValue:      nullStringPtr(row.OldValue),
			NewValue:      nullStringPtr(row.NewValue),
			PerformedBy:   row.PerformedBy,
			PerformedByID: row.PerformedByID,
			Timestamp:     row.CreatedAt.UTC(),
		})
	}
	return entries
}
