package domain

import "time"

type AuditAction string

const (
	AuditActionCreated            AuditAction = "Created"
	AuditActionAssigned           AuditAction = "Assigned"
	AuditActionUpdatedTitle       AuditAction = "Updated Title"
	AuditActionUpdatedDescription AuditAction = "Updated Description"
	AuditActionUpdatedStatus      AuditAction = "Updated Status"
	AuditActionUpdatedPriority    AuditAction = "Updated Priority"
	AuditActionUpdatedAssignment  AuditAction = "Updated Assignment"
	AuditActionUpdatedSubTasks    AuditAction = "Updated Sub-tasks"
	AuditActionUpdatedFinishedBy  AuditAction = "Updated Finished By"
	AuditActionTrashed            AuditAction = "Trashed"
	AuditActionRestored           AuditAction = "Restored"
	AuditActionAddedComment       AuditAction = "Added Comment"
)

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldStatus      = "status"
	FieldAssignedTo  = "assigned_to"
	FieldPriority    = "priority"
	FieldFinishedBy  = "finished_by"
	FieldSubTasks    = "sub_tasks"
	FieldIsTrashed   = "is_trashed"
	FieldComments    = "comments"
)

// Change is one semantic modification of a task. Old and new values are kept
// raw; they are turned into strings only when the audit entry is written.
type Change struct {
	Action   AuditAction
	Field    string
	OldValue any
	NewValue any
}

// AuditLogEntry is immutable once stored. ActorName is a snapshot taken at
// write time and is never re-joined against the users table.
type AuditLogEntry struct {
	ID            string
	TaskID        string
	TaskTitle     *string
	Action        AuditAction
	FieldChanged  *string
	OldValue      *string
	NewValue      *string
	PerformedBy   string
	PerformedByID string
	Timestamp     time.Time
}
