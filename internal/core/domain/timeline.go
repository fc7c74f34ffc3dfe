package domain

import "time"

type SessionKind string

const (
	SessionKindStart  SessionKind = "start"
	SessionKindFinish SessionKind = "finish"
	SessionKindPause  SessionKind = "pause"
	SessionKindReview SessionKind = "review"
	SessionKindStatus SessionKind = "status"
	SessionKindOther  SessionKind = "other"
)

type TimelineEntry struct {
	Time      string
	Label     string
	Kind      SessionKind
	Status    *TaskStatus
	Timestamp time.Time
}

// Timeline is one user's activity for one local calendar day.
type Timeline struct {
	Date    string
	Entries []TimelineEntry
	Logs    []AuditLogEntry
}
