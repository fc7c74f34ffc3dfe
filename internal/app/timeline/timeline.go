// Package timeline rebuilds a user's daily activity from the audit log.
//
// Status changes to "Working on it" open a work session for the task; a later
// change to Finished, Waiting for review or Pause for something else closes it
// and reports how long it lasted. Sessions only live for the duration of one
// Build call, so a session opened on a previous day is never seen.
package timeline

import (
	"fmt"
	"time"

	"taskmanager/internal/core/domain"
)

const (
	unknownTaskTitle = "Unknown Task"
	clockLayout      = "3:04 PM"
)

// closingRule describes a status that ends an open work session.
type closingRule struct {
	kind          domain.SessionKind
	durationLabel string
	label         func(title string) string
}

var closingRules = map[domain.TaskStatus]closingRule{
	domain.TaskStatusFinished: {
		kind:          domain.SessionKindFinish,
		durationLabel: "Duration",
		label:         func(title string) string { return fmt.Sprintf(`Finished "%s"`, title) },
	},
	domain.TaskStatusPaused: {
		kind:          domain.SessionKindPause,
		durationLabel: "Active",
		label:         func(title string) string { return fmt.Sprintf(`Paused "%s"`, title) },
	},
	domain.TaskStatusWaitingForReview: {
		kind:          domain.SessionKindReview,
		durationLabel: "Active",
		label:         func(title string) string { return fmt.Sprintf(`Sent "%s" for review`, title) },
	},
}

// Build replays logs, which must be sorted oldest first, into timeline
// entries. Clock times are rendered in loc.
func Build(logs []domain.AuditLogEntry, loc *time.Location) []domain.TimelineEntry {
	if loc == nil {
		loc = time.Local
	}

	sessions := make(map[string]time.Time)
	entries := make([]domain.TimelineEntry, 0, len(logs))
	for _, log := range logs {
		entries = append(entries, replay(log, sessions, loc))
	}
	return entries
}

func replay(log domain.AuditLogEntry, sessions map[string]time.Time, loc *time.Location) domain.TimelineEntry {
	title := unknownTaskTitle
	if log.TaskTitle != nil && *log.TaskTitle != "" {
		title = *log.TaskTitle
	}

	entry := domain.TimelineEntry{
		Time:      log.Timestamp.In(loc).Format(clockLayout),
		Timestamp: log.Timestamp,
	}

	if log.Action != domain.AuditActionUpdatedStatus || log.NewValue == nil || *log.NewValue == "" {
		entry.Kind = domain.SessionKindOther
		entry.Label = fmt.Sprintf(`%s: "%s"`, log.Action, title)
		return entry
	}

	status := domain.TaskStatus(*log.NewValue)
	entry.Status = &status

	if status == domain.TaskStatusWorkingOnIt {
		sessions[log.TaskID] = log.Timestamp
		entry.Kind = domain.SessionKindStart
		entry.Label = fmt.Sprintf(`Started working on "%s"`, title)
		return entry
	}

	rule, closes := closingRules[status]
	if !closes {
		entry.Kind = domain.SessionKindStatus
		entry.Label = fmt.Sprintf(`Changed "%s" status to "%s"`, title, status)
		return entry
	}

	entry.Kind = rule.kind
	entry.Label = rule.label(title)
	if start, open := sessions[log.TaskID]; open {
		delete(sessions, log.TaskID)
		minutes := int(log.Timestamp.Sub(start) / time.Minute)
		entry.Label += fmt.Sprintf(" (%s: %s)", rule.durationLabel, FormatDuration(minutes))
	}
	return entry
}

// FormatDuration renders whole minutes as "less than a minute", "45m", "2h"
// or "2h 5m".
func FormatDuration(minutes int) string {
	if minutes < 1 {
		return "less than a minute"
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}

	hours := minutes / 60
	remaining := minutes % 60
	if remaining > 0 {
		return fmt.Sprintf("%dh %dm", hours, remaining)
	}
	return fmt.Sprintf("%dh", hours)
}

// DayBounds returns the first and last millisecond of the calendar day that
// contains day in loc.
func DayBounds(day time.Time, loc *time.Location) (time.Time, time.Time) {
	local := day.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	end := time.Date(local.Year(), local.Month(), local.Day(), 23, 59, 59, int(999*time.Millisecond), loc)
	return start, end
}
