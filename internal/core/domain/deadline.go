package domain

import (
	"sort"
	"time"
)

const DateLayout = "2006-01-02"

// NoDeadline is recorded in audit entries when a task has no deadline.
const NoDeadline = "None"

type DeadlineUrgency string

const (
	UrgencyNone     DeadlineUrgency = "none"
	UrgencyOverdue  DeadlineUrgency = "overdue"
	UrgencyToday    DeadlineUrgency = "today"
	UrgencySoon     DeadlineUrgency = "soon"
	UrgencyUpcoming DeadlineUrgency = "upcoming"
)

const soonWindowDays = 2

// FormatDeadline renders a deadline as its calendar date, or NoDeadline.
// Deadlines are stored as instants; only the UTC date part is significant.
func FormatDeadline(deadline *time.Time) string {
	if deadline == nil {
		return NoDeadline
	}
	return deadline.UTC().Format(DateLayout)
}

// SameDeadlineDay reports whether two optional deadlines fall on the same
// calendar date, ignoring time of day.
func SameDeadlineDay(a, b *time.Time) bool {
	return FormatDeadline(a) == FormatDeadline(b)
}

// SortTasksByDeadline orders tasks with a deadline first, earliest deadline
// first, then tasks without one. Ties go to the higher priority. The sort is
// stable so equal tasks keep the store order.
func SortTasksByDeadline(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		switch {
		case a.Deadline != nil && b.Deadline == nil:
			return true
		case a.Deadline == nil && b.Deadline != nil:
			return false
		case a.Deadline != nil && b.Deadline != nil && !civilDate(*a.Deadline).Equal(civilDate(*b.Deadline)):
			return civilDate(*a.Deadline).Before(civilDate(*b.Deadline))
		}
		return a.Priority > b.Priority
	})
}

// Urgency buckets a deadline relative to the calendar day of now.
func Urgency(deadline *time.Time, now time.Time) DeadlineUrgency {
	if deadline == nil {
		return UrgencyNone
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(civilDate(*deadline).Sub(today).Hours() / 24)

	switch {
	case days < 0:
		return UrgencyOverdue
	case days == 0:
		return UrgencyToday
	case days <= soonWindowDays:
		return UrgencySoon
	default:
		return UrgencyUpcoming
	}
}

func civilDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
