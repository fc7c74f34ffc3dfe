package mapper

import (
	"time"

	"taskmanager/internal/adapter/http/dto"
	"taskmanager/internal/core/domain"
)

func ToAuditLogItems(entries []domain.AuditLogEntry) []dto.AuditLogItem {
	items := make([]dto.AuditLogItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, dto.AuditLogItem{
			ID:            entry.ID,
			TaskID:        entry.TaskID,
			TaskTitle:     entry.TaskTitle,
			Action:        string(entry.Action),
			FieldChanged:  entry.FieldChanged,
			OldValue:      entry.OldValue,
			NewValue:      entry.NewValue,
			PerformedBy:   entry.PerformedBy,
			PerformedByID: entry.PerformedByID,
			Timestamp:     entry.Timestamp.UTC().Format(time.RFC3339Nano),
		})
	}
	return items
}

func ToTimelineResponse(timeline domain.Timeline) dto.TimelineResponse {
	entries := make([]dto.TimelineEntryItem, 0, len(timeline.Entries))
	for _, entry := range timeline.Entries {
		item := dto.TimelineEntryItem{
			Time:      entry.Time,
			Label:     entry.Label,
			Type:      string(entry.Kind),
			Timestamp: entry.Timestamp.UTC().Format(time.RFC3339Nano),
		}
		if entry.Status != nil {
			status := string(*entry.Status)
			item.Status = &status
		}
		entries = append(entries, item)
	}

	return dto.TimelineResponse{
		Date:    timeline.Date,
		Entries: entries,
		Logs:    ToAuditLogItems(timeline.Logs),
	}
}
