package dto

type AuditLogItem struct {
	ID            string  `json:"id"`
	TaskID        string  `json:"task_id"`
	TaskTitle     *string `json:"task_title,omitempty"`
	Action        string  `json:"action"`
	FieldChanged  *string `json:"field_changed"`
	OldValue      *string `json:"old_value"`
	NewValue      *string `json:"new_value"`
	PerformedBy   string  `json:"performed_by"`
	PerformedByID string  `json:"performed_by_id"`
	Timestamp     string  `json:"timestamp"`
}

type TimelineEntryItem struct {
	Time      string  `json:"time"`
	Label     string  `json:"label"`
	Type      string  `json:"type"`
	Status    *string `json:"status,omitempty"`
	Timestamp string  `json:"timestamp"`
}

type TimelineResponse struct {
	Date    string              `json:"date"`
	Entries []TimelineEntryItem `json:"entries"`
	Logs    []AuditLogItem      `json:"logs"`
}
