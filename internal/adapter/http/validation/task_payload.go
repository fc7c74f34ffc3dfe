package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"taskmanager/internal/adapter/http/dto"
	"taskmanager/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

// DecodeTaskRequest decodes the body twice: once into the typed request and
// once into raw fields, so that an explicit null can be told apart from an
// omitted key.
func DecodeTaskRequest(body []byte) (dto.TaskRequest, map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return dto.TaskRequest{}, nil, ErrInvalidTaskPayload
	}

	var req dto.TaskRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return dto.TaskRequest{}, nil, ErrInvalidTaskPayload
	}

	return req, raw, nil
}

func BuildCreateTaskInput(req dto.TaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	for _, field := range []string{"title", "status", "priority"} {
		if isExplicitNull(raw, field) {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
	}

	var title string
	if req.Title != nil {
		title = strings.TrimSpace(*req.Title)
	}
	if title == "" {
		return domain.CreateTaskInput{}, domain.ErrEmptyTitle
	}

	status := domain.TaskStatusAssigned
	if req.Status != nil {
		status = domain.TaskStatus(*req.Status)
		if !status.Valid() {
			return domain.CreateTaskInput{}, domain.ErrInvalidStatus
		}
	}

	var priority int64
	if req.Priority != nil {
		priority = *req.Priority
	}

	var description string
	if req.Description != nil {
		description = *req.Description
	}

	deadline, err := parseDeadline(req.FinishedBy)
	if err != nil {
		return domain.CreateTaskInput{}, err
	}

	subTasks, err := buildSubTasks(req.SubTasks)
	if err != nil {
		return domain.CreateTaskInput{}, err
	}

	return domain.CreateTaskInput{
		Title:       title,
		Description: description,
		Status:      status,
		AssigneeID:  normalizeAssignee(req.AssignedTo),
		Priority:    priority,
		Deadline:    deadline,
		SubTasks:    subTasks,
	}, nil
}

// BuildUpdateTaskInput keeps only the keys present in the payload. An empty
// object is valid and produces an update without changes.
func BuildUpdateTaskInput(req dto.TaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	for _, field := range []string{"title", "status", "priority"} {
		if isExplicitNull(raw, field) {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
	}

	var input domain.UpdateTaskInput

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return domain.UpdateTaskInput{}, domain.ErrEmptyTitle
		}
		input.Title = &title
	}

	if hasJSONField(raw, "description") {
		description := ""
		if req.Description != nil {
			description = *req.Description
		}
		input.Description = &description
	}

	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		if !status.Valid() {
			return domain.UpdateTaskInput{}, domain.ErrInvalidStatus
		}
		input.Status = &status
	}

	input.Priority = req.Priority

	if hasJSONField(raw, "assigned_to") {
		input.AssigneeSet = true
		input.AssigneeID = normalizeAssignee(req.AssignedTo)
	}

	if hasJSONField(raw, "finished_by") {
		deadline, err := parseDeadline(req.FinishedBy)
		if err != nil {
			return domain.UpdateTaskInput{}, err
		}
		input.DeadlineSet = true
		input.Deadline = deadline
	}

	if hasJSONField(raw, "sub_tasks") {
		subTasks, err := buildSubTasks(req.SubTasks)
		if err != nil {
			return domain.UpdateTaskInput{}, err
		}
		input.SubTasksSet = true
		input.SubTasks = subTasks
	}

	return input, nil
}

// parseDeadline accepts YYYY-MM-DD or RFC3339 and keeps the calendar date as
// written, stored as UTC midnight. Empty means no deadline.
func parseDeadline(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	text := strings.TrimSpace(*value)

	parsed, err := time.Parse(domain.DateLayout, text)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, text)
		if err != nil {
			return nil, domain.ErrInvalidDate
		}
	}

	deadline := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
	return &deadline, nil
}

func buildSubTasks(items []dto.SubTaskRequest) ([]domain.SubTask, error) {
	subTasks := make([]domain.SubTask, 0, len(items))
	for _, item := range items {
		if item.Title == nil || strings.TrimSpace(*item.Title) == "" {
			return nil, ErrInvalidTaskPayload
		}
		subTask := domain.SubTask{Title: strings.TrimSpace(*item.Title), Completed: item.Completed}
		if item.ID != nil {
			subTask.ID = *item.ID
		}
		subTasks = append(subTasks, subTask)
	}
	return subTasks, nil
}

func normalizeAssignee(value *string) *string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}
	id := strings.TrimSpace(*value)
	return &id
}

func isExplicitNull(raw map[string]json.RawMessage, field string) bool {
	return hasJSONField(raw, field) && isJSONNull(raw[field])
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
