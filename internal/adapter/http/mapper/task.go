package mapper

import (
	"time"

	"taskmanager/internal/adapter/http/dto"
	"taskmanager/internal/core/domain"
)

// ToTaskItems maps tasks for a response. now decides deadline urgency and
// must already be in the configured zone.
func ToTaskItems(tasks []domain.Task, now time.Time) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task, now))
	}
	return items
}

func ToTaskItem(task domain.Task, now time.Time) dto.TaskItem {
	item := dto.TaskItem{
		ID:              task.ID,
		Title:           task.Title,
		Description:     task.Description,
		Status:          string(task.Status),
		Priority:        task.Priority,
		DeadlineUrgency: string(domain.Urgency(task.Deadline, now)),
		IsTrashed:       task.IsTrashed,
		SubTasks:        make([]dto.SubTaskItem, 0, len(task.SubTasks)),
		Comments:        make([]dto.CommentItem, 0, len(task.Comments)),
		CreatedBy:       dto.UserRef{ID: task.CreatedByID, Name: task.CreatedByName},
		CreatedAt:       task.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       task.UpdatedAt.UTC().Format(time.RFC3339),
	}

	if task.AssigneeID != nil {
		ref := dto.UserRef{ID: *task.AssigneeID}
		if task.AssigneeName != nil {
			ref.Name = *task.AssigneeName
		}
		item.AssignedTo = &ref
	}

	if task.UpdatedByID != nil {
		ref := dto.UserRef{ID: *task.UpdatedByID}
		if task.UpdatedByName != nil {
			ref.Name = *task.UpdatedByName
		}
		item.UpdatedBy = &ref
	}

	if task.Deadline != nil {
		value := domain.FormatDeadline(task.Deadline)
		item.FinishedBy = &value
	}

	for _, subTask := range task.SubTasks {
		item.SubTasks = append(item.SubTasks, dto.SubTaskItem{
			ID:        subTask.ID,
			Title:     subTask.Title,
			Completed: subTask.Completed,
		})
	}

	for _, comment := range task.Comments {
		item.Comments = append(item.Comments, dto.CommentItem{
			ID:         comment.ID,
			Text:       comment.Text,
			AuthorName: comment.AuthorName,
			AuthorID:   comment.AuthorID,
			CreatedAt:  comment.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return item
}

// ToTaskCounts flattens tab counts into the response map keyed by assignee
// id plus the unassigned, trash and my-tasks buckets.
func ToTaskCounts(counts domain.TabCounts) dto.TaskCounts {
	out := make(dto.TaskCounts, len(counts.ByAssignee)+3)
	for assigneeID, total := range counts.ByAssignee {
		out[assigneeID] = total
	}
	out[string(domain.TaskTabUnassigned)] = counts.Unassigned
	out[string(domain.TaskTabTrash)] = counts.Trash
	out[string(domain.TaskTabMyTasks)] = counts.MyTasks
	return out
}
