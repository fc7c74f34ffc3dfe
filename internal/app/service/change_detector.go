package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
)

const (
	unassignedName = "Unassigned"
	unknownName    = "Unknown"
)

// fieldRule inspects one updatable field. It returns nil when the field is
// absent from the input or carries no semantic change, and applies the new
// value to task otherwise.
type fieldRule interface {
	Field() string
	Apply(ctx context.Context, task *domain.Task, input domain.UpdateTaskInput) (*domain.Change, error)
}

// ChangeDetector diffs a partial update against the stored task.
type ChangeDetector struct {
	users ports.UserRepository
	rules []fieldRule
}

func NewChangeDetector(users ports.UserRepository) *ChangeDetector {
	return &ChangeDetector{
		users: users,
		rules: []fieldRule{
			scalarRule{
				field:  domain.FieldTitle,
				action: domain.AuditActionUpdatedTitle,
				values: func(task *domain.Task, in domain.UpdateTaskInput) (any, any, bool) {
					if in.Title == nil {
						return nil, nil, false
					}
					return task.Title, *in.Title, true
				},
				assign: func(task *domain.Task, in domain.UpdateTaskInput) { task.Title = *in.Title },
			},
			scalarRule{
				field:  domain.FieldDescription,
				action: domain.AuditActionUpdatedDescription,
				values: func(task *domain.Task, in domain.UpdateTaskInput) (any, any, bool) {
					if in.Description == nil {
						return nil, nil, false
					}
					return task.Description, *in.Description, true
				},
				assign: func(task *domain.Task, in domain.UpdateTaskInput) { task.Description = *in.Description },
			},
			scalarRule{
				field:  domain.FieldStatus,
				action: domain.AuditActionUpdatedStatus,
				values: func(task *domain.Task, in domain.UpdateTaskInput) (any, any, bool) {
					if in.Status == nil {
						return nil, nil, false
					}
					return task.Status, *in.Status, true
				},
				assign: func(task *domain.Task, in domain.UpdateTaskInput) { task.Status = *in.Status },
			},
			assigneeRule{users: users},
			scalarRule{
				field:  domain.FieldPriority,
				action: domain.AuditActionUpdatedPriority,
				values: func(task *domain.Task, in domain.UpdateTaskInput) (any, any, bool) {
					if in.Priority == nil {
						return nil, nil, false
					}
					return task.Priority, *in.Priority, true
				},
				assign: func(task *domain.Task, in domain.UpdateTaskInput) { task.Priority = *in.Priority },
			},
			deadlineRule{},
			subTasksRule{},
		},
	}
}

// Detect returns the ordered changes and the task as it should be stored.
// The input task is not modified.
func (d *ChangeDetector) Detect(ctx context.Context, current domain.Task, input domain.UpdateTaskInput) ([]domain.Change, domain.Task, error) {
	next := current
	var changes []domain.Change
	for _, rule := range d.rules {
		change, err := rule.Apply(ctx, &next, input)
		if err != nil {
			return nil, current, fmt.Errorf("detect %s change: %w", rule.Field(), err)
		}
		if change != nil {
			changes = append(changes, *change)
		}
	}
	return changes, next, nil
}

// CreationChanges returns the changes recorded for a brand new task and
// fills in the assignee display name on task.
func (d *ChangeDetector) CreationChanges(ctx context.Context, task *domain.Task) ([]domain.Change, error) {
	changes := []domain.Change{{
		Action:   domain.AuditActionCreated,
		NewValue: task.Title,
	}}

	if task.AssigneeID == nil {
		return changes, nil
	}

	name, found, err := resolveUserName(ctx, d.users, *task.AssigneeID)
	if err != nil {
		return nil, fmt.Errorf("resolve assignee: %w", err)
	}
	if found {
		task.AssigneeName = &name
	}

	return append(changes, domain.Change{
		Action:   domain.AuditActionAssigned,
		Field:    domain.FieldAssignedTo,
		NewValue: name,
	}), nil
}

func TrashChange(nowTrashed bool) domain.Change {
	action := domain.AuditActionRestored
	if nowTrashed {
		action = domain.AuditActionTrashed
	}
	return domain.Change{
		Action:   action,
		Field:    domain.FieldIsTrashed,
		OldValue: !nowTrashed,
		NewValue: nowTrashed,
	}
}

func CommentChange(text string) domain.Change {
	return domain.Change{
		Action:   domain.AuditActionAddedComment,
		Field:    domain.FieldComments,
		NewValue: text,
	}
}

// scalarRule compares the string forms of the old and new value.
type scalarRule struct {
	field  string
	action domain.AuditAction
	values func(task *domain.Task, in domain.UpdateTaskInput) (oldValue, newValue any, present bool)
	assign func(task *domain.Task, in domain.UpdateTaskInput)
}

func (r scalarRule) Field() string { return r.field }

func (r scalarRule) Apply(_ context.Context, task *domain.Task, input domain.UpdateTaskInput) (*domain.Change, error) {
	oldValue, newValue, present := r.values(task, input)
	if !present || fmt.Sprint(oldValue) == fmt.Sprint(newValue) {
		return nil, nil
	}
	r.assign(task, input)
	return &domain.Change{Action: r.action, Field: r.field, OldValue: oldValue, NewValue: newValue}, nil
}

// assigneeRule records display names rather than ids.
type assigneeRule struct {
	users ports.UserRepository
}

func (assigneeRule) Field() string { return domain.FieldAssignedTo }

func (r assigneeRule) Apply(ctx context.Context, task *domain.Task, input domain.UpdateTaskInput) (*domain.Change, error) {
	if !input.AssigneeSet {
		return nil, nil
	}
	if normalizeAssignee(task.AssigneeID) == normalizeAssignee(input.AssigneeID) {
		return nil, nil
	}

	oldName := unassignedName
	if task.AssigneeID != nil {
		oldName = unknownName
		if task.AssigneeName != nil {
			oldName = *task.AssigneeName
		}
	}

	newName := unassignedName
	var resolved *string
	if input.AssigneeID != nil {
		name, found, err := resolveUserName(ctx, r.users, *input.AssigneeID)
		if err != nil {
			return nil, err
		}
		newName = name
		if found {
			resolved = &name
		}
	}

	task.AssigneeID = copyString(input.AssigneeID)
	task.AssigneeName = resolved

	return &domain.Change{
		Action:   domain.AuditActionUpdatedAssignment,
		Field:    domain.FieldAssignedTo,
		OldValue: oldName,
		NewValue: newName,
	}, nil
}

// deadlineRule only looks at the calendar date.
type deadlineRule struct{}

func (deadlineRule) Field() string { return domain.FieldFinishedBy }

func (deadlineRule) Apply(_ context.Context, task *domain.Task, input domain.UpdateTaskInput) (*domain.Change, error) {
	if !input.DeadlineSet || domain.SameDeadlineDay(task.Deadline, input.Deadline) {
		return nil, nil
	}

	change := &domain.Change{
		Action:   domain.AuditActionUpdatedFinishedBy,
		Field:    domain.FieldFinishedBy,
		OldValue: domain.FormatDeadline(task.Deadline),
		NewValue: domain.FormatDeadline(input.Deadline),
	}
	if input.Deadline == nil {
		task.Deadline = nil
	} else {
		value := *input.Deadline
		task.Deadline = &value
	}
	return change, nil
}

// subTasksRule replaces the list whenever it is sent, without comparing
// contents, and always reports a change.
type subTasksRule struct{}

func (subTasksRule) Field() string { return domain.FieldSubTasks }

func (subTasksRule) Apply(_ context.Context, task *domain.Task, input domain.UpdateTaskInput) (*domain.Change, error) {
	if !input.SubTasksSet {
		return nil, nil
	}
	task.SubTasks = withSubTaskIDs(input.SubTasks)
	return &domain.Change{Action: domain.AuditActionUpdatedSubTasks, Field: domain.FieldSubTasks}, nil
}

// resolveUserName looks up a display name. A missing user yields
// "Unknown" with found=false; any other lookup failure is returned.
func resolveUserName(ctx context.Context, users ports.UserRepository, id string) (string, bool, error) {
	user, err := users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return unknownName, false, nil
		}
		return "", false, err
	}
	return user.Name, true, nil
}

func normalizeAssignee(id *string) string {
	if id == nil || *id == "" {
		return "none"
	}
	return *id
}

func withSubTaskIDs(subTasks []domain.SubTask) []domain.SubTask {
	out := make([]domain.SubTask, 0, len(subTasks))
	for _, subTask := range subTasks {
		if subTask.ID == "" {
			subTask.ID = uuid.NewString()
		}
		out = append(out, subTask)
	}
	return out
}

func copyString(value *string) *string {
	if value == nil {
		return nil
	}
	out := *value
	return &out
}
