package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	detector       *ChangeDetector
	recorder       *AuditRecorder
	now            func() time.Time
}

func NewTaskService(
	taskRepository ports.TaskRepository,
	auditLogRepository ports.AuditLogRepository,
	userRepository ports.UserRepository,
) *TaskService {
	return &TaskService{
		taskRepository: taskRepository,
		detector:       NewChangeDetector(userRepository),
		recorder:       NewAuditRecorder(auditLogRepository),
		now:            time.Now,
	}
}

var _ ports.TaskService = (*TaskService)(nil)

func (s *TaskService) CreateTask(ctx context.Context, actor domain.Actor, input domain.CreateTaskInput) (domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return domain.Task{}, domain.ErrEmptyTitle
	}

	status := input.Status
	if status == "" {
		status = domain.TaskStatusAssigned
	}
	if !status.Valid() {
		return domain.Task{}, domain.ErrInvalidStatus
	}

	now := s.now().UTC()
	updatedBy := actor.ID
	task := domain.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: input.Description,
		Status:      status,
		AssigneeID:  copyString(input.AssigneeID),
		Priority:    input.Priority,
		Deadline:    input.Deadline,
		SubTasks:    withSubTaskIDs(input.SubTasks),
		Comments:    []domain.Comment{},
		CreatedByID: actor.ID,
		UpdatedByID: &updatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	changes, err := s.detector.CreationChanges(ctx, &task)
	if err != nil {
		return domain.Task{}, err
	}

	if err := s.taskRepository.Insert(ctx, task); err != nil {
		return domain.Task{}, fmt.Errorf("insert task: %w", err)
	}

	return s.recordAndReload(ctx, task.ID, actor, changes)
}

func (s *TaskService) GetTask(ctx context.Context, id string) (domain.Task, error) {
	return s.taskRepository.FindByID(ctx, id)
}

// UpdateTask applies a partial update. When nothing changed the stored task
// is returned untouched: no write, no audit entry, no modifier update.
func (s *TaskService) UpdateTask(ctx context.Context, actor domain.Actor, id string, input domain.UpdateTaskInput) (domain.Task, error) {
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return domain.Task{}, domain.ErrEmptyTitle
		}
		input.Title = &title
	}
	if input.Status != nil && !input.Status.Valid() {
		return domain.Task{}, domain.ErrInvalidStatus
	}

	current, err := s.taskRepository.FindByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	changes, next, err := s.detector.Detect(ctx, current, input)
	if err != nil {
		return domain.Task{}, err
	}
	if len(changes) == 0 {
		return current, nil
	}

	s.touch(&next, actor)
	if err := s.taskRepository.Save(ctx, next); err != nil {
		return domain.Task{}, fmt.Errorf("save task: %w", err)
	}

	return s.recordAndReload(ctx, next.ID, actor, changes)
}

func (s *TaskService) ToggleTrash(ctx context.Context, actor domain.Actor, id string) (domain.Task, error) {
	task, err := s.taskRepository.FindByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	task.IsTrashed = !task.IsTrashed
	s.touch(&task, actor)
	if err := s.taskRepository.Save(ctx, task); err != nil {
		return domain.Task{}, fmt.Errorf("save task: %w", err)
	}

	return s.recordAndReload(ctx, task.ID, actor, []domain.Change{TrashChange(task.IsTrashed)})
}

func (s *TaskService) AddComment(ctx context.Context, actor domain.Actor, id string, text string) (domain.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Task{}, domain.ErrEmptyComment
	}

	task, err := s.taskRepository.FindByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	comments := make([]domain.Comment, 0, len(task.Comments)+1)
	comments = append(comments, task.Comments...)
	task.Comments = append(comments, domain.Comment{
		ID:         uuid.NewString(),
		Text:       text,
		AuthorName: actor.Name,
		AuthorID:   actor.ID,
		CreatedAt:  s.now().UTC(),
	})
	s.touch(&task, actor)
	if err := s.taskRepository.Save(ctx, task); err != nil {
		return domain.Task{}, fmt.Errorf("save task: %w", err)
	}

	return s.recordAndReload(ctx, task.ID, actor, []domain.Change{CommentChange(text)})
}

func (s *TaskService) ListTasks(ctx context.Context, actor domain.Actor, filter domain.TaskFilter) ([]domain.Task, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	query := domain.TaskQuery{Status: filter.Status}
	switch filter.Tab {
	case domain.TaskTabTrash:
		query.Trashed = true
	case domain.TaskTabMyTasks:
		actorID := actor.ID
		query.AssigneeID = &actorID
	case domain.TaskTabUnassigned:
		query.Unassigned = true
	default:
		query.AssigneeID = copyString(filter.AssigneeID)
	}

	tasks, err := s.taskRepository.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	domain.SortTasksByDeadline(tasks)
	return tasks, nil
}

func (s *TaskService) CountTasks(ctx context.Context, actor domain.Actor) (domain.TabCounts, error) {
	grouped, err := s.taskRepository.CountByAssignee(ctx)
	if err != nil {
		return domain.TabCounts{}, fmt.Errorf("count tasks by assignee: %w", err)
	}

	trashed, err := s.taskRepository.CountTrashed(ctx)
	if err != nil {
		return domain.TabCounts{}, fmt.Errorf("count trashed tasks: %w", err)
	}

	counts := domain.TabCounts{Trash: trashed, ByAssignee: make(map[string]int, len(grouped))}
	for _, group := range grouped {
		if group.AssigneeID == nil || *group.AssigneeID == "" {
			counts.Unassigned += group.Count
			continue
		}
		counts.ByAssignee[*group.AssigneeID] += group.Count
	}
	counts.MyTasks = counts.ByAssignee[actor.ID]

	return counts, nil
}

func (s *TaskService) touch(task *domain.Task, actor domain.Actor) {
	actorID := actor.ID
	task.UpdatedByID = &actorID
	task.UpdatedAt = s.now().UTC()
}

// recordAndReload writes the audit entries for a mutation that is already
// stored, then reads the task back with its display names populated. An
// audit failure does not undo the task write.
func (s *TaskService) recordAndReload(ctx context.Context, taskID string, actor domain.Actor, changes []domain.Change) (domain.Task, error) {
	if err := s.recorder.Record(ctx, taskID, actor, changes); err != nil {
		zap.L().Error(
			"task mutation committed without audit trail",
			zap.String("task_id", taskID),
			zap.String("actor_id", actor.ID),
			zap.Int("changes", len(changes)),
			zap.Error(err),
		)
		return domain.Task{}, err
	}

	task, err := s.taskRepository.FindByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, fmt.Errorf("reload task: %w", err)
	}
	return task, nil
}
