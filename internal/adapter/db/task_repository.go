package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
)

const selectTasksQuery = `
SELECT
  t.id, t.title, t.description, t.status, t.assigned_to, a.name AS assigned_to_name,
  t.priority, t.finished_by, t.is_trashed, t.sub_tasks, t.comments,
  t.created_by, c.name AS created_by_name, t.updated_by, u.name AS updated_by_name,
  t.created_at, t.updated_at
FROM tasks t
LEFT JOIN users a ON a.id = t.assigned_to
LEFT JOIN users c ON c.id = t.created_by
LEFT JOIN users u ON u.id = t.updated_by
`

const insertTaskQuery = `
INSERT INTO tasks (
  id, title, description, status, assigned_to, priority, finished_by, is_trashed,
  sub_tasks, comments, created_by, updated_by, created_at, updated_at
) VALUES (
  :id, :title, :description, :status, :assigned_to, :priority, :finished_by, :is_trashed,
  :sub_tasks, :comments, :created_by, :updated_by, :created_at, :updated_at
)
`

const updateTaskQuery = `
UPDATE tasks SET
  title = :title,
  description = :description,
  status = :status,
  assigned_to = :assigned_to,
  priority = :priority,
  finished_by = :finished_by,
  is_trashed = :is_trashed,
  sub_tasks = :sub_tasks,
  comments = :comments,
  updated_by = :updated_by,
  updated_at = :updated_at
WHERE id = :id
`

const countByAssigneeQuery = `
SELECT assigned_to, COUNT(*) AS total
FROM tasks
WHERE is_trashed = FALSE
GROUP BY assigned_to
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID             string         `db:"id"`
	Title          string         `db:"title"`
	Description    string         `db:"description"`
	Status         string         `db:"status"`
	AssignedTo     sql.NullString `db:"assigned_to"`
	AssignedToName sql.NullString `db:"assigned_to_name"`
	Priority       int64          `db:"priority"`
	FinishedBy     sql.NullTime   `db:"finished_by"`
	IsTrashed      bool           `db:"is_trashed"`
	SubTasks       []byte         `db:"sub_tasks"`
	Comments       []byte         `db:"comments"`
	CreatedBy      string         `db:"created_by"`
	CreatedByName  sql.NullString `db:"created_by_name"`
	UpdatedBy      sql.NullString `db:"updated_by"`
	UpdatedByName  sql.NullString `db:"updated_by_name"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

type taskRecord struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Status      string         `db:"status"`
	AssignedTo  sql.NullString `db:"assigned_to"`
	Priority    int64          `db:"priority"`
	FinishedBy  sql.NullTime   `db:"finished_by"`
	IsTrashed   bool           `db:"is_trashed"`
	SubTasks    []byte         `db:"sub_tasks"`
	Comments    []byte         `db:"comments"`
	CreatedBy   string         `db:"created_by"`
	UpdatedBy   sql.NullString `db:"updated_by"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type assigneeCountRow struct {
	AssignedTo sql.NullString `db:"assigned_to"`
	Total      int            `db:"total"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (domain.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row, selectTasksQuery+"WHERE t.id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if err != nil {
		return domain.Task{}, fmt.Errorf("select task %s: %w", id, err)
	}

	return mapTaskRowToDomainTask(row)
}

func (r *TaskRepository) Insert(ctx context.Context, task domain.Task) error {
	record, err := mapDomainTaskToRecord(task)
	if err != nil {
		return err
	}

	if _, err := r.db.NamedExecContext(ctx, insertTaskQuery, record); err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (r *TaskRepository) Save(ctx context.Context, task domain.Task) error {
	record, err := mapDomainTaskToRecord(task)
	if err != nil {
		return err
	}

	if _, err := r.db.NamedExecContext(ctx, updateTaskQuery, record); err != nil {
		return fmt.Errorf("update task %s: %w", task.ID, err)
	}
	return nil
}

// List returns matching tasks newest first.
func (r *TaskRepository) List(ctx context.Context, query domain.TaskQuery) ([]domain.Task, error) {
	conditions := []string{"t.is_trashed = ?"}
	args := []any{query.Trashed}

	if query.Status != nil {
		conditions = append(conditions, "t.status = ?")
		args = append(args, string(*query.Status))
	}
	if query.Unassigned {
		conditions = append(conditions, "t.assigned_to IS NULL")
	} else if query.AssigneeID != nil {
		conditions = append(conditions, "t.assigned_to = ?")
		args = append(args, *query.AssigneeID)
	}

	statement := selectTasksQuery + "WHERE " + strings.Join(conditions, " AND ") + " ORDER BY t.created_at DESC, t.id"

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, statement, args...); err != nil {
		return nil, fmt.Errorf("select tasks: %w", err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task, err := mapTaskRowToDomainTask(row)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

func (r *TaskRepository) CountByAssignee(ctx context.Context) ([]domain.AssigneeCount, error) {
	var rows []assigneeCountRow
	if err := r.db.SelectContext(ctx, &rows, countByAssigneeQuery); err != nil {
		return nil, fmt.Errorf("count tasks by assignee: %w", err)
	}

	counts := make([]domain.AssigneeCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, domain.AssigneeCount{
			AssigneeID: nullStringPtr(row.AssignedTo),
			Count:      row.Total,
		})
	}
	return counts, nil
}

func (r *TaskRepository) CountTrashed(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM tasks WHERE is_trashed = TRUE"); err != nil {
		return 0, fmt.Errorf("count trashed tasks: %w", err)
	}
	return total, nil
}

// CountAssigned counts non-trashed tasks of an assignee. An empty statuses
// slice counts every status.
func (r *TaskRepository) CountAssigned(ctx context.Context, assigneeID string, statuses []domain.TaskStatus) (int, error) {
	statement := "SELECT COUNT(*) FROM tasks WHERE is_trashed = FALSE AND assigned_to = ?"
	args := []any{assigneeID}

	if len(statuses) > 0 {
		values := make([]string, 0, len(statuses))
		for _, status := range statuses {
			values = append(values, string(status))
		}

		var err error
		statement, args, err = sqlx.In(statement+" AND status IN (?)", assigneeID, values)
		if err != nil {
			return 0, fmt.Errorf("build status filter: %w", err)
		}
		statement = r.db.Rebind(statement)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, statement, args...); err != nil {
		return 0, fmt.Errorf("count tasks of %s: %w", assigneeID, err)
	}
	return total, nil
}

func mapTaskRowToDomainTask(row taskRow) (domain.Task, error) {
	task := domain.Task{
		ID:            row.ID,
		Title:         row.Title,
		Description:   row.Description,
		Status:        domain.TaskStatus(row.Status),
		AssigneeID:    nullStringPtr(row.AssignedTo),
		Priority:      row.Priority,
		IsTrashed:     row.IsTrashed,
		CreatedByID:   row.CreatedBy,
		CreatedByName: row.CreatedByName.String,
		UpdatedByID:   nullStringPtr(row.UpdatedBy),
		CreatedAt:     row.CreatedAt.UTC(),
		UpdatedAt:     row.UpdatedAt.UTC(),
	}

	if task.AssigneeID != nil {
		task.AssigneeName = nullStringPtr(row.AssignedToName)
	}
	if task.UpdatedByID != nil {
		task.UpdatedByName = nullStringPtr(row.UpdatedByName)
	}

	if row.FinishedBy.Valid {
		value := row.FinishedBy.Time.UTC()
		task.Deadline = &value
	}

	task.SubTasks = []domain.SubTask{}
	if len(row.SubTasks) > 0 {
		if err := json.Unmarshal(row.SubTasks, &task.SubTasks); err != nil {
			return domain.Task{}, fmt.Errorf("decode sub-tasks of %s: %w", row.ID, err)
		}
	}

	task.Comments = []domain.Comment{}
	if len(row.Comments) > 0 {
		if err := json.Unmarshal(row.Comments, &task.Comments); err != nil {
			return domain.Task{}, fmt.Errorf("decode comments of %s: %w", row.ID, err)
		}
	}

	return task, nil
}

func mapDomainTaskToRecord(task domain.Task) (taskRecord, error) {
	subTasks := task.SubTasks
	if subTasks == nil {
		subTasks = []domain.SubTask{}
	}
	subTasksJSON, err := json.Marshal(subTasks)
	if err != nil {
		return taskRecord{}, fmt.Errorf("encode sub-tasks: %w", err)
	}

	comments := task.Comments
	if comments == nil {
		comments = []domain.Comment{}
	}
	commentsJSON, err := json.Marshal(comments)
	if err != nil {
		return taskRecord{}, fmt.Errorf("encode comments: %w", err)
	}

	record := taskRecord{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		AssignedTo:  ptrNullString(task.AssigneeID),
		Priority:    task.Priority,
		IsTrashed:   task.IsTrashed,
		SubTasks:    subTasksJSON,
		Comments:    commentsJSON,
		CreatedBy:   task.CreatedByID,
		UpdatedBy:   ptrNullString(task.UpdatedByID),
		CreatedAt:   task.CreatedAt.UTC(),
		UpdatedAt:   task.UpdatedAt.UTC(),
	}

	if task.Deadline != nil {
		record.FinishedBy = sql.NullTime{Time: task.Deadline.UTC(), Valid: true}
	}

	return record, nil
}

func nullStringPtr(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	s := value.String
	return &s
}

func ptrNullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}
