package service_test

import (
	"context"
	"sync"
	"time"

	"taskmanager/internal/core/domain"
)

type fakeUserRepository struct {
	mu      sync.Mutex
	users   map[string]domain.User
	order   []string
	findErr error
}

func newFakeUserRepository(users ...domain.User) *fakeUserRepository {
	repo := &fakeUserRepository{users: make(map[string]domain.User)}
	for _, user := range users {
		repo.users[user.ID] = user
		repo.order = append(repo.order, user.ID)
	}
	return repo
}

func (r *fakeUserRepository) FindByID(_ context.Context, id string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findErr != nil {
		return domain.User{}, r.findErr
	}
	user, ok := r.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) List(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.users[id])
	}
	return out, nil
}

func (r *fakeUserRepository) ReplaceAll(_ context.Context, users []domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = make(map[string]domain.User, len(users))
	r.order = nil
	for _, user := range users {
		r.users[user.ID] = user
		r.order = append(r.order, user.ID)
	}
	return nil
}

func (r *fakeUserRepository) name(id *string) *string {
	if id == nil {
		return nil
	}
	user, ok := r.users[*id]
	if !ok {
		return nil
	}
	name := user.Name
	return &name
}

// fakeTaskRepository mimics the MySQL adapter: display names are joined in
// on read and List returns newest tasks first.
type fakeTaskRepository struct {
	mu      sync.Mutex
	users   *fakeUserRepository
	tasks   map[string]domain.Task
	order   []string
	inserts int
	saves   int
	saveErr error
}

func newFakeTaskRepository(users *fakeUserRepository) *fakeTaskRepository {
	return &fakeTaskRepository{users: users, tasks: make(map[string]domain.Task)}
}

func (r *fakeTaskRepository) put(task domain.Task) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tasks[task.ID]; !exists {
		r.order = append(r.order, task.ID)
	}
	r.tasks[task.ID] = task
}

func (r *fakeTaskRepository) populate(task domain.Task) domain.Task {
	task.AssigneeName = r.users.name(task.AssigneeID)
	if name := r.users.name(&task.CreatedByID); name != nil {
		task.CreatedByName = *name
	}
	task.UpdatedByName = r.users.name(task.UpdatedByID)
	return task
}

func (r *fakeTaskRepository) FindByID(_ context.Context, id string) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return r.populate(task), nil
}

func (r *fakeTaskRepository) Insert(_ context.Context, task domain.Task) error {
	r.mu.Lock()
	r.inserts++
	r.mu.Unlock()

	r.put(task)
	return nil
}

func (r *fakeTaskRepository) Save(_ context.Context, task domain.Task) error {
	r.mu.Lock()
	if r.saveErr != nil {
		r.mu.Unlock()
		return r.saveErr
	}
	if _, ok := r.tasks[task.ID]; !ok {
		r.mu.Unlock()
		return domain.ErrTaskNotFound
	}
	r.saves++
	r.mu.Unlock()

	r.put(task)
	return nil
}

func (r *fakeTaskRepository) List(_ context.Context, query domain.TaskQuery) ([]domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.Task
	for i := len(r.order) - 1; i >= 0; i-- {
		task := r.tasks[r.order[i]]
		if task.IsTrashed != query.Trashed {
			continue
		}
		if query.Status != nil && task.Status != *query.Status {
			continue
		}
		if query.Unassigned && task.AssigneeID != nil {
			continue
		}
		if query.AssigneeID != nil && (task.AssigneeID == nil || *task.AssigneeID != *query.AssigneeID) {
			continue
		}
		out = append(out, r.populate(task))
	}
	return out, nil
}

func (r *fakeTaskRepository) CountByAssignee(_ context.Context) ([]domain.AssigneeCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[string]int)
	unassigned := 0
	for _, task := range r.tasks {
		if task.IsTrashed {
			continue
		}
		if task.AssigneeID == nil {
			unassigned++
			continue
		}
		counts[*task.AssigneeID]++
	}

	var out []domain.AssigneeCount
	if unassigned > 0 {
		out = append(out, domain.AssigneeCount{Count: unassigned})
	}
	for id, count := range counts {
		assignee := id
		out = append(out, domain.AssigneeCount{AssigneeID: &assignee, Count: count})
	}
	return out, nil
}

func (r *fakeTaskRepository) CountTrashed(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := 0
	for _, task := range r.tasks {
		if task.IsTrashed {
			total++
		}
	}
	return total, nil
}

func (r *fakeTaskRepository) CountAssigned(_ context.Context, assigneeID string, statuses []domain.TaskStatus) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := 0
	for _, task := range r.tasks {
		if task.IsTrashed || task.AssigneeID == nil || *task.AssigneeID != assigneeID {
			continue
		}
		if len(statuses) > 0 && !containsStatus(statuses, task.Status) {
			continue
		}
		total++
	}
	return total, nil
}

func containsStatus(statuses []domain.TaskStatus, status domain.TaskStatus) bool {
	for _, candidate := range statuses {
		if candidate == status {
			return true
		}
	}
	return false
}

type fakeAuditLogRepository struct {
	mu        sync.Mutex
	entries   []domain.AuditLogEntry
	insertErr error
	batches   int

	lastActorID string
	lastFrom    time.Time
	lastTo      time.Time
}

func (r *fakeAuditLogRepository) InsertMany(_ context.Context, entries []domain.AuditLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.insertErr != nil {
		return r.insertErr
	}
	r.batches++
	r.entries = append(r.entries, entries...)
	return nil
}

func (r *fakeAuditLogRepository) FindByTask(_ context.Context, taskID string) ([]domain.AuditLogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.AuditLogEntry
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].TaskID == taskID {
			out = append(out, r.entries[i])
		}
	}
	return out, nil
}

func (r *fakeAuditLogRepository) FindByActorBetween(_ context.Context, actorID string, from, to time.Time) ([]domain.AuditLogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastActorID, r.lastFrom, r.lastTo = actorID, from, to

	var out []domain.AuditLogEntry
	for _, entry := range r.entries {
		if entry.PerformedByID != actorID || entry.Timestamp.Before(from) || entry.Timestamp.After(to) {
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}

func (r *fakeAuditLogRepository) actions(taskID string) []domain.AuditAction {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.AuditAction
	for _, entry := range r.entries {
		if entry.TaskID == taskID {
			out = append(out, entry.Action)
		}
	}
	return out
}

func ptr[T any](value T) *T {
	return &value
}
