package domain

import "time"

type TaskStatus string

const (
	TaskStatusAssigned         TaskStatus = "Assigned"
	TaskStatusWorkingOnIt      TaskStatus = "Working on it"
	TaskStatusWaitingForReview TaskStatus = "Waiting for review"
	TaskStatusPaused           TaskStatus = "Pause for something else"
	TaskStatusFinished         TaskStatus = "Finished"
	TaskStatusCancelled        TaskStatus = "Cancelled"
)

// TaskStatuses lists the statuses in display order.
var TaskStatuses = []TaskStatus{
	TaskStatusAssigned,
	TaskStatusWorkingOnIt,
	TaskStatusWaitingForReview,
	TaskStatusPaused,
	TaskStatusFinished,
	TaskStatusCancelled,
}

// ActiveTaskStatuses are the statuses counted as open work.
var ActiveTaskStatuses = []TaskStatus{
	TaskStatusAssigned,
	TaskStatusWorkingOnIt,
	TaskStatusWaitingForReview,
	TaskStatusPaused,
}

func (s TaskStatus) Valid() bool {
	for _, status := range TaskStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type SubTask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type Comment struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"author_name"`
	AuthorID   string    `json:"author_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type Task struct {
	ID            string
	Title         string
	Description   string
	Status        TaskStatus
	AssigneeID    *string
	AssigneeName  *string
	Priority      int64
	Deadline      *time.Time
	IsTrashed     bool
	SubTasks      []SubTask
	Comments      []Comment
	CreatedByID   string
	CreatedByName string
	UpdatedByID   *string
	UpdatedByName *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type CreateTaskInput struct {
	Title       string
	Description string
	Status      TaskStatus
	AssigneeID  *string
	Priority    int64
	Deadline    *time.Time
	SubTasks    []SubTask
}

// UpdateTaskInput is a partial update. Pointer fields are nil when absent;
// nullable fields carry a companion Set flag so that an explicit null can be
// told apart from an omitted key.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *TaskStatus
	AssigneeID  *string
	AssigneeSet bool
	Priority    *int64
	Deadline    *time.Time
	DeadlineSet bool
	SubTasks    []SubTask
	SubTasksSet bool
}

type TaskTab string

const (
	TaskTabAll        TaskTab = ""
	TaskTabMyTasks    TaskTab = "my-tasks"
	TaskTabUnassigned TaskTab = "unassigned"
	TaskTabTrash      TaskTab = "trash"
)

type TaskFilter struct {
	Tab        TaskTab
	Status     *TaskStatus
	AssigneeID *string
}

// TaskQuery is the store-level form of a TaskFilter once the tab has been
// resolved against the acting user.
type TaskQuery struct {
	Trashed    bool
	Status     *TaskStatus
	AssigneeID *string
	Unassigned bool
}

type AssigneeCount struct {
	AssigneeID *string
	Count      int
}

type TabCounts struct {
	MyTasks    int
	Unassigned int
	Trash      int
	ByAssignee map[string]int
}
