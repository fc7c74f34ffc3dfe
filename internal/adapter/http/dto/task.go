package dto

type UserRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SubTaskItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type CommentItem struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	AuthorName string `json:"author_name"`
	AuthorID   string `json:"author_id"`
	CreatedAt  string `json:"created_at"`
}

type TaskItem struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	Status          string        `json:"status"`
	AssignedTo      *UserRef      `json:"assigned_to"`
	Priority        int64         `json:"priority"`
	FinishedBy      *string       `json:"finished_by"`
	DeadlineUrgency string        `json:"deadline_urgency"`
	IsTrashed       bool          `json:"is_trashed"`
	SubTasks        []SubTaskItem `json:"sub_tasks"`
	Comments        []CommentItem `json:"comments"`
	CreatedBy       UserRef       `json:"created_by"`
	UpdatedBy       *UserRef      `json:"updated_by"`
	CreatedAt       string        `json:"created_at"`
	UpdatedAt       string        `json:"updated_at"`
}

type SubTaskRequest struct {
	ID        *string `json:"id"`
	Title     *string `json:"title"`
	Completed bool    `json:"completed"`
}

// TaskRequest is shared by create and update. Which keys were actually sent
// is read from the raw payload.
type TaskRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Status      *string          `json:"status"`
	AssignedTo  *string          `json:"assigned_to"`
	Priority    *int64           `json:"priority"`
	FinishedBy  *string          `json:"finished_by"`
	SubTasks    []SubTaskRequest `json:"sub_tasks"`
}

type CommentRequest struct {
	Text string `json:"text" binding:"required,max=10000"`
}

type TaskCounts map[string]int
