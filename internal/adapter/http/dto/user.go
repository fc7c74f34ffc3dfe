package dto

type UserItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type UserStatsResponse struct {
	User           UserItem `json:"user"`
	CompletedTasks int      `json:"completedTasks"`
	ActiveTasks    int      `json:"activeTasks"`
	TotalTasks     int      `json:"totalTasks"`
}

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  UserItem `json:"user"`
}
