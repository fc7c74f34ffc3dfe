package domain

type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

type User struct {
	ID           string
	Name         string
	Role         Role
	PasswordHash string
}

// Actor is the authenticated user performing a request.
type Actor struct {
	ID   string
	Name string
	Role Role
}

type UserStats struct {
	CompletedTasks int
	ActiveTasks    int
	TotalTasks     int
}

type SeedUser struct {
	Name     string
	Role     Role
	Password string
}
