package mapper

import (
	"taskmanager/internal/adapter/http/dto"
	"taskmanager/internal/core/domain"
)

func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{ID: user.ID, Name: user.Name, Role: string(user.Role)}
}

func ToUserItems(users []domain.User) []dto.UserItem {
	items := make([]dto.UserItem, 0, len(users))
	for _, user := range users {
		items = append(items, ToUserItem(user))
	}
	return items
}

func ToUserStatsResponse(user domain.User, stats domain.UserStats) dto.UserStatsResponse {
	return dto.UserStatsResponse{
		User:           ToUserItem(user),
		CompletedTasks: stats.CompletedTasks,
		ActiveTasks:    stats.ActiveTasks,
		TotalTasks:     stats.TotalTasks,
	}
}
