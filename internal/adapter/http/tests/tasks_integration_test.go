//go:build integration
// +build integration

package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	authadapter "taskmanager/internal/adapter/auth"
	dbadapter "taskmanager/internal/adapter/db"
	httpadapter "taskmanager/internal/adapter/http"
	"taskmanager/internal/adapter/http/dto"
	"taskmanager/internal/adapter/http/handlers"
	appservice "taskmanager/internal/app/service"
	"taskmanager/internal/core/domain"
	"taskmanager/pkg/apierrors"
)

type TasksIntegrationSuite struct {
	IntegrationSuiteBase
	router      *gin.Engine
	authService *appservice.AuthService
	users       *dbadapter.UserRepository
}

func TestTasksIntegrationSuite(t *testing.T) {
	suite.Run(t, new(TasksIntegrationSuite))
}

func (s *TasksIntegrationSuite) SetupTest() {
	s.ResetDatabase()
	gin.SetMode(gin.TestMode)

	taskRepository := dbadapter.NewTaskRepository(s.DB)
	auditLogRepository := dbadapter.NewAuditLogRepository(s.DB)
	s.users = dbadapter.NewUserRepository(s.DB)

	s.authService = appservice.NewAuthService(
		s.users,
		authadapter.NewBcryptHasher(bcrypt.MinCost),
		authadapter.NewJWTIssuer("integration-secret", time.Hour),
	)
	s.Require().NoError(s.authService.Seed(context.Background(), []domain.SeedUser{
		{Name: "Nemo", Role: domain.RoleAdmin, Password: "nemo-pass"},
		{Name: "Nur", Password: "nur-pass"},
	}))

	router := gin.New()
	httpadapter.RegisterRoutes(router, httpadapter.Handlers{
		Health:   handlers.NewHealthHandler(s.DB, time.UTC),
		Auth:     handlers.NewAuthHandler(s.authService),
		Tasks:    handlers.NewTaskHandler(appservice.NewTaskService(taskRepository, auditLogRepository, s.users), time.UTC),
		AuditLog: handlers.NewAuditLogHandler(appservice.NewAuditService(auditLogRepository, time.UTC)),
		Users:    handlers.NewUserHandler(appservice.NewUserService(s.users, taskRepository)),
	}, s.authService)

	s.router = router
}

func (s *TasksIntegrationSuite) login(password string) (string, dto.UserItem) {
	rec := s.do(http.MethodPost, "/api/auth/login", "", `{"password":"`+password+`"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var got dto.LoginResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	return got.Token, got.User
}

func (s *TasksIntegrationSuite) do(method, target, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *TasksIntegrationSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/api/health", "", "")
	s.Require().Equal(http.StatusOK, rec.Code)
}

func (s *TasksIntegrationSuite) TestLogin_RejectsUnknownPassword() {
	rec := s.do(http.MethodPost, "/api/auth/login", "", `{"password":"nope"}`)
	s.Require().Equal(http.StatusUnauthorized, rec.Code)

	var got apierrors.JsonErr
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Equal(http.StatusUnauthorized, got.ErrDetails.Code)
}

func (s *TasksIntegrationSuite) TestTasks_RequireToken() {
	rec := s.do(http.MethodGet, "/api/tasks", "", "")
	s.Require().Equal(http.StatusUnauthorized, rec.Code)
}

func (s *TasksIntegrationSuite) TestTaskLifecycle_RecordsAuditTrail() {
	token, nemo := s.login("nemo-pass")
	_, nur := s.login("nur-pass")

	rec := s.do(http.MethodPost, "/api/tasks", token, `{"title":"Quarterly report","priority":2,"sub_tasks":[{"title":"collect numbers"}]}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var created dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	s.Require().Equal("Assigned", created.Status)
	s.Require().Nil(created.AssignedTo)
	s.Require().Equal(dto.UserRef{ID: nemo.ID, Name: "Nemo"}, created.CreatedBy)
	s.Require().Len(created.SubTasks, 1)
	s.Require().NotEmpty(created.SubTasks[0].ID)

	body := `{"assigned_to":"` + nur.ID + `","status":"Working on it","finished_by":"2026-04-01"}`
	rec = s.do(http.MethodPut, "/api/tasks/"+created.ID, token, body)
	s.Require().Equal(http.StatusOK, rec.Code)

	var updated dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &updated))
	s.Require().Equal(&dto.UserRef{ID: nur.ID, Name: "Nur"}, updated.AssignedTo)
	s.Require().Equal("2026-04-01", *updated.FinishedBy)
	s.Require().Equal(&dto.UserRef{ID: nemo.ID, Name: "Nemo"}, updated.UpdatedBy)

	rec = s.do(http.MethodPut, "/api/tasks/"+created.ID, token, `{"status":"Working on it","finished_by":"2026-04-01T18:00:00Z"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodPost, "/api/tasks/"+created.ID+"/comments", token, `{"text":"started"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	rec = s.do(http.MethodGet, "/api/audit-logs/task/"+created.ID, token, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var history []dto.AuditLogItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &history))

	actions := make([]string, 0, len(history))
	for _, entry := range history {
		actions = append(actions, entry.Action)
		s.Require().Equal("Nemo", entry.PerformedBy)
	}
	s.Require().Equal([]string{
		"Added Comment",
		"Updated Finished By",
		"Updated Assignment",
		"Updated Status",
		"Created",
	}, actions)
	s.Require().Equal("Unassigned", *history[2].OldValue)
	s.Require().Equal("Nur", *history[2].NewValue)
}

func (s *TasksIntegrationSuite) TestTrashAndCounts() {
	token, nemo := s.login("nemo-pass")

	for _, body := range []string{
		`{"title":"mine","assigned_to":"` + nemo.ID + `"}`,
		`{"title":"nobody's"}`,
		`{"title":"to trash"}`,
	} {
		rec := s.do(http.MethodPost, "/api/tasks", token, body)
		s.Require().Equal(http.StatusCreated, rec.Code)
	}

	rec := s.do(http.MethodGet, "/api/tasks?tab=unassigned", token, "")
	var unassigned []dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &unassigned))
	s.Require().Len(unassigned, 2)

	var toTrash string
	for _, item := range unassigned {
		if item.Title == "to trash" {
			toTrash = item.ID
		}
	}
	rec = s.do(http.MethodPatch, "/api/tasks/"+toTrash+"/trash", token, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/tasks/counts", token, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var counts map[string]int
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &counts))
	s.Require().Equal(1, counts["my-tasks"])
	s.Require().Equal(1, counts["unassigned"])
	s.Require().Equal(1, counts["trash"])
	s.Require().Equal(1, counts[nemo.ID])

	rec = s.do(http.MethodGet, "/api/users/"+nemo.ID+"/stats", token, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var stats dto.UserStatsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &stats))
	s.Require().Equal(1, stats.ActiveTasks)
	s.Require().Equal(0, stats.CompletedTasks)
	s.Require().Equal(1, stats.TotalTasks)
}

func (s *TasksIntegrationSuite) TestUserTimeline_ForToday() {
	token, nemo := s.login("nemo-pass")

	rec := s.do(http.MethodPost, "/api/tasks", token, `{"title":"Deploy"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)
	var created dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))

	rec = s.do(http.MethodPut, "/api/tasks/"+created.ID, token, `{"status":"Working on it"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/audit-logs/user/"+nemo.ID+"/timeline?date="+time.Now().UTC().Format("2006-01-02"), token, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var timeline dto.TimelineResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &timeline))
	s.Require().Len(timeline.Logs, 2)
	s.Require().NotEmpty(timeline.Entries)
	s.Require().Equal(`Started working on "Deploy"`, timeline.Entries[len(timeline.Entries)-1].Label)
}
