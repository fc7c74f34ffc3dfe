package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskmanager/internal/adapter/http/dto"
	"taskmanager/internal/adapter/http/mapper"
	"taskmanager/internal/adapter/http/validation"
	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
	"taskmanager/pkg/apierrors"
)

const statusAll = "all"

type TaskHandler struct {
	taskService ports.TaskService
	location    *time.Location
	now         func() time.Time
}

// NewTaskHandler serves the task routes. location is the zone in which
// deadline urgency is computed.
func NewTaskHandler(taskService ports.TaskService, location *time.Location) *TaskHandler {
	if location == nil {
		location = time.Local
	}
	return &TaskHandler{taskService: taskService, location: location, now: time.Now}
}

// WithClock replaces the clock used for deadline urgency.
func (h *TaskHandler) WithClock(now func() time.Time) *TaskHandler {
	h.now = now
	return h
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	filter := domain.TaskFilter{Tab: domain.TaskTab(c.Query("tab"))}
	switch filter.Tab {
	case domain.TaskTabAll, domain.TaskTabMyTasks, domain.TaskTabUnassigned, domain.TaskTabTrash:
	default:
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	if value := c.Query("status"); value != "" && value != statusAll {
		status := domain.TaskStatus(value)
		if !status.Valid() {
			respondError(c, http.StatusBadRequest, apierrors.MsgInvalidStatus)
			return
		}
		filter.Status = &status
	}

	if value := c.Query("assigned_to"); value != "" {
		filter.AssigneeID = &value
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), actor, filter)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailListTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks, h.today()))
}

func (h *TaskHandler) CountTasks(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	counts, err := h.taskService.CountTasks(c.Request.Context(), actor)
	if err != nil {
		zap.L().Error("failed to count tasks", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailCountTasks)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskCounts(counts))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	task, err := h.taskService.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, apierrors.MsgFailGetTask, "failed to get task")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task, h.today()))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	req, raw, err := validation.DecodeTaskRequest(body)
	if err != nil {
		h.fail(c, err, apierrors.MsgInvalidTaskPayload, "invalid task payload")
		return
	}

	input, err := validation.BuildCreateTaskInput(req, raw)
	if err != nil {
		h.fail(c, err, apierrors.MsgInvalidTaskPayload, "invalid task payload")
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), actor, input)
	if err != nil {
		h.fail(c, err, apierrors.MsgFailCreateTask, "failed to create task")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task, h.today()))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	req, raw, err := validation.DecodeTaskRequest(body)
	if err != nil {
		h.fail(c, err, apierrors.MsgInvalidTaskPayload, "invalid task payload")
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		h.fail(c, err, apierrors.MsgInvalidTaskPayload, "invalid task payload")
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), actor, c.Param("id"), input)
	if err != nil {
		h.fail(c, err, apierrors.MsgFailUpdateTask, "failed to update task")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task, h.today()))
}

func (h *TaskHandler) ToggleTrash(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	task, err := h.taskService.ToggleTrash(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.fail(c, err, apierrors.MsgFailTrashTask, "failed to toggle trash")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task, h.today()))
}

func (h *TaskHandler) AddComment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgEmptyComment)
		return
	}

	task, err := h.taskService.AddComment(c.Request.Context(), actor, c.Param("id"), req.Text)
	if err != nil {
		h.fail(c, err, apierrors.MsgFailAddComment, "failed to add comment")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task, h.today()))
}

func (h *TaskHandler) fail(c *gin.Context, err error, fallback string, logMessage string) {
	code, msgKey := errorResponse(err, fallback)
	if code >= http.StatusInternalServerError {
		zap.L().Error(logMessage, zap.String("task_id", c.Param("id")), zap.Error(err))
	}
	respondError(c, code, msgKey)
}

func (h *TaskHandler) today() time.Time {
	return h.now().In(h.location)
}
