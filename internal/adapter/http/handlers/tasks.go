package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lifedash/internal/adapter/http/dto"
	"lifedash/internal/adapter/http/mapper"
	"lifedash/internal/adapter/http/middleware"
	"lifedash/internal/adapter/http/validation"
	"lifedash/internal/core/domain"
	"lifedash/internal/core/ports"
	"lifedash/internal/core/priority"
	"lifedash/pkg/apierrors"
)

const (
	defaultPriorityLimit = 3
	maxPriorityLimit     = 50
)

type TaskHandler struct {
	taskService ports.TaskService
	location    *time.Location
	now         Clock
}

// NewTaskHandler builds a TaskHandler. Day buckets and date-only inputs are
// read in location; nil means UTC.
func NewTaskHandler(taskService ports.TaskService, location *time.Location) *TaskHandler {
	if location == nil {
		location = time.UTC
	}
	return &TaskHandler{taskService: taskService, location: location, now: time.Now}
}

func (h *TaskHandler) WithClock(now Clock) *TaskHandler {
	h.now = now
	return h
}

func (h *TaskHandler) localNow() time.Time {
	return h.now().In(h.location)
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	filter := priority.TaskFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
		DueRange: c.Query("due"),
		MinScore: c.Query("min_score"),
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), middleware.GetUserID(c), filter, h.localNow())
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailListTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToScoredTaskItems(tasks))
}

func (h *TaskHandler) ListPriorities(c *gin.Context) {
	limit := defaultPriorityLimit
	if value := c.Query("limit"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed <= 0 || parsed > maxPriorityLimit {
			respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
			return
		}
		limit = parsed
	}

	tasks, err := h.taskService.ListPriorities(c.Request.Context(), middleware.GetUserID(c), h.localNow(), limit)
	if err != nil {
		zap.L().Error("failed to list priority tasks", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailListPriorities)
		return
	}

	c.JSON(http.StatusOK, mapper.ToScoredTaskItems(tasks))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), middleware.GetUserID(c), taskID)
	if err != nil {
		h.respondTaskError(c, err, taskID, "failed to get task", apierrors.MsgFailGetTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task, h.localNow()))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	raw, err := bindJSONWithRaw(c, &req)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildCreateTaskInput(middleware.GetUserID(c), req, raw, h.location)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			respondError(c, http.StatusNotFound, apierrors.MsgCategoryNotFound)
			return
		}

		zap.L().Error("failed to create task", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailCreateTask)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task, h.localNow()))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}

	var req dto.UpdateTaskRequest
	raw, err := bindJSONWithRaw(c, &req)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw, h.location)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), middleware.GetUserID(c), taskID, input)
	if err != nil {
		h.respondTaskError(c, err, taskID, "failed to update task", apierrors.MsgFailUpdateTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task, h.localNow()))
}

func (h *TaskHandler) ToggleTask(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}

	task, err := h.taskService.ToggleTaskStatus(c.Request.Context(), middleware.GetUserID(c), taskID)
	if err != nil {
		h.respondTaskError(c, err, taskID, "failed to toggle task", apierrors.MsgFailUpdateTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task, h.localNow()))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), middleware.GetUserID(c), taskID); err != nil {
		h.respondTaskError(c, err, taskID, "failed to delete task", apierrors.MsgFailDeleteTask)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) respondTaskError(c *gin.Context, err error, taskID uint64, logMsg, msgKey string) {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		respondError(c, http.StatusNotFound, apierrors.MsgTaskNotFound)
	case errors.Is(err, domain.ErrCategoryNotFound):
		respondError(c, http.StatusNotFound, apierrors.MsgCategoryNotFound)
	default:
		zap.L().Error(logMsg, zap.Uint64("task_id", taskID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, msgKey)
	}
}
