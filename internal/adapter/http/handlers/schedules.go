package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lifedash/internal/adapter/http/dto"
	"lifedash/internal/adapter/http/mapper"
	"lifedash/internal/adapter/http/middleware"
	"lifedash/internal/adapter/http/validation"
	"lifedash/internal/core/domain"
	"lifedash/internal/core/ports"
	"lifedash/pkg/apierrors"
)

type ScheduleHandler struct {
	scheduleService ports.ScheduleService
	now             Clock
}

func NewScheduleHandler(scheduleService ports.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService, now: time.Now}
}

func (h *ScheduleHandler) WithClock(now Clock) *ScheduleHandler {
	h.now = now
	return h
}

func (h *ScheduleHandler) ListSchedules(c *gin.Context) {
	schedules, err := h.scheduleService.ListSchedules(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		zap.L().Error("failed to list schedules", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailListSchedule)
		return
	}

	c.JSON(http.StatusOK, mapper.ToScheduleItems(schedules))
}

func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var req dto.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidSchedulePayload)
		return
	}

	input, err := validation.BuildCreateScheduleInput(middleware.GetUserID(c), req)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidSchedulePayload)
		return
	}

	schedule, err := h.scheduleService.CreateSchedule(c.Request.Context(), input)
	if err != nil {
		zap.L().Error("failed to create schedule", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailCreateSchedule)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToScheduleItem(schedule))
}

func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	scheduleID, ok := parseID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidScheduleID)
		return
	}

	var req dto.UpdateScheduleRequest
	raw, err := bindJSONWithRaw(c, &req)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidSchedulePayload)
		return
	}

	input, err := validation.BuildUpdateScheduleInput(req, raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidSchedulePayload)
		return
	}

	schedule, err := h.scheduleService.UpdateSchedule(c.Request.Context(), middleware.GetUserID(c), scheduleID, input)
	if err != nil {
		h.respondScheduleError(c, err, scheduleID, "failed to update schedule", apierrors.MsgFailUpdateSchedule)
		return
	}

	c.JSON(http.StatusOK, mapper.ToScheduleItem(schedule))
}

func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	scheduleID, ok := parseID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidScheduleID)
		return
	}

	if err := h.scheduleService.DeleteSchedule(c.Request.Context(), middleware.GetUserID(c), scheduleID); err != nil {
		h.respondScheduleError(c, err, scheduleID, "failed to delete schedule", apierrors.MsgFailDeleteSchedule)
		return
	}

	c.Status(http.StatusNoContent)
}

// SendReminders is the cron entry point for class reminders.
func (h *ScheduleHandler) SendReminders(c *gin.Context) {
	sent, err := h.scheduleService.SendDueReminders(c.Request.Context(), h.now())
	if err != nil {
		zap.L().Error("failed to send class reminders", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailSendReminders)
		return
	}

	ids := make([]uint64, 0, len(sent))
	for _, s := range sent {
		ids = append(ids, s.ID)
	}
	c.JSON(http.StatusOK, dto.SendRemindersResponse{SentTo: ids, Count: len(ids)})
}

func (h *ScheduleHandler) respondScheduleError(c *gin.Context, err error, scheduleID uint64, logMsg, msgKey string) {
	if errors.Is(err, domain.ErrScheduleNotFound) {
		respondError(c, http.StatusNotFound, apierrors.MsgScheduleNotFound)
		return
	}

	zap.L().Error(logMsg, zap.Uint64("schedule_id", scheduleID), zap.Error(err))
	respondError(c, http.StatusInternalServerError, msgKey)
}
