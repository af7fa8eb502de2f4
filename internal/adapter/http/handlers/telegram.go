package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lifedash/internal/adapter/http/dto"
	"lifedash/internal/adapter/http/middleware"
	"lifedash/internal/core/domain"
	"lifedash/internal/core/ports"
	"lifedash/pkg/apierrors"
)

type TelegramHandler struct {
	telegramService ports.TelegramService
}

func NewTelegramHandler(telegramService ports.TelegramService) *TelegramHandler {
	return &TelegramHandler{telegramService: telegramService}
}

func (h *TelegramHandler) Save(c *gin.Context) {
	var req dto.TelegramSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.ChatID) == "" {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTelegramData)
		return
	}

	if err := h.telegramService.SaveChatID(c.Request.Context(), middleware.GetUserID(c), req.ChatID); err != nil {
		zap.L().Error("failed to save telegram chat", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailTelegramSave)
		return
	}

	respondMessage(c, http.StatusOK, apierrors.MsgTelegramSaved)
}

func (h *TelegramHandler) Status(c *gin.Context) {
	status, err := h.telegramService.Status(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		zap.L().Error("failed to read telegram status", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailTelegramStatus)
		return
	}

	c.JSON(http.StatusOK, dto.TelegramStatusResponse{Linked: status.Linked, ChatID: status.ChatID})
}

func (h *TelegramHandler) Disconnect(c *gin.Context) {
	if err := h.telegramService.Disconnect(c.Request.Context(), middleware.GetUserID(c)); err != nil {
		zap.L().Error("failed to disconnect telegram", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailTelegramRemove)
		return
	}

	respondMessage(c, http.StatusOK, apierrors.MsgTelegramRemoved)
}

func (h *TelegramHandler) SendTest(c *gin.Context) {
	if err := h.telegramService.SendTest(c.Request.Context(), middleware.GetUserID(c)); err != nil {
		if errors.Is(err, domain.ErrTelegramNotLinked) {
			respondError(c, http.StatusBadRequest, apierrors.MsgTelegramNotLinked)
			return
		}

		zap.L().Error("failed to send telegram test message", zap.Error(err))
		respondError(c, http.StatusBadGateway, apierrors.MsgFailTelegramSend)
		return
	}

	respondMessage(c, http.StatusOK, apierrors.MsgTelegramTestSent)
}
