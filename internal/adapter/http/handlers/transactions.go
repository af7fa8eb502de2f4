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
	"lifedash/internal/core/priority"
	"lifedash/pkg/apierrors"
)

type TransactionHandler struct {
	transactionService ports.TransactionService
	location           *time.Location
	now                Clock
}

func NewTransactionHandler(transactionService ports.TransactionService, location *time.Location) *TransactionHandler {
	if location == nil {
		location = time.UTC
	}
	return &TransactionHandler{transactionService: transactionService, location: location, now: time.Now}
}

func (h *TransactionHandler) WithClock(now Clock) *TransactionHandler {
	h.now = now
	return h
}

func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	filter := priority.TransactionFilter{
		Search:    c.Query("search"),
		Type:      c.Query("type"),
		Category:  c.Query("category"),
		DateRange: c.Query("range"),
	}

	txs, err := h.transactionService.ListTransactions(c.Request.Context(), middleware.GetUserID(c), filter, h.now().In(h.location))
	if err != nil {
		zap.L().Error("failed to list transactions", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailListTransaction)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTransactionItems(txs))
}

func (h *TransactionHandler) Summary(c *gin.Context) {
	summary, err := h.transactionService.Summary(c.Request.Context(), middleware.GetUserID(c), h.now().In(h.location))
	if err != nil {
		zap.L().Error("failed to summarize transactions", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailTransactionSummary)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTransactionSummary(summary))
}

func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTransactionPayload)
		return
	}

	input, err := validation.BuildCreateTransactionInput(middleware.GetUserID(c), req, h.location)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTransactionPayload)
		return
	}

	tx, err := h.transactionService.CreateTransaction(c.Request.Context(), input)
	if err != nil {
		h.respondTransactionError(c, err, 0, "failed to create transaction", apierrors.MsgFailCreateTransaction)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTransactionItem(tx))
}

func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	transactionID, ok := parseID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTransactionID)
		return
	}

	var req dto.UpdateTransactionRequest
	raw, err := bindJSONWithRaw(c, &req)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTransactionPayload)
		return
	}

	input, err := validation.BuildUpdateTransactionInput(req, raw, h.location)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTransactionPayload)
		return
	}

	tx, err := h.transactionService.UpdateTransaction(c.Request.Context(), middleware.GetUserID(c), transactionID, input)
	if err != nil {
		h.respondTransactionError(c, err, transactionID, "failed to update transaction", apierrors.MsgFailUpdateTransaction)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTransactionItem(tx))
}

func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	transactionID, ok := parseID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTransactionID)
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), middleware.GetUserID(c), transactionID); err != nil {
		h.respondTransactionError(c, err, transactionID, "failed to delete transaction", apierrors.MsgFailDeleteTransaction)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TransactionHandler) respondTransactionError(c *gin.Context, err error, transactionID uint64, logMsg, msgKey string) {
	switch {
	case errors.Is(err, domain.ErrTransactionNotFound):
		respondError(c, http.StatusNotFound, apierrors.MsgTransactionNotFound)
	case errors.Is(err, domain.ErrCategoryNotFound):
		respondError(c, http.StatusNotFound, apierrors.MsgCategoryNotFound)
	default:
		zap.L().Error(logMsg, zap.Uint64("transaction_id", transactionID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, msgKey)
	}
}
