package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lifedash/internal/adapter/http/dto"
	"lifedash/internal/adapter/http/mapper"
	"lifedash/internal/adapter/http/middleware"
	"lifedash/internal/core/domain"
	"lifedash/internal/core/ports"
	"lifedash/pkg/apierrors"
)

type BudgetHandler struct {
	budgetService ports.BudgetService
	location      *time.Location
	now           Clock
}

func NewBudgetHandler(budgetService ports.BudgetService, location *time.Location) *BudgetHandler {
	if location == nil {
		location = time.UTC
	}
	return &BudgetHandler{budgetService: budgetService, location: location, now: time.Now}
}

func (h *BudgetHandler) WithClock(now Clock) *BudgetHandler {
	h.now = now
	return h
}

// ListBudgets lists the budgets of ?month=YYYY-MM (current month by default)
// with their spending.
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	month := strings.TrimSpace(c.Query("month"))

	usages, err := h.budgetService.ListBudgets(c.Request.Context(), middleware.GetUserID(c), month, h.now().In(h.location))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidMonth) {
			respondError(c, http.StatusBadRequest, apierrors.MsgInvalidBudgetPayload)
			return
		}

		zap.L().Error("failed to list budgets", zap.String("month", month), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailListBudget)
		return
	}

	c.JSON(http.StatusOK, mapper.ToBudgetUsageItems(usages))
}

func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidBudgetPayload)
		return
	}

	limit, err := req.Amount.Decimal()
	if err != nil || !limit.IsPositive() {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidBudgetPayload)
		return
	}

	budget, err := h.budgetService.CreateBudget(c.Request.Context(), domain.CreateBudgetInput{
		UserID:     middleware.GetUserID(c),
		CategoryID: req.CategoryID,
		Month:      req.Month,
		Limit:      limit.Round(2),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidMonth):
			respondError(c, http.StatusBadRequest, apierrors.MsgInvalidBudgetPayload)
		case errors.Is(err, domain.ErrCategoryNotFound):
			respondError(c, http.StatusNotFound, apierrors.MsgCategoryNotFound)
		case errors.Is(err, domain.ErrBudgetExists):
			respondError(c, http.StatusConflict, apierrors.MsgBudgetExists)
		default:
			zap.L().Error("failed to create budget", zap.Error(err))
			respondError(c, http.StatusInternalServerError, apierrors.MsgFailCreateBudget)
		}
		return
	}

	c.JSON(http.StatusCreated, mapper.ToBudgetItem(budget))
}
