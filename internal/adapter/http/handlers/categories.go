package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lifedash/internal/adapter/http/dto"
	"lifedash/internal/adapter/http/mapper"
	"lifedash/internal/adapter/http/middleware"
	"lifedash/internal/core/domain"
	"lifedash/internal/core/ports"
	"lifedash/pkg/apierrors"
)

type CategoryHandler struct {
	categoryService ports.CategoryService
}

func NewCategoryHandler(categoryService ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// ListCategories lists the categories of ?kind=task|transaction (task by default).
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	kind := domain.CategoryKind(c.DefaultQuery("kind", string(domain.CategoryKindTask)))
	if !kind.Valid() {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload)
		return
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context(), middleware.GetUserID(c), kind)
	if err != nil {
		zap.L().Error("failed to list categories", zap.String("kind", string(kind)), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailListCategory)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategories(categories))
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), domain.CreateCategoryInput{
		UserID: middleware.GetUserID(c),
		Name:   name,
		Kind:   domain.CategoryKind(req.Kind),
	})
	if err != nil {
		if errors.Is(err, domain.ErrCategoryExists) {
			respondError(c, http.StatusConflict, apierrors.MsgCategoryExists)
			return
		}

		zap.L().Error("failed to create category", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailCreateCategory)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCategory(&category))
}
