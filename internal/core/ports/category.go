package ports

import (
	"context"

	"lifedash/internal/core/domain"
)

type CategoryRepository interface {
	ListCategories(ctx context.Context, userID uint64, kind domain.CategoryKind) ([]domain.Category, error)
	CreateCategory(ctx context.Context, input domain.CreateCategoryInput) (domain.Category, error)
}

type CategoryService interface {
	ListCategories(ctx context.Context, userID uint64, kind domain.CategoryKind) ([]domain.Category, error)
	CreateCategory(ctx context.Context, input domain.CreateCategoryInput) (domain.Category, error)
}
