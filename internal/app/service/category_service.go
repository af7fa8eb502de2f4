package service

import (
	"context"
	"strings"

	"lifedash/internal/core/domain"
	"lifedash/internal/core/ports"
)

type CategoryService struct {
	categoryRepository ports.CategoryRepository
}

func NewCategoryService(categoryRepository ports.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepository: categoryRepository}
}

func (s *CategoryService) ListCategories(ctx context.Context, userID uint64, kind domain.CategoryKind) ([]domain.Category, error) {
	return s.categoryRepository.ListCategories(ctx, userID, kind)
}

// CreateCategory rejects a name already used by the user for the same kind,
// ignoring case.
func (s *CategoryService) CreateCategory(ctx context.Context, input domain.CreateCategoryInput) (domain.Category, error) {
	existing, err := s.categoryRepository.ListCategories(ctx, input.UserID, input.Kind)
	if err != nil {
		return domain.Category{}, err
	}
	for _, c := range existing {
		if strings.EqualFold(c.Name, input.Name) {
			return domain.Category{}, domain.ErrCategoryExists
		}
	}
	return s.categoryRepository.CreateCategory(ctx, input)
}

var _ ports.CategoryService = (*CategoryService)(nil)
