package ports

import (
	"context"
	"time"

	"lifedash/internal/core/domain"
	"lifedash/internal/core/finance"
)

type BudgetRepository interface {
	ListBudgets(ctx context.Context, userID uint64, month string) ([]domain.Budget, error)
	CreateBudget(ctx context.Context, input domain.CreateBudgetInput) (domain.Budget, error)
}

type BudgetService interface {
	ListBudgets(ctx context.Context, userID uint64, month string, now time.Time) ([]finance.BudgetUsage, error)
	CreateBudget(ctx context.Context, input domain.CreateBudgetInput) (domain.Budget, error)
}
