package service

import (
	"context"
	"time"

	"lifedash/internal/core/domain"
	"lifedash/internal/core/finance"
	"lifedash/internal/core/ports"
)

type BudgetService struct {
	budgetRepository      ports.BudgetRepository
	transactionRepository ports.TransactionRepository
}

func NewBudgetService(budgetRepository ports.BudgetRepository, transactionRepository ports.TransactionRepository) *BudgetService {
	return &BudgetService{budgetRepository: budgetRepository, transactionRepository: transactionRepository}
}

// ListBudgets returns the budgets of month with what was spent against them.
// An empty month means the month of now, in now's location.
func (s *BudgetService) ListBudgets(ctx context.Context, userID uint64, month string, now time.Time) ([]finance.BudgetUsage, error) {
	if month == "" {
		month = now.Format(domain.MonthLayout)
	} else if _, err := domain.ParseMonth(month, now.Location()); err != nil {
		return nil, err
	}

	budgets, err := s.budgetRepository.ListBudgets(ctx, userID, month)
	if err != nil {
		return nil, err
	}
	if len(budgets) == 0 {
		return []finance.BudgetUsage{}, nil
	}

	txs, err := s.transactionRepository.ListTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}
	return finance.TrackBudgets(budgets, txs, now.Location()), nil
}

func (s *BudgetService) CreateBudget(ctx context.Context, input domain.CreateBudgetInput) (domain.Budget, error) {
	if _, err := domain.ParseMonth(input.Month, time.UTC); err != nil {
		return domain.Budget{}, err
	}
	return s.budgetRepository.CreateBudget(ctx, input)
}

var _ ports.BudgetService = (*BudgetService)(nil)
