package mapper

import (
	"time"

	"lifedash/internal/adapter/http/dto"
	"lifedash/internal/core/domain"
	"lifedash/internal/core/finance"
)

func ToBudgetItem(budget domain.Budget) dto.BudgetItem {
	return dto.BudgetItem{
		ID:        budget.ID,
		Category:  *ToCategory(&budget.Category),
		Month:     budget.Month,
		Amount:    budget.Limit.StringFixed(2),
		CreatedAt: budget.CreatedAt.Format(time.RFC3339),
	}
}

func ToBudgetUsageItems(usages []finance.BudgetUsage) []dto.BudgetUsageItem {
	items := make([]dto.BudgetUsageItem, 0, len(usages))
	for _, usage := range usages {
		items = append(items, dto.BudgetUsageItem{
			BudgetItem: ToBudgetItem(usage.Budget),
			Spent:      usage.Spent.StringFixed(2),
			Remaining:  usage.Remaining.StringFixed(2),
			Exceeded:   usage.Exceeded(),
		})
	}
	return items
}
