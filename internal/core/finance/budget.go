package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"lifedash/internal/core/domain"
)

type BudgetUsage struct {
	Budget    domain.Budget
	Spent     decimal.Decimal
	Remaining decimal.Decimal
}

// Exceeded reports whether spending went past the limit.
func (u BudgetUsage) Exceeded() bool {
	return u.Spent.GreaterThan(u.Budget.Limit)
}

// TrackBudgets adds up the expenses each budget covers: same category and
// dated inside the budget month, with months read in loc.
func TrackBudgets(budgets []domain.Budget, txs []domain.Transaction, loc *time.Location) []BudgetUsage {
	spent := make(map[budgetKey]decimal.Decimal)
	for _, tx := range txs {
		if tx.Type != domain.TransactionTypeExpense || tx.Category == nil {
			continue
		}
		key := budgetKey{categoryID: tx.Category.ID, month: tx.Date.In(loc).Format(domain.MonthLayout)}
		total, ok := spent[key]
		if !ok {
			total = decimal.Zero
		}
		spent[key] = total.Add(tx.Amount)
	}

	usages := make([]BudgetUsage, 0, len(budgets))
	for _, budget := range budgets {
		total, ok := spent[budgetKey{categoryID: budget.Category.ID, month: budget.Month}]
		if !ok {
			total = decimal.Zero
		}
		usages = append(usages, BudgetUsage{
			Budget:    budget,
			Spent:     total,
			Remaining: budget.Limit.Sub(total),
		})
	}
	return usages
}

type budgetKey struct {
	categoryID uint64
	month      string
}
