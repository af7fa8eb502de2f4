// Package finance aggregates transactions into balance figures.
package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"lifedash/internal/core/domain"
)

type Totals struct {
	Income     decimal.Decimal
	Expense    decimal.Decimal
	Investment decimal.Decimal
}

// Balance is income minus expense minus investment.
func (t Totals) Balance() decimal.Decimal {
	return t.Income.Sub(t.Expense).Sub(t.Investment)
}

func (t *Totals) add(tx domain.Transaction) {
	switch tx.Type {
	case domain.TransactionTypeIncome:
		t.Income = t.Income.Add(tx.Amount)
	case domain.TransactionTypeExpense:
		t.Expense = t.Expense.Add(tx.Amount)
	case domain.TransactionTypeInvestment:
		t.Investment = t.Investment.Add(tx.Amount)
	}
}

type Summary struct {
	AllTime   Totals
	ThisMonth Totals
}

// Summarize totals txs overall and for the calendar month containing now,
// in now's location.
func Summarize(txs []domain.Transaction, now time.Time) Summary {
	summary := Summary{
		AllTime:   Totals{Income: decimal.Zero, Expense: decimal.Zero, Investment: decimal.Zero},
		ThisMonth: Totals{Income: decimal.Zero, Expense: decimal.Zero, Investment: decimal.Zero},
	}

	for _, tx := range txs {
		summary.AllTime.add(tx)

		date := tx.Date.In(now.Location())
		if date.Year() == now.Year() && date.Month() == now.Month() {
			summary.ThisMonth.add(tx)
		}
	}
	return summary
}
