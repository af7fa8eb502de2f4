package mapper

import (
	"time"

	"lifedash/internal/adapter/http/dto"
	"lifedash/internal/core/domain"
	"lifedash/internal/core/finance"
)

func ToTransactionItems(txs []domain.Transaction) []dto.TransactionItem {
	items := make([]dto.TransactionItem, 0, len(txs))
	for _, tx := range txs {
		items = append(items, ToTransactionItem(tx))
	}
	return items
}

func ToTransactionItem(tx domain.Transaction) dto.TransactionItem {
	return dto.TransactionItem{
		ID:        tx.ID,
		Type:      string(tx.Type),
		Amount:    tx.Amount.StringFixed(2),
		Date:      tx.Date.Format(time.RFC3339),
		Note:      copyString(tx.Note),
		Category:  ToCategory(tx.Category),
		CreatedAt: tx.CreatedAt.Format(time.RFC3339),
		UpdatedAt: tx.UpdatedAt.Format(time.RFC3339),
	}
}

func ToTransactionSummary(summary finance.Summary) dto.TransactionSummary {
	return dto.TransactionSummary{
		AllTime:   toTotals(summary.AllTime),
		ThisMonth: toTotals(summary.ThisMonth),
	}
}

func toTotals(t finance.Totals) dto.Totals {
	return dto.Totals{
		Income:     t.Income.StringFixed(2),
		Expense:    t.Expense.StringFixed(2),
		Investment: t.Investment.StringFixed(2),
		Balance:    t.Balance().StringFixed(2),
	}
}
