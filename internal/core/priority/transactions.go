package priority

import (
	"sort"
	"strings"
	"time"

	"lifedash/internal/core/domain"
)

const (
	RangeToday     = "today"
	RangeThisMonth = "this-month"
	RangeLastMonth = "last-month"
)

type TransactionFilter struct {
	Search    string
	Type      string
	Category  string
	DateRange string
}

type transactionPredicate = func(domain.Transaction) bool

// FilterTransactions keeps the transactions matching every active dimension
// of f, in input order. Transactions are never scored.
func FilterTransactions(txs []domain.Transaction, f TransactionFilter, now time.Time) []domain.Transaction {
	var predicates []transactionPredicate

	if search := strings.TrimSpace(f.Search); search != "" {
		needle := strings.ToLower(search)
		predicates = append(predicates, func(tx domain.Transaction) bool {
			return containsFold(tx.CategoryName(), needle) || containsFold(tx.NoteText(), needle)
		})
	}
	if !isAll(f.Type) {
		predicates = append(predicates, func(tx domain.Transaction) bool {
			return string(tx.Type) == f.Type
		})
	}
	if !isAll(f.Category) {
		predicates = append(predicates, func(tx domain.Transaction) bool {
			return tx.CategoryName() == f.Category
		})
	}
	if !isAll(f.DateRange) {
		predicates = append(predicates, dateRangePredicate(f.DateRange, now))
	}

	return keep(txs, predicates)
}

func dateRangePredicate(bucket string, now time.Time) transactionPredicate {
	today := startOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)
	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonth := thisMonth.AddDate(0, 1, 0)
	lastMonth := thisMonth.AddDate(0, -1, 0)

	return func(tx domain.Transaction) bool {
		switch bucket {
		case RangeToday:
			return within(tx.Date, today, tomorrow)
		case RangeThisMonth:
			return within(tx.Date, thisMonth, nextMonth)
		case RangeLastMonth:
			return within(tx.Date, lastMonth, thisMonth)
		default:
			return true
		}
	}
}

// SortTransactionsByDate returns a copy of txs, newest first.
func SortTransactionsByDate(txs []domain.Transaction) []domain.Transaction {
	sorted := make([]domain.Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}
