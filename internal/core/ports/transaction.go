package ports

import (
	"context"
	"time"

	"lifedash/internal/core/domain"
	"lifedash/internal/core/finance"
	"lifedash/internal/core/priority"
)

type TransactionRepository interface {
	ListTransactions(ctx context.Context, userID uint64) ([]domain.Transaction, error)
	GetTransaction(ctx context.Context, userID, transactionID uint64) (domain.Transaction, error)
	CreateTransaction(ctx context.Context, input domain.CreateTransactionInput) (domain.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, transactionID uint64, input domain.UpdateTransactionInput) (domain.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID uint64) error
}

type TransactionService interface {
	ListTransactions(ctx context.Context, userID uint64, filter priority.TransactionFilter, now time.Time) ([]domain.Transaction, error)
	Summary(ctx context.Context, userID uint64, now time.Time) (finance.Summary, error)
	CreateTransaction(ctx context.Context, input domain.CreateTransactionInput) (domain.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, transactionID uint64, input domain.UpdateTransactionInput) (domain.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID uint64) error
}
