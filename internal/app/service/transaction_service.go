package service

import (
	"context"
	"time"

	"lifedash/internal/core/domain"
	"lifedash/internal/core/finance"
	"lifedash/internal/core/ports"
	"lifedash/internal/core/priority"
)

type TransactionService struct {
	transactionRepository ports.TransactionRepository
}

func NewTransactionService(transactionRepository ports.TransactionRepository) *TransactionService {
	return &TransactionService{transactionRepository: transactionRepository}
}

// ListTransactions returns the user's transactions matching filter, newest first.
func (s *TransactionService) ListTransactions(ctx context.Context, userID uint64, filter priority.TransactionFilter, now time.Time) ([]domain.Transaction, error) {
	txs, err := s.transactionRepository.ListTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}
	return priority.SortTransactionsByDate(priority.FilterTransactions(txs, filter, now)), nil
}

func (s *TransactionService) Summary(ctx context.Context, userID uint64, now time.Time) (finance.Summary, error) {
	txs, err := s.transactionRepository.ListTransactions(ctx, userID)
	if err != nil {
		return finance.Summary{}, err
	}
	return finance.Summarize(txs, now), nil
}

func (s *TransactionService) CreateTransaction(ctx context.Context, input domain.CreateTransactionInput) (domain.Transaction, error) {
	return s.transactionRepository.CreateTransaction(ctx, input)
}

func (s *TransactionService) UpdateTransaction(ctx context.Context, userID, transactionID uint64, input domain.UpdateTransactionInput) (domain.Transaction, error) {
	return s.transactionRepository.UpdateTransaction(ctx, userID, transactionID, input)
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, userID, transactionID uint64) error {
	return s.transactionRepository.DeleteTransaction(ctx, userID, transactionID)
}

var _ ports.TransactionService = (*TransactionService)(nil)
