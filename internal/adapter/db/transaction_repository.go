package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"lifedash/internal/core/domain"
	"lifedash/internal/core/ports"
)

const transactionColumns = `
  tr.id, tr.user_id, tr.type, tr.amount, tr.date, tr.note,
  tr.created_at, tr.updated_at, tr.category_id,
  c.name AS category_name
FROM transactions tr
LEFT JOIN categories c ON c.id = tr.category_id
`

const listTransactionsQuery = `SELECT` + transactionColumns + `WHERE tr.user_id = ? ORDER BY tr.date DESC, tr.id DESC;`

const getTransactionQuery = `SELECT` + transactionColumns + `WHERE tr.id = ? AND tr.user_id = ?;`

const insertTransactionQuery = `
INSERT INTO transactions (user_id, type, amount, date, note, category_id)
VALUES (?, ?, ?, ?, ?, ?);
`

const transactionCategoryExistsQuery = `
SELECT COUNT(*) FROM categories WHERE id = ? AND user_id = ? AND kind = 'transaction';
`

type TransactionRepository struct {
	db *sqlx.DB
}

type transactionRow struct {
	ID           uint64          `db:"id"`
	UserID       uint64          `db:"user_id"`
	Type         string          `db:"type"`
	Amount       decimal.Decimal `db:"amount"`
	Date         time.Time       `db:"date"`
	Note         sql.NullString  `db:"note"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
	CategoryID   sql.NullInt64   `db:"category_id"`
	CategoryName sql.NullString  `db:"category_name"`
}

var _ ports.TransactionRepository = (*TransactionRepository)(nil)

func NewTransactionRepository(db *sqlx.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) ListTransactions(ctx context.Context, userID uint64) ([]domain.Transaction, error) {
	var rows []transactionRow
	if err := r.db.SelectContext(ctx, &rows, listTransactionsQuery, userID); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	txs := make([]domain.Transaction, 0, len(rows))
	for _, row := range rows {
		txs = append(txs, mapTransactionRow(row))
	}
	return txs, nil
}

func (r *TransactionRepository) GetTransaction(ctx context.Context, userID, transactionID uint64) (domain.Transaction, error) {
	var row transactionRow
	if err := r.db.GetContext(ctx, &row, getTransactionQuery, transactionID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Transaction{}, domain.ErrTransactionNotFound
		}
		return domain.Transaction{}, fmt.Errorf("get transaction %d: %w", transactionID, err)
	}
	return mapTransactionRow(row), nil
}

func (r *TransactionRepository) CreateTransaction(ctx context.Context, input domain.CreateTransactionInput) (domain.Transaction, error) {
	if err := r.ensureCategory(ctx, input.UserID, input.CategoryID); err != nil {
		return domain.Transaction{}, err
	}

	result, err := r.db.ExecContext(
		ctx,
		insertTransactionQuery,
		input.UserID,
		string(input.Type),
		input.Amount,
		input.Date.UTC(),
		nullString(input.Note),
		nullID(input.CategoryID),
	)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}

	return r.GetTransaction(ctx, input.UserID, uint64(id))
}

func (r *TransactionRepository) UpdateTransaction(ctx context.Context, userID, transactionID uint64, input domain.UpdateTransactionInput) (domain.Transaction, error) {
	current, err := r.GetTransaction(ctx, userID, transactionID)
	if err != nil {
		return domain.Transaction{}, err
	}

	if input.CategoryIDSet {
		if err := r.ensureCategory(ctx, userID, input.CategoryID); err != nil {
			return domain.Transaction{}, err
		}
	}

	var b updateBuilder
	if input.Type != nil {
		b.set("type", string(*input.Type))
	}
	if input.Amount != nil {
		b.set("amount", *input.Amount)
	}
	if input.Date != nil {
		b.set("date", input.Date.UTC())
	}
	if input.NoteSet {
		b.set("note", nullString(input.Note))
	}
	if input.CategoryIDSet {
		b.set("category_id", nullID(input.CategoryID))
	}

	if b.empty() {
		return current, nil
	}

	query, args := b.query("transactions", transactionID, userID)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return domain.Transaction{}, fmt.Errorf("update transaction %d: %w", transactionID, err)
	}

	return r.GetTransaction(ctx, userID, transactionID)
}

func (r *TransactionRepository) DeleteTransaction(ctx context.Context, userID, transactionID uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM transactions WHERE id = ? AND user_id = ?", transactionID, userID)
	if err != nil {
		return fmt.Errorf("delete transaction %d: %w", transactionID, err)
	}
	return requireAffected(result, domain.ErrTransactionNotFound)
}

func (r *TransactionRepository) ensureCategory(ctx context.Context, userID uint64, categoryID *uint64) error {
	if categoryID == nil {
		return nil
	}

	var count int
	if err := r.db.GetContext(ctx, &count, transactionCategoryExistsQuery, *categoryID, userID); err != nil {
		return fmt.Errorf("check transaction category: %w", err)
	}
	if count == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func mapTransactionRow(row transactionRow) domain.Transaction {
	tx := domain.Transaction{
		ID:        row.ID,
		UserID:    row.UserID,
		Type:      domain.TransactionType(row.Type),
		Amount:    row.Amount,
		Date:      row.Date,
		Note:      stringPtr(row.Note),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.CategoryID.Valid && row.CategoryName.Valid {
		tx.Category = &domain.Category{
			ID:   uint64(row.CategoryID.Int64),
			Name: row.CategoryName.String,
			Kind: domain.CategoryKindTransaction,
		}
	}
	return tx
}
