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

const budgetColumns = `
  b.id, b.user_id, b.month, b.amount, b.created_at,
  c.id AS category_id, c.name AS category_name
FROM budgets b
JOIN categories c ON c.id = b.category_id
`

const listBudgetsQuery = `SELECT` + budgetColumns + `WHERE b.user_id = ? AND b.month = ? ORDER BY c.name, b.id;`

const getBudgetQuery = `SELECT` + budgetColumns + `WHERE b.id = ? AND b.user_id = ?;`

const insertBudgetQuery = `
INSERT INTO budgets (user_id, category_id, month, amount) VALUES (?, ?, ?, ?);
`

type BudgetRepository struct {
	db *sqlx.DB
}

type budgetRow struct {
	ID           uint64          `db:"id"`
	UserID       uint64          `db:"user_id"`
	Month        string          `db:"month"`
	Amount       decimal.Decimal `db:"amount"`
	CreatedAt    time.Time       `db:"created_at"`
	CategoryID   uint64          `db:"category_id"`
	CategoryName string          `db:"category_name"`
}

var _ ports.BudgetRepository = (*BudgetRepository)(nil)

func NewBudgetRepository(db *sqlx.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

func (r *BudgetRepository) ListBudgets(ctx context.Context, userID uint64, month string) ([]domain.Budget, error) {
	var rows []budgetRow
	if err := r.db.SelectContext(ctx, &rows, listBudgetsQuery, userID, month); err != nil {
		return nil, fmt.Errorf("list budgets for %s: %w", month, err)
	}

	budgets := make([]domain.Budget, 0, len(rows))
	for _, row := range rows {
		budgets = append(budgets, mapBudgetRow(row))
	}
	return budgets, nil
}

// CreateBudget only accepts a transaction category owned by the user.
func (r *BudgetRepository) CreateBudget(ctx context.Context, input domain.CreateBudgetInput) (domain.Budget, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, transactionCategoryExistsQuery, input.CategoryID, input.UserID); err != nil {
		return domain.Budget{}, fmt.Errorf("check budget category: %w", err)
	}
	if count == 0 {
		return domain.Budget{}, domain.ErrCategoryNotFound
	}

	result, err := r.db.ExecContext(ctx, insertBudgetQuery, input.UserID, input.CategoryID, input.Month, input.Limit)
	if err != nil {
		if isDuplicateEntry(err) {
			return domain.Budget{}, domain.ErrBudgetExists
		}
		return domain.Budget{}, fmt.Errorf("insert budget: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Budget{}, fmt.Errorf("insert budget: %w", err)
	}

	var row budgetRow
	if err := r.db.GetContext(ctx, &row, getBudgetQuery, uint64(id), input.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Budget{}, fmt.Errorf("budget %d vanished after insert", id)
		}
		return domain.Budget{}, fmt.Errorf("get budget %d: %w", id, err)
	}
	return mapBudgetRow(row), nil
}

func mapBudgetRow(row budgetRow) domain.Budget {
	return domain.Budget{
		ID:     row.ID,
		UserID: row.UserID,
		Category: domain.Category{
			ID:   row.CategoryID,
			Name: row.CategoryName,
			Kind: domain.CategoryKindTransaction,
		},
		Month:     row.Month,
		Limit:     row.Amount,
		CreatedAt: row.CreatedAt,
	}
}
