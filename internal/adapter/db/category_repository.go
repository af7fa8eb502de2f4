package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"lifedash/internal/core/domain"
	"lifedash/internal/core/ports"
)

// mysqlDuplicateEntry is ER_DUP_ENTRY.
const mysqlDuplicateEntry = 1062

const listCategoriesQuery = `
SELECT id, name, kind FROM categories WHERE user_id = ? AND kind = ? ORDER BY name;
`

type CategoryRepository struct {
	db *sqlx.DB
}

type categoryRow struct {
	ID   uint64 `db:"id"`
	Name string `db:"name"`
	Kind string `db:"kind"`
}

var _ ports.CategoryRepository = (*CategoryRepository)(nil)

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) ListCategories(ctx context.Context, userID uint64, kind domain.CategoryKind) ([]domain.Category, error) {
	var rows []categoryRow
	if err := r.db.SelectContext(ctx, &rows, listCategoriesQuery, userID, string(kind)); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, domain.Category{ID: row.ID, Name: row.Name, Kind: domain.CategoryKind(row.Kind)})
	}
	return categories, nil
}

func (r *CategoryRepository) CreateCategory(ctx context.Context, input domain.CreateCategoryInput) (domain.Category, error) {
	result, err := r.db.ExecContext(
		ctx,
		"INSERT INTO categories (user_id, name, kind) VALUES (?, ?, ?)",
		input.UserID,
		input.Name,
		string(input.Kind),
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return domain.Category{}, domain.ErrCategoryExists
		}
		return domain.Category{}, fmt.Errorf("insert category: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Category{}, fmt.Errorf("insert category: %w", err)
	}

	return domain.Category{ID: uint64(id), Name: input.Name, Kind: input.Kind}, nil
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
