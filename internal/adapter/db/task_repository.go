package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"lifedash/internal/core/domain"
	"lifedash/internal/core/ports"
)

const taskColumns = `
  t.id, t.user_id, t.title, t.description, t.status, t.weight, t.est_hours,
  t.due_date, t.completed_at, t.created_at, t.updated_at, t.category_id,
  c.name AS category_name
FROM tasks t
LEFT JOIN categories c ON c.id = t.category_id
`

const listTasksQuery = `SELECT` + taskColumns + `WHERE t.user_id = ? ORDER BY t.id;`

const getTaskQuery = `SELECT` + taskColumns + `WHERE t.id = ? AND t.user_id = ?;`

const insertTaskQuery = `
INSERT INTO tasks (user_id, title, description, status, weight, est_hours, due_date, completed_at, category_id)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
`

const taskCategoryExistsQuery = `
SELECT COUNT(*) FROM categories WHERE id = ? AND user_id = ? AND kind = 'task';
`

type TaskRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

type taskRow struct {
	ID           uint64         `db:"id"`
	UserID       uint64         `db:"user_id"`
	Title        string         `db:"title"`
	Description  sql.NullString `db:"description"`
	Status       string         `db:"status"`
	Weight       int            `db:"weight"`
	EstHours     float64        `db:"est_hours"`
	DueDate      sql.NullTime   `db:"due_date"`
	CompletedAt  sql.NullTime   `db:"completed_at"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
	CategoryID   sql.NullInt64  `db:"category_id"`
	CategoryName sql.NullString `db:"category_name"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db, now: time.Now}
}

func (r *TaskRepository) ListTasks(ctx context.Context, userID uint64) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksQuery, userID); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) GetTask(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskQuery, taskID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, fmt.Errorf("get task %d: %w", taskID, err)
	}

	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	if err := r.ensureCategory(ctx, input.UserID, input.CategoryID); err != nil {
		return domain.Task{}, err
	}

	var completedAt *time.Time
	if input.Status == domain.TaskStatusDone {
		now := r.now()
		completedAt = &now
	}

	result, err := r.db.ExecContext(
		ctx,
		insertTaskQuery,
		input.UserID,
		input.Title,
		nullString(input.Description),
		string(input.Status),
		input.Weight,
		input.EstHours,
		nullTime(input.DueDate),
		nullTime(completedAt),
		nullID(input.CategoryID),
	)
	if err != nil {
		return domain.Task{}, fmt.Errorf("insert task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, fmt.Errorf("insert task: %w", err)
	}

	return r.GetTask(ctx, input.UserID, uint64(id))
}

func (r *TaskRepository) UpdateTask(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	current, err := r.GetTask(ctx, userID, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	if input.CategoryIDSet {
		if err := r.ensureCategory(ctx, userID, input.CategoryID); err != nil {
			return domain.Task{}, err
		}
	}

	var b updateBuilder
	if input.Title != nil {
		b.set("title", *input.Title)
	}
	if input.DescriptionSet {
		b.set("description", nullString(input.Description))
	}
	if input.Status != nil {
		b.set("status", string(*input.Status))
		// completed_at follows transitions into and out of done.
		switch {
		case *input.Status == domain.TaskStatusDone && current.Status != domain.TaskStatusDone:
			now := r.now()
			b.set("completed_at", nullTime(&now))
		case *input.Status != domain.TaskStatusDone:
			b.set("completed_at", sql.NullTime{})
		}
	}
	if input.Weight != nil {
		b.set("weight", *input.Weight)
	}
	if input.EstHours != nil {
		b.set("est_hours", *input.EstHours)
	}
	if input.DueDateSet {
		b.set("due_date", nullTime(input.DueDate))
	}
	if input.CategoryIDSet {
		b.set("category_id", nullID(input.CategoryID))
	}

	if b.empty() {
		return current, nil
	}

	query, args := b.query("tasks", taskID, userID)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return domain.Task{}, fmt.Errorf("update task %d: %w", taskID, err)
	}

	return r.GetTask(ctx, userID, taskID)
}

func (r *TaskRepository) DeleteTask(ctx context.Context, userID, taskID uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ? AND user_id = ?", taskID, userID)
	if err != nil {
		return fmt.Errorf("delete task %d: %w", taskID, err)
	}
	return requireAffected(result, domain.ErrTaskNotFound)
}

func (r *TaskRepository) ensureCategory(ctx context.Context, userID uint64, categoryID *uint64) error {
	if categoryID == nil {
		return nil
	}

	var count int
	if err := r.db.GetContext(ctx, &count, taskCategoryExistsQuery, *categoryID, userID); err != nil {
		return fmt.Errorf("check task category: %w", err)
	}
	if count == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func requireAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:          row.ID,
		UserID:      row.UserID,
		Title:       row.Title,
		Description: stringPtr(row.Description),
		Status:      domain.TaskStatus(row.Status),
		Weight:      row.Weight,
		EstHours:    row.EstHours,
		DueDate:     timePtr(row.DueDate),
		CompletedAt: timePtr(row.CompletedAt),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}

	if row.CategoryID.Valid && row.CategoryName.Valid {
		task.Category = &domain.Category{
			ID:   uint64(row.CategoryID.Int64),
			Name: row.CategoryName.String,
			Kind: domain.CategoryKindTask,
		}
	}

	return task
}
