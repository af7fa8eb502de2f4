package ports

import (
	"context"
	"time"

	"lifedash/internal/core/domain"
	"lifedash/internal/core/priority"
)

type TaskRepository interface {
	ListTasks(ctx context.Context, userID uint64) ([]domain.Task, error)
	GetTask(ctx context.Context, userID, taskID uint64) (domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, userID, taskID uint64) error
}

type TaskService interface {
	ListTasks(ctx context.Context, userID uint64, filter priority.TaskFilter, now time.Time) ([]priority.ScoredTask, error)
	ListPriorities(ctx context.Context, userID uint64, now time.Time, limit int) ([]priority.ScoredTask, error)
	GetTask(ctx context.Context, userID, taskID uint64) (domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, userID, taskID uint64) error
	ToggleTaskStatus(ctx context.Context, userID, taskID uint64) (domain.Task, error)
}
