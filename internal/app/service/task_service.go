package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"lifedash/internal/core/domain"
	"lifedash/internal/core/ports"
	"lifedash/internal/core/priority"
	"lifedash/pkg/telemetry"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

// ListTasks returns the user's tasks matching filter, in priority order.
func (s *TaskService) ListTasks(ctx context.Context, userID uint64, filter priority.TaskFilter, now time.Time) ([]priority.ScoredTask, error) {
	tasks, err := s.taskRepository.ListTasks(ctx, userID)
	if err != nil {
		return nil, err
	}

	ranking := priority.Rank(priority.FilterTasks(tasks, filter, now), now)
	reportRejections(userID, ranking.Rejected)
	return ranking.Ranked, nil
}

// ListPriorities returns the top limit tasks that are not done yet.
func (s *TaskService) ListPriorities(ctx context.Context, userID uint64, now time.Time, limit int) ([]priority.ScoredTask, error) {
	tasks, err := s.taskRepository.ListTasks(ctx, userID)
	if err != nil {
		return nil, err
	}

	ranking := priority.TopPriorities(tasks, now, limit)
	reportRejections(userID, ranking.Rejected)
	return ranking.Ranked, nil
}

func (s *TaskService) GetTask(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	return s.taskRepository.GetTask(ctx, userID, taskID)
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	if input.Status == "" {
		input.Status = domain.TaskStatusTodo
	}
	return s.taskRepository.CreateTask(ctx, input)
}

func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	return s.taskRepository.UpdateTask(ctx, userID, taskID, input)
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID uint64) error {
	return s.taskRepository.DeleteTask(ctx, userID, taskID)
}

// ToggleTaskStatus advances the task one step along todo -> in-progress -> done -> todo.
func (s *TaskService) ToggleTaskStatus(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	task, err := s.taskRepository.GetTask(ctx, userID, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	next := task.Status.Next()
	return s.taskRepository.UpdateTask(ctx, userID, taskID, domain.UpdateTaskInput{Status: &next})
}

func reportRejections(userID uint64, rejected []priority.Rejection) {
	for _, r := range rejected {
		reason := rejectionReason(r.Err)
		telemetry.TasksRejected.WithLabelValues(reason).Inc()
		zap.L().Warn("task left out of ranking",
			zap.Uint64("user_id", userID),
			zap.Uint64("task_id", r.Task.ID),
			zap.String("reason", reason),
			zap.Error(r.Err),
		)
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, priority.ErrMissingDueDate):
		return "missing_due_date"
	case errors.Is(err, priority.ErrInvalidWeight):
		return "invalid_weight"
	case errors.Is(err, priority.ErrInvalidEstimate):
		return "invalid_estimate"
	default:
		return "unknown"
	}
}

var _ ports.TaskService = (*TaskService)(nil)
