package ports

import (
	"context"
	"time"

	"lifedash/internal/core/domain"
)

type ScheduleRepository interface {
	ListSchedules(ctx context.Context, userID uint64) ([]domain.Schedule, error)
	ListSchedulesForDay(ctx context.Context, day domain.Weekday) ([]domain.ScheduleWithChat, error)
	CreateSchedule(ctx context.Context, input domain.CreateScheduleInput) (domain.Schedule, error)
	UpdateSchedule(ctx context.Context, userID, scheduleID uint64, input domain.UpdateScheduleInput) (domain.Schedule, error)
	DeleteSchedule(ctx context.Context, userID, scheduleID uint64) error
}

type ScheduleService interface {
	ListSchedules(ctx context.Context, userID uint64) ([]domain.Schedule, error)
	CreateSchedule(ctx context.Context, input domain.CreateScheduleInput) (domain.Schedule, error)
	UpdateSchedule(ctx context.Context, userID, scheduleID uint64, input domain.UpdateScheduleInput) (domain.Schedule, error)
	DeleteSchedule(ctx context.Context, userID, scheduleID uint64) error
	SendDueReminders(ctx context.Context, now time.Time) ([]domain.Schedule, error)
}

// RunLock claims a key for one owner: a reminder tick for a worker replica,
// or a single class reminder delivery.
type RunLock interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}
