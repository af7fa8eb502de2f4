package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lifedash/internal/app/service"
	"lifedash/internal/core/domain"
	"lifedash/internal/core/ports"
)

type scheduleServiceMock struct {
	ports.ScheduleService
	mock.Mock
}

func (m *scheduleServiceMock) SendDueReminders(ctx context.Context, now time.Time) ([]domain.Schedule, error) {
	args := m.Called(ctx, now)

	var schedules []domain.Schedule
	if value := args.Get(0); value != nil {
		schedules = value.([]domain.Schedule)
	}
	return schedules, args.Error(1)
}

type lockMock struct {
	mock.Mock
}

func (m *lockMock) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *lockMock) Release(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

// keyLock is an in-memory RunLock shared by the tick and delivery claims.
type keyLock struct {
	mu   sync.Mutex
	held map[string]bool
}

func (l *keyLock) Acquire(_ context.Context, key string, _ time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[key] {
		return false, nil
	}
	l.held[key] = true
	return true, nil
}

func (l *keyLock) Release(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, key)
	return nil
}

type dayRepository struct {
	ports.ScheduleRepository
	schedules []domain.ScheduleWithChat
}

func (r dayRepository) ListSchedulesForDay(_ context.Context, day domain.Weekday) ([]domain.ScheduleWithChat, error) {
	var matched []domain.ScheduleWithChat
	for _, s := range r.schedules {
		if s.Day == day {
			matched = append(matched, s)
		}
	}
	return matched, nil
}

type countingSender struct {
	mu    sync.Mutex
	calls int
}

func (s *countingSender) SendMessage(context.Context, string, string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return nil
}

func TestReminderJob_Run(t *testing.T) {
	wib := time.FixedZone("WIB", 7*60*60)
	now := time.Date(2026, 3, 10, 1, 1, 30, 0, time.UTC)
	localNow := now.In(wib)

	t.Run("sends when the tick is acquired", func(t *testing.T) {
		schedules := new(scheduleServiceMock)
		lock := new(lockMock)
		lock.On("Acquire", mock.Anything, "reminders:202603100801", lockTTL).Return(true, nil).Once()
		schedules.On("SendDueReminders", mock.Anything, localNow).Return([]domain.Schedule{{ID: 1}}, nil).Once()

		NewReminderJob(schedules, lock, wib).WithClock(func() time.Time { return now }).Run(context.Background())

		lock.AssertExpectations(t)
		schedules.AssertExpectations(t)
	})

	t.Run("skips a tick held by another replica", func(t *testing.T) {
		schedules := new(scheduleServiceMock)
		lock := new(lockMock)
		lock.On("Acquire", mock.Anything, mock.Anything, mock.Anything).Return(false, nil).Once()

		NewReminderJob(schedules, lock, wib).WithClock(func() time.Time { return now }).Run(context.Background())

		schedules.AssertNotCalled(t, "SendDueReminders", mock.Anything, mock.Anything)
	})

	t.Run("skips when the lock store fails", func(t *testing.T) {
		schedules := new(scheduleServiceMock)
		lock := new(lockMock)
		lock.On("Acquire", mock.Anything, mock.Anything, mock.Anything).Return(false, errors.New("redis down")).Once()

		NewReminderJob(schedules, lock, wib).WithClock(func() time.Time { return now }).Run(context.Background())

		schedules.AssertNotCalled(t, "SendDueReminders", mock.Anything, mock.Anything)
	})

	t.Run("runs unlocked without a lock", func(t *testing.T) {
		schedules := new(scheduleServiceMock)
		schedules.On("SendDueReminders", mock.Anything, localNow).Return(nil, errors.New("db down")).Once()

		require.NotPanics(t, func() {
			NewReminderJob(schedules, nil, wib).WithClock(func() time.Time { return now }).Run(context.Background())
		})
		schedules.AssertExpectations(t)
	})
}

func TestReminderJob_ConsecutiveTicksSendOnce(t *testing.T) {
	repo := dayRepository{schedules: []domain.ScheduleWithChat{{
		Schedule: domain.Schedule{ID: 3, UserID: 5, CourseName: "Basis Data", Day: domain.Tuesday, StartTime: "10:00", EndTime: "12:00", ReminderHoursBefore: 1},
		ChatID:   "111",
	}}}
	sender := &countingSender{}
	lock := &keyLock{held: map[string]bool{}}
	schedules := service.NewScheduleService(repo, sender, time.UTC).WithDeliveryLock(lock)

	// A one-minute cadence covering the whole five-minute window and beyond.
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	for minute := 0; minute < 10; minute++ {
		tick := start.Add(time.Duration(minute) * time.Minute)
		NewReminderJob(schedules, lock, time.UTC).WithClock(func() time.Time { return tick }).Run(context.Background())
	}

	require.Equal(t, 1, sender.calls)
}
