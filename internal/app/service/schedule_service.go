package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"lifedash/internal/core/domain"
	"lifedash/internal/core/ports"
	"lifedash/internal/core/reminder"
	"lifedash/pkg/telemetry"
)

// deliveryTTL keeps a delivered reminder claimed well past its window.
const deliveryTTL = 24 * time.Hour

type ScheduleService struct {
	scheduleRepository ports.ScheduleRepository
	sender             ports.TelegramSender
	location           *time.Location
	deliveries         ports.RunLock
}

// NewScheduleService builds a ScheduleService. Schedule clock times are read
// in location; nil means UTC.
func NewScheduleService(scheduleRepository ports.ScheduleRepository, sender ports.TelegramSender, location *time.Location) *ScheduleService {
	if location == nil {
		location = time.UTC
	}
	return &ScheduleService{scheduleRepository: scheduleRepository, sender: sender, location: location}
}

// WithDeliveryLock makes every class occurrence claim a key before it is
// sent, so repeated ticks inside the reminder window deliver it once.
func (s *ScheduleService) WithDeliveryLock(lock ports.RunLock) *ScheduleService {
	s.deliveries = lock
	return s
}

func (s *ScheduleService) ListSchedules(ctx context.Context, userID uint64) ([]domain.Schedule, error) {
	return s.scheduleRepository.ListSchedules(ctx, userID)
}

func (s *ScheduleService) CreateSchedule(ctx context.Context, input domain.CreateScheduleInput) (domain.Schedule, error) {
	return s.scheduleRepository.CreateSchedule(ctx, input)
}

func (s *ScheduleService) UpdateSchedule(ctx context.Context, userID, scheduleID uint64, input domain.UpdateScheduleInput) (domain.Schedule, error) {
	return s.scheduleRepository.UpdateSchedule(ctx, userID, scheduleID, input)
}

func (s *ScheduleService) DeleteSchedule(ctx context.Context, userID, scheduleID uint64) error {
	return s.scheduleRepository.DeleteSchedule(ctx, userID, scheduleID)
}

// SendDueReminders delivers a Telegram reminder for every schedule due at now
// and returns the ones that were delivered. A failed delivery is logged and
// does not stop the others. Today's and tomorrow's classes are both checked
// because a reminder can fall on the evening before.
func (s *ScheduleService) SendDueReminders(ctx context.Context, now time.Time) ([]domain.Schedule, error) {
	local := now.In(s.location)

	var candidates []domain.ScheduleWithChat
	for _, day := range []time.Time{local, local.AddDate(0, 0, 1)} {
		schedules, err := s.scheduleRepository.ListSchedulesForDay(ctx, domain.WeekdayOf(day.Weekday()))
		if err != nil {
			return nil, fmt.Errorf("list schedules for reminders: %w", err)
		}
		candidates = append(candidates, schedules...)
	}

	sent := make([]domain.Schedule, 0)
	for _, due := range reminder.Due(candidates, local) {
		key, claimed := s.claim(ctx, due.Schedule, local)
		if !claimed {
			continue
		}

		if err := s.sender.SendMessage(ctx, due.ChatID, reminder.Message(due.Schedule)); err != nil {
			telemetry.RemindersFailed.Inc()
			zap.L().Error("failed to send class reminder",
				zap.Uint64("schedule_id", due.ID),
				zap.Uint64("user_id", due.UserID),
				zap.Error(err),
			)
			s.release(ctx, key)
			continue
		}
		telemetry.RemindersSent.Inc()
		sent = append(sent, due.Schedule)
	}

	return sent, nil
}

// claim reserves the delivery of one class occurrence. Without a lock, or when
// the lock store fails, the reminder is sent anyway.
func (s *ScheduleService) claim(ctx context.Context, schedule domain.Schedule, now time.Time) (string, bool) {
	if s.deliveries == nil {
		return "", true
	}

	classStart, _ := reminder.Occurrence(schedule, now)
	key := fmt.Sprintf("reminder:%d:%s", schedule.ID, classStart.Format("200601021504"))

	claimed, err := s.deliveries.Acquire(ctx, key, deliveryTTL)
	if err != nil {
		zap.L().Warn("reminder delivery lock unavailable", zap.String("key", key), zap.Error(err))
		return "", true
	}
	return key, claimed
}

func (s *ScheduleService) release(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.deliveries.Release(ctx, key); err != nil {
		zap.L().Warn("failed to release reminder delivery lock", zap.String("key", key), zap.Error(err))
	}
}

var _ ports.ScheduleService = (*ScheduleService)(nil)
