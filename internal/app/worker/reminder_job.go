// Package worker runs the periodic reminder job outside the HTTP server.
package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"lifedash/internal/core/ports"
)

const (
	lockTTL    = 50 * time.Second
	jobTimeout = 45 * time.Second
)

// ReminderJob sends due class reminders once per tick across all replicas.
type ReminderJob struct {
	schedules ports.ScheduleService
	lock      ports.RunLock
	location  *time.Location
	now       func() time.Time
}

func NewReminderJob(schedules ports.ScheduleService, lock ports.RunLock, location *time.Location) *ReminderJob {
	if location == nil {
		location = time.UTC
	}
	return &ReminderJob{schedules: schedules, lock: lock, location: location, now: time.Now}
}

func (j *ReminderJob) WithClock(now func() time.Time) *ReminderJob {
	j.now = now
	return j
}

// Run is the cron entry point. The tick is keyed by its local minute so a
// replica that loses the lock skips it.
func (j *ReminderJob) Run(ctx context.Context) {
	now := j.now().In(j.location)
	key := "reminders:" + now.Format("200601021504")

	if j.lock != nil {
		acquired, err := j.lock.Acquire(ctx, key, lockTTL)
		if err != nil {
			zap.L().Error("failed to acquire reminder lock", zap.String("key", key), zap.Error(err))
			return
		}
		if !acquired {
			zap.L().Debug("reminder tick owned by another worker", zap.String("key", key))
			return
		}
	}

	ctx, cancel := context.WithTimeout(ctx, jobTimeout)
	defer cancel()

	sent, err := j.schedules.SendDueReminders(ctx, now)
	if err != nil {
		zap.L().Error("failed to send class reminders", zap.Error(err))
		return
	}
	if len(sent) > 0 {
		zap.L().Info("class reminders sent", zap.Int("count", len(sent)), zap.String("tick", key))
	}
}
