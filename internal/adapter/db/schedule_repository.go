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

const scheduleColumns = `
  s.id, s.user_id, s.course_name, s.course_code, s.day, s.start_time, s.end_time,
  s.room, s.lecturer, s.semester, s.reminder_hours_before, s.created_at, s.updated_at
`

const listSchedulesQuery = `
SELECT` + scheduleColumns + `
FROM schedules s
WHERE s.user_id = ?
ORDER BY FIELD(s.day, 'monday', 'tuesday', 'wednesday', 'thursday', 'friday', 'saturday', 'sunday'), s.start_time;
`

const getScheduleQuery = `SELECT` + scheduleColumns + `FROM schedules s WHERE s.id = ? AND s.user_id = ?;`

// Only owners with a linked chat can receive a reminder.
const listSchedulesForDayQuery = `
SELECT` + scheduleColumns + `, u.telegram_chat_id
FROM schedules s
JOIN users u ON u.id = s.user_id
WHERE s.day = ?
  AND s.reminder_hours_before > 0
  AND u.telegram_chat_id IS NOT NULL
  AND u.telegram_chat_id <> ''
ORDER BY s.start_time, s.id;
`

const insertScheduleQuery = `
INSERT INTO schedules (user_id, course_name, course_code, day, start_time, end_time, room, lecturer, semester, reminder_hours_before)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
`

type ScheduleRepository struct {
	db *sqlx.DB
}

type scheduleRow struct {
	ID                  uint64         `db:"id"`
	UserID              uint64         `db:"user_id"`
	CourseName          string         `db:"course_name"`
	CourseCode          sql.NullString `db:"course_code"`
	Day                 string         `db:"day"`
	StartTime           string         `db:"start_time"`
	EndTime             string         `db:"end_time"`
	Room                sql.NullString `db:"room"`
	Lecturer            sql.NullString `db:"lecturer"`
	Semester            string         `db:"semester"`
	ReminderHoursBefore int            `db:"reminder_hours_before"`
	CreatedAt           time.Time      `db:"created_at"`
	UpdatedAt           time.Time      `db:"updated_at"`
}

type scheduleChatRow struct {
	scheduleRow
	TelegramChatID string `db:"telegram_chat_id"`
}

var _ ports.ScheduleRepository = (*ScheduleRepository)(nil)

func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) ListSchedules(ctx context.Context, userID uint64) ([]domain.Schedule, error) {
	var rows []scheduleRow
	if err := r.db.SelectContext(ctx, &rows, listSchedulesQuery, userID); err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}

	schedules := make([]domain.Schedule, 0, len(rows))
	for _, row := range rows {
		schedules = append(schedules, mapScheduleRow(row))
	}
	return schedules, nil
}

func (r *ScheduleRepository) ListSchedulesForDay(ctx context.Context, day domain.Weekday) ([]domain.ScheduleWithChat, error) {
	var rows []scheduleChatRow
	if err := r.db.SelectContext(ctx, &rows, listSchedulesForDayQuery, string(day)); err != nil {
		return nil, fmt.Errorf("list schedules for %s: %w", day, err)
	}

	schedules := make([]domain.ScheduleWithChat, 0, len(rows))
	for _, row := range rows {
		schedules = append(schedules, domain.ScheduleWithChat{
			Schedule: mapScheduleRow(row.scheduleRow),
			ChatID:   row.TelegramChatID,
		})
	}
	return schedules, nil
}

func (r *ScheduleRepository) getSchedule(ctx context.Context, userID, scheduleID uint64) (domain.Schedule, error) {
	var row scheduleRow
	if err := r.db.GetContext(ctx, &row, getScheduleQuery, scheduleID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Schedule{}, domain.ErrScheduleNotFound
		}
		return domain.Schedule{}, fmt.Errorf("get schedule %d: %w", scheduleID, err)
	}
	return mapScheduleRow(row), nil
}

func (r *ScheduleRepository) CreateSchedule(ctx context.Context, input domain.CreateScheduleInput) (domain.Schedule, error) {
	result, err := r.db.ExecContext(
		ctx,
		insertScheduleQuery,
		input.UserID,
		input.CourseName,
		nullString(input.CourseCode),
		string(input.Day),
		input.StartTime,
		input.EndTime,
		nullString(input.Room),
		nullString(input.Lecturer),
		input.Semester,
		input.ReminderHoursBefore,
	)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("insert schedule: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("insert schedule: %w", err)
	}

	return r.getSchedule(ctx, input.UserID, uint64(id))
}

func (r *ScheduleRepository) UpdateSchedule(ctx context.Context, userID, scheduleID uint64, input domain.UpdateScheduleInput) (domain.Schedule, error) {
	current, err := r.getSchedule(ctx, userID, scheduleID)
	if err != nil {
		return domain.Schedule{}, err
	}

	var b updateBuilder
	if input.CourseName != nil {
		b.set("course_name", *input.CourseName)
	}
	if input.CourseCodeSet {
		b.set("course_code", nullString(input.CourseCode))
	}
	if input.Day != nil {
		b.set("day", string(*input.Day))
	}
	if input.StartTime != nil {
		b.set("start_time", *input.StartTime)
	}
	if input.EndTime != nil {
		b.set("end_time", *input.EndTime)
	}
	if input.RoomSet {
		b.set("room", nullString(input.Room))
	}
	if input.LecturerSet {
		b.set("lecturer", nullString(input.Lecturer))
	}
	if input.Semester != nil {
		b.set("semester", *input.Semester)
	}
	if input.ReminderHoursBefore != nil {
		b.set("reminder_hours_before", *input.ReminderHoursBefore)
	}

	if b.empty() {
		return current, nil
	}

	query, args := b.query("schedules", scheduleID, userID)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return domain.Schedule{}, fmt.Errorf("update schedule %d: %w", scheduleID, err)
	}

	return r.getSchedule(ctx, userID, scheduleID)
}

func (r *ScheduleRepository) DeleteSchedule(ctx context.Context, userID, scheduleID uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM schedules WHERE id = ? AND user_id = ?", scheduleID, userID)
	if err != nil {
		return fmt.Errorf("delete schedule %d: %w", scheduleID, err)
	}
	return requireAffected(result, domain.ErrScheduleNotFound)
}

func mapScheduleRow(row scheduleRow) domain.Schedule {
	return domain.Schedule{
		ID:                  row.ID,
		UserID:              row.UserID,
		CourseName:          row.CourseName,
		CourseCode:          stringPtr(row.CourseCode),
		Day:                 domain.Weekday(row.Day),
		StartTime:           row.StartTime,
		EndTime:             row.EndTime,
		Room:                stringPtr(row.Room),
		Lecturer:            stringPtr(row.Lecturer),
		Semester:            row.Semester,
		ReminderHoursBefore: row.ReminderHoursBefore,
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}
}
