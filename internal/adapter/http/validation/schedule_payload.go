package validation

import (
	"encoding/json"
	"errors"
	"strings"

	"lifedash/internal/adapter/http/dto"
	"lifedash/internal/core/domain"
)

const (
	defaultReminderHours = 1
	maxReminderHours     = 24
)

var ErrInvalidSchedulePayload = errors.New("invalid schedule payload")

func BuildCreateScheduleInput(userID uint64, req dto.CreateScheduleRequest) (domain.CreateScheduleInput, error) {
	courseName := strings.TrimSpace(req.CourseName)
	semester := strings.TrimSpace(req.Semester)
	if courseName == "" || semester == "" {
		return domain.CreateScheduleInput{}, ErrInvalidSchedulePayload
	}

	day := domain.Weekday(strings.ToLower(strings.TrimSpace(req.Day)))
	if !day.Valid() {
		return domain.CreateScheduleInput{}, ErrInvalidSchedulePayload
	}

	if err := validClockRange(req.StartTime, req.EndTime); err != nil {
		return domain.CreateScheduleInput{}, err
	}

	hours := defaultReminderHours
	if req.ReminderHoursBefore != nil {
		hours = *req.ReminderHoursBefore
	}
	if !validReminderHours(hours) {
		return domain.CreateScheduleInput{}, ErrInvalidSchedulePayload
	}

	return domain.CreateScheduleInput{
		UserID:              userID,
		CourseName:          courseName,
		CourseCode:          req.CourseCode,
		Day:                 day,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		Room:                req.Room,
		Lecturer:            req.Lecturer,
		Semester:            semester,
		ReminderHoursBefore: hours,
	}, nil
}

// BuildUpdateScheduleInput validates a partial update. A changed start or end
// time is checked against the other bound only when both are sent.
func BuildUpdateScheduleInput(req dto.UpdateScheduleRequest, raw map[string]json.RawMessage) (domain.UpdateScheduleInput, error) {
	if !hasAnyField(raw, "course_name", "course_code", "day", "start_time", "end_time", "room", "lecturer", "semester", "reminder_hours_before") {
		return domain.UpdateScheduleInput{}, ErrInvalidSchedulePayload
	}

	input := domain.UpdateScheduleInput{
		CourseCode:          req.CourseCode,
		CourseCodeSet:       hasJSONField(raw, "course_code"),
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		Room:                req.Room,
		RoomSet:             hasJSONField(raw, "room"),
		Lecturer:            req.Lecturer,
		LecturerSet:         hasJSONField(raw, "lecturer"),
		ReminderHoursBefore: req.ReminderHoursBefore,
	}

	for _, field := range []string{"course_name", "day", "start_time", "end_time", "semester", "reminder_hours_before"} {
		if hasJSONField(raw, field) && isJSONNull(raw[field]) {
			return domain.UpdateScheduleInput{}, ErrInvalidSchedulePayload
		}
	}

	if req.CourseName != nil {
		value := strings.TrimSpace(*req.CourseName)
		if value == "" {
			return domain.UpdateScheduleInput{}, ErrInvalidSchedulePayload
		}
		input.CourseName = &value
	}
	if req.Semester != nil {
		value := strings.TrimSpace(*req.Semester)
		if value == "" {
			return domain.UpdateScheduleInput{}, ErrInvalidSchedulePayload
		}
		input.Semester = &value
	}
	if req.Day != nil {
		day := domain.Weekday(strings.ToLower(strings.TrimSpace(*req.Day)))
		if !day.Valid() {
			return domain.UpdateScheduleInput{}, ErrInvalidSchedulePayload
		}
		input.Day = &day
	}

	switch {
	case req.StartTime != nil && req.EndTime != nil:
		if err := validClockRange(*req.StartTime, *req.EndTime); err != nil {
			return domain.UpdateScheduleInput{}, err
		}
	case req.StartTime != nil:
		if _, err := domain.ClockMinutes(*req.StartTime); err != nil {
			return domain.UpdateScheduleInput{}, ErrInvalidSchedulePayload
		}
	case req.EndTime != nil:
		if _, err := domain.ClockMinutes(*req.EndTime); err != nil {
			return domain.UpdateScheduleInput{}, ErrInvalidSchedulePayload
		}
	}

	if req.ReminderHoursBefore != nil && !validReminderHours(*req.ReminderHoursBefore) {
		return domain.UpdateScheduleInput{}, ErrInvalidSchedulePayload
	}

	return input, nil
}

func validClockRange(start, end string) error {
	startMinutes, err := domain.ClockMinutes(start)
	if err != nil {
		return ErrInvalidSchedulePayload
	}
	endMinutes, err := domain.ClockMinutes(end)
	if err != nil || endMinutes <= startMinutes {
		return ErrInvalidSchedulePayload
	}
	return nil
}

// Zero disables reminders for the schedule.
func validReminderHours(hours int) bool {
	return hours >= 0 && hours <= maxReminderHours
}
