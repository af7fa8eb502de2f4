package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Weekday string

const (
	Sunday    Weekday = "sunday"
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
)

var weekdays = [...]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// WeekdayOf maps a time.Weekday to the stored day name.
func WeekdayOf(d time.Weekday) Weekday {
	return weekdays[d]
}

func (d Weekday) Valid() bool {
	for _, w := range weekdays {
		if w == d {
			return true
		}
	}
	return false
}

// Schedule is a weekly recurring class slot.
type Schedule struct {
	ID                  uint64
	UserID              uint64
	CourseName          string
	CourseCode          *string
	Day                 Weekday
	StartTime           string // HH:MM
	EndTime             string // HH:MM
	Room                *string
	Lecturer            *string
	Semester            string
	ReminderHoursBefore int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// ClockMinutes parses an HH:MM clock string into minutes after midnight.
func ClockMinutes(clock string) (int, error) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	h, errH := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	return h*60 + m, nil
}

// ScheduleWithChat pairs a schedule with the Telegram chat of its owner.
type ScheduleWithChat struct {
	Schedule
	ChatID string
}

type CreateScheduleInput struct {
	UserID              uint64
	CourseName          string
	CourseCode          *string
	Day                 Weekday
	StartTime           string
	EndTime             string
	Room                *string
	Lecturer            *string
	Semester            string
	ReminderHoursBefore int
}

type UpdateScheduleInput struct {
	CourseName          *string
	CourseCode          *string
	CourseCodeSet       bool
	Day                 *Weekday
	StartTime           *string
	EndTime             *string
	Room                *string
	RoomSet             bool
	Lecturer            *string
	LecturerSet         bool
	Semester            *string
	ReminderHoursBefore *int
}
