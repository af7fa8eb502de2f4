// Package reminder decides which class schedules need a reminder right now
// and renders the reminder text.
package reminder

import (
	"fmt"
	"strings"
	"time"

	"lifedash/internal/core/domain"
)

// Window is how long after the reminder instant a schedule still counts as
// due. Ticks inside the window after the first delivery are deduplicated by
// the caller.
const Window = 5 * time.Minute

var dayLabels = map[domain.Weekday]string{
	domain.Monday:    "Senin",
	domain.Tuesday:   "Selasa",
	domain.Wednesday: "Rabu",
	domain.Thursday:  "Kamis",
	domain.Friday:    "Jumat",
	domain.Saturday:  "Sabtu",
	domain.Sunday:    "Minggu",
}

// IsDue reports whether s should be reminded at now. now must already be in
// the timezone the schedule clock times are written in.
func IsDue(s domain.Schedule, now time.Time) bool {
	_, ok := Occurrence(s, now)
	return ok
}

// Occurrence returns the start of the class that s should be reminded about
// at now. The reminder instant may fall on the day before the class, so a
// 00:30 class with a one hour lead is reminded at 23:30 the evening before.
func Occurrence(s domain.Schedule, now time.Time) (time.Time, bool) {
	if s.ReminderHoursBefore <= 0 {
		return time.Time{}, false
	}

	start, err := domain.ClockMinutes(s.StartTime)
	if err != nil {
		return time.Time{}, false
	}

	lead := time.Duration(s.ReminderHoursBefore) * time.Hour
	for offset := 0; offset <= s.ReminderHoursBefore/24+1; offset++ {
		classStart := time.Date(now.Year(), now.Month(), now.Day()+offset, 0, start, 0, 0, now.Location())
		if s.Day != domain.WeekdayOf(classStart.Weekday()) {
			continue
		}
		remindAt := classStart.Add(-lead)
		if !now.Before(remindAt) && now.Before(remindAt.Add(Window)) {
			return classStart, true
		}
	}
	return time.Time{}, false
}

// Due returns the schedules from schedules that are due at now, in order.
func Due(schedules []domain.ScheduleWithChat, now time.Time) []domain.ScheduleWithChat {
	due := make([]domain.ScheduleWithChat, 0)
	for _, s := range schedules {
		if s.ChatID != "" && IsDue(s.Schedule, now) {
			due = append(due, s)
		}
	}
	return due
}

func DayLabel(d domain.Weekday) string {
	if label, ok := dayLabels[d]; ok {
		return label
	}
	return string(d)
}

// Message renders the Telegram HTML text for a class reminder.
func Message(s domain.Schedule) string {
	course := "<b>" + escape(s.CourseName) + "</b>"
	if s.CourseCode != nil && *s.CourseCode != "" {
		course += " (" + escape(*s.CourseCode) + ")"
	}

	lines := []string{
		"🕒 <b>Pengingat Kuliah</b>",
		"",
		"Mata kuliah : " + course,
		"Hari        : " + DayLabel(s.Day),
		fmt.Sprintf("Jam         : %s - %s", s.StartTime, s.EndTime),
	}
	if s.Room != nil && *s.Room != "" {
		lines = append(lines, "Ruangan     : "+escape(*s.Room))
	}
	if s.Lecturer != nil && *s.Lecturer != "" {
		lines = append(lines, "Dosen       : "+escape(*s.Lecturer))
	}
	lines = append(lines,
		"Semester    : "+escape(s.Semester),
		"",
		fmt.Sprintf("⏰ Reminder ini dikirim %d jam sebelum kuliah dimulai.", s.ReminderHoursBefore),
	)

	return strings.Join(lines, "\n")
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escape(s string) string {
	return htmlEscaper.Replace(s)
}
