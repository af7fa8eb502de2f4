package mapper

import (
	"time"

	"lifedash/internal/adapter/http/dto"
	"lifedash/internal/core/domain"
)

func ToScheduleItems(schedules []domain.Schedule) []dto.ScheduleItem {
	items := make([]dto.ScheduleItem, 0, len(schedules))
	for _, s := range schedules {
		items = append(items, ToScheduleItem(s))
	}
	return items
}

func ToScheduleItem(s domain.Schedule) dto.ScheduleItem {
	return dto.ScheduleItem{
		ID:                  s.ID,
		CourseName:          s.CourseName,
		CourseCode:          copyString(s.CourseCode),
		Day:                 string(s.Day),
		StartTime:           s.StartTime,
		EndTime:             s.EndTime,
		Room:                copyString(s.Room),
		Lecturer:            copyString(s.Lecturer),
		Semester:            s.Semester,
		ReminderHoursBefore: s.ReminderHoursBefore,
		CreatedAt:           s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           s.UpdatedAt.Format(time.RFC3339),
	}
}
