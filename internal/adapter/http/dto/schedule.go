package dto

type ScheduleItem struct {
	ID                  uint64  `json:"id"`
	CourseName          string  `json:"course_name"`
	CourseCode          *string `json:"course_code,omitempty"`
	Day                 string  `json:"day"`
	StartTime           string  `json:"start_time"`
	EndTime             string  `json:"end_time"`
	Room                *string `json:"room,omitempty"`
	Lecturer            *string `json:"lecturer,omitempty"`
	Semester            string  `json:"semester"`
	ReminderHoursBefore int     `json:"reminder_hours_before"`
	CreatedAt           string  `json:"created_at"`
	UpdatedAt           string  `json:"updated_at"`
}

type CreateScheduleRequest struct {
	CourseName          string  `json:"course_name" binding:"required,max=255"`
	CourseCode          *string `json:"course_code" binding:"omitempty,max=50"`
	Day                 string  `json:"day" binding:"required"`
	StartTime           string  `json:"start_time" binding:"required"`
	EndTime             string  `json:"end_time" binding:"required"`
	Room                *string `json:"room" binding:"omitempty,max=100"`
	Lecturer            *string `json:"lecturer" binding:"omitempty,max=255"`
	Semester            string  `json:"semester" binding:"required,max=50"`
	ReminderHoursBefore *int    `json:"reminder_hours_before"`
}

type UpdateScheduleRequest struct {
	CourseName          *string `json:"course_name" binding:"omitempty,max=255"`
	CourseCode          *string `json:"course_code" binding:"omitempty,max=50"`
	Day                 *string `json:"day"`
	StartTime           *string `json:"start_time"`
	EndTime             *string `json:"end_time"`
	Room                *string `json:"room" binding:"omitempty,max=100"`
	Lecturer            *string `json:"lecturer" binding:"omitempty,max=255"`
	Semester            *string `json:"semester" binding:"omitempty,max=50"`
	ReminderHoursBefore *int    `json:"reminder_hours_before"`
}

type SendRemindersResponse struct {
	SentTo []uint64 `json:"sent_to"`
	Count  int      `json:"count"`
}
