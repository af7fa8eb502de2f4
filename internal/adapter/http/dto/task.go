package dto

type TaskItem struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Status      string    `json:"status"`
	Weight      int       `json:"weight"`
	EstHours    float64   `json:"est_hours"`
	DueDate     *string   `json:"due_date,omitempty"`
	CompletedAt *string   `json:"completed_at,omitempty"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
	Category    *Category `json:"category,omitempty"`
	// Score is absent when the task cannot be scored.
	Score      *int   `json:"score,omitempty"`
	ScoreLevel string `json:"score_level,omitempty"`
}

type CreateTaskRequest struct {
	Title       string   `json:"title" binding:"required,max=255"`
	Description *string  `json:"description" binding:"omitempty,max=65535"`
	Status      *string  `json:"status" binding:"omitempty,oneof=todo in-progress done"`
	Weight      *int     `json:"weight"`
	EstHours    *float64 `json:"est_hours"`
	DueDate     *string  `json:"due_date"`
	CategoryID  *uint64  `json:"category_id" binding:"omitempty,gt=0"`
}

type UpdateTaskRequest struct {
	Title       *string  `json:"title" binding:"omitempty,max=255"`
	Description *string  `json:"description" binding:"omitempty,max=65535"`
	Status      *string  `json:"status" binding:"omitempty,oneof=todo in-progress done"`
	Weight      *int     `json:"weight"`
	EstHours    *float64 `json:"est_hours"`
	DueDate     *string  `json:"due_date"`
	CategoryID  *uint64  `json:"category_id" binding:"omitempty,gt=0"`
}
