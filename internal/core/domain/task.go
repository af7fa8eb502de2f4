package domain

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusDone       TaskStatus = "done"
)

const (
	MinWeight = 1
	MaxWeight = 5
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// Next returns the status reached by toggling: todo -> in-progress -> done -> todo.
func (s TaskStatus) Next() TaskStatus {
	switch s {
	case TaskStatusTodo:
		return TaskStatusInProgress
	case TaskStatusInProgress:
		return TaskStatusDone
	default:
		return TaskStatusTodo
	}
}

type Task struct {
	ID          uint64
	UserID      uint64
	Title       string
	Description *string
	Status      TaskStatus
	Weight      int
	EstHours    float64
	DueDate     *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Category    *Category
}

// CategoryName returns the name of the task category, or "" when uncategorized.
func (t Task) CategoryName() string {
	if t.Category == nil {
		return ""
	}
	return t.Category.Name
}

func (t Task) DescriptionText() string {
	if t.Description == nil {
		return ""
	}
	return *t.Description
}

type CreateTaskInput struct {
	UserID      uint64
	Title       string
	Description *string
	Status      TaskStatus
	Weight      int
	EstHours    float64
	DueDate     *time.Time
	CategoryID  *uint64
}

type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Status         *TaskStatus
	Weight         *int
	EstHours       *float64
	DueDate        *time.Time
	DueDateSet     bool
	CategoryID     *uint64
	CategoryIDSet  bool
}
