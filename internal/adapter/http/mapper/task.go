package mapper

import (
	"time"

	"lifedash/internal/adapter/http/dto"
	"lifedash/internal/core/domain"
	"lifedash/internal/core/priority"
)

func ToScoredTaskItems(tasks []priority.ScoredTask) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, st := range tasks {
		items = append(items, toTaskItem(st.Task, &st.Score))
	}
	return items
}

// ToTaskItem maps a single task, scoring it at now. Tasks that cannot be
// scored are returned without a score.
func ToTaskItem(task domain.Task, now time.Time) dto.TaskItem {
	score, err := priority.TaskScore(task, now)
	if err != nil {
		return toTaskItem(task, nil)
	}
	return toTaskItem(task, &score)
}

func toTaskItem(task domain.Task, score *int) dto.TaskItem {
	item := dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		Description: copyString(task.Description),
		Status:      string(task.Status),
		Weight:      task.Weight,
		EstHours:    task.EstHours,
		DueDate:     formatTime(task.DueDate),
		CompletedAt: formatTime(task.CompletedAt),
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
		Category:    ToCategory(task.Category),
	}

	if score != nil {
		value := *score
		item.Score = &value
		item.ScoreLevel = string(priority.ScoreLevel(value))
	}

	return item
}

func ToCategory(category *domain.Category) *dto.Category {
	if category == nil {
		return nil
	}
	return &dto.Category{ID: category.ID, Name: category.Name, Kind: string(category.Kind)}
}

func ToCategories(categories []domain.Category) []dto.Category {
	items := make([]dto.Category, 0, len(categories))
	for i := range categories {
		items = append(items, *ToCategory(&categories[i]))
	}
	return items
}

func formatTime(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := value.Format(time.RFC3339)
	return &formatted
}

func copyString(value *string) *string {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}
