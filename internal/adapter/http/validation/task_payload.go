package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"time"

	"lifedash/internal/adapter/http/dto"
	"lifedash/internal/core/domain"
)

const defaultEstHours = 1.0

var ErrInvalidTaskPayload = errors.New("invalid task payload")

func BuildCreateTaskInput(userID uint64, req dto.CreateTaskRequest, raw map[string]json.RawMessage, loc *time.Location) (domain.CreateTaskInput, error) {
	if hasJSONField(raw, "status") && req.Status == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	if hasJSONField(raw, "weight") && req.Weight == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	if hasJSONField(raw, "est_hours") && req.EstHours == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	status := domain.TaskStatusTodo
	if req.Status != nil {
		status = domain.TaskStatus(*req.Status)
	}

	weight := 3
	if req.Weight != nil {
		weight = *req.Weight
	}
	if !validWeight(weight) {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	estHours := defaultEstHours
	if req.EstHours != nil {
		estHours = *req.EstHours
	}
	if !validEstHours(estHours) {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	// A task without a deadline cannot be ranked.
	if req.DueDate == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	dueDate, err := ParseTime(*req.DueDate, loc)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	return domain.CreateTaskInput{
		UserID:      userID,
		Title:       title,
		Description: req.Description,
		Status:      status,
		Weight:      weight,
		EstHours:    estHours,
		DueDate:     &dueDate,
		CategoryID:  req.CategoryID,
	}, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage, loc *time.Location) (domain.UpdateTaskInput, error) {
	if !hasAnyField(raw, "title", "description", "status", "weight", "est_hours", "due_date", "category_id") {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var title *string
	if hasJSONField(raw, "title") && req.Title == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		title = &value
	}

	var status *domain.TaskStatus
	if hasJSONField(raw, "status") && req.Status == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Status != nil {
		value := domain.TaskStatus(*req.Status)
		status = &value
	}

	if hasJSONField(raw, "weight") && (req.Weight == nil || !validWeight(*req.Weight)) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if hasJSONField(raw, "est_hours") && (req.EstHours == nil || !validEstHours(*req.EstHours)) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	descriptionSet := hasJSONField(raw, "description")
	if descriptionSet && !isJSONNull(raw["description"]) && req.Description == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	// due_date may be changed but not cleared.
	var dueDate *time.Time
	dueDateSet := hasJSONField(raw, "due_date")
	if dueDateSet {
		if req.DueDate == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		parsedDueDate, err := ParseTime(*req.DueDate, loc)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		dueDate = &parsedDueDate
	}

	categoryIDSet := hasJSONField(raw, "category_id")
	if categoryIDSet && !isJSONNull(raw["category_id"]) && req.CategoryID == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	return domain.UpdateTaskInput{
		Title:          title,
		Description:    req.Description,
		DescriptionSet: descriptionSet,
		Status:         status,
		Weight:         req.Weight,
		EstHours:       req.EstHours,
		DueDate:        dueDate,
		DueDateSet:     dueDateSet,
		CategoryID:     req.CategoryID,
		CategoryIDSet:  categoryIDSet,
	}, nil
}

func validWeight(weight int) bool {
	return weight >= domain.MinWeight && weight <= domain.MaxWeight
}

func validEstHours(hours float64) bool {
	return hours > 0 && !math.IsInf(hours, 0) && !math.IsNaN(hours)
}

// ParseTime accepts RFC3339, a datetime-local value or a bare date. Values
// without an offset are read in loc.
func ParseTime(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unsupported time format")
}

func hasAnyField(raw map[string]json.RawMessage, fields ...string) bool {
	for _, field := range fields {
		if hasJSONField(raw, field) {
			return true
		}
	}
	return false
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
