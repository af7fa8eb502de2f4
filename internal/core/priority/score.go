// Package priority ranks and filters tasks and transactions for display.
//
// Every function here is pure: the evaluation instant is always passed in as
// now and nothing is persisted, so scores drift with the clock without writes.
package priority

import (
	"errors"
	"fmt"
	"math"
	"time"

	"lifedash/internal/core/domain"
)

const (
	MaxScore = 100

	minDaysLeft = 0.001
	minEstHours = 0.5

	deadlineShare = 0.6
	weightShare   = 0.3
	estimateShare = 0.1
	scoreScale    = 10

	day = 24 * time.Hour
)

var (
	ErrMissingDueDate  = errors.New("task has no due date")
	ErrInvalidWeight   = errors.New("task weight out of range")
	ErrInvalidEstimate = errors.New("task estimate is not a finite non-negative number")
)

// Score computes the urgency score of a task due at due.
//
// Overdue tasks saturate: anything at or past its deadline uses the same
// 0.001 day floor, so one hour late and six months late score the same.
// Weight is not clamped here.
func Score(due time.Time, weight int, estHours float64, now time.Time) int {
	daysLeft := math.Max(float64(due.Sub(now))/float64(day), minDaysLeft)

	deadlineFactor := 1 / daysLeft
	weightFactor := float64(weight) / domain.MaxWeight
	estFactor := 1 / math.Max(estHours, minEstHours)

	raw := deadlineFactor*deadlineShare + weightFactor*weightShare + estFactor*estimateShare

	return int(math.Min(math.Round(raw*scoreScale), MaxScore))
}

// Validate reports why a task cannot be scored, or nil.
func Validate(task domain.Task) error {
	if task.DueDate == nil || task.DueDate.IsZero() {
		return ErrMissingDueDate
	}
	if task.Weight < domain.MinWeight || task.Weight > domain.MaxWeight {
		return fmt.Errorf("%w: %d", ErrInvalidWeight, task.Weight)
	}
	if math.IsNaN(task.EstHours) || math.IsInf(task.EstHours, 0) || task.EstHours < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidEstimate, task.EstHours)
	}
	return nil
}

// TaskScore validates task and scores it against now.
func TaskScore(task domain.Task, now time.Time) (int, error) {
	if err := Validate(task); err != nil {
		return 0, err
	}
	return Score(*task.DueDate, task.Weight, task.EstHours, now), nil
}

type Level string

const (
	LevelCritical Level = "critical"
	LevelHigh     Level = "high"
	LevelMedium   Level = "medium"
	LevelLow      Level = "low"
)

// ScoreLevel buckets a score into the badge tier shown next to a task.
func ScoreLevel(score int) Level {
	switch {
	case score >= 80:
		return LevelCritical
	case score >= 60:
		return LevelHigh
	case score >= 40:
		return LevelMedium
	default:
		return LevelLow
	}
}
