package priority

import (
	"math"
	"strconv"
	"strings"
	"time"

	"lifedash/internal/core/domain"
)

// All disables a filter dimension. The empty string and the legacy
// Indonesian label "Semua" do the same.
const All = "all"

const (
	DueToday    = "today"
	DueTomorrow = "tomorrow"
	DueThisWeek = "this-week"
	DueOverdue  = "overdue"
)

type TaskFilter struct {
	Search   string
	Category string
	Status   string
	DueRange string
	MinScore string
}

type taskPredicate = func(domain.Task) bool

// FilterTasks keeps the tasks matching every active dimension of f, in input
// order. Day buckets use midnight in now's location.
func FilterTasks(tasks []domain.Task, f TaskFilter, now time.Time) []domain.Task {
	return keep(tasks, f.predicates(now))
}

// keep returns the items matching every predicate, in input order.
func keep[T any](items []T, predicates []func(T) bool) []T {
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if matchesAll(item, predicates) {
			kept = append(kept, item)
		}
	}
	return kept
}

func matchesAll[T any](item T, predicates []func(T) bool) bool {
	for _, match := range predicates {
		if !match(item) {
			return false
		}
	}
	return true
}

// parseThreshold reads a min-score value. A full decimal number is used as
// is; otherwise the leading integer counts ("50abc" is 50). Anything else,
// and non-finite values, disable the filter.
func parseThreshold(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if parsed, err := strconv.ParseFloat(value, 64); err == nil {
		return parsed, !math.IsNaN(parsed) && !math.IsInf(parsed, 0)
	}

	end := 0
	if end < len(value) && (value[end] == '+' || value[end] == '-') {
		end++
	}
	digits := end
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(value[:end], 64)
	return parsed, err == nil
}

func (f TaskFilter) predicates(now time.Time) []taskPredicate {
	var predicates []taskPredicate

	if search := strings.TrimSpace(f.Search); search != "" {
		needle := strings.ToLower(search)
		predicates = append(predicates, func(t domain.Task) bool {
			return containsFold(t.Title, needle) ||
				containsFold(t.DescriptionText(), needle) ||
				containsFold(t.CategoryName(), needle)
		})
	}

	if !isAll(f.Category) {
		predicates = append(predicates, func(t domain.Task) bool {
			return t.CategoryName() == f.Category
		})
	}

	if !isAll(f.Status) {
		predicates = append(predicates, func(t domain.Task) bool {
			return string(t.Status) == f.Status
		})
	}

	if !isAll(f.DueRange) {
		predicates = append(predicates, dueRangePredicate(f.DueRange, now))
	}

	if !isAll(f.MinScore) {
		if minScore, ok := parseThreshold(f.MinScore); ok {
			predicates = append(predicates, func(t domain.Task) bool {
				score, err := TaskScore(t, now)
				return err == nil && float64(score) >= minScore
			})
		}
	}

	return predicates
}

func dueRangePredicate(bucket string, now time.Time) taskPredicate {
	today := startOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)
	dayAfter := today.AddDate(0, 0, 2)
	weekEnd := today.AddDate(0, 0, 7)

	return func(t domain.Task) bool {
		if t.DueDate == nil {
			return false
		}
		due := *t.DueDate

		switch bucket {
		case DueToday:
			return within(due, today, tomorrow)
		case DueTomorrow:
			return within(due, tomorrow, dayAfter)
		case DueThisWeek:
			return within(due, today, weekEnd)
		case DueOverdue:
			return due.Before(today) && t.Status != domain.TaskStatusDone
		default:
			return true
		}
	}
}

func isAll(value string) bool {
	value = strings.TrimSpace(value)
	return value == "" || strings.EqualFold(value, All) || value == "Semua"
}

func containsFold(haystack, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), lowerNeedle)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// within reports whether t lies in [from, to).
func within(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}
