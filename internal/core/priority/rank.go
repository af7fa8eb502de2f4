package priority

import (
	"sort"
	"time"

	"lifedash/internal/core/domain"
)

type ScoredTask struct {
	Task  domain.Task
	Score int
}

// Rejection is a task left out of a ranking because it failed Validate.
type Rejection struct {
	Task domain.Task
	Err  error
}

type Ranking struct {
	Ranked   []ScoredTask
	Rejected []Rejection
}

// Tasks returns the ranked tasks without their scores.
func (r Ranking) Tasks() []domain.Task {
	tasks := make([]domain.Task, 0, len(r.Ranked))
	for _, st := range r.Ranked {
		tasks = append(tasks, st.Task)
	}
	return tasks
}

// Rank scores every valid task against the single instant now and orders them
// by score descending, then due date ascending. Equal keys keep input order.
// The input slice is not modified.
func Rank(tasks []domain.Task, now time.Time) Ranking {
	ranking := Ranking{Ranked: make([]ScoredTask, 0, len(tasks))}
	for _, task := range tasks {
		score, err := TaskScore(task, now)
		if err != nil {
			ranking.Rejected = append(ranking.Rejected, Rejection{Task: task, Err: err})
			continue
		}
		ranking.Ranked = append(ranking.Ranked, ScoredTask{Task: task, Score: score})
	}

	sort.SliceStable(ranking.Ranked, func(i, j int) bool {
		a, b := ranking.Ranked[i], ranking.Ranked[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.Task.DueDate.Before(*b.Task.DueDate)
	})

	return ranking
}

// SortByPriority returns the valid tasks in priority order.
func SortByPriority(tasks []domain.Task, now time.Time) []domain.Task {
	return Rank(tasks, now).Tasks()
}

// TopPriorities ranks the tasks that are not done and keeps the first n.
// n <= 0 keeps all of them.
func TopPriorities(tasks []domain.Task, now time.Time, n int) Ranking {
	active := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Status != domain.TaskStatusDone {
			active = append(active, task)
		}
	}

	ranking := Rank(active, now)
	if n > 0 && len(ranking.Ranked) > n {
		ranking.Ranked = ranking.Ranked[:n]
	}
	return ranking
}
