// Package progress computes completion rollups from a flat task collection.
// Everything here is a pure function over slices: filter, then count. The
// three views share one filtering vocabulary (Scope) so a task included in a
// category rollup is included in the trek and base rollups under the same
// selection.
package progress

import (
	"time"

	"github.com/alexanderramin/trekops/internal/domain"
)

// Scope is the selection context shared by all three views. An empty
// BaseName means no base filter.
type Scope struct {
	TrekType domain.TrekType
	Team     domain.Team
	BaseName string
}

func (s Scope) matches(t *domain.Task) bool {
	if t.TrekType != s.TrekType || t.Team != s.Team {
		return false
	}
	if s.BaseName != "" && t.BaseName != s.BaseName {
		return false
	}
	return true
}

// CategorySummary is the completion count for one of the six fixed
// categories of a single trek.
type CategorySummary struct {
	Name      string
	Completed int
	Total     int
}

// TrekSummary pairs a trek's metadata with its task completion count. A
// trek with no matching tasks still appears with Total 0.
type TrekSummary struct {
	Name            string
	StartDate       time.Time
	EndDate         time.Time
	NumberOfClients int
	Completed       int
	Total           int
}

// BaseSummary counts trips per base. ActiveTrips is an activity rate, not a
// completion rate: a trek is active once any of its tasks has moved past
// not-started.
type BaseSummary struct {
	Name        string
	ActiveTrips int
	TotalTrips  int
}

// CategoryProgress computes completed/total for each fixed category of the
// named trek. The base filter does not apply here; a trek's categories are
// always counted over the whole trek.
func CategoryProgress(tasks []domain.Task, trekName string, scope Scope) []CategorySummary {
	out := make([]CategorySummary, 0, len(domain.CategoryNames))
	for _, cat := range domain.CategoryNames {
		s := CategorySummary{Name: cat}
		for i := range tasks {
			t := &tasks[i]
			if t.TrekName != trekName || t.Category != cat {
				continue
			}
			if t.TrekType != scope.TrekType || t.Team != scope.Team {
				continue
			}
			s.Total++
			if t.IsComplete() {
				s.Completed++
			}
		}
		out = append(out, s)
	}
	return out
}

// TrekProgress computes completed/total per seeded trek under the scope.
// Trek metadata comes from the trek records; tasks contribute only counts.
func TrekProgress(tasks []domain.Task, treks []domain.Trek, scope Scope) []TrekSummary {
	out := make([]TrekSummary, 0, len(treks))
	for _, trek := range treks {
		s := TrekSummary{
			Name:            trek.Name,
			StartDate:       trek.StartDate,
			EndDate:         trek.EndDate,
			NumberOfClients: trek.NumberOfClients,
		}
		for i := range tasks {
			t := &tasks[i]
			if t.TrekName != trek.Name || !scope.matches(t) {
				continue
			}
			s.Total++
			if t.IsComplete() {
				s.Completed++
			}
		}
		out = append(out, s)
	}
	return out
}

// FilterTreks keeps only the summaries whose trek has at least one task
// under the scope. With no base filter every summary passes through; this
// drives the trek selection list, where a base with no stake in a trek
// should not see it.
func FilterTreks(summaries []TrekSummary, tasks []domain.Task, scope Scope) []TrekSummary {
	if scope.BaseName == "" {
		return summaries
	}
	var out []TrekSummary
	for _, s := range summaries {
		for i := range tasks {
			t := &tasks[i]
			if t.TrekName == s.Name && scope.matches(t) {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// BaseProgress computes the trip activity rollup per base. TotalTrips is
// the number of distinct trek names with tasks at the base; ActiveTrips
// counts the treks among them with at least one task in progress or
// completed, each trek counted once.
func BaseProgress(tasks []domain.Task, baseNames []string, scope Scope) []BaseSummary {
	out := make([]BaseSummary, 0, len(baseNames))
	for _, base := range baseNames {
		s := BaseSummary{Name: base}
		active := make(map[string]bool)
		seen := make(map[string]bool)
		for i := range tasks {
			t := &tasks[i]
			if t.BaseName != base || t.TrekType != scope.TrekType || t.Team != scope.Team {
				continue
			}
			if !seen[t.TrekName] {
				seen[t.TrekName] = true
				s.TotalTrips++
			}
			if t.Status == domain.StatusInProgress || t.Status == domain.StatusCompleted {
				active[t.TrekName] = true
			}
		}
		s.ActiveTrips = len(active)
		out = append(out, s)
	}
	return out
}

// TasksForCategory returns the trek's tasks in one category under the
// scope, in section/task order. This is the subset a task page renders.
func TasksForCategory(tasks []domain.Task, trekName, category string, scope Scope) []domain.Task {
	var out []domain.Task
	for i := range tasks {
		t := &tasks[i]
		if t.TrekName != trekName || t.Category != category {
			continue
		}
		if t.TrekType != scope.TrekType || t.Team != scope.Team {
			continue
		}
		out = append(out, *t)
	}
	domain.SortTasks(out)
	return out
}
