package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/trekops/internal/domain"
)

var taskCounter atomic.Int64

// TaskOption mutates a fixture task before it is returned.
type TaskOption func(*domain.Task)

func WithStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) { t.Status = s }
}

func WithInputType(it domain.InputType) TaskOption {
	return func(t *domain.Task) { t.InputType = it }
}

func WithInputValue(v string) TaskOption {
	return func(t *domain.Task) {
		t.InputValue = v
		t.Status = domain.StatusForValue(v)
	}
}

func WithDropdown(options ...string) TaskOption {
	return func(t *domain.Task) { t.DropdownOptions = options }
}

func WithNA() TaskOption {
	return func(t *domain.Task) { t.IsNA = true }
}

func WithBudget(amount float64, voucher string) TaskOption {
	return func(t *domain.Task) {
		t.BudgetAmount = &amount
		t.VoucherFile = voucher
	}
}

func WithSection(name string, sectionNumber, taskNumber int) TaskOption {
	return func(t *domain.Task) {
		t.Section = name
		t.SectionNumber = sectionNumber
		t.TaskNumber = taskNumber
	}
}

func WithTeam(team domain.Team) TaskOption {
	return func(t *domain.Task) { t.Team = team }
}

func Calculated() TaskOption {
	return func(t *domain.Task) { t.IsCalculated = true }
}

// NewTask returns a task fixture in the default scope (treks / support)
// with a unique id. Section defaults to the category at ordinal position 1.
func NewTask(trekName, baseName, category string, opts ...TaskOption) domain.Task {
	n := taskCounter.Add(1)
	t := domain.Task{
		ID:            fmt.Sprintf("task-%03d", n),
		Title:         fmt.Sprintf("Task %d", n),
		Status:        domain.StatusNotStarted,
		Priority:      domain.PriorityHigh,
		TrekType:      domain.TrekTypeTreks,
		Team:          domain.TeamSupport,
		InputType:     domain.InputText,
		Section:       category,
		SectionNumber: 1,
		TaskNumber:    int(n),
		Category:      category,
		TrekName:      trekName,
		BaseName:      baseName,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// NewTrek returns a trek fixture starting well in the future so fixtures
// are editable by default.
func NewTrek(name, baseName string) domain.Trek {
	start := time.Date(2030, 6, 15, 0, 0, 0, 0, time.UTC)
	return domain.Trek{
		ID:              "trek-" + name,
		Name:            name,
		StartDate:       start,
		EndDate:         start.AddDate(0, 0, 7),
		NumberOfClients: 12,
		BaseName:        baseName,
	}
}

// OneTaskPerCategory returns six not-started tasks for a trek, one in each
// fixed category.
func OneTaskPerCategory(trekName, baseName string) []domain.Task {
	out := make([]domain.Task, 0, len(domain.CategoryNames))
	for i, cat := range domain.CategoryNames {
		out = append(out, NewTask(trekName, baseName, cat, WithSection(cat, i+1, 1)))
	}
	return out
}
