package domain

import (
	"sort"
	"strings"
)

// Task is one checklist item belonging to a trek. TrekName and BaseName are
// denormalized; a task whose TrekName matches no trek simply never shows up
// in any aggregation.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	Status         TaskStatus `json:"status"`
	Priority       Priority   `json:"priority"`
	DaysBeforeTrek int        `json:"daysBeforeTrek"`

	TrekType TrekType `json:"trekType"`
	Team     Team     `json:"team"`

	Section       string `json:"section"`
	SectionNumber int    `json:"sectionNumber"`
	TaskNumber    int    `json:"taskNumber"`
	Category      string `json:"category"`
	TrekName      string `json:"trekName"`
	BaseName      string `json:"baseName"`

	InputType       InputType `json:"inputType,omitempty"`
	InputValue      string    `json:"inputValue,omitempty"`
	IsNA            bool      `json:"isNA,omitempty"`
	AllowMultiple   bool      `json:"allowMultiple,omitempty"`
	DropdownOptions []string  `json:"dropdownOptions,omitempty"`
	BudgetAmount    *float64  `json:"budgetAmount,omitempty"`
	VoucherFile     string    `json:"voucherFile,omitempty"`
	IsCalculated    bool      `json:"isCalculated,omitempty"`
}

// IsComplete evaluates the task's completion state. The NA override wins
// unconditionally; budget-with-voucher needs both an amount and a voucher;
// every other type is complete once it holds a non-blank value. Unknown or
// malformed tasks degrade to incomplete rather than erroring.
func (t *Task) IsComplete() bool {
	if t.IsNA {
		return true
	}
	if t.InputType == InputBudgetVoucher {
		return t.BudgetAmount != nil && *t.BudgetAmount >= 0 && strings.TrimSpace(t.VoucherFile) != ""
	}
	return strings.TrimSpace(t.InputValue) != ""
}

// AllowsNA reports whether the Not Applicable override is offered for this
// task. Only permits, equipment, and cash-voucher tasks can be exempted, and
// never a calculated total.
func (t *Task) AllowsNA() bool {
	if t.IsCalculated {
		return false
	}
	return t.Category == CategoryPermits ||
		t.Category == CategoryEquipment ||
		t.InputType == InputBudgetVoucher
}

// StatusForValue derives the status recorded alongside an input value write.
// NA, budget, and voucher edits never go through here; their completion is
// read live from IsComplete wherever progress is computed.
func StatusForValue(value string) TaskStatus {
	if strings.TrimSpace(value) != "" {
		return StatusCompleted
	}
	return StatusNotStarted
}

// SortTasks orders tasks by section number, then task number within the
// section. Both keys are unique within their scope, so the order is stable.
func SortTasks(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].SectionNumber != tasks[j].SectionNumber {
			return tasks[i].SectionNumber < tasks[j].SectionNumber
		}
		return tasks[i].TaskNumber < tasks[j].TaskNumber
	})
}
