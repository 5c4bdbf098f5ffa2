package progress

import "github.com/alexanderramin/trekops/internal/domain"

// SectionBudgetTotal resolves the display value of a calculated total task:
// the sum of budget amounts over its budget-with-voucher siblings in the
// same category and section, skipping entries marked Not Applicable. Tasks
// without an amount contribute zero. The result is display-only and is
// never written back into the task's input value, so the calculated task
// itself stays perpetually incomplete under the standard rule.
func SectionBudgetTotal(task *domain.Task, all []domain.Task) float64 {
	if !task.IsCalculated {
		return 0
	}
	var total float64
	for i := range all {
		t := &all[i]
		if t.Category != task.Category || t.Section != task.Section {
			continue
		}
		if t.InputType != domain.InputBudgetVoucher || t.IsNA {
			continue
		}
		if t.BudgetAmount != nil {
			total += *t.BudgetAmount
		}
	}
	return total
}
