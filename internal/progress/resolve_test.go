package progress

import (
	"testing"

	"github.com/alexanderramin/trekops/internal/domain"
	"github.com/alexanderramin/trekops/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestSectionBudgetTotal_SumsSectionSkippingNA(t *testing.T) {
	section := func(opts ...testutil.TaskOption) domain.Task {
		opts = append([]testutil.TaskOption{
			testutil.WithInputType(domain.InputBudgetVoucher),
			testutil.WithSection("Advance Payments", 2, 0),
		}, opts...)
		return testutil.NewTask("Markha Valley Trek", "Ladakh", domain.CategoryFieldAccounts, opts...)
	}

	all := []domain.Task{
		section(testutil.WithBudget(500, "v1.pdf")),
		section(testutil.WithBudget(300, "")),
		section(testutil.WithBudget(200, "v3.pdf"), testutil.WithNA()),
		section(),
	}
	total := section(testutil.Calculated())
	all = append(all, total)

	assert.Equal(t, 800.0, SectionBudgetTotal(&total, all))
}

func TestSectionBudgetTotal_ScopedToOwnSection(t *testing.T) {
	inSection := testutil.NewTask("Markha Valley Trek", "Ladakh", domain.CategoryFieldAccounts,
		testutil.WithInputType(domain.InputBudgetVoucher),
		testutil.WithSection("Advance Payments", 2, 1),
		testutil.WithBudget(100, "a.pdf"))
	otherSection := testutil.NewTask("Markha Valley Trek", "Ladakh", domain.CategoryFieldAccounts,
		testutil.WithInputType(domain.InputBudgetVoucher),
		testutil.WithSection("Settlements", 3, 1),
		testutil.WithBudget(999, "b.pdf"))
	otherCategory := testutil.NewTask("Markha Valley Trek", "Ladakh", domain.CategoryKitchen,
		testutil.WithInputType(domain.InputBudgetVoucher),
		testutil.WithSection("Advance Payments", 2, 2),
		testutil.WithBudget(999, "c.pdf"))
	total := testutil.NewTask("Markha Valley Trek", "Ladakh", domain.CategoryFieldAccounts,
		testutil.Calculated(),
		testutil.WithSection("Advance Payments", 2, 9))

	all := []domain.Task{inSection, otherSection, otherCategory, total}
	assert.Equal(t, 100.0, SectionBudgetTotal(&total, all))
}

func TestSectionBudgetTotal_NonCalculatedTaskResolvesZero(t *testing.T) {
	task := testutil.NewTask("Markha Valley Trek", "Ladakh", domain.CategoryFieldAccounts,
		testutil.WithInputType(domain.InputBudgetVoucher),
		testutil.WithBudget(500, "v.pdf"))
	assert.Zero(t, SectionBudgetTotal(&task, []domain.Task{task}))
}

func TestSectionBudgetTotal_EmptySectionIsZero(t *testing.T) {
	total := testutil.NewTask("Markha Valley Trek", "Ladakh", domain.CategoryFieldAccounts,
		testutil.Calculated(),
		testutil.WithSection("Advance Payments", 2, 1))
	assert.Zero(t, SectionBudgetTotal(&total, []domain.Task{total}))
}

func TestCalculatedTask_StaysIncompleteAndCounted(t *testing.T) {
	tasks := []domain.Task{
		testutil.NewTask("Markha Valley Trek", "Ladakh", domain.CategoryFieldAccounts,
			testutil.Calculated()),
	}
	accounts := findCategory(t, CategoryProgress(tasks, "Markha Valley Trek", defaultScope), domain.CategoryFieldAccounts)
	assert.Equal(t, 1, accounts.Total, "calculated tasks count toward totals")
	assert.Equal(t, 0, accounts.Completed, "derived display values never complete the task")
}
