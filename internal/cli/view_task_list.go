package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/trekops/internal/cli/formatter"
	"github.com/alexanderramin/trekops/internal/domain"
	"github.com/alexanderramin/trekops/internal/store"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// checklistRow is one rendered line: either a section header or a task.
type checklistRow struct {
	isSection bool
	section   string
	task      domain.Task
}

// checklistView shows the selected category's tasks grouped by section.
type checklistView struct {
	state  *SharedState
	rows   []checklistRow
	cursor int
	notice string
}

func newTaskListView(state *SharedState) *checklistView {
	v := &checklistView{state: state}
	v.rows = v.buildRows()
	return v
}

func (v *checklistView) ID() ViewID    { return ViewTaskList }
func (v *checklistView) Title() string { return v.state.App.Nav.Category() }

func (v *checklistView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "toggle n/a")),
	}
}

func (v *checklistView) Init() tea.Cmd { return nil }

func (v *checklistView) buildRows() []checklistRow {
	tasks := v.state.App.CategoryTasks()
	var rows []checklistRow
	lastSection := ""
	for _, t := range tasks {
		if t.Section != lastSection {
			rows = append(rows, checklistRow{isSection: true, section: t.Section})
			lastSection = t.Section
		}
		rows = append(rows, checklistRow{task: t})
	}
	return rows
}

func (v *checklistView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.rows = v.buildRows()
		if v.cursor >= len(v.rows) && v.cursor > 0 {
			v.cursor = len(v.rows) - 1
		}
		return v, nil

	case tea.KeyMsg:
		v.notice = ""
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.rows)-1 {
				v.cursor++
			}
		case "enter":
			if t, ok := v.selectedTask(); ok {
				if t.IsCalculated {
					v.notice = "calculated from section budgets; not editable"
					return v, nil
				}
				if v.state.App.ReadOnly(t.TrekName) {
					v.notice = "trek has started; checklist is read-only"
					return v, nil
				}
				return v, pushView(newTaskFormView(v.state, t))
			}
		case "n":
			if t, ok := v.selectedTask(); ok {
				return v, v.toggleNA(t)
			}
		}
	}
	return v, nil
}

func (v *checklistView) selectedTask() (domain.Task, bool) {
	if v.cursor >= len(v.rows) || v.rows[v.cursor].isSection {
		return domain.Task{}, false
	}
	return v.rows[v.cursor].task, true
}

func (v *checklistView) toggleNA(t domain.Task) tea.Cmd {
	if !t.AllowsNA() {
		v.notice = "this task cannot be marked n/a"
		return nil
	}
	na := !t.IsNA
	_, err := v.state.App.UpdateTask(t.ID, store.Patch{IsNA: &na})
	if err != nil {
		if errors.Is(err, ErrTrekLocked) {
			v.notice = "trek has started; checklist is read-only"
		} else {
			v.notice = err.Error()
		}
		return nil
	}
	return refreshViews()
}

func (v *checklistView) View() string {
	if len(v.rows) == 0 {
		return "\n  " + formatter.Dim("No tasks in this category.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")

	if v.notice != "" {
		b.WriteString("  " + formatter.StyleYellow.Render(v.notice) + "\n\n")
	}

	for i, row := range v.rows {
		if row.isSection {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString("  " + formatter.StyleHeader.Render(row.section) + "\n")
			continue
		}

		t := row.task
		cursor := "  "
		titleStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			titleStyle = formatter.StyleBold
		}

		b.WriteString(fmt.Sprintf("%s%s %s %s %s  %s\n",
			cursor,
			formatter.StatusIcon(t.IsComplete(), t.Status),
			formatter.Dim(fmt.Sprintf("%d.%d", t.SectionNumber, t.TaskNumber)),
			formatter.PriorityTag(t.Priority),
			titleStyle.Render(padRight(t.Title, 34)),
			v.valueSummary(&t),
		))
	}
	return b.String()
}

// valueSummary renders the task's current value in one short dim cell.
func (v *checklistView) valueSummary(t *domain.Task) string {
	if t.IsNA {
		return formatter.Dim("n/a")
	}
	if t.IsCalculated {
		total := v.state.App.SectionTotal(t)
		return formatter.StyleBlue.Render(fmt.Sprintf("₹%.2f", total))
	}
	if t.InputType == domain.InputBudgetVoucher {
		if t.BudgetAmount == nil {
			return formatter.Dim("—")
		}
		voucher := formatter.StyleRed.Render("no voucher")
		if strings.TrimSpace(t.VoucherFile) != "" {
			voucher = formatter.Dim(t.VoucherFile)
		}
		return fmt.Sprintf("%s %s", formatter.StyleFg.Render(fmt.Sprintf("₹%.2f", *t.BudgetAmount)), voucher)
	}

	val, err := domain.ParseValue(t)
	if err != nil || val == nil {
		return formatter.Dim("—")
	}
	switch val := val.(type) {
	case domain.TextValue:
		return formatter.Dim(truncate(val.Text, 30))
	case domain.VehicleList:
		return formatter.Dim(fmt.Sprintf("%d vehicle(s)", len(val.Vehicles)))
	case domain.StaffRoster:
		return formatter.Dim(fmt.Sprintf("%d staff", len(val.Staff)))
	case domain.StaffAssignment:
		return formatter.Dim(fmt.Sprintf("%s · %s", val.Staff.Name, val.Staff.Contact))
	}
	return formatter.Dim("—")
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
