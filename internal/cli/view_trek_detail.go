package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/trekops/internal/cli/formatter"
	"github.com/alexanderramin/trekops/internal/progress"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// trekDetailView shows one trek's six operational categories with their
// completion counts.
type trekDetailView struct {
	state      *SharedState
	categories []progress.CategorySummary
	cursor     int
}

func newTrekDetailView(state *SharedState) *trekDetailView {
	v := &trekDetailView{state: state}
	v.categories = state.App.Categories()
	return v
}

func (v *trekDetailView) ID() ViewID    { return ViewTrekDetail }
func (v *trekDetailView) Title() string { return v.state.App.Nav.Trek() }

func (v *trekDetailView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open category")),
	}
}

func (v *trekDetailView) Init() tea.Cmd { return nil }

func (v *trekDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.categories = v.state.App.Categories()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.categories)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(v.categories) {
				if err := v.state.App.Nav.EnterCategory(v.categories[v.cursor].Name); err == nil {
					return v, pushView(newTaskListView(v.state))
				}
			}
		}
	}
	return v, nil
}

func (v *trekDetailView) View() string {
	var b strings.Builder
	b.WriteString("\n")

	trek, ok := v.state.App.TrekByName(v.state.App.Nav.Trek())
	if ok {
		b.WriteString(fmt.Sprintf("  %s %s  %s\n\n",
			formatter.Dim("departs"),
			trek.StartDate.Format("Mon, Jan 2 2006"),
			formatter.Dim(fmt.Sprintf("%d clients, %s", trek.NumberOfClients, trek.BaseName)),
		))
	}

	completed, total := 0, 0
	for _, c := range v.categories {
		completed += c.Completed
		total += c.Total
	}

	for i, c := range v.categories {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n",
			cursor,
			nameStyle.Render(padRight(c.Name, 18)),
			formatter.CountProgress(c.Completed, c.Total, 14),
		))
	}

	b.WriteString("\n  " + formatter.Dim("overall") + "       " +
		formatter.CountProgress(completed, total, 14) + "\n")
	return b.String()
}
