package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/trekops/internal/cli/formatter"
	"github.com/alexanderramin/trekops/internal/progress"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// trekListView lists the treks under the selected base, or all treks when
// no base is selected.
type trekListView struct {
	state  *SharedState
	treks  []progress.TrekSummary
	cursor int

	filtering bool
	filter    string
}

func newTrekListView(state *SharedState) *trekListView {
	v := &trekListView{state: state}
	v.treks = state.App.TrekSummaries()
	return v
}

func (v *trekListView) ID() ViewID { return ViewTrekList }

func (v *trekListView) Title() string {
	if base := v.state.App.Nav.Base(); base != "" {
		return base
	}
	return "All treks"
}

func (v *trekListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open trek")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	}
}

func (v *trekListView) Init() tea.Cmd { return nil }

func (v *trekListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.treks = v.state.App.TrekSummaries()
		if v.cursor >= len(v.treks) && v.cursor > 0 {
			v.cursor = len(v.treks) - 1
		}
		return v, nil

	case tea.KeyMsg:
		if v.filtering {
			return v.updateFilter(msg)
		}
		return v.updateNormal(msg)
	}
	return v, nil
}

func (v *trekListView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := v.visibleTreks()

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(visible)-1 {
			v.cursor++
		}
	case "enter":
		if v.cursor < len(visible) {
			v.state.App.Nav.EnterTrek(visible[v.cursor].Name)
			return v, pushView(newTrekDetailView(v.state))
		}
	case "/":
		v.filtering = true
		v.filter = ""
	}
	return v, nil
}

func (v *trekListView) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.filtering = false
		v.filter = ""
		v.cursor = 0
		return v, nil
	case tea.KeyEnter:
		v.filtering = false
		return v, nil
	case tea.KeyBackspace:
		if len(v.filter) > 0 {
			v.filter = v.filter[:len(v.filter)-1]
			v.cursor = 0
		}
	default:
		if len(msg.String()) == 1 {
			v.filter += msg.String()
			v.cursor = 0
		}
	}
	return v, nil
}

func (v *trekListView) visibleTreks() []progress.TrekSummary {
	if v.filter == "" {
		return v.treks
	}
	lf := strings.ToLower(v.filter)
	var filtered []progress.TrekSummary
	for _, t := range v.treks {
		if strings.Contains(strings.ToLower(t.Name), lf) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

func (v *trekListView) View() string {
	visible := v.visibleTreks()

	var b strings.Builder
	b.WriteString("\n")

	if v.filtering {
		b.WriteString("  " + formatter.StyleYellow.Render("/") + " " + v.filter + "█\n\n")
	}

	if len(visible) == 0 {
		b.WriteString("  " + formatter.Dim("No treks here.") + "\n")
		return b.String()
	}

	for i, t := range visible {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}

		dates := formatter.Dim(fmt.Sprintf("%s – %s",
			t.StartDate.Format("Jan 2"), t.EndDate.Format("Jan 2")))
		clients := formatter.Dim(fmt.Sprintf("%2d pax", t.NumberOfClients))
		lock := ""
		if v.state.App.ReadOnly(t.Name) {
			lock = " " + formatter.StyleYellow.Render("locked")
		}

		b.WriteString(fmt.Sprintf("%s%s %s  %s  %s%s\n",
			cursor,
			nameStyle.Render(padRight(t.Name, 24)),
			dates,
			clients,
			formatter.CountProgress(t.Completed, t.Total, 10),
			lock,
		))
	}
	return b.String()
}

// padRight pads a string to a minimum width, truncating if needed.
func padRight(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		return string(r[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(r))
}
