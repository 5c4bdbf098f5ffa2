package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/trekops/internal/cli/formatter"
	"github.com/alexanderramin/trekops/internal/domain"
	"github.com/alexanderramin/trekops/internal/nav"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// baseListView is the landing screen: every base with its trip activity.
type baseListView struct {
	state  *SharedState
	bases  []string
	cursor int
}

func newBaseListView(state *SharedState) *baseListView {
	return &baseListView{
		state: state,
		bases: append([]string(nil), domain.BaseNames...),
	}
}

func (v *baseListView) ID() ViewID    { return ViewBaseList }
func (v *baseListView) Title() string { return "Bases" }

func (v *baseListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open base")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all treks")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "team")),
		key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "type")),
	}
}

func (v *baseListView) Init() tea.Cmd { return nil }

func (v *baseListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.bases)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(v.bases) {
				v.state.App.Nav.EnterBase(v.bases[v.cursor])
				return v, pushView(newTrekListView(v.state))
			}
		case "a":
			// Browse the full trek roster without a base filter.
			v.state.App.Nav.EnterBase("")
			return v, pushView(newTrekListView(v.state))
		case "t":
			toggleTeam(v.state.App.Nav)
		case "y":
			toggleTrekType(v.state.App.Nav)
		}
	}
	return v, nil
}

func (v *baseListView) View() string {
	summaries := v.state.App.BaseSummaries()
	active := make(map[string]int, len(summaries))
	total := make(map[string]int, len(summaries))
	for _, s := range summaries {
		active[s.Name] = s.ActiveTrips
		total[s.Name] = s.TotalTrips
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + formatter.Dim(fmt.Sprintf("type: %s   team: %s",
		v.state.App.Nav.TrekType(), v.state.App.Nav.Team())) + "\n\n")
	for i, base := range v.bases {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}
		b.WriteString(fmt.Sprintf("%s%s  %s %s\n",
			cursor,
			nameStyle.Render(padRight(base, 26)),
			formatter.Dim("active trips"),
			formatter.Ratio(active[base], total[base]),
		))
	}
	return b.String()
}

var teamCycle = []domain.Team{
	domain.TeamSupport,
	domain.TeamGroundOps,
	domain.TeamTripLeader,
	domain.TeamHeadOffice,
}

var trekTypeCycle = []domain.TrekType{
	domain.TrekTypeTreks,
	domain.TrekTypeExpeditions,
	domain.TrekTypeClimbs,
}

// toggleTeam advances the team filter to the next crew.
func toggleTeam(m *nav.Machine) {
	for i, team := range teamCycle {
		if team == m.Team() {
			m.SetTeam(teamCycle[(i+1)%len(teamCycle)])
			return
		}
	}
	m.SetTeam(teamCycle[0])
}

// toggleTrekType advances the trip kind filter.
func toggleTrekType(m *nav.Machine) {
	for i, tt := range trekTypeCycle {
		if tt == m.TrekType() {
			m.SetTrekType(trekTypeCycle[(i+1)%len(trekTypeCycle)])
			return
		}
	}
	m.SetTrekType(trekTypeCycle[0])
}
