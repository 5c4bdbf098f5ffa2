package cli

import (
	"errors"
	"strings"

	"github.com/alexanderramin/trekops/internal/cli/formatter"
	"github.com/alexanderramin/trekops/internal/remote"
	tea "github.com/charmbracelet/bubbletea"
)

// loadErrorModel is the full-screen state shown when the initial snapshot
// load fails. It only offers retry or quit.
type loadErrorModel struct {
	err   error
	retry bool
}

func (m loadErrorModel) Init() tea.Cmd { return nil }

func (m loadErrorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "r":
			m.retry = true
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m loadErrorModel) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.StyleRed.Render("Could not load the checklist") + "\n\n")
	b.WriteString("  " + formatter.Dim(m.err.Error()) + "\n")
	if errors.Is(m.err, remote.ErrUnavailable) {
		b.WriteString("\n  " + formatter.Dim("Is trekops-server running?") + "\n")
	}
	b.WriteString("\n  " + formatter.Dim("r: retry   q: quit") + "\n")
	return b.String()
}

// showLoadError blocks on the error screen and reports whether the user
// asked for a retry.
func showLoadError(err error) (bool, error) {
	p := tea.NewProgram(loadErrorModel{err: err})
	final, perr := p.Run()
	if perr != nil {
		return false, perr
	}
	m, ok := final.(loadErrorModel)
	return ok && m.retry, nil
}
