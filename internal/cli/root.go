package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alexanderramin/trekops/internal/persist"
	"github.com/alexanderramin/trekops/internal/remote"
	"github.com/alexanderramin/trekops/internal/seed"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// setupTimeout bounds seeding and the initial snapshot load.
const setupTimeout = 30 * time.Second

// Deps carries what the commands need from the composition root.
type Deps struct {
	Client *remote.Client
	Logger *slog.Logger
	// Window is the write-coalescing delay for task saves.
	Window time.Duration
}

// NewRootCmd creates the top-level "trekops" command. Running it with no
// subcommand opens the interactive checklist.
func NewRootCmd(deps Deps) *cobra.Command {
	root := &cobra.Command{
		Use:           "trekops",
		Short:         "Pre-departure checklist tracker for trekking operations",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChecklist(cmd.Context(), deps)
		},
	}
	root.AddCommand(newSeedCmd(deps))
	return root
}

// newSeedCmd seeds the backend without opening the TUI, for provisioning a
// fresh backend from scripts.
func newSeedCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the backend with the default treks and staff",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), setupTimeout)
			defer cancel()
			return seed.EnsureSeeded(ctx, deps.Client, deps.Logger)
		},
	}
}

// runChecklist seeds and loads the working set, then starts the full-screen
// program. A failed initial load shows the error screen and offers a retry
// instead of dumping the user back to the shell.
func runChecklist(ctx context.Context, deps Deps) error {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return fmt.Errorf("trekops needs an interactive terminal")
	}

	snap, err := loadSnapshot(ctx, deps)
	for err != nil {
		retry, perr := showLoadError(err)
		if perr != nil {
			return perr
		}
		if !retry {
			return err
		}
		snap, err = loadSnapshot(ctx, deps)
	}

	coalescer := persist.NewCoalescer(deps.Client, deps.Window, deps.Logger)
	defer coalescer.Close()

	app := NewApp(snap, coalescer, deps.Logger)
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func loadSnapshot(ctx context.Context, deps Deps) (*seed.Snapshot, error) {
	lctx, cancel := context.WithTimeout(ctx, setupTimeout)
	defer cancel()
	if err := seed.EnsureSeeded(lctx, deps.Client, deps.Logger); err != nil {
		return nil, fmt.Errorf("seeding backend: %w", err)
	}
	return seed.LoadAll(lctx, deps.Client, deps.Logger)
}
