// Package seed populates a fresh backend with the fixed trek templates and
// loads the working set at startup.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/trekops/internal/domain"
)

// Backend is the slice of the remote client the seeder needs;
// *remote.Client satisfies it.
type Backend interface {
	ListTreks(ctx context.Context) ([]domain.Trek, error)
	CreateTrek(ctx context.Context, trek domain.Trek) (*domain.Trek, error)
	ListTasks(ctx context.Context, trekID string) ([]domain.Task, error)
	BulkUpsertTasks(ctx context.Context, trekID string, tasks []domain.Task) error
	GetStaff(ctx context.Context) (*domain.StaffDirectory, error)
	PutStaff(ctx context.Context, staff domain.StaffDirectory) error
}

// EnsureSeeded populates the backend from the templates when no trek exists
// yet. The check-then-seed sequence is at-most-once per store lifetime:
// trek names carry no uniqueness constraint, so re-running it against a
// partially populated store would duplicate treks. A store with any trek at
// all is left untouched.
func EnsureSeeded(ctx context.Context, backend Backend, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	existing, err := backend.ListTreks(ctx)
	if err != nil {
		return fmt.Errorf("checking for existing treks: %w", err)
	}
	if len(existing) > 0 {
		logger.Debug("store already seeded", "treks", len(existing))
		return nil
	}

	staff := DefaultStaff()
	if err := backend.PutStaff(ctx, staff); err != nil {
		return fmt.Errorf("seeding staff directory: %w", err)
	}

	for _, tpl := range TrekTemplates() {
		created, err := backend.CreateTrek(ctx, tpl)
		if err != nil {
			return fmt.Errorf("seeding trek %q: %w", tpl.Name, err)
		}
		tasks := TasksForTrek(tpl.Name, staff)
		if len(tasks) == 0 {
			continue
		}
		if err := backend.BulkUpsertTasks(ctx, created.ID, tasks); err != nil {
			return fmt.Errorf("seeding tasks for %q: %w", tpl.Name, err)
		}
		logger.Info("seeded trek", "name", tpl.Name, "tasks", len(tasks))
	}
	return nil
}

// Snapshot is the fully loaded working set.
type Snapshot struct {
	Treks []domain.Trek
	Tasks []domain.Task
	Staff domain.StaffDirectory
}

// LoadAll fetches treks, staff, and every trek's tasks. A seeded trek whose
// task set is missing is backfilled from its template and written back, so
// a store seeded by an older build still comes up complete.
func LoadAll(ctx context.Context, backend Backend, logger *slog.Logger) (*Snapshot, error) {
	if logger == nil {
		logger = slog.Default()
	}

	treks, err := backend.ListTreks(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading treks: %w", err)
	}
	staff, err := backend.GetStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading staff directory: %w", err)
	}

	snap := &Snapshot{Treks: treks, Staff: *staff}
	for _, trek := range treks {
		tasks, err := backend.ListTasks(ctx, trek.ID)
		if err != nil {
			return nil, fmt.Errorf("loading tasks for %q: %w", trek.Name, err)
		}
		if len(tasks) == 0 {
			tasks = TasksForTrek(trek.Name, snap.Staff)
			if len(tasks) > 0 {
				if err := backend.BulkUpsertTasks(ctx, trek.ID, tasks); err != nil {
					return nil, fmt.Errorf("backfilling tasks for %q: %w", trek.Name, err)
				}
				logger.Info("backfilled task set", "trek", trek.Name, "tasks", len(tasks))
			}
		}
		snap.Tasks = append(snap.Tasks, tasks...)
	}
	return snap, nil
}
