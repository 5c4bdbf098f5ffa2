package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/trekops/internal/domain"
	"github.com/alexanderramin/trekops/internal/nav"
	"github.com/alexanderramin/trekops/internal/progress"
	"github.com/alexanderramin/trekops/internal/remote"
	"github.com/alexanderramin/trekops/internal/seed"
	"github.com/alexanderramin/trekops/internal/store"
)

// ErrTrekLocked is returned when a mutation targets a trek whose start date
// has passed.
var ErrTrekLocked = errors.New("trek has started; checklist is read-only")

// TaskQueue is the write-behind sink for task mutations. *persist.Coalescer
// satisfies it.
type TaskQueue interface {
	Enqueue(trekID, taskID string, patch remote.TaskPatch)
}

// App wires the local working set together for the TUI: the task store,
// trek metadata, staff directory, navigation machine, and the persistence
// queue. All views share one App through SharedState.
type App struct {
	Store  *store.Store
	Cache  *progress.Cache
	Nav    *nav.Machine
	Treks  []domain.Trek
	Staff  domain.StaffDirectory
	Logger *slog.Logger

	// Now is the clock used by the read-only gate; overridable in tests.
	Now func() time.Time

	queue        TaskQueue
	trekIDByName map[string]string
}

// NewApp builds the app over a loaded snapshot. queue may be nil when
// persistence is disabled.
func NewApp(snap *seed.Snapshot, queue TaskQueue, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	byName := make(map[string]string, len(snap.Treks))
	for _, trek := range snap.Treks {
		byName[trek.Name] = trek.ID
	}
	a := &App{
		Store:        store.New(snap.Tasks),
		Cache:        progress.NewCache(),
		Nav:          nav.New(),
		Treks:        snap.Treks,
		Staff:        snap.Staff,
		Logger:       logger,
		Now:          time.Now,
		queue:        queue,
		trekIDByName: byName,
	}
	a.Store.OnApply(func(t domain.Task) {
		a.Logger.Debug("task updated", "task_id", t.ID, "status", t.Status, "complete", t.IsComplete())
	})
	return a
}

// TrekByName returns the trek record for a name reference.
func (a *App) TrekByName(name string) (domain.Trek, bool) {
	for _, trek := range a.Treks {
		if trek.Name == name {
			return trek, true
		}
	}
	return domain.Trek{}, false
}

// ReadOnly reports whether the named trek's checklist is frozen.
func (a *App) ReadOnly(trekName string) bool {
	trek, ok := a.TrekByName(trekName)
	if !ok {
		return false
	}
	return trek.ReadOnlyAt(a.Now())
}

// UpdateTask applies a patch to a task after the read-only gate, then hands
// the merged state to the persistence queue. The local update is the source
// of truth; the queued write may fail silently later.
func (a *App) UpdateTask(taskID string, p store.Patch) (domain.Task, error) {
	task, err := a.Store.Get(taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if a.ReadOnly(task.TrekName) {
		return domain.Task{}, fmt.Errorf("%w: %s", ErrTrekLocked, task.TrekName)
	}

	merged, err := a.Store.Apply(taskID, p)
	if err != nil {
		return domain.Task{}, err
	}

	if a.queue != nil {
		trekID := a.trekIDByName[merged.TrekName]
		if trekID == "" {
			a.Logger.Warn("no trek record for task; skipping persistence",
				"task_id", taskID, "trek_name", merged.TrekName)
			return merged, nil
		}
		a.queue.Enqueue(trekID, taskID, remote.TaskPatch{
			InputValue:   p.InputValue,
			IsNA:         p.IsNA,
			BudgetAmount: p.BudgetAmount,
			VoucherFile:  p.VoucherFile,
			Status:       statusFor(p, merged),
		})
	}
	return merged, nil
}

// statusFor mirrors the store's status derivation onto the wire patch so
// the backend record matches local state.
func statusFor(p store.Patch, merged domain.Task) *domain.TaskStatus {
	if p.Status != nil {
		return p.Status
	}
	if p.InputValue != nil {
		status := merged.Status
		return &status
	}
	return nil
}

// Categories returns the category rollup for the currently open trek.
func (a *App) Categories() []progress.CategorySummary {
	tasks, rev := a.Store.Snapshot()
	return a.Cache.Categories(rev, tasks, a.Nav.Trek(), a.Nav.Scope())
}

// TrekSummaries returns the trek rollups under the current selection,
// filtered to the selected base's treks when one is chosen.
func (a *App) TrekSummaries() []progress.TrekSummary {
	tasks, rev := a.Store.Snapshot()
	scope := a.Nav.Scope()
	summaries := a.Cache.Treks(rev, tasks, a.Treks, scope)
	return progress.FilterTreks(summaries, tasks, scope)
}

// BaseSummaries returns trip activity per base.
func (a *App) BaseSummaries() []progress.BaseSummary {
	tasks, rev := a.Store.Snapshot()
	return a.Cache.Bases(rev, tasks, domain.BaseNames, a.Nav.Scope())
}

// CategoryTasks returns the open trek's tasks in the selected category.
func (a *App) CategoryTasks() []domain.Task {
	tasks, _ := a.Store.Snapshot()
	return progress.TasksForCategory(tasks, a.Nav.Trek(), a.Nav.Category(), a.Nav.Scope())
}

// SectionTotal resolves a calculated task's display value from its
// siblings.
func (a *App) SectionTotal(task *domain.Task) float64 {
	tasks, _ := a.Store.Snapshot()
	return progress.SectionBudgetTotal(task, tasks)
}

// SharedState carries dimensions and the app reference to every view.
type SharedState struct {
	App    *App
	Width  int
	Height int
}

// ContentHeight is the rows left for view content after header and status
// bar.
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 0 {
		return 0
	}
	return h
}
