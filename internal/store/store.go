package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/alexanderramin/trekops/internal/domain"
)

// ErrTaskNotFound is returned when a patch targets an unknown task id.
var ErrTaskNotFound = errors.New("task not found")

// Patch is a partial update to a task. Nil fields are left untouched, so
// applying the same patch twice yields the same state as applying it once.
type Patch struct {
	InputValue   *string
	IsNA         *bool
	BudgetAmount *float64
	VoucherFile  *string
	Status       *domain.TaskStatus
}

// Store holds the task collection for the session. Every mutation bumps the
// revision counter so aggregation caches can detect staleness without
// reference-identity tricks. Reads hand out copies; the internal slice is
// never aliased outside the store.
type Store struct {
	mu      sync.RWMutex
	tasks   []domain.Task
	index   map[string]int
	rev     uint64
	onApply []func(domain.Task)
}

// New builds a store over the given seed tasks, sorted into display order.
func New(tasks []domain.Task) *Store {
	copied := make([]domain.Task, len(tasks))
	copy(copied, tasks)
	domain.SortTasks(copied)

	s := &Store{tasks: copied, index: make(map[string]int, len(copied)), rev: 1}
	for i, t := range copied {
		s.index[t.ID] = i
	}
	return s
}

// OnApply registers a hook invoked with the merged task state after every
// successful mutation. Hooks run on the mutating goroutine.
func (s *Store) OnApply(fn func(domain.Task)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onApply = append(s.onApply, fn)
}

// Revision returns the current version counter.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rev
}

// Snapshot returns a copy of all tasks together with the revision it was
// taken at.
func (s *Store) Snapshot() ([]domain.Task, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	copied := make([]domain.Task, len(s.tasks))
	copy(copied, s.tasks)
	return copied, s.rev
}

// Get returns a copy of the task with the given id.
func (s *Store) Get(id string) (domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return domain.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return s.tasks[i], nil
}

// Apply merges a patch onto the task with the given id and returns the
// merged state. When the patch carries an input value, the task's status is
// derived from it. NA, budget, and voucher edits leave status alone; their
// completion is evaluated live where progress is computed.
func (s *Store) Apply(id string, p Patch) (domain.Task, error) {
	s.mu.Lock()
	i, ok := s.index[id]
	if !ok {
		s.mu.Unlock()
		return domain.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}

	t := s.tasks[i]
	if p.InputValue != nil {
		t.InputValue = *p.InputValue
		t.Status = domain.StatusForValue(*p.InputValue)
	}
	if p.IsNA != nil {
		t.IsNA = *p.IsNA
	}
	if p.BudgetAmount != nil {
		t.BudgetAmount = p.BudgetAmount
	}
	if p.VoucherFile != nil {
		t.VoucherFile = *p.VoucherFile
	}
	if p.Status != nil {
		t.Status = *p.Status
	}

	s.tasks[i] = t
	s.rev++
	hooks := make([]func(domain.Task), len(s.onApply))
	copy(hooks, s.onApply)
	s.mu.Unlock()

	for _, fn := range hooks {
		fn(t)
	}
	return t, nil
}
