// Package persist pushes local task edits to the backend without ever
// blocking the editor. Writes are fire-and-forget: the local state is the
// source of truth, a failed write is logged and dropped, and rapid edits to
// one task collapse into a single request.
package persist

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/alexanderramin/trekops/internal/domain"
	"github.com/alexanderramin/trekops/internal/remote"
)

// DefaultWindow is the coalescing delay between an edit and its write.
const DefaultWindow = 500 * time.Millisecond

// Writer is the single backend call the coalescer needs. *remote.Client
// satisfies it; the returned record is ignored since local state already
// holds the merged result.
type Writer interface {
	UpdateTask(ctx context.Context, trekID, taskID string, patch remote.TaskPatch) (*domain.Task, error)
}

// entry is the per-task write state. At most one request per task is in
// flight; edits arriving meanwhile land in the pending slot, later fields
// overlaying earlier ones, so only the newest merged state ever goes out.
type entry struct {
	trekID   string
	pending  *remote.TaskPatch
	timer    *time.Timer
	inFlight bool
}

// Coalescer debounces task writes per task id.
type Coalescer struct {
	writer Writer
	window time.Duration
	logger *slog.Logger

	mu      sync.Mutex
	entries map[string]*entry
	closed  bool
	wg      sync.WaitGroup
}

// NewCoalescer creates a coalescer flushing through writer after window.
// A zero window means DefaultWindow.
func NewCoalescer(writer Writer, window time.Duration, logger *slog.Logger) *Coalescer {
	if window <= 0 {
		window = DefaultWindow
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Coalescer{
		writer:  writer,
		window:  window,
		logger:  logger,
		entries: make(map[string]*entry),
	}
}

// Enqueue schedules a write of patch for the task. Calls within the window
// merge into one request; a call during an in-flight write queues a single
// follow-up carrying the merged latest state.
func (c *Coalescer) Enqueue(trekID, taskID string, patch remote.TaskPatch) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	e, ok := c.entries[taskID]
	if !ok {
		e = &entry{trekID: trekID}
		c.entries[taskID] = e
	}
	e.trekID = trekID
	if e.pending == nil {
		p := patch
		e.pending = &p
	} else {
		mergePatch(e.pending, patch)
	}

	if e.inFlight {
		return
	}
	if e.timer != nil {
		e.timer.Stop()
	}
	e.timer = time.AfterFunc(c.window, func() { c.fire(taskID) })
}

// fire moves the pending patch into flight and sends it.
func (c *Coalescer) fire(taskID string) {
	c.mu.Lock()
	e, ok := c.entries[taskID]
	if !ok || e.pending == nil || e.inFlight {
		c.mu.Unlock()
		return
	}
	patch := *e.pending
	trekID := e.trekID
	e.pending = nil
	e.timer = nil
	e.inFlight = true
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()
		c.send(trekID, taskID, patch)

		c.mu.Lock()
		e.inFlight = false
		restart := e.pending != nil && !c.closed
		if e.pending == nil {
			delete(c.entries, taskID)
		}
		if restart {
			e.timer = time.AfterFunc(c.window, func() { c.fire(taskID) })
		}
		c.mu.Unlock()
	}()
}

func (c *Coalescer) send(trekID, taskID string, patch remote.TaskPatch) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if _, err := c.writer.UpdateTask(ctx, trekID, taskID, patch); err != nil {
		// Local state stays authoritative; the write is simply lost.
		c.logger.Warn("task write failed",
			"trek_id", trekID,
			"task_id", taskID,
			"error", err,
		)
		return
	}
	c.logger.Debug("task write flushed", "trek_id", trekID, "task_id", taskID)
}

// Close flushes every pending write immediately and waits for in-flight
// requests to finish. The coalescer accepts no writes afterwards.
func (c *Coalescer) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		c.wg.Wait()
		return
	}
	c.closed = true

	type flush struct {
		trekID, taskID string
		patch          remote.TaskPatch
	}
	var flushes []flush
	for taskID, e := range c.entries {
		if e.timer != nil {
			e.timer.Stop()
			e.timer = nil
		}
		if e.pending != nil && !e.inFlight {
			flushes = append(flushes, flush{e.trekID, taskID, *e.pending})
			e.pending = nil
		}
	}
	c.mu.Unlock()

	for _, f := range flushes {
		c.send(f.trekID, f.taskID, f.patch)
	}
	c.wg.Wait()

	// A write in flight during shutdown may have left a merged follow-up
	// behind; flush those too.
	c.mu.Lock()
	flushes = flushes[:0]
	for taskID, e := range c.entries {
		if e.pending != nil {
			flushes = append(flushes, flush{e.trekID, taskID, *e.pending})
			e.pending = nil
		}
	}
	c.mu.Unlock()
	for _, f := range flushes {
		c.send(f.trekID, f.taskID, f.patch)
	}
}

func mergePatch(dst *remote.TaskPatch, src remote.TaskPatch) {
	if src.InputValue != nil {
		dst.InputValue = src.InputValue
	}
	if src.IsNA != nil {
		dst.IsNA = src.IsNA
	}
	if src.BudgetAmount != nil {
		dst.BudgetAmount = src.BudgetAmount
	}
	if src.VoucherFile != nil {
		dst.VoucherFile = src.VoucherFile
	}
	if src.Status != nil {
		dst.Status = src.Status
	}
}
