package persist

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/trekops/internal/domain"
	"github.com/alexanderramin/trekops/internal/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedWrite struct {
	trekID string
	taskID string
	patch  remote.TaskPatch
}

type fakeWriter struct {
	mu      sync.Mutex
	writes  []capturedWrite
	err     error
	block   chan struct{} // when set, UpdateTask waits on it
	started chan struct{} // signalled once per call before blocking
}

func (w *fakeWriter) UpdateTask(ctx context.Context, trekID, taskID string, patch remote.TaskPatch) (*domain.Task, error) {
	if w.started != nil {
		w.started <- struct{}{}
	}
	if w.block != nil {
		<-w.block
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.writes = append(w.writes, capturedWrite{trekID, taskID, patch})
	return &domain.Task{ID: taskID}, w.err
}

func (w *fakeWriter) captured() []capturedWrite {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]capturedWrite, len(w.writes))
	copy(out, w.writes)
	return out
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

func TestCoalescer_RapidEditsCollapseIntoOneWrite(t *testing.T) {
	writer := &fakeWriter{}
	c := NewCoalescer(writer, 30*time.Millisecond, quietLogger())
	defer c.Close()

	c.Enqueue("trek-1", "task-1", remote.TaskPatch{InputValue: strPtr("a")})
	c.Enqueue("trek-1", "task-1", remote.TaskPatch{InputValue: strPtr("ab")})
	c.Enqueue("trek-1", "task-1", remote.TaskPatch{InputValue: strPtr("abc")})

	require.Eventually(t, func() bool { return len(writer.captured()) == 1 },
		time.Second, 5*time.Millisecond)

	got := writer.captured()[0]
	assert.Equal(t, "trek-1", got.trekID)
	assert.Equal(t, "task-1", got.taskID)
	require.NotNil(t, got.patch.InputValue)
	assert.Equal(t, "abc", *got.patch.InputValue, "only the latest state goes out")
}

func TestCoalescer_MergesDistinctFieldsAcrossEdits(t *testing.T) {
	writer := &fakeWriter{}
	c := NewCoalescer(writer, 30*time.Millisecond, quietLogger())
	defer c.Close()

	amount := 500.0
	c.Enqueue("trek-1", "task-1", remote.TaskPatch{BudgetAmount: &amount})
	c.Enqueue("trek-1", "task-1", remote.TaskPatch{VoucherFile: strPtr("v.pdf")})

	require.Eventually(t, func() bool { return len(writer.captured()) == 1 },
		time.Second, 5*time.Millisecond)

	got := writer.captured()[0].patch
	require.NotNil(t, got.BudgetAmount)
	assert.Equal(t, 500.0, *got.BudgetAmount)
	require.NotNil(t, got.VoucherFile)
	assert.Equal(t, "v.pdf", *got.VoucherFile)
}

func TestCoalescer_DifferentTasksWriteIndependently(t *testing.T) {
	writer := &fakeWriter{}
	c := NewCoalescer(writer, 20*time.Millisecond, quietLogger())
	defer c.Close()

	c.Enqueue("trek-1", "task-1", remote.TaskPatch{InputValue: strPtr("one")})
	c.Enqueue("trek-1", "task-2", remote.TaskPatch{InputValue: strPtr("two")})

	require.Eventually(t, func() bool { return len(writer.captured()) == 2 },
		time.Second, 5*time.Millisecond)
}

func TestCoalescer_EditDuringFlightQueuesSingleFollowUp(t *testing.T) {
	writer := &fakeWriter{
		block:   make(chan struct{}),
		started: make(chan struct{}, 2),
	}
	c := NewCoalescer(writer, 10*time.Millisecond, quietLogger())

	c.Enqueue("trek-1", "task-1", remote.TaskPatch{InputValue: strPtr("first")})
	<-writer.started // first write is now in flight

	c.Enqueue("trek-1", "task-1", remote.TaskPatch{InputValue: strPtr("second")})
	c.Enqueue("trek-1", "task-1", remote.TaskPatch{InputValue: strPtr("third")})
	writer.block <- struct{}{} // release first write

	<-writer.started // follow-up write
	writer.block <- struct{}{}

	require.Eventually(t, func() bool { return len(writer.captured()) == 2 },
		time.Second, 5*time.Millisecond)

	writes := writer.captured()
	assert.Equal(t, "first", *writes[0].patch.InputValue)
	assert.Equal(t, "third", *writes[1].patch.InputValue, "intermediate state never sent")
	c.Close()
}

func TestCoalescer_FailureIsSwallowed(t *testing.T) {
	writer := &fakeWriter{err: errors.New("backend down")}
	c := NewCoalescer(writer, 10*time.Millisecond, quietLogger())
	defer c.Close()

	c.Enqueue("trek-1", "task-1", remote.TaskPatch{InputValue: strPtr("kept locally")})

	require.Eventually(t, func() bool { return len(writer.captured()) == 1 },
		time.Second, 5*time.Millisecond)
	// No retry: the single attempt is all there is.
	time.Sleep(50 * time.Millisecond)
	assert.Len(t, writer.captured(), 1)
}

func TestCoalescer_CloseFlushesPending(t *testing.T) {
	writer := &fakeWriter{}
	c := NewCoalescer(writer, time.Hour, quietLogger())

	c.Enqueue("trek-1", "task-1", remote.TaskPatch{InputValue: strPtr("unflushed")})
	c.Close()

	writes := writer.captured()
	require.Len(t, writes, 1)
	assert.Equal(t, "unflushed", *writes[0].patch.InputValue)
}

func TestCoalescer_RejectsWritesAfterClose(t *testing.T) {
	writer := &fakeWriter{}
	c := NewCoalescer(writer, 10*time.Millisecond, quietLogger())
	c.Close()

	c.Enqueue("trek-1", "task-1", remote.TaskPatch{InputValue: strPtr("late")})
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, writer.captured())
}
