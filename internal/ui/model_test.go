package ui

import (
	"context"
	"fmt"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nvasko/sysforge/internal/menu"
	"github.com/nvasko/sysforge/internal/task"
)

// taskRecorder registers a fake operation for every catalog ID and records
// each invocation.
type taskRecorder struct {
	mu    sync.Mutex
	calls map[task.ID][]string
	fail  map[task.ID]error
	info  map[task.ID]string
}

func newTaskRecorder() *taskRecorder {
	return &taskRecorder{
		calls: make(map[task.ID][]string),
		fail:  make(map[task.ID]error),
		info:  make(map[task.ID]string),
	}
}

func (r *taskRecorder) registry() *task.Registry {
	reg := task.NewRegistry()
	real := task.DefaultRegistry("/tmp")
	for _, id := range real.IDs() {
		id := id
		reg.MustRegister(id, func(ctx context.Context, arg string) (string, error) {
			r.mu.Lock()
			r.calls[id] = append(r.calls[id], arg)
			err := r.fail[id]
			info := r.info[id]
			r.mu.Unlock()
			if err != nil {
				return "", err
			}
			if info == "" {
				info = fmt.Sprintf("%s ok", id)
			}
			return info, nil
		})
	}
	return reg
}

func (r *taskRecorder) callCount(id task.ID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls[id])
}

func (r *taskRecorder) lastArg(id task.ID) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	args := r.calls[id]
	if len(args) == 0 {
		return ""
	}
	return args[len(args)-1]
}

func newTestHarness(t *testing.T) (*Harness, *taskRecorder) {
	t.Helper()
	rec := newTaskRecorder()
	model := NewModel(rec.registry(), 0, 0, true, false, menu.MainMenu)
	return NewHarness(model), rec
}

func TestWindowSizeUpdatesDimensions(t *testing.T) {
	h, _ := newTestHarness(t)
	h.Send(tea.WindowSizeMsg{Width: 120, Height: 40})
	m := h.Model()
	if m.width != 120 || m.height != 40 {
		t.Fatalf("expected 120x40, got %dx%d", m.width, m.height)
	}
}

func TestFixedSizeIgnoresWindowSize(t *testing.T) {
	rec := newTaskRecorder()
	model := NewModel(rec.registry(), 100, 30, true, false, menu.MainMenu)
	h := NewHarness(model)
	h.Send(tea.WindowSizeMsg{Width: 50, Height: 10})
	m := h.Model()
	if m.width != 100 || m.height != 30 {
		t.Fatalf("fixed size overridden: got %dx%d", m.width, m.height)
	}
}

func TestDefaultSizeFallback(t *testing.T) {
	h, _ := newTestHarness(t)
	m := h.Model()
	if m.effectiveWidth() != defaultWidth || m.effectiveHeight() != defaultHeight {
		t.Fatalf("expected %dx%d fallback, got %dx%d",
			defaultWidth, defaultHeight, m.effectiveWidth(), m.effectiveHeight())
	}
}

func TestRootViewOverride(t *testing.T) {
	rec := newTaskRecorder()
	model := NewModel(rec.registry(), 0, 0, true, false, menu.Utilities)
	if model.CurrentView() != menu.Utilities {
		t.Fatalf("expected utilities root view, got %s", model.CurrentView())
	}
}
