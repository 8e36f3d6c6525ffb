// Package command turns registered operations into Bubble Tea commands so the
// Update loop never blocks on shell work.
package command

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nvasko/sysforge/internal/logging/events"
	"github.com/nvasko/sysforge/internal/task"
)

// Request encapsulates one operation dispatch.
type Request struct {
	ID  task.ID
	Arg string
	Fn  task.Fn
}

// Result carries the outcome back into the Update loop. Success or failure
// text only; navigation never travels through this type.
type Result struct {
	ID   task.ID
	Info string
	Err  error
}

// Bus coordinates the execution of menu operations.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps the operation into a Bubble Tea command while emitting trace
// logs. The returned command runs off the Update goroutine.
func (b *Bus) Execute(ctx context.Context, req Request) tea.Cmd {
	events.Task.Start(string(req.ID), req.Arg)
	return func() tea.Msg {
		info, err := req.Fn(ctx, req.Arg)
		return Result{ID: req.ID, Info: info, Err: err}
	}
}
