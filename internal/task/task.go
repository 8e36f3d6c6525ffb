// Package task defines the boundary between the menu engine and the
// system-maintenance operations it launches. Operations are opaque: they run
// to completion and report a human-readable success message or failure reason.
// Navigation never travels through this channel.
package task

import (
	"context"
	"fmt"
	"sort"
)

// ID names a registered operation. Menu entries reference operations by ID
// rather than holding callables, so menu data stays immutable and inert.
type ID string

// Fn is a single asynchronous operation. arg carries popup-collected input
// (free text or a selected choice) and is empty for ungated operations.
// Calling an Fn twice yields independent executions.
type Fn func(ctx context.Context, arg string) (string, error)

// Registry resolves operation IDs to their implementations.
type Registry struct {
	fns map[ID]Fn
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{fns: make(map[ID]Fn)}
}

// Register binds an operation to an ID. Re-registering an ID is a
// programming error and is rejected.
func (r *Registry) Register(id ID, fn Fn) error {
	if id == "" {
		return fmt.Errorf("task: empty id")
	}
	if fn == nil {
		return fmt.Errorf("task %s: nil function", id)
	}
	if _, ok := r.fns[id]; ok {
		return fmt.Errorf("task %s: already registered", id)
	}
	r.fns[id] = fn
	return nil
}

// MustRegister is Register for static wiring at startup.
func (r *Registry) MustRegister(id ID, fn Fn) {
	if err := r.Register(id, fn); err != nil {
		panic(err)
	}
}

// Lookup resolves an operation by ID.
func (r *Registry) Lookup(id ID) (Fn, bool) {
	fn, ok := r.fns[id]
	return fn, ok
}

// IDs lists the registered operation IDs in sorted order.
func (r *Registry) IDs() []ID {
	ids := make([]ID, 0, len(r.fns))
	for id := range r.fns {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
