package foldz

import (
	"context"
	"slices"
	"sync"
)

// Collect accumulates elements into an ordered list. Append records one
// element, Extend records several in order, and Result returns a copy that
// is independent of internal state - callers can mutate the returned slice
// without affecting subsequent Results. Reset clears the list.
//
// Add is an alias for Append so a Collect can sit in a Fanout.
type Collect[E any] struct {
	name  Name
	items []E
	mu    sync.Mutex
}

// NewCollect creates an empty Collect accumulator.
func NewCollect[E any](name Name) *Collect[E] {
	return &Collect[E]{name: name}
}

// Append adds one element, preserving insertion order.
func (c *Collect[E]) Append(_ context.Context, value E) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, value)
}

// Extend appends each of the given elements in order.
func (c *Collect[E]) Extend(_ context.Context, values ...E) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, values...)
}

// Add implements the Sink interface by delegating to Append.
func (c *Collect[E]) Add(ctx context.Context, value E) {
	c.Append(ctx, value)
}

// Result returns a copy of the collected elements. Mutating the returned
// slice does not affect the accumulator.
func (c *Collect[E]) Result() []E {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

// Len returns the number of collected elements.
func (c *Collect[E]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Reset clears the accumulator back to an empty list.
func (c *Collect[E]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Name returns the name of this accumulator.
func (c *Collect[E]) Name() Name {
	return c.name
}
