package foldz

import (
	"context"
	"maps"
	"sync"
)

// Counter accumulates a frequency table: a mapping from item to a running
// non-negative count. Items that have never been counted implicitly have
// count zero. The missing-key default is an explicit lookup fallback, not
// an auto-vivifying container, so reads never create entries.
//
// Count records one occurrence, CountMany records several in order, and
// CountOf is a pure lookup that returns 0 for unseen items without
// mutating state. Result returns a copy of the full table.
//
// Add is an alias for Count so a Counter can sit in a Fanout.
type Counter[K comparable] struct {
	name   Name
	counts map[K]int
	mu     sync.Mutex
}

// NewCounter creates an empty Counter accumulator.
func NewCounter[K comparable](name Name) *Counter[K] {
	return &Counter[K]{
		name:   name,
		counts: make(map[K]int),
	}
}

// Count increments the count for an item, treating missing items as zero.
func (c *Counter[K]) Count(_ context.Context, item K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[item]++
}

// CountMany counts each of the given items in order.
func (c *Counter[K]) CountMany(ctx context.Context, items ...K) {
	for _, item := range items {
		c.Count(ctx, item)
	}
}

// Add implements the Sink interface by delegating to Count.
func (c *Counter[K]) Add(ctx context.Context, item K) {
	c.Count(ctx, item)
}

// CountOf returns the count for a specific item, 0 if it has never been
// counted. The lookup never mutates the table.
func (c *Counter[K]) CountOf(item K) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count, ok := c.counts[item]
	if !ok {
		return 0
	}
	return count
}

// Result returns a copy of the full frequency table. Mutating the returned
// map does not affect the accumulator.
func (c *Counter[K]) Result() map[K]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return maps.Clone(c.counts)
}

// Reset clears all counts.
func (c *Counter[K]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts = make(map[K]int)
}

// Name returns the name of this accumulator.
func (c *Counter[K]) Name() Name {
	return c.name
}
