package foldz

import (
	"context"
	"sync"
)

// Sum accumulates numeric values by addition. The identity value is zero;
// Reset restores it. Any integer or floating-point element type satisfies
// the Number constraint, so ints and floats are handled uniformly without
// forcing a conversion on the caller.
//
// Example:
//
//	total := foldz.NewSum[int]("total")
//	for _, n := range []int{1, 2, 3, 4, 5} {
//	    total.Add(ctx, n)
//	}
//	total.Result() // 15
type Sum[N Number] struct {
	name  Name
	total N
	mu    sync.Mutex
}

// NewSum creates a Sum accumulator starting at zero.
func NewSum[N Number](name Name) *Sum[N] {
	return &Sum[N]{name: name}
}

// Add adds a value to the running total.
func (s *Sum[N]) Add(_ context.Context, value N) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.total += value
}

// Result returns the current total.
func (s *Sum[N]) Result() N {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Reset restores the total to zero.
func (s *Sum[N]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero N
	s.total = zero
}

// Name returns the name of this accumulator.
func (s *Sum[N]) Name() Name {
	return s.name
}
