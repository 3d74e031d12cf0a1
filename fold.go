package foldz

import (
	"context"
	"sync"

	"github.com/zoobzio/metricz"
)

// Metric keys for Fold observability.
const (
	FoldAddsTotal   = metricz.Key("fold.adds.total")
	FoldResetsTotal = metricz.Key("fold.resets.total")
)

// Fold is the generic accumulator: an initial state of type S plus a combine
// function that folds one element of type E into that state. Every other
// accumulator in this package is a specialization of this shape - Sum is a
// Fold whose combine is addition, Collect is a Fold whose combine appends.
// Reach for Fold directly when no concrete variant fits.
//
// The combine function receives the current state and the new element and
// returns the next state. It is called once per Add, in call order; it does
// not need to be commutative or associative, so order-sensitive folds
// (string building, last-write-wins merges) work as expected.
//
// Example - order-sensitive string building:
//
//	sentence := foldz.NewFold("sentence", "",
//	    func(acc string, word string) string {
//	        if acc == "" {
//	            return word
//	        }
//	        return acc + " " + word
//	    })
//	for _, w := range []string{"fold", "all", "the", "things"} {
//	    sentence.Add(ctx, w)
//	}
//	sentence.Result() // "fold all the things"
//
// Reset restores the initial state as supplied to NewFold. When S is a
// reference type (map, slice) the initial value is shared between resets;
// supply a fresh Fold per pass if the combine mutates its state in place.
//
// Fold is thread-safe. Each Add and Reset is counted in the metrics
// registry exposed by Metrics.
type Fold[E, S any] struct {
	combine func(S, E) S
	initial S
	state   S
	name    Name
	mu      sync.Mutex
	metrics *metricz.Registry
}

// NewFold creates a Fold with the given name, initial state, and combine
// function. The initial state doubles as the identity value that Reset
// restores.
func NewFold[E, S any](name Name, initial S, combine func(S, E) S) *Fold[E, S] {
	metrics := metricz.New()
	metrics.Counter(FoldAddsTotal)
	metrics.Counter(FoldResetsTotal)

	return &Fold[E, S]{
		name:    name,
		initial: initial,
		state:   initial,
		combine: combine,
		metrics: metrics,
	}
}

// Add folds one element into the current state via the combine function.
func (f *Fold[E, S]) Add(_ context.Context, value E) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = f.combine(f.state, value)
	f.metrics.Counter(FoldAddsTotal).Inc()
}

// Result returns the current accumulated state. It does not mutate the
// fold; calling it repeatedly without an intervening Add returns equal
// values.
func (f *Fold[E, S]) Result() S {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Reset restores the state to the initial value supplied at construction.
func (f *Fold[E, S]) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = f.initial
	f.metrics.Counter(FoldResetsTotal).Inc()
}

// Name returns the name of this accumulator.
func (f *Fold[E, S]) Name() Name {
	return f.name
}

// Metrics returns the metrics registry for this accumulator.
func (f *Fold[E, S]) Metrics() *metricz.Registry {
	return f.metrics
}
