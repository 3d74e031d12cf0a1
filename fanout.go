package foldz

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"sync"
	"time"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
)

// Observability constants for the Fanout connector.
const (
	// Metrics.
	FanoutPassesTotal    = metricz.Key("fanout.passes.total")
	FanoutElementsTotal  = metricz.Key("fanout.elements.total")
	FanoutSinkCount      = metricz.Key("fanout.sink.count")
	FanoutPassDurationMs = metricz.Key("fanout.pass.duration.ms")

	// Spans.
	FanoutPassSpan = tracez.Key("fanout.pass")

	// Tags.
	FanoutTagSinkCount    = tracez.Tag("fanout.sink_count")
	FanoutTagElementCount = tracez.Tag("fanout.element_count")
	FanoutTagSuccess      = tracez.Tag("fanout.success")
	FanoutTagError        = tracez.Tag("fanout.error")

	// Hook event keys.
	FanoutEventPassComplete = hookz.Key("fanout.pass_complete")
)

// Fanout sink management errors.
var ErrSinkNotFound = errors.New("sink not found")

// FanoutEvent represents a completed (or interrupted) pass over a
// collection. Emitted via hookz after every Feed or Drain call.
type FanoutEvent struct {
	Name      Name          // Connector name
	Elements  int           // Elements delivered before completion or interruption
	Sinks     int           // Number of sinks fed
	Success   bool          // Whether the pass ran to completion
	Err       error         // Context error if the pass was interrupted
	Duration  time.Duration // Wall time for the pass
	Timestamp time.Time     // When the pass finished
}

// Fanout drives a single pass over a collection through an ordered set of
// sinks, letting callers interleave several independent aggregations
// without re-scanning the data. Each element is delivered to every sink,
// in registration order, before the next element is read.
//
// The sinks stay exclusively owned by the caller: Fanout never resets or
// reads them, it only feeds them. Read each accumulator's Result after the
// pass.
//
// Example - three aggregations in one pass:
//
//	total := foldz.NewSum[int]("total")
//	spread := foldz.NewMinMax[int]("spread")
//	evens := foldz.NewFold("evens", 0, func(n, v int) int {
//	    if v%2 == 0 {
//	        return n + 1
//	    }
//	    return n
//	})
//
//	pass := foldz.NewFanout[int]("readings", total, spread, evens)
//	if err := pass.Feed(ctx, readings...); err != nil {
//	    return err
//	}
//
// The context is checked between elements; a canceled context stops the
// pass and returns the context error. Elements already delivered stay
// delivered - accumulation is not transactional.
//
// Fanout is thread-safe and the sink set can be modified at runtime with
// Register, Remove, Clear, and SetSinks.
//
// # Observability
//
// Metrics:
//   - fanout.passes.total: counter of Feed/Drain calls
//   - fanout.elements.total: counter of elements delivered
//   - fanout.sink.count: gauge of registered sinks
//   - fanout.pass.duration.ms: gauge of last pass duration
//
// Traces:
//   - fanout.pass: span covering one Feed or Drain call
//
// Events (via hooks):
//   - fanout.pass_complete: fired after every pass, successful or not
type Fanout[E any] struct {
	name  Name
	sinks []Sink[E]
	mu    sync.RWMutex
	clock clockz.Clock

	metrics *metricz.Registry
	tracer  *tracez.Tracer
	hooks   *hookz.Hooks[FanoutEvent]
}

// NewFanout creates a Fanout with optional initial sinks. Additional sinks
// can be added later with Register.
func NewFanout[E any](name Name, sinks ...Sink[E]) *Fanout[E] {
	metrics := metricz.New()
	metrics.Counter(FanoutPassesTotal)
	metrics.Counter(FanoutElementsTotal)
	metrics.Gauge(FanoutSinkCount)
	metrics.Gauge(FanoutPassDurationMs)

	return &Fanout[E]{
		name:    name,
		sinks:   slices.Clone(sinks),
		metrics: metrics,
		tracer:  tracez.New(),
		hooks:   hookz.New[FanoutEvent](),
	}
}

// WithClock sets the clock used for durations and event timestamps.
func (f *Fanout[E]) WithClock(clock clockz.Clock) *Fanout[E] {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clock = clock
	return f
}

func (f *Fanout[E]) getClock() clockz.Clock {
	if f.clock == nil {
		return clockz.RealClock
	}
	return f.clock
}

// Feed delivers each value to every registered sink in order. The context
// is checked before each element; if it is canceled or expired the pass
// stops and the context error is returned.
func (f *Fanout[E]) Feed(ctx context.Context, values ...E) error {
	return f.Drain(ctx, slices.Values(values))
}

// Drain is Feed for iterators: it delivers each element produced by seq to
// every registered sink in order. Useful when the collection is streamed
// rather than materialized.
func (f *Fanout[E]) Drain(ctx context.Context, seq iter.Seq[E]) (err error) {
	f.mu.RLock()
	sinks := make([]Sink[E], len(f.sinks))
	copy(sinks, f.sinks)
	clock := f.getClock()
	f.mu.RUnlock()

	if ctx == nil {
		ctx = context.Background()
	}

	f.metrics.Counter(FanoutPassesTotal).Inc()
	f.metrics.Gauge(FanoutSinkCount).Set(float64(len(sinks)))
	start := clock.Now()

	ctx, span := f.tracer.StartSpan(ctx, FanoutPassSpan)
	span.SetTag(FanoutTagSinkCount, fmt.Sprintf("%d", len(sinks)))

	elements := 0
	defer func() {
		elapsed := clock.Since(start)
		f.metrics.Gauge(FanoutPassDurationMs).Set(float64(elapsed.Milliseconds()))

		span.SetTag(FanoutTagElementCount, fmt.Sprintf("%d", elements))
		if err == nil {
			span.SetTag(FanoutTagSuccess, "true")
		} else {
			span.SetTag(FanoutTagSuccess, "false")
			span.SetTag(FanoutTagError, err.Error())
		}
		span.Finish()

		_ = f.hooks.Emit(ctx, FanoutEventPassComplete, FanoutEvent{ //nolint:errcheck
			Name:      f.name,
			Elements:  elements,
			Sinks:     len(sinks),
			Success:   err == nil,
			Err:       err,
			Duration:  elapsed,
			Timestamp: clock.Now(),
		})
	}()

	for value := range seq {
		select {
		case <-ctx.Done():
			err = fmt.Errorf("fanout %q interrupted: %w", f.name, ctx.Err())
			return err
		default:
		}

		for _, sink := range sinks {
			sink.Add(ctx, value)
		}
		elements++
		f.metrics.Counter(FanoutElementsTotal).Inc()
	}

	return nil
}

// Register adds sinks to this Fanout. Sinks receive elements in the order
// they are registered.
func (f *Fanout[E]) Register(sinks ...Sink[E]) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sinks = append(f.sinks, sinks...)
}

// Remove removes the first sink with the specified name.
func (f *Fanout[E]) Remove(name Name) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, sink := range f.sinks {
		if sink.Name() == name {
			f.sinks = slices.Delete(f.sinks, i, i+1)
			return nil
		}
	}

	return fmt.Errorf("sink %q: %w", name, ErrSinkNotFound)
}

// SetSinks replaces all sinks atomically.
func (f *Fanout[E]) SetSinks(sinks ...Sink[E]) *Fanout[E] {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sinks = slices.Clone(sinks)
	return f
}

// Len returns the number of registered sinks.
func (f *Fanout[E]) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.sinks)
}

// Clear removes all sinks.
func (f *Fanout[E]) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sinks = f.sinks[:0]
}

// Names returns the names of all sinks in order.
func (f *Fanout[E]) Names() []Name {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]Name, len(f.sinks))
	for i, sink := range f.sinks {
		names[i] = sink.Name()
	}
	return names
}

// Name returns the name of this connector.
func (f *Fanout[E]) Name() Name {
	return f.name
}

// Metrics returns the metrics registry for this connector.
func (f *Fanout[E]) Metrics() *metricz.Registry {
	return f.metrics
}

// Tracer returns the tracer for this connector.
func (f *Fanout[E]) Tracer() *tracez.Tracer {
	return f.tracer
}

// Close gracefully shuts down observability components.
func (f *Fanout[E]) Close() error {
	if f.tracer != nil {
		f.tracer.Close()
	}
	f.hooks.Close()
	return nil
}

// OnPassComplete registers a handler called asynchronously after every
// pass, whether it ran to completion or was interrupted.
func (f *Fanout[E]) OnPassComplete(handler func(context.Context, FanoutEvent) error) error {
	_, err := f.hooks.Hook(FanoutEventPassComplete, handler)
	return err
}
