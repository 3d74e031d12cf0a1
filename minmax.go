package foldz

import (
	"cmp"
	"context"
	"sync"
	"time"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/hookz"
)

// Hook event keys for MinMax.
const (
	MinMaxEventNewMin = hookz.Key("minmax.new_min")
	MinMaxEventNewMax = hookz.Key("minmax.new_max")
)

// Extent is the summary produced by a MinMax accumulator. Before the first
// Add both bounds are undefined and Valid is false; Min and Max hold the
// element type's zero value in that case, which must not be read as a
// bound. A Valid flag rather than a numeric sentinel keeps negative and
// zero inputs from corrupting the result.
type Extent[N cmp.Ordered] struct {
	Min   N
	Max   N
	Valid bool
}

// MinMaxEvent represents a record being broken: a value arriving that is
// strictly below the running minimum or strictly above the running maximum.
// Emitted via hookz so external systems can react to new extremes without
// polling.
type MinMaxEvent[N cmp.Ordered] struct {
	Name      Name      // Accumulator name
	Value     N         // The value that set the new record
	Previous  N         // The bound it displaced (zero value if First)
	First     bool      // Whether this is the first value seen
	Timestamp time.Time // When the record was set
}

// MinMax tracks the running minimum and maximum of the values fed to it.
// The two bounds are tracked independently; both are undefined until the
// first Add. Ties do not displace a stored bound, so the first occurrence
// of an extreme value holds the record. Reset returns both bounds to
// undefined.
//
// Example:
//
//	spread := foldz.NewMinMax[float64]("temperature-spread")
//	for _, reading := range readings {
//	    spread.Add(ctx, reading)
//	}
//	if ext := spread.Result(); ext.Valid {
//	    fmt.Printf("min %.1f max %.1f\n", ext.Min, ext.Max)
//	}
//
// # Observability
//
// Events (via hooks):
//   - minmax.new_min: fired when a value sets a new minimum
//   - minmax.new_max: fired when a value sets a new maximum
//
// The first value fires both events with First set. Event timestamps come
// from the accumulator's clock; use WithClock to inject a fake clock in
// tests.
type MinMax[N cmp.Ordered] struct {
	name  Name
	min   N
	max   N
	seen  bool
	mu    sync.Mutex
	clock clockz.Clock
	hooks *hookz.Hooks[MinMaxEvent[N]]
}

// NewMinMax creates a MinMax accumulator with both bounds undefined.
func NewMinMax[N cmp.Ordered](name Name) *MinMax[N] {
	return &MinMax[N]{
		name:  name,
		hooks: hookz.New[MinMaxEvent[N]](),
	}
}

// WithClock sets the clock used for event timestamps.
func (m *MinMax[N]) WithClock(clock clockz.Clock) *MinMax[N] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clock = clock
	return m
}

func (m *MinMax[N]) getClock() clockz.Clock {
	if m.clock == nil {
		return clockz.RealClock
	}
	return m.clock
}

// Add feeds one value, updating whichever bounds it beats. A value equal
// to a stored bound changes nothing.
func (m *MinMax[N]) Add(ctx context.Context, value N) {
	type record struct {
		key   hookz.Key
		event MinMaxEvent[N]
	}

	m.mu.Lock()
	now := m.getClock().Now()

	var records []record
	if !m.seen {
		m.min = value
		m.max = value
		m.seen = true
		event := MinMaxEvent[N]{
			Name:      m.name,
			Value:     value,
			First:     true,
			Timestamp: now,
		}
		records = append(records,
			record{key: MinMaxEventNewMin, event: event},
			record{key: MinMaxEventNewMax, event: event},
		)
	} else {
		if value < m.min {
			records = append(records, record{key: MinMaxEventNewMin, event: MinMaxEvent[N]{
				Name:      m.name,
				Value:     value,
				Previous:  m.min,
				Timestamp: now,
			}})
			m.min = value
		}
		if value > m.max {
			records = append(records, record{key: MinMaxEventNewMax, event: MinMaxEvent[N]{
				Name:      m.name,
				Value:     value,
				Previous:  m.max,
				Timestamp: now,
			}})
			m.max = value
		}
	}
	m.mu.Unlock()

	for _, rec := range records {
		_ = m.hooks.Emit(ctx, rec.key, rec.event) //nolint:errcheck
	}
}

// Min returns the running minimum and whether any value has been seen.
func (m *MinMax[N]) Min() (N, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.min, m.seen
}

// Max returns the running maximum and whether any value has been seen.
func (m *MinMax[N]) Max() (N, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.max, m.seen
}

// Result returns both bounds as an Extent. Extent.Valid is false until the
// first Add.
func (m *MinMax[N]) Result() Extent[N] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Extent[N]{Min: m.min, Max: m.max, Valid: m.seen}
}

// Reset returns both bounds to undefined.
func (m *MinMax[N]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero N
	m.min = zero
	m.max = zero
	m.seen = false
}

// Name returns the name of this accumulator.
func (m *MinMax[N]) Name() Name {
	return m.name
}

// Close gracefully shuts down the event hooks.
func (m *MinMax[N]) Close() error {
	m.hooks.Close()
	return nil
}

// OnNewMin registers a handler for new-minimum events. The handler is
// called asynchronously after the record is set.
func (m *MinMax[N]) OnNewMin(handler func(context.Context, MinMaxEvent[N]) error) error {
	_, err := m.hooks.Hook(MinMaxEventNewMin, handler)
	return err
}

// OnNewMax registers a handler for new-maximum events. The handler is
// called asynchronously after the record is set.
func (m *MinMax[N]) OnNewMax(handler func(context.Context, MinMaxEvent[N]) error) error {
	_, err := m.hooks.Hook(MinMaxEventNewMax, handler)
	return err
}
