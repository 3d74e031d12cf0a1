// Package foldz provides small, composable accumulators for Go.
//
// # Overview
//
// foldz packages the accumulator pattern - initialize a value, feed it one
// element at a time, read the running result - as a family of type-safe
// building blocks. It replaces the ad-hoc loop-and-mutate code that tends to
// collect around aggregation logic with named, resettable, independently
// testable values.
//
// # Installation
//
//	go get github.com/zoobzio/foldz
//
// Requires Go 1.23+ for generic type constraints and iterators.
//
// # Core Concepts
//
// Every accumulator implements one shared contract:
//
//	type Accumulator[E, S any] interface {
//	    Add(context.Context, E)
//	    Result() S
//	    Reset()
//	    Name() Name
//	}
//
// E is the element type fed in, S is the summary type read out. For Sum the
// two coincide; for Counter they diverge (elements K, summary map[K]int).
//
// Key components:
//   - Fold: the generic form - any initial state plus a combine function
//   - Sum, Product, Collect, Counter, MinMax: concrete specializations
//   - Fanout: drives one pass over a collection through several sinks at once
//   - Free helpers (SumOf, RunningSum, Frequencies, ...) for one-shot folds
//
// Design philosophy:
//   - Result never exposes internal state; returned slices and maps are copies
//   - Reset always restores the accumulator's identity value
//   - Order of Add calls is preserved; combine functions need not be commutative
//
// # Quick Start
//
//	revenue := foldz.NewSum[float64]("revenue")
//	seen := foldz.NewCounter[string]("skus")
//
//	for _, sale := range sales {
//	    revenue.Add(ctx, sale.Price*float64(sale.Quantity))
//	    seen.Count(ctx, sale.Product)
//	}
//
//	total := revenue.Result()      // float64
//	perSKU := seen.Result()        // map[string]int, safe to mutate
//
// Or interleave several aggregations over a single pass with Fanout:
//
//	spread := foldz.NewMinMax[int]("spread")
//	samples := foldz.NewCollect[int]("samples")
//	pass := foldz.NewFanout[int]("ingest", spread, samples)
//	err := pass.Feed(ctx, readings...)
//
// # Choosing an Accumulator
//
//   - NewFold: anything expressible as state + combine(state, element)
//   - NewSum / NewProduct: numeric totals
//   - NewCollect: ordered element capture with isolated results
//   - NewCounter: frequency tables
//   - NewMinMax: running extremes without sentinel values
//   - NewFanout: several of the above over one pass
package foldz

import "context"

// Name is a type alias for accumulator and connector names.
// Using this type encourages storing names as constants rather than
// using inline strings throughout your code.
//
// Example:
//
//	const (
//	    RevenueName  foldz.Name = "order-revenue"
//	    QuantityName foldz.Name = "order-quantity"
//	)
type Name = string

// Sink is the element-typed half of an accumulator: anything that can
// consume values of type E. Every accumulator in this package is a Sink,
// which is what lets a Fanout drive a heterogeneous set of aggregations
// over a single pass.
//
// Add must record the element; it never fails. Accumulation is in-memory
// and non-blocking, so there is no error path and no suspension point. The
// context is threaded through for the benefit of event hooks attached to
// the sink.
type Sink[E any] interface {
	Add(context.Context, E)
	Name() Name
}

// Accumulator is the full contract shared by every accumulator type: feed
// elements via the Sink side, read the running summary with Result, return
// to the identity value with Reset.
//
// Invariants every implementation upholds:
//   - Result reflects exactly the Add calls since construction or the last
//     Reset, in call order
//   - Result is non-mutating and idempotent between Adds
//   - values returned by Result are independent of internal state
type Accumulator[E, S any] interface {
	Sink[E]
	Result() S
	Reset()
}

// Number constrains the numeric accumulators. Both exact integers and
// floating-point values are accepted uniformly; nothing forces a widening
// conversion on the caller.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
