package foldz

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"
)

func TestFanout_NewFanout(t *testing.T) {
	total := NewSum[int]("total")
	samples := NewCollect[int]("samples")

	fanout := NewFanout[int]("test-fanout", total, samples)
	defer fanout.Close() //nolint:errcheck

	if fanout.Name() != "test-fanout" {
		t.Errorf("Expected name 'test-fanout', got %s", fanout.Name())
	}
	if fanout.Len() != 2 {
		t.Errorf("Expected 2 sinks, got %d", fanout.Len())
	}
}

func TestFanout_Feed(t *testing.T) {
	total := NewSum[int]("total")
	spread := NewMinMax[int]("spread")
	defer spread.Close() //nolint:errcheck
	samples := NewCollect[int]("samples")

	fanout := NewFanout[int]("readings")
	defer fanout.Close() //nolint:errcheck
	fanout.Register(total, spread, samples)

	if err := fanout.Feed(context.Background(), 3, 7, 2, 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if total.Result() != 21 {
		t.Errorf("Expected sum 21, got %d", total.Result())
	}
	if extent := spread.Result(); extent.Min != 2 || extent.Max != 9 {
		t.Errorf("Expected extent 2..9, got %+v", extent)
	}
	if !slices.Equal(samples.Result(), []int{3, 7, 2, 9}) {
		t.Errorf("Expected samples in input order, got %v", samples.Result())
	}
}

func TestFanout_Drain(t *testing.T) {
	total := NewSum[int]("total")
	fanout := NewFanout[int]("stream", total)
	defer fanout.Close() //nolint:errcheck

	seq := func(yield func(int) bool) {
		for n := 1; n <= 5; n++ {
			if !yield(n) {
				return
			}
		}
	}

	if err := fanout.Drain(context.Background(), seq); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if total.Result() != 15 {
		t.Errorf("Expected 15, got %d", total.Result())
	}
}

func TestFanout_CanceledContext(t *testing.T) {
	total := NewSum[int]("total")
	fanout := NewFanout[int]("canceled", total)
	defer fanout.Close() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := fanout.Feed(ctx, 1, 2, 3)
	if err == nil {
		t.Fatal("Expected error from canceled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if total.Result() != 0 {
		t.Errorf("Expected no elements delivered, got sum %d", total.Result())
	}
}

func TestFanout_NilContext(t *testing.T) {
	total := NewSum[int]("total")
	fanout := NewFanout[int]("nil-ctx", total)
	defer fanout.Close() //nolint:errcheck

	if err := fanout.Feed(nil, 1, 2); err != nil { //nolint:staticcheck
		t.Fatalf("unexpected error: %v", err)
	}
	if total.Result() != 3 {
		t.Errorf("Expected 3, got %d", total.Result())
	}
}

func TestFanout_SinkManagement(t *testing.T) {
	a := NewSum[int]("a")
	b := NewSum[int]("b")

	fanout := NewFanout[int]("managed", a, b)
	defer fanout.Close() //nolint:errcheck

	if !slices.Equal(fanout.Names(), []Name{"a", "b"}) {
		t.Errorf("Expected names [a b], got %v", fanout.Names())
	}

	if err := fanout.Remove("a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fanout.Len() != 1 {
		t.Errorf("Expected 1 sink after remove, got %d", fanout.Len())
	}

	if err := fanout.Remove("missing"); !errors.Is(err, ErrSinkNotFound) {
		t.Errorf("Expected ErrSinkNotFound, got %v", err)
	}

	fanout.Clear()
	if fanout.Len() != 0 {
		t.Errorf("Expected 0 sinks after clear, got %d", fanout.Len())
	}

	fanout.SetSinks(a, b)
	if fanout.Len() != 2 {
		t.Errorf("Expected 2 sinks after SetSinks, got %d", fanout.Len())
	}
}

func TestFanout_Metrics(t *testing.T) {
	total := NewSum[int]("total")
	fanout := NewFanout[int]("metered", total)
	defer fanout.Close() //nolint:errcheck

	if err := fanout.Feed(context.Background(), 1, 2, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	passes := fanout.Metrics().Counter(FanoutPassesTotal).Value()
	if passes != 1 {
		t.Errorf("Expected 1 pass recorded, got %f", passes)
	}

	elements := fanout.Metrics().Counter(FanoutElementsTotal).Value()
	if elements != 3 {
		t.Errorf("Expected 3 elements recorded, got %f", elements)
	}

	sinks := fanout.Metrics().Gauge(FanoutSinkCount).Value()
	if sinks != 1 {
		t.Errorf("Expected sink gauge 1, got %f", sinks)
	}
}

func TestFanout_OnPassComplete(t *testing.T) {
	total := NewSum[int]("total")
	fanout := NewFanout[int]("hooked", total)
	defer fanout.Close() //nolint:errcheck

	events := make(chan FanoutEvent, 1)
	if err := fanout.OnPassComplete(func(_ context.Context, event FanoutEvent) error {
		events <- event
		return nil
	}); err != nil {
		t.Fatalf("unexpected error registering hook: %v", err)
	}

	if err := fanout.Feed(context.Background(), 4, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case event := <-events:
		if !event.Success || event.Elements != 2 || event.Sinks != 1 {
			t.Errorf("Expected successful pass of 2 elements to 1 sink, got %+v", event)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for pass_complete event")
	}
}
