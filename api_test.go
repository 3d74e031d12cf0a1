package foldz

// Compile-time checks that every accumulator satisfies the shared contract.
var (
	_ Accumulator[int, int]               = (*Sum[int])(nil)
	_ Accumulator[float64, float64]       = (*Product[float64])(nil)
	_ Accumulator[string, []string]       = (*Collect[string])(nil)
	_ Accumulator[string, map[string]int] = (*Counter[string])(nil)
	_ Accumulator[int, Extent[int]]       = (*MinMax[int])(nil)
	_ Accumulator[int, string]            = (*Fold[int, string])(nil)

	_ Sink[int] = (*Sum[int])(nil)
	_ Sink[int] = (*Product[int])(nil)
	_ Sink[int] = (*Collect[int])(nil)
	_ Sink[int] = (*Counter[int])(nil)
	_ Sink[int] = (*MinMax[int])(nil)
	_ Sink[int] = (*Fold[int, int])(nil)
)
