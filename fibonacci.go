package foldz

// Fibonacci returns the first n Fibonacci numbers, extending iteratively
// from the seeds 0 and 1. n of zero or less yields an empty sequence,
// n of 1 yields [0], n of 2 yields [0, 1].
func Fibonacci(n int) []int {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []int{0}
	}

	sequence := make([]int, 2, n)
	sequence[0], sequence[1] = 0, 1
	for i := 2; i < n; i++ {
		sequence = append(sequence, sequence[i-1]+sequence[i-2])
	}
	return sequence
}
