package foldz

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"unicode/utf8"
)

// ErrEmptyInput is returned by reductions that have no meaningful result
// for an empty collection, such as MaxOf and MinOf. Callers should treat it
// as a usage error rather than silently substituting a default; Mean is the
// deliberate exception and reports 0 for empty input.
var ErrEmptyInput = errors.New("empty input")

// Reduce folds a slice into a single value: starting from initial, combine
// is applied once per element, in order. It is the free-function form of
// Fold for one-shot use.
//
//	Reduce([]int{1, 2, 3}, 0, func(acc, n int) int { return acc + n }) // 6
func Reduce[E, S any](values []E, initial S, combine func(S, E) S) S {
	state := initial
	for _, value := range values {
		state = combine(state, value)
	}
	return state
}

// SumOf returns the sum of all values. The sum of no values is 0.
func SumOf[N Number](values []N) N {
	var total N
	for _, value := range values {
		total += value
	}
	return total
}

// ProductOf returns the product of all values. The product of no values is 1.
func ProductOf[N Number](values []N) N {
	product := N(1)
	for _, value := range values {
		product *= value
	}
	return product
}

// CountOf returns the number of occurrences of target in items.
func CountOf[E comparable](items []E, target E) int {
	count := 0
	for _, item := range items {
		if item == target {
			count++
		}
	}
	return count
}

// MaxOf returns the largest value. It returns ErrEmptyInput for an empty
// slice; there is no meaningful maximum to default to.
func MaxOf[N cmp.Ordered](values []N) (N, error) {
	if len(values) == 0 {
		var zero N
		return zero, fmt.Errorf("cannot find max of %w", ErrEmptyInput)
	}

	best := values[0]
	for _, value := range values[1:] {
		if value > best {
			best = value
		}
	}
	return best, nil
}

// MinOf returns the smallest value. It returns ErrEmptyInput for an empty
// slice.
func MinOf[N cmp.Ordered](values []N) (N, error) {
	if len(values) == 0 {
		var zero N
		return zero, fmt.Errorf("cannot find min of %w", ErrEmptyInput)
	}

	best := values[0]
	for _, value := range values[1:] {
		if value < best {
			best = value
		}
	}
	return best, nil
}

// Join concatenates words with a separator between consecutive elements.
// The separator defaults to a single space when omitted.
func Join(words []string, separator ...string) string {
	sep := " "
	if len(separator) > 0 {
		sep = separator[0]
	}

	result := ""
	for i, word := range words {
		result += word
		if i < len(words)-1 {
			result += sep
		}
	}
	return result
}

// Where returns the elements for which keep reports true, preserving order.
func Where[E any](values []E, keep func(E) bool) []E {
	var result []E
	for _, value := range values {
		if keep(value) {
			result = append(result, value)
		}
	}
	return result
}

// Mean returns the arithmetic mean of the values. The mean of no values is
// 0 - unlike MaxOf/MinOf this case defaults rather than errors, matching
// how averages are conventionally reported over empty windows.
func Mean[N Number](values []N) float64 {
	if len(values) == 0 {
		return 0
	}

	var total N
	for _, value := range values {
		total += value
	}
	return float64(total) / float64(len(values))
}

// NestedSum returns the sum of every value across all inner slices.
func NestedSum[N Number](groups [][]N) N {
	var total N
	for _, group := range groups {
		for _, value := range group {
			total += value
		}
	}
	return total
}

// WordLengths returns the length in runes of each word, in order.
func WordLengths(words []string) []int {
	lengths := make([]int, 0, len(words))
	for _, word := range words {
		lengths = append(lengths, utf8.RuneCountInString(word))
	}
	return lengths
}

// Frequencies returns a table mapping each distinct item to its number of
// occurrences. The counts over all keys sum to len(items).
func Frequencies[E comparable](items []E) map[E]int {
	frequency := make(map[E]int)
	for _, item := range items {
		frequency[item]++
	}
	return frequency
}

// RunningSum returns the prefix sums of values: element i of the result is
// the sum of values[0..i]. The result always has the same length as the
// input.
func RunningSum[N Number](values []N) []N {
	sums := make([]N, 0, len(values))
	var current N
	for _, value := range values {
		current += value
		sums = append(sums, current)
	}
	return sums
}

// SumOfSquares returns the sum of each value squared.
func SumOfSquares[N Number](values []N) N {
	var total N
	for _, value := range values {
		total += value * value
	}
	return total
}

// LongestWord returns the word with the most runes. Ties go to the first
// occurrence; an empty slice yields the empty string.
func LongestWord(words []string) string {
	if len(words) == 0 {
		return ""
	}

	longest := words[0]
	for _, word := range words[1:] {
		if utf8.RuneCountInString(word) > utf8.RuneCountInString(longest) {
			longest = word
		}
	}
	return longest
}

// AlternatingSum adds values at even indexes and subtracts values at odd
// indexes: v0 - v1 + v2 - v3 ...
func AlternatingSum[N Number](values []N) N {
	var total N
	for i, value := range values {
		if i%2 == 0 {
			total += value
		} else {
			total -= value
		}
	}
	return total
}

// Partition splits items into those for which pred reports true and those
// for which it reports false, preserving order within each group.
func Partition[E any](items []E, pred func(E) bool) (matched, rest []E) {
	for _, item := range items {
		if pred(item) {
			matched = append(matched, item)
		} else {
			rest = append(rest, item)
		}
	}
	return matched, rest
}

// PrimeCount returns how many of the values are prime.
func PrimeCount(values []int) int {
	count := 0
	for _, value := range values {
		if isPrime(value) {
			count++
		}
	}
	return count
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// SumField sums the value stored under key across all records. Records
// missing the key contribute 0.
func SumField(records []map[string]float64, key string) float64 {
	total := 0.0
	for _, record := range records {
		total += record[key]
	}
	return total
}

// MovingAverage returns the mean of each full window of the given size as
// it slides over values. Window sizes outside [1, len(values)] yield an
// empty result.
func MovingAverage[N Number](values []N, window int) []float64 {
	if window < 1 || window > len(values) {
		return nil
	}

	averages := make([]float64, 0, len(values)-window+1)
	var sum N
	for i, value := range values {
		sum += value
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			averages = append(averages, float64(sum)/float64(window))
		}
	}
	return averages
}

// round rounds v to the given number of decimal places, half away from
// zero.
func round(v float64, decimals int) float64 {
	scale := math.Pow10(decimals)
	return math.Round(v*scale) / scale
}
