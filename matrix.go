package foldz

// MatrixSum returns the sum of every element in a 2D matrix. Ragged rows
// are fine; each row contributes whatever elements it has.
func MatrixSum[N Number](matrix [][]N) N {
	return NestedSum(matrix)
}

// RowSums returns the sum of each row of a 2D matrix, in order.
func RowSums[N Number](matrix [][]N) []N {
	sums := make([]N, 0, len(matrix))
	for _, row := range matrix {
		sums = append(sums, SumOf(row))
	}
	return sums
}
