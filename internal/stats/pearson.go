// Package stats provides the column statistics backing the correlation view.
package stats

import "math"

// Pearson returns the Pearson correlation coefficient of x and y.
// It returns 0 when either series has zero variance or the series are
// shorter than two elements, so callers never see NaN.
func Pearson(x, y []float64) float64 {
	n := len(x)
	if n != len(y) || n < 2 {
		return 0
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += x[i]
		sumY += y[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx := x[i] - meanX
		dy := y[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	denom := math.Sqrt(varX * varY)
	if denom == 0 {
		return 0
	}
	return cov / denom
}

// CorrelationMatrix returns the pairwise Pearson correlation of the given
// series. The result is symmetric with a unit diagonal.
func CorrelationMatrix(series [][]float64) [][]float64 {
	n := len(series)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		matrix[i][i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := Pearson(series[i], series[j])
			matrix[i][j] = r
			matrix[j][i] = r
		}
	}
	return matrix
}
