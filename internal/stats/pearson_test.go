package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPearson(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		y    []float64
		want float64
	}{
		{"perfect positive", []float64{1, 2, 3, 4}, []float64{2, 4, 6, 8}, 1},
		{"perfect negative", []float64{1, 2, 3, 4}, []float64{8, 6, 4, 2}, -1},
		{"uncorrelated", []float64{1, 2, 3, 4}, []float64{1, -1, 1, -1}, -0.4472},
		{"constant x", []float64{5, 5, 5}, []float64{1, 2, 3}, 0},
		{"constant y", []float64{1, 2, 3}, []float64{5, 5, 5}, 0},
		{"single element", []float64{1}, []float64{2}, 0},
		{"length mismatch", []float64{1, 2}, []float64{1}, 0},
		{"both empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Pearson(tt.x, tt.y), 1e-4)
		})
	}
}

func TestCorrelationMatrix_SymmetryAndDiagonal(t *testing.T) {
	series := [][]float64{
		{6, 5, 3, 2, 4},
		{5, 4, 2, 2, 3},
		{10, 4, -3, -10, 0},
	}

	m := CorrelationMatrix(series)
	require.Len(t, m, 3)

	for i := range m {
		require.Len(t, m[i], 3)
		assert.Equal(t, 1.0, m[i][i])
		for j := range m[i] {
			assert.Equal(t, m[i][j], m[j][i], "matrix must be symmetric")
			assert.LessOrEqual(t, m[i][j], 1.0)
			assert.GreaterOrEqual(t, m[i][j], -1.0)
		}
	}
}

func TestCorrelationMatrix_ConstantColumn(t *testing.T) {
	m := CorrelationMatrix([][]float64{
		{1, 2, 3},
		{4, 4, 4},
	})

	// Zero-variance pairs are defined as 0 off the diagonal; the diagonal
	// stays 1 even for a constant series.
	assert.Equal(t, 0.0, m[0][1])
	assert.Equal(t, 0.0, m[1][0])
	assert.Equal(t, 1.0, m[1][1])
}

func TestCorrelationMatrix_Empty(t *testing.T) {
	assert.Empty(t, CorrelationMatrix(nil))
}
