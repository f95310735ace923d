package analysis

import (
	"math"
	"testing"

	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelationMatrixPerfectRelations(t *testing.T) {
	tbl := newTable(t,
		series.New([]float64{1, 2, 3, 4}, series.Float, "up"),
		series.New([]float64{2, 4, 6, 8}, series.Float, "double"),
		series.New([]float64{4, 3, 2, 1}, series.Float, "down"),
	)

	matrix, err := CorrelationMatrix(tbl, []string{"up", "double", "down"})
	require.NoError(t, err)
	require.Len(t, matrix, 3)

	for i := range matrix {
		assert.InDelta(t, 1.0, matrix[i][i], 1e-12)
	}
	assert.InDelta(t, 1.0, matrix[0][1], 1e-12)
	assert.InDelta(t, -1.0, matrix[0][2], 1e-12)
	assert.InDelta(t, matrix[1][2], matrix[2][1], 1e-12)
}

func TestCorrelationMatrixPairwiseComplete(t *testing.T) {
	// The NaN row is dropped pairwise, leaving {1,2,4} vs {1,2,4}.
	tbl := newTable(t,
		series.New([]float64{1, 2, math.NaN(), 4}, series.Float, "a"),
		series.New([]float64{1, 2, 3, 4}, series.Float, "b"),
	)

	matrix, err := CorrelationMatrix(tbl, []string{"a", "b"})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, matrix[0][1], 1e-12)
}

func TestCorrelationMatrixDegeneratePair(t *testing.T) {
	tbl := newTable(t,
		series.New([]float64{1, math.NaN(), math.NaN()}, series.Float, "sparse"),
		series.New([]float64{1, 2, 3}, series.Float, "full"),
	)

	matrix, err := CorrelationMatrix(tbl, []string{"sparse", "full"})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(matrix[0][1]), "fewer than two complete pairs has no defined correlation")
}

func TestCorrelationMatrixNeedsTwoColumns(t *testing.T) {
	tbl := newTable(t,
		series.New([]float64{1, 2, 3}, series.Float, "solo"),
	)

	_, err := CorrelationMatrix(tbl, []string{"solo"})
	assert.Error(t, err)
}
