package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"courselens/domain/table"
	"courselens/internal/errors"
)

// CorrelationMatrix computes the pairwise Pearson correlation matrix for the
// requested numeric columns, using pairwise-complete observations: rows where
// either value is missing are skipped for that pair only. The diagonal is 1;
// a pair with fewer than two complete observations or zero variance is NaN.
func CorrelationMatrix(t table.Table, columns []string) ([][]float64, error) {
	if len(columns) < 2 {
		return nil, errors.ValidationError("correlation requires at least two columns")
	}

	data := make([][]float64, len(columns))
	for i, name := range columns {
		values, err := t.Floats(name)
		if err != nil {
			return nil, err
		}
		data[i] = values
	}

	n := len(columns)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		matrix[i][i] = 1
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := pairwiseCorrelation(data[i], data[j])
			matrix[i][j] = r
			matrix[j][i] = r
		}
	}

	return matrix, nil
}

func pairwiseCorrelation(xs, ys []float64) float64 {
	x := make([]float64, 0, len(xs))
	y := make([]float64, 0, len(ys))
	for k := range xs {
		if math.IsNaN(xs[k]) || math.IsNaN(ys[k]) {
			continue
		}
		x = append(x, xs[k])
		y = append(y, ys[k])
	}
	if len(x) < 2 {
		return math.NaN()
	}
	return stat.Correlation(x, y, nil)
}
