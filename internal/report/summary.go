package report

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/coordfit/dataset"
	"github.com/YuminosukeSato/coordfit/metrics"
	"github.com/YuminosukeSato/coordfit/pkg/errors"
)

// Summary holds the fit quality of a weight vector over a store.
type Summary struct {
	SSE        float64
	ScaledRMSE float64
	MSE        float64
	RMSE       float64
	MAE        float64
	// R2 is NaN when the targets have no variance.
	R2 float64
}

// Summarize evaluates weights against every row of store.
func Summarize(store *dataset.Store, weights []float64) (Summary, error) {
	X, y, err := store.Matrix()
	if err != nil {
		return Summary{}, err
	}
	if _, c := X.Dims(); c != len(weights) {
		return Summary{}, errors.NewDimensionError("Summarize", c, len(weights), 1)
	}

	pred := mat.NewVecDense(y.Len(), nil)
	pred.MulVec(X, mat.NewVecDense(len(weights), weights))

	var s Summary
	for _, m := range []struct {
		dst *float64
		fn  func(yTrue, yPred *mat.VecDense) (float64, error)
	}{
		{&s.SSE, metrics.SSE},
		{&s.ScaledRMSE, metrics.ScaledRMSE},
		{&s.MSE, metrics.MSE},
		{&s.RMSE, metrics.RMSE},
		{&s.MAE, metrics.MAE},
	} {
		if *m.dst, err = m.fn(y, pred); err != nil {
			return Summary{}, err
		}
	}

	// constant targets leave R² undefined
	if s.R2, err = metrics.R2Score(y, pred); err != nil {
		s.R2 = math.NaN()
	}
	return s, nil
}
