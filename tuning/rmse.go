package tuning

import (
	"math"

	"github.com/YuminosukeSato/coordfit/dataset"
	"github.com/YuminosukeSato/coordfit/pkg/errors"
)

// EvaluateRMSE scores weights against every row of the store:
//
//	sqrt( Σ (dot(weights, features) - target)² ) / rows
//
// An empty store returns an error wrapping errors.ErrEmptyStore instead of
// NaN. A weight vector whose length differs from the store's dimensionality
// returns a DimensionError, and a non-finite result a
// NumericalInstabilityError.
func EvaluateRMSE(store *dataset.Store, weights []float64) (float64, error) {
	if err := checkInputs("EvaluateRMSE", store, weights); err != nil {
		return 0, err
	}
	rmse := scaledRMSE(store, weights)
	if err := errors.CheckScalar("EvaluateRMSE", rmse, 0); err != nil {
		return 0, err
	}
	return rmse, nil
}

func checkInputs(op string, store *dataset.Store, weights []float64) error {
	if store == nil || store.Len() == 0 {
		return errors.Wrapf(errors.ErrEmptyStore, "%s: no rows to evaluate", op)
	}
	if len(weights) != store.Dim() {
		return errors.NewDimensionError(op, store.Dim(), len(weights), 1)
	}
	return nil
}

// scaledRMSE assumes checkInputs has passed.
func scaledRMSE(store *dataset.Store, weights []float64) float64 {
	return math.Sqrt(store.SumSquaredResiduals(weights)) / float64(store.Len())
}
