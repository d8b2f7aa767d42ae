// Package coordfit fits linear models by coordinate-wise hill climbing.
//
// Observations (a feature vector plus a target) are collected in a
// dataset.Store. The tuning package then refines a weight vector w so that
// the dot product of w with each row approximates its target. Each
// generation perturbs one weight at a time by a random multiple of a fixed
// step within [-radius, radius] and keeps the change only when the scaled
// RMSE, sqrt(SSE)/n, strictly decreases.
//
// # Quick Start
//
//	store := dataset.New()
//	_ = store.Append([]float64{6, -4, 5}, 4.0)
//	_ = store.Append([]float64{1, 4, 6}, 3.0)
//
//	res, err := tuning.Tune(store, []float64{0, 0, 0}, 100000, tuning.NewSource(1))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.RMSE, res.Weights)
//
// linear.HillClimbRegression wraps the same procedure behind Fit, Predict
// and Score over gonum matrices.
//
// # Packages
//
//   - dataset: the observation store
//   - tuning: RMSE evaluation and the hill-climbing tuner
//   - linear: HillClimbRegression estimator
//   - metrics: regression metrics (MSE, RMSE, MAE, R²)
//   - core/model: estimator interfaces and base state
//   - pkg/errors, pkg/log: error types and structured logging
//   - cmd/coordfit: command-line harness
package coordfit
