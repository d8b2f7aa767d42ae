// Package tuning fits the weights of a linear model by randomized
// coordinate-wise hill climbing.
//
// Each generation visits the weights in index order. For weight j a
// quantized perturbation drawn from [-radius, radius] is added, the RMSE
// objective is evaluated over the whole store, and the change is kept only
// if the objective strictly decreases. Ties are rejected. There is no
// backtracking, annealing or restart.
package tuning

import (
	"context"
	"math"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/YuminosukeSato/coordfit/dataset"
	"github.com/YuminosukeSato/coordfit/pkg/errors"
	"github.com/YuminosukeSato/coordfit/pkg/log"
)

const (
	// DefaultRadius is the half-width of the perturbation interval.
	DefaultRadius = 0.1

	// DefaultStep is the perturbation granularity: draws are multiples of
	// it, so the default interval holds 20001 distinct values.
	DefaultStep = 0.00001

	// AlgorithmName identifies the search in logs and warnings.
	AlgorithmName = "CoordinateHillClimb"

	maxHistoryPrealloc = 1 << 16
)

// Source supplies the pseudo-random integers behind perturbation draws.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a uniform integer in [0, n).
	IntN(n int) int
}

// NewSource returns a deterministic PCG-backed source for seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Result is the outcome of a tuning run.
type Result struct {
	// Weights are the final weights, one per feature.
	Weights []float64
	// RMSE is the objective at Weights.
	RMSE float64
	// StartRMSE is the objective at the starting weights.
	StartRMSE float64
	// History holds the best RMSE after each generation when enabled.
	// It is non-increasing.
	History []float64
	// Accepted counts accepted perturbations.
	Accepted int
	// Generations is the number of completed generations.
	Generations int
}

// Improved reports whether the run lowered the objective.
func (r *Result) Improved() bool {
	return r.RMSE < r.StartRMSE
}

// Tuner runs coordinate-wise hill climbing. A Tuner holds only
// configuration and can be reused; every run owns its own working vector.
type Tuner struct {
	radius        float64
	step          float64
	logger        log.Logger
	history       bool
	progressEvery int
}

// New creates a Tuner with DefaultRadius and DefaultStep.
func New(opts ...Option) *Tuner {
	t := &Tuner{
		radius: DefaultRadius,
		step:   DefaultStep,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tune runs a Tuner with default settings.
func Tune(store *dataset.Store, start []float64, iterations int, rng Source) (*Result, error) {
	return New().Tune(store, start, iterations, rng)
}

// Tune refines start over the given number of generations. A non-positive
// iteration count runs zero generations and returns start with its RMSE.
func (t *Tuner) Tune(store *dataset.Store, start []float64, iterations int, rng Source) (*Result, error) {
	return t.TuneContext(context.Background(), store, start, iterations, rng)
}

// TuneContext is Tune with cancellation checked between generations. When
// ctx ends early the best result so far is returned together with an error
// wrapping ctx.Err(). Runs that finish are identical to Tune.
func (t *Tuner) TuneContext(ctx context.Context, store *dataset.Store, start []float64, iterations int, rng Source) (res *Result, err error) {
	defer errors.Recover(&err, "Tuner.Tune")

	steps, err := t.validate(rng)
	if err != nil {
		return nil, err
	}
	if err := checkInputs("Tuner.Tune", store, start); err != nil {
		return nil, err
	}
	if err := errors.CheckFinite("Tuner.Tune", start); err != nil {
		return nil, err
	}

	w := slices.Clone(start)
	best, err := EvaluateRMSE(store, w)
	if err != nil {
		return nil, err
	}
	if iterations < 0 {
		iterations = 0
	}

	logger := t.log().With(
		log.ModelNameKey, AlgorithmName,
		log.ComponentKey, "tuning",
	)
	logger.Info("Tuning started",
		log.OperationKey, log.OperationTune,
		log.SamplesKey, store.Len(),
		log.FeaturesKey, store.Dim(),
		log.IterationsKey, iterations,
		log.RadiusKey, t.radius,
		log.StepKey, t.step,
		log.LossKey, best,
	)
	began := time.Now()

	res = &Result{StartRMSE: best}
	if t.history {
		res.History = make([]float64, 0, min(iterations, maxHistoryPrealloc))
	}
	progress := t.progressEvery > 0 && logger.Enabled(ctx, log.LevelDebug)

	for g := 0; g < iterations; g++ {
		if cerr := ctx.Err(); cerr != nil {
			res.Weights, res.RMSE = w, best
			logger.Warn("Tuning canceled",
				log.ErrorCodeKey, log.ErrorCanceled,
				log.IterationKey, g,
				log.LossKey, best,
			)
			return res, errors.Wrapf(cerr, "Tuner.Tune: canceled after %d generations", g)
		}

		for j := range w {
			old := w[j]
			w[j] = old + t.perturbation(rng, steps)

			// NaN compares false and is rejected with the other non-improvements.
			if rmse := scaledRMSE(store, w); rmse < best {
				best = rmse
				res.Accepted++
			} else {
				w[j] = old
			}
		}

		res.Generations++
		if t.history {
			res.History = append(res.History, best)
		}
		if progress && (g+1)%t.progressEvery == 0 {
			logger.Debug("Generation finished",
				log.IterationKey, g+1,
				log.AcceptedKey, res.Accepted,
				log.LossKey, best,
			)
		}
	}

	res.Weights, res.RMSE = w, best

	if iterations > 0 && res.Accepted == 0 {
		errors.Warn(errors.NewConvergenceWarning(AlgorithmName, iterations, "no perturbation improved the starting weights"))
	}

	logger.Info("Tuning finished",
		log.OperationKey, log.OperationTune,
		log.IterationKey, res.Generations,
		log.AcceptedKey, res.Accepted,
		log.LossKey, best,
		log.DurationMsKey, time.Since(began).Milliseconds(),
	)
	return res, nil
}

// perturbation draws k uniformly from 0..steps inclusive and maps it to
// k*step - radius. steps*step never exceeds 2*radius, so draws stay in
// [-radius, radius] and reach +radius when step divides 2*radius.
func (t *Tuner) perturbation(rng Source, steps int) float64 {
	return math.Min(float64(rng.IntN(steps+1))*t.step-t.radius, t.radius)
}

// validate checks the configuration and returns the number of steps in
// [-radius, radius].
func (t *Tuner) validate(rng Source) (int, error) {
	if rng == nil {
		return 0, errors.NewValidationError("rng", "a random source is required", nil)
	}
	if !(t.radius > 0) || math.IsInf(t.radius, 0) {
		return 0, errors.NewValidationError("radius", "must be positive and finite", t.radius)
	}
	if !(t.step > 0) || t.step > t.radius {
		return 0, errors.NewValidationError("step", "must be positive and not larger than radius", t.step)
	}
	// the epsilon absorbs rounding in exact divisions such as 0.2/0.00001
	steps := math.Floor(2*t.radius/t.step + 1e-9)
	if steps > math.MaxInt32 {
		return 0, errors.NewValidationError("step", "too fine for radius", t.step)
	}
	return int(steps), nil
}

func (t *Tuner) log() log.Logger {
	if t.logger != nil {
		return t.logger
	}
	return log.GetLogger()
}
