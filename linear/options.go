package linear

import "github.com/YuminosukeSato/coordfit/pkg/log"

// Option is a function that configures HillClimbRegression
type Option func(*HillClimbRegression)

// WithIterations sets the number of hill-climbing generations
func WithIterations(n int) Option {
	return func(r *HillClimbRegression) {
		r.iterations = n
	}
}

// WithSeed sets the seed of the perturbation source
func WithSeed(seed uint64) Option {
	return func(r *HillClimbRegression) {
		r.seed = seed
	}
}

// WithRadius sets the perturbation half-width
func WithRadius(radius float64) Option {
	return func(r *HillClimbRegression) {
		r.radius = radius
	}
}

// WithStep sets the perturbation quantization step
func WithStep(step float64) Option {
	return func(r *HillClimbRegression) {
		r.step = step
	}
}

// WithInitialWeights sets the starting weights. Without it Fit starts from zeros.
func WithInitialWeights(w []float64) Option {
	return func(r *HillClimbRegression) {
		r.initial = append([]float64(nil), w...)
	}
}

// WithLogger sets the logger passed to the tuner
func WithLogger(logger log.Logger) Option {
	return func(r *HillClimbRegression) {
		r.logger = logger
	}
}
