package tuning

import "github.com/YuminosukeSato/coordfit/pkg/log"

// Option is a function that configures a Tuner
type Option func(*Tuner)

// WithRadius sets the half-width of the perturbation interval [-radius, radius]
func WithRadius(radius float64) Option {
	return func(t *Tuner) {
		t.radius = radius
	}
}

// WithStep sets the quantization step of perturbation draws. A finer or
// coarser step changes how the search converges.
func WithStep(step float64) Option {
	return func(t *Tuner) {
		t.step = step
	}
}

// WithLogger sets the logger used for progress and summary records
func WithLogger(logger log.Logger) Option {
	return func(t *Tuner) {
		t.logger = logger
	}
}

// WithHistory enables recording the best RMSE after every generation
func WithHistory(enabled bool) Option {
	return func(t *Tuner) {
		t.history = enabled
	}
}

// WithProgressEvery logs a debug record every n generations. Zero disables it.
func WithProgressEvery(n int) Option {
	return func(t *Tuner) {
		t.progressEvery = n
	}
}
