// Package log defines standard attribute keys for tuning and estimator logs.
//
// Keys follow a hierarchical naming convention (e.g. "model.name",
// "data.samples") so that log output can be filtered consistently.
package log

// Model and Operation Context
const (
	// ModelNameKey identifies the estimator or algorithm.
	// Examples: "HillClimbRegression", "CoordinateHillClimb"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "score", "tune", "evaluate"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is logging.
	// Examples: "dataset", "tuning", "linear", "cli"
	ComponentKey = "ml.component"

	// PhaseKey indicates the phase of the model lifecycle.
	// Standard values: "training", "inference"
	PhaseKey = "ml.phase"

	// StateKey records the estimator state, "fitted" or "not_fitted".
	StateKey = "model.state"
)

// Data Shape
const (
	// SamplesKey is the number of observation rows.
	SamplesKey = "data.samples"

	// FeaturesKey is the store dimensionality.
	FeaturesKey = "data.features"
)

// Performance and Progress
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// LossKey records the current best objective value.
	LossKey = "metrics.loss"

	// R2ScoreKey records the coefficient of determination.
	R2ScoreKey = "metrics.r2_score"

	// SSEKey, MSEKey, RMSEKey and MAEKey record the fit-quality summary.
	SSEKey  = "metrics.sse"
	MSEKey  = "metrics.mse"
	RMSEKey = "metrics.rmse"
	MAEKey  = "metrics.mae"

	// IterationKey records the current generation during tuning.
	IterationKey = "training.iteration"

	// AcceptedKey records how many perturbations were accepted so far.
	AcceptedKey = "training.accepted"
)

// Error and Warning Context
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	ErrorCodeKey = "error.code"

	// ErrorKey holds the error message attached by Logger.Error.
	ErrorKey = "error"

	// StacktraceKey contains the cockroachdb/errors stack of a logged error.
	StacktraceKey = "error.stacktrace"
)

// Hyperparameters and Configuration
const (
	// RadiusKey records the perturbation half-width.
	RadiusKey = "hyperparams.radius"

	// StepKey records the perturbation quantization step.
	StepKey = "hyperparams.step"

	// RandomSeedKey records the random seed for reproducibility.
	RandomSeedKey = "config.random_seed"

	// IterationsKey records the configured generation budget.
	IterationsKey = "config.iterations"
)

// Standard attribute values.
const (
	OperationFit      = "fit"
	OperationPredict  = "predict"
	OperationScore    = "score"
	OperationTune     = "tune"
	OperationEvaluate = "evaluate"

	PhaseTraining  = "training"
	PhaseInference = "inference"

	ErrorNotFitted         = "NOT_FITTED"
	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyStore        = "EMPTY_STORE"
	ErrorInvalidInput      = "INVALID_INPUT"
	ErrorConvergence       = "CONVERGENCE_FAILURE"
	ErrorCanceled          = "CANCELED"
)
