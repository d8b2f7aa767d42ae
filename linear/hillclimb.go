package linear

import (
	"slices"

	"github.com/YuminosukeSato/coordfit/core/model"
	"github.com/YuminosukeSato/coordfit/dataset"
	"github.com/YuminosukeSato/coordfit/metrics"
	"github.com/YuminosukeSato/coordfit/pkg/errors"
	"github.com/YuminosukeSato/coordfit/pkg/log"
	"github.com/YuminosukeSato/coordfit/tuning"
	"gonum.org/v1/gonum/mat"
)

// DefaultIterations は既定の世代数
const DefaultIterations = 100000

// HillClimbRegression は座標ごとの山登り法で重みを求める切片なしの線形回帰モデル
//
// 予測値は重みと特徴量の内積で、切片項は持たない。
type HillClimbRegression struct {
	model.BaseEstimator

	iterations int
	seed       uint64
	radius     float64
	step       float64
	initial    []float64
	logger     log.Logger

	weights   []float64
	rmse      float64
	history   []float64
	nFeatures int
}

// NewHillClimbRegression は新しいモデルを作成する
func NewHillClimbRegression(opts ...Option) *HillClimbRegression {
	r := &HillClimbRegression{
		iterations: DefaultIterations,
		seed:       1,
		radius:     tuning.DefaultRadius,
		step:       tuning.DefaultStep,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Fit はモデルを訓練データで学習させる。
// 以前の学習結果は最初に破棄されるため、失敗した場合は未学習状態になる。
func (r *HillClimbRegression) Fit(X, y mat.Matrix) (err error) {
	const op = "HillClimbRegression.Fit"
	defer errors.Recover(&err, op)

	r.Reset()

	store, err := dataset.FromMatrix(X, y)
	if err != nil {
		return errors.NewModelError(op, "invalid training data", err)
	}

	start := r.initial
	if start == nil {
		start = make([]float64, store.Dim())
	}
	if len(start) != store.Dim() {
		return errors.NewDimensionError(op, store.Dim(), len(start), 1)
	}

	tuner := tuning.New(
		tuning.WithRadius(r.radius),
		tuning.WithStep(r.step),
		tuning.WithHistory(true),
		tuning.WithLogger(r.log()),
	)
	res, err := tuner.Tune(store, start, r.iterations, tuning.NewSource(r.seed))
	if err != nil {
		return errors.NewModelError(op, "tuning failed", err)
	}

	r.weights = res.Weights
	r.rmse = res.RMSE
	r.history = res.History
	r.nFeatures = store.Dim()
	r.SetFitted()

	r.log().Info("Model fitted",
		log.ModelNameKey, "HillClimbRegression",
		log.OperationKey, log.OperationFit,
		log.PhaseKey, log.PhaseTraining,
		log.StateKey, r.State().String(),
		log.RandomSeedKey, r.seed,
		log.SamplesKey, store.Len(),
		log.FeaturesKey, r.nFeatures,
		log.LossKey, r.rmse,
	)
	return nil
}

// Reset は学習結果を破棄して未学習状態に戻す。設定は保持される。
func (r *HillClimbRegression) Reset() {
	r.BaseEstimator.Reset()
	r.weights = nil
	r.rmse = 0
	r.history = nil
	r.nFeatures = 0
}

func (r *HillClimbRegression) log() log.Logger {
	if r.logger != nil {
		return r.logger
	}
	return log.GetLogger()
}

// Predict は入力データに対する予測を行う
func (r *HillClimbRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !r.IsFitted() {
		return nil, errors.NewNotFittedError("HillClimbRegression", "Predict")
	}

	rows, c := X.Dims()
	if c != r.nFeatures {
		return nil, errors.NewDimensionError("HillClimbRegression.Predict", r.nFeatures, c, 1)
	}

	// 予測: y = X * weights
	predictions := mat.NewVecDense(rows, nil)
	predictions.MulVec(X, mat.NewVecDense(c, slices.Clone(r.weights)))

	r.log().Debug("Prediction finished",
		log.ModelNameKey, "HillClimbRegression",
		log.OperationKey, log.OperationPredict,
		log.PhaseKey, log.PhaseInference,
		log.SamplesKey, rows,
	)
	return predictions, nil
}

// Score はモデルの決定係数（R²）を計算する
func (r *HillClimbRegression) Score(X, y mat.Matrix) (float64, error) {
	if !r.IsFitted() {
		return 0, errors.NewNotFittedError("HillClimbRegression", "Score")
	}

	yPred, err := r.Predict(X)
	if err != nil {
		return 0, err
	}

	yTrue, err := metrics.ColumnVector("HillClimbRegression.Score", y)
	if err != nil {
		return 0, err
	}
	yPredVec, err := metrics.ColumnVector("HillClimbRegression.Score", yPred)
	if err != nil {
		return 0, err
	}
	r2, err := metrics.R2Score(yTrue, yPredVec)
	if err != nil {
		return 0, err
	}

	r.log().Debug("Score computed",
		log.ModelNameKey, "HillClimbRegression",
		log.OperationKey, log.OperationScore,
		log.PhaseKey, log.PhaseInference,
		log.R2ScoreKey, r2,
	)
	return r2, nil
}

// Weights は学習された重みのコピーを返す
func (r *HillClimbRegression) Weights() []float64 {
	return slices.Clone(r.weights)
}

// RMSE は学習終了時の目的関数値を返す
func (r *HillClimbRegression) RMSE() float64 {
	return r.rmse
}

// History は世代ごとの最良RMSEを返す
func (r *HillClimbRegression) History() []float64 {
	return slices.Clone(r.history)
}

var _ model.LinearModel = (*HillClimbRegression)(nil)
