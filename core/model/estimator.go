package model

import "gonum.org/v1/gonum/mat"

// Fitter は学習可能なモデルのインターフェース
type Fitter interface {
	// Fit はモデルを訓練データで学習させる
	Fit(X, y mat.Matrix) error
}

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict は入力データに対する予測を行う
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Scorer はモデルの決定係数（R²）を計算するインターフェース
type Scorer interface {
	Score(X, y mat.Matrix) (float64, error)
}

// LinearModel は切片を持たない線形回帰モデルのインターフェース
type LinearModel interface {
	Fitter
	Predictor
	Scorer

	// IsFitted は学習済みかどうかを返す
	IsFitted() bool
	// State は現在の学習状態を返す
	State() EstimatorState
	// Reset は学習結果を破棄して未学習状態に戻す
	Reset()
	// Weights は学習された重み（係数）を返す
	Weights() []float64
}
