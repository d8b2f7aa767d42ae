package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

type metricCase struct {
	name    string
	yTrue   *mat.VecDense
	yPred   *mat.VecDense
	want    float64
	wantErr bool
}

func runMetricCases(t *testing.T, fnName string, fn func(yTrue, yPred *mat.VecDense) (float64, error), tests []metricCase) {
	t.Helper()
	const tolerance = 1e-10

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fn(tt.yTrue, tt.yPred)

			if (err != nil) != tt.wantErr {
				t.Errorf("%s() error = %v, wantErr %v", fnName, err, tt.wantErr)
				return
			}

			if !tt.wantErr && math.Abs(got-tt.want) > tolerance {
				t.Errorf("%s() = %v, want %v (tolerance: %v)", fnName, got, tt.want, tolerance)
			}
		})
	}
}

func TestSSE(t *testing.T) {
	runMetricCases(t, "SSE", SSE, []metricCase{
		{
			name:  "perfect prediction",
			yTrue: mat.NewVecDense(3, []float64{1, 2, 3}),
			yPred: mat.NewVecDense(3, []float64{1, 2, 3}),
			want:  0,
		},
		{
			name:  "simple case",
			yTrue: mat.NewVecDense(3, []float64{10, 20, 30}),
			yPred: mat.NewVecDense(3, []float64{12, 18, 33}),
			want:  17, // 4 + 4 + 9
		},
		{
			name:    "dimension mismatch",
			yTrue:   mat.NewVecDense(3, []float64{1, 2, 3}),
			yPred:   mat.NewVecDense(2, []float64{1, 2}),
			wantErr: true,
		},
		{
			name:    "empty vectors",
			yTrue:   &mat.VecDense{},
			yPred:   &mat.VecDense{},
			wantErr: true,
		},
	})
}

func TestScaledRMSE(t *testing.T) {
	runMetricCases(t, "ScaledRMSE", ScaledRMSE, []metricCase{
		{
			// 4行のサンプルデータを重み0で予測した場合
			name:  "sample rows at zero weights",
			yTrue: mat.NewVecDense(4, []float64{4.0, 3.0, 6.0, 2.5}),
			yPred: mat.NewVecDense(4, []float64{0, 0, 0, 0}),
			want:  math.Sqrt(16+9+36+6.25) / 4,
		},
		{
			name:  "unit errors",
			yTrue: mat.NewVecDense(4, []float64{0, 0, 0, 0}),
			yPred: mat.NewVecDense(4, []float64{1, 1, 1, 1}),
			want:  0.5, // sqrt(4) / 4
		},
		{
			name:    "empty vectors",
			yTrue:   &mat.VecDense{},
			yPred:   &mat.VecDense{},
			wantErr: true,
		},
	})
}

func TestMSE(t *testing.T) {
	runMetricCases(t, "MSE", MSE, []metricCase{
		{
			name:  "simple case",
			yTrue: mat.NewVecDense(4, []float64{1.0, 2.0, 3.0, 4.0}),
			yPred: mat.NewVecDense(4, []float64{1.5, 2.5, 2.5, 3.5}),
			want:  0.25,
		},
		{
			name:    "dimension mismatch",
			yTrue:   mat.NewVecDense(3, []float64{1.0, 2.0, 3.0}),
			yPred:   mat.NewVecDense(2, []float64{1.0, 2.0}),
			wantErr: true,
		},
	})
}

func TestRMSE(t *testing.T) {
	runMetricCases(t, "RMSE", RMSE, []metricCase{
		{
			name:  "unit errors",
			yTrue: mat.NewVecDense(4, []float64{0, 0, 0, 0}),
			yPred: mat.NewVecDense(4, []float64{1, 1, 1, 1}),
			want:  1.0,
		},
	})
}

func TestMAE(t *testing.T) {
	runMetricCases(t, "MAE", MAE, []metricCase{
		{
			name:  "mixed signs",
			yTrue: mat.NewVecDense(4, []float64{1, 2, 3, 4}),
			yPred: mat.NewVecDense(4, []float64{2, 1, 3, 6}),
			want:  1.0, // (1 + 1 + 0 + 2) / 4
		},
	})
}

func TestR2Score(t *testing.T) {
	runMetricCases(t, "R2Score", R2Score, []metricCase{
		{
			name:  "perfect prediction",
			yTrue: mat.NewVecDense(3, []float64{1, 2, 3}),
			yPred: mat.NewVecDense(3, []float64{1, 2, 3}),
			want:  1.0,
		},
		{
			name:  "mean prediction",
			yTrue: mat.NewVecDense(3, []float64{1, 2, 3}),
			yPred: mat.NewVecDense(3, []float64{2, 2, 2}),
			want:  0.0,
		},
		{
			name:    "constant target",
			yTrue:   mat.NewVecDense(3, []float64{5, 5, 5}),
			yPred:   mat.NewVecDense(3, []float64{5, 5, 5}),
			wantErr: true,
		},
	})
}

func TestColumnVector(t *testing.T) {
	v, err := ColumnVector("test", mat.NewDense(3, 1, []float64{1, 2, 3}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Len() != 3 || v.AtVec(2) != 3 {
		t.Errorf("unexpected vector: %v", mat.Formatted(v))
	}

	if _, err := ColumnVector("test", mat.NewDense(2, 2, nil)); err == nil {
		t.Error("expected error for multi-column input")
	}
}

func BenchmarkScaledRMSE(b *testing.B) {
	n := 10000
	yTrue := mat.NewVecDense(n, nil)
	yPred := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		yTrue.SetVec(i, float64(i))
		yPred.SetVec(i, float64(i)+0.5)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ScaledRMSE(yTrue, yPred)
	}
}
