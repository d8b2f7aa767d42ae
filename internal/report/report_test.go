package report

import (
	"bytes"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/coordfit/dataset"
	"github.com/YuminosukeSato/coordfit/pkg/errors"
	"github.com/YuminosukeSato/coordfit/tuning"
)

func TestDumpStore(t *testing.T) {
	s := dataset.New()
	require.NoError(t, s.Append([]float64{6, -4, 5}, 4.0))
	require.NoError(t, s.Append([]float64{1, 4, 6}, 3.0))

	var buf bytes.Buffer
	require.NoError(t, DumpStore(&buf, s))

	want := "[ 6.0000 -4.0000 5.0000 ][ 4.0000 ]\n" +
		"[ 1.0000 4.0000 6.0000 ][ 3.0000 ]\n"
	assert.Equal(t, want, buf.String())
}

func TestDumpEmptyStore(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DumpStore(&buf, dataset.New()))
	assert.Empty(t, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestDumpStoreWriteError(t *testing.T) {
	s := dataset.New()
	require.NoError(t, s.Append([]float64{1}, 2))

	err := DumpStore(failingWriter{}, s)
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}

func TestSummarize(t *testing.T) {
	s := dataset.New()
	require.NoError(t, s.AppendRows(
		dataset.Row{Features: []float64{1, 0}, Target: 1},
		dataset.Row{Features: []float64{0, 1}, Target: 2},
		dataset.Row{Features: []float64{1, 1}, Target: 5},
		dataset.Row{Features: []float64{2, 0}, Target: 2},
	))

	// w = (1, 2) の予測は 1, 2, 3, 2 で、残差は 0, 0, 2, 0
	sum, err := Summarize(s, []float64{1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, sum.SSE, 1e-12)
	assert.InDelta(t, 0.5, sum.ScaledRMSE, 1e-12)
	assert.InDelta(t, 1.0, sum.MSE, 1e-12)
	assert.InDelta(t, 1.0, sum.RMSE, 1e-12)
	assert.InDelta(t, 0.5, sum.MAE, 1e-12)
	// mean 2.5, TSS = 2.25+0.25+6.25+0.25 = 9
	assert.InDelta(t, 1-4.0/9.0, sum.R2, 1e-12)

	rmse, err := tuning.EvaluateRMSE(s, []float64{1, 2})
	require.NoError(t, err)
	assert.InDelta(t, rmse, sum.ScaledRMSE, 1e-12)
}

func TestSummarizeErrors(t *testing.T) {
	_, err := Summarize(dataset.New(), []float64{1})
	assert.True(t, errors.Is(err, errors.ErrEmptyStore))

	s := dataset.New()
	require.NoError(t, s.Append([]float64{1, 2}, 3))
	_, err = Summarize(s, []float64{1})
	assert.True(t, errors.Is(err, errors.ErrDimensionMismatch))
}

func TestSummarizeConstantTargets(t *testing.T) {
	s := dataset.New()
	require.NoError(t, s.Append([]float64{1}, 2))
	require.NoError(t, s.Append([]float64{2}, 2))

	sum, err := Summarize(s, []float64{1})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(sum.R2))
}

func TestFormatWeights(t *testing.T) {
	assert.Equal(t, "[ 0.1235 -1.0000 ]", FormatWeights([]float64{0.123456, -1}))
	assert.Equal(t, "[ ]", FormatWeights(nil))
}

func TestSaveConvergencePlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "convergence.png")
	require.NoError(t, SaveConvergencePlot([]float64{2.05, 1.2, 0.8, 0.8, 0.5}, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSaveConvergencePlotEmpty(t *testing.T) {
	err := SaveConvergencePlot(nil, filepath.Join(t.TempDir(), "x.png"))
	assert.Error(t, err)
}
