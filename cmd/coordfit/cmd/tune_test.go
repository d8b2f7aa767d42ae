package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, ctx context.Context, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.ExecuteContext(ctx)
	return out.String(), errOut.String(), err
}

func parseRMSE(t *testing.T, stdout string) float64 {
	t.Helper()
	for _, line := range strings.Split(stdout, "\n") {
		if v, ok := strings.CutPrefix(line, "RMSE: "); ok {
			f, err := strconv.ParseFloat(v, 64)
			require.NoError(t, err)
			return f
		}
	}
	t.Fatalf("no RMSE line in %q", stdout)
	return 0
}

func TestTuneZeroIterations(t *testing.T) {
	stdout, _, err := run(t, context.Background(), "tune", "--iterations=0")
	require.NoError(t, err)

	want := "[ 6.0000 -4.0000 5.0000 ][ 4.0000 ]\n" +
		"[ 1.0000 4.0000 6.0000 ][ 3.0000 ]\n" +
		"[ 2.0000 8.0000 7.0000 ][ 6.0000 ]\n" +
		"[ 1.0000 3.0000 8.0000 ][ 2.5000 ]\n" +
		"RMSE: 2.0502\n" +
		"WEIGHTS: [ 0.0000 0.0000 0.0000 ]\n"
	assert.Equal(t, want, stdout)
}

func TestTuneImproves(t *testing.T) {
	stdout, _, err := run(t, context.Background(), "tune", "--iterations=500", "--seed=3")
	require.NoError(t, err)
	assert.Less(t, parseRMSE(t, stdout), 2.0502)
	assert.Contains(t, stdout, "WEIGHTS: [ ")
}

func TestTuneDeterministic(t *testing.T) {
	first, _, err := run(t, context.Background(), "tune", "--iterations=300", "--seed=42")
	require.NoError(t, err)
	second, _, err := run(t, context.Background(), "tune", "--iterations=300", "--seed=42")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTuneEnvironment(t *testing.T) {
	t.Setenv("COORDFIT_ITERATIONS", "0")
	stdout, _, err := run(t, context.Background(), "tune")
	require.NoError(t, err)
	assert.Contains(t, stdout, "RMSE: 2.0502\n")
}

func TestTuneJSONLogs(t *testing.T) {
	_, stderr, err := run(t, context.Background(), "tune", "--iterations=50", "--log-format=json")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"message":"Tuning started"`)
	assert.Contains(t, stderr, `"message":"Tuning finished"`)
	assert.Contains(t, stderr, `"message":"Fit quality"`)
	assert.Contains(t, stderr, `"metrics.mse":`)
	assert.Contains(t, stderr, `"metrics.r2_score":`)
}

func TestTunePlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "convergence.svg")
	_, _, err := run(t, context.Background(), "tune", "--iterations=100", "--plot="+path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestTuneInvalidFlags(t *testing.T) {
	_, stderr, err := run(t, context.Background(), "tune", "--radius=0")
	assert.Error(t, err)
	assert.Empty(t, stderr)
}

func TestExecuteLogsFailureOnce(t *testing.T) {
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"tune", "--radius=0"})

	err := execute(context.Background(), root)
	require.Error(t, err)

	logged := errOut.String()
	assert.Equal(t, 1, strings.Count(logged, "Command failed"))
	assert.Contains(t, logged, "INVALID_INPUT")
	assert.NotContains(t, logged, "Error: ")
}

func TestTuneCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stdout, _, err := run(t, ctx, "tune", "--iterations=1000")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, stdout, "RMSE: 2.0502\n")
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, context.Background(), "version")
	require.NoError(t, err)
	assert.Equal(t, "coordfit "+Version+"\n", stdout)
}
