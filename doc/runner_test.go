package doc

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/teranos/sigil/convert"
	"github.com/teranos/sigil/internal/util"
	"github.com/teranos/sigil/tier"
)

func writeProseFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunnerConvertsBatch(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeProseFile(t, dir, "a.txt", "for all x in S"),
		writeProseFile(t, dir, "b.txt", "user must login"),
		writeProseFile(t, dir, "c.txt", "invariant must hold"),
	}

	runner := NewRunner(NewComposer(convert.Default()), RunnerConfig{Workers: 4}, zap.NewNop().Sugar())
	report := runner.Run(context.Background(), paths, Options{})

	assert.Equal(t, 3, report.Converted)
	assert.Zero(t, report.Failed)
	require.Len(t, report.Results, 3)

	_, err := uuid.Parse(report.RunID)
	assert.NoError(t, err, "run id must be a uuid")
	assert.Positive(t, report.Duration)

	for _, res := range report.Results {
		assert.NoError(t, res.Err)
		assert.NotEmpty(t, res.Result.Output, "path: %s", res.Path)
	}
}

func TestRunnerCollectsPerFileFailures(t *testing.T) {
	dir := t.TempDir()
	good := writeProseFile(t, dir, "good.txt", "x equals y")
	missing := filepath.Join(dir, "does-not-exist.txt")

	runner := NewRunner(NewComposer(convert.Default()), RunnerConfig{Workers: 2}, zap.NewNop().Sugar())
	report := runner.Run(context.Background(), []string{good, missing}, Options{})

	assert.Equal(t, 1, report.Converted)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Results, 2)

	for _, res := range report.Results {
		if res.Path == missing {
			require.Error(t, res.Err)
			assert.Contains(t, res.Error, "failed to read prose file")
		} else {
			assert.NoError(t, res.Err)
		}
	}
}

func TestRunnerWorkerFloor(t *testing.T) {
	for _, workers := range []int{0, -5} {
		runner := NewRunner(NewComposer(convert.Default()), RunnerConfig{Workers: workers}, zap.NewNop().Sugar())
		assert.Equal(t, 1, runner.workers)
	}
}

func TestRunnerStopsDispatchOnCancel(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		paths = append(paths, writeProseFile(t, dir, name, "x equals y"))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := NewRunner(NewComposer(convert.Default()), RunnerConfig{Workers: 1}, zap.NewNop().Sugar())
	report := runner.Run(ctx, paths, Options{})

	// Files already dispatched may finish; the rest are dropped.
	assert.LessOrEqual(t, len(report.Results), len(paths))
	assert.Equal(t, report.Converted+report.Failed, len(report.Results))
}

func TestRunnerPropagatesOptions(t *testing.T) {
	dir := t.TempDir()
	path := writeProseFile(t, dir, "a.txt", "x equals y")

	runner := NewRunner(NewComposer(convert.Default()), RunnerConfig{Workers: 1}, zap.NewNop().Sugar())
	opts := Options{Tier: util.Ptr(tier.Standard), Domain: "billing"}
	report := runner.Run(context.Background(), []string{path}, opts)

	require.Len(t, report.Results, 1)
	result := report.Results[0].Result
	assert.Equal(t, tier.Standard, result.Tier)
	assert.Contains(t, result.Output, "domain≜billing")
}
