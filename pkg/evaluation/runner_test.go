package evaluation

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDataset(t *testing.T) {
	t.Run("valid lines with blank separators", func(t *testing.T) {
		input := strings.Join([]string{
			`{"id":"a","question":"q1","expected_sql":"SELECT 1"}`,
			``,
			`{"id":"b","question":"q2","expected_sql":"SELECT 2","tags":["smoke"]}`,
			`{"question":"q3","expected_sql":"SELECT 3"}`,
		}, "\n")

		cases, err := ReadDataset(strings.NewReader(input))
		require.NoError(t, err)

		require.Len(t, cases, 3)
		assert.Equal(t, "a", cases[0].ID)
		assert.Equal(t, "b", cases[1].ID)
		assert.Equal(t, []string{"smoke"}, cases[1].Tags)
		assert.Equal(t, "case-0004", cases[2].ID, "missing ids derive from the line number")
	})

	t.Run("broken json names the line", func(t *testing.T) {
		_, err := ReadDataset(strings.NewReader(`{"id":"a","question":"q"`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 1")
	})

	t.Run("duplicate id", func(t *testing.T) {
		input := `{"id":"a","question":"q1","expected_sql":"SELECT 1"}
{"id":"a","question":"q2","expected_sql":"SELECT 2"}`
		_, err := ReadDataset(strings.NewReader(input))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate case id")
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := ReadDataset(strings.NewReader(`{"id":"a","expected_sql":"SELECT 1"}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing question")

		_, err = ReadDataset(strings.NewReader(`{"id":"a","question":"q"}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing expected_sql")
	})
}

func TestLoadDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "golden.jsonl")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"id":"a","question":"q","expected_sql":"SELECT 1"}`+"\n"), 0o644))

	cases, err := LoadDataset(path)
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, "a", cases[0].ID)

	_, err = LoadDataset(filepath.Join(t.TempDir(), "absent.jsonl"))
	require.Error(t, err)
}

func evalCases() []Case {
	return []Case{
		{ID: "exact", Question: "status counts", ExpectedSQL: "SELECT status, count(*) FROM orders GROUP BY status"},
		{ID: "close", Question: "list ids", ExpectedSQL: "SELECT id FROM accounts"},
		{ID: "broken", Question: "explodes", ExpectedSQL: "SELECT 1"},
	}
}

func scriptedTarget() Target {
	return TargetFunc(func(_ context.Context, c Case) (*Prediction, error) {
		switch c.ID {
		case "exact":
			return &Prediction{SQL: c.ExpectedSQL, Status: "completed"}, nil
		case "close":
			return &Prediction{SQL: "SELECT id FROM users", Status: "completed"}, nil
		default:
			return nil, errors.New("boom")
		}
	})
}

func TestRunnerRun(t *testing.T) {
	r := NewRunner(scriptedTarget(), Config{RunID: "run-1", Concurrency: 2})

	rep, err := r.Run(context.Background(), evalCases())
	require.NoError(t, err)

	assert.Equal(t, "run-1", rep.RunID)
	require.Len(t, rep.Results, 3)

	// Results keep dataset order even under concurrency.
	assert.Equal(t, "exact", rep.Results[0].CaseID)
	assert.Equal(t, "close", rep.Results[1].CaseID)
	assert.Equal(t, "broken", rep.Results[2].CaseID)

	assert.True(t, rep.Results[0].Metrics.ExactMatch)
	assert.Equal(t, "completed", rep.Results[0].Status)

	assert.False(t, rep.Results[1].Metrics.ExactMatch)
	assert.InDelta(t, 0.65, rep.Results[1].Metrics.StructuralScore, 1e-9)

	assert.Equal(t, "boom", rep.Results[2].Error)
	assert.True(t, rep.Results[2].Metrics.ParseFailed)
	assert.Zero(t, rep.Results[2].Metrics.StructuralScore)

	s := rep.Summary
	assert.Equal(t, 3, s.Cases)
	assert.Equal(t, 1, s.Errors)
	assert.InDelta(t, 1.0/3.0, s.ExactMatchRate, 1e-9)
	assert.InDelta(t, 0.0, s.MinStructuralScore, 1e-9)
	assert.GreaterOrEqual(t, s.LatencyMeanMs, 0.0)
	assert.GreaterOrEqual(t, s.LatencyP95Ms, 0.0)
	assert.False(t, s.FinishedAt.Before(s.StartedAt))
}

func TestRunnerLimitAndTenantOverride(t *testing.T) {
	var seen []int64
	target := TargetFunc(func(_ context.Context, c Case) (*Prediction, error) {
		seen = append(seen, c.TenantID)
		return &Prediction{SQL: c.ExpectedSQL}, nil
	})

	r := NewRunner(target, Config{Limit: 2, TenantID: 42, Concurrency: 1})
	rep, err := r.Run(context.Background(), evalCases())
	require.NoError(t, err)

	require.Len(t, rep.Results, 2)
	assert.Equal(t, []int64{42, 42}, seen)
	assert.NotEmpty(t, rep.RunID, "missing run ids are generated")
}

func TestPercentile(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i + 1)
	}
	assert.Equal(t, 95.0, percentile(values, 0.95))
	assert.Equal(t, 100.0, percentile(values, 1))
	assert.Equal(t, 7.0, percentile([]float64{7}, 0.95))
	assert.Equal(t, 0.0, percentile(nil, 0.95))
}

func TestDetectRegression(t *testing.T) {
	t.Run("accuracy drop past the gate", func(t *testing.T) {
		reg := DetectRegression(
			Summary{ExactMatchRate: 0.80, LatencyP95Ms: 100},
			Summary{RunID: "base", ExactMatchRate: 0.90, LatencyP95Ms: 100},
			RegressionConfig{},
		)

		assert.True(t, reg.IsRegression)
		assert.InDelta(t, 0.10, reg.AccuracyDrop, 1e-9)
		require.Len(t, reg.Reasons, 1)
		assert.Contains(t, reg.Reasons[0], "exact match rate")
		assert.Equal(t, "base", reg.BaselineRunID)
	})

	t.Run("latency growth past the gate", func(t *testing.T) {
		reg := DetectRegression(
			Summary{ExactMatchRate: 0.90, LatencyP95Ms: 130},
			Summary{ExactMatchRate: 0.90, LatencyP95Ms: 100},
			RegressionConfig{},
		)

		assert.True(t, reg.IsRegression)
		assert.InDelta(t, 0.30, reg.P95LatencyIncreaseRatio, 1e-9)
		require.Len(t, reg.Reasons, 1)
		assert.Contains(t, reg.Reasons[0], "p95 latency")
	})

	t.Run("within both gates", func(t *testing.T) {
		reg := DetectRegression(
			Summary{ExactMatchRate: 0.88, LatencyP95Ms: 110},
			Summary{ExactMatchRate: 0.90, LatencyP95Ms: 100},
			RegressionConfig{},
		)

		assert.False(t, reg.IsRegression)
		assert.Empty(t, reg.Reasons)
		assert.InDelta(t, 0.02, reg.AccuracyDrop, 1e-9)
		assert.InDelta(t, 0.10, reg.P95LatencyIncreaseRatio, 1e-9)
	})

	t.Run("exactly at the gate passes", func(t *testing.T) {
		reg := DetectRegression(
			Summary{ExactMatchRate: 0.50, LatencyP95Ms: 120},
			Summary{ExactMatchRate: 0.75, LatencyP95Ms: 100},
			RegressionConfig{AccuracyDropMax: 0.25, LatencyP95IncreaseMax: 0.20},
		)

		assert.False(t, reg.IsRegression)
	})

	t.Run("zero baseline latency never divides", func(t *testing.T) {
		reg := DetectRegression(
			Summary{ExactMatchRate: 0.90, LatencyP95Ms: 50},
			Summary{ExactMatchRate: 0.90},
			RegressionConfig{},
		)

		assert.False(t, reg.IsRegression)
		assert.Zero(t, reg.P95LatencyIncreaseRatio)
	})
}

func TestWriteAndLoadReport(t *testing.T) {
	dir := t.TempDir()
	rep := &Report{
		RunID: "r1",
		Summary: Summary{
			RunID:          "r1",
			Cases:          2,
			ExactMatchRate: 0.5,
			LatencyP95Ms:   12,
		},
	}

	path, err := WriteReport(dir, rep)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report_r1.json"), path)

	_, err = os.Stat(path)
	require.NoError(t, err)

	baseline, err := LoadBaseline(filepath.Join(dir, "summary_r1.json"))
	require.NoError(t, err)
	assert.Equal(t, "r1", baseline.RunID)
	assert.InDelta(t, 0.5, baseline.ExactMatchRate, 1e-9)
	assert.InDelta(t, 12.0, baseline.LatencyP95Ms, 1e-9)
}
