// Package evaluation scores the agent against golden datasets: canonical-AST
// exact matching, structural and value-aware metric suites, concurrent case
// execution with latency aggregates, and regression gating against a
// baseline summary.
package evaluation

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/querra-ai/querra/pkg/workflow"
)

// DefaultConcurrency bounds parallel case execution when nothing is
// configured.
const DefaultConcurrency = 4

// Prediction is a target's answer for one case.
type Prediction struct {
	SQL    string
	Status string
	Answer string
	Tables []string
	Tokens int
}

// Target produces SQL for one golden case.
type Target interface {
	Translate(ctx context.Context, c Case) (*Prediction, error)
}

// TargetFunc adapts a function to Target.
type TargetFunc func(ctx context.Context, c Case) (*Prediction, error)

// Translate implements Target.
func (f TargetFunc) Translate(ctx context.Context, c Case) (*Prediction, error) {
	return f(ctx, c)
}

// WorkflowTarget runs each case through the agent graph. Thread ids derive
// from the case id so reruns of the same dataset reuse checkpoint keys.
type WorkflowTarget struct {
	Runner       *workflow.Runner
	ThreadPrefix string
	// Timeout is the per-case deadline; zero leaves the run unbounded.
	Timeout time.Duration
	Seed    int64
}

var _ Target = (*WorkflowTarget)(nil)

// Translate implements Target.
func (t *WorkflowTarget) Translate(ctx context.Context, c Case) (*Prediction, error) {
	s := &workflow.State{
		Question: c.Question,
		TenantID: c.TenantID,
		Seed:     t.Seed,
	}
	if t.Timeout > 0 {
		s.DeadlineTS = time.Now().Add(t.Timeout)
	}
	prefix := t.ThreadPrefix
	if prefix == "" {
		prefix = "eval"
	}

	res, err := t.Runner.Run(ctx, prefix+"-"+c.ID, s)
	if err != nil {
		return nil, err
	}
	return &Prediction{
		SQL:    res.State.CurrentSQL,
		Status: string(res.Status),
		Answer: res.State.FinalAnswer,
		Tables: res.State.TablesUsed,
		Tokens: res.State.TokensConsumed,
	}, nil
}

// Config bounds one evaluation run.
type Config struct {
	RunID       string
	Concurrency int
	// Limit truncates the dataset; zero runs every case.
	Limit int
	// TenantID overrides each case's tenant when non-zero.
	TenantID   int64
	Regression RegressionConfig
}

// Runner executes a dataset against a target and aggregates the scores.
type Runner struct {
	target Target
	cfg    Config
}

// NewRunner builds an evaluation runner. A missing run id is generated.
func NewRunner(target Target, cfg Config) *Runner {
	if cfg.RunID == "" {
		cfg.RunID = uuid.NewString()
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	return &Runner{target: target, cfg: cfg}
}

// CaseResult is one scored case.
type CaseResult struct {
	CaseID       string      `json:"case_id"`
	Question     string      `json:"question"`
	ExpectedSQL  string      `json:"expected_sql"`
	PredictedSQL string      `json:"predicted_sql,omitempty"`
	Status       string      `json:"status,omitempty"`
	Error        string      `json:"error,omitempty"`
	LatencyMs    float64     `json:"latency_ms"`
	Metrics      CaseMetrics `json:"metrics"`
	Tags         []string    `json:"tags,omitempty"`
}

// Summary aggregates one run. It is the document a later run compares
// against as its baseline.
type Summary struct {
	RunID              string    `json:"run_id"`
	StartedAt          time.Time `json:"started_at"`
	FinishedAt         time.Time `json:"finished_at"`
	Cases              int       `json:"cases"`
	Errors             int       `json:"errors"`
	ExactMatchRate     float64   `json:"exact_match_rate"`
	AvgStructuralScore float64   `json:"avg_structural_score"`
	MinStructuralScore float64   `json:"min_structural_score"`
	AvgCompositeScore  float64   `json:"avg_composite_score"`
	LatencyMeanMs      float64   `json:"latency_mean_ms"`
	LatencyP95Ms       float64   `json:"latency_p95_ms"`
}

// Report is the full output document of one run.
type Report struct {
	RunID      string       `json:"run_id"`
	Dataset    string       `json:"dataset,omitempty"`
	Summary    Summary      `json:"summary"`
	Regression *Regression  `json:"regression,omitempty"`
	Results    []CaseResult `json:"results"`
}

// Run scores every case. Target failures are recorded per case, never
// fatal; results keep dataset order regardless of concurrency.
func (r *Runner) Run(ctx context.Context, cases []Case) (*Report, error) {
	if r.cfg.Limit > 0 && len(cases) > r.cfg.Limit {
		cases = cases[:r.cfg.Limit]
	}

	started := time.Now()
	results := make([]CaseResult, len(cases))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Concurrency)
	for i, c := range cases {
		g.Go(func() error {
			if r.cfg.TenantID != 0 {
				c.TenantID = r.cfg.TenantID
			}
			results[i] = r.runCase(ctx, c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Report{
		RunID:   r.cfg.RunID,
		Summary: summarize(r.cfg.RunID, started, time.Now(), results),
		Results: results,
	}, nil
}

func (r *Runner) runCase(ctx context.Context, c Case) CaseResult {
	out := CaseResult{
		CaseID:      c.ID,
		Question:    c.Question,
		ExpectedSQL: c.ExpectedSQL,
		Tags:        c.Tags,
	}

	started := time.Now()
	pred, err := r.target.Translate(ctx, c)
	out.LatencyMs = time.Since(started).Seconds() * 1000

	if err != nil {
		out.Error = err.Error()
		out.Metrics = Score("", c.ExpectedSQL)
		return out
	}
	out.PredictedSQL = pred.SQL
	out.Status = pred.Status
	out.Metrics = Score(pred.SQL, c.ExpectedSQL)
	return out
}

func summarize(runID string, started, finished time.Time, results []CaseResult) Summary {
	s := Summary{
		RunID:      runID,
		StartedAt:  started,
		FinishedAt: finished,
		Cases:      len(results),
	}
	if len(results) == 0 {
		return s
	}

	exact := 0
	var structSum, compSum, latencySum float64
	latencies := make([]float64, 0, len(results))
	s.MinStructuralScore = 1

	for _, cr := range results {
		if cr.Error != "" {
			s.Errors++
		}
		if cr.Metrics.ExactMatch {
			exact++
		}
		structSum += cr.Metrics.StructuralScore
		compSum += cr.Metrics.CompositeScore
		if cr.Metrics.StructuralScore < s.MinStructuralScore {
			s.MinStructuralScore = cr.Metrics.StructuralScore
		}
		latencySum += cr.LatencyMs
		latencies = append(latencies, cr.LatencyMs)
	}

	n := float64(len(results))
	s.ExactMatchRate = float64(exact) / n
	s.AvgStructuralScore = structSum / n
	s.AvgCompositeScore = compSum / n
	s.LatencyMeanMs = latencySum / n

	sort.Float64s(latencies)
	s.LatencyP95Ms = percentile(latencies, 0.95)
	return s
}

// percentile returns the nearest-rank percentile over sorted values.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	rank := int(math.Ceil(float64(len(sorted)) * p))
	if rank < 1 {
		rank = 1
	}
	if rank > len(sorted) {
		rank = len(sorted)
	}
	return sorted[rank-1]
}

// WriteReport writes the full report plus a standalone summary document into
// dir. The summary file is what a later run loads as its baseline.
func WriteReport(dir string, rep *Report) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	reportPath := filepath.Join(dir, fmt.Sprintf("report_%s.json", rep.RunID))
	if err := writeJSON(reportPath, rep); err != nil {
		return "", err
	}
	summaryPath := filepath.Join(dir, fmt.Sprintf("summary_%s.json", rep.RunID))
	if err := writeJSON(summaryPath, rep.Summary); err != nil {
		return "", err
	}
	return reportPath, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// LoadBaseline reads a summary document written by a previous run.
func LoadBaseline(path string) (*Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read baseline: %w", err)
	}
	var s Summary
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse baseline %s: %w", path, err)
	}
	return &s, nil
}
