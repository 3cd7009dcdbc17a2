package evaluation

import "fmt"

// Default regression gates
const (
	DefaultAccuracyDropMax       = 0.05
	DefaultLatencyP95IncreaseMax = 0.20
)

// RegressionConfig sets the gate thresholds. Both are fractions: an
// accuracy drop of 0.05 is five points of exact match rate.
type RegressionConfig struct {
	AccuracyDropMax       float64 `json:"accuracy_drop_max"`
	LatencyP95IncreaseMax float64 `json:"latency_p95_increase_max"`
}

func (c RegressionConfig) withDefaults() RegressionConfig {
	if c.AccuracyDropMax <= 0 {
		c.AccuracyDropMax = DefaultAccuracyDropMax
	}
	if c.LatencyP95IncreaseMax <= 0 {
		c.LatencyP95IncreaseMax = DefaultLatencyP95IncreaseMax
	}
	return c
}

// Regression is the gate verdict of one run against a baseline summary.
type Regression struct {
	IsRegression            bool     `json:"is_regression"`
	AccuracyDrop            float64  `json:"accuracy_drop"`
	P95LatencyIncreaseRatio float64  `json:"p95_latency_increase_ratio"`
	Reasons                 []string `json:"reasons,omitempty"`
	BaselineRunID           string   `json:"baseline_run_id,omitempty"`
}

// DetectRegression compares a run against a baseline. Accuracy is the exact
// match rate; latency is gated on the p95 growth ratio. A measurement
// exactly at a gate passes.
func DetectRegression(current, baseline Summary, cfg RegressionConfig) *Regression {
	cfg = cfg.withDefaults()

	reg := &Regression{BaselineRunID: baseline.RunID}
	reg.AccuracyDrop = baseline.ExactMatchRate - current.ExactMatchRate
	if baseline.LatencyP95Ms > 0 {
		reg.P95LatencyIncreaseRatio = (current.LatencyP95Ms - baseline.LatencyP95Ms) / baseline.LatencyP95Ms
	}

	if reg.AccuracyDrop > cfg.AccuracyDropMax {
		reg.IsRegression = true
		reg.Reasons = append(reg.Reasons, fmt.Sprintf(
			"exact match rate dropped %.1f points against baseline %s (gate %.1f)",
			reg.AccuracyDrop*100, baseline.RunID, cfg.AccuracyDropMax*100))
	}
	if reg.P95LatencyIncreaseRatio > cfg.LatencyP95IncreaseMax {
		reg.IsRegression = true
		reg.Reasons = append(reg.Reasons, fmt.Sprintf(
			"p95 latency grew %.0f%% against baseline %s (gate %.0f%%)",
			reg.P95LatencyIncreaseRatio*100, baseline.RunID, cfg.LatencyP95IncreaseMax*100))
	}
	return reg
}
