// Package engine is the statistical core: descriptive statistics, outlier
// trimming, confidence intervals, speedup estimation with propagated
// uncertainty, significance testing, and the experiment validity gate.
// Every computation is pure and stateless; independent Samples may be
// analyzed concurrently without synchronization.
package engine

import (
	"benchgate/domain/bench"
	"benchgate/internal/config"
)

// Engine binds an AnalysisConfig to the pure statistical functions so the
// application layer works against one object with fixed thresholds. A second
// Engine with different parameters can coexist in the same process.
type Engine struct {
	cfg config.AnalysisConfig
}

// New creates an engine with the given analysis parameters.
func New(cfg config.AnalysisConfig) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the engine's analysis parameters.
func (e *Engine) Config() config.AnalysisConfig {
	return e.cfg
}

// ciMethod maps the configured strategy flag to a CIMethod.
func (e *Engine) ciMethod() CIMethod {
	if e.cfg.NormalApprox {
		return NormalApprox
	}
	return StudentT
}

// Summarize computes the descriptive statistics and confidence interval for
// one Sample. A single-measurement Sample degenerates to zero spread and a
// zero-width interval rather than failing; the strict per-function policies
// still apply when Stdev or CV are called directly.
func (e *Engine) Summarize(s *bench.Sample) (bench.SummaryStats, error) {
	mean, err := Mean(s)
	if err != nil {
		return bench.SummaryStats{}, err
	}

	var stdev, cv float64
	if s.Count() >= 2 {
		if stdev, err = Stdev(s); err != nil {
			return bench.SummaryStats{}, err
		}
		if cv, err = CV(s); err != nil {
			return bench.SummaryStats{}, err
		}
	}

	ci, err := ConfidenceInterval(s, e.cfg.Confidence, e.ciMethod())
	if err != nil {
		return bench.SummaryStats{}, err
	}

	return bench.SummaryStats{
		Name:    s.Name(),
		N:       s.Count(),
		Mean:    mean,
		Stdev:   stdev,
		CV:      cv,
		CI:      ci,
		CILevel: e.cfg.Confidence,
	}, nil
}

// Filter trims outliers with the configured threshold and advisory fraction.
func (e *Engine) Filter(s *bench.Sample) (*bench.Sample, bench.OutlierReport, error) {
	return FilterOutliers(s, e.cfg.OutlierThreshold, e.cfg.OutlierAdvisory)
}

// Speedup estimates baseline/optimized with the configured confidence level.
func (e *Engine) Speedup(baseline, optimized *bench.Sample) (bench.SpeedupResult, error) {
	return Speedup(baseline, optimized, e.cfg.Confidence)
}

// TTest runs the configured two-sample test form at the configured alpha.
func (e *Engine) TTest(x, y *bench.Sample) (bench.TTestResult, error) {
	return TTest(x, y, e.cfg.EqualVariance, e.cfg.Alpha)
}

// Validate applies the rigor gate with the configured thresholds.
func (e *Engine) Validate(set *bench.SampleSet) (bench.ValidityReport, error) {
	return Validate(set, e.cfg.Confidence, e.cfg.MaxCV, e.cfg.MaxRelativeError)
}
