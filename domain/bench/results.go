package bench

import "benchgate/domain/core"

// Interval is a closed interval around an estimate.
type Interval struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// SummaryStats are the descriptive statistics of one Sample, computed on
// access and never cached inside the Sample itself.
type SummaryStats struct {
	Name    core.ConfigName `json:"name"`
	N       int             `json:"n"`
	Mean    float64         `json:"mean_us"`
	Stdev   float64         `json:"std_us"`
	CV      float64         `json:"cv_percent"`
	CI      Interval        `json:"ci_us"`
	CILevel float64         `json:"ci_level"`
}

// OutlierReport describes one round of outlier trimming. Removal beyond the
// advisory fraction never blocks filtering; it only flags the experiment as
// worth repeating.
type OutlierReport struct {
	Name       core.ConfigName `json:"name"`
	Threshold  float64         `json:"threshold_sigma"`
	Before     int             `json:"n_before"`
	After      int             `json:"n_after"`
	RemovedPct float64         `json:"removed_percent"`
	Advisory   bool            `json:"advisory"`
}

// SpeedupResult is the ratio of baseline mean to optimized mean with
// first-order propagated uncertainty. Ratio > 1 means optimized is faster.
type SpeedupResult struct {
	Baseline       core.ConfigName `json:"baseline"`
	Optimized      core.ConfigName `json:"optimized"`
	Ratio          float64         `json:"ratio"`
	Uncertainty    float64         `json:"ratio_uncertainty"`
	CI             Interval        `json:"ci"`
	ImprovementPct float64         `json:"improvement_percent"`
}

// TTestResult is a two-sample hypothesis test outcome. Statistic is signed;
// PValue is two-sided in [0, 1].
type TTestResult struct {
	Statistic float64 `json:"statistic"`
	PValue    float64 `json:"p_value"`
	DF        float64 `json:"degrees_of_freedom"`
	// Significant applies the configured alpha as a reporting convention;
	// the tester itself enforces nothing.
	Significant bool `json:"significant"`
}

// SampleValidity is the per-Sample outcome of the validity gate. Both
// criteria are independent and reported individually so a caller can see
// whether a configuration under-sampled (precision) or was too noisy
// (stability).
type SampleValidity struct {
	Name        core.ConfigName `json:"name"`
	CV          float64         `json:"cv_percent"`
	RelErr      float64         `json:"relative_error_percent"`
	StabilityOK bool            `json:"stability_ok"`
	PrecisionOK bool            `json:"precision_ok"`
}

// ValidityReport aggregates per-Sample validity. Valid is true iff every
// sample passes both criteria. A failing gate is an advisory quality signal;
// it does not invalidate speedup or significance results.
type ValidityReport struct {
	Samples []SampleValidity `json:"samples"`
	Valid   bool             `json:"valid"`
}

// Comparison pairs two configurations for speedup and significance analysis.
type Comparison struct {
	Baseline  core.ConfigName `json:"baseline"`
	Optimized core.ConfigName `json:"optimized"`
}

// ComparisonResult bundles the speedup estimate and significance test for
// one baseline/optimized pair.
type ComparisonResult struct {
	Comparison Comparison    `json:"comparison"`
	Speedup    SpeedupResult `json:"speedup"`
	TTest      TTestResult   `json:"t_test"`
}

// RunReport is the complete output of one analysis run.
type RunReport struct {
	RunID       core.RunID         `json:"run_id"`
	Summaries   []SummaryStats     `json:"summaries"`
	Outliers    []OutlierReport    `json:"outliers"`
	Comparisons []ComparisonResult `json:"comparisons"`
	Validity    ValidityReport     `json:"validity"`
}
