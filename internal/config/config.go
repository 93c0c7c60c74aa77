package config

import (
	"benchgate/internal/errors"
)

// AcquisitionConfig holds the measurement protocol parameters for one
// benchmarked executable.
type AcquisitionConfig struct {
	Warmup     int    // untimed invocations before the timed series
	Iterations int    // timed invocations
	Marker     string // stdout label preceding the duration, e.g. "KeyGen:"
	// JSONPath, when non-empty, switches the parser to JSON mode: each
	// invocation's stdout is treated as JSON and the duration is extracted
	// from this gjson path instead of the marker line.
	JSONPath string
}

// AnalysisConfig holds every statistical threshold as an explicit parameter
// so the engine stays reentrant and testable with varied parameters in one
// process. Nothing here is a process-wide default.
type AnalysisConfig struct {
	Confidence       float64 // confidence level for intervals (0, 1)
	OutlierThreshold float64 // number of standard deviations for trimming
	OutlierAdvisory  float64 // percent removed beyond which to warn
	Alpha            float64 // significance cutoff for reporting
	MaxCV            float64 // stability criterion, percent
	MaxRelativeError float64 // precision criterion, percent
	// EqualVariance selects the pooled-variance Student's t-test (the
	// default, matching the reference methodology); false selects Welch.
	EqualVariance bool
	// NormalApprox selects the fixed-z confidence interval strategy instead
	// of the Student's-t quantile. Intended for large n (rule of thumb
	// n > 30) where the quantiles converge.
	NormalApprox bool
}

// DefaultAcquisition returns the acquisition parameters from the reference
// methodology: 100 warmup invocations, 1000 timed iterations.
func DefaultAcquisition() AcquisitionConfig {
	return AcquisitionConfig{
		Warmup:     100,
		Iterations: 1000,
		Marker:     "KeyGen:",
	}
}

// DefaultAnalysis returns the reference thresholds: 95% confidence, 3-sigma
// trimming with a 5% advisory, alpha 0.05, CV < 10%, relative error < 1%.
func DefaultAnalysis() AnalysisConfig {
	return AnalysisConfig{
		Confidence:       0.95,
		OutlierThreshold: 3.0,
		OutlierAdvisory:  5.0,
		Alpha:            0.05,
		MaxCV:            10.0,
		MaxRelativeError: 1.0,
		EqualVariance:    true,
	}
}

// Validate checks parameter ranges.
func (c AcquisitionConfig) Validate() error {
	if c.Iterations < 1 {
		return errors.New("CONFIG_INVALID", "iterations must be at least 1")
	}
	if c.Warmup < 0 {
		return errors.New("CONFIG_INVALID", "warmup cannot be negative")
	}
	if c.Marker == "" && c.JSONPath == "" {
		return errors.New("CONFIG_INVALID", "either a marker label or a JSON path is required")
	}
	return nil
}

// Validate checks parameter ranges.
func (c AnalysisConfig) Validate() error {
	if c.Confidence <= 0 || c.Confidence >= 1 {
		return errors.New("CONFIG_INVALID", "confidence level must be in (0, 1)")
	}
	if c.OutlierThreshold < 0 {
		return errors.New("CONFIG_INVALID", "outlier threshold cannot be negative")
	}
	if c.Alpha <= 0 || c.Alpha >= 1 {
		return errors.New("CONFIG_INVALID", "alpha must be in (0, 1)")
	}
	if c.MaxCV <= 0 {
		return errors.New("CONFIG_INVALID", "stability criterion must be positive")
	}
	if c.MaxRelativeError <= 0 {
		return errors.New("CONFIG_INVALID", "precision criterion must be positive")
	}
	return nil
}
