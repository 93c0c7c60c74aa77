package engine

import (
	"github.com/montanaflynn/stats"

	"benchgate/domain/bench"
	"benchgate/domain/core"
)

// Descriptive statistics are pure functions of a Sample's measurement
// sequence. They recompute on every call; nothing is cached, so results
// always reflect the Sample's immutable measurements.

// Mean returns the arithmetic mean. The Sample invariant guarantees at least
// one measurement, but a filtered derivation may legally be empty, so the
// guard stays.
func Mean(s *bench.Sample) (float64, error) {
	if s.Count() < 1 {
		return 0, core.NewInsufficientDataError("mean of "+s.Name().String(), s.Count(), 1)
	}
	m, err := stats.Mean(s.Measurements())
	if err != nil {
		return 0, core.NewInsufficientDataError("mean of "+s.Name().String(), s.Count(), 1)
	}
	return m, nil
}

// Stdev returns the sample standard deviation (Bessel-corrected, divisor
// n-1). Two measurements are the minimum for a defined result.
func Stdev(s *bench.Sample) (float64, error) {
	if s.Count() < 2 {
		return 0, core.NewInsufficientDataError("stdev of "+s.Name().String(), s.Count(), 2)
	}
	sd, err := stats.StandardDeviationSample(s.Measurements())
	if err != nil {
		return 0, core.NewInsufficientDataError("stdev of "+s.Name().String(), s.Count(), 2)
	}
	return sd, nil
}

// CV returns the coefficient of variation as a percentage,
// 100 * stdev / mean. A non-positive mean yields 0 by policy rather than an
// error: dividing by zero or a negative duration mean is nonsense, and the
// caller still gets a usable stability metric.
func CV(s *bench.Sample) (float64, error) {
	m, err := Mean(s)
	if err != nil {
		return 0, err
	}
	if m <= 0 {
		return 0, nil
	}
	sd, err := Stdev(s)
	if err != nil {
		return 0, err
	}
	return 100.0 * sd / m, nil
}
