package engine

import (
	"log"
	"math"

	"benchgate/domain/bench"
)

// FilterOutliers performs one round of 3-sigma style trimming. Mean and
// stdev come from the input Sample and are not recomputed after removals;
// each measurement t is retained iff |t - mean| <= threshold * stdev, in
// original order. The input Sample is untouched and remains available for
// audit; the result carries a "(filtered)" name suffix.
//
// When stdev is 0 every point is retained. A pathological input may produce
// an empty filtered Sample; downstream descriptive statistics then fail with
// ErrInsufficientData instead of silently yielding NaN.
//
// advisoryPct is the removal fraction (percent) beyond which the report is
// flagged and a warning logged recommending the experiment be repeated. The
// advisory never blocks: filtering always returns a result.
func FilterOutliers(s *bench.Sample, threshold, advisoryPct float64) (*bench.Sample, bench.OutlierReport, error) {
	mean, err := Mean(s)
	if err != nil {
		return nil, bench.OutlierReport{}, err
	}
	stdev, err := Stdev(s)
	if err != nil {
		return nil, bench.OutlierReport{}, err
	}

	ms := s.Measurements()
	filtered := make([]float64, 0, len(ms))
	for _, t := range ms {
		if math.Abs(t-mean) <= threshold*stdev {
			filtered = append(filtered, t)
		}
	}

	removedPct := 100.0 * float64(len(ms)-len(filtered)) / float64(len(ms))
	report := bench.OutlierReport{
		Name:       s.Name(),
		Threshold:  threshold,
		Before:     len(ms),
		After:      len(filtered),
		RemovedPct: removedPct,
		Advisory:   removedPct > advisoryPct,
	}
	if report.Advisory {
		log.Printf("WARNING: removed %.1f%% of measurements for %s; the experiment should be repeated",
			removedPct, s.Name())
	}

	return s.Derive("filtered", filtered), report, nil
}
