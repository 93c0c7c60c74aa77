package engine

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"benchgate/domain/bench"
)

// CIMethod selects the confidence interval strategy.
type CIMethod int

const (
	// StudentT uses the exact two-sided Student's-t quantile with n-1
	// degrees of freedom. Correct for any sample size.
	StudentT CIMethod = iota
	// NormalApprox uses the standard normal quantile regardless of n
	// (1.96 at the 95% level). Intended for large n, rule of thumb n > 30,
	// where the t and normal quantiles converge.
	NormalApprox
)

// ConfidenceInterval computes a two-sided interval for the population mean
// at the given confidence level (0 < level < 1). With fewer than two
// measurements the interval collapses to [mean, mean]: a point estimate
// without dispersion information is still a valid, degenerate answer.
func ConfidenceInterval(s *bench.Sample, level float64, method CIMethod) (bench.Interval, error) {
	if level <= 0 || level >= 1 {
		return bench.Interval{}, fmt.Errorf("confidence level %g out of range (0, 1)", level)
	}
	mean, err := Mean(s)
	if err != nil {
		return bench.Interval{}, err
	}
	n := s.Count()
	if n < 2 {
		return bench.Interval{Low: mean, High: mean}, nil
	}
	stdev, err := Stdev(s)
	if err != nil {
		return bench.Interval{}, err
	}

	q := criticalValue(level, n, method)
	margin := q * stdev / math.Sqrt(float64(n))
	return bench.Interval{Low: mean - margin, High: mean + margin}, nil
}

// criticalValue returns the two-sided quantile at cumulative probability
// (1+level)/2 for the chosen strategy.
func criticalValue(level float64, n int, method CIMethod) float64 {
	p := (1 + level) / 2
	if method == NormalApprox {
		return distuv.UnitNormal.Quantile(p)
	}
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	return t.Quantile(p)
}
