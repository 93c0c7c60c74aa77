package engine

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"benchgate/domain/bench"
	"benchgate/domain/core"
)

// Speedup estimates the ratio of baseline mean to optimized mean with
// propagated uncertainty. The two sample means are treated as independent
// random variables with standard errors stdev/sqrt(n); their relative errors
// combine in quadrature and the result scales the ratio. This is a
// first-order delta-method approximation, valid while relative errors are
// small; it is not the exact distribution of a ratio.
//
// The interval on the ratio uses the normal quantile at the given confidence
// level (1.96 at 95%), consistent with the large-sample CI strategy.
func Speedup(baseline, optimized *bench.Sample, confidence float64) (bench.SpeedupResult, error) {
	meanBase, err := Mean(baseline)
	if err != nil {
		return bench.SpeedupResult{}, err
	}
	meanOpt, err := Mean(optimized)
	if err != nil {
		return bench.SpeedupResult{}, err
	}
	if meanOpt <= 0 {
		return bench.SpeedupResult{}, core.NewDivisionByZeroError(optimized.Name().String(), meanOpt)
	}
	if meanBase <= 0 {
		// The ratio itself only divides by the optimized mean, but the
		// baseline relative error divides by this one.
		return bench.SpeedupResult{}, core.NewDivisionByZeroError(baseline.Name().String(), meanBase)
	}

	stdevBase, err := Stdev(baseline)
	if err != nil {
		return bench.SpeedupResult{}, err
	}
	stdevOpt, err := Stdev(optimized)
	if err != nil {
		return bench.SpeedupResult{}, err
	}

	ratio := meanBase / meanOpt
	relBase := stdevBase / (meanBase * math.Sqrt(float64(baseline.Count())))
	relOpt := stdevOpt / (meanOpt * math.Sqrt(float64(optimized.Count())))
	uncertainty := ratio * math.Sqrt(relBase*relBase+relOpt*relOpt)

	z := distuv.UnitNormal.Quantile((1 + confidence) / 2)
	return bench.SpeedupResult{
		Baseline:       baseline.Name(),
		Optimized:      optimized.Name(),
		Ratio:          ratio,
		Uncertainty:    uncertainty,
		CI:             bench.Interval{Low: ratio - z*uncertainty, High: ratio + z*uncertainty},
		ImprovementPct: 100 * (ratio - 1),
	}, nil
}
