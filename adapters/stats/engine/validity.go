package engine

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"benchgate/domain/bench"
	"benchgate/domain/core"
)

// Validate applies the experiment rigor criteria to every Sample in the set,
// in insertion order. Two independent per-Sample checks:
//
//   - stability: CV < maxCV percent. Low enough raw dispersion to trust the
//     mean at all.
//   - precision: the relative margin of the mean at the given confidence
//     level, 100 * z * stdev / (sqrt(n) * mean), must stay under maxRelErr
//     percent. Enough repetitions to pin the mean down tightly.
//
// The aggregate is true iff every sample passes both. A failing gate is an
// advisory quality signal: it does not invalidate speedup or significance
// results, it tells the caller to raise n or control environmental noise.
func Validate(set *bench.SampleSet, confidence, maxCV, maxRelErr float64) (bench.ValidityReport, error) {
	z := distuv.UnitNormal.Quantile((1 + confidence) / 2)

	report := bench.ValidityReport{Valid: true}
	for _, s := range set.Samples() {
		mean, err := Mean(s)
		if err != nil {
			return bench.ValidityReport{}, err
		}
		if mean <= 0 {
			return bench.ValidityReport{}, core.NewDivisionByZeroError(s.Name().String(), mean)
		}
		stdev, err := Stdev(s)
		if err != nil {
			return bench.ValidityReport{}, err
		}
		cv, err := CV(s)
		if err != nil {
			return bench.ValidityReport{}, err
		}

		relErr := 100 * z * stdev / (math.Sqrt(float64(s.Count())) * mean)
		sv := bench.SampleValidity{
			Name:        s.Name(),
			CV:          cv,
			RelErr:      relErr,
			StabilityOK: cv < maxCV,
			PrecisionOK: relErr < maxRelErr,
		}
		if !sv.StabilityOK || !sv.PrecisionOK {
			report.Valid = false
		}
		report.Samples = append(report.Samples, sv)
	}
	return report, nil
}
