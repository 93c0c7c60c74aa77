package engine

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"benchgate/domain/bench"
	"benchgate/domain/core"
)

// TTest runs a two-sample independent-groups t-test on whatever two Samples
// it receives; it is agnostic to upstream filtering. Null hypothesis: equal
// population means. The statistic is signed (positive when x has the larger
// mean) and the p-value is two-sided.
//
// equalVariance selects the pooled-variance Student's form, matching the
// reference methodology's default. With false the Welch form is used, with
// Welch-Satterthwaite degrees of freedom, which is robust to unequal
// variances.
//
// Degenerate inputs follow a fixed, documented convention: either sample
// with n < 2 fails with ErrInsufficientData (the variance is undefined);
// zero pooled variance with equal means gives statistic 0 and p-value 1;
// zero pooled variance with differing means gives statistic +/-Inf and
// p-value 0.
func TTest(x, y *bench.Sample, equalVariance bool, alpha float64) (bench.TTestResult, error) {
	if x.Count() < 2 {
		return bench.TTestResult{}, core.NewInsufficientDataError("t-test on "+x.Name().String(), x.Count(), 2)
	}
	if y.Count() < 2 {
		return bench.TTestResult{}, core.NewInsufficientDataError("t-test on "+y.Name().String(), y.Count(), 2)
	}

	meanX, _ := Mean(x)
	meanY, _ := Mean(y)
	stdevX, _ := Stdev(x)
	stdevY, _ := Stdev(y)
	n1 := float64(x.Count())
	n2 := float64(y.Count())
	varX := stdevX * stdevX
	varY := stdevY * stdevY

	var tStat, df float64
	if equalVariance {
		pooled := ((n1-1)*varX + (n2-1)*varY) / (n1 + n2 - 2)
		df = n1 + n2 - 2
		if pooled == 0 {
			return degenerateResult(meanX, meanY, df), nil
		}
		se := math.Sqrt(pooled * (1/n1 + 1/n2))
		tStat = (meanX - meanY) / se
	} else {
		seSq := varX/n1 + varY/n2
		if seSq == 0 {
			return degenerateResult(meanX, meanY, n1+n2-2), nil
		}
		tStat = (meanX - meanY) / math.Sqrt(seSq)
		df = seSq * seSq / (math.Pow(varX/n1, 2)/(n1-1) + math.Pow(varY/n2, 2)/(n2-1))
	}

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	pValue := 2 * (1 - tDist.CDF(math.Abs(tStat)))
	if pValue > 1 {
		pValue = 1
	}
	if pValue < 0 {
		pValue = 0
	}

	return bench.TTestResult{
		Statistic:   tStat,
		PValue:      pValue,
		DF:          df,
		Significant: pValue < alpha,
	}, nil
}

// degenerateResult handles zero variance in both samples: identical constants
// are a perfect null (t=0, p=1), differing constants are infinitely separated
// (t=+/-Inf, p=0).
func degenerateResult(meanX, meanY, df float64) bench.TTestResult {
	if meanX == meanY {
		return bench.TTestResult{Statistic: 0, PValue: 1, DF: df, Significant: false}
	}
	stat := math.Inf(1)
	if meanX < meanY {
		stat = math.Inf(-1)
	}
	return bench.TTestResult{Statistic: stat, PValue: 0, DF: df, Significant: true}
}
