package engine

import (
	"math"
	"testing"
)

func TestConfidenceInterval_IdenticalValues(t *testing.T) {
	s := mustSample(t, "constant", []float64{12.5, 12.5, 12.5, 12.5})
	for _, level := range []float64{0.90, 0.95, 0.99} {
		ci, err := ConfidenceInterval(s, level, StudentT)
		if err != nil {
			t.Fatalf("ConfidenceInterval(%g): %v", level, err)
		}
		if ci.Low != 12.5 || ci.High != 12.5 {
			t.Errorf("level %g: interval [%g, %g], want [12.5, 12.5]", level, ci.Low, ci.High)
		}
	}
}

func TestConfidenceInterval_SingleMeasurementCollapses(t *testing.T) {
	s := mustSample(t, "one", []float64{42})
	ci, err := ConfidenceInterval(s, 0.95, StudentT)
	if err != nil {
		t.Fatalf("ConfidenceInterval: %v", err)
	}
	if ci.Low != 42 || ci.High != 42 {
		t.Errorf("interval [%g, %g], want zero width at the point estimate", ci.Low, ci.High)
	}
}

func TestConfidenceInterval_StudentTKnownQuantile(t *testing.T) {
	// n=10, stdev exactly computable; the 95% two-sided t quantile at 9
	// degrees of freedom is 2.2622.
	s := mustSample(t, "x", []float64{95, 96, 97, 98, 99, 101, 102, 103, 104, 105})
	mean, _ := Mean(s)
	stdev, _ := Stdev(s)

	ci, err := ConfidenceInterval(s, 0.95, StudentT)
	if err != nil {
		t.Fatalf("ConfidenceInterval: %v", err)
	}
	wantMargin := 2.2622 * stdev / math.Sqrt(10)
	if !almostEqual(ci.High-mean, wantMargin, 1e-3) {
		t.Errorf("margin = %g, want %g", ci.High-mean, wantMargin)
	}
	if !almostEqual(mean-ci.Low, wantMargin, 1e-3) {
		t.Errorf("interval not symmetric around the mean")
	}
}

func TestConfidenceInterval_NormalApproxUsesZ(t *testing.T) {
	s := mustSample(t, "x", []float64{95, 96, 97, 98, 99, 101, 102, 103, 104, 105})
	mean, _ := Mean(s)
	stdev, _ := Stdev(s)

	ci, err := ConfidenceInterval(s, 0.95, NormalApprox)
	if err != nil {
		t.Fatalf("ConfidenceInterval: %v", err)
	}
	wantMargin := 1.959964 * stdev / math.Sqrt(10)
	if !almostEqual(ci.High-mean, wantMargin, 1e-4) {
		t.Errorf("margin = %g, want %g", ci.High-mean, wantMargin)
	}
}

func TestConfidenceInterval_StrategiesConvergeForLargeN(t *testing.T) {
	measurements := make([]float64, 2000)
	for i := range measurements {
		measurements[i] = 100 + float64(i%7)
	}
	s := mustSample(t, "large", measurements)

	tCI, err := ConfidenceInterval(s, 0.95, StudentT)
	if err != nil {
		t.Fatalf("StudentT: %v", err)
	}
	zCI, err := ConfidenceInterval(s, 0.95, NormalApprox)
	if err != nil {
		t.Fatalf("NormalApprox: %v", err)
	}
	if !almostEqual(tCI.Low, zCI.Low, 1e-3) || !almostEqual(tCI.High, zCI.High, 1e-3) {
		t.Errorf("strategies diverge at n=2000: t=[%g, %g] z=[%g, %g]", tCI.Low, tCI.High, zCI.Low, zCI.High)
	}
}

func TestConfidenceInterval_WiderAtHigherLevel(t *testing.T) {
	s := mustSample(t, "x", []float64{10, 12, 14, 16, 18})
	ci95, _ := ConfidenceInterval(s, 0.95, StudentT)
	ci99, _ := ConfidenceInterval(s, 0.99, StudentT)
	if (ci99.High - ci99.Low) <= (ci95.High - ci95.Low) {
		t.Errorf("99%% interval not wider than 95%%: %g vs %g", ci99.High-ci99.Low, ci95.High-ci95.Low)
	}
}

func TestConfidenceInterval_RejectsBadLevel(t *testing.T) {
	s := mustSample(t, "x", []float64{1, 2, 3})
	for _, level := range []float64{0, 1, -0.5, 1.5} {
		if _, err := ConfidenceInterval(s, level, StudentT); err == nil {
			t.Errorf("level %g accepted", level)
		}
	}
}
