package engine

import (
	"errors"
	"testing"

	"benchgate/domain/core"
)

func TestFilterOutliers_RemovesFarPoint(t *testing.T) {
	// 20 tight values plus one wild outlier.
	measurements := make([]float64, 0, 21)
	for i := 0; i < 20; i++ {
		measurements = append(measurements, 100+float64(i%5))
	}
	measurements = append(measurements, 500)
	s := mustSample(t, "noisy", measurements)

	filtered, report, err := FilterOutliers(s, 3.0, 5.0)
	if err != nil {
		t.Fatalf("FilterOutliers: %v", err)
	}
	if filtered.Count() != 20 {
		t.Errorf("filtered count = %d, want 20", filtered.Count())
	}
	if report.Before != 21 || report.After != 20 {
		t.Errorf("report counts = %d -> %d, want 21 -> 20", report.Before, report.After)
	}
	if filtered.Name() != "noisy (filtered)" {
		t.Errorf("filtered name = %q", filtered.Name())
	}
	// Original stays intact for audit.
	if s.Count() != 21 {
		t.Errorf("input sample mutated: count = %d", s.Count())
	}
}

func TestFilterOutliers_IdempotentWithinThreshold(t *testing.T) {
	s := mustSample(t, "tight", []float64{100, 101, 102, 103, 104})
	filtered, report, err := FilterOutliers(s, 3.0, 5.0)
	if err != nil {
		t.Fatalf("FilterOutliers: %v", err)
	}
	if filtered.Count() != s.Count() {
		t.Fatalf("filter changed a sample already within threshold: %d -> %d", s.Count(), filtered.Count())
	}
	orig := s.Measurements()
	for i, v := range filtered.Measurements() {
		if v != orig[i] {
			t.Errorf("measurement %d reordered or changed: %g != %g", i, v, orig[i])
		}
	}
	if report.Advisory {
		t.Error("advisory flagged with nothing removed")
	}
}

func TestFilterOutliers_ZeroStdevRetainsAll(t *testing.T) {
	s := mustSample(t, "constant", []float64{5, 5, 5, 5})
	filtered, _, err := FilterOutliers(s, 3.0, 5.0)
	if err != nil {
		t.Fatalf("FilterOutliers: %v", err)
	}
	if filtered.Count() != 4 {
		t.Errorf("filtered count = %d, want 4", filtered.Count())
	}
}

func TestFilterOutliers_NeverIncreasesCountPreservesOrder(t *testing.T) {
	s := mustSample(t, "x", []float64{10, 200, 11, 12, 190, 13})
	filtered, _, err := FilterOutliers(s, 1.0, 5.0)
	if err != nil {
		t.Fatalf("FilterOutliers: %v", err)
	}
	if filtered.Count() > s.Count() {
		t.Fatalf("filter increased count: %d > %d", filtered.Count(), s.Count())
	}
	// Retained subsequence must appear in original relative order.
	orig := s.Measurements()
	j := 0
	for _, v := range filtered.Measurements() {
		for j < len(orig) && orig[j] != v {
			j++
		}
		if j == len(orig) {
			t.Fatalf("retained value %g out of order relative to input", v)
		}
		j++
	}
}

func TestFilterOutliers_AdvisoryOverFivePercent(t *testing.T) {
	// 10 values, one outlier: 10% removal trips the 5% advisory.
	s := mustSample(t, "small", []float64{100, 100, 101, 101, 99, 99, 100, 101, 99, 300})
	_, report, err := FilterOutliers(s, 2.0, 5.0)
	if err != nil {
		t.Fatalf("FilterOutliers: %v", err)
	}
	if report.After != 9 {
		t.Fatalf("expected 1 removal, got %d -> %d", report.Before, report.After)
	}
	if !report.Advisory {
		t.Error("advisory not flagged at 10% removal")
	}
}

func TestFilterOutliers_CanProduceEmptySample(t *testing.T) {
	// Threshold 0 with dispersed data retains only exact-mean points; here
	// none qualify, which is legal. Downstream statistics must then fail
	// loudly instead of returning NaN.
	s := mustSample(t, "degenerate", []float64{1, 2})
	filtered, report, err := FilterOutliers(s, 0, 5.0)
	if err != nil {
		t.Fatalf("FilterOutliers: %v", err)
	}
	if filtered.Count() != 0 {
		t.Fatalf("filtered count = %d, want 0", filtered.Count())
	}
	if !report.Advisory {
		t.Error("100% removal should be advisory")
	}
	if _, err := Mean(filtered); !errors.Is(err, core.ErrInsufficientData) {
		t.Errorf("Mean on empty filtered sample: want ErrInsufficientData, got %v", err)
	}
}

func TestFilterOutliers_SingleMeasurementFails(t *testing.T) {
	s := mustSample(t, "one", []float64{5})
	if _, _, err := FilterOutliers(s, 3.0, 5.0); !errors.Is(err, core.ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
}
