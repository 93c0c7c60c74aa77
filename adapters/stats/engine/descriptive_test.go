package engine

import (
	"errors"
	"math"
	"testing"

	"benchgate/domain/bench"
	"benchgate/domain/core"
)

func mustSample(t *testing.T, name core.ConfigName, measurements []float64) *bench.Sample {
	t.Helper()
	s, err := bench.NewSample(name, measurements)
	if err != nil {
		t.Fatalf("NewSample(%q): %v", name, err)
	}
	return s
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestMean_KnownValues(t *testing.T) {
	s := mustSample(t, "x", []float64{2, 4, 6, 8})
	m, err := Mean(s)
	if err != nil {
		t.Fatalf("Mean: %v", err)
	}
	if m != 5.0 {
		t.Errorf("mean = %g, want 5", m)
	}
}

func TestStdev_BesselCorrected(t *testing.T) {
	// Sample variance of {2,4,4,4,5,5,7,9} with divisor n-1 is 32/7.
	s := mustSample(t, "x", []float64{2, 4, 4, 4, 5, 5, 7, 9})
	sd, err := Stdev(s)
	if err != nil {
		t.Fatalf("Stdev: %v", err)
	}
	want := math.Sqrt(32.0 / 7.0)
	if !almostEqual(sd, want, 1e-12) {
		t.Errorf("stdev = %g, want %g", sd, want)
	}
}

func TestStdev_IdenticalValuesIsZero(t *testing.T) {
	s := mustSample(t, "x", []float64{7, 7, 7, 7, 7})
	sd, err := Stdev(s)
	if err != nil {
		t.Fatalf("Stdev: %v", err)
	}
	if sd != 0 {
		t.Errorf("stdev = %g, want 0", sd)
	}
	cv, err := CV(s)
	if err != nil {
		t.Fatalf("CV: %v", err)
	}
	if cv != 0 {
		t.Errorf("cv = %g, want 0", cv)
	}
}

func TestStdev_SingleMeasurementFails(t *testing.T) {
	s := mustSample(t, "x", []float64{5})
	_, err := Stdev(s)
	if !errors.Is(err, core.ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
	if !core.IsStatisticalError(err) {
		t.Error("insufficient data not classified as statistical error")
	}
}

func TestMean_EmptyDerivedSampleFails(t *testing.T) {
	s := mustSample(t, "x", []float64{1, 2})
	empty := s.Derive("filtered", nil)
	if _, err := Mean(empty); !errors.Is(err, core.ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
}

func TestCV_ZeroMeanPolicy(t *testing.T) {
	// All-zero durations give mean 0; CV is defined as 0 by policy, not an
	// error, so the stability metric stays usable.
	s := mustSample(t, "x", []float64{0, 0, 0})
	cv, err := CV(s)
	if err != nil {
		t.Fatalf("CV: %v", err)
	}
	if cv != 0 {
		t.Errorf("cv = %g, want 0", cv)
	}
}

func TestCV_KnownValue(t *testing.T) {
	s := mustSample(t, "x", []float64{90, 100, 110})
	cv, err := CV(s)
	if err != nil {
		t.Fatalf("CV: %v", err)
	}
	want := 100.0 * 10.0 / 100.0 // stdev of {90,100,110} is exactly 10
	if !almostEqual(cv, want, 1e-12) {
		t.Errorf("cv = %g, want %g", cv, want)
	}
}
