package bench

import (
	"fmt"

	"benchgate/domain/core"
)

// Sample is an immutable, ordered collection of timing measurements (in
// microseconds) for one benchmarked configuration. Measurements are kept in
// acquisition order for reproducibility; the statistics treat them as i.i.d.
// draws and never depend on order.
type Sample struct {
	name         core.ConfigName
	measurements []float64
}

// NewSample constructs a Sample. The name must be non-empty and at least one
// measurement is required; measurements must be non-negative durations.
func NewSample(name core.ConfigName, measurements []float64) (*Sample, error) {
	if name.IsEmpty() {
		return nil, fmt.Errorf("sample name cannot be empty")
	}
	if len(measurements) == 0 {
		return nil, core.NewInsufficientDataError(fmt.Sprintf("sample %q", name), 0, 1)
	}
	for i, m := range measurements {
		if m < 0 {
			return nil, fmt.Errorf("sample %q: measurement %d is negative (%g)", name, i, m)
		}
	}
	owned := make([]float64, len(measurements))
	copy(owned, measurements)
	return &Sample{name: name, measurements: owned}, nil
}

// newDerived builds a filtered Sample without the non-empty requirement. A
// pathological filter may legally strip every point; consumers combining the
// result with descriptive statistics fail with ErrInsufficientData instead.
func newDerived(name core.ConfigName, measurements []float64) *Sample {
	owned := make([]float64, len(measurements))
	copy(owned, measurements)
	return &Sample{name: name, measurements: owned}
}

// Derive creates a new Sample carrying a derivation suffix in its name, e.g.
// "GOST_FAST (filtered)". The receiver is left untouched for audit.
func (s *Sample) Derive(suffix string, measurements []float64) *Sample {
	return newDerived(core.ConfigName(fmt.Sprintf("%s (%s)", s.name, suffix)), measurements)
}

// Name returns the configuration name.
func (s *Sample) Name() core.ConfigName {
	return s.name
}

// Count returns the number of measurements.
func (s *Sample) Count() int {
	return len(s.measurements)
}

// Measurements returns a copy of the measurement sequence in acquisition
// order. Callers never receive a reference into the Sample's own storage.
func (s *Sample) Measurements() []float64 {
	out := make([]float64, len(s.measurements))
	copy(out, s.measurements)
	return out
}
