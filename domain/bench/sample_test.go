package bench

import (
	"testing"

	"benchgate/domain/core"
)

func TestNewSample_Invariants(t *testing.T) {
	tests := []struct {
		name         string
		configName   core.ConfigName
		measurements []float64
		expectError  bool
	}{
		{
			name:         "valid sample",
			configName:   "Sequential",
			measurements: []float64{1.0, 2.0, 3.0},
			expectError:  false,
		},
		{
			name:         "single measurement is allowed",
			configName:   "Sequential",
			measurements: []float64{1.0},
			expectError:  false,
		},
		{
			name:         "empty name rejected",
			configName:   "  ",
			measurements: []float64{1.0},
			expectError:  true,
		},
		{
			name:         "no measurements rejected",
			configName:   "Sequential",
			measurements: nil,
			expectError:  true,
		},
		{
			name:         "negative measurement rejected",
			configName:   "Sequential",
			measurements: []float64{1.0, -0.5},
			expectError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSample(tt.configName, tt.measurements)
			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSample_MeasurementsAreCopied(t *testing.T) {
	input := []float64{1.0, 2.0, 3.0}
	s, err := NewSample("Sequential", input)
	if err != nil {
		t.Fatalf("NewSample: %v", err)
	}

	// Mutating the constructor input must not reach the sample.
	input[0] = 99.0
	if got := s.Measurements()[0]; got != 1.0 {
		t.Errorf("sample shares storage with constructor input: got %g", got)
	}

	// Mutating an accessor result must not reach the sample either.
	out := s.Measurements()
	out[1] = 99.0
	if got := s.Measurements()[1]; got != 2.0 {
		t.Errorf("sample shares storage with accessor output: got %g", got)
	}
}

func TestSample_DeriveKeepsOriginal(t *testing.T) {
	s, _ := NewSample("GOST_FAST", []float64{10, 11, 12})
	derived := s.Derive("filtered", []float64{10, 11})

	if derived.Name() != "GOST_FAST (filtered)" {
		t.Errorf("derived name = %q", derived.Name())
	}
	if derived.Count() != 2 {
		t.Errorf("derived count = %d, want 2", derived.Count())
	}
	if s.Count() != 3 {
		t.Errorf("original was mutated: count = %d, want 3", s.Count())
	}
}

func TestSampleSet_PreservesInsertionOrder(t *testing.T) {
	set := NewSampleSet()
	names := []core.ConfigName{"C", "A", "B"}
	for _, n := range names {
		s, _ := NewSample(n, []float64{1})
		set.Add(s)
	}

	got := set.Names()
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, n := range names {
		if got[i] != n {
			t.Errorf("order[%d] = %q, want %q", i, got[i], n)
		}
	}
}

func TestSampleSet_ReplaceKeepsPosition(t *testing.T) {
	set := NewSampleSet()
	for _, n := range []core.ConfigName{"A", "B", "C"} {
		s, _ := NewSample(n, []float64{1, 2})
		set.Add(s)
	}

	b, _ := set.Get("B")
	filtered := b.Derive("filtered", []float64{1})
	if err := set.Replace("B", filtered); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	names := set.Names()
	if names[1] != "B (filtered)" {
		t.Errorf("position 1 = %q, want %q", names[1], "B (filtered)")
	}
	if _, ok := set.Get("B"); ok {
		t.Error("raw sample still resolvable under old name inside the set")
	}
	if err := set.Replace("missing", filtered); err == nil {
		t.Error("Replace of unknown name should fail")
	}
}
