package bench

import (
	"fmt"

	"benchgate/domain/core"
)

// SampleSet is an insertion-ordered mapping from configuration name to
// Sample. Report and export ordering follows insertion order so repeated
// runs produce identical artifacts.
type SampleSet struct {
	order   []core.ConfigName
	samples map[core.ConfigName]*Sample
}

// NewSampleSet creates an empty SampleSet.
func NewSampleSet() *SampleSet {
	return &SampleSet{
		samples: make(map[core.ConfigName]*Sample),
	}
}

// Add inserts a Sample, or replaces an existing Sample with the same name in
// place (keeping its original position). Replacement is how the pipeline
// swaps a raw Sample for its filtered derivation while preserving report
// order.
func (ss *SampleSet) Add(s *Sample) {
	if _, exists := ss.samples[s.Name()]; !exists {
		ss.order = append(ss.order, s.Name())
	}
	ss.samples[s.Name()] = s
}

// Replace substitutes the Sample stored under name with another Sample
// (typically its filtered derivation, which carries a different name). The
// position of name in the iteration order is taken over by the replacement.
func (ss *SampleSet) Replace(name core.ConfigName, s *Sample) error {
	for i, n := range ss.order {
		if n == name {
			delete(ss.samples, name)
			ss.order[i] = s.Name()
			ss.samples[s.Name()] = s
			return nil
		}
	}
	return fmt.Errorf("sample set: no sample named %q", name)
}

// Get looks up a Sample by name.
func (ss *SampleSet) Get(name core.ConfigName) (*Sample, bool) {
	s, ok := ss.samples[name]
	return s, ok
}

// Names returns the configuration names in insertion order.
func (ss *SampleSet) Names() []core.ConfigName {
	out := make([]core.ConfigName, len(ss.order))
	copy(out, ss.order)
	return out
}

// Samples returns the samples in insertion order.
func (ss *SampleSet) Samples() []*Sample {
	out := make([]*Sample, 0, len(ss.order))
	for _, name := range ss.order {
		out = append(out, ss.samples[name])
	}
	return out
}

// Len returns the number of samples.
func (ss *SampleSet) Len() int {
	return len(ss.order)
}
