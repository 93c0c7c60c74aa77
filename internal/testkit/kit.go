// Package testkit provides seeded synthetic Samples for the demo command and
// tests. This is the only place in the repository that touches a random
// seed; real measurement analysis never does.
package testkit

import (
	"math/rand"

	"benchgate/domain/bench"
	"benchgate/domain/core"
)

// Generator produces synthetic timing Samples from normal draws. The source
// is explicitly seeded and owned by one goroutine, so runs are reproducible.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator with an explicit seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// NormalSample draws n values from N(mean, stdev^2), clamped at zero since
// durations cannot be negative, and wraps them as a Sample.
func (g *Generator) NormalSample(name core.ConfigName, mean, stdev float64, n int) (*bench.Sample, error) {
	measurements := make([]float64, n)
	for i := range measurements {
		v := mean + stdev*g.rng.NormFloat64()
		if v < 0 {
			v = 0
		}
		measurements[i] = v
	}
	return bench.NewSample(name, measurements)
}

// DemoConfig describes one synthetic configuration of the demo experiment.
type DemoConfig struct {
	Name  core.ConfigName
	Mean  float64
	Stdev float64
}

// DemoConfigs reproduces the reference experiment: two implementations, each
// measured sequentially and batched, with the means and spreads observed on
// the original hardware (microseconds).
func DemoConfigs() []DemoConfig {
	return []DemoConfig{
		{Name: "FAST_V4 2x Sequential", Mean: 67.74, Stdev: 3.04},
		{Name: "FAST_V4 2x Batched", Mean: 50.50, Stdev: 2.27},
		{Name: "GOST_FAST 2x Sequential", Mean: 127.74, Stdev: 5.74},
		{Name: "GOST_FAST 2x Batched", Mean: 95.30, Stdev: 4.28},
	}
}

// DemoSampleSet generates the full demo experiment with n draws per
// configuration, in a fixed order.
func (g *Generator) DemoSampleSet(n int) (*bench.SampleSet, error) {
	set := bench.NewSampleSet()
	for _, dc := range DemoConfigs() {
		s, err := g.NormalSample(dc.Name, dc.Mean, dc.Stdev, n)
		if err != nil {
			return nil, err
		}
		set.Add(s)
	}
	return set, nil
}
