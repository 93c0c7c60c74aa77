package app

import (
	"context"
	"fmt"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"benchgate/adapters/stats/engine"
	"benchgate/domain/bench"
	"benchgate/domain/core"
	"benchgate/internal/config"
	"benchgate/ports"
)

// AnalysisService drives the full pipeline: acquisition (optional) ->
// outlier filtering -> descriptive statistics and confidence intervals ->
// pairwise speedup and significance -> validity gate. The statistical steps
// are pure; independent comparisons run concurrently. Acquisition is always
// sequential, one configuration after another, one invocation after another.
type AnalysisService struct {
	engine *engine.Engine
	runner ports.RunnerPort
}

// AcquireRequest names the executables to benchmark, in report order.
type AcquireRequest struct {
	Configs []AcquireConfig
	Proto   config.AcquisitionConfig
}

// AcquireConfig binds a configuration name to its benchmark binary.
type AcquireConfig struct {
	Name   core.ConfigName
	Binary string
}

// NewAnalysisService creates the service. The runner may be nil when only
// AnalyzeSet is used (demo, re-analysis of recorded measurements).
func NewAnalysisService(eng *engine.Engine, runner ports.RunnerPort) *AnalysisService {
	return &AnalysisService{engine: eng, runner: runner}
}

// AcquireSet runs the measurement protocol for every configuration in order.
// The first acquisition failure aborts the run: no partial SampleSet is ever
// returned, so no artifact can be produced from an untrusted sequence.
func (s *AnalysisService) AcquireSet(ctx context.Context, req AcquireRequest) (*bench.SampleSet, error) {
	set := bench.NewSampleSet()
	for _, cfg := range req.Configs {
		sample, err := s.runner.Acquire(ctx, cfg.Name, cfg.Binary, req.Proto)
		if err != nil {
			return nil, err
		}
		set.Add(sample)
	}
	return set, nil
}

// AnalyzeSet runs the statistical pipeline over an acquired SampleSet.
// Every sample is outlier-filtered once (the raw sample is replaced by its
// filtered derivation, preserving report order; the raw Sample stays alive
// with the caller for audit), summarized, and gated. Comparisons are then
// evaluated pairwise on the filtered samples.
func (s *AnalysisService) AnalyzeSet(ctx context.Context, set *bench.SampleSet, comparisons []bench.Comparison) (*bench.RunReport, error) {
	report := &bench.RunReport{RunID: core.NewRunID()}

	// Filtering mutates the set ordering map, so it stays sequential.
	for _, name := range set.Names() {
		sample, _ := set.Get(name)
		filtered, outlierReport, err := s.engine.Filter(sample)
		if err != nil {
			return nil, err
		}
		report.Outliers = append(report.Outliers, outlierReport)
		if err := set.Replace(name, filtered); err != nil {
			return nil, err
		}
	}

	// Summaries and comparisons only read their own inputs; run them in
	// parallel across samples and pairs.
	samples := set.Samples()
	report.Summaries = make([]bench.SummaryStats, len(samples))
	report.Comparisons = make([]bench.ComparisonResult, len(comparisons))

	g, _ := errgroup.WithContext(ctx)
	var mu sync.Mutex

	for i, sample := range samples {
		g.Go(func() error {
			summary, err := s.engine.Summarize(sample)
			if err != nil {
				return err
			}
			mu.Lock()
			report.Summaries[i] = summary
			mu.Unlock()
			return nil
		})
	}

	for i, cmp := range comparisons {
		g.Go(func() error {
			result, err := s.compare(set, cmp)
			if err != nil {
				return err
			}
			mu.Lock()
			report.Comparisons[i] = result
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	validity, err := s.engine.Validate(set)
	if err != nil {
		return nil, err
	}
	report.Validity = validity
	if !validity.Valid {
		log.Printf("[Analyze] validity gate failed for run %s; results remain reported as advisory", report.RunID)
	}

	return report, nil
}

// compare resolves one baseline/optimized pair against the filtered set.
// Comparison names refer to the raw configuration names; after filtering the
// stored samples carry the "(filtered)" suffix, so resolution matches on
// either form.
func (s *AnalysisService) compare(set *bench.SampleSet, cmp bench.Comparison) (bench.ComparisonResult, error) {
	baseline, err := s.resolve(set, cmp.Baseline)
	if err != nil {
		return bench.ComparisonResult{}, err
	}
	optimized, err := s.resolve(set, cmp.Optimized)
	if err != nil {
		return bench.ComparisonResult{}, err
	}

	speedup, err := s.engine.Speedup(baseline, optimized)
	if err != nil {
		return bench.ComparisonResult{}, err
	}
	ttest, err := s.engine.TTest(baseline, optimized)
	if err != nil {
		return bench.ComparisonResult{}, err
	}

	return bench.ComparisonResult{
		Comparison: cmp,
		Speedup:    speedup,
		TTest:      ttest,
	}, nil
}

func (s *AnalysisService) resolve(set *bench.SampleSet, name core.ConfigName) (*bench.Sample, error) {
	if sample, ok := set.Get(name); ok {
		return sample, nil
	}
	filteredName := core.ConfigName(name.String() + " (filtered)")
	if sample, ok := set.Get(filteredName); ok {
		return sample, nil
	}
	return nil, fmt.Errorf("comparison references unknown configuration %q", name)
}
