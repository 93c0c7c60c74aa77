// Package runner implements the measurement acquisition protocol: repeated
// sequential invocation of a benchmarked executable with warmup, stdout
// capture, and duration parsing.
package runner

import (
	"context"
	"log"
	"os/exec"

	"benchgate/domain/bench"
	"benchgate/domain/core"
	"benchgate/internal/config"
)

// Runner acquires a Sample from a benchmarked executable. Invocations are
// strictly sequential: each timed run completes before the next begins, so
// measurements stay independent and identically distributed. Warmup runs
// bring caches and branch predictors to steady state and are discarded.
type Runner struct{}

// NewRunner creates a sequential benchmark runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Acquire runs the full protocol for one configuration. Any non-zero exit
// status or unparseable output aborts acquisition entirely; there is no
// partial-result tolerance, because a truncated measurement sequence cannot
// be trusted for statistics.
func (r *Runner) Acquire(ctx context.Context, name core.ConfigName, binaryPath string, cfg config.AcquisitionConfig) (*bench.Sample, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Printf("[Acquire] %s: warmup (%d invocations)", name, cfg.Warmup)
	for i := 0; i < cfg.Warmup; i++ {
		cmd := exec.CommandContext(ctx, binaryPath)
		if err := cmd.Run(); err != nil {
			return nil, core.NewExecutionError(name.String(), i, err)
		}
	}

	log.Printf("[Acquire] %s: measuring (%d invocations)", name, cfg.Iterations)
	measurements := make([]float64, 0, cfg.Iterations)
	for i := 0; i < cfg.Iterations; i++ {
		cmd := exec.CommandContext(ctx, binaryPath)
		out, err := cmd.Output()
		if err != nil {
			return nil, core.NewExecutionError(name.String(), i, err)
		}

		value, perr := r.parse(string(out), cfg)
		if perr != nil {
			return nil, core.NewParseError(name.String(), i, perr.Error())
		}
		measurements = append(measurements, value)

		if (i+1)%100 == 0 {
			log.Printf("[Acquire] %s: %d/%d", name, i+1, cfg.Iterations)
		}
	}

	return bench.NewSample(name, measurements)
}

func (r *Runner) parse(output string, cfg config.AcquisitionConfig) (float64, error) {
	if cfg.JSONPath != "" {
		return ParseJSONOutput(output, cfg.JSONPath)
	}
	return ParseMarkerOutput(output, cfg.Marker)
}
