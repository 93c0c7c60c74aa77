package ports

import (
	"context"

	"benchgate/domain/bench"
	"benchgate/domain/core"
	"benchgate/internal/config"
)

// RunnerPort produces raw Samples by repeatedly invoking a benchmarked
// executable. Implementations must run invocations strictly sequentially:
// concurrent execution contends for CPU cache and scheduler resources and
// breaks the i.i.d. assumption the statistics rely on. Warmup invocations
// precede the timed series and are never measured.
//
// Acquisition failures are fatal: a non-zero exit status is an ErrExecution,
// a missing or malformed output marker is an ErrParse, and either aborts the
// run with no partial Sample.
type RunnerPort interface {
	Acquire(ctx context.Context, name core.ConfigName, binaryPath string, cfg config.AcquisitionConfig) (*bench.Sample, error)
}
