package ports

import (
	"benchgate/domain/bench"
)

// ExporterPort renders per-Sample summaries to a persisted artifact (CSV,
// XLSX). Exporters receive already-computed summaries; they never touch a
// Sample and must not be invoked for a run that failed acquisition.
type ExporterPort interface {
	Export(path string, summaries []bench.SummaryStats) error
}
