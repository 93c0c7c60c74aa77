// Package export renders analysis results to persisted artifacts and
// terminal tables. Exporters consume computed summaries only; nothing here
// reaches back into a Sample, and nothing is written for a failed run.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"benchgate/domain/bench"
	"benchgate/internal/errors"
)

// csvHeader is a fixed contract consumed by downstream analysis tooling.
// Column order and names must not change.
var csvHeader = []string{"Configuration", "Mean_us", "Std_us", "CI_Low_us", "CI_High_us", "CV_percent", "N"}

// CSVExporter writes one row per Sample, numeric fields to 4 decimal places,
// in summary (insertion) order.
type CSVExporter struct{}

// NewCSVExporter creates a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Export writes the summaries to path.
func (e *CSVExporter) Export(path string, summaries []bench.SummaryStats) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating CSV file %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return errors.Wrap(err, "writing CSV header")
	}
	for _, s := range summaries {
		row := []string{
			s.Name.String(),
			fmt.Sprintf("%.4f", s.Mean),
			fmt.Sprintf("%.4f", s.Stdev),
			fmt.Sprintf("%.4f", s.CI.Low),
			fmt.Sprintf("%.4f", s.CI.High),
			fmt.Sprintf("%.4f", s.CV),
			strconv.Itoa(s.N),
		}
		if err := w.Write(row); err != nil {
			return errors.Wrapf(err, "writing CSV row for %s", s.Name)
		}
	}
	w.Flush()
	return errors.Wrap(w.Error(), "flushing CSV")
}
