package export

import (
	"fmt"
	"io"
	"strings"

	"benchgate/domain/bench"
)

const rule = 80

// TableRenderer prints the run report as fixed-width terminal tables.
type TableRenderer struct {
	w io.Writer
}

// NewTableRenderer creates a renderer writing to w.
func NewTableRenderer(w io.Writer) *TableRenderer {
	return &TableRenderer{w: w}
}

func (r *TableRenderer) line(c string) {
	fmt.Fprintln(r.w, strings.Repeat(c, rule))
}

func (r *TableRenderer) heading(title string) {
	fmt.Fprintln(r.w)
	r.line("=")
	fmt.Fprintln(r.w, title)
	r.line("=")
}

// Summaries prints the measurement table: name, mean, stdev, CI, CV.
func (r *TableRenderer) Summaries(summaries []bench.SummaryStats) {
	r.heading("MEASUREMENT RESULTS")
	fmt.Fprintf(r.w, "%-28s %-12s %-12s %-22s %-8s\n",
		"Configuration", "Mean (us)", "Std (us)", fmt.Sprintf("%.0f%% CI", pct(summaries)), "CV (%)")
	r.line("-")
	for _, s := range summaries {
		fmt.Fprintf(r.w, "%-28s %10.2f   %10.2f   [%8.2f, %8.2f]  %6.2f\n",
			s.Name, s.Mean, s.Stdev, s.CI.Low, s.CI.High, s.CV)
	}
	r.line("=")
}

func pct(summaries []bench.SummaryStats) float64 {
	if len(summaries) == 0 {
		return 95
	}
	return 100 * summaries[0].CILevel
}

// Comparison prints the speedup and significance analysis for one pair.
func (r *TableRenderer) Comparison(c bench.ComparisonResult, alpha float64) {
	r.heading("SPEEDUP ANALYSIS")
	fmt.Fprintf(r.w, "Baseline:   %s\n", c.Comparison.Baseline)
	fmt.Fprintf(r.w, "Optimized:  %s\n", c.Comparison.Optimized)
	fmt.Fprintf(r.w, "\nSpeedup: %.2fx +/- %.2f\n", c.Speedup.Ratio, c.Speedup.Uncertainty)
	fmt.Fprintf(r.w, "95%% CI: [%.2f, %.2f]\n", c.Speedup.CI.Low, c.Speedup.CI.High)
	fmt.Fprintf(r.w, "Relative improvement: %.1f%%\n", c.Speedup.ImprovementPct)
	fmt.Fprintf(r.w, "\nt-statistic: %.3f\n", c.TTest.Statistic)
	fmt.Fprintf(r.w, "p-value: %.6f\n", c.TTest.PValue)
	if c.TTest.Significant {
		fmt.Fprintf(r.w, "Difference is statistically significant (p < %g)\n", alpha)
	} else {
		fmt.Fprintf(r.w, "Difference is NOT statistically significant (p >= %g)\n", alpha)
	}
	r.line("=")
}

// Validity prints the rigor gate outcome, per criterion and per sample.
func (r *TableRenderer) Validity(v bench.ValidityReport, maxCV, maxRelErr float64) {
	r.heading("EXPERIMENT VALIDITY")

	fmt.Fprintf(r.w, "\nStability criterion (CV < %g%%)\n", maxCV)
	for _, s := range v.Samples {
		fmt.Fprintf(r.w, "  %s %s: CV = %.2f%%\n", mark(s.StabilityOK), s.Name, s.CV)
	}

	fmt.Fprintf(r.w, "\nPrecision criterion (relative error < %g%%)\n", maxRelErr)
	for _, s := range v.Samples {
		fmt.Fprintf(r.w, "  %s %s: err = %.3f%%\n", mark(s.PrecisionOK), s.Name, s.RelErr)
	}

	fmt.Fprintln(r.w)
	if v.Valid {
		fmt.Fprintln(r.w, "All validity criteria satisfied")
	} else {
		fmt.Fprintln(r.w, "Some validity criteria failed")
		fmt.Fprintln(r.w, "  Increase N or control environmental noise, then repeat")
	}
	r.line("=")
}

func mark(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}
