package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"benchgate/adapters/export"
	"benchgate/adapters/runner"
	"benchgate/adapters/stats/engine"
	"benchgate/app"
	"benchgate/domain/bench"
	"benchgate/domain/core"
	"benchgate/internal/config"
	"benchgate/internal/testkit"
	"benchgate/ports"
)

func main() {
	// Optional .env for flag defaults; the statistical core itself takes no
	// environment configuration.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "benchgate",
		Short: "Rigorous pairwise benchmark comparison with quantified confidence",
	}

	rootCmd.AddCommand(
		newRunCmd(),
		newAnalyzeCmd(),
		newDemoCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// analysisFlags are the statistical parameters shared by every subcommand.
type analysisFlags struct {
	confidence   float64
	threshold    float64
	alpha        float64
	welch        bool
	normalApprox bool
	csvPath      string
	xlsxPath     string
}

func (f *analysisFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.confidence, "confidence", 0.95, "confidence level for intervals")
	cmd.Flags().Float64Var(&f.threshold, "outlier-threshold", 3.0, "outlier trim threshold in standard deviations")
	cmd.Flags().Float64Var(&f.alpha, "alpha", 0.05, "significance cutoff for reporting")
	cmd.Flags().BoolVar(&f.welch, "welch", false, "use Welch's t-test instead of the pooled-variance form")
	cmd.Flags().BoolVar(&f.normalApprox, "normal-approx", false, "use the normal approximation for confidence intervals (large n)")
	cmd.Flags().StringVar(&f.csvPath, "csv", envOr("BENCHGATE_CSV", "benchmark_results.csv"), "CSV output path (empty to skip)")
	cmd.Flags().StringVar(&f.xlsxPath, "xlsx", os.Getenv("BENCHGATE_XLSX"), "XLSX output path (empty to skip)")
}

func (f *analysisFlags) analysisConfig() config.AnalysisConfig {
	cfg := config.DefaultAnalysis()
	cfg.Confidence = f.confidence
	cfg.OutlierThreshold = f.threshold
	cfg.Alpha = f.alpha
	cfg.EqualVariance = !f.welch
	cfg.NormalApprox = f.normalApprox
	return cfg
}

func newRunCmd() *cobra.Command {
	var flags analysisFlags
	var configs []string
	var compares []string
	var warmup, iterations int
	var marker, jsonPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Acquire measurements from benchmark binaries and analyze them",
		Long: `Acquire measurements by repeatedly invoking each benchmark binary, then
run the full statistical pipeline and print the report.

Example:
  benchgate run \
    --config "Sequential=./bench_seq" --config "Batched=./bench_batch" \
    --compare "Sequential:Batched" \
    --iterations 1000 --warmup 100 --marker "KeyGen:"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			acqConfigs, err := parseConfigFlags(configs)
			if err != nil {
				return err
			}
			comparisons, err := parseCompareFlags(compares)
			if err != nil {
				return err
			}

			proto := config.AcquisitionConfig{
				Warmup:     warmup,
				Iterations: iterations,
				Marker:     marker,
				JSONPath:   jsonPath,
			}
			if err := proto.Validate(); err != nil {
				return err
			}

			svc := newService(flags)
			set, err := svc.AcquireSet(context.Background(), app.AcquireRequest{
				Configs: acqConfigs,
				Proto:   proto,
			})
			if err != nil {
				// Acquisition failed: nothing is analyzed, nothing exported.
				return err
			}
			return analyzeAndReport(svc, set, comparisons, flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringArrayVar(&configs, "config", nil, "benchmark configuration as name=path (repeatable, report order)")
	cmd.Flags().StringArrayVar(&compares, "compare", nil, "comparison pair as baseline:optimized (repeatable)")
	cmd.Flags().IntVar(&warmup, "warmup", 100, "untimed warmup invocations per configuration")
	cmd.Flags().IntVar(&iterations, "iterations", 1000, "timed invocations per configuration")
	cmd.Flags().StringVar(&marker, "marker", "KeyGen:", "stdout label preceding the duration in microseconds")
	cmd.Flags().StringVar(&jsonPath, "json-path", "", "treat stdout as JSON and read the duration from this path")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func newAnalyzeCmd() *cobra.Command {
	var flags analysisFlags
	var input string
	var compares []string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Re-analyze recorded raw measurements from a CSV file",
		Long: `Analyze previously recorded measurements. The input CSV needs a
configuration,measurement_us header and one measurement per row; rows group
into samples by configuration name in file order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			comparisons, err := parseCompareFlags(compares)
			if err != nil {
				return err
			}
			set, err := loadMeasurementsCSV(input)
			if err != nil {
				return err
			}
			return analyzeAndReport(newService(flags), set, comparisons, flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&input, "input", "", "raw measurements CSV path")
	cmd.Flags().StringArrayVar(&compares, "compare", nil, "comparison pair as baseline:optimized (repeatable)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func newDemoCmd() *cobra.Command {
	var flags analysisFlags
	var seed int64
	var n int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the reference experiment on seeded synthetic data",
		RunE: func(cmd *cobra.Command, args []string) error {
			gen := testkit.NewGenerator(seed)
			set, err := gen.DemoSampleSet(n)
			if err != nil {
				return err
			}
			comparisons := []bench.Comparison{
				{Baseline: "FAST_V4 2x Sequential", Optimized: "FAST_V4 2x Batched"},
				{Baseline: "GOST_FAST 2x Sequential", Optimized: "GOST_FAST 2x Batched"},
			}
			return analyzeAndReport(newService(flags), set, comparisons, flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().Int64Var(&seed, "seed", 42, "random seed for synthetic data")
	cmd.Flags().IntVar(&n, "n", 1000, "measurements per configuration")
	return cmd
}

func newService(flags analysisFlags) *app.AnalysisService {
	return app.NewAnalysisService(engine.New(flags.analysisConfig()), runner.NewRunner())
}

// analyzeAndReport runs the statistical pipeline, prints the terminal
// report, and writes the export artifacts. Exports only happen for a run
// that analyzed successfully.
func analyzeAndReport(svc *app.AnalysisService, set *bench.SampleSet, comparisons []bench.Comparison, flags analysisFlags) error {
	report, err := svc.AnalyzeSet(context.Background(), set, comparisons)
	if err != nil {
		return err
	}

	cfg := flags.analysisConfig()
	table := export.NewTableRenderer(os.Stdout)
	table.Summaries(report.Summaries)
	for _, cmp := range report.Comparisons {
		table.Comparison(cmp, cfg.Alpha)
	}
	table.Validity(report.Validity, cfg.MaxCV, cfg.MaxRelativeError)

	artifacts := []struct {
		path     string
		exporter ports.ExporterPort
	}{
		{flags.csvPath, export.NewCSVExporter()},
		{flags.xlsxPath, export.NewXLSXExporter("Results")},
	}
	for _, a := range artifacts {
		if a.path == "" {
			continue
		}
		if err := a.exporter.Export(a.path, report.Summaries); err != nil {
			return err
		}
		fmt.Printf("Results exported to %s\n", a.path)
	}
	return nil
}

func parseConfigFlags(raw []string) ([]app.AcquireConfig, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("at least one --config name=path is required")
	}
	configs := make([]app.AcquireConfig, 0, len(raw))
	for _, entry := range raw {
		rawName, path, ok := strings.Cut(entry, "=")
		if !ok || path == "" {
			return nil, fmt.Errorf("invalid --config %q, expected name=path", entry)
		}
		name, err := core.ParseConfigName(rawName)
		if err != nil {
			return nil, fmt.Errorf("invalid --config %q: %w", entry, err)
		}
		configs = append(configs, app.AcquireConfig{Name: name, Binary: path})
	}
	return configs, nil
}

func parseCompareFlags(raw []string) ([]bench.Comparison, error) {
	comparisons := make([]bench.Comparison, 0, len(raw))
	for _, entry := range raw {
		baseline, optimized, ok := strings.Cut(entry, ":")
		if !ok || baseline == "" || optimized == "" {
			return nil, fmt.Errorf("invalid --compare %q, expected baseline:optimized", entry)
		}
		comparisons = append(comparisons, bench.Comparison{
			Baseline:  core.ConfigName(baseline),
			Optimized: core.ConfigName(optimized),
		})
	}
	return comparisons, nil
}

// loadMeasurementsCSV reads a configuration,measurement_us CSV into a
// SampleSet, grouping rows by configuration in file order.
func loadMeasurementsCSV(path string) (*bench.SampleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading %s header: %w", path, err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("%s: expected configuration,measurement_us header", path)
	}

	order := []core.ConfigName{}
	grouped := map[core.ConfigName][]float64{}
	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s line %d: %w", path, line, err)
		}
		name := core.ConfigName(row[0])
		value, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: measurement %q is not a number", path, line, row[1])
		}
		if _, seen := grouped[name]; !seen {
			order = append(order, name)
		}
		grouped[name] = append(grouped[name], value)
	}

	set := bench.NewSampleSet()
	for _, name := range order {
		sample, err := bench.NewSample(name, grouped[name])
		if err != nil {
			return nil, err
		}
		set.Add(sample)
	}
	if set.Len() == 0 {
		return nil, fmt.Errorf("%s: no measurements found", path)
	}
	return set, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
