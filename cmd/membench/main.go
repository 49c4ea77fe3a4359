// Package main provides the CLI entry point for membench, a host
// memory read/write throughput benchmark.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"membench/bench"
	"membench/report"
	"membench/sizes"
	"membench/sysinfo"
)

const (
	defaultTextFile = "membench_results.txt"
	defaultCSVFile  = "membench_results.csv"
	defaultPlotFile = "membench_performance.png"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "membench",
		Short: "Host memory read/write throughput benchmark",
		Long: `Membench measures how fast the host can write to and read from
large in-memory buffers. For each configured size it times a sequential
write pass and a sequential read pass, averages over the configured
number of runs, and records results alongside CPU, OS and RAM metadata.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newPlotCmd())

	return root
}

func newRunCmd() *cobra.Command {
	var (
		sizeArgs []string
		from     int
		to       int
		runs     int
		csvOnly  bool
		quiet    bool
		jsonOut  bool
		verbose  bool
		textFile string
		csvFile  string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the memory benchmark",
		Long: `Allocate a buffer per configured size, time sequential write and
read passes over it, and append the averaged results to the text log
and CSV file.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if runs < 1 {
				return fmt.Errorf("--runs must be at least 1, got %d", runs)
			}

			schedule, err := buildSchedule(sizeArgs, from, to)
			if err != nil {
				return err
			}

			return runBenchmark(runConfig{
				schedule: schedule,
				runs:     runs,
				csvOnly:  csvOnly,
				quiet:    quiet,
				jsonOut:  jsonOut,
				verbose:  verbose,
				textFile: textFile,
				csvFile:  csvFile,
			})
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVar(&sizeArgs, "sizes",
		[]string{"1024", "2048", "4096", "8192"},
		"Test sizes, each in MB or with an MB/GB suffix (e.g. 512,2GB)")
	flags.IntVar(&from, "from", 0,
		"Start of a doubling size series in MB (used with --to, overrides --sizes)")
	flags.IntVar(&to, "to", 0,
		"End of a doubling size series in MB")
	flags.IntVar(&runs, "runs", 1,
		"Number of runs to average for each test size")
	flags.BoolVar(&csvOnly, "csv-only", false,
		"Only write the CSV file, skip the text log")
	flags.BoolVar(&quiet, "quiet", false,
		"Plain uncolored output (CI friendly)")
	flags.BoolVar(&jsonOut, "json", false,
		"Print results as JSON to stdout")
	flags.BoolVar(&verbose, "verbose", false,
		"Log every trial to stderr")
	flags.StringVar(&textFile, "text-file", defaultTextFile,
		"Text log path")
	flags.StringVar(&csvFile, "csv-file", defaultCSVFile,
		"CSV output path")

	return cmd
}

func newPlotCmd() *cobra.Command {
	var (
		csvFile string
		outFile string
	)

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render a performance plot from recorded CSV results",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := report.PlotCSV(csvFile, outFile); err != nil {
				return err
			}

			fmt.Printf("Plot saved as %s\n", outFile)

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&csvFile, "csv-file", defaultCSVFile,
		"CSV results to plot")
	flags.StringVar(&outFile, "out", defaultPlotFile,
		"Output PNG path")

	return cmd
}

type runConfig struct {
	schedule []int
	runs     int
	csvOnly  bool
	quiet    bool
	jsonOut  bool
	verbose  bool
	textFile string
	csvFile  string
}

func buildSchedule(sizeArgs []string, from, to int) ([]int, error) {
	if from > 0 || to > 0 {
		return sizes.Doubling(from, to)
	}

	return sizes.ParseList(sizeArgs)
}

func runBenchmark(cfg runConfig) error {
	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	if cfg.quiet {
		color.NoColor = true
	}

	// Step 1: Capture the system snapshot once per run.
	system := sysinfo.Capture()

	color.New(color.FgMagenta, color.Bold).Println("\nMemory Benchmark Results")
	fmt.Println(strings.Repeat("=", 40))
	color.Yellow("System Info: CPU: %s | Machine: %s | OS: %s",
		system.CPULabel, system.Architecture, system.OSName)
	fmt.Println(report.TableHeader(cfg.runs))
	fmt.Println(strings.Repeat("-", 74))

	// Step 2: Run each size sequentially and record in request order.
	aggregator := bench.NewAggregator(logger)
	recorder := bench.NewRecorder()

	for _, sizeMB := range cfg.schedule {
		color.Blue("\nTesting %s...", sizes.Format(sizeMB))

		avg := aggregator.RunSize(sizeMB, cfg.runs)
		recorder.Record(avg, system)

		if !avg.OK() {
			color.Red("Skipping %s (not enough memory)", sizes.Format(sizeMB))

			continue
		}

		fmt.Println(report.TableRow(bench.Record{
			SizeMB: sizeMB,
			Result: avg,
			System: system,
		}))
	}

	// Step 3: Write outputs.
	records := recorder.All()

	if !cfg.csvOnly {
		if err := report.AppendText(cfg.textFile, records); err != nil {
			return fmt.Errorf("write text log: %w", err)
		}
	}

	if err := report.AppendCSV(cfg.csvFile, records); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	if cfg.jsonOut {
		if err := report.WriteJSON(os.Stdout, records); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
	}

	saved := cfg.csvFile
	if !cfg.csvOnly {
		saved = cfg.textFile + " and " + cfg.csvFile
	}

	color.New(color.FgMagenta, color.Bold).Printf("\nResults saved to %s\n", saved)

	return nil
}
