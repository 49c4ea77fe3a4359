// Package report writes benchmark records to the text log, CSV file,
// JSON, and console table.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"membench/bench"
	"membench/sizes"
)

// Header is the CSV column set, matching the text log field order.
var Header = []string{
	"Test Size (MB)", "Write Time (s)", "Read Time (s)",
	"RAM Total (GB)", "RAM Available (GB)", "Timestamp",
	"CPU", "Machine", "OS",
}

// notAvailable marks means that do not exist because every trial for
// a size failed. Such cells are never rendered as 0.0.
const notAvailable = "n/a"

// WriteText writes one block per record to w in the text log format.
func WriteText(w io.Writer, records []bench.Record) error {
	for _, rec := range records {
		ok := rec.Result.OK()

		fmt.Fprintf(w, "Test size: %s\n", sizes.Format(rec.SizeMB))
		fmt.Fprintf(w, "Write time: %s seconds\n",
			formatSeconds(rec.Result.WriteSeconds, ok))
		fmt.Fprintf(w, "Read time: %s seconds\n",
			formatSeconds(rec.Result.ReadSeconds, ok))

		totalRuns := rec.Result.SuccessfulTrials + rec.Result.FailedTrials
		if totalRuns > 1 || rec.Result.FailedTrials > 0 {
			fmt.Fprintf(w, "Runs: %d ok, %d failed\n",
				rec.Result.SuccessfulTrials, rec.Result.FailedTrials)
		}

		if ok && rec.Result.SuccessfulTrials > 1 {
			fmt.Fprintf(w, "Spread: write %.3f s, read %.3f s (stddev)\n",
				rec.Result.WriteStddev, rec.Result.ReadStddev)
		}

		fmt.Fprintf(w, "RAM total: %.2f GB\n", rec.System.RAMTotalGB)
		fmt.Fprintf(w, "RAM available: %.2f GB\n", rec.System.RAMAvailableGB)
		fmt.Fprintf(w, "Timestamp: %s\n", rec.System.Timestamp)
		fmt.Fprintf(w, "CPU: %s\n", rec.System.CPULabel)
		fmt.Fprintf(w, "Machine: %s\n", rec.System.Architecture)
		fmt.Fprintf(w, "OS: %s\n", rec.System.OSName)

		if _, err := fmt.Fprintln(w, strings.Repeat("-", 40)); err != nil {
			return fmt.Errorf("write text block: %w", err)
		}
	}

	return nil
}

// AppendText appends the records to the text log at path, creating
// the file if needed.
func AppendText(path string, records []bench.Record) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open text log %s: %w", path, err)
	}
	defer f.Close()

	return WriteText(f, records)
}

// AppendCSV appends one row per record to the CSV file at path. The
// header row is written only when the file does not exist yet.
func AppendCSV(path string, records []bench.Record) error {
	_, statErr := os.Stat(path)
	writeHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open csv %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if writeHeader {
		if err := w.Write(Header); err != nil {
			return fmt.Errorf("write csv header: %w", err)
		}
	}

	for _, rec := range records {
		if err := w.Write(csvRow(rec)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	return nil
}

// WriteJSON writes the records as indented JSON to w.
func WriteJSON(w io.Writer, records []bench.Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(records)
}

// TableHeader returns the fixed-width console header line.
func TableHeader(runs int) string {
	suffix := ""
	if runs > 1 {
		suffix = fmt.Sprintf(" (average of %d runs)", runs)
	}

	return fmt.Sprintf("%-10s%-18s%-18s%-14s%-14s%s",
		"Size", "Write Time", "Read Time", "Total RAM", "Available", suffix)
}

// TableRow renders one record as a fixed-width console line.
func TableRow(rec bench.Record) string {
	ok := rec.Result.OK()

	return fmt.Sprintf("%-10s%-18s%-18s%-14.2f%-14.2f",
		sizes.Format(rec.SizeMB),
		formatSeconds(rec.Result.WriteSeconds, ok),
		formatSeconds(rec.Result.ReadSeconds, ok),
		rec.System.RAMTotalGB,
		rec.System.RAMAvailableGB,
	)
}

func csvRow(rec bench.Record) []string {
	ok := rec.Result.OK()

	return []string{
		strconv.Itoa(rec.SizeMB),
		formatSeconds(rec.Result.WriteSeconds, ok),
		formatSeconds(rec.Result.ReadSeconds, ok),
		fmt.Sprintf("%.2f", rec.System.RAMTotalGB),
		fmt.Sprintf("%.2f", rec.System.RAMAvailableGB),
		rec.System.Timestamp,
		rec.System.CPULabel,
		rec.System.Architecture,
		rec.System.OSName,
	}
}

func formatSeconds(v float64, ok bool) string {
	if !ok {
		return notAvailable
	}

	return fmt.Sprintf("%.3f", v)
}
