package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// PlotCSV reads benchmark rows back from the CSV file at csvPath and
// renders write/read time against test size as a line plot PNG at
// pngPath. Rows whose means were recorded as unavailable are skipped.
func PlotCSV(csvPath, pngPath string) error {
	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("open csv %s: %w", csvPath, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return fmt.Errorf("read csv %s: %w", csvPath, err)
	}

	if len(rows) < 2 {
		return fmt.Errorf("no data rows in %s", csvPath)
	}

	var writePts, readPts plotter.XYs

	for _, row := range rows[1:] {
		if len(row) < 3 {
			continue
		}

		size, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			continue
		}

		write, errW := strconv.ParseFloat(row[1], 64)
		read, errR := strconv.ParseFloat(row[2], 64)

		if errW != nil || errR != nil {
			// Rows where every trial failed carry "n/a" cells.
			continue
		}

		writePts = append(writePts, plotter.XY{X: size, Y: write})
		readPts = append(readPts, plotter.XY{X: size, Y: read})
	}

	if len(writePts) == 0 {
		return fmt.Errorf("no plottable rows in %s", csvPath)
	}

	p := plot.New()
	p.Title.Text = "Memory Read/Write Performance"
	p.X.Label.Text = "Test Size (MB)"
	p.Y.Label.Text = "Time (s)"
	p.Add(plotter.NewGrid())

	err = plotutil.AddLinePoints(p,
		"Write Time", writePts,
		"Read Time", readPts,
	)
	if err != nil {
		return fmt.Errorf("build plot: %w", err)
	}

	if err := p.Save(8*vg.Inch, 6*vg.Inch, pngPath); err != nil {
		return fmt.Errorf("save plot %s: %w", pngPath, err)
	}

	return nil
}
