package bench

import (
	"log/slog"
	"math"
)

// Aggregator runs repeated trials for one size and averages the
// successful ones.
type Aggregator struct {
	logger *slog.Logger

	// runTrial is swappable in tests.
	runTrial func(sizeMB int) TrialResult
}

// NewAggregator creates an Aggregator that logs trial progress
// through the given logger.
func NewAggregator(logger *slog.Logger) *Aggregator {
	return &Aggregator{
		logger:   logger.With(slog.String("component", "aggregator")),
		runTrial: RunTrial,
	}
}

// RunSize executes exactly runs trials for sizeMB, one after another,
// and returns the mean write/read times over the trials that
// succeeded. Trials never overlap: concurrent passes would contend on
// the memory bus and corrupt the measurement. A failed trial is
// counted and skipped; it is never retried and never stops the
// remaining trials.
func (a *Aggregator) RunSize(sizeMB, runs int) AveragedResult {
	result := AveragedResult{SizeMB: sizeMB}

	writes := make([]float64, 0, runs)
	reads := make([]float64, 0, runs)

	for i := 0; i < runs; i++ {
		a.logger.Debug("starting trial",
			slog.Int("size_mb", sizeMB),
			slog.Int("trial", i+1),
			slog.Int("runs", runs),
		)

		trial := a.runTrial(sizeMB)
		if trial.Failed {
			a.logger.Warn("trial failed",
				slog.Int("size_mb", sizeMB),
				slog.String("reason", trial.Reason),
			)

			result.FailedTrials++

			continue
		}

		a.logger.Debug("trial finished",
			slog.Int("size_mb", sizeMB),
			slog.Float64("write_seconds", trial.WriteSeconds),
			slog.Float64("read_seconds", trial.ReadSeconds),
		)

		writes = append(writes, trial.WriteSeconds)
		reads = append(reads, trial.ReadSeconds)
		result.SuccessfulTrials++
	}

	if result.SuccessfulTrials > 0 {
		result.WriteSeconds = mean(writes)
		result.ReadSeconds = mean(reads)
		result.WriteStddev = stddev(writes, result.WriteSeconds)
		result.ReadStddev = stddev(reads, result.ReadSeconds)
	}

	return result
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}

// stddev is the population standard deviation: the trials for a size
// are the whole measured set, not a sample of a larger one.
func stddev(xs []float64, mean float64) float64 {
	if len(xs) < 2 {
		return 0
	}

	var sq float64

	for _, x := range xs {
		d := x - mean
		sq += d * d
	}

	return math.Sqrt(sq / float64(len(xs)))
}
