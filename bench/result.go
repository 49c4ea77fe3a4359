// Package bench runs timed memory read/write trials and aggregates
// their results.
package bench

// TrialResult holds the timings from one allocate-write-read cycle.
// A trial either succeeds with both timings set, or fails at the
// allocation step with Reason describing why.
type TrialResult struct {
	SizeMB       int     `json:"size_mb"`
	WriteSeconds float64 `json:"write_seconds"`
	ReadSeconds  float64 `json:"read_seconds"`
	Failed       bool    `json:"failed,omitempty"`
	Reason       string  `json:"reason,omitempty"`
}

// AveragedResult holds the mean timings over the successful trials
// for one size. When SuccessfulTrials is zero the means and spreads
// are undefined and must be reported as unavailable, never as 0.0.
type AveragedResult struct {
	SizeMB           int     `json:"size_mb"`
	WriteSeconds     float64 `json:"write_seconds"`
	ReadSeconds      float64 `json:"read_seconds"`
	WriteStddev      float64 `json:"write_stddev"`
	ReadStddev       float64 `json:"read_stddev"`
	SuccessfulTrials int     `json:"successful_trials"`
	FailedTrials     int     `json:"failed_trials"`
}

// OK reports whether the result carries usable means, i.e. at least
// one trial succeeded.
func (r AveragedResult) OK() bool {
	return r.SuccessfulTrials > 0
}
