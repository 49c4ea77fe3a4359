package bench

import "membench/sysinfo"

// Record pairs one size's averaged timings with the system snapshot
// taken for the run. It is the unit downstream writers consume.
type Record struct {
	SizeMB int                `json:"size_mb"`
	Result AveragedResult     `json:"result"`
	System sysinfo.SystemInfo `json:"system"`
}

// Recorder accumulates records in the order sizes were requested.
// Callers build one Recorder per benchmark run; repeated sizes each
// get their own record, with no deduplication.
type Recorder struct {
	records []Record
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends one record.
func (r *Recorder) Record(result AveragedResult, system sysinfo.SystemInfo) {
	r.records = append(r.records, Record{
		SizeMB: result.SizeMB,
		Result: result,
		System: system,
	})
}

// All returns a copy of the accumulated records in insertion order.
func (r *Recorder) All() []Record {
	out := make([]Record, len(r.records))
	copy(out, r.records)

	return out
}
