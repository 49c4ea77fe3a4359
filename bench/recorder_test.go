package bench

import (
	"testing"

	"membench/sysinfo"
)

func TestRecorderPreservesOrder(t *testing.T) {
	rec := NewRecorder()
	system := sysinfo.SystemInfo{CPULabel: "test cpu"}

	// A repeated size gets its own record each time.
	order := []int{1, 2, 1}
	for _, size := range order {
		rec.Record(AveragedResult{SizeMB: size, SuccessfulTrials: 1}, system)
	}

	all := rec.All()
	if len(all) != len(order) {
		t.Fatalf("records = %d, want %d", len(all), len(order))
	}

	for i, want := range order {
		if all[i].SizeMB != want {
			t.Errorf("record %d: size_mb = %d, want %d", i, all[i].SizeMB, want)
		}
		if all[i].System.CPULabel != "test cpu" {
			t.Errorf("record %d: missing system snapshot", i)
		}
	}
}

func TestRecorderEmpty(t *testing.T) {
	rec := NewRecorder()

	if got := len(rec.All()); got != 0 {
		t.Errorf("records = %d, want 0", got)
	}
}

func TestRecorderSnapshotIsolated(t *testing.T) {
	rec := NewRecorder()
	rec.Record(AveragedResult{SizeMB: 1, SuccessfulTrials: 1}, sysinfo.SystemInfo{})

	snapshot := rec.All()
	snapshot[0].SizeMB = 99

	if got := rec.All()[0].SizeMB; got != 1 {
		t.Errorf("internal record mutated through snapshot: size_mb = %d, want 1", got)
	}
}

func TestRecorderKeepsFailedResults(t *testing.T) {
	rec := NewRecorder()
	rec.Record(AveragedResult{SizeMB: 1, SuccessfulTrials: 1}, sysinfo.SystemInfo{})
	rec.Record(AveragedResult{SizeMB: 2, FailedTrials: 1}, sysinfo.SystemInfo{})

	all := rec.All()
	if len(all) != 2 {
		t.Fatalf("records = %d, want 2 (failed sizes are recorded too)", len(all))
	}

	if all[1].Result.OK() {
		t.Error("second record should carry no usable mean")
	}
	if all[1].Result.FailedTrials != 1 {
		t.Errorf("failed_trials = %d, want 1", all[1].Result.FailedTrials)
	}
}
