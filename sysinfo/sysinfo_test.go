package sysinfo

import "testing"

func TestCaptureNeverEmpty(t *testing.T) {
	info := Capture()

	if info.CPULabel == "" {
		t.Error("cpu label is empty, want a fallback at minimum")
	}
	if info.Architecture == "" {
		t.Error("architecture is empty")
	}
	if info.OSName == "" {
		t.Error("os name is empty")
	}
	if info.Timestamp == "" {
		t.Error("timestamp is empty")
	}
	if info.RAMTotalGB < 0 || info.RAMAvailableGB < 0 {
		t.Errorf("negative RAM figures: total %v, available %v",
			info.RAMTotalGB, info.RAMAvailableGB)
	}
}

func TestCaptureStableWithinRun(t *testing.T) {
	a := Capture()
	b := Capture()

	if a.CPULabel != b.CPULabel {
		t.Errorf("cpu label changed between captures: %q vs %q",
			a.CPULabel, b.CPULabel)
	}
	if a.Architecture != b.Architecture {
		t.Errorf("architecture changed between captures: %q vs %q",
			a.Architecture, b.Architecture)
	}
	if a.OSName != b.OSName {
		t.Errorf("os name changed between captures: %q vs %q",
			a.OSName, b.OSName)
	}
	if a.RAMTotalGB != b.RAMTotalGB {
		t.Errorf("total RAM changed between captures: %v vs %v",
			a.RAMTotalGB, b.RAMTotalGB)
	}
}
