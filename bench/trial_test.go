package bench

import (
	"math"
	"testing"
)

func TestRunTrialSmallSize(t *testing.T) {
	result := RunTrial(1)

	if result.Failed {
		t.Fatalf("trial failed: %s", result.Reason)
	}
	if result.SizeMB != 1 {
		t.Errorf("size_mb = %d, want 1", result.SizeMB)
	}
	if result.WriteSeconds < 0 {
		t.Errorf("write_seconds = %v, want >= 0", result.WriteSeconds)
	}
	if result.ReadSeconds < 0 {
		t.Errorf("read_seconds = %v, want >= 0", result.ReadSeconds)
	}
}

func TestRunTrialNonPositiveSizes(t *testing.T) {
	for _, size := range []int{0, -1, -1024} {
		result := RunTrial(size)

		if result.Failed {
			t.Errorf("size %d: unexpected failure: %s", size, result.Reason)
		}
		if result.WriteSeconds < 0 || result.ReadSeconds < 0 {
			t.Errorf("size %d: negative timing: write %v, read %v",
				size, result.WriteSeconds, result.ReadSeconds)
		}
	}
}

func TestAllocateRejectsHugeCount(t *testing.T) {
	// An element count no slice can hold drives make into a panic,
	// which must come back as an ordinary error.
	buf, err := allocate(math.MaxInt)
	if err == nil {
		t.Fatal("expected allocation error")
	}
	if buf != nil {
		t.Errorf("buf = %v elements, want nil", len(buf))
	}
}

func TestRunTrialHugeSizeFails(t *testing.T) {
	// Large enough to overflow the allocator's limits on any host,
	// small enough that sizeMB*2^20 does not overflow int on 64-bit.
	const sizeMB = 1 << 40

	result := RunTrial(sizeMB)

	if !result.Failed {
		t.Fatal("expected trial to fail")
	}
	if result.Reason == "" {
		t.Error("failed trial carries no reason")
	}
	if result.WriteSeconds != 0 || result.ReadSeconds != 0 {
		t.Errorf("failed trial has timings: write %v, read %v",
			result.WriteSeconds, result.ReadSeconds)
	}
}
