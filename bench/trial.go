package bench

import (
	"fmt"
	"time"
)

// Buffer elements are float64, so a 1 MB test touches 131072 elements.
const bytesPerElement = 8

// readSink keeps the read pass observable so the compiler cannot drop
// the summation loop.
var readSink float64

// RunTrial allocates a buffer of exactly sizeMB mebibytes, times one
// sequential write pass and one sequential read pass over it, and
// returns the timings. An allocation failure is reported in the
// result rather than propagated, so the caller can continue with
// other sizes. Sizes <= 0 degrade to a zero-length buffer.
//
// The buffer is not retained: it becomes unreachable when RunTrial
// returns, on the success and failure paths alike.
func RunTrial(sizeMB int) TrialResult {
	result := TrialResult{SizeMB: sizeMB}

	elements := 0
	if sizeMB > 0 {
		elements = sizeMB * 1024 * 1024 / bytesPerElement
	}

	buf, err := allocate(elements)
	if err != nil {
		result.Failed = true
		result.Reason = err.Error()

		return result
	}

	start := time.Now()
	for i := range buf {
		buf[i] = 1.2345
	}
	result.WriteSeconds = time.Since(start).Seconds()

	var sum float64

	start = time.Now()
	for _, v := range buf {
		sum += v
	}
	result.ReadSeconds = time.Since(start).Seconds()

	readSink = sum

	return result
}

// allocate requests a buffer of the given element count. The runtime
// hands back untouched pages, so the first write pass pays the real
// page-fault cost; allocation itself is not timed. An out-of-memory
// panic from make is recovered here, at the single allocation site,
// and returned as an ordinary error.
func allocate(elements int) (buf []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = fmt.Errorf("allocate %d elements: %v", elements, r)
		}
	}()

	return make([]float64, elements), nil
}
