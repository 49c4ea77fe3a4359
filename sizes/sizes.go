// Package sizes builds the schedule of buffer sizes a benchmark run
// works through.
package sizes

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse converts one size token to megabytes. A token is either a
// bare number of megabytes or a number with a case-insensitive MB or
// GB suffix: "512", "512MB", "2GB".
func Parse(token string) (int, error) {
	upper := strings.ToUpper(strings.TrimSpace(token))

	mult := 1

	switch {
	case strings.HasSuffix(upper, "GB"):
		mult = 1024
		upper = strings.TrimSuffix(upper, "GB")
	case strings.HasSuffix(upper, "MB"):
		upper = strings.TrimSuffix(upper, "MB")
	}

	n, err := strconv.Atoi(strings.TrimSpace(upper))
	if err != nil {
		return 0, fmt.Errorf("parse size %q: %w", token, err)
	}

	if n <= 0 {
		return 0, fmt.Errorf("size %q must be positive", token)
	}

	return n * mult, nil
}

// ParseList converts a slice of size tokens into megabyte counts,
// preserving order.
func ParseList(tokens []string) ([]int, error) {
	schedule := make([]int, 0, len(tokens))

	for _, token := range tokens {
		mb, err := Parse(token)
		if err != nil {
			return nil, err
		}

		schedule = append(schedule, mb)
	}

	return schedule, nil
}

// Doubling returns the series from, from*2, from*4, ... stopping at
// the last value that does not exceed to. Both bounds are megabytes.
func Doubling(from, to int) ([]int, error) {
	if from <= 0 {
		return nil, fmt.Errorf("series start must be positive, got %d", from)
	}

	if to < from {
		return nil, fmt.Errorf("series end %d is below start %d", to, from)
	}

	var schedule []int
	for size := from; size <= to; size *= 2 {
		schedule = append(schedule, size)
	}

	return schedule, nil
}

// Format renders a size for humans: MB below 1024, GB at or above.
func Format(sizeMB int) string {
	if sizeMB < 1024 {
		return fmt.Sprintf("%d MB", sizeMB)
	}

	return fmt.Sprintf("%.1f GB", float64(sizeMB)/1024)
}
