package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatDuration renders d as "{h}h {m}m". Seconds are truncated, never
// rounded, and negative values render as zero.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	hours := ms / 3_600_000
	minutes := (ms % 3_600_000) / 60_000
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// FormatClock renders d as HH:MM:SS for the running timer.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// ParseClock parses "H:M:S" (or "H:M") into a duration. Minutes and seconds
// must be below 60.
func ParseClock(s string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid duration %q: expected HH:MM:SS", s)
	}

	values := make([]int64, 3)
	for i, part := range parts {
		n, err := strconv.ParseInt(part, 10, 64)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid duration %q: %q is not a non-negative number", s, part)
		}
		if i > 0 && n >= 60 {
			return 0, fmt.Errorf("invalid duration %q: %q must be below 60", s, part)
		}
		values[i] = n
	}

	return time.Duration(values[0])*time.Hour +
		time.Duration(values[1])*time.Minute +
		time.Duration(values[2])*time.Second, nil
}
