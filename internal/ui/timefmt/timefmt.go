// Package timefmt formats elapsed durations and wall-clock stamps for display.
package timefmt

import (
	"fmt"
	"time"
)

// Elapsed renders a duration as ".mmm" below one second, and as
// "H:MM:SS.mmm" otherwise. Milliseconds are always exactly three digits,
// minutes and seconds are zero-padded, hours are not.
func Elapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	millis := int(d.Milliseconds()) % 1000
	if d < time.Second {
		return fmt.Sprintf(".%03d", millis)
	}

	total := int(d.Seconds())
	seconds := total % 60
	minutes := (total / 60) % 60
	hours := total / 3600

	return fmt.Sprintf("%d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}

// Stamp renders a wall-clock time as "HH:MM:SS" in 24-hour local time.
func Stamp(t time.Time) string {
	return t.Format("15:04:05")
}
