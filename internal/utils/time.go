package util

import (
	"math"
	"time"
)

const Day = 24 * time.Hour

// StartOfUTCDay returns midnight UTC of the calendar day t falls on in UTC.
func StartOfUTCDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// CeilMinutes rounds d up to whole minutes. Non-positive durations yield 0.
func CeilMinutes(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(float64(d) / float64(time.Minute)))
}

func IntPtr(v int) *int {
	return &v
}

func StringPtr(v string) *string {
	return &v
}

// Clock is swapped in tests to pin "now".
type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now().UTC()
}
