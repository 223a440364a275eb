package kpi

import (
	"fmt"
	"time"
)

// timeAgo unit thresholds in seconds, largest first.
var agoUnits = []struct {
	seconds int64
	name    string
}{
	{31536000, "year"},
	{2592000, "month"},
	{86400, "day"},
	{3600, "hour"},
	{60, "minute"},
}

// TimeAgo renders the elapsed time since date as a human-readable English
// phrase ("3 days ago", "1 hour ago", "just now").
func TimeAgo(date, now time.Time) string {
	seconds := int64(now.Sub(date).Seconds())
	for _, unit := range agoUnits {
		interval := seconds / unit.seconds
		if interval >= 1 {
			if interval == 1 {
				return fmt.Sprintf("1 %s ago", unit.name)
			}
			return fmt.Sprintf("%d %ss ago", interval, unit.name)
		}
	}
	return "just now"
}

// WithinDays reports whether date falls within the given number of days
// before now.
func WithinDays(date, now time.Time, days int) bool {
	return now.Sub(date) <= time.Duration(days)*24*time.Hour
}
