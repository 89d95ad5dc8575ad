// Package seed holds the sample datasets used when the remote store is
// unreachable or empty at bootstrap. Every function takes the reference time
// so the relative dates (last contact two days ago, follow-up tomorrow) stay
// plausible no matter when the fallback fires.
package seed

import "time"

func daysAgo(now time.Time, days int) time.Time {
	return now.AddDate(0, 0, -days)
}

func daysFromNow(now time.Time, days int) time.Time {
	return now.AddDate(0, 0, days)
}

func hoursAgo(now time.Time, hours int) time.Time {
	return now.Add(-time.Duration(hours) * time.Hour)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func floatPtr(v float64) *float64 {
	return &v
}

func strPtr(s string) *string {
	return &s
}
