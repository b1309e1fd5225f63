package app

import "time"

// dayStart returns local midnight of the instant's calendar day.
func dayStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// countQuotaWindows partitions one set of request timestamps into the two
// quota counts: daily (since local midnight) and hourly (last 60 minutes).
// Deriving both from the same slice keeps the counts consistent; two
// separate queries could straddle an insert and disagree.
func countQuotaWindows(timestamps []time.Time, now time.Time) (daily, hourly int) {
	day := dayStart(now)
	hour := now.Add(-time.Hour)

	for _, ts := range timestamps {
		if ts.Before(day) {
			continue
		}
		daily++
		if !ts.Before(hour) {
			hourly++
		}
	}
	return daily, hourly
}
