package app

import (
	"testing"
	"time"
)

func TestCountQuotaWindowsPartition(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 0, 0, 0, time.Local)

	timestamps := []time.Time{
		now.Add(-30 * time.Minute),   // within the hour
		now.Add(-59 * time.Minute),   // within the hour
		now.Add(-2 * time.Hour),      // today, outside the hour
		now.Add(-13 * time.Hour),     // 01:00 today, outside the hour
		now.Add(-15 * time.Hour),     // yesterday, outside both
	}

	daily, hourly := countQuotaWindows(timestamps, now)
	if daily != 4 {
		t.Fatalf("daily = %d, want 4", daily)
	}
	if hourly != 2 {
		t.Fatalf("hourly = %d, want 2", hourly)
	}
}

func TestCountQuotaWindowsExactBoundaries(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 0, 0, 0, time.Local)
	midnight := dayStart(now)
	hourAgo := now.Add(-time.Hour)

	// Records exactly on a window edge count as inside it.
	daily, hourly := countQuotaWindows([]time.Time{midnight, hourAgo}, now)
	if daily != 2 {
		t.Fatalf("daily = %d, want 2", daily)
	}
	if hourly != 1 {
		t.Fatalf("hourly = %d, want 1", hourly)
	}

	// One nanosecond earlier falls out.
	daily, hourly = countQuotaWindows([]time.Time{
		midnight.Add(-time.Nanosecond),
		hourAgo.Add(-time.Nanosecond),
	}, now)
	if daily != 1 {
		t.Fatalf("daily = %d, want 1", daily)
	}
	if hourly != 0 {
		t.Fatalf("hourly = %d, want 0", hourly)
	}
}

func TestCountQuotaWindowsHourCrossingMidnight(t *testing.T) {
	// 00:30 local: the hour window reaches back into yesterday, but records
	// before midnight are not part of the daily fetch and count in neither.
	now := time.Date(2025, 6, 15, 0, 30, 0, 0, time.Local)

	daily, hourly := countQuotaWindows([]time.Time{
		now.Add(-10 * time.Minute), // today, in the hour
		now.Add(-20 * time.Minute), // today, in the hour
	}, now)
	if daily != 2 || hourly != 2 {
		t.Fatalf("daily, hourly = %d, %d, want 2, 2", daily, hourly)
	}
}

func TestCountQuotaWindowsEmpty(t *testing.T) {
	daily, hourly := countQuotaWindows(nil, time.Now())
	if daily != 0 || hourly != 0 {
		t.Fatalf("daily, hourly = %d, %d, want 0, 0", daily, hourly)
	}
}
