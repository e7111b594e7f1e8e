package engine

import (
	"testing"
	"time"
)

func TestActivityBucketsTrailingWindow(t *testing.T) {
	now := time.Date(2024, 1, 7, 12, 0, 0, 0, time.Local)
	log := []LogEntry{
		{TaskID: "a", Date: "2024-01-07", Category: CategoryWork},
		{TaskID: "b", Date: "2024-01-07", Category: CategorySport},
		{TaskID: "c", Date: "2024-01-05", Category: CategoryWork},
		{TaskID: "d", Date: "2023-12-31", Category: CategoryWork}, // outside window
	}

	buckets := WeeklyActivity(log, now)
	if len(buckets) != 7 {
		t.Fatalf("buckets=%d, want 7", len(buckets))
	}
	if buckets[0].Date != "2024-01-01" || buckets[6].Date != "2024-01-07" {
		t.Fatalf("window [%s .. %s], want [2024-01-01 .. 2024-01-07]", buckets[0].Date, buckets[6].Date)
	}
	if buckets[6].Counts[CategoryWork] != 1 || buckets[6].Counts[CategorySport] != 1 {
		t.Fatalf("today's bucket=%v", buckets[6].Counts)
	}
	if buckets[4].Counts[CategoryWork] != 1 {
		t.Fatalf("2024-01-05 bucket=%v", buckets[4].Counts)
	}
	// Empty days still get a bucket.
	if len(buckets[1].Counts) != 0 {
		t.Fatalf("empty day bucket=%v", buckets[1].Counts)
	}
}

func TestActivityZeroDays(t *testing.T) {
	if got := Activity(nil, fixedNow(), 0); got != nil {
		t.Fatalf("Activity with 0 days=%v, want nil", got)
	}
}

func TestMonthlyActivityLength(t *testing.T) {
	buckets := MonthlyActivity(nil, fixedNow())
	if len(buckets) != 30 {
		t.Fatalf("buckets=%d, want 30", len(buckets))
	}
	if buckets[29].Date != Day(fixedNow()) {
		t.Fatalf("last bucket=%s, want today", buckets[29].Date)
	}
}
