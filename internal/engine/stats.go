package engine

import (
	"sort"
	"time"
)

// StreakLength returns the length of the current consecutive-day streak:
// the run of distinct calendar days with at least one log entry, anchored at
// the most recent logged day, which must be today or yesterday. Only date
// arithmetic matters; log insertion order does not.
func StreakLength(log []LogEntry, now time.Time) int {
	seen := map[string]bool{}
	var days []time.Time
	for _, e := range log {
		if seen[e.Date] {
			continue
		}
		seen[e.Date] = true
		d, ok := parseDay(e.Date)
		if !ok {
			continue
		}
		days = append(days, d)
	}
	if len(days) == 0 {
		return 0
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	if daysBetween(days[0], now) > 1 {
		return 0
	}
	streak := 1
	for i := 0; i+1 < len(days); i++ {
		if daysBetween(days[i+1], days[i]) != 1 {
			break
		}
		streak++
	}
	return streak
}

// ActivityBucket is one day of the history chart: per-category completion
// counts for a single calendar day.
type ActivityBucket struct {
	Date   string
	Counts map[Category]int
}

// Activity aggregates the log into one bucket per day for the trailing
// `days` days ending today. Days without entries get empty buckets so charts
// render gaps instead of skipping them.
func Activity(log []LogEntry, now time.Time, days int) []ActivityBucket {
	if days <= 0 {
		return nil
	}
	buckets := make([]ActivityBucket, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		d := Day(now.AddDate(0, 0, i-days+1))
		buckets[i] = ActivityBucket{Date: d, Counts: map[Category]int{}}
		index[d] = i
	}
	for _, e := range log {
		if i, ok := index[e.Date]; ok {
			buckets[i].Counts[e.Category]++
		}
	}
	return buckets
}

// WeeklyActivity is the 7-day chart feed.
func WeeklyActivity(log []LogEntry, now time.Time) []ActivityBucket {
	return Activity(log, now, 7)
}

// MonthlyActivity is the 30-day chart feed.
func MonthlyActivity(log []LogEntry, now time.Time) []ActivityBucket {
	return Activity(log, now, 30)
}
