package engine

import "time"

const dayLayout = "2006-01-02"

// Day formats an instant as its local calendar day. Day-granular strings are
// the deliberate unit of comparison for rollover and streaks; full timestamps
// would shift semantics across timezones and DST.
func Day(t time.Time) string {
	return t.Format(dayLayout)
}

func parseDay(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(dayLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// daysBetween returns the whole calendar days from a to b (b - a).
func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, a.Location())
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, b.Location())
	return int(b.Sub(a).Hours() / 24)
}
