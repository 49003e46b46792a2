package history

import (
	"time"
)

// EventsPerSet is the number of logged successes that make up one set.
const EventsPerSet = 10

// fullDayEvents is the event count treated as a 100% day (three sets).
const fullDayEvents = 30

// Entry is the per-day aggregate derived from the raw log. Entries are
// value objects, rebuilt from scratch on every aggregation.
type Entry struct {
	Date        time.Time // midnight, local time
	EventCount  int
	SetsDone    int
	ProgressPct float64
}

// Aggregate buckets parseable log lines by calendar day and returns one
// entry per day across the full [first, last] range, days with no
// events included with a zero count. Lines without a valid leading
// timestamp are skipped. Pure and re-entrant; safe to call from any
// goroutine, including periodically for a live view.
func Aggregate(lines []string) []Entry {
	counts := make(map[time.Time]int)
	for _, line := range lines {
		ts, ok := ParseTimestamp(line)
		if !ok {
			continue
		}
		counts[midnight(ts)]++
	}
	if len(counts) == 0 {
		return nil
	}

	var first, last time.Time
	for day := range counts {
		if first.IsZero() || day.Before(first) {
			first = day
		}
		if last.IsZero() || day.After(last) {
			last = day
		}
	}

	var entries []Entry
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		entries = append(entries, newEntry(day, counts[day]))
	}
	return entries
}

// newEntry derives the per-day metrics from a raw event count.
func newEntry(day time.Time, count int) Entry {
	e := Entry{
		Date:       day,
		EventCount: count,
		SetsDone:   count / EventsPerSet,
	}
	if count > 0 {
		e.ProgressPct = float64(count) / fullDayEvents * 100
		if e.ProgressPct > 100 {
			e.ProgressPct = 100
		}
	}
	return e
}

func midnight(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())
}
