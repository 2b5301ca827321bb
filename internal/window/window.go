package window

import (
	"time"

	"quitlog/internal/dates"
)

// MaxLookbackDays bounds the logbook to a recency window regardless of how
// far back the configured start date reaches. Product decision, not a limit
// of the store.
const MaxLookbackDays = 30

// chartDays is how many of the most recent days feed the trend chart.
const chartDays = 10

// Entry is one calendar day in the tracking window, joined with its usage
// count. Transient; rebuilt on every logbook load.
type Entry struct {
	Day   string // weekday name, or "Today" for the most recent day
	Date  string // short display form, e.g. "Jan 5"
	Count int
	Key   string
	Time  time.Time
}

// Days enumerates the tracking window from today back to start, newest
// first, capped at MaxLookbackDays prior days. A start date of today or in
// the future yields today alone. Counts are joined by day key; days without
// an entry read as 0.
func Days(start, today time.Time, counts map[string]int) []Entry {
	span := dates.DaysBetween(start, today)
	if span > MaxLookbackDays {
		span = MaxLookbackDays
	}

	entries := make([]Entry, 0, span+1)
	for i := 0; i <= span; i++ {
		day := today.AddDate(0, 0, -i)
		name := dates.WeekdayName(day)
		if i == 0 {
			name = "Today"
		}
		key := dates.DayKey(day)
		entries = append(entries, Entry{
			Day:   name,
			Date:  dates.FormatDisplay(day),
			Count: counts[key],
			Key:   key,
			Time:  day,
		})
	}
	return entries
}

// ChartSeries returns the counts of at most the chartDays most recent
// entries, reordered oldest to newest for plotting.
func ChartSeries(entries []Entry) []int {
	n := len(entries)
	if n > chartDays {
		n = chartDays
	}

	series := make([]int, n)
	for i := 0; i < n; i++ {
		series[i] = entries[n-1-i].Count
	}
	return series
}

// DateRangeLabel describes the charted span as "<oldest> - <newest>". Empty
// when the window has fewer than two days.
func DateRangeLabel(entries []Entry) string {
	if len(entries) < 2 {
		return ""
	}
	oldest := entries[min(len(entries)-1, chartDays-1)]
	return oldest.Date + " - " + entries[0].Date
}
