package dates

import (
	"math"
	"time"
)

// dayKeyLayout is the identity form for a calendar day. Keys are computed in
// local time; two times on the same local calendar day share a key.
const dayKeyLayout = "2006-01-02"

// DayKey returns the ledger key for t's calendar day.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// ParseDayKey parses a day key back into midnight local time.
func ParseDayKey(s string) (time.Time, error) {
	return time.ParseInLocation(dayKeyLayout, s, time.Local)
}

// FormatDisplay returns the short "Jan 5" form shown in the logbook.
func FormatDisplay(t time.Time) string {
	return t.Format("Jan 2")
}

// WeekdayName returns the full weekday name for day-list labels.
func WeekdayName(t time.Time) string {
	return t.Weekday().String()
}

// DaysBetween counts whole calendar days from start to end, never negative.
// Midnights are compared so time-of-day and DST shifts don't skew the count.
func DaysBetween(start, end time.Time) int {
	s := midnight(start)
	e := midnight(end)
	days := int(math.Round(e.Sub(s).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
