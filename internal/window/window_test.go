package window

import (
	"testing"
	"time"

	"quitlog/internal/dates"
)

var today = time.Date(2026, 8, 31, 14, 0, 0, 0, time.Local)

func TestDays_WindowSize(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		want  int
	}{
		{"start today", today, 1},
		{"start in the future", today.AddDate(0, 0, 7), 1},
		{"start five days ago", today.AddDate(0, 0, -5), 6},
		{"start thirty days ago", today.AddDate(0, 0, -30), 31},
		{"start a hundred days ago caps at 31", today.AddDate(0, 0, -100), 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := Days(tt.start, today, nil)
			if len(entries) != tt.want {
				t.Errorf("window length = %d, want %d", len(entries), tt.want)
			}
		})
	}
}

func TestDays_Ordering(t *testing.T) {
	entries := Days(today.AddDate(0, 0, -10), today, nil)
	if len(entries) != 11 {
		t.Fatalf("window length = %d, want 11", len(entries))
	}

	if entries[0].Day != "Today" {
		t.Errorf("offset 0 labeled %q, want \"Today\"", entries[0].Day)
	}
	if entries[0].Key != dates.DayKey(today) {
		t.Errorf("offset 0 key = %q, want today's key %q", entries[0].Key, dates.DayKey(today))
	}

	oldest := entries[len(entries)-1]
	wantOldest := dates.DayKey(today.AddDate(0, 0, -10))
	if oldest.Key != wantOldest {
		t.Errorf("oldest entry key = %q, want %q", oldest.Key, wantOldest)
	}
	if oldest.Day == "Today" {
		t.Error("oldest entry labeled \"Today\"")
	}

	// Strictly newest to oldest.
	for i := 1; i < len(entries); i++ {
		if !entries[i].Time.Before(entries[i-1].Time) {
			t.Errorf("entry %d (%v) not older than entry %d (%v)",
				i, entries[i].Time, i-1, entries[i-1].Time)
		}
	}
}

func TestDays_JoinsCounts(t *testing.T) {
	threeDaysAgo := today.AddDate(0, 0, -3)
	counts := map[string]int{
		dates.DayKey(threeDaysAgo): 3,
	}

	entries := Days(today.AddDate(0, 0, -5), today, counts)

	for _, e := range entries {
		want := 0
		if e.Key == dates.DayKey(threeDaysAgo) {
			want = 3
		}
		if e.Count != want {
			t.Errorf("entry %s count = %d, want %d", e.Key, e.Count, want)
		}
	}
}

func TestChartSeries(t *testing.T) {
	counts := map[string]int{}
	for i := 0; i <= 20; i++ {
		counts[dates.DayKey(today.AddDate(0, 0, -i))] = i
	}
	entries := Days(today.AddDate(0, 0, -20), today, counts)

	series := ChartSeries(entries)
	if len(series) != 10 {
		t.Fatalf("series length = %d, want 10", len(series))
	}

	// Ten most recent days, oldest first: counts 9 down to 0.
	for i, got := range series {
		want := 9 - i
		if got != want {
			t.Errorf("series[%d] = %d, want %d", i, got, want)
		}
	}
}

func TestChartSeries_ShortWindow(t *testing.T) {
	entries := Days(today.AddDate(0, 0, -2), today, nil)
	series := ChartSeries(entries)
	if len(series) != 3 {
		t.Errorf("series length = %d, want 3", len(series))
	}
}

func TestDateRangeLabel(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		want  string
	}{
		{
			name:  "single day window has no label",
			start: today,
			want:  "",
		},
		{
			name:  "short window spans whole window",
			start: today.AddDate(0, 0, -3),
			want:  dates.FormatDisplay(today.AddDate(0, 0, -3)) + " - " + dates.FormatDisplay(today),
		},
		{
			name:  "long window spans only the charted days",
			start: today.AddDate(0, 0, -30),
			want:  dates.FormatDisplay(today.AddDate(0, 0, -9)) + " - " + dates.FormatDisplay(today),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := Days(tt.start, today, nil)
			if got := DateRangeLabel(entries); got != tt.want {
				t.Errorf("DateRangeLabel = %q, want %q", got, tt.want)
			}
		})
	}
}
