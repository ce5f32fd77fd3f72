package timeframe

import (
	"testing"
	"time"
)

// Reference instant from the stats dashboard: Sat Jan 31 2026 10:00 Eastern.
func referenceSaturday(t *testing.T) time.Time {
	t.Helper()
	instant, err := time.Parse(time.RFC3339, "2026-01-31T15:00:00Z")
	if err != nil {
		t.Fatalf("parse reference instant: %v", err)
	}
	return instant
}

func TestWeekStartIsMondayOfContainingWeek(t *testing.T) {
	now := referenceSaturday(t)

	start := WeekStart(now)
	if got := FormatDateKey(start); got != "2026-01-26" {
		t.Fatalf("expected week start 2026-01-26, got %s", got)
	}
	if start.Weekday() != time.Monday {
		t.Fatalf("expected Monday, got %s", start.Weekday())
	}
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		t.Fatalf("expected local midnight, got %v", start)
	}
}

func TestWeekEndIsSundayEndOfDay(t *testing.T) {
	now := referenceSaturday(t)

	end := WeekEnd(now)
	if got := FormatDateKey(end); got != "2026-02-01" {
		t.Fatalf("expected week end 2026-02-01, got %s", got)
	}
	if end.In(ReferenceZone).Weekday() != time.Sunday {
		t.Fatalf("expected Sunday, got %s", end.In(ReferenceZone).Weekday())
	}
	localized := end.In(ReferenceZone)
	if localized.Hour() != 23 || localized.Minute() != 59 || localized.Second() != 59 || localized.Nanosecond() != 999_000_000 {
		t.Fatalf("expected 23:59:59.999 local, got %v", localized)
	}
}

func TestWeekAlwaysSpansSevenDays(t *testing.T) {
	// One date per weekday; the Sunday case must snap back, not forward.
	keys := []string{
		"2026-01-26", "2026-01-27", "2026-01-28", "2026-01-29",
		"2026-01-30", "2026-01-31", "2026-02-01",
	}
	for _, key := range keys {
		now, err := ParseDateKey(key)
		if err != nil {
			t.Fatalf("parse %s: %v", key, err)
		}
		start := WeekStart(now)
		end := WeekEnd(now)
		if start.Weekday() != time.Monday {
			t.Fatalf("%s: expected Monday start, got %s", key, start.Weekday())
		}
		if end.In(ReferenceZone).Weekday() != time.Sunday {
			t.Fatalf("%s: expected Sunday end, got %s", key, end.In(ReferenceZone).Weekday())
		}
		if got := DaysBetween(start, end); got != 6 {
			t.Fatalf("%s: expected 6 days between week bounds, got %d", key, got)
		}
	}
}

func TestSundaySnapsBackToPreviousMonday(t *testing.T) {
	sunday, err := ParseDateKey("2026-02-01")
	if err != nil {
		t.Fatalf("parse sunday: %v", err)
	}
	if got := FormatDateKey(WeekStart(sunday)); got != "2026-01-26" {
		t.Fatalf("expected Sunday to belong to the week of 2026-01-26, got %s", got)
	}
}

func TestLastWeekShiftsExactlySevenDays(t *testing.T) {
	now := referenceSaturday(t)

	if got := FormatDateKey(LastWeekStart(now)); got != "2026-01-19" {
		t.Fatalf("expected last week start 2026-01-19, got %s", got)
	}
	if got := FormatDateKey(LastWeekEnd(now)); got != "2026-01-25" {
		t.Fatalf("expected last week end 2026-01-25, got %s", got)
	}
	if LastWeekStart(now).Weekday() != time.Monday {
		t.Fatalf("expected last week to start on Monday")
	}
}

func TestMonthBoundaries(t *testing.T) {
	now := referenceSaturday(t)

	if got := FormatDateKey(MonthStart(now)); got != "2026-01-01" {
		t.Fatalf("expected month start 2026-01-01, got %s", got)
	}
	if got := FormatDateKey(MonthEnd(now)); got != "2026-01-31" {
		t.Fatalf("expected month end 2026-01-31, got %s", got)
	}

	february, err := ParseDateKey("2026-02-10")
	if err != nil {
		t.Fatalf("parse february date: %v", err)
	}
	if got := FormatDateKey(MonthEnd(february)); got != "2026-02-28" {
		t.Fatalf("expected non-leap february to end on the 28th, got %s", got)
	}

	leapFebruary, err := ParseDateKey("2028-02-10")
	if err != nil {
		t.Fatalf("parse leap february date: %v", err)
	}
	if got := FormatDateKey(MonthEnd(leapFebruary)); got != "2028-02-29" {
		t.Fatalf("expected leap february to end on the 29th, got %s", got)
	}
}

func TestYearBoundariesNeverLeakIntoAdjacentYears(t *testing.T) {
	// Jan 31 is the most drift-prone reference date: a zone conversion bug
	// pushes the start into December of the prior year.
	now := referenceSaturday(t)

	start := YearStart(now)
	end := YearEnd(now)
	if start.In(ReferenceZone).Year() != 2026 || end.In(ReferenceZone).Year() != 2026 {
		t.Fatalf("expected both year bounds in 2026, got %v and %v", start, end)
	}
	if got := FormatDateKey(start); got != "2026-01-01" {
		t.Fatalf("expected year start 2026-01-01, got %s", got)
	}
	if got := FormatDateKey(end); got != "2026-12-31" {
		t.Fatalf("expected year end 2026-12-31, got %s", got)
	}
}

func TestLastYearSpansExactlyPriorCalendarYear(t *testing.T) {
	now := referenceSaturday(t)

	if got := FormatDateKey(LastYearStart(now)); got != "2025-01-01" {
		t.Fatalf("expected last year start 2025-01-01, got %s", got)
	}
	if got := FormatDateKey(LastYearEnd(now)); got != "2025-12-31" {
		t.Fatalf("expected last year end 2025-12-31, got %s", got)
	}
}

func TestYearBoundariesAtNewYearsEveAndDay(t *testing.T) {
	tests := []struct {
		name      string
		instant   string
		wantStart string
		wantEnd   string
	}{
		// 2026-01-01T02:00Z is still Dec 31 2025 in the reference zone.
		{name: "utc new year still prior local year", instant: "2026-01-01T02:00:00Z", wantStart: "2025-01-01", wantEnd: "2025-12-31"},
		{name: "local new year", instant: "2026-01-01T05:00:00Z", wantStart: "2026-01-01", wantEnd: "2026-12-31"},
		{name: "local new years eve", instant: "2026-01-01T04:59:59Z", wantStart: "2025-01-01", wantEnd: "2025-12-31"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			instant, err := time.Parse(time.RFC3339, testCase.instant)
			if err != nil {
				t.Fatalf("parse instant: %v", err)
			}
			if got := FormatDateKey(YearStart(instant)); got != testCase.wantStart {
				t.Fatalf("expected year start %s, got %s", testCase.wantStart, got)
			}
			if got := FormatDateKey(YearEnd(instant)); got != testCase.wantEnd {
				t.Fatalf("expected year end %s, got %s", testCase.wantEnd, got)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	monday, err := ParseDateKey("2026-01-26")
	if err != nil {
		t.Fatalf("parse monday: %v", err)
	}

	if got := DaysBetween(monday, monday); got != 0 {
		t.Fatalf("expected 0 for identical instants, got %d", got)
	}
	if got := DaysBetween(monday, monday.AddDate(0, 0, 1)); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := DaysBetween(monday.AddDate(0, 0, 9), monday); got != 9 {
		t.Fatalf("expected reversed arguments to count 9, got %d", got)
	}
	if got := DaysBetween(monday, EndOfDay(monday)); got != 0 {
		t.Fatalf("expected time of day to be ignored, got %d", got)
	}
}
