package timeframe

import "time"

// EnumerateDays lists every calendar day from start to end inclusive as
// ascending date keys. Reversed ranges yield an empty slice.
func EnumerateDays(start time.Time, end time.Time) []string {
	keys := make([]string, 0)
	last := DateOf(end)
	for day := DateOf(start); !day.After(last); day = day.AddDate(0, 0, 1) {
		keys = append(keys, FormatDateKey(day))
	}
	return keys
}

// EnumerateWeekStarts lists the Monday of every week overlapping
// [start, end]. The first Monday is found by snapping start backward, so a
// week straddling a month boundary is still keyed by its Monday even when
// that Monday falls in the previous month.
func EnumerateWeekStarts(start time.Time, end time.Time) []string {
	keys := make([]string, 0)
	last := DateOf(end)
	if last.Before(DateOf(start)) {
		return keys
	}
	for week := WeekStart(start); !week.After(last); week = week.AddDate(0, 0, 7) {
		keys = append(keys, FormatDateKey(week))
	}
	return keys
}

// EnumerateMonthStarts lists the first of every month from start's month to
// end's month inclusive.
func EnumerateMonthStarts(start time.Time, end time.Time) []string {
	keys := make([]string, 0)
	last := DateOf(end)
	if last.Before(DateOf(start)) {
		return keys
	}
	for month := MonthStart(start); !month.After(last); month = month.AddDate(0, 1, 0) {
		keys = append(keys, FormatDateKey(month))
	}
	return keys
}
