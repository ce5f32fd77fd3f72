package timeframe

import (
	"math"
	"time"
)

// All period boundaries are computed against US Eastern civil time modeled
// as a single fixed UTC offset. Converting through the process-local zone
// shifts calendar days near month and year boundaries, so nothing in this
// package may consult time.Local.
const referenceOffsetSeconds = -5 * 60 * 60

var ReferenceZone = time.FixedZone("EST", referenceOffsetSeconds)

const millisecondsPerDay = 24 * 60 * 60 * 1000

// DateOf truncates an instant to midnight of its calendar day in the
// reference zone.
func DateOf(value time.Time) time.Time {
	localized := value.In(ReferenceZone)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, ReferenceZone)
}

// EndOfDay returns 23:59:59.999 of the instant's calendar day in the
// reference zone.
func EndOfDay(value time.Time) time.Time {
	localized := value.In(ReferenceZone)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 23, 59, 59, 999_000_000, ReferenceZone)
}

// WeekStart returns Monday 00:00:00.000 of the week containing now.
// Sundays snap back six days so the week is always Monday through Sunday.
func WeekStart(now time.Time) time.Time {
	today := DateOf(now)
	offset := int(today.Weekday()) - int(time.Monday)
	if today.Weekday() == time.Sunday {
		offset = 6
	}
	return today.AddDate(0, 0, -offset)
}

// WeekEnd returns Sunday 23:59:59.999 of the week containing now.
func WeekEnd(now time.Time) time.Time {
	return EndOfDay(WeekStart(now).AddDate(0, 0, 6))
}

func LastWeekStart(now time.Time) time.Time {
	return WeekStart(now).AddDate(0, 0, -7)
}

func LastWeekEnd(now time.Time) time.Time {
	return EndOfDay(LastWeekStart(now).AddDate(0, 0, 6))
}

func MonthStart(now time.Time) time.Time {
	localized := now.In(ReferenceZone)
	return time.Date(localized.Year(), localized.Month(), 1, 0, 0, 0, 0, ReferenceZone)
}

func MonthEnd(now time.Time) time.Time {
	return EndOfDay(MonthStart(now).AddDate(0, 1, -1))
}

func YearStart(now time.Time) time.Time {
	localized := now.In(ReferenceZone)
	return time.Date(localized.Year(), time.January, 1, 0, 0, 0, 0, ReferenceZone)
}

func YearEnd(now time.Time) time.Time {
	localized := now.In(ReferenceZone)
	return time.Date(localized.Year(), time.December, 31, 23, 59, 59, 999_000_000, ReferenceZone)
}

func LastYearStart(now time.Time) time.Time {
	localized := now.In(ReferenceZone)
	return time.Date(localized.Year()-1, time.January, 1, 0, 0, 0, 0, ReferenceZone)
}

func LastYearEnd(now time.Time) time.Time {
	localized := now.In(ReferenceZone)
	return time.Date(localized.Year()-1, time.December, 31, 23, 59, 59, 999_000_000, ReferenceZone)
}

// DaysBetween counts calendar days between the two instants' reference-zone
// dates, ignoring time of day. Identical days yield 0; the order of the
// arguments does not matter.
func DaysBetween(first time.Time, second time.Time) int {
	difference := DateOf(second).Sub(DateOf(first)).Milliseconds()
	if difference < 0 {
		difference = -difference
	}
	return int(math.Ceil(float64(difference) / float64(millisecondsPerDay)))
}
