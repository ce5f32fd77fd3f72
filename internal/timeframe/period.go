package timeframe

import (
	"strings"
	"time"
)

type Period string

const (
	PeriodThisWeek  Period = "this-week"
	PeriodLastWeek  Period = "last-week"
	PeriodThisMonth Period = "this-month"
	PeriodThisYear  Period = "this-year"
	PeriodLastYear  Period = "last-year"
	PeriodAllTime   Period = "all-time"
	PeriodCustom    Period = "custom"
)

// ParsePeriod recognizes a named period tag. Unknown tags are rejected so
// handlers can fall back to their own default.
func ParsePeriod(raw string) (Period, bool) {
	switch Period(strings.TrimSpace(strings.ToLower(raw))) {
	case PeriodThisWeek:
		return PeriodThisWeek, true
	case PeriodLastWeek:
		return PeriodLastWeek, true
	case PeriodThisMonth:
		return PeriodThisMonth, true
	case PeriodThisYear:
		return PeriodThisYear, true
	case PeriodLastYear:
		return PeriodLastYear, true
	case PeriodAllTime:
		return PeriodAllTime, true
	case PeriodCustom:
		return PeriodCustom, true
	default:
		return "", false
	}
}

// Range holds resolved period boundaries. Nil pointers mean the side is
// open, which is how all-time is represented.
type Range struct {
	Start *time.Time
	End   *time.Time
}

// Calculator resolves named periods against an injectable clock.
type Calculator struct {
	clock Clock
}

func NewCalculator(clock Clock) *Calculator {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Calculator{clock: clock}
}

// Now reports the current instant expressed in the reference zone.
func (calculator *Calculator) Now() time.Time {
	return calculator.clock.Now().In(ReferenceZone)
}

// Resolve maps a named period onto concrete boundaries. PeriodCustom yields
// an open range; callers supply explicit boundaries through CustomRange.
func (calculator *Calculator) Resolve(period Period) Range {
	now := calculator.Now()
	switch period {
	case PeriodThisWeek:
		return closedRange(WeekStart(now), WeekEnd(now))
	case PeriodLastWeek:
		return closedRange(LastWeekStart(now), LastWeekEnd(now))
	case PeriodThisMonth:
		return closedRange(MonthStart(now), MonthEnd(now))
	case PeriodThisYear:
		return closedRange(YearStart(now), YearEnd(now))
	case PeriodLastYear:
		return closedRange(LastYearStart(now), LastYearEnd(now))
	default:
		return Range{}
	}
}

// CustomRange resolves explicit YYYY-MM-DD boundaries. The start becomes
// local midnight and the end becomes 23:59:59.999 of its day.
func (calculator *Calculator) CustomRange(startKey string, endKey string) (Range, error) {
	start, err := ParseDateKey(startKey)
	if err != nil {
		return Range{}, err
	}
	end, err := ParseDateKey(endKey)
	if err != nil {
		return Range{}, err
	}
	return closedRange(start, EndOfDay(end)), nil
}

func closedRange(start time.Time, end time.Time) Range {
	return Range{Start: &start, End: &end}
}
