package timeframe

import (
	"errors"
	"regexp"
	"strconv"
	"time"
)

const DateKeyLayout = "2006-01-02"

// ErrInvalidFormat marks a date key that does not match YYYY-MM-DD or names
// an impossible calendar date.
var ErrInvalidFormat = errors.New("invalid date key")

var dateKeyPattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// ParseDateKey turns YYYY-MM-DD into reference-zone local midnight. The
// components are assembled directly instead of going through a generic
// layout parse so the calendar day can never shift to a neighboring day.
func ParseDateKey(value string) (time.Time, error) {
	matches := dateKeyPattern.FindStringSubmatch(value)
	if matches == nil {
		return time.Time{}, ErrInvalidFormat
	}

	year, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, ErrInvalidFormat
	}
	month, err := strconv.Atoi(matches[2])
	if err != nil {
		return time.Time{}, ErrInvalidFormat
	}
	day, err := strconv.Atoi(matches[3])
	if err != nil {
		return time.Time{}, ErrInvalidFormat
	}

	if month < 1 || month > 12 {
		return time.Time{}, ErrInvalidFormat
	}
	if day < 1 || day > daysInMonth(year, time.Month(month)) {
		return time.Time{}, ErrInvalidFormat
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, ReferenceZone), nil
}

// FormatDateKey serializes an instant's reference-zone calendar day as
// YYYY-MM-DD. FormatDateKey(ParseDateKey(s)) == s for every valid s.
func FormatDateKey(value time.Time) string {
	return value.In(ReferenceZone).Format(DateKeyLayout)
}

func daysInMonth(year int, month time.Month) int {
	// Day zero of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
