package services

import (
	"errors"
	"strings"
	"time"

	"github.com/arodena/focusfeed/internal/timeframe"
)

var (
	ErrExportFromDateInvalid = errors.New("export invalid from date")
	ErrExportToDateInvalid   = errors.New("export invalid to date")
	ErrExportRangeInvalid    = errors.New("export invalid range")
)

// ParseExportRange turns optional raw date-key bounds into a closed range.
// Empty bounds stay nil, which the repository treats as open-ended.
func ParseExportRange(rawFrom string, rawTo string) (*time.Time, *time.Time, error) {
	fromRaw := strings.TrimSpace(rawFrom)
	toRaw := strings.TrimSpace(rawTo)

	var from *time.Time
	if fromRaw != "" {
		parsedFrom, err := timeframe.ParseDateKey(fromRaw)
		if err != nil {
			return nil, nil, ErrExportFromDateInvalid
		}
		from = &parsedFrom
	}

	var to *time.Time
	if toRaw != "" {
		parsedTo, err := timeframe.ParseDateKey(toRaw)
		if err != nil {
			return nil, nil, ErrExportToDateInvalid
		}
		endOfDay := timeframe.EndOfDay(parsedTo)
		to = &endOfDay
	}

	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, ErrExportRangeInvalid
	}

	return from, to, nil
}
