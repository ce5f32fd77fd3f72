package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/arodena/focusfeed/internal/chart"
	"github.com/arodena/focusfeed/internal/timeframe"
)

var errInvalidRangeQuery = errors.New("invalid range query")

// resolveRequestRange reads the period/start/end query parameters. A named
// period wins; custom requires both explicit bounds; no parameters at all
// means all-time.
func (handler *Handler) resolveRequestRange(c *fiber.Ctx) (timeframe.Range, error) {
	rawPeriod := strings.TrimSpace(c.Query("period"))
	startKey := strings.TrimSpace(c.Query("start"))
	endKey := strings.TrimSpace(c.Query("end"))

	if rawPeriod == "" {
		if startKey == "" && endKey == "" {
			return timeframe.Range{}, nil
		}
		rawPeriod = string(timeframe.PeriodCustom)
	}

	period, ok := timeframe.ParsePeriod(rawPeriod)
	if !ok {
		return timeframe.Range{}, errInvalidRangeQuery
	}
	if period == timeframe.PeriodCustom {
		timeRange, err := handler.calculator.CustomRange(startKey, endKey)
		if err != nil {
			return timeframe.Range{}, errInvalidRangeQuery
		}
		return timeRange, nil
	}
	return handler.calculator.Resolve(period), nil
}

func requestGranularity(c *fiber.Ctx) (chart.Granularity, error) {
	raw := strings.TrimSpace(c.Query("granularity"))
	if raw == "" {
		return chart.GranularityDay, nil
	}
	granularity, ok := chart.ParseGranularity(raw)
	if !ok {
		return chart.GranularityDay, errInvalidRangeQuery
	}
	return granularity, nil
}

// rangeCacheSegments flattens the resolved range into stable cache key
// segments so equal requests share an entry.
func rangeCacheSegments(timeRange timeframe.Range) []string {
	start := "open"
	if timeRange.Start != nil {
		start = timeframe.FormatDateKey(*timeRange.Start)
	}
	end := "open"
	if timeRange.End != nil {
		end = timeframe.FormatDateKey(*timeRange.End)
	}
	return []string{start, end}
}
