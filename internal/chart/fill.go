package chart

import (
	"strings"
	"time"

	"github.com/arodena/focusfeed/internal/timeframe"
)

type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// ParseGranularity recognizes a bucket granularity tag.
func ParseGranularity(raw string) (Granularity, bool) {
	switch Granularity(strings.TrimSpace(strings.ToLower(raw))) {
	case GranularityDay:
		return GranularityDay, true
	case GranularityWeek:
		return GranularityWeek, true
	case GranularityMonth:
		return GranularityMonth, true
	default:
		return "", false
	}
}

// Point is one chart bucket: the bucket-start date key and its count.
type Point struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Fill merges sparse aggregation rows with the full enumerated bucket list
// for [start, end], synthesizing zero counts for absent buckets. The output
// always matches the enumeration in length and order; duplicate sparse keys
// resolve last-write-wins.
func Fill(sparse []Point, start time.Time, end time.Time, granularity Granularity) []Point {
	counts := make(map[string]int, len(sparse))
	for _, point := range sparse {
		counts[normalizeBucketKey(point.Date)] = point.Count
	}

	buckets := enumerateBuckets(start, end, granularity)
	dense := make([]Point, 0, len(buckets))
	for _, bucket := range buckets {
		dense = append(dense, Point{Date: bucket, Count: counts[bucket]})
	}
	return dense
}

func enumerateBuckets(start time.Time, end time.Time, granularity Granularity) []string {
	switch granularity {
	case GranularityWeek:
		return timeframe.EnumerateWeekStarts(start, end)
	case GranularityMonth:
		return timeframe.EnumerateMonthStarts(start, end)
	default:
		return timeframe.EnumerateDays(start, end)
	}
}

// normalizeBucketKey trims a timestamp suffix down to the bare date,
// defending against aggregation rows that return datetimes instead of dates.
func normalizeBucketKey(raw string) string {
	key := strings.TrimSpace(raw)
	if separator := strings.IndexAny(key, "T "); separator >= 0 {
		key = key[:separator]
	}
	return key
}
