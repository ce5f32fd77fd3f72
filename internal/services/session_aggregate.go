package services

import (
	"sort"
	"time"

	"github.com/arodena/focusfeed/internal/chart"
	"github.com/arodena/focusfeed/internal/models"
	"github.com/arodena/focusfeed/internal/timeframe"
)

// BucketKeyFor maps a session start to its bucket-start date key in the
// reference zone: the day itself, its Monday, or the first of its month.
func BucketKeyFor(startedAt time.Time, granularity chart.Granularity) string {
	switch granularity {
	case chart.GranularityWeek:
		return timeframe.FormatDateKey(timeframe.WeekStart(startedAt))
	case chart.GranularityMonth:
		return timeframe.FormatDateKey(timeframe.MonthStart(startedAt))
	default:
		return timeframe.FormatDateKey(startedAt)
	}
}

// AggregateSessionCounts rolls sessions up into sparse per-bucket counts,
// ascending by bucket key. Buckets without sessions are absent; the chart
// filler synthesizes those.
func AggregateSessionCounts(sessions []models.FocusSession, granularity chart.Granularity) []chart.Point {
	return aggregateSessions(sessions, granularity, func(models.FocusSession) int { return 1 })
}

// AggregateSessionMinutes rolls sessions up into sparse per-bucket focused
// minutes.
func AggregateSessionMinutes(sessions []models.FocusSession, granularity chart.Granularity) []chart.Point {
	return aggregateSessions(sessions, granularity, func(session models.FocusSession) int {
		return session.DurationMinutes
	})
}

func aggregateSessions(sessions []models.FocusSession, granularity chart.Granularity, weigh func(models.FocusSession) int) []chart.Point {
	totals := make(map[string]int, len(sessions))
	for _, session := range sessions {
		totals[BucketKeyFor(session.StartedAt, granularity)] += weigh(session)
	}

	points := make([]chart.Point, 0, len(totals))
	for key, total := range totals {
		points = append(points, chart.Point{Date: key, Count: total})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}
