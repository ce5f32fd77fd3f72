package services

import (
	"time"

	"github.com/arodena/focusfeed/internal/chart"
	"github.com/arodena/focusfeed/internal/models"
	"github.com/arodena/focusfeed/internal/timeframe"
)

type StatsSessionReader interface {
	ListByUserRange(userID uint, from *time.Time, to *time.Time) ([]models.FocusSession, error)
}

type StatsService struct {
	sessions StatsSessionReader
}

func NewStatsService(sessions StatsSessionReader) *StatsService {
	return &StatsService{sessions: sessions}
}

// DashboardStats is the personal statistics payload: totals over the
// requested range plus a dense, zero-filled series for charting.
type DashboardStats struct {
	TotalSessions     int           `json:"total_sessions"`
	TotalMinutes      int           `json:"total_minutes"`
	CurrentStreakDays int           `json:"current_streak_days"`
	LongestStreakDays int           `json:"longest_streak_days"`
	Series            []chart.Point `json:"series"`
	MinuteSeries      []chart.Point `json:"minute_series"`
}

// BuildDashboard resolves totals and dense series for the range. Open
// boundaries fall back to the first session (start) and today (end) so an
// all-time chart still has concrete edges; streaks are always computed
// against the user's full history inside the range.
func (service *StatsService) BuildDashboard(userID uint, timeRange timeframe.Range, granularity chart.Granularity, now time.Time) (DashboardStats, error) {
	sessions, err := service.sessions.ListByUserRange(userID, timeRange.Start, timeRange.End)
	if err != nil {
		return DashboardStats{}, err
	}

	stats := DashboardStats{
		TotalSessions:     len(sessions),
		CurrentStreakDays: CurrentStreakDays(sessions, now),
		LongestStreakDays: LongestStreakDays(sessions),
		Series:            []chart.Point{},
		MinuteSeries:      []chart.Point{},
	}
	for _, session := range sessions {
		stats.TotalMinutes += session.DurationMinutes
	}

	start, end, ok := seriesBounds(sessions, timeRange, now)
	if !ok {
		return stats, nil
	}

	stats.Series = chart.Fill(AggregateSessionCounts(sessions, granularity), start, end, granularity)
	stats.MinuteSeries = chart.Fill(AggregateSessionMinutes(sessions, granularity), start, end, granularity)
	return stats, nil
}

func seriesBounds(sessions []models.FocusSession, timeRange timeframe.Range, now time.Time) (time.Time, time.Time, bool) {
	var start time.Time
	switch {
	case timeRange.Start != nil:
		start = *timeRange.Start
	case len(sessions) > 0:
		start = sessions[0].StartedAt
	default:
		return time.Time{}, time.Time{}, false
	}

	end := timeframe.EndOfDay(now)
	if timeRange.End != nil {
		end = *timeRange.End
	}
	return start, end, true
}
