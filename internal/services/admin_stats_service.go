package services

import (
	"time"

	"github.com/arodena/focusfeed/internal/chart"
	"github.com/arodena/focusfeed/internal/models"
	"github.com/arodena/focusfeed/internal/timeframe"
)

type AdminUserReader interface {
	ListAll() ([]models.User, error)
	CountAll() (int64, error)
}

type AdminSessionReader interface {
	ListAllRange(from *time.Time, to *time.Time) ([]models.FocusSession, error)
	CountAll() (int64, error)
}

type AdminStatsService struct {
	users    AdminUserReader
	sessions AdminSessionReader
}

func NewAdminStatsService(users AdminUserReader, sessions AdminSessionReader) *AdminStatsService {
	return &AdminStatsService{users: users, sessions: sessions}
}

// SiteStats is the admin dashboard payload: lifetime totals plus dense
// signup and session series for the requested range.
type SiteStats struct {
	TotalUsers    int64         `json:"total_users"`
	TotalSessions int64         `json:"total_sessions"`
	TotalMinutes  int           `json:"total_minutes"`
	SignupSeries  []chart.Point `json:"signup_series"`
	SessionSeries []chart.Point `json:"session_series"`
}

func (service *AdminStatsService) BuildSiteStats(timeRange timeframe.Range, granularity chart.Granularity, now time.Time) (SiteStats, error) {
	totalUsers, err := service.users.CountAll()
	if err != nil {
		return SiteStats{}, err
	}
	totalSessions, err := service.sessions.CountAll()
	if err != nil {
		return SiteStats{}, err
	}

	sessions, err := service.sessions.ListAllRange(timeRange.Start, timeRange.End)
	if err != nil {
		return SiteStats{}, err
	}

	stats := SiteStats{
		TotalUsers:    totalUsers,
		TotalSessions: totalSessions,
		SignupSeries:  []chart.Point{},
		SessionSeries: []chart.Point{},
	}
	for _, session := range sessions {
		stats.TotalMinutes += session.DurationMinutes
	}

	start, end, ok := seriesBounds(sessions, timeRange, now)
	if !ok {
		return stats, nil
	}

	stats.SessionSeries = chart.Fill(AggregateSessionCounts(sessions, granularity), start, end, granularity)

	users, err := service.users.ListAll()
	if err != nil {
		return SiteStats{}, err
	}
	stats.SignupSeries = chart.Fill(aggregateSignups(users, timeRange, granularity), start, end, granularity)
	return stats, nil
}

func aggregateSignups(users []models.User, timeRange timeframe.Range, granularity chart.Granularity) []chart.Point {
	totals := make(map[string]int, len(users))
	for _, user := range users {
		if timeRange.Start != nil && user.CreatedAt.Before(*timeRange.Start) {
			continue
		}
		if timeRange.End != nil && user.CreatedAt.After(*timeRange.End) {
			continue
		}
		totals[BucketKeyFor(user.CreatedAt, granularity)]++
	}

	points := make([]chart.Point, 0, len(totals))
	for key, total := range totals {
		points = append(points, chart.Point{Date: key, Count: total})
	}
	return points
}
