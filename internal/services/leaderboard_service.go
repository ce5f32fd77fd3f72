package services

import (
	"time"

	"github.com/arodena/focusfeed/internal/models"
)

const DefaultLeaderboardSize = 20

type LeaderboardReader interface {
	SumMinutesByUser(from *time.Time, to *time.Time, limit int) ([]models.LeaderboardRow, error)
}

type LeaderboardService struct {
	sessions LeaderboardReader
}

func NewLeaderboardService(sessions LeaderboardReader) *LeaderboardService {
	return &LeaderboardService{sessions: sessions}
}

type LeaderboardEntry struct {
	Rank         int    `json:"rank"`
	UserID       uint   `json:"user_id"`
	DisplayName  string `json:"display_name"`
	TotalMinutes int    `json:"total_minutes"`
	SessionCount int    `json:"session_count"`
}

// Build ranks users by focused minutes inside the range. Equal totals share
// a rank; the next distinct total skips past the tie ("1224" style).
func (service *LeaderboardService) Build(from *time.Time, to *time.Time, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}

	rows, err := service.sessions.SumMinutesByUser(from, to, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(rows))
	for index, row := range rows {
		rank := index + 1
		if index > 0 && row.TotalMinutes == rows[index-1].TotalMinutes {
			rank = entries[index-1].Rank
		}
		entries = append(entries, LeaderboardEntry{
			Rank:         rank,
			UserID:       row.UserID,
			DisplayName:  row.DisplayName,
			TotalMinutes: row.TotalMinutes,
			SessionCount: row.SessionCount,
		})
	}
	return entries, nil
}
