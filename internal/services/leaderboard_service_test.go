package services

import (
	"errors"
	"testing"
	"time"

	"github.com/arodena/focusfeed/internal/models"
)

type stubLeaderboardReader struct {
	rows      []models.LeaderboardRow
	err       error
	lastLimit int
}

func (stub *stubLeaderboardReader) SumMinutesByUser(from *time.Time, to *time.Time, limit int) ([]models.LeaderboardRow, error) {
	stub.lastLimit = limit
	if stub.err != nil {
		return nil, stub.err
	}
	result := make([]models.LeaderboardRow, len(stub.rows))
	copy(result, stub.rows)
	return result, nil
}

func TestLeaderboardBuildSharesRankOnTies(t *testing.T) {
	reader := &stubLeaderboardReader{rows: []models.LeaderboardRow{
		{UserID: 1, DisplayName: "ada", TotalMinutes: 300, SessionCount: 12},
		{UserID: 2, DisplayName: "grace", TotalMinutes: 200, SessionCount: 8},
		{UserID: 3, DisplayName: "linus", TotalMinutes: 200, SessionCount: 10},
		{UserID: 4, DisplayName: "ken", TotalMinutes: 100, SessionCount: 4},
	}}
	service := NewLeaderboardService(reader)

	entries, err := service.Build(nil, nil, 10)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}

	expectedRanks := []int{1, 2, 2, 4}
	for index, expected := range expectedRanks {
		if entries[index].Rank != expected {
			t.Fatalf("expected rank %d at position %d, got %d", expected, index, entries[index].Rank)
		}
	}
	if entries[0].DisplayName != "ada" || entries[0].TotalMinutes != 300 {
		t.Fatalf("expected ada on top, got %+v", entries[0])
	}
}

func TestLeaderboardBuildDefaultsLimit(t *testing.T) {
	reader := &stubLeaderboardReader{}
	service := NewLeaderboardService(reader)

	if _, err := service.Build(nil, nil, 0); err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	if reader.lastLimit != DefaultLeaderboardSize {
		t.Fatalf("expected default limit %d, got %d", DefaultLeaderboardSize, reader.lastLimit)
	}
}

func TestLeaderboardBuildPropagatesError(t *testing.T) {
	service := NewLeaderboardService(&stubLeaderboardReader{err: errors.New("boom")})

	if _, err := service.Build(nil, nil, 5); err == nil {
		t.Fatalf("expected reader error to propagate")
	}
}
