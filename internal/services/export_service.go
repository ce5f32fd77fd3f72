package services

import (
	"strconv"
	"time"

	"github.com/arodena/focusfeed/internal/models"
	"github.com/arodena/focusfeed/internal/timeframe"
)

var ExportCSVHeaders = []string{
	"Date",
	"Started at",
	"Duration (minutes)",
	"Task",
	"Notes",
}

type ExportSessionReader interface {
	ListByUserRange(userID uint, from *time.Time, to *time.Time) ([]models.FocusSession, error)
}

type ExportService struct {
	sessions ExportSessionReader
}

type ExportSummary struct {
	TotalSessions int
	TotalMinutes  int
	HasData       bool
	DateFrom      string
	DateTo        string
}

type ExportJSONEntry struct {
	Date            string `json:"date"`
	StartedAt       string `json:"started_at"`
	DurationMinutes int    `json:"duration_minutes"`
	Task            string `json:"task"`
	Notes           string `json:"notes"`
}

type ExportCSVRow struct {
	Date            string
	StartedAt       string
	DurationMinutes int
	Task            string
	Notes           string
}

func NewExportService(sessions ExportSessionReader) *ExportService {
	return &ExportService{sessions: sessions}
}

func (service *ExportService) BuildSummary(userID uint, from *time.Time, to *time.Time) (ExportSummary, error) {
	sessions, err := service.sessions.ListByUserRange(userID, from, to)
	if err != nil {
		return ExportSummary{}, err
	}
	if len(sessions) == 0 {
		return ExportSummary{}, nil
	}

	first := sessions[0].StartedAt
	last := sessions[0].StartedAt
	totalMinutes := 0
	for _, session := range sessions {
		if session.StartedAt.Before(first) {
			first = session.StartedAt
		}
		if session.StartedAt.After(last) {
			last = session.StartedAt
		}
		totalMinutes += session.DurationMinutes
	}

	return ExportSummary{
		TotalSessions: len(sessions),
		TotalMinutes:  totalMinutes,
		HasData:       true,
		DateFrom:      timeframe.FormatDateKey(first),
		DateTo:        timeframe.FormatDateKey(last),
	}, nil
}

func (service *ExportService) BuildJSONEntries(userID uint, from *time.Time, to *time.Time) ([]ExportJSONEntry, error) {
	sessions, err := service.sessions.ListByUserRange(userID, from, to)
	if err != nil {
		return nil, err
	}

	entries := make([]ExportJSONEntry, 0, len(sessions))
	for _, session := range sessions {
		entries = append(entries, ExportJSONEntry{
			Date:            timeframe.FormatDateKey(session.StartedAt),
			StartedAt:       session.StartedAt.In(timeframe.ReferenceZone).Format(time.RFC3339),
			DurationMinutes: session.DurationMinutes,
			Task:            session.Task,
			Notes:           session.Notes,
		})
	}
	return entries, nil
}

func (service *ExportService) BuildCSVRows(userID uint, from *time.Time, to *time.Time) ([]ExportCSVRow, error) {
	sessions, err := service.sessions.ListByUserRange(userID, from, to)
	if err != nil {
		return nil, err
	}

	rows := make([]ExportCSVRow, 0, len(sessions))
	for _, session := range sessions {
		rows = append(rows, ExportCSVRow{
			Date:            timeframe.FormatDateKey(session.StartedAt),
			StartedAt:       session.StartedAt.In(timeframe.ReferenceZone).Format(time.RFC3339),
			DurationMinutes: session.DurationMinutes,
			Task:            session.Task,
			Notes:           session.Notes,
		})
	}
	return rows, nil
}

func (row ExportCSVRow) Columns() []string {
	return []string{
		row.Date,
		row.StartedAt,
		strconv.Itoa(row.DurationMinutes),
		row.Task,
		row.Notes,
	}
}
