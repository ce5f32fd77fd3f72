package services

import (
	"errors"
	"testing"

	"github.com/arodena/focusfeed/internal/timeframe"
)

func TestParseExportRangeOpenBounds(t *testing.T) {
	from, to, err := ParseExportRange("", "  ")
	if err != nil {
		t.Fatalf("ParseExportRange() unexpected error: %v", err)
	}
	if from != nil || to != nil {
		t.Fatalf("expected open range, got from=%v to=%v", from, to)
	}
}

func TestParseExportRangeClosedBounds(t *testing.T) {
	from, to, err := ParseExportRange("2026-01-01", "2026-01-31")
	if err != nil {
		t.Fatalf("ParseExportRange() unexpected error: %v", err)
	}
	if from == nil || timeframe.FormatDateKey(*from) != "2026-01-01" {
		t.Fatalf("expected from 2026-01-01, got %v", from)
	}
	if to == nil || timeframe.FormatDateKey(*to) != "2026-01-31" {
		t.Fatalf("expected to on 2026-01-31, got %v", to)
	}
	if to.Hour() != 23 || to.Minute() != 59 {
		t.Fatalf("expected end bound at end of day, got %v", to)
	}
}

func TestParseExportRangeInvalidDates(t *testing.T) {
	if _, _, err := ParseExportRange("2026-02-30", ""); !errors.Is(err, ErrExportFromDateInvalid) {
		t.Fatalf("expected ErrExportFromDateInvalid, got %v", err)
	}
	if _, _, err := ParseExportRange("", "31-01-2026"); !errors.Is(err, ErrExportToDateInvalid) {
		t.Fatalf("expected ErrExportToDateInvalid, got %v", err)
	}
}

func TestParseExportRangeReversedBounds(t *testing.T) {
	if _, _, err := ParseExportRange("2026-02-01", "2026-01-01"); !errors.Is(err, ErrExportRangeInvalid) {
		t.Fatalf("expected ErrExportRangeInvalid, got %v", err)
	}
}
