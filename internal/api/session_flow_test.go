package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/arodena/focusfeed/internal/timeframe"
)

// recentInstant is relative to the pinned test clock, never the wall
// clock, so "now minus two hours" stays inside the same reference-zone
// week on every run.
func recentInstant(hoursAgo int) string {
	return testNow.Add(-time.Duration(hoursAgo) * time.Hour).In(timeframe.ReferenceZone).Format(time.RFC3339)
}

func TestCreateAndListSessions(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerTestUser(t, app, "ada@example.com", "ada", "Sup3rSecret")

	logTestSession(t, app, cookie, recentInstant(3), 25, "deep work")
	logTestSession(t, app, cookie, recentInstant(1), 50, "code review")

	response := performRequest(t, app, jsonRequest(t, http.MethodGet, "/api/sessions", nil, cookie))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	payload := decodeResponse(t, response)
	sessions, _ := payload["sessions"].([]any)
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
}

func TestCreateSessionValidation(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerTestUser(t, app, "ada@example.com", "ada", "Sup3rSecret")

	cases := []struct {
		name    string
		payload map[string]any
	}{
		{"zero duration", map[string]any{"started_at": recentInstant(1), "duration_minutes": 0, "task": "x"}},
		{"blank task", map[string]any{"started_at": recentInstant(1), "duration_minutes": 25, "task": "  "}},
		{"future start", map[string]any{
			"started_at":       testNow.Add(2 * time.Hour).Format(time.RFC3339),
			"duration_minutes": 25,
			"task":             "x",
		}},
		{"bad timestamp", map[string]any{"started_at": "yesterday", "duration_minutes": 25, "task": "x"}},
	}

	for _, testCase := range cases {
		response := performRequest(t, app, jsonRequest(t, http.MethodPost, "/api/sessions", testCase.payload, cookie))
		if response.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: expected status 400, got %d", testCase.name, response.StatusCode)
		}
	}
}

func TestGetSessionByPublicID(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerTestUser(t, app, "ada@example.com", "ada", "Sup3rSecret")
	publicID := logTestSession(t, app, cookie, recentInstant(1), 25, "deep work")

	response := performRequest(t, app, jsonRequest(t, http.MethodGet, "/api/sessions/"+publicID, nil, cookie))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	payload := decodeResponse(t, response)
	session, _ := payload["session"].(map[string]any)
	if session["task"] != "deep work" {
		t.Fatalf("expected task in payload, got %v", session)
	}
	if _, ok := session["like_count"]; !ok {
		t.Fatalf("expected like_count in payload, got %v", session)
	}

	response = performRequest(t, app, jsonRequest(t, http.MethodGet, "/api/sessions/nonexistent-id", nil, cookie))
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404 for unknown public id, got %d", response.StatusCode)
	}
}

func TestMyStatsEndpoint(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerTestUser(t, app, "ada@example.com", "ada", "Sup3rSecret")
	logTestSession(t, app, cookie, recentInstant(2), 25, "deep work")
	logTestSession(t, app, cookie, recentInstant(1), 50, "review")

	response := performRequest(t, app, jsonRequest(t, http.MethodGet, "/api/stats/me?period=this-week&granularity=day", nil, cookie))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	payload := decodeResponse(t, response)
	stats, _ := payload["stats"].(map[string]any)
	if stats["total_sessions"] != float64(2) {
		t.Fatalf("expected total_sessions=2, got %v", stats["total_sessions"])
	}
	if stats["total_minutes"] != float64(75) {
		t.Fatalf("expected total_minutes=75, got %v", stats["total_minutes"])
	}
	series, _ := stats["series"].([]any)
	if len(series) != 7 {
		t.Fatalf("expected 7 daily buckets for this week, got %d", len(series))
	}
}

func TestMyStatsRejectsBadQuery(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerTestUser(t, app, "ada@example.com", "ada", "Sup3rSecret")

	response := performRequest(t, app, jsonRequest(t, http.MethodGet, "/api/stats/me?period=fortnight", nil, cookie))
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unknown period, got %d", response.StatusCode)
	}

	response = performRequest(t, app, jsonRequest(t, http.MethodGet, "/api/stats/me?period=custom&start=2026-02-30&end=2026-03-01", nil, cookie))
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for impossible date, got %d", response.StatusCode)
	}

	response = performRequest(t, app, jsonRequest(t, http.MethodGet, "/api/stats/me?granularity=hourly", nil, cookie))
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unknown granularity, got %d", response.StatusCode)
	}
}

func TestStatsReflectNewSessionsAfterCacheInvalidation(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerTestUser(t, app, "ada@example.com", "ada", "Sup3rSecret")
	logTestSession(t, app, cookie, recentInstant(2), 25, "deep work")

	response := performRequest(t, app, jsonRequest(t, http.MethodGet, "/api/stats/me?period=this-week", nil, cookie))
	stats, _ := decodeResponse(t, response)["stats"].(map[string]any)
	if stats["total_sessions"] != float64(1) {
		t.Fatalf("expected total_sessions=1, got %v", stats["total_sessions"])
	}

	// A write between two reads must not serve the stale cached payload.
	logTestSession(t, app, cookie, recentInstant(1), 25, "more work")

	response = performRequest(t, app, jsonRequest(t, http.MethodGet, "/api/stats/me?period=this-week", nil, cookie))
	stats, _ = decodeResponse(t, response)["stats"].(map[string]any)
	if stats["total_sessions"] != float64(2) {
		t.Fatalf("expected total_sessions=2 after new session, got %v", stats["total_sessions"])
	}
}

func TestStatsSplitRecentSessionsAcrossWeekBoundary(t *testing.T) {
	// Monday 01:02 in the reference zone: a session two hours earlier
	// belongs to last week, one thirty minutes earlier to this week.
	mondayNight := time.Date(2026, time.February, 2, 6, 2, 0, 0, time.UTC)
	app, _ := newTestAppWithClock(t, timeframe.FixedClock{Instant: mondayNight})
	cookie := registerTestUser(t, app, "ada@example.com", "ada", "Sup3rSecret")

	lastWeek := mondayNight.Add(-2 * time.Hour).In(timeframe.ReferenceZone).Format(time.RFC3339)
	thisWeek := mondayNight.Add(-30 * time.Minute).In(timeframe.ReferenceZone).Format(time.RFC3339)
	logTestSession(t, app, cookie, lastWeek, 25, "late finish")
	logTestSession(t, app, cookie, thisWeek, 25, "early start")

	response := performRequest(t, app, jsonRequest(t, http.MethodGet, "/api/stats/me?period=this-week", nil, cookie))
	stats, _ := decodeResponse(t, response)["stats"].(map[string]any)
	if stats["total_sessions"] != float64(1) {
		t.Fatalf("expected total_sessions=1 this week, got %v", stats["total_sessions"])
	}

	response = performRequest(t, app, jsonRequest(t, http.MethodGet, "/api/stats/me?period=last-week", nil, cookie))
	stats, _ = decodeResponse(t, response)["stats"].(map[string]any)
	if stats["total_sessions"] != float64(1) {
		t.Fatalf("expected total_sessions=1 last week, got %v", stats["total_sessions"])
	}
}

func TestDeleteSessionScopedToOwner(t *testing.T) {
	app, _ := newTestApp(t)
	adaCookie := registerTestUser(t, app, "ada@example.com", "ada", "Sup3rSecret")
	graceCookie := registerTestUser(t, app, "grace@example.com", "grace", "Sup3rSecret")
	logTestSession(t, app, adaCookie, recentInstant(1), 25, "deep work")

	response := performRequest(t, app, jsonRequest(t, http.MethodDelete, "/api/sessions/by-id/1", nil, graceCookie))
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404 for non-owner delete, got %d", response.StatusCode)
	}

	response = performRequest(t, app, jsonRequest(t, http.MethodDelete, "/api/sessions/by-id/1", nil, adaCookie))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for owner delete, got %d", response.StatusCode)
	}
}
