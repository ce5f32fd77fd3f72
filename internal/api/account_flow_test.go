package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/arodena/focusfeed/internal/models"
)

// stepClock lets a test move the handlers' time forward by hand.
type stepClock struct {
	instant time.Time
}

func (clock *stepClock) Now() time.Time { return clock.instant }

func TestLoginLockoutAfterRepeatedFailures(t *testing.T) {
	app, _ := newTestApp(t)
	registerTestUser(t, app, "ada@example.com", "ada", "Sup3rSecret")

	badLogin := map[string]any{"email": "ada@example.com", "password": "WrongPass1"}
	for attempt := 0; attempt < 5; attempt++ {
		response := performRequest(t, app, jsonRequest(t, http.MethodPost, "/api/auth/login", badLogin, nil))
		if response.StatusCode != http.StatusUnauthorized {
			t.Fatalf("attempt %d: expected status 401, got %d", attempt+1, response.StatusCode)
		}
	}

	goodLogin := map[string]any{"email": "ada@example.com", "password": "Sup3rSecret"}
	response := performRequest(t, app, jsonRequest(t, http.MethodPost, "/api/auth/login", goodLogin, nil))
	if response.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected status 429 once locked out, got %d", response.StatusCode)
	}
}

func TestLoginLockoutLiftsWithHandlerClock(t *testing.T) {
	clock := &stepClock{instant: testNow}
	app, _ := newTestAppWithClock(t, clock)
	registerTestUser(t, app, "ada@example.com", "ada", "Sup3rSecret")

	badLogin := map[string]any{"email": "ada@example.com", "password": "WrongPass1"}
	for attempt := 0; attempt < 5; attempt++ {
		performRequest(t, app, jsonRequest(t, http.MethodPost, "/api/auth/login", badLogin, nil))
	}

	goodLogin := map[string]any{"email": "ada@example.com", "password": "Sup3rSecret"}
	response := performRequest(t, app, jsonRequest(t, http.MethodPost, "/api/auth/login", goodLogin, nil))
	if response.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected status 429 once locked out, got %d", response.StatusCode)
	}

	// The limiter must follow the injected clock: once it moves past the
	// window, the old failures no longer count.
	clock.instant = testNow.Add(16 * time.Minute)
	response = performRequest(t, app, jsonRequest(t, http.MethodPost, "/api/auth/login", goodLogin, nil))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 after window elapsed, got %d", response.StatusCode)
	}
}

func TestUpdateProfileSettings(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerTestUser(t, app, "ada@example.com", "ada", "Sup3rSecret")
	registerTestUser(t, app, "grace@example.com", "grace", "Sup3rSecret")

	newName := "ada_lovelace"
	response := performRequest(t, app, jsonRequest(t, http.MethodPatch, "/api/settings/profile", map[string]any{"display_name": newName}, cookie))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	payload := decodeResponse(t, response)
	user, _ := payload["user"].(map[string]any)
	if user["display_name"] != newName {
		t.Fatalf("expected display_name=%q, got %v", newName, user["display_name"])
	}

	response = performRequest(t, app, jsonRequest(t, http.MethodPatch, "/api/settings/profile", map[string]any{"display_name": "grace"}, cookie))
	if response.StatusCode != http.StatusConflict {
		t.Fatalf("expected status 409 for taken name, got %d", response.StatusCode)
	}

	response = performRequest(t, app, jsonRequest(t, http.MethodPatch, "/api/settings/profile", map[string]any{"display_name": "n o"}, cookie))
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for invalid name, got %d", response.StatusCode)
	}
}

func TestAdminStatsRequiresAdminRole(t *testing.T) {
	app, database := newTestApp(t)
	cookie := registerTestUser(t, app, "ada@example.com", "ada", "Sup3rSecret")
	logTestSession(t, app, cookie, recentInstant(1), 25, "deep work")

	response := performRequest(t, app, jsonRequest(t, http.MethodGet, "/api/admin/stats", nil, cookie))
	if response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status 403 for regular user, got %d", response.StatusCode)
	}

	if err := database.Model(&models.User{}).Where("display_name = ?", "ada").Update("role", models.RoleAdmin).Error; err != nil {
		t.Fatalf("promote user: %v", err)
	}

	response = performRequest(t, app, jsonRequest(t, http.MethodGet, "/api/admin/stats", nil, cookie))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for admin, got %d", response.StatusCode)
	}
	payload := decodeResponse(t, response)
	stats, _ := payload["stats"].(map[string]any)
	if stats["total_users"] != float64(1) {
		t.Fatalf("expected total_users=1, got %v", stats["total_users"])
	}
	if stats["total_sessions"] != float64(1) {
		t.Fatalf("expected total_sessions=1, got %v", stats["total_sessions"])
	}
}
