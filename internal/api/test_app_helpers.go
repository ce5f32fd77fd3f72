package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/arodena/focusfeed/internal/db"
	"github.com/arodena/focusfeed/internal/timeframe"
)

// testNow pins the handlers' clock to a mid-week Wednesday noon Eastern,
// so range assertions hold no matter when the suite actually runs.
var testNow = time.Date(2026, time.January, 28, 17, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	return newTestAppWithClock(t, timeframe.FixedClock{Instant: testNow})
}

func newTestAppWithClock(t *testing.T, clock timeframe.Clock) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "focusfeed-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, "test-secret-key", false, clock)

	app := fiber.New()
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app, database
}

func jsonRequest(t *testing.T, method string, path string, payload any, cookie *http.Cookie) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode request payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	request.Header.Set("Accept", "application/json")
	if cookie != nil {
		request.AddCookie(cookie)
	}
	return request
}

func performRequest(t *testing.T, app *fiber.App, request *http.Request) *http.Response {
	t.Helper()
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("perform request %s %s: %v", request.Method, request.URL.Path, err)
	}
	return response
}

func decodeResponse(t *testing.T, response *http.Response) map[string]any {
	t.Helper()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	payload := map[string]any{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("decode response body %q: %v", string(raw), err)
	}
	return payload
}

func responseCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

// registerTestUser creates an account through the public endpoint and
// returns the auth cookie the way a client would hold it.
func registerTestUser(t *testing.T, app *fiber.App, email string, displayName string, password string) *http.Cookie {
	t.Helper()

	response := performRequest(t, app, jsonRequest(t, http.MethodPost, "/api/auth/register", map[string]any{
		"email":        email,
		"display_name": displayName,
		"password":     password,
	}, nil))
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: expected status 201, got %d", email, response.StatusCode)
	}

	cookie := responseCookie(response.Cookies(), authCookieName)
	if cookie == nil || cookie.Value == "" {
		t.Fatalf("register %s: expected auth cookie", email)
	}
	return cookie
}

func logTestSession(t *testing.T, app *fiber.App, cookie *http.Cookie, startedAt string, minutes int, task string) string {
	t.Helper()

	response := performRequest(t, app, jsonRequest(t, http.MethodPost, "/api/sessions", map[string]any{
		"started_at":       startedAt,
		"duration_minutes": minutes,
		"task":             task,
	}, cookie))
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("log session: expected status 201, got %d", response.StatusCode)
	}

	payload := decodeResponse(t, response)
	session, ok := payload["session"].(map[string]any)
	if !ok {
		t.Fatalf("log session: missing session payload: %v", payload)
	}
	publicID, _ := session["public_id"].(string)
	if publicID == "" {
		t.Fatalf("log session: expected public_id, got %v", session)
	}
	return publicID
}
