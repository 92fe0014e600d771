package httpserver_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"corchet/web-api/internal/config"
	domain "corchet/web-api/internal/domain/message"
	repo "corchet/web-api/internal/infrastructure/repository/message"
	"corchet/web-api/internal/interfaces/httpserver"
)

func newTestServer() http.Handler {
	cfg := &config.Config{
		ServiceName:     "corchet-web",
		Environment:     "test",
		HTTPHost:        "127.0.0.1",
		HTTPPort:        0,
		SecretKey:       "test-secret",
		ShutdownTimeout: time.Second,
	}
	service := domain.NewService(repo.NewInMemoryRepository(), zerolog.Nop())
	return httpserver.New(cfg, zerolog.Nop(), service).Handler()
}

func submitMessage(handler http.Handler, name, email, body string) *httptest.ResponseRecorder {
	form := url.Values{"name": {name}, "email": {email}, "message": {body}}
	req, _ := http.NewRequest("POST", "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func statsCount(t *testing.T, handler http.Handler) int64 {
	t.Helper()
	req, _ := http.NewRequest("GET", "/api/stats", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/stats returned %d", w.Code)
	}
	var response map[string]int64
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse stats response: %v", err)
	}
	return response["messages"]
}

func TestSite_SubmitThenRedirect(t *testing.T) {
	handler := newTestServer()

	w := submitMessage(handler, "Alice", "", "Hi")
	if w.Code != http.StatusSeeOther {
		t.Fatalf("Expected status 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/contact?sent=1" {
		t.Errorf("Expected redirect to /contact?sent=1, got %q", loc)
	}
	if got := statsCount(t, handler); got != 1 {
		t.Errorf("Expected 1 stored message, got %d", got)
	}
}

func TestSite_InvalidSubmissionNotStored(t *testing.T) {
	handler := newTestServer()

	w := submitMessage(handler, "", "", "Hi")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected re-rendered form with status 200, got %d", w.Code)
	}
	if got := statsCount(t, handler); got != 0 {
		t.Errorf("Expected store to be unchanged, got %d messages", got)
	}
}

func TestSite_StatsAfterThreeSubmissions(t *testing.T) {
	handler := newTestServer()

	for i := 0; i < 3; i++ {
		if w := submitMessage(handler, "Alice", "", "Hi"); w.Code != http.StatusSeeOther {
			t.Fatalf("Submission %d returned %d", i+1, w.Code)
		}
	}
	if got := statsCount(t, handler); got != 3 {
		t.Errorf("Expected 3 stored messages, got %d", got)
	}
}

func TestSite_HomeListsFiveMostRecent(t *testing.T) {
	handler := newTestServer()

	for i := 1; i <= 7; i++ {
		if w := submitMessage(handler, fmt.Sprintf("sender-%d", i), "", "hello"); w.Code != http.StatusSeeOther {
			t.Fatalf("Submission %d returned %d", i, w.Code)
		}
	}

	req, _ := http.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET / returned %d", w.Code)
	}
	body := w.Body.String()

	for i := 3; i <= 7; i++ {
		if !strings.Contains(body, fmt.Sprintf("sender-%d", i)) {
			t.Errorf("Expected sender-%d on the home page", i)
		}
	}
	for i := 1; i <= 2; i++ {
		if strings.Contains(body, fmt.Sprintf("sender-%d<", i)) {
			t.Errorf("sender-%d should have rotated off the home page", i)
		}
	}
	if strings.Index(body, "sender-7") > strings.Index(body, "sender-6") {
		t.Error("Expected messages in descending identifier order")
	}
}

func TestSite_Health(t *testing.T) {
	handler := newTestServer()

	req, _ := http.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("GET /healthz returned %d", w.Code)
	}
}

func TestSite_RequestIDEchoed(t *testing.T) {
	handler := newTestServer()

	req, _ := http.NewRequest("GET", "/healthz", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "req-123" {
		t.Errorf("Expected request id to be echoed, got %q", got)
	}

	req, _ = http.NewRequest("GET", "/healthz", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected a request id to be minted when absent")
	}
}

func TestSite_UnmatchedRouteNotFound(t *testing.T) {
	handler := newTestServer()

	req, _ := http.NewRequest("GET", "/nope", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}
