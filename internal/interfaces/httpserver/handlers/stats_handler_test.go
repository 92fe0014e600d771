package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"corchet/web-api/internal/interfaces/httpserver/handlers"
)

func setupStatsTestRouter(handler *handlers.StatsHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/stats", handler.Stats)
	return r
}

func TestStatsHandler_Stats(t *testing.T) {
	mockService := &MockMessageService{
		CountFunc: func(ctx context.Context) (int64, error) {
			return 3, nil
		},
	}
	handler := handlers.NewStatsHandler(mockService, zerolog.Nop())
	router := setupStatsTestRouter(handler)

	req, _ := http.NewRequest("GET", "/api/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Expected JSON content type, got %q", ct)
	}

	var response map[string]int64
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["messages"] != 3 {
		t.Errorf("Expected messages 3, got %d", response["messages"])
	}
}

func TestStatsHandler_Stats_StorageError(t *testing.T) {
	mockService := &MockMessageService{
		CountFunc: func(ctx context.Context) (int64, error) {
			return 0, errors.New("disk error")
		},
	}
	handler := handlers.NewStatsHandler(mockService, zerolog.Nop())
	router := setupStatsTestRouter(handler)

	req, _ := http.NewRequest("GET", "/api/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}
}
