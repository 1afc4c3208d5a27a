package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apierrors "github.com/seralin/creatorlink/internal/errors"
)

func newTestRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(mw...)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"request_id":     GetRequestIDFromContext(c),
			"correlation_id": GetCorrelationIDFromContext(c),
		})
	})
	return router
}

func TestRequestIDGenerated(t *testing.T) {
	router := newTestRouter(RequestID())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)

	got := w.Header().Get("X-Request-ID")
	if got == "" {
		t.Fatal("Expected X-Request-ID header to be set")
	}
	if _, err := uuid.Parse(got); err != nil {
		t.Fatalf("Expected generated request ID to be a UUID, got %q: %v", got, err)
	}
}

func TestRequestIDPassthrough(t *testing.T) {
	router := newTestRouter(RequestID())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "upstream-id-123")
	router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "upstream-id-123" {
		t.Fatalf("Expected upstream request ID to be preserved, got %q", got)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body["request_id"] != "upstream-id-123" {
		t.Fatalf("Expected request ID in context, got %q", body["request_id"])
	}
}

func TestCorrelationIDFallsBackToRequestID(t *testing.T) {
	router := newTestRouter(RequestID(), CorrelationID())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-abc")
	router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Correlation-ID"); got != "req-abc" {
		t.Fatalf("Expected correlation ID to fall back to request ID, got %q", got)
	}
}

func TestCorrelationIDPassthrough(t *testing.T) {
	router := newTestRouter(RequestID(), CorrelationID())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Correlation-ID", "trace-xyz")
	router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Correlation-ID"); got != "trace-xyz" {
		t.Fatalf("Expected upstream correlation ID to be preserved, got %q", got)
	}
}

func TestCORSAllowedOrigin(t *testing.T) {
	router := newTestRouter(CORS([]string{"https://app.creatorlink.io"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://app.creatorlink.io")
	router.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.creatorlink.io" {
		t.Fatalf("Expected allowed origin to be echoed, got %q", got)
	}
	if w.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Fatal("Expected Access-Control-Allow-Methods to be set")
	}
}

func TestCORSDisallowedOrigin(t *testing.T) {
	router := newTestRouter(CORS([]string{"https://app.creatorlink.io"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	router.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("Expected no CORS headers for disallowed origin, got %q", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(CORS([]string{"*"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://anywhere.example.com")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("Expected 204 for preflight, got %d", w.Code)
	}
}

func TestRespondWithErrorEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), CorrelationID())
	router.GET("/fail", func(c *gin.Context) {
		RespondWithError(c, apierrors.NewInvalidFilterError("min_followers exceeds max_followers"))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	req.Header.Set("X-Request-ID", "req-1")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}

	var resp apierrors.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Error.Code != apierrors.ErrInvalidFilter {
		t.Fatalf("Expected code %q, got %q", apierrors.ErrInvalidFilter, resp.Error.Code)
	}
	if resp.Error.Message != "min_followers exceeds max_followers" {
		t.Fatalf("Unexpected message: %q", resp.Error.Message)
	}
	if resp.RequestID != "req-1" {
		t.Fatalf("Expected request_id req-1, got %q", resp.RequestID)
	}
	if resp.Error.Path != "/fail" || resp.Error.Method != "GET" {
		t.Fatalf("Unexpected path/method: %q %q", resp.Error.Path, resp.Error.Method)
	}
}
