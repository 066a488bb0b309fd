package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BellaCucina/bistro-backend/internal/middleware"
	"golang.org/x/time/rate"
)

// TestThrottle_BurstExhaustion verifies requests beyond the burst are
// rejected with 429 while another client IP is unaffected.
func TestThrottle_BurstExhaustion(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	// No refill within the test.
	handler := middleware.Throttle(rate.Every(time.Hour), 2)(inner)

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/reservations", nil)
		req.RemoteAddr = ip + ":41234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := send("10.0.0.1"); code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", code)
	}
	if code := send("10.0.0.1"); code != http.StatusOK {
		t.Fatalf("second request: expected 200, got %d", code)
	}
	if code := send("10.0.0.1"); code != http.StatusTooManyRequests {
		t.Errorf("third request: expected 429, got %d", code)
	}

	// A different client is unaffected.
	if code := send("10.0.0.2"); code != http.StatusOK {
		t.Errorf("other IP: expected 200, got %d", code)
	}
}

// TestThrottle_ForwardedFor verifies the limiter keys on the first
// X-Forwarded-For hop when present.
func TestThrottle_ForwardedFor(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.Throttle(rate.Every(time.Hour), 1)(inner)

	send := func(fwd string) int {
		req := httptest.NewRequest(http.MethodPost, "/reservations", nil)
		req.RemoteAddr = "127.0.0.1:41234"
		req.Header.Set("X-Forwarded-For", fwd)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := send("203.0.113.7, 10.0.0.1"); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if code := send("203.0.113.7, 10.0.0.9"); code != http.StatusTooManyRequests {
		t.Errorf("same forwarded client: expected 429, got %d", code)
	}
	if code := send("203.0.113.8"); code != http.StatusOK {
		t.Errorf("different forwarded client: expected 200, got %d", code)
	}
}
