package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Strawberry-Team/calendula-client/internal/config"
)

func newTestLimiter(t *testing.T, perMinute int) *RateLimiter {
	t.Helper()
	rl := NewRateLimiter(config.RateLimitConfig{
		PerMinute:       perMinute,
		CleanupInterval: time.Minute,
		IdleEviction:    10 * time.Minute,
	})
	t.Cleanup(rl.Stop)
	return rl
}

func doRequest(handler http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/form/submit", nil)
	req.RemoteAddr = remoteAddr
	handler.ServeHTTP(rec, req)
	return rec
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimiter_AllowsUnderLimit(t *testing.T) {
	rl := newTestLimiter(t, 10)
	handler := rl.Limit()(okHandler())

	for i := 0; i < 10; i++ {
		rec := doRequest(handler, "1.2.3.4:1234")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should be allowed", i)
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	rl := newTestLimiter(t, 5)
	handler := rl.Limit()(okHandler())

	for i := 0; i < 5; i++ {
		rec := doRequest(handler, "1.2.3.4:1234")
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doRequest(handler, "1.2.3.4:1234")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestRateLimiter_SameHostSharesBucket(t *testing.T) {
	rl := newTestLimiter(t, 2)
	handler := rl.Limit()(okHandler())

	// Different source ports, same host: one bucket.
	doRequest(handler, "1.2.3.4:1111")
	doRequest(handler, "1.2.3.4:2222")

	rec := doRequest(handler, "1.2.3.4:3333")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimiter_DifferentIPsIndependent(t *testing.T) {
	rl := newTestLimiter(t, 2)
	handler := rl.Limit()(okHandler())

	for i := 0; i < 2; i++ {
		doRequest(handler, "1.1.1.1:1234")
	}

	rec := doRequest(handler, "2.2.2.2:5678")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiter_TokenRefill(t *testing.T) {
	rl := newTestLimiter(t, 60) // 1 token per second
	handler := rl.Limit()(okHandler())

	for i := 0; i < 60; i++ {
		doRequest(handler, "3.3.3.3:1234")
	}

	time.Sleep(1100 * time.Millisecond)

	rec := doRequest(handler, "3.3.3.3:1234")
	assert.Equal(t, http.StatusOK, rec.Code)
}
