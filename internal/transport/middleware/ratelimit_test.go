package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func hit(h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/get-game", nil)
	req.RemoteAddr = remoteAddr
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_AllowsUnderLimit(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()
	handler := rl.Limit(10)(okHandler())

	for i := range 10 {
		assert.Equal(t, http.StatusOK, hit(handler, "1.2.3.4:1234").Code, "request %d should be allowed", i)
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()
	handler := rl.Limit(5)(okHandler())

	for range 5 {
		require.Equal(t, http.StatusOK, hit(handler, "1.2.3.4:1234").Code)
	}

	rec := hit(handler, "1.2.3.4:1234")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "13", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, rec.Body.String())
}

func TestRateLimiter_PortIgnored(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()
	handler := rl.Limit(1)(okHandler())

	require.Equal(t, http.StatusOK, hit(handler, "1.2.3.4:1000").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(handler, "1.2.3.4:2000").Code)
}

func TestRateLimiter_DifferentIPsIndependent(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()
	handler := rl.Limit(2)(okHandler())

	for range 3 {
		hit(handler, "1.1.1.1:1234")
	}

	assert.Equal(t, http.StatusOK, hit(handler, "2.2.2.2:5678").Code)
}

func TestRateLimiter_TokenRefill(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	rl := newRateLimiter(time.Hour, clock.Now)
	defer rl.Stop()

	// 60 per minute = 1 per second
	handler := rl.Limit(60)(okHandler())

	for range 60 {
		hit(handler, "3.3.3.3:1234")
	}
	require.Equal(t, http.StatusTooManyRequests, hit(handler, "3.3.3.3:1234").Code)

	clock.Advance(1100 * time.Millisecond)

	assert.Equal(t, http.StatusOK, hit(handler, "3.3.3.3:1234").Code)
}

func TestRateLimiter_Disabled(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()
	handler := rl.Limit(0)(okHandler())

	for range 100 {
		require.Equal(t, http.StatusOK, hit(handler, "4.4.4.4:1").Code)
	}
}

func TestRateLimiter_SweepDropsIdleBuckets(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	rl := newRateLimiter(time.Hour, clock.Now)
	defer rl.Stop()
	handler := rl.Limit(1)(okHandler())

	hit(handler, "5.5.5.5:1")
	hit(handler, "6.6.6.6:1")
	clock.Advance(idleBucketTTL / 2)
	hit(handler, "6.6.6.6:1")
	clock.Advance(idleBucketTTL/2 + time.Second)

	rl.sweep(clock.Now())

	_, idle := rl.buckets.Load("5.5.5.5")
	_, active := rl.buckets.Load("6.6.6.6")
	assert.False(t, idle, "idle bucket should be dropped")
	assert.True(t, active, "recently used bucket should survive")
}

func TestRateLimiter_StopTwice(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(time.Minute)
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}
