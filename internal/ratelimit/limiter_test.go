package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestLimiter() (*Limiter, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	cfg := DefaultConfig()
	cfg.Clock = clock
	return New(cfg), clock
}

func TestLockoutAfterMaxAttempts(t *testing.T) {
	l, _ := newTestLimiter()

	for i := 0; i < 4; i++ {
		assert.True(t, l.CheckLogin("admin", "1.2.3.4").Allowed)
		locked := l.RecordFailure("admin", "1.2.3.4")
		assert.False(t, locked, "attempt %d must not lock", i+1)
	}

	assert.True(t, l.RecordFailure("admin", "1.2.3.4"), "fifth failure triggers lockout")

	res := l.CheckLogin("admin", "1.2.3.4")
	assert.False(t, res.Allowed)
	assert.Equal(t, "lockout", res.Reason)
	assert.Greater(t, res.RetryAfter, time.Duration(0))
}

func TestLockoutExpires(t *testing.T) {
	l, clock := newTestLimiter()

	for i := 0; i < 5; i++ {
		l.RecordFailure("admin", "1.2.3.4")
	}
	assert.False(t, l.CheckLogin("admin", "1.2.3.4").Allowed)

	clock.Advance(5 * time.Minute)
	assert.True(t, l.CheckLogin("admin", "1.2.3.4").Allowed)
}

func TestResetClearsCounter(t *testing.T) {
	l, _ := newTestLimiter()

	for i := 0; i < 4; i++ {
		l.RecordFailure("admin", "1.2.3.4")
	}
	l.Reset("admin")

	for i := 0; i < 4; i++ {
		assert.True(t, l.CheckLogin("admin", "1.2.3.4").Allowed)
		l.RecordFailure("admin", "1.2.3.4")
	}
}

func TestUsernameCaseDoesNotBypass(t *testing.T) {
	l, _ := newTestLimiter()

	for i := 0; i < 5; i++ {
		l.RecordFailure("Admin", "1.2.3.4")
	}
	assert.False(t, l.CheckLogin("ADMIN", "1.2.3.4").Allowed)
	assert.False(t, l.CheckLogin("admin", "1.2.3.4").Allowed)
}

func TestIPHourlyLimit(t *testing.T) {
	l, clock := newTestLimiter()

	// Different usernames, one IP.
	for i := 0; i < 30; i++ {
		l.RecordFailure(string(rune('a'+i%26))+"user", "9.9.9.9")
	}
	res := l.CheckLogin("fresh", "9.9.9.9")
	assert.False(t, res.Allowed)
	assert.Equal(t, "ip_hourly_limit", res.Reason)

	clock.Advance(time.Hour)
	assert.True(t, l.CheckLogin("fresh", "9.9.9.9").Allowed)
}

func TestGetClientIP(t *testing.T) {
	r := httptest.NewRequest("POST", "/login", nil)
	r.RemoteAddr = "10.0.0.1:54321"
	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	assert.Equal(t, "10.0.0.1", GetClientIP(r, false), "XFF ignored without a trusted proxy")
	assert.Equal(t, "10.0.0.1", GetClientIP(r, true), "last XFF hop wins")

	r.Header.Del("X-Forwarded-For")
	r.Header.Set("X-Real-IP", "203.0.113.7")
	assert.Equal(t, "203.0.113.7", GetClientIP(r, true))
}
