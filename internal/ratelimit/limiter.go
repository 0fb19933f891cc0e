// Package ratelimit provides rate limiting for admin login attempts.
package ratelimit

import (
	"crypto/sha256"
	"encoding/hex"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Clock interface for testing time-dependent behavior.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Config holds rate limit configuration.
type Config struct {
	MaxAttempts  int           // Failed attempts per username before lockout (default: 5)
	Lockout      time.Duration // Lockout duration after max attempts (default: 5m)
	MaxIPPerHour int           // Login attempts per IP per hour (default: 30)

	// Clock for testing (nil uses real time)
	Clock Clock
}

// DefaultConfig returns production-ready defaults.
func DefaultConfig() *Config {
	return &Config{
		MaxAttempts:  5,
		Lockout:      5 * time.Minute,
		MaxIPPerHour: 30,
	}
}

// LimitResult contains the result of a rate limit check.
type LimitResult struct {
	Allowed    bool
	RetryAfter time.Duration
	Reason     string // For logging
}

// entry tracks attempt counts and timestamps.
type entry struct {
	count    int
	firstAt  time.Time
	lastAt   time.Time
	lockedAt time.Time // zero if not locked
}

// Limiter throttles login attempts per username and per IP.
type Limiter struct {
	config *Config
	clock  Clock
	mu     sync.RWMutex
	byUser map[string]*entry
	byIP   map[string]*entry
}

func New(cfg *Config) *Limiter {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	clock := cfg.Clock
	if clock == nil {
		clock = realClock{}
	}
	return &Limiter{
		config: cfg,
		clock:  clock,
		byUser: make(map[string]*entry),
		byIP:   make(map[string]*entry),
	}
}

// CheckLogin checks if a login attempt is allowed. Does NOT record the
// attempt — call RecordFailure after the backend rejects it.
func (l *Limiter) CheckLogin(username, ip string) LimitResult {
	now := l.clock.Now()
	userKey := l.hashKey("login:user:", normalize(username))
	ipKey := l.hashKey("login:ip:", ip)

	l.mu.RLock()
	defer l.mu.RUnlock()

	if e := l.byUser[userKey]; e != nil {
		if !e.lockedAt.IsZero() {
			elapsed := now.Sub(e.lockedAt)
			if elapsed < l.config.Lockout {
				return LimitResult{
					Allowed:    false,
					RetryAfter: l.config.Lockout - elapsed,
					Reason:     "lockout",
				}
			}
		} else if e.count >= l.config.MaxAttempts {
			return LimitResult{
				Allowed:    false,
				RetryAfter: l.config.Lockout,
				Reason:     "max_attempts",
			}
		}
	}

	if e := l.byIP[ipKey]; e != nil {
		if now.Sub(e.firstAt) < time.Hour && e.count >= l.config.MaxIPPerHour {
			return LimitResult{
				Allowed:    false,
				RetryAfter: time.Hour - now.Sub(e.firstAt),
				Reason:     "ip_hourly_limit",
			}
		}
	}

	return LimitResult{Allowed: true}
}

// RecordFailure records a rejected login. Returns true if this attempt
// triggered the lockout.
func (l *Limiter) RecordFailure(username, ip string) (lockedOut bool) {
	now := l.clock.Now()
	userKey := l.hashKey("login:user:", normalize(username))
	ipKey := l.hashKey("login:ip:", ip)

	l.mu.Lock()
	defer l.mu.Unlock()

	e := l.byUser[userKey]
	switch {
	case e == nil:
		l.byUser[userKey] = &entry{count: 1, firstAt: now, lastAt: now}
	case !e.lockedAt.IsZero() && now.Sub(e.lockedAt) >= l.config.Lockout:
		// Lockout expired, start over
		l.byUser[userKey] = &entry{count: 1, firstAt: now, lastAt: now}
	default:
		e.count++
		e.lastAt = now
		if e.count >= l.config.MaxAttempts && e.lockedAt.IsZero() {
			e.lockedAt = now
			lockedOut = true
		}
	}

	e = l.byIP[ipKey]
	if e == nil || now.Sub(e.firstAt) >= time.Hour {
		l.byIP[ipKey] = &entry{count: 1, firstAt: now, lastAt: now}
	} else {
		e.count++
		e.lastAt = now
	}

	return lockedOut
}

// Reset clears the failure counter after a successful login.
func (l *Limiter) Reset(username string) {
	userKey := l.hashKey("login:user:", normalize(username))
	l.mu.Lock()
	delete(l.byUser, userKey)
	l.mu.Unlock()
}

func (l *Limiter) hashKey(prefix, value string) string {
	hash := sha256.Sum256([]byte(value))
	return prefix + hex.EncodeToString(hash[:8])
}

// normalize lowercases the username to prevent case-based bypass.
func normalize(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// GetClientIP extracts the client IP from a request. X-Forwarded-For is
// honored only when the console sits behind a trusted proxy.
func GetClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			parts := strings.Split(xff, ",")
			return strings.TrimSpace(parts[len(parts)-1])
		}
		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			return strings.TrimSpace(xri)
		}
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// LogRateLimitExceeded logs a throttled login without the raw username.
func LogRateLimitExceeded(username, ip, reason string) {
	masked := normalize(username)
	if len(masked) > 2 {
		masked = masked[:2] + "***"
	} else {
		masked = "***"
	}
	log.Warn().
		Str("event", "rate_limit_exceeded").
		Str("username", masked).
		Str("ip", ip).
		Str("reason", reason).
		Msg("Login rate limit exceeded")
}
