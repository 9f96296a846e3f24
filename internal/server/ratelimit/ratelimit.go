// Package ratelimit throttles API clients per endpoint. Each client and
// endpoint pair gets a token bucket that refills continuously over the
// configured window, so analysis bursts are absorbed without letting a single
// client monopolize the grammar service or the scoring engines.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Info reports the outcome of one rate-limit decision. The server copies it
// into the X-RateLimit-* response headers.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// bucket pairs a rate.Limiter with the figures needed to fill in Info.
// rate.Limiter only exposes its refill rate and current tokens, not the
// request-per-window limit the headers advertise.
type bucket struct {
	limiter  *rate.Limiter
	limit    int
	capacity float64
}

// status reports the remaining whole tokens and projected refill times
// without consuming anything.
func (b *bucket) status(now time.Time) (remaining int, resetTime time.Time, retryAfter time.Duration) {
	tokens := b.limiter.TokensAt(now)
	if tokens < 0 {
		tokens = 0
	}
	if tokens > b.capacity {
		tokens = b.capacity
	}

	refillPerSecond := float64(b.limiter.Limit())
	if refillPerSecond <= 0 {
		return int(tokens), now, 0
	}

	resetTime = now.Add(time.Duration((b.capacity - tokens) / refillPerSecond * float64(time.Second)))
	if tokens < 1 {
		retryAfter = time.Duration((1 - tokens) / refillPerSecond * float64(time.Second))
	}
	return int(tokens), resetTime, retryAfter
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// Limiter manages per-client, per-endpoint token buckets.
type Limiter struct {
	mu            sync.RWMutex
	buckets       map[string]*bucket
	config        *Config
	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
	lastAccess    map[string]time.Time
	accessMu      sync.RWMutex
}

// NewLimiter creates a rate limiter. A nil config gets sane defaults.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
		}
	}

	l := &Limiter{
		buckets:    make(map[string]*bucket),
		config:     config,
		lastAccess: make(map[string]time.Time),
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanup()
	}

	return l
}

// Allow decides whether a request from clientID may proceed against the
// given endpoint and method. Whitelisted clients and unlimited endpoints
// (the health check) short-circuit with a zero Limit.
func (l *Limiter) Allow(clientID string, endpoint string, method string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}
	if l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{}
	}

	policy := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if policy == nil {
		policy = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
		}
	}
	if policy.Limit <= 0 || policy.Window <= 0 {
		return true, Info{Allowed: true}
	}

	key := clientID + ":" + endpoint + ":" + method
	b := l.getBucket(key, policy)

	l.accessMu.Lock()
	l.lastAccess[key] = time.Now()
	l.accessMu.Unlock()

	allowed := b.limiter.Allow()

	now := time.Now()
	remaining, resetTime, retryAfter := b.status(now)
	info := Info{
		Allowed:   allowed,
		Limit:     policy.Limit,
		Remaining: remaining,
		ResetTime: resetTime,
	}
	if !allowed {
		info.RetryAfter = retryAfter
	}
	return allowed, info
}

// getBucket returns the bucket for key, creating it on first sight.
func (l *Limiter) getBucket(key string, policy *EndpointConfig) *bucket {
	l.mu.RLock()
	b, exists := l.buckets[key]
	l.mu.RUnlock()
	if exists {
		return b
	}

	burst := policy.Burst
	if burst <= 0 {
		burst = policy.Limit
	}
	refillPerSecond := float64(policy.Limit) / policy.Window.Seconds()

	b = &bucket{
		limiter:  rate.NewLimiter(rate.Limit(refillPerSecond), burst),
		limit:    policy.Limit,
		capacity: float64(burst),
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if existing, exists := l.buckets[key]; exists {
		return existing
	}
	l.buckets[key] = b
	return b
}

func (l *Limiter) cleanup() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.dropIdleBuckets()
		case <-l.cleanupStop:
			return
		}
	}
}

// dropIdleBuckets forgets clients that have been silent for over an hour.
func (l *Limiter) dropIdleBuckets() {
	cutoff := time.Now().Add(-1 * time.Hour)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.accessMu.Lock()
	defer l.accessMu.Unlock()

	for key, last := range l.lastAccess {
		if last.Before(cutoff) {
			delete(l.buckets, key)
			delete(l.lastAccess, key)
		}
	}
}

// Stop halts the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
	}
	if l.cleanupStop != nil {
		close(l.cleanupStop)
	}
}
