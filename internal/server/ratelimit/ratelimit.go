// Package ratelimit provides per-client token bucket rate limiting for the HTTP API.
package ratelimit

import (
	"math"
	"sync"
	"time"
)

// pruneEvery is the number of Allow calls between idle bucket sweeps
const pruneEvery = 1024

type bucket struct {
	capacity float64
	rate     float64 // tokens per second
	tokens   float64
	last     time.Time
}

// take refills the bucket up to now and consumes one token if available
func (b *bucket) take(now time.Time) (bool, time.Duration) {
	b.tokens = math.Min(b.capacity, b.tokens+now.Sub(b.last).Seconds()*b.rate)
	b.last = now

	if b.tokens >= 1 {
		b.tokens--
		return true, 0
	}
	wait := (1 - b.tokens) / b.rate
	return false, time.Duration(math.Ceil(wait * float64(time.Second)))
}

// Decision is the outcome of a rate limit check
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Limiter tracks one bucket per client and rule
type Limiter struct {
	cfg *Config
	now func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket
	calls   int
}

// Option configures a Limiter
type Option func(*Limiter)

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

// New creates a limiter. A nil config disables limiting.
func New(cfg *Config, opts ...Option) *Limiter {
	if cfg == nil {
		cfg = &Config{}
	}
	l := &Limiter{cfg: cfg, now: time.Now, buckets: make(map[string]*bucket)}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow checks and records one request from client
func (l *Limiter) Allow(client, method, path string) Decision {
	if !l.cfg.Enabled || l.cfg.Whitelist[client] {
		return Decision{Allowed: true}
	}

	rule := l.cfg.match(method, path)
	if rule.Limit <= 0 || rule.Window <= 0 {
		return Decision{Allowed: true}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.calls++
	if l.calls%pruneEvery == 0 {
		l.prune(now)
	}

	key := client + " " + rule.Method + " " + rule.Path
	b, ok := l.buckets[key]
	if !ok {
		capacity := rule.Burst
		if capacity <= 0 {
			capacity = rule.Limit
		}
		b = &bucket{
			capacity: float64(capacity),
			rate:     float64(rule.Limit) / rule.Window.Seconds(),
			tokens:   float64(capacity),
			last:     now,
		}
		l.buckets[key] = b
	}

	allowed, retry := b.take(now)
	return Decision{
		Allowed:    allowed,
		Limit:      rule.Limit,
		Remaining:  int(b.tokens),
		RetryAfter: retry,
	}
}

// prune drops buckets idle for longer than the configured TTL; callers hold l.mu
func (l *Limiter) prune(now time.Time) {
	if l.cfg.IdleTTL <= 0 {
		return
	}
	for key, b := range l.buckets {
		if now.Sub(b.last) > l.cfg.IdleTTL {
			delete(l.buckets, key)
		}
	}
}

// Len returns the number of live buckets
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
