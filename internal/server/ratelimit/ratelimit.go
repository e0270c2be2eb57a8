// Package ratelimit provides per-client rate limiting using a token bucket.
// The search endpoint fans out to paid AI collaborators, so it gets a much
// stricter budget than plain reads.
package ratelimit

import (
	"sync"
	"time"
)

// TokenBucket allows a steady request rate with burst capacity.
type TokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// allow consumes a token when one is available.
func (tb *TokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed.Seconds()*tb.refillRate)
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// Config controls the limiter.
type Config struct {
	// RequestsPerMinute is the sustained per-client budget.
	RequestsPerMinute int
	// Burst is the bucket capacity; defaults to RequestsPerMinute.
	Burst int
	// CleanupInterval controls how often idle client buckets are dropped.
	CleanupInterval time.Duration
}

// Limiter manages token buckets per client id (typically the remote IP).
type Limiter struct {
	mu      sync.RWMutex
	buckets map[string]*TokenBucket
	config  Config
	stop    chan struct{}
}

// NewLimiter creates a limiter and starts its idle-bucket cleanup loop.
func NewLimiter(config Config) *Limiter {
	if config.Burst == 0 {
		config.Burst = config.RequestsPerMinute
	}
	if config.CleanupInterval == 0 {
		config.CleanupInterval = 5 * time.Minute
	}
	l := &Limiter{
		buckets: make(map[string]*TokenBucket),
		config:  config,
		stop:    make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

// Allow reports whether the client may make another request now.
func (l *Limiter) Allow(clientID string) bool {
	if l.config.RequestsPerMinute <= 0 {
		return true // limiting disabled
	}

	l.mu.RLock()
	bucket, ok := l.buckets[clientID]
	l.mu.RUnlock()

	if !ok {
		l.mu.Lock()
		bucket, ok = l.buckets[clientID]
		if !ok {
			bucket = newTokenBucket(l.config.Burst, float64(l.config.RequestsPerMinute)/60.0)
			l.buckets[clientID] = bucket
		}
		l.mu.Unlock()
	}

	return bucket.allow()
}

// Stop terminates the cleanup loop.
func (l *Limiter) Stop() {
	close(l.stop)
}

// cleanupLoop drops full (idle) buckets so the map does not grow without
// bound across many client IPs.
func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.config.CleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.mu.Lock()
			for id, bucket := range l.buckets {
				bucket.mu.Lock()
				refilled := bucket.tokens + time.Since(bucket.lastRefill).Seconds()*bucket.refillRate
				idle := refilled >= float64(bucket.capacity)
				bucket.mu.Unlock()
				if idle {
					delete(l.buckets, id)
				}
			}
			l.mu.Unlock()
		case <-l.stop:
			return
		}
	}
}
