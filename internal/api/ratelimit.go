package api

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"alcyxob/gym-manager/internal/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ipLimiter is a token bucket and the last time its client was seen.
type ipLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter throttles requests per client IP. It guards the login and
// sign-up endpoints against password guessing.
type RateLimiter struct {
	perMinute       int
	limit           rate.Limit
	burst           int
	cleanupInterval time.Duration
	logger          *zap.Logger
	rec             metrics.Recorder

	mu       sync.Mutex
	limiters map[string]*ipLimiter

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter allows perMinute requests per IP with the given burst and
// starts a goroutine that forgets idle clients. Call Stop to end it.
func NewRateLimiter(perMinute, burst int, logger *zap.Logger, rec metrics.Recorder) *RateLimiter {
	rl := &RateLimiter{
		perMinute:       perMinute,
		limit:           rate.Limit(float64(perMinute) / 60.0),
		burst:           burst,
		cleanupInterval: 5 * time.Minute,
		logger:          logger,
		rec:             rec,
		limiters:        make(map[string]*ipLimiter),
		stopCh:          make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

// Stop ends the cleanup goroutine.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Middleware rejects requests over the limit with 429.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !rl.limiterFor(ip).Allow() {
			rl.rec.RecordAuth(metrics.AuthThrottled)
			rl.logger.Warn("rate limit exceeded",
				zap.String("client_ip", ip),
				zap.String("path", c.FullPath()),
			)
			c.Header("Retry-After", strconv.Itoa(rl.retryAfterSeconds()))
			abortWithError(c, http.StatusTooManyRequests, "Too many requests. Please try again later.")
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	l, ok := rl.limiters[ip]
	if !ok {
		l = &ipLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[ip] = l
	}
	l.lastAccess = time.Now()
	return l.limiter
}

// retryAfterSeconds estimates how long until one token is refilled.
func (rl *RateLimiter) retryAfterSeconds() int {
	if rl.perMinute >= 60 {
		return 1
	}
	return (60 + rl.perMinute - 1) / rl.perMinute
}

// clientCount returns the number of tracked IPs.
func (rl *RateLimiter) clientCount() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup(time.Now())
		case <-rl.stopCh:
			return
		}
	}
}

// cleanup drops clients idle for more than two cleanup intervals.
func (rl *RateLimiter) cleanup(now time.Time) {
	ttl := rl.cleanupInterval * 2

	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, l := range rl.limiters {
		if now.Sub(l.lastAccess) > ttl {
			delete(rl.limiters, ip)
		}
	}
}
