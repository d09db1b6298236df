package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	apierrors "github.com/yhl125/iampocket-relay-server/internal/api/shared/errors"
	"github.com/yhl125/iampocket-relay-server/internal/logger"
)

// RateLimitConfig configures a per client IP token bucket
type RateLimitConfig struct {
	RequestsPerMinute float64
	Burst             int
	// IdleTTL drops buckets of clients that stopped calling
	IdleTTL time.Duration
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter keeps one token bucket per client IP
type IPRateLimiter struct {
	mu      sync.Mutex
	config  RateLimitConfig
	buckets map[string]*bucket
	now     func() time.Time
}

// NewIPRateLimiter creates a limiter. Buckets idle for longer than IdleTTL are dropped lazily.
func NewIPRateLimiter(config RateLimitConfig) *IPRateLimiter {
	if config.Burst <= 0 {
		config.Burst = 1
	}
	if config.IdleTTL <= 0 {
		config.IdleTTL = 10 * time.Minute
	}
	return &IPRateLimiter{
		config:  config,
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

// Allow reports whether ip may make another request now
func (l *IPRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) > l.config.IdleTTL {
			delete(l.buckets, key)
		}
	}

	b, ok := l.buckets[ip]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(rate.Limit(l.config.RequestsPerMinute/60), l.config.Burst)}
		l.buckets[ip] = b
	}
	b.lastSeen = now
	return b.limiter.AllowN(now, 1)
}

// RateLimit rejects clients that exceed the limiter with 429
func RateLimit(limiter *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}
		if !limiter.Allow(ip) {
			logger.WarnCtx(c.Request.Context(), "Rate limit exceeded",
				zap.String("client_ip", ip),
				zap.String("path", c.Request.URL.Path))
			apiErr := apierrors.NewRateLimitedError("rate limit exceeded for " + c.Request.URL.Path)
			c.AbortWithStatusJSON(apiErr.StatusCode(), apierrors.ErrorResponse{Error: apiErr})
			return
		}
		c.Next()
	}
}
