package handlers

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const limiterCleanupEvery = 5 * time.Minute

// clientLimiter hands out one token bucket per client key.
type clientLimiter struct {
	limiters sync.Map // map[string]*rate.Limiter
	rate     rate.Limit
	burst    int

	mu          sync.Mutex
	lastCleanup time.Time
}

func newClientLimiter(requestsPerMinute, burst int) *clientLimiter {
	return &clientLimiter{
		rate:        rate.Limit(float64(requestsPerMinute) / 60),
		burst:       burst,
		lastCleanup: time.Now(),
	}
}

func (l *clientLimiter) get(key string) *rate.Limiter {
	if lim, ok := l.limiters.Load(key); ok {
		return lim.(*rate.Limiter)
	}
	lim, _ := l.limiters.LoadOrStore(key, rate.NewLimiter(l.rate, l.burst))
	l.maybeCleanup()
	return lim.(*rate.Limiter)
}

// maybeCleanup drops limiters whose bucket is full again, i.e. idle clients.
func (l *clientLimiter) maybeCleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if time.Since(l.lastCleanup) < limiterCleanupEvery {
		return
	}
	l.lastCleanup = time.Now()

	l.limiters.Range(func(key, value any) bool {
		if value.(*rate.Limiter).Tokens() >= float64(l.burst) {
			l.limiters.Delete(key)
		}
		return true
	})
}

// rateLimitMiddleware throttles per client IP; it guards the paid translation relay.
func (h *Handler) rateLimitMiddleware() gin.HandlerFunc {
	limiter := newClientLimiter(h.opts.RequestsPerMinute, h.opts.Burst)

	return func(c *gin.Context) {
		lim := limiter.get(c.ClientIP())
		if lim.Allow() {
			c.Next()
			return
		}

		r := lim.Reserve()
		retryAfter := int(math.Max(1, math.Ceil(r.Delay().Seconds())))
		r.Cancel()

		if h.log != nil {
			h.log.Infow("rate_limited", "client_ip", c.ClientIP(), "path", c.FullPath())
		}
		c.Header("Retry-After", strconv.Itoa(retryAfter))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
	}
}
