package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// keyedLimiter hands out one token bucket per key and forgets keys that
// have been idle for limiterIdleTTL.
type keyedLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	rps       rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

func newKeyedLimiter(rps float64, burst int) *keyedLimiter {
	return &keyedLimiter{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
	}
}

func (l *keyedLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > limiterIdleTTL {
		for k, v := range l.visitors {
			if now.Sub(v.lastSeen) > limiterIdleTTL {
				delete(l.visitors, k)
			}
		}
		l.lastSweep = now
	}

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

func rateLimit(keyFn func(*gin.Context) string, rps float64, burst int) gin.HandlerFunc {
	limiter := newKeyedLimiter(rps, burst)

	return func(c *gin.Context) {
		if !limiter.allow(keyFn(c)) {
			abortWith(c, ErrTooManyRequests)
			return
		}
		c.Next()
	}
}

// RateLimitByIP allows rps requests per second per client IP.
func RateLimitByIP(rps float64, burst int) gin.HandlerFunc {
	return rateLimit(func(c *gin.Context) string {
		return "ip:" + c.ClientIP()
	}, rps, burst)
}

// RateLimitByUser keys on the authenticated user and falls back to the IP.
// Must run after AuthMiddleware.
func RateLimitByUser(rps float64, burst int) gin.HandlerFunc {
	return rateLimit(func(c *gin.Context) string {
		if uid := UserID(c); uid != "" {
			return "user:" + uid
		}
		return "ip:" + c.ClientIP()
	}, rps, burst)
}
