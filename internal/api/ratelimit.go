package api

import (
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vytor/eligesaludable/internal/errors"
	"github.com/vytor/eligesaludable/internal/logger"
	"golang.org/x/time/rate"
)

const (
	minLimiterIdle = 3 * time.Minute
	sweepInterval  = time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

// ipRateLimiter keeps one token bucket per client IP. Buckets idle for
// longer than idleTTL are dropped on the next sweep; idleTTL is never shorter
// than a full refill, so eviction cannot hand a client extra tokens.
type ipRateLimiter struct {
	clients   sync.Map
	limit     rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep atomic.Int64
	now       func() time.Time
}

func newIPRateLimiter(rps float64, burst int) *ipRateLimiter {
	if burst <= 0 {
		burst = 1
	}
	idle := minLimiterIdle
	if refill := time.Duration(float64(burst) / rps * float64(time.Second)); refill > idle {
		idle = refill
	}
	return &ipRateLimiter{
		limit:   rate.Limit(rps),
		burst:   burst,
		idleTTL: idle,
		now:     time.Now,
	}
}

func (l *ipRateLimiter) limiter(ip string) *rate.Limiter {
	now := l.now()
	l.maybeSweep(now)

	v, ok := l.clients.Load(ip)
	if !ok {
		v, _ = l.clients.LoadOrStore(ip, &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)})
	}
	c := v.(*clientLimiter)
	c.lastSeen.Store(now.UnixNano())
	return c.limiter
}

// maybeSweep runs at most one sweep per sweepInterval across all callers.
func (l *ipRateLimiter) maybeSweep(now time.Time) {
	last := l.lastSweep.Load()
	if now.UnixNano()-last < int64(sweepInterval) {
		return
	}
	if !l.lastSweep.CompareAndSwap(last, now.UnixNano()) {
		return
	}
	l.sweep(now)
}

func (l *ipRateLimiter) sweep(now time.Time) int {
	cutoff := now.Add(-l.idleTTL).UnixNano()
	removed := 0
	l.clients.Range(func(key, value any) bool {
		if value.(*clientLimiter).lastSeen.Load() < cutoff {
			l.clients.Delete(key)
			removed++
		}
		return true
	})
	return removed
}

func (l *ipRateLimiter) size() int {
	n := 0
	l.clients.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func (l *ipRateLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !l.limiter(ip).Allow() {
			logger.FromContext(r.Context()).Warn("rate limit exceeded: ip=%s", ip)
			w.Header().Set("Retry-After", "1")
			handleError(w, r, errors.NewTooManyRequestsError())
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
