package middlewares

import (
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long a client may stay silent before its bucket is
// dropped. A refilled bucket is indistinguishable from a fresh one.
const limiterIdleTTL = 3 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a token bucket per client IP. A client that drains its bucket
// is blocked for blockTime. Idle clients are swept at most once per idleTTL.
type RateLimiter struct {
	limiters  map[string]*clientLimiter
	blocked   map[string]time.Time
	lastSweep time.Time
	idleTTL   time.Duration
	mu        sync.Mutex
	perSecond rate.Limit
	burst     int
	blockTime time.Duration
	log       *zap.Logger
	now       func() time.Time
}

func NewRateLimiter(perSecond, burst int, blockTime time.Duration, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*clientLimiter),
		blocked:   make(map[string]time.Time),
		perSecond: rate.Limit(perSecond),
		burst:     burst,
		blockTime: blockTime,
		idleTTL:   limiterIdleTTL,
		log:       logger,
		now:       time.Now,
	}
}

// BookingRateLimiter guards the admission route, which takes a lock and writes.
func (m *Middlewares) BookingRateLimiter() *RateLimiter {
	cfg := m.InternalConfig.Booking
	return NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst, time.Second, m.Log)
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		if !r.allow(ip) {
			requestID, _ := req.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			r.log.Warn("RateLimiter.Limit client blocked",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRemoteAddrKey, ip),
			)
			utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(nil))
			return
		}

		next.ServeHTTP(w, req)
	})
}

func (r *RateLimiter) allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweep(now)

	if blockedUntil, found := r.blocked[ip]; found {
		if now.Before(blockedUntil) {
			return false
		}
		delete(r.blocked, ip)
	}

	client, exists := r.limiters[ip]
	if !exists {
		client = &clientLimiter{limiter: rate.NewLimiter(r.perSecond, r.burst)}
		r.limiters[ip] = client
	}
	client.lastSeen = now

	if !client.limiter.AllowN(now, 1) {
		r.blocked[ip] = now.Add(r.blockTime)
		return false
	}
	return true
}

// sweep must be called with mu held.
func (r *RateLimiter) sweep(now time.Time) {
	if now.Sub(r.lastSweep) < r.idleTTL {
		return
	}
	r.lastSweep = now

	for ip, client := range r.limiters {
		if now.Sub(client.lastSeen) >= r.idleTTL {
			delete(r.limiters, ip)
		}
	}
	for ip, blockedUntil := range r.blocked {
		if !now.Before(blockedUntil) {
			delete(r.blocked, ip)
		}
	}
}
