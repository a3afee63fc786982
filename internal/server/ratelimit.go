package server

import (
	"net"
	"net/http"
	"sync"

	"github.com/robfig/cron"
	"go.uber.org/zap"

	"github.com/nextgencodex-com/Vengase-backend/config"
	"github.com/nextgencodex-com/Vengase-backend/pkg/httpres"
)

// RateLimiter counts requests per client IP and resets all counters on a
// fixed schedule, matching a windowed limit without per-entry timers.
type RateLimiter struct {
	mu     sync.Mutex
	counts map[string]int
	max    int
	cron   *cron.Cron
	logger *zap.Logger
}

func NewRateLimiter(cfg *config.RateLimitConfig, log *zap.Logger) *RateLimiter {
	rl := &RateLimiter{
		counts: make(map[string]int),
		max:    cfg.Max,
		cron:   cron.New(),
		logger: log,
	}
	rl.cron.Schedule(cron.Every(cfg.Window), cron.FuncJob(rl.reset))
	rl.cron.Start()
	return rl
}

func (rl *RateLimiter) reset() {
	rl.mu.Lock()
	rl.counts = make(map[string]int)
	rl.mu.Unlock()
	rl.logger.Debug("rate limit window reset")
}

func (rl *RateLimiter) Stop() {
	rl.cron.Stop()
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)

		rl.mu.Lock()
		rl.counts[ip]++
		count := rl.counts[ip]
		rl.mu.Unlock()

		if count > rl.max {
			httpres.Error(w, http.StatusTooManyRequests,
				"Too many requests, please try again later", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
