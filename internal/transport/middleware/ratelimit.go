package middleware

import (
	"context"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/knowtes-backend/pkg/ctxutil"
)

type windowLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error)
}

// RateLimiter limits requests per minute using a shared counter store, so
// limits hold across server replicas.
type RateLimiter struct {
	store windowLimiter
	log   *slog.Logger
}

// NewRateLimiter creates a rate limiter backed by store.
func NewRateLimiter(store windowLimiter, logger *slog.Logger) *RateLimiter {
	return &RateLimiter{store: store, log: logger}
}

// Limit returns middleware that allows maxPerMinute requests per caller for
// the named scope. The caller is the authenticated user when there is one,
// the client IP otherwise. Store failures let the request through.
func (rl *RateLimiter) Limit(scope string, maxPerMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		if maxPerMinute <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := scope + ":" + callerKey(r)

			ok, retryAfter, err := rl.store.Allow(r.Context(), key, maxPerMinute, time.Minute)
			if err != nil {
				rl.log.WarnContext(r.Context(), "rate limiter unavailable",
					slog.String("scope", scope),
					slog.String("error", err.Error()),
				)
				next.ServeHTTP(w, r)
				return
			}
			if !ok {
				secs := int(math.Ceil(retryAfter.Seconds()))
				if secs < 1 {
					secs = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func callerKey(r *http.Request) string {
	if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return "user:" + userID.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
