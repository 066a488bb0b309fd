package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/BellaCucina/bistro-backend/internal/utils"
	"golang.org/x/time/rate"
)

// visitor tracks one client's limiter. lastSeen drives pruning so the map
// doesn't grow without bound.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Throttle limits requests per client IP. It guards public form intake
// (reservations) against spam, not authentication endpoints.
func Throttle(r rate.Limit, burst int) func(http.Handler) http.Handler {
	var mu sync.Mutex
	visitors := make(map[string]*visitor)

	limiterFor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		now := time.Now()
		if len(visitors) > 1000 {
			for ip, v := range visitors {
				if now.Sub(v.lastSeen) > 10*time.Minute {
					delete(visitors, ip)
				}
			}
		}

		v, ok := visitors[ip]
		if !ok {
			v = &visitor{limiter: rate.NewLimiter(r, burst)}
			visitors[ip] = v
		}
		v.lastSeen = now
		return v.limiter
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if !limiterFor(clientIP(req)).Allow() {
				utils.RespondError(w, http.StatusTooManyRequests, "Too many requests")
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}

// clientIP prefers X-Forwarded-For (set by the hosting proxy) and falls back
// to the socket address.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i > 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
