package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/adityakr/bazaari/pkg/response"
)

// RateLimit applies a fixed-window per-IP limit. Windows reset every minute.
func RateLimit(limit int) func(http.Handler) http.Handler {
	var (
		mu      sync.Mutex
		counts  = make(map[string]int)
		resetAt = time.Now().Add(time.Minute)
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			mu.Lock()
			if time.Now().After(resetAt) {
				counts = make(map[string]int)
				resetAt = time.Now().Add(time.Minute)
			}
			counts[ip]++
			over := counts[ip] > limit
			mu.Unlock()

			if over {
				response.Error(w, http.StatusTooManyRequests, "Too many requests. Slow down.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
