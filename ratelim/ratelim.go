package ratelim

import (
	"net/http"
	"sync"
	"time"

	"mandap/globals"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/time/rate"
)

// RateLimiter structure
type RateLimiter struct {
	visitors map[string]*rate.Limiter
	mu       sync.Mutex
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*rate.Limiter),
	}
}

// Get or create a rate limiter for a caller key
func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if limiter, exists := rl.visitors[key]; exists {
		return limiter
	}

	// Allow 5 requests per second with a burst of 10
	limiter := rate.NewLimiter(5, 10)
	rl.visitors[key] = limiter

	// Clean up old keys after 10 minutes
	go func() {
		time.Sleep(10 * time.Minute)
		rl.mu.Lock()
		delete(rl.visitors, key)
		rl.mu.Unlock()
	}()

	return limiter
}

// Limit enforces per-caller rate limiting. Authenticated callers are
// keyed by user id, anonymous ones by remote address.
func (rl *RateLimiter) Limit(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		key := r.RemoteAddr
		if userID, ok := r.Context().Value(globals.UserIDKey).(string); ok && userID != "" {
			key = userID
		}

		limiter := rl.getLimiter(key)
		if !limiter.Allow() {
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}

		next(w, r, ps)
	}
}
