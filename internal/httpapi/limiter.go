package httpapi

import (
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// ClientLimiter rate-limits per client host. A non-positive rate disables
// it.
type ClientLimiter struct {
	mu sync.Mutex
	m  map[string]*rate.Limiter
	r  rate.Limit
	b  int
}

func NewClientLimiter(reqPerSec float64, burst int) *ClientLimiter {
	cl := &ClientLimiter{}
	cl.Reset(reqPerSec, burst)
	return cl
}

// Reset applies new limits and forgets every client's bucket.
func (cl *ClientLimiter) Reset(reqPerSec float64, burst int) {
	if burst < 1 {
		burst = 1
	}
	cl.mu.Lock()
	defer cl.mu.Unlock()
	cl.m = make(map[string]*rate.Limiter)
	cl.r = rate.Limit(reqPerSec)
	cl.b = burst
}

func (cl *ClientLimiter) limiterFor(host string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	if cl.r <= 0 {
		return nil
	}
	if lim, ok := cl.m[host]; ok {
		return lim
	}
	lim := rate.NewLimiter(cl.r, cl.b)
	cl.m[host] = lim
	return lim
}

func (cl *ClientLimiter) Allow(host string) bool {
	lim := cl.limiterFor(host)
	return lim == nil || lim.Allow()
}

// Wrap rejects requests over the limit with 429.
func (cl *ClientLimiter) Wrap(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !cl.Allow(clientHost(r)) {
			w.Header().Set("Retry-After", "1")
			WriteError(w, r, http.StatusTooManyRequests, "rate_limited", "too many requests")
			return
		}
		h(w, r)
	}
}
