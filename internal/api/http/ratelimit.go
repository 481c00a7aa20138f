package http

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/time/rate"
)

var errTooManyClientRequests = errors.New("too many requests, try again later")

// ClientLimiter limits request rate per client.
// Limiters of least recently seen clients are evicted when cache is full.
type ClientLimiter struct {
	limiters *lru.Cache
	limit    rate.Limit
	burst    int
	m        sync.Mutex
}

// NewClientLimiter creates ClientLimiter instance.
// maxRate - maximum number of requests per second for a single client.
func NewClientLimiter(maxRate float64, burst int, size int) (*ClientLimiter, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	if burst <= 0 {
		burst = 1
	}
	limiters, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for limiters: %w", err)
	}

	return &ClientLimiter{
		limiters: limiters,
		limit:    rate.Limit(maxRate),
		burst:    burst,
	}, nil
}

// Allow reports whether client identified by key may make a request now.
func (c *ClientLimiter) Allow(key string) bool {
	c.m.Lock()
	defer c.m.Unlock()

	var limiter *rate.Limiter
	if val, ok := c.limiters.Get(key); ok {
		limiter = val.(*rate.Limiter)
	} else {
		limiter = rate.NewLimiter(c.limit, c.burst)
		c.limiters.Add(key, limiter)
	}

	return limiter.Allow()
}

// NewClientRateLimitMiddleware creates middleware rejecting requests of clients exceeding their rate.
// Clients are identified by remote host.
func NewClientRateLimitMiddleware(c *ClientLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}
			if !c.Allow(host) {
				http.Error(w, errTooManyClientRequests.Error(), errorStatus(errTooManyClientRequests))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
