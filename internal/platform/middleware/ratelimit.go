// Copyright (c) 2026 BlogAPI. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/ianbriton/blogapi/internal/platform/apperr"
	"github.com/ianbriton/blogapi/internal/platform/constants"
	"github.com/ianbriton/blogapi/internal/platform/respond"
)

type rateLimitClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter limits requests per client IP using a token bucket.
//
// Idle clients are forgotten by [RateLimiter.Run].
type RateLimiter struct {
	limit      rate.Limit
	burst      int
	retryAfter int

	mu      sync.Mutex
	clients map[string]*rateLimitClient
}

// NewRateLimiter creates a limiter allowing rps requests per second with the given burst.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	retryAfter := 1
	if rps > 0 && rps < 1 {
		retryAfter = int(math.Ceil(1 / rps))
	}

	return &RateLimiter{
		limit:      rate.Limit(rps),
		burst:      burst,
		retryAfter: retryAfter,
		clients:    make(map[string]*rateLimitClient),
	}
}

// Handler returns the middleware enforcing the limit.
func (l *RateLimiter) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if !l.bucket(RealIP(request)).Allow() {
				writer.Header().Set("Retry-After", strconv.Itoa(l.retryAfter))
				respond.Error(writer, request, apperr.RateLimited(l.retryAfter))
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}

func (l *RateLimiter) bucket(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	client, found := l.clients[ip]
	if !found {
		client = &rateLimitClient{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = client
	}
	client.lastSeen = time.Now()
	return client.limiter
}

// Run removes clients idle for longer than [constants.RateLimitClientTTL]
// until ctx is cancelled.
func (l *RateLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(constants.RateLimitCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			l.evictIdle(now.Add(-constants.RateLimitClientTTL))
		case <-ctx.Done():
			return
		}
	}
}

func (l *RateLimiter) evictIdle(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for ip, client := range l.clients {
		if client.lastSeen.Before(cutoff) {
			delete(l.clients, ip)
		}
	}
}
