package http

import rl "github.com/rogerio-castellano/pubstock/internal/http/rate_limiter"

var limiter *rl.Limiter

// SetRateLimiter enables per-client rate limiting on routers built afterwards.
func SetRateLimiter(l *rl.Limiter) {
	limiter = l
}
