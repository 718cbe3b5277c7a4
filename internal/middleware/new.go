package middleware

import (
	"personal-dashboard/pkg/log"
	"personal-dashboard/pkg/metrics"
)

type Middleware struct {
	l           log.Logger
	metrics     *metrics.Manager
	rateLimiter *rateLimiter
}

// New builds the shared middleware set. A rateLimitPerMin of 0 disables rate
// limiting and a nil metrics manager disables request metrics.
func New(l log.Logger, m *metrics.Manager, rateLimitPerMin int) Middleware {
	mw := Middleware{
		l:       l,
		metrics: m,
	}
	if rateLimitPerMin > 0 {
		mw.rateLimiter = newRateLimiter(rateLimitPerMin)
	}
	return mw
}
