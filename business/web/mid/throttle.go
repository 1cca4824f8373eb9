package mid

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/ardanlabs/skywallet/business/sys/metrics"
	"github.com/ardanlabs/skywallet/business/web/errs"
	"github.com/ardanlabs/skywallet/foundation/web"
)

// Throttle limits the number of requests being served at the same time.
// Requests over the limit are rejected with a 429. A limit of zero or less
// turns throttling off.
func Throttle(max int64) web.Middleware {
	var active int64

	// This is the actual middleware function to be executed.
	m := func(handler web.Handler) web.Handler {
		if max <= 0 {
			return handler
		}

		// Create the handler that will be attached in the middleware chain.
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			current := atomic.AddInt64(&active, 1)
			defer atomic.AddInt64(&active, -1)

			if current > max {
				metrics.AddThrottled(ctx)
				return errs.NewTrusted(errors.New("too many requests"), http.StatusTooManyRequests)
			}

			return handler(ctx, w, r)
		}

		return h
	}

	return m
}
