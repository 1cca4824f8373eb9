package mid

import (
	"context"
	"net/http"

	"github.com/ardanlabs/skywallet/foundation/web"
)

// Cors sets the response headers needed for Cross-Origin Resource Sharing
// with the wallet GUI. An origin of "*" allows any origin, otherwise the
// request origin is echoed back only when it is in the list.
func Cors(origins ...string) web.Middleware {
	allowed := make(map[string]bool, len(origins))
	var wildcard bool
	for _, o := range origins {
		if o == "*" {
			wildcard = true
		}
		allowed[o] = true
	}
	if len(origins) == 0 {
		wildcard = true
	}

	// This is the actual middleware function to be executed.
	m := func(handler web.Handler) web.Handler {

		// Create the handler that will be attached in the middleware chain.
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			origin := r.Header.Get("Origin")

			switch {
			case wildcard:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case allowed[origin]:
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			default:
				return handler(ctx, w, r)
			}

			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Origin, Accept, Content-Type, Content-Length, Accept-Encoding")
			w.Header().Set("Access-Control-Max-Age", "86400")

			return handler(ctx, w, r)
		}

		return h
	}

	return m
}
