// Package handlers manages the different versions of the API.
package handlers

import (
	"context"
	"expvar"
	"net/http"
	"net/http/pprof"
	"os"

	"github.com/ardanlabs/skywallet/app/services/gateway/handlers/debug/checkgrp"
	"github.com/ardanlabs/skywallet/app/services/gateway/handlers/guigrp"
	v1 "github.com/ardanlabs/skywallet/app/services/gateway/handlers/v1"
	"github.com/ardanlabs/skywallet/business/core/wallet"
	"github.com/ardanlabs/skywallet/business/web/mid"
	"github.com/ardanlabs/skywallet/foundation/events"
	"github.com/ardanlabs/skywallet/foundation/nodeclient"
	"github.com/ardanlabs/skywallet/foundation/web"
	"go.uber.org/zap"
)

// MuxConfig contains all the mandatory systems required by handlers.
type MuxConfig struct {
	Shutdown    chan os.Signal
	Log         *zap.SugaredLogger
	Node        *nodeclient.Client
	Core        *wallet.Core
	Evts        *events.Events
	CORSOrigins []string
	MaxInFlight int64
	MaxStreams  int64
	AssetsDir   string
}

// APIMux constructs a http.Handler with all application routes defined.
func APIMux(cfg MuxConfig) http.Handler {
	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(
		cfg.Shutdown,
		mid.Logger(cfg.Log),
		mid.Errors(cfg.Log),
		mid.Metrics(),
		mid.Cors(cfg.CORSOrigins...),
		mid.Panics(),
	)

	// Accept CORS 'OPTIONS' preflight requests.
	h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
	app.Handle(http.MethodOptions, "", "/*", h)

	// Request routes share one in flight limit. Websocket streams stay open
	// and are counted separately.
	throttle := mid.Throttle(cfg.MaxInFlight)

	v1Cfg := v1.Config{
		Log:      cfg.Log,
		Node:     cfg.Node,
		Core:     cfg.Core,
		Evts:     cfg.Evts,
		Origins:  cfg.CORSOrigins,
		Throttle: throttle,
		Streams:  mid.Throttle(cfg.MaxStreams),
	}

	// Load the node forwarding routes and the v1 view routes.
	v1.ProxyRoutes(app, v1Cfg)
	v1.ViewRoutes(app, v1Cfg)

	// Serve the wallet GUI when an assets folder is configured.
	if cfg.AssetsDir != "" {
		gui := guigrp.Handlers{
			AssetsDir: cfg.AssetsDir,
		}
		app.Handle(http.MethodGet, "", "/", gui.Index, throttle)
		app.Handle(http.MethodGet, "", "/assets/*", gui.Assets(), throttle)
	}

	return app
}

// DebugStandardLibraryMux registers all the debug routes from the standard library
// into a new mux bypassing the use of the DefaultServerMux. Using the
// DefaultServerMux would be a security risk since a dependency could inject a
// handler into our service without us knowing it.
func DebugStandardLibraryMux() *http.ServeMux {
	mux := http.NewServeMux()

	// Register all the standard library debug endpoints.
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.Handle("/debug/vars", expvar.Handler())

	return mux
}

// DebugMux registers all the debug standard library routes and then custom
// debug application routes for the service. This bypassing the use of the
// DefaultServerMux. Using the DefaultServerMux would be a security risk since
// a dependency could inject a handler into our service without us knowing it.
func DebugMux(build string, log *zap.SugaredLogger, node checkgrp.Versioner) http.Handler {
	mux := DebugStandardLibraryMux()

	// Register debug check endpoints.
	cgh := checkgrp.Handlers{
		Build: build,
		Log:   log,
		Node:  node,
	}
	mux.HandleFunc("/debug/readiness", cgh.Readiness)
	mux.HandleFunc("/debug/liveness", cgh.Liveness)

	return mux
}
