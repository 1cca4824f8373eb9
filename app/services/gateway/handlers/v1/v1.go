// Package v1 contains the full set of handler functions and routes
// supported by the gateway api.
package v1

import (
	"net/http"

	"github.com/ardanlabs/skywallet/app/services/gateway/handlers/v1/proxygrp"
	"github.com/ardanlabs/skywallet/app/services/gateway/handlers/v1/viewgrp"
	"github.com/ardanlabs/skywallet/business/core/wallet"
	"github.com/ardanlabs/skywallet/foundation/events"
	"github.com/ardanlabs/skywallet/foundation/nodeclient"
	"github.com/ardanlabs/skywallet/foundation/web"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const version = "v1"

// Config contains all the mandatory systems required by handlers. Throttle
// limits the request routes and Streams limits the websocket route, so open
// streams never use up the request slots.
type Config struct {
	Log      *zap.SugaredLogger
	Node     *nodeclient.Client
	Core     *wallet.Core
	Evts     *events.Events
	Origins  []string
	Throttle web.Middleware
	Streams  web.Middleware
}

// ProxyRoutes binds the routes that forward to the node. These keep the
// paths the wallet GUI already calls, so they are not versioned.
func ProxyRoutes(app *web.App, cfg Config) {
	pxy := proxygrp.Handlers{
		Log:  cfg.Log,
		Node: cfg.Node,
	}

	for _, rt := range proxygrp.Routes {
		app.Handle(rt.Method, "", rt.Path, pxy.Forward(rt), limit(cfg.Throttle)...)
	}
}

// ViewRoutes binds all the version 1 view routes.
func ViewRoutes(app *web.App, cfg Config) {
	vgh := viewgrp.Handlers{
		Log:  cfg.Log,
		Core: cfg.Core,
		Evts: cfg.Evts,
		WS: websocket.Upgrader{
			CheckOrigin: viewgrp.CheckOrigin(cfg.Origins),
		},
	}

	throttle := limit(cfg.Throttle)
	app.Handle(http.MethodGet, version, "/outputs/:address", vgh.Outputs, throttle...)
	app.Handle(http.MethodGet, version, "/sync", vgh.Sync, throttle...)
	app.Handle(http.MethodGet, version, "/pending", vgh.Pending, throttle...)
	app.Handle(http.MethodGet, version, "/addresses", vgh.Addresses, throttle...)
	app.Handle(http.MethodGet, version, "/upgrade", vgh.Upgrade, throttle...)
	app.Handle(http.MethodGet, version, "/events", vgh.Events, limit(cfg.Streams)...)
}

// limit returns the middleware list for a route, empty when mw is nil.
func limit(mw web.Middleware) []web.Middleware {
	if mw == nil {
		return nil
	}
	return []web.Middleware{mw}
}
