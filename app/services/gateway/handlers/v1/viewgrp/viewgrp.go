// Package viewgrp maintains the group of handlers that serve wallet views
// built from node data.
package viewgrp

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ardanlabs/skywallet/business/core/wallet"
	"github.com/ardanlabs/skywallet/business/sys/validate"
	"github.com/ardanlabs/skywallet/business/web/errs"
	"github.com/ardanlabs/skywallet/foundation/events"
	"github.com/ardanlabs/skywallet/foundation/web"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Handlers manages the set of view endpoints.
type Handlers struct {
	Log  *zap.SugaredLogger
	Core *wallet.Core
	Evts *events.Events
	WS   websocket.Upgrader
}

// CheckOrigin returns the websocket origin check for the allowed origins.
// An empty list or "*" allows any origin. Requests without an Origin header
// do not come from a browser and are allowed.
func CheckOrigin(origins []string) func(r *http.Request) bool {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		if o == "*" {
			return func(r *http.Request) bool { return true }
		}
		allowed[o] = true
	}

	f := func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return len(allowed) == 0 || origin == "" || allowed[origin]
	}

	return f
}

// Outputs returns the unspent outputs of an address.
func (h Handlers) Outputs(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	p := addressParam{
		Address: web.Param(r, "address"),
	}
	if err := validate.Check(p); err != nil {
		return err
	}

	outs, err := h.Core.UnspentOutputs(ctx, p.Address)
	if err != nil {
		return err
	}

	return web.Respond(ctx, w, toOutputs(outs), http.StatusOK)
}

// Sync returns the sync progress of the node.
func (h Handlers) Sync(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	sp, err := h.Core.SyncProgress(ctx)
	if err != nil {
		return err
	}

	resp := syncProgress{
		Current:      sp.Current,
		Highest:      sp.Highest,
		Percent:      sp.Percent,
		Synchronized: sp.Synchronized,
		Peers:        sp.Peers,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Pending returns the unconfirmed transactions.
func (h Handlers) Pending(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	txs, err := h.Core.PendingTransactions(ctx)
	if err != nil {
		return err
	}

	return web.Respond(ctx, w, toPending(txs), http.StatusOK)
}

// Addresses returns the address book with balances.
func (h Handlers) Addresses(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	entries, err := h.Core.AddressBook(ctx)
	if err != nil {
		return err
	}

	return web.Respond(ctx, w, toAddressEntries(entries), http.StatusOK)
}

// Upgrade reports whether the node should be upgraded.
func (h Handlers) Upgrade(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	u, err := h.Core.CheckUpgrade(ctx)
	if err != nil {
		if errors.Is(err, wallet.ErrNoLatestVersion) {
			return errs.NewTrusted(err, http.StatusNotFound)
		}
		return err
	}

	resp := upgrade{
		Current: u.Current,
		Latest:  u.Latest,
		Upgrade: u.Upgrade,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Events handles a web socket to provide sync progress events to a client.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	// A failed upgrade has already been answered by the upgrader.
	c, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		h.Log.Infow("events", "traceid", v.TraceID, "status", "upgrade refused", "ERROR", err)
		return nil
	}
	defer c.Close()

	// The upgrade hijacked the connection.
	v.StatusCode = http.StatusSwitchingProtocols

	ch := h.Evts.Acquire(v.TraceID)
	defer h.Evts.Release(v.TraceID)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg, wd := <-ch:
			if !wd {
				return nil
			}

			if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
				return nil
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}
