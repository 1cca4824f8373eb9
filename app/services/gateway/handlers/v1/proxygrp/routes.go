package proxygrp

import "net/http"

// Route describes a gateway route that is forwarded to the node.
type Route struct {
	Method string
	Path   string
	Target string
	Params []string
}

// Routes is the set of node routes exposed to the browser.
var Routes = []Route{
	{Method: http.MethodGet, Path: "/api/blocks", Target: "/blocks", Params: []string{"start", "end"}},
	{Method: http.MethodGet, Path: "/api/lastBlocks", Target: "/last_blocks", Params: []string{"num"}},
	{Method: http.MethodGet, Path: "/api/block", Target: "/block", Params: []string{"hash", "seq"}},
	{Method: http.MethodGet, Path: "/api/address", Target: "/explorer/address", Params: []string{"address"}},
	{Method: http.MethodGet, Path: "/api/uxout", Target: "/uxout", Params: []string{"uxid"}},
	{Method: http.MethodGet, Path: "/api/transaction", Target: "/transaction", Params: []string{"txid"}},
	{Method: http.MethodGet, Path: "/api/currentBalance", Target: "/outputs", Params: []string{"addrs"}},
	{Method: http.MethodGet, Path: "/api/balance", Target: "/balance", Params: []string{"addrs"}},
	{Method: http.MethodGet, Path: "/api/coinSupply", Target: "/coinSupply"},
	{Method: http.MethodGet, Path: "/api/pendingTxs", Target: "/pendingTxs"},
	{Method: http.MethodGet, Path: "/api/blockchain/progress", Target: "/blockchain/progress"},
	{Method: http.MethodGet, Path: "/api/version", Target: "/version"},
	{Method: http.MethodGet, Path: "/blockchain/metadata", Target: "/blockchain/metadata"},
	{Method: http.MethodPost, Path: "/api/wallet/create", Target: "/wallet/create"},
	{Method: http.MethodPost, Path: "/api/wallet/update", Target: "/wallet/update"},
}
