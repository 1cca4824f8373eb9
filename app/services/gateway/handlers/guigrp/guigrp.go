// Package guigrp serves the static wallet GUI.
package guigrp

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/ardanlabs/skywallet/foundation/web"
)

// Handlers serves files out of the assets directory.
type Handlers struct {
	AssetsDir string
}

// Index serves the GUI entry page.
func (h Handlers) Index(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if err := web.SetStatusCode(ctx, http.StatusOK); err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	http.ServeFile(w, r, filepath.Join(h.AssetsDir, "index.html"))
	return nil
}

// Assets returns a handler for the files under /assets/.
func (h Handlers) Assets() web.Handler {
	fs := http.StripPrefix("/assets/", http.FileServer(http.Dir(h.AssetsDir)))

	f := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		if err := web.SetStatusCode(ctx, http.StatusOK); err != nil {
			return web.NewShutdownError("web value missing from context")
		}

		fs.ServeHTTP(w, r)
		return nil
	}

	return f
}
