// Package proxygrp maintains the group of handlers that forward browser
// requests to the node.
package proxygrp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ardanlabs/skywallet/business/sys/metrics"
	"github.com/ardanlabs/skywallet/business/web/errs"
	"github.com/ardanlabs/skywallet/foundation/nodeclient"
	"github.com/ardanlabs/skywallet/foundation/web"
	"go.uber.org/zap"
)

// maxFormBody caps the size of a wallet form forwarded to the node.
const maxFormBody = 1 << 20

// Forwarder sends a raw request to the node.
type Forwarder interface {
	Forward(ctx context.Context, method string, path string, query url.Values, body io.Reader, contentType string) (nodeclient.Response, error)
}

// Handlers manages the set of proxy endpoints.
type Handlers struct {
	Log  *zap.SugaredLogger
	Node Forwarder
}

// Forward returns the handler for the specified route.
func (h Handlers) Forward(rt Route) web.Handler {
	f := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		q, err := passthrough(r.URL.Query(), rt.Params)
		if err != nil {
			return err
		}

		var body io.Reader
		var contentType string
		if rt.Method == http.MethodPost {
			data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxFormBody))
			if err != nil {
				var mbe *http.MaxBytesError
				if errors.As(err, &mbe) {
					return errs.NewTrusted(fmt.Errorf("form body larger than %d bytes", mbe.Limit), http.StatusRequestEntityTooLarge)
				}
				return errs.NewTrusted(fmt.Errorf("reading form body: %w", err), http.StatusBadRequest)
			}
			body = bytes.NewReader(data)
			contentType = r.Header.Get("Content-Type")
		}

		metrics.AddNodeCall(ctx, rt.Target)

		resp, err := h.Node.Forward(ctx, rt.Method, rt.Target, q, body, contentType)
		if err != nil {
			h.Log.Errorw("forward", "traceid", web.GetTraceID(ctx), "target", rt.Target, "ERROR", err)
			return errs.NodeUnavailable()
		}

		if !resp.OK() {
			return errs.FromNode(resp.Status, nodeMessage(resp))
		}

		return web.RespondRaw(ctx, w, resp.Body, resp.ContentType, resp.Status)
	}

	return f
}

// nodeMessage extracts the error message from a failed node reply. The node
// answers with either plain text or {"error": {"message": ...}}.
func nodeMessage(resp nodeclient.Response) string {
	var doc struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(resp.Body, &doc); err == nil && len(doc.Error) > 0 {
		var s string
		if err := json.Unmarshal(doc.Error, &s); err == nil && s != "" {
			return s
		}

		var obj struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(doc.Error, &obj); err == nil && obj.Message != "" {
			return obj.Message
		}
	}

	if msg := strings.TrimSpace(string(resp.Body)); msg != "" {
		return msg
	}

	return http.StatusText(resp.Status)
}
