// Package errs provides the error types handlers return and their
// translation into the error body sent to the browser.
package errs

import (
	"errors"
	"net/http"

	"github.com/ardanlabs/skywallet/business/sys/validate"
	"github.com/ardanlabs/skywallet/foundation/nodeclient"
)

// ErrNodeUnavailable is reported when the node could not be reached.
var ErrNodeUnavailable = errors.New("node unavailable")

// Response is the form used for API responses from failures in the API.
type Response struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Trusted is an error whose message is safe to show the client, paired with
// the status to respond with.
type Trusted struct {
	Err    error
	Status int
}

// NewTrusted wraps a provided error with an HTTP status code.
func NewTrusted(err error, status int) error {
	return &Trusted{err, status}
}

// NodeUnavailable is the trusted error for a node that did not answer.
func NodeUnavailable() error {
	return &Trusted{ErrNodeUnavailable, http.StatusInternalServerError}
}

// FromNode relays a failed node reply with the node's status.
func FromNode(status int, msg string) error {
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &Trusted{errors.New(msg), status}
}

// Error implements the error interface.
func (te *Trusted) Error() string {
	return te.Err.Error()
}

// Unwrap returns the wrapped error.
func (te *Trusted) Unwrap() error {
	return te.Err
}

// IsTrusted checks if an error of type Trusted exists.
func IsTrusted(err error) bool {
	var te *Trusted
	return errors.As(err, &te)
}

// GetTrusted returns a copy of the Trusted pointer.
func GetTrusted(err error) *Trusted {
	var te *Trusted
	if !errors.As(err, &te) {
		return nil
	}
	return te
}

// =============================================================================

// Translate converts an error from the call chain into the body and status
// to respond with. Messages of untrusted errors are never exposed.
func Translate(err error) (Response, int) {
	switch {
	case validate.IsFieldErrors(err):
		fe := validate.GetFieldErrors(err)
		return Response{Error: "data validation error", Fields: fe.Fields()}, http.StatusBadRequest

	case IsTrusted(err):
		te := GetTrusted(err)
		return Response{Error: te.Error()}, te.Status

	case nodeclient.GetAPIError(err) != nil:
		ae := nodeclient.GetAPIError(err)
		return Response{Error: ae.Message}, ae.Status
	}

	return Response{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError
}
