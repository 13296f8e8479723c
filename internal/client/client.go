// Package client holds typed HTTP clients for the peer services.
// Every call carries a fixed short timeout; a timeout, connection error
// or unexpected status surfaces as ErrDependencyUnavailable, never as
// not-found. Only an explicit 404 from the peer maps to ErrNotFound.
package client

import (
	"net/http"
	"time"
)

// DefaultTimeout bounds every outbound peer call.
const DefaultTimeout = 3 * time.Second

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: DefaultTimeout}
}
