// Package httpserver constructs the registry's HTTP servers with a shared
// timeout discipline derived from the configured request timeout.
package httpserver

import (
	"net/http"
	"time"
)

const (
	headerTimeout = 5 * time.Second
	idleTimeout   = 60 * time.Second
)

// New builds an HTTP server for the given listener address. Read and write
// timeouts are derived from requestTimeout so a slow client cannot hold a
// connection longer than a request is allowed to run; the write timeout gets
// headroom for the in-flight handler to finish responding.
func New(addr string, handler http.Handler, requestTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: headerTimeout,
		ReadTimeout:       requestTimeout,
		WriteTimeout:      requestTimeout + headerTimeout,
		IdleTimeout:       idleTimeout,
	}
}
