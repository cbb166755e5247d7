// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package middleware provides the cross-cutting HTTP processing chain.

Each constructor returns a func(http.Handler) http.Handler suitable for
chi's Router.Use. The chain installed by the api package is, in order:

  - RequestID: correlation id on the context and the response.
  - StructuredLogger: per-request slog logger and one access log line.
  - RateLimit: per-IP token bucket.
  - PanicRecovery: converts panics into a 500 envelope.
  - CORS: origin policy from configuration.

Error responses use the same JSON envelope as the domain handlers.
*/
package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/taibuivan/fyyur/internal/platform/constants"
)

// RealIP extracts the client IP, preferring common proxy headers.
func RealIP(request *http.Request) string {
	if ip := strings.TrimSpace(request.Header.Get(constants.HeaderXRealIP)); ip != "" {
		return ip
	}

	if forwarded := request.Header.Get(constants.HeaderXForwardedFor); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(request.RemoteAddr)
	if err != nil {
		return request.RemoteAddr
	}
	return host
}
