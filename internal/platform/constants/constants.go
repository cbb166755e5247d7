// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants holds the fixed values shared across the platform layer.

Categories:

  - Server Timing: HTTP server and lifecycle deadlines.
  - Rate Limiting: Idle client bookkeeping for the per-IP limiter.
  - HTTP: Header names, JSON keys and query parameters.

Tunable values (ports, limits, pool sizes) live in [config.Config] instead.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "fyyur-api"
	AppVersion = "0.1.0"
)

// # Server Timing

const (
	// DefaultReadTimeout bounds reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout bounds writing the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout bounds keep-alive idleness between requests.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout bounds reading request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for a whole request, and the
	// PostgreSQL statement timeout.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long in-flight requests get to finish on shutdown.
	ShutdownTimeout = 30 * time.Second

	// StartupTimeout bounds store connection and migrations at boot.
	StartupTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// RateLimitCleanupInterval is how often idle clients are swept.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client may stay idle before it is forgotten.
	RateLimitClientTTL = 3 * time.Minute
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderOrigin        = "Origin"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderRetryAfter    = "Retry-After"
)

// # JSON Field Identifiers

const (
	FieldStatus  = "status"
	FieldChecks  = "checks"
	FieldVersion = "version"
)

// # Query Parameters

const (
	// QuerySearchTerm carries the case-insensitive name search term.
	QuerySearchTerm = "q"

	// QueryTimeframe selects past or upcoming shows.
	QueryTimeframe = "when"
)
