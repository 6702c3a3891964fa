// Package timeouts defines shared timeout constants used by the servers.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// Request caps the time allowed for a single simulation request.
const Request = 30 * time.Second

// OTelShutdown caps how long pending spans may take to flush at exit.
const OTelShutdown = 5 * time.Second
