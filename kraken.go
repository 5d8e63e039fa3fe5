// Package kraken provides an embeddable Chrome DevTools Protocol debugging
// server for JavaScript engine hosts.
package kraken

import (
	"github.com/love514425/kraken/pkg/session"
	"github.com/love514425/kraken/pkg/transport"
)

// Version represents the current version of the inspector.
const Version = "1.0.0"

// These exports provide direct access to the core components
var (
	// NewSession creates an inspector session over a frontend channel
	NewSession = session.New

	// NewServer creates a websocket debugging endpoint
	NewServer = transport.NewServer

	// NewWebSocketChannel wraps an accepted websocket connection as a
	// frontend channel
	NewWebSocketChannel = transport.NewWebSocketChannel
)

// Session options
var (
	WithSessionLogger  = session.WithLogger
	WithSessionMetrics = session.WithMetrics
	WithSessionTracing = session.WithTracing
)
