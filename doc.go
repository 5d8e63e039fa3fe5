// Package kraken implements the server side of a Chrome DevTools Protocol
// debugging channel for an embedded JavaScript engine.
//
// A host embeds the inspector by handing each debugging connection to a
// session. The session owns the per-domain dispatchers (Page, Log, Debugger)
// and their backing agents, routes incoming commands by method name, and
// writes responses and events back through a frontend channel.
//
// # Overview
//
// The inspector consists of several sub-packages:
//
//   - pkg/protocol: Wire envelopes, typed notification builders, and the
//     dispatch response model
//   - pkg/dispatcher: Per-domain command routing with deprecated-method
//     aliases
//   - pkg/agents: Domain backends invoked by dispatchers, plus the console
//     client the engine reports messages through
//   - pkg/frontend: The channel abstraction and typed event emitters
//   - pkg/session: Ties channel, dispatchers, and agents into one debugging
//     session
//   - pkg/transport: Websocket server carrying sessions over real
//     connections
//
// # Embedding a Session
//
// A host that manages its own connections creates a session directly:
//
//	import (
//	    "github.com/love514425/kraken"
//	    "github.com/love514425/kraken/pkg/frontend"
//	)
//
//	func attach(channel frontend.Channel, host PageHost) {
//	    sess := kraken.NewSession(channel, host)
//	    // Feed each inbound command frame to sess.Dispatch; call
//	    // sess.Close when the connection ends.
//	}
//
// # Serving Connections
//
// Hosts that want a ready-made endpoint use the transport server, which
// accepts websocket connections and runs one session per connection:
//
//	server, err := kraken.NewServer(transport.ServerConfig{
//	    Addr: "127.0.0.1:9222",
//	    NewSession: func(channel frontend.Channel) transport.SessionHandler {
//	        return kraken.NewSession(channel, host)
//	    },
//	})
//	if err != nil {
//	    // Handle error
//	}
//	err = server.Start(ctx)
//
// Commands on a connection are dispatched strictly in order; each command
// runs to completion, and any events it causes are emitted, before the next
// command is read.
package kraken
