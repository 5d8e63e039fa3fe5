package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/love514425/kraken/pkg/frontend"
	"github.com/love514425/kraken/pkg/logging"
)

// SessionFactory creates the session for one accepted debugging connection.
// The returned Dispatch is fed every inbound frame, one at a time; Close is
// called when the connection ends.
type SessionFactory func(channel frontend.Channel) SessionHandler

// SessionHandler is the slice of a session the serve loop needs.
type SessionHandler interface {
	Dispatch(raw []byte)
	Close() error
}

// ServerConfig configures the debugging endpoint.
type ServerConfig struct {
	// Addr is the listen address, e.g. "127.0.0.1:9222".
	Addr string
	// Path is the websocket upgrade path (default "/devtools").
	Path string
	// Logger receives connection lifecycle logs.
	Logger logging.Logger
	// NewSession builds the session for each connection.
	NewSession SessionFactory
}

// Server accepts debugging connections and runs one session per connection.
// Frames on a connection are dispatched strictly in order, each command to
// completion before the next is read.
type Server struct {
	config     ServerConfig
	logger     logging.Logger
	listener   net.Listener
	httpServer *http.Server
}

// NewServer creates a server. Start must be called before it accepts.
func NewServer(config ServerConfig) (*Server, error) {
	if config.NewSession == nil {
		return nil, errors.New("transport: ServerConfig.NewSession is required")
	}
	if config.Path == "" {
		config.Path = "/devtools"
	}
	logger := config.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	return &Server{
		config: config,
		logger: logger.WithFields(logging.String("component", "inspector-server")),
	}, nil
}

// Addr returns the bound listen address once Start has been called.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.config.Addr
	}
	return s.listener.Addr().String()
}

// Start binds the listener and serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Addr, err)
	}
	s.listener = listener

	mux := http.NewServeMux()
	mux.HandleFunc(s.config.Path, func(w http.ResponseWriter, r *http.Request) {
		s.handleConnection(ctx, w, r)
	})
	s.httpServer = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("inspector listening",
		logging.String("addr", s.Addr()), logging.String("path", s.config.Path))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// handleConnection upgrades one request and runs its session's read loop to
// completion.
func (s *Server) handleConnection(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		// Front ends connect from devtools:// and file:// origins.
		InsecureSkipVerify: true,
	})
	if err != nil {
		s.logger.Warn("websocket upgrade failed", logging.ErrorField(err))
		return
	}

	channel := NewWebSocketChannel(ctx, conn)
	handler := s.config.NewSession(channel)
	s.logger.Info("debugging connection opened",
		logging.String("remote", r.RemoteAddr))

	defer func() {
		if err := handler.Close(); err != nil {
			s.logger.Warn("session close failed", logging.ErrorField(err))
		}
		s.logger.Info("debugging connection closed",
			logging.String("remote", r.RemoteAddr))
	}()

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) != -1 || errors.Is(err, context.Canceled) {
				return
			}
			s.logger.Warn("connection read failed", logging.ErrorField(err))
			return
		}
		// One command at a time: dispatch runs to completion before the
		// next frame is read.
		handler.Dispatch(data)
	}
}
