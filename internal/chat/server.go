// Package chat implements the core of a room-based text chat relay over
// any net.Listener: a directory of rooms, per-room broadcasting and a
// per-connection protocol session.
package chat

import (
	"errors"
	"net"
	"time"

	"github.com/wtask/roomchat/internal/chat/peer"
	"github.com/wtask/roomchat/pkg/background"
)

// Server - accepts client connections and runs a Session per connection.
// The room directory is owned by the caller and passed in explicitly.
type Server struct {
	registry *Registry
	wording  Wording
	logger   Logger
	metrics  Metrics

	idleTimeout,
	writeTimeout,
	sendTimeout time.Duration
	outboxSize    int
	historyGreets int

	scope  *background.Scope
	cancel func()
}

// New - builds chat server around the given room directory.
func New(registry *Registry, options ...Option) (*Server, error) {
	if registry == nil {
		return nil, errors.New("chat.New: registry is nil")
	}
	scope, cancel := background.NewScope()
	s := &Server{
		registry:     registry,
		wording:      DefaultWording(),
		idleTimeout:  60 * time.Second,
		writeTimeout: 30 * time.Second,
		sendTimeout:  5 * time.Second,
		outboxSize:   32,
		scope:        scope,
		cancel:       cancel,
	}

	if err := setup(s, options...); err != nil {
		cancel()
		return nil, err
	}

	registry.metrics = s.metrics
	return s, nil
}

// Serve - accepts connections from listener until Shutdown. Blocks, run
// it in a dedicated goroutine. Accept errors are logged and the loop
// continues.
func (s *Server) Serve(listener net.Listener) {
	if listener == nil || !s.scope.Active() {
		return
	}
	s.scope.Go(func() {
		// close listener to break the accept loop on shutdown
		<-s.scope.Context().Done()
		listener.Close()
	})

	s.scope.Add(1)
	defer s.scope.Done()
	for {
		conn, err := listener.Accept()
		if err != nil {
			select {
			case <-s.scope.Context().Done():
				return
			default:
			}
			logError(s.logger, "accept:", err)
			continue
		}
		s.keep(conn)
	}
}

// keep - wraps the accepted connection into a peer and starts its
// session in background.
func (s *Server) keep(conn net.Conn) {
	p, err := peer.New(
		s.scope.Context(),
		conn,
		peer.WithIdleTimeout(s.idleTimeout),
		peer.WithWriteTimeout(s.writeTimeout),
		peer.WithSendTimeout(s.sendTimeout),
		peer.WithOutboxSize(s.outboxSize),
	)
	if err != nil {
		logError(s.logger, "keep connection:", err)
		conn.Close()
		return
	}
	metricConnOpened(s.metrics)
	logInfo(s.logger, "peer", p.ID(), "connected from", formatAddress(p.RemoteAddr()))
	s.scope.Go(newSession(s, p).Run)
}

// Shutdown - stops accepting, closes all sessions and waits for them,
// bounded by timeout. Returns time spent stopping, never more than the
// given timeout. Peers are derived from the server scope, so cancelling
// the scope releases every kept connection.
func (s *Server) Shutdown(timeout time.Duration) time.Duration {
	if !s.scope.Active() {
		return 0
	}
	from := time.Now()
	done := make(chan struct{})
	go func() {
		s.cancel()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
	}
	return time.Since(from)
}
