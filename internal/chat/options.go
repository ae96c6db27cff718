package chat

import (
	"errors"
	"fmt"
	"time"
)

// Option - optional server dependency or setting.
type Option func(s *Server) error

func setup(s *Server, options ...Option) error {
	if s == nil {
		return nil
	}
	for _, option := range options {
		if option == nil {
			continue
		}
		if err := option(s); err != nil {
			return err
		}
	}
	return nil
}

// WithLogger - attach logger for server events. Without a logger the
// server is silent.
func WithLogger(l Logger) Option {
	return func(s *Server) error {
		if l == nil {
			return errors.New("chat.WithLogger: logger is nil")
		}
		s.logger = l
		return nil
	}
}

// WithMetrics - attach counters reporting. Without metrics reporting is
// disabled.
func WithMetrics(m Metrics) Option {
	return func(s *Server) error {
		if m == nil {
			return errors.New("chat.WithMetrics: metrics is nil")
		}
		s.metrics = m
		return nil
	}
}

// WithWording - overwrites default protocol texts. All texts including
// the close sentinel are required.
func WithWording(w Wording) Option {
	return func(s *Server) error {
		if !w.complete() {
			return errors.New("chat.WithWording: all wording texts are required")
		}
		s.wording = w
		return nil
	}
}

// WithIdleTimeout - overwrites default idle period before a silent
// client is disconnected. Zero disables the idle disconnect.
func WithIdleTimeout(timeout time.Duration) Option {
	return func(s *Server) error {
		if timeout < 0 {
			return fmt.Errorf("chat.WithIdleTimeout: invalid timeout (%v)", timeout)
		}
		s.idleTimeout = timeout
		return nil
	}
}

// WithWriteTimeout - overwrites default timeout of a single write to a
// client connection.
func WithWriteTimeout(timeout time.Duration) Option {
	return func(s *Server) error {
		if timeout <= 0 {
			return fmt.Errorf("chat.WithWriteTimeout: invalid timeout (%v)", timeout)
		}
		s.writeTimeout = timeout
		return nil
	}
}

// WithSendTimeout - overwrites default bound for how long a broadcast may
// block on one slow recipient before the line is dropped for it.
func WithSendTimeout(timeout time.Duration) Option {
	return func(s *Server) error {
		if timeout <= 0 {
			return fmt.Errorf("chat.WithSendTimeout: invalid timeout (%v)", timeout)
		}
		s.sendTimeout = timeout
		return nil
	}
}

// WithOutboxSize - overwrites default capacity of per-client outbound
// line queues.
func WithOutboxSize(size int) Option {
	return func(s *Server) error {
		if size <= 0 {
			return fmt.Errorf("chat.WithOutboxSize: invalid size (%d)", size)
		}
		s.outboxSize = size
		return nil
	}
}

// WithHistoryGreets - number of recent room lines replayed to a joiner.
// Effective only when the registry keeps room history.
func WithHistoryGreets(n int) Option {
	return func(s *Server) error {
		if n < 0 {
			return fmt.Errorf("chat.WithHistoryGreets: invalid number (%d)", n)
		}
		s.historyGreets = n
		return nil
	}
}
