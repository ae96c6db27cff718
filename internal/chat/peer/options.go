package peer

import (
	"fmt"
	"time"
)

// WithIdleTimeout - overwrites default idle period after which a silent
// peer is treated as gone. Zero disables the read deadline.
func WithIdleTimeout(timeout time.Duration) peerOption {
	return func(p *Peer) error {
		if timeout < 0 {
			return fmt.Errorf("peer.WithIdleTimeout: invalid timeout (%v)", timeout)
		}
		p.idleTimeout = timeout
		return nil
	}
}

// WithWriteTimeout - overwrites default timeout for a single write to the
// underlying connection.
func WithWriteTimeout(timeout time.Duration) peerOption {
	return func(p *Peer) error {
		if timeout <= 0 {
			return fmt.Errorf("peer.WithWriteTimeout: invalid timeout (%v)", timeout)
		}
		p.writeTimeout = timeout
		return nil
	}
}

// WithSendTimeout - overwrites default bound for enqueueing one outbound
// line when the peer's outbox is full.
func WithSendTimeout(timeout time.Duration) peerOption {
	return func(p *Peer) error {
		if timeout <= 0 {
			return fmt.Errorf("peer.WithSendTimeout: invalid timeout (%v)", timeout)
		}
		p.sendTimeout = timeout
		return nil
	}
}

// WithOutboxSize - overwrites default capacity of the outbound line queue.
func WithOutboxSize(size int) peerOption {
	return func(p *Peer) error {
		if size <= 0 {
			return fmt.Errorf("peer.WithOutboxSize: invalid size (%d)", size)
		}
		p.outboxSize = size
		return nil
	}
}
