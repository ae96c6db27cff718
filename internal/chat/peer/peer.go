// Package peer keeps a single client connection: it reads inbound lines
// and delivers outbound lines through a buffered outbox drained by a
// dedicated writer, so every peer receives its lines in FIFO order and a
// stalled socket never blocks the sender longer than the send timeout.
package peer

import (
	"bufio"
	"context"
	"io"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Peer - keeper of one network connection.
type Peer struct {
	id   string
	conn net.Conn

	idleTimeout,
	writeTimeout,
	sendTimeout time.Duration
	outboxSize int

	outbox  chan string
	scanner *bufio.Scanner

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	closeOnce sync.Once
}

type peerOption func(p *Peer) error

func setup(p *Peer, options ...peerOption) error {
	if p == nil {
		return nil
	}
	for _, option := range options {
		if option == nil {
			continue
		}
		if err := option(p); err != nil {
			return err
		}
	}
	return nil
}

// New - builds Peer over conn and starts its writer in background.
// The peer is closed when ctx expires, when Close is called or when a
// write to conn fails.
func New(ctx context.Context, conn net.Conn, options ...peerOption) (*Peer, error) {
	if conn == nil {
		return nil, ErrNilConn
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	p := &Peer{
		id:           uuid.NewString(),
		conn:         conn,
		idleTimeout:  60 * time.Second,
		writeTimeout: 30 * time.Second,
		sendTimeout:  5 * time.Second,
		outboxSize:   32,
		ctx:          ctx,
		cancel:       cancel,
	}

	if err := setup(p, options...); err != nil {
		cancel()
		return nil, err
	}

	p.outbox = make(chan string, p.outboxSize)
	p.scanner = bufio.NewScanner(conn)

	p.wg.Add(1)
	go p.maintainOutbox()

	return p, nil
}

// ID - stable peer identifier.
func (p *Peer) ID() string {
	return p.id
}

// RemoteAddr - address of the connected client.
func (p *Peer) RemoteAddr() net.Addr {
	return p.conn.RemoteAddr()
}

// Done - closed when the peer is not usable anymore.
func (p *Peer) Done() <-chan struct{} {
	return p.ctx.Done()
}

// ReadLine - blocks until next newline-terminated line arrives, the idle
// timeout expires or the connection fails. The returned line is stripped
// of its line ending.
func (p *Peer) ReadLine() (string, error) {
	if p.ctx.Err() != nil {
		return "", ErrClosed
	}
	if p.idleTimeout > 0 {
		p.conn.SetReadDeadline(time.Now().Add(p.idleTimeout))
	}
	if p.scanner.Scan() {
		return p.scanner.Text(), nil
	}
	if err := p.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Send - enqueues line for delivery, appending a line ending when absent.
// It blocks at most the send timeout; ErrSendTimeout signals the peer is
// too slow and should be closed by the caller.
func (p *Peer) Send(line string) error {
	if p.ctx.Err() != nil {
		return ErrClosed
	}
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	timeout := time.NewTimer(p.sendTimeout)
	defer timeout.Stop()
	select {
	case p.outbox <- line:
		return nil
	case <-p.ctx.Done():
		return ErrClosed
	case <-timeout.C:
		return ErrSendTimeout
	}
}

// Close - stops the writer and releases the connection. The lines already
// queued at close time are still flushed, bounded by the write timeout.
// Safe to call repeatedly and from any goroutine.
func (p *Peer) Close() error {
	p.closeOnce.Do(p.cancel)
	return nil
}

// Wait - blocks until the writer goroutine has released the connection.
func (p *Peer) Wait() {
	p.wg.Wait()
}

func (p *Peer) maintainOutbox() {
	defer func() {
		p.drain()
		// releasing conn unblocks the reader too
		p.conn.Close()
		p.wg.Done()
	}()
	for {
		select {
		case line := <-p.outbox:
			if !p.write(line) {
				p.Close()
				return
			}
		case <-p.ctx.Done():
			return
		}
	}
}

// drain - flushes lines queued before the peer was closed.
func (p *Peer) drain() {
	for {
		select {
		case line := <-p.outbox:
			if !p.write(line) {
				return
			}
		default:
			return
		}
	}
}

func (p *Peer) write(line string) bool {
	if p.writeTimeout > 0 {
		p.conn.SetWriteDeadline(time.Now().Add(p.writeTimeout))
	}
	_, err := io.WriteString(p.conn, line)
	return err == nil
}
