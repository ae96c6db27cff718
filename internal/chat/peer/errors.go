package peer

import "errors"

var (
	// ErrNilConn - returned by New for a nil network connection.
	ErrNilConn = errors.New("peer.New: nil connection")

	// ErrClosed - returned when the peer is closed and can not
	// accept or deliver lines anymore.
	ErrClosed = errors.New("peer.Peer: closed")

	// ErrSendTimeout - returned when a line could not be enqueued within
	// the send timeout. The peer is likely stalled and should be closed.
	ErrSendTimeout = errors.New("peer.Peer: send timed out")
)
