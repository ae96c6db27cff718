package chat

// Metrics - interface for counters the server reports.
// Implementations must be safe for concurrent use.
type Metrics interface {
	// ConnOpened/ConnClosed - client connection lifecycle.
	ConnOpened()
	ConnClosed()
	// RoomCreated/RoomRemoved - room directory lifecycle.
	RoomCreated()
	RoomRemoved()
	// MessageBroadcast - one broadcast with per-member delivery outcome.
	MessageBroadcast(delivered, dropped int)
}

func metricConnOpened(m Metrics) {
	if m == nil {
		return
	}
	m.ConnOpened()
}

func metricConnClosed(m Metrics) {
	if m == nil {
		return
	}
	m.ConnClosed()
}

func metricRoomCreated(m Metrics) {
	if m == nil {
		return
	}
	m.RoomCreated()
}

func metricRoomRemoved(m Metrics) {
	if m == nil {
		return
	}
	m.RoomRemoved()
}

func metricMessageBroadcast(m Metrics, delivered, dropped int) {
	if m == nil {
		return
	}
	m.MessageBroadcast(delivered, dropped)
}
