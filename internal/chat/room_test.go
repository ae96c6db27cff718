package chat

import (
	"bufio"
	"context"
	"net"
	"reflect"
	"testing"
	"time"

	"github.com/wtask/roomchat/internal/chat/peer"
)

// readingPeer - builds a peer whose client side collects complete lines.
func readingPeer(test *testing.T, lines int) (*peer.Peer, func() []string) {
	test.Helper()
	clientConn, serverConn := net.Pipe()
	p, err := peer.New(context.Background(), serverConn, peer.WithSendTimeout(100*time.Millisecond))
	if err != nil {
		test.Fatal("peer.New, unexpected error:", err)
	}
	test.Cleanup(func() {
		p.Close()
		clientConn.Close()
	})

	received := make([]string, 0, lines)
	done := make(chan struct{})
	go func() {
		defer close(done)
		scanner := bufio.NewScanner(clientConn)
		for len(received) < lines && scanner.Scan() {
			received = append(received, scanner.Text())
		}
	}()
	return p, func() []string {
		select {
		case <-done:
		case <-time.After(time.Second):
			test.Error("client did not receive", lines, "line(s) in time")
		}
		return received
	}
}

func TestRoom_removeMember(test *testing.T) {
	r := newRoom("lobby", 0)
	p1, _ := readingPeer(test, 0)
	p2, _ := readingPeer(test, 0)

	r.addMember(p1)
	r.addMember(p2)
	if r.Size() != 2 {
		test.Error("expected 2 members, got", r.Size())
	}

	if empty := r.removeMember(p1); empty {
		test.Error("room with remaining member reported empty")
	}
	// repeated removal is a no-op, not an error
	if empty := r.removeMember(p1); empty {
		test.Error("room with remaining member reported empty")
	}
	if empty := r.removeMember(p2); !empty {
		test.Error("emptied room not reported empty")
	}
}

func TestRoom_Broadcast(test *testing.T) {
	r := newRoom("lobby", 0)
	messages := []string{"message-1", "message 2"}

	collect := make([]func() []string, 0, 3)
	for i := 0; i < 3; i++ {
		p, lines := readingPeer(test, len(messages))
		r.addMember(p)
		collect = append(collect, lines)
	}

	for _, m := range messages {
		delivered, dropped := r.Broadcast(m)
		if delivered != 3 || dropped != 0 {
			test.Error("expected delivery to 3 members, got", delivered, "delivered,", dropped, "dropped")
		}
	}

	for i, lines := range collect {
		if got := lines(); !reflect.DeepEqual(got, messages) {
			test.Error("member", i+1, "expected", messages, "received", got)
		}
	}
}

func TestRoom_Broadcast_stalledMember(test *testing.T) {
	r := newRoom("lobby", 0)

	healthy, lines := readingPeer(test, 3)
	r.addMember(healthy)

	// stalled member: nobody reads its client side, minimal outbox
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	stalled, err := peer.New(
		context.Background(),
		serverConn,
		peer.WithOutboxSize(1),
		peer.WithSendTimeout(20*time.Millisecond),
		peer.WithWriteTimeout(time.Second),
	)
	if err != nil {
		test.Fatal("peer.New, unexpected error:", err)
	}
	defer stalled.Close()
	r.addMember(stalled)

	messages := []string{"one", "two", "three"}
	totalDropped := 0
	for _, m := range messages {
		delivered, dropped := r.Broadcast(m)
		if delivered < 1 {
			test.Error("healthy member lost broadcast", m)
		}
		totalDropped += dropped
	}
	if totalDropped == 0 {
		test.Error("expected drops for the stalled member")
	}
	select {
	case <-stalled.Done():
	default:
		test.Error("stalled member must be closed after a drop")
	}
	// the healthy member received everything in order
	if got := lines(); !reflect.DeepEqual(got, messages) {
		test.Error("healthy member expected", messages, "received", got)
	}
}

func TestRoom_Replay(test *testing.T) {
	r := newRoom("lobby", 5)
	for _, m := range []string{"old", "one", "two"} {
		r.Broadcast(m) // no members yet, history only
	}

	p, lines := readingPeer(test, 2)
	r.Replay(p, 2)
	if got := lines(); !reflect.DeepEqual(got, []string{"one", "two"}) {
		test.Error("expected replay of 2 latest lines, got", got)
	}

	// disabled history replays nothing
	quiet := newRoom("quiet", 0)
	p2, _ := readingPeer(test, 0)
	quiet.Replay(p2, 10)
}
