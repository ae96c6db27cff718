package chat

import (
	"sync"

	"github.com/wtask/roomchat/internal/chat/history"
	"github.com/wtask/roomchat/internal/chat/peer"
)

// Room - named group of peers which receive each other's broadcasts.
// Membership is mutated only through Registry methods, so the room can
// never be observed inside the directory without members.
type Room struct {
	name string

	mu      sync.RWMutex
	members map[*peer.Peer]struct{}

	// recent - nil when history keeping is disabled
	recent *history.Ring
}

func newRoom(name string, historyDepth int) *Room {
	r := &Room{
		name:    name,
		members: map[*peer.Peer]struct{}{},
	}
	if historyDepth > 0 {
		r.recent, _ = history.NewRing(historyDepth)
	}
	return r
}

// Name - immutable room name, the directory key.
func (r *Room) Name() string {
	return r.name
}

// Size - current number of members.
func (r *Room) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members)
}

func (r *Room) addMember(p *peer.Peer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members[p] = struct{}{}
}

// removeMember - deletes p from the member set and reports whether the
// room is empty afterwards. Removing a non-member is a no-op, a peer may
// be removed twice under disconnect races.
func (r *Room) removeMember(p *peer.Peer) (empty bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.members, p)
	return len(r.members) == 0
}

// Broadcast - delivers line to every current member, sender included.
// Delivery is best-effort and independent per member: a stalled or failed
// member is closed and skipped without affecting the others. Per member,
// lines arrive in the order they were enqueued to its outbox.
func (r *Room) Broadcast(line string) (delivered, dropped int) {
	r.mu.RLock()
	members := make([]*peer.Peer, 0, len(r.members))
	for p := range r.members {
		members = append(members, p)
	}
	r.mu.RUnlock()

	if r.recent != nil {
		r.recent.Push(line)
	}
	for _, p := range members {
		if err := p.Send(line); err != nil {
			// the member's own cleanup runs after its connection is released
			p.Close()
			dropped++
			continue
		}
		delivered++
	}
	return delivered, dropped
}

// Replay - sends up to n most recent broadcast lines to p, oldest first.
func (r *Room) Replay(p *peer.Peer, n int) {
	if r.recent == nil || n <= 0 {
		return
	}
	for _, line := range r.recent.Tail(n) {
		if p.Send(line) != nil {
			return
		}
	}
}
