package chat

import (
	"sort"
	"sync"

	"github.com/wtask/roomchat/internal/chat/peer"
)

// RoomInfo - point-in-time room directory entry.
type RoomInfo struct {
	Name    string
	Members int
}

// Registry - server-wide directory of active rooms. Rooms are created
// lazily on first join and removed together with the last member's
// departure: Join and Leave mutate membership and the directory inside
// one critical section, so a room visible to a joiner always has at
// least one member and an emptied room is never resurrected by a racing
// join. The zero value is not usable, build it with NewRegistry.
type Registry struct {
	mu           sync.RWMutex
	rooms        map[string]*Room
	historyDepth int
	metrics      Metrics
}

// NewRegistry - builds an empty room directory. Every room created by the
// directory keeps up to historyDepth recent lines for join replay, zero
// disables history keeping.
func NewRegistry(historyDepth int) *Registry {
	if historyDepth < 0 {
		historyDepth = 0
	}
	return &Registry{
		rooms:        map[string]*Room{},
		historyDepth: historyDepth,
	}
}

// GetOrCreate - returns the room registered under name, installing a new
// empty room when absent. Exactly one room instance exists per name even
// under a race of simultaneous first-joiners.
func (g *Registry) GetOrCreate(name string) *Room {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.getOrCreate(name)
}

// getOrCreate - callers must hold g.mu for writing.
func (g *Registry) getOrCreate(name string) *Room {
	if r, ok := g.rooms[name]; ok {
		return r
	}
	r := newRoom(name, g.historyDepth)
	g.rooms[name] = r
	metricRoomCreated(g.metrics)
	return r
}

// Join - registers p as a member of the named room, creating the room
// when absent.
func (g *Registry) Join(name string, p *peer.Peer) *Room {
	g.mu.Lock()
	defer g.mu.Unlock()
	r := g.getOrCreate(name)
	r.addMember(p)
	return r
}

// Leave - removes p from the named room and drops the room from the
// directory when p was its last member. No-op for unknown rooms and for
// non-members.
func (g *Registry) Leave(name string, p *peer.Peer) (removedRoom bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	r, ok := g.rooms[name]
	if !ok {
		return false
	}
	if !r.removeMember(p) {
		return false
	}
	delete(g.rooms, name)
	metricRoomRemoved(g.metrics)
	return true
}

// Remove - drops the named room, but only when it is empty at the moment
// of the check. A join racing in keeps the room registered.
func (g *Registry) Remove(name string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	r, ok := g.rooms[name]
	if !ok || r.Size() > 0 {
		return false
	}
	delete(g.rooms, name)
	metricRoomRemoved(g.metrics)
	return true
}

// Lookup - finds the room registered under name.
func (g *Registry) Lookup(name string) (*Room, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	r, ok := g.rooms[name]
	return r, ok
}

// Len - current number of registered rooms.
func (g *Registry) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.rooms)
}

// List - lazily-consistent directory snapshot ordered by room name.
// Member counts may be stale by the time they are read.
func (g *Registry) List() []RoomInfo {
	g.mu.RLock()
	list := make([]RoomInfo, 0, len(g.rooms))
	for name, r := range g.rooms {
		list = append(list, RoomInfo{Name: name, Members: r.Size()})
	}
	g.mu.RUnlock()
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	return list
}
