package chat

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/wtask/roomchat/internal/chat/message"
	"github.com/wtask/roomchat/internal/chat/peer"
)

type sessionState int

const (
	// stateUnnamed - connected, display name not consumed yet.
	stateUnnamed sessionState = iota
	// stateIdle - named, member of no room.
	stateIdle
	// stateInRoom - named, member of exactly one room.
	stateInRoom
	// stateClosed - terminal, connection resources released.
	stateClosed
)

func (s sessionState) String() string {
	switch s {
	case stateUnnamed:
		return "unnamed"
	case stateIdle:
		return "idle"
	case stateInRoom:
		return "in-room"
	case stateClosed:
		return "closed"
	default:
		return "unknown session state"
	}
}

// Session - per-connection protocol state machine. It owns the display
// name and the current room membership of one client and translates
// inbound lines into registry and room operations. All fields are
// accessed from the single goroutine running Run, shared state lives in
// the registry and the rooms.
type Session struct {
	peer     *peer.Peer
	registry *Registry
	wording  Wording
	logger   Logger
	metrics  Metrics

	historyGreets int
	now           func() time.Time

	state sessionState
	name  string
	// room - current room name, a non-owning reference resolved through
	// the registry. Non-empty iff state is stateInRoom.
	room string
}

func newSession(srv *Server, p *peer.Peer) *Session {
	return &Session{
		peer:          p,
		registry:      srv.registry,
		wording:       srv.wording,
		logger:        srv.logger,
		metrics:       srv.metrics,
		historyGreets: srv.historyGreets,
		now:           time.Now,
		state:         stateUnnamed,
	}
}

// Run - drives the session from the name prompt to disconnect. A
// client-issued EXIT, a read failure, an idle timeout and an abrupt
// disconnect all converge on the same cleanup in close.
func (s *Session) Run() {
	defer s.close()

	if s.peer.Send(s.wording.NamePrompt) != nil {
		return
	}
	name, err := s.peer.ReadLine()
	if err != nil {
		return
	}
	// empty is accepted as a degenerate name
	s.name = message.Sanitize(name)
	s.state = stateIdle
	logInfo(s.logger, "session", s.peer.ID(), "named", strconv.Quote(s.name))
	if s.peer.Send(fmt.Sprintf(s.wording.Welcome, s.name)) != nil {
		return
	}

	for {
		line, err := s.peer.ReadLine()
		if err != nil {
			if err != io.EOF && err != peer.ErrClosed {
				logInfo(s.logger, "session", s.peer.ID(), "read:", err)
			}
			return
		}
		if line == "" {
			continue
		}
		cmd := message.Parse(line)
		switch cmd.Kind {
		case message.Join:
			s.join(cmd.Room)
		case message.Leave:
			s.leave()
		case message.ListRooms:
			s.listRooms()
		case message.Exit:
			return
		default:
			s.say(cmd.Text)
		}
	}
}

// join - implicitly leaves the current room first, a session is a member
// of at most one room at a time.
func (s *Session) join(room string) {
	s.leave()
	r := s.registry.Join(room, s.peer)
	s.room = room
	s.state = stateInRoom
	s.peer.Send(fmt.Sprintf(s.wording.Entered, room))
	r.Replay(s.peer, s.historyGreets)
	logInfo(s.logger, "session", s.peer.ID(), "entered room", strconv.Quote(room))
}

// leave - no-op unless the session is in a room.
func (s *Session) leave() {
	if s.state != stateInRoom {
		return
	}
	s.registry.Leave(s.room, s.peer)
	s.peer.Send(fmt.Sprintf(s.wording.Left, s.room))
	logInfo(s.logger, "session", s.peer.ID(), "left room", strconv.Quote(s.room))
	s.room = ""
	s.state = stateIdle
}

func (s *Session) listRooms() {
	if s.peer.Send(s.wording.ListHeader) != nil {
		return
	}
	for _, info := range s.registry.List() {
		if s.peer.Send(fmt.Sprintf(s.wording.ListEntry, info.Name, info.Members)) != nil {
			return
		}
	}
}

// say - broadcasts text to the current room. Outside of a room the text
// is silently dropped, that is accepted behavior, not an error.
func (s *Session) say(text string) {
	if s.state != stateInRoom || text == "" {
		return
	}
	r, ok := s.registry.Lookup(s.room)
	if !ok {
		return
	}
	delivered, dropped := r.Broadcast(formatMessage(s.now(), s.name, text))
	metricMessageBroadcast(s.metrics, delivered, dropped)
	if dropped > 0 {
		logInfo(s.logger, "session", s.peer.ID(), "broadcast dropped for", dropped, "member(s)")
	}
}

// close - the single cleanup path: membership is released first so a
// disappeared client never leaks a room seat, then the close sentinel is
// sent if the connection is still writable.
func (s *Session) close() {
	if s.state == stateClosed {
		return
	}
	s.leave()
	s.peer.Send(s.wording.Sentinel)
	s.peer.Close()
	s.state = stateClosed
	metricConnClosed(s.metrics)
	logInfo(s.logger, "session", s.peer.ID(), "closed")
}
