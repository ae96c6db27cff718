// Package message parses inbound protocol lines.
//
// The protocol is plain line-delimited text: a line is either one of the
// recognized commands or free chat text. Unknown input is never rejected,
// it falls back to chat text.
package message

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind - classification of one inbound line.
type Kind int

const (
	// Text - free chat text, the fallback for any unrecognized line.
	Text Kind = iota
	// Join - request to enter the named room.
	Join
	// Leave - request to leave the current room.
	Leave
	// ListRooms - request for the room directory.
	ListRooms
	// Exit - request to disconnect.
	Exit
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Join:
		return "join"
	case Leave:
		return "leave"
	case ListRooms:
		return "listrooms"
	case Exit:
		return "exit"
	default:
		return "unknown command kind"
	}
}

// Command - parsed inbound line.
type Command struct {
	Kind Kind
	// Room - target room name, set for Join only. May be empty when the
	// client sent a degenerate "JOIN " line, such name is still legal.
	Room string
	// Text - sanitized chat text, set for Text only.
	Text string
}

const (
	joinPrefix = "JOIN "
	leaveWord  = "LEAVE"
	listWord   = "LISTROOMS"
	exitWord   = "EXIT"
)

// Parse - classifies a single inbound line. Command words are matched
// exactly: "JOIN" without a room or a lowercase "leave" is chat text.
func Parse(line string) Command {
	switch {
	case strings.HasPrefix(line, joinPrefix):
		return Command{Kind: Join, Room: line[len(joinPrefix):]}
	case line == leaveWord:
		return Command{Kind: Leave}
	case line == listWord:
		return Command{Kind: ListRooms}
	case line == exitWord:
		return Command{Kind: Exit}
	default:
		return Command{Kind: Text, Text: Sanitize(line)}
	}
}

// Sanitize - prepares raw client text for broadcasting: drops invalid
// UTF-8 sequences and control runes, replaces any whitespace run with a
// single blank and trims the edges.
func Sanitize(s string) string {
	b := strings.Builder{}
	b.Grow(len(s))
	blank := false
	for _, r := range s {
		switch {
		case r == utf8.RuneError:
			// drop, covers decoding failures too
		case unicode.IsSpace(r):
			// tab and EOL runes are control runes too, check space first
			if !blank {
				b.WriteByte(' ')
			}
			blank = true
		case unicode.IsControl(r):
			// drop
		default:
			b.WriteRune(r)
			blank = false
		}
	}
	return strings.TrimSpace(b.String())
}
